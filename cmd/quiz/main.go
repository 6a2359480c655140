package main

import (
	"log"
	"quiz_backend/internal/app"
)

func main() {
	a := app.NewApp()
	if err := a.Run(); err != nil {
		log.Fatalf("app stopped: %v", err)
	}
}
