package model

import "time"

// Result Завершённая игра для таблицы лидеров
type Result struct {
	SessionID  string
	Score      int
	Won        bool
	FinishedAt time.Time
}
