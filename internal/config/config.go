package config

import (
	"time"

	"github.com/joho/godotenv"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

// QuizConfig Правила игры из config.yaml
type QuizConfig interface {
	TargetScore() int
	MaxOperand() int
	DecoySpread() int
	LeaderboardLimit() int
	WorksheetMaxProblems() int
}

type HTTPConfig interface {
	Address() string
}

type PGConfig interface {
	DSN() string
}

type StorageDriver string

const (
	StoragePostgres StorageDriver = "postgres"
	StorageSQLite   StorageDriver = "sqlite"
)

type StorageConfig interface {
	Driver() StorageDriver
	SQLiteDSN() string
}

type TokenConfig interface {
	SessionTokenSecretKey() []byte
	SessionTokenDuration() time.Duration
}
