package env

import (
	"fmt"
	"os"
	"quiz_backend/internal/config"
)

const (
	storageDriverEnvName = "STORAGE_DRIVER"
	sqliteDSNEnvName     = "SQLITE_DSN"

	defaultSQLiteDSN = "file:quiz.db?cache=shared&mode=rwc&_pragma=busy_timeout(5000)"
)

type storageConfig struct {
	driver    config.StorageDriver
	sqliteDSN string
}

// NewStorageConfig По умолчанию игры хранятся в локальном файле SQLite
func NewStorageConfig() (config.StorageConfig, error) {
	driver := config.StorageDriver(os.Getenv(storageDriverEnvName))
	switch driver {
	case "":
		driver = config.StorageSQLite
	case config.StorageSQLite, config.StoragePostgres:
	default:
		return nil, fmt.Errorf("unsupported storage driver: %s", driver)
	}

	dsn := os.Getenv(sqliteDSNEnvName)
	if len(dsn) == 0 {
		dsn = defaultSQLiteDSN
	}

	return &storageConfig{
		driver:    driver,
		sqliteDSN: dsn,
	}, nil
}

func (cfg *storageConfig) Driver() config.StorageDriver {
	return cfg.driver
}

func (cfg *storageConfig) SQLiteDSN() string {
	return cfg.sqliteDSN
}
