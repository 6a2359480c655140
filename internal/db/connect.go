package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "modernc.org/sqlite" // driver: sqlite
)

// OpenSQLite открывает файл SQLite и создаёт схему, если её нет
func OpenSQLite(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	// SQLite допускает одного писателя, транзакции сериализуем на уровне пула
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}
	if _, err := db.ExecContext(ctx, schemaSQLite); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensure sqlite schema: %w", err)
	}
	return db, nil
}

// EnsurePostgresSchema создаёт таблицы викторины в Postgres
func EnsurePostgresSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schemaPostgres); err != nil {
		return fmt.Errorf("ensure postgres schema: %w", err)
	}
	return nil
}

// Пустой operator означает, что активного вопроса нет.
// Время в SQLite хранится в unix-миллисекундах
const schemaSQLite = `
CREATE TABLE IF NOT EXISTS quiz_sessions (
  id TEXT PRIMARY KEY,
  score INTEGER NOT NULL DEFAULT 0,
  attempts INTEGER NOT NULL DEFAULT 0,
  game_over INTEGER NOT NULL DEFAULT 0,
  num1 INTEGER NOT NULL DEFAULT 0,
  num2 INTEGER NOT NULL DEFAULT 0,
  operator TEXT NOT NULL DEFAULT '',
  option1 INTEGER NOT NULL DEFAULT 0,
  option2 INTEGER NOT NULL DEFAULT 0,
  option3 INTEGER NOT NULL DEFAULT 0,
  created_at INTEGER NOT NULL,
  updated_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS quiz_results (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  session_id TEXT NOT NULL REFERENCES quiz_sessions(id) ON DELETE CASCADE,
  score INTEGER NOT NULL,
  won INTEGER NOT NULL,
  finished_at INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS quiz_results_score_idx ON quiz_results (score DESC, finished_at);
`

const schemaPostgres = `
CREATE TABLE IF NOT EXISTS quiz_sessions (
  id TEXT PRIMARY KEY,
  score INTEGER NOT NULL DEFAULT 0,
  attempts SMALLINT NOT NULL DEFAULT 0,
  game_over BOOLEAN NOT NULL DEFAULT FALSE,
  num1 INTEGER NOT NULL DEFAULT 0,
  num2 INTEGER NOT NULL DEFAULT 0,
  operator TEXT NOT NULL DEFAULT '',
  option1 INTEGER NOT NULL DEFAULT 0,
  option2 INTEGER NOT NULL DEFAULT 0,
  option3 INTEGER NOT NULL DEFAULT 0,
  created_at TIMESTAMPTZ NOT NULL,
  updated_at TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS quiz_results (
  id BIGSERIAL PRIMARY KEY,
  session_id TEXT NOT NULL REFERENCES quiz_sessions(id) ON DELETE CASCADE,
  score INTEGER NOT NULL,
  won BOOLEAN NOT NULL,
  finished_at TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS quiz_results_score_idx ON quiz_results (score DESC, finished_at);
`
