package session_lite_repo

import (
	"context"
	"database/sql"
	"errors"
	"quiz_backend/internal/model"
	"quiz_backend/internal/repository"
	"time"

	sq "github.com/Masterminds/squirrel"
	trmsql "github.com/avito-tech/go-transaction-manager/drivers/sql/v2"
)

const (
	sessionsTable = "quiz_sessions"
	resultsTable  = "quiz_results"

	colID        = "id"
	colScore     = "score"
	colAttempts  = "attempts"
	colGameOver  = "game_over"
	colNum1      = "num1"
	colNum2      = "num2"
	colOperator  = "operator"
	colOption1   = "option1"
	colOption2   = "option2"
	colOption3   = "option3"
	colCreatedAt = "created_at"
	colUpdatedAt = "updated_at"

	colSessionID  = "session_id"
	colWon        = "won"
	colFinishedAt = "finished_at"
)

var sessionColumns = []string{
	colID, colScore, colAttempts, colGameOver,
	colNum1, colNum2, colOperator, colOption1, colOption2, colOption3,
	colCreatedAt, colUpdatedAt,
}

// Repo Хранилище сессий и результатов в SQLite (офлайн-режим)
type Repo struct {
	db     *sql.DB
	getter *trmsql.CtxGetter
}

func NewSessionRepository(db *sql.DB) *Repo {
	return &Repo{
		db:     db,
		getter: trmsql.DefaultCtxGetter,
	}
}

// CreateSession - сохраняет новую сессию
func (r *Repo) CreateSession(ctx context.Context, session *model.Session) error {
	round := roundValues(session.Round)

	query := sq.Insert(sessionsTable).
		Columns(sessionColumns...).
		Values(
			session.ID, session.Score, session.Attempts, session.GameOver,
			round.num1, round.num2, round.operator, round.options[0], round.options[1], round.options[2],
			session.CreatedAt.UnixMilli(), session.UpdatedAt.UnixMilli(),
		)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.db).ExecContext(ctx, sqlStr, args...)
	return err
}

// GetSession - возвращает сессию по ID или repository.ErrNotFound
func (r *Repo) GetSession(ctx context.Context, id string) (*model.Session, error) {
	query := sq.Select(sessionColumns...).
		From(sessionsTable).
		Where(sq.Eq{colID: id})

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var (
		session              model.Session
		round                dbRound
		createdAt, updatedAt int64
	)
	err = r.getter.DefaultTrOrDB(ctx, r.db).QueryRowContext(ctx, sqlStr, args...).Scan(
		&session.ID, &session.Score, &session.Attempts, &session.GameOver,
		&round.num1, &round.num2, &round.operator, &round.options[0], &round.options[1], &round.options[2],
		&createdAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	session.Round = round.toModel()
	session.CreatedAt = time.UnixMilli(createdAt).UTC()
	session.UpdatedAt = time.UnixMilli(updatedAt).UTC()
	return &session, nil
}

// UpdateSession - перезаписывает счёт, попытки и текущий раунд
func (r *Repo) UpdateSession(ctx context.Context, session *model.Session) error {
	round := roundValues(session.Round)

	query := sq.Update(sessionsTable).
		SetMap(map[string]interface{}{
			colScore:     session.Score,
			colAttempts:  session.Attempts,
			colGameOver:  session.GameOver,
			colNum1:      round.num1,
			colNum2:      round.num2,
			colOperator:  round.operator,
			colOption1:   round.options[0],
			colOption2:   round.options[1],
			colOption3:   round.options[2],
			colUpdatedAt: session.UpdatedAt.UnixMilli(),
		}).
		Where(sq.Eq{colID: session.ID})

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	res, err := r.getter.DefaultTrOrDB(ctx, r.db).ExecContext(ctx, sqlStr, args...)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// SaveResult - записывает завершённую игру
func (r *Repo) SaveResult(ctx context.Context, result *model.Result) error {
	query := sq.Insert(resultsTable).
		Columns(colSessionID, colScore, colWon, colFinishedAt).
		Values(result.SessionID, result.Score, result.Won, result.FinishedAt.UnixMilli())

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.db).ExecContext(ctx, sqlStr, args...)
	return err
}

// TopResults - лучшие результаты: по убыванию счёта, при равенстве раньше закончивший выше
func (r *Repo) TopResults(ctx context.Context, limit int) ([]model.Result, error) {
	query := sq.Select(colSessionID, colScore, colWon, colFinishedAt).
		From(resultsTable).
		OrderBy(colScore+" DESC", colFinishedAt+" ASC", colID+" ASC").
		Limit(uint64(limit))

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.getter.DefaultTrOrDB(ctx, r.db).QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := make([]model.Result, 0, limit)
	for rows.Next() {
		var (
			res        model.Result
			finishedAt int64
		)
		if err := rows.Scan(&res.SessionID, &res.Score, &res.Won, &finishedAt); err != nil {
			return nil, err
		}
		res.FinishedAt = time.UnixMilli(finishedAt).UTC()
		results = append(results, res)
	}

	return results, rows.Err()
}

// dbRound Раунд в виде колонок таблицы. Пустой operator означает, что раунда нет
type dbRound struct {
	num1, num2 int
	operator   string
	options    [model.OptionCount]int
}

func roundValues(round *model.Round) dbRound {
	if round == nil {
		return dbRound{}
	}
	return dbRound{
		num1:     round.Question.Num1,
		num2:     round.Question.Num2,
		operator: string(round.Question.Operator),
		options:  round.Options,
	}
}

func (r dbRound) toModel() *model.Round {
	if r.operator == "" {
		return nil
	}
	return &model.Round{
		Question: model.Question{
			Num1:     r.num1,
			Num2:     r.num2,
			Operator: model.Operator(r.operator),
		},
		Options: r.options,
	}
}
