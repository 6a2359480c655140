package repository

import (
	"context"
	"errors"
	"quiz_backend/internal/model"
)

var ErrNotFound = errors.New("record not found")

type SessionRepository interface {
	CreateSession(ctx context.Context, session *model.Session) error
	GetSession(ctx context.Context, id string) (*model.Session, error)
	UpdateSession(ctx context.Context, session *model.Session) error
}

type ResultRepository interface {
	SaveResult(ctx context.Context, result *model.Result) error
	TopResults(ctx context.Context, limit int) ([]model.Result, error)
}

type StatsRepository interface {
	QuizStats() model.QuizStats
	RecordAnswer(outcome model.Outcome)
}
