package service

import (
	"context"
	"errors"
	"io"
	"quiz_backend/internal/model"
)

var (
	ErrSessionNotFound = errors.New("quiz session not found")
	ErrSessionOver     = errors.New("quiz session is over")
	ErrSessionActive   = errors.New("quiz session is still active")
	ErrUnknownOption   = errors.New("answer is not one of the offered options")
	ErrInvalidLimit    = errors.New("limit out of range")
)

type QuizService interface {
	Start(ctx context.Context) (*model.SessionState, error)
	Session(ctx context.Context, sessionID string) (*model.SessionState, error)
	Answer(ctx context.Context, sessionID string, selected int) (*model.SessionState, error)
	Restart(ctx context.Context, sessionID string) (*model.SessionState, error)

	Leaderboard(ctx context.Context, limit int) ([]model.Result, error)
	Stats() model.QuizStats
	Worksheet(ctx context.Context, problems int, w io.Writer) error
}
