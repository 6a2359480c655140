package quiz

import (
	"context"
	"errors"
	"fmt"
	"log"
	"quiz_backend/internal/model"
	"quiz_backend/internal/repository"
	"quiz_backend/internal/service"
	"quiz_backend/pkg/token"

	"github.com/google/uuid"
)

const maxLeaderboardLimit = 100

// Start создаёт новую сессию с уже сгенерированным первым раундом
// и выдаёт токен, по которому клиент будет отвечать
func (s *serv) Start(ctx context.Context) (*model.SessionState, error) {
	now := s.now()
	session := &model.Session{
		ID:        uuid.NewString(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.resetSession(session)

	if err := s.sessionRepo.CreateSession(ctx, session); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	sessionToken, err := token.GenerateSessionToken(
		session.ID,
		s.tokenCfg.SessionTokenSecretKey(),
		s.tokenCfg.SessionTokenDuration())
	if err != nil {
		return nil, fmt.Errorf("generate session token: %w", err)
	}

	return &model.SessionState{
		Session: *session,
		Token:   sessionToken,
	}, nil
}

// Session текущее состояние игры
func (s *serv) Session(ctx context.Context, sessionID string) (*model.SessionState, error) {
	session, err := s.getSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return &model.SessionState{Session: *session}, nil
}

// Answer обрабатывает выбранный вариант ответа
func (s *serv) Answer(ctx context.Context, sessionID string, selected int) (*model.SessionState, error) {
	var res *model.SessionState

	// Чтение, проверка и запись сессии (и результата при окончании игры) в одной транзакции
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		session, err := s.getSession(txCtx, sessionID)
		if err != nil {
			return err
		}
		if session.GameOver {
			return service.ErrSessionOver
		}
		// Отвечать можно только одним из показанных вариантов
		if session.Round != nil && !session.Round.HasOption(selected) {
			return service.ErrUnknownOption
		}

		outcome := s.Evaluate(session, selected)
		res = &model.SessionState{Session: *session, Outcome: outcome}
		if outcome == model.OutcomeIgnored {
			return nil
		}

		session.UpdatedAt = s.now()
		if err := s.sessionRepo.UpdateSession(txCtx, session); err != nil {
			return err
		}
		res.Session = *session

		if outcome.Finished() {
			err = s.resultRepo.SaveResult(txCtx, &model.Result{
				SessionID:  session.ID,
				Score:      session.Score,
				Won:        outcome == model.OutcomeWon,
				FinishedAt: session.UpdatedAt,
			})
			if err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	// Статистику обновляем только после успешной транзакции
	if res.Outcome != model.OutcomeIgnored {
		s.statsRepo.RecordAnswer(res.Outcome)
	}
	if res.Outcome.Finished() {
		log.Printf("session %s finished: outcome=%s score=%d", sessionID, res.Outcome, res.Session.Score)
	}

	return res, nil
}

// Leaderboard лучшие завершённые игры. При limit == 0 берётся значение из конфига
func (s *serv) Leaderboard(ctx context.Context, limit int) ([]model.Result, error) {
	if limit == 0 {
		limit = s.cfg.LeaderboardLimit()
	}
	if limit < 0 || limit > maxLeaderboardLimit {
		return nil, service.ErrInvalidLimit
	}
	return s.resultRepo.TopResults(ctx, limit)
}

func (s *serv) Stats() model.QuizStats {
	return s.statsRepo.QuizStats()
}

func (s *serv) getSession(ctx context.Context, sessionID string) (*model.Session, error) {
	session, err := s.sessionRepo.GetSession(ctx, sessionID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, service.ErrSessionNotFound
		}
		return nil, err
	}
	return session, nil
}
