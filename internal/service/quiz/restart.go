package quiz

import (
	"context"
	"quiz_backend/internal/model"
	"quiz_backend/internal/service"
)

// Restart начинает игру заново. Доступно только после окончания игры
func (s *serv) Restart(ctx context.Context, sessionID string) (*model.SessionState, error) {
	var res *model.SessionState

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		session, err := s.getSession(txCtx, sessionID)
		if err != nil {
			return err
		}
		if !session.GameOver {
			return service.ErrSessionActive
		}

		s.resetSession(session)
		session.UpdatedAt = s.now()

		if err := s.sessionRepo.UpdateSession(txCtx, session); err != nil {
			return err
		}

		res = &model.SessionState{Session: *session}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return res, nil
}

// resetSession обнуляет счёт и сразу выдаёт первый раунд
func (s *serv) resetSession(session *model.Session) {
	session.Score = 0
	session.GameOver = false
	s.startRound(session)
}
