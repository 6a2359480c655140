package quiz

import "quiz_backend/internal/model"

// Evaluate применяет выбранный ответ к сессии.
//
// Верный ответ даёт очко и новый раунд, либо победу при достижении целевого счёта.
// Первая ошибка в раунде оставляет тот же вопрос, вторая завершает игру.
// Без вопроса или после окончания игры состояние не меняется.
func (s *serv) Evaluate(session *model.Session, selected int) model.Outcome {
	if session.Round == nil || session.GameOver {
		return model.OutcomeIgnored
	}

	if selected == session.Round.Question.Answer() {
		session.Score++
		if session.Score >= s.cfg.TargetScore() {
			session.GameOver = true
			return model.OutcomeWon
		}
		s.startRound(session)
		return model.OutcomeCorrect
	}

	if session.Attempts == 0 {
		session.Attempts = 1
		return model.OutcomeRetry
	}

	session.GameOver = true
	return model.OutcomeLost
}
