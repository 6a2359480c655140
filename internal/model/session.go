package model

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Session Состояние одной игры.
// Attempts равен 1 после первой ошибки в текущем раунде, вторая ошибка завершает игру.
type Session struct {
	ID        string
	Score     int
	Attempts  int
	GameOver  bool
	Round     *Round // nil, если активного вопроса нет
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Won игра закончена и набран целевой счёт
func (s Session) Won(targetScore int) bool {
	return s.GameOver && s.Score >= targetScore
}

// Outcome Итог обработки одного ответа
type Outcome string

const (
	OutcomeCorrect Outcome = "correct" // верно, выдан новый раунд
	OutcomeRetry   Outcome = "retry"   // первая ошибка, раунд тот же
	OutcomeWon     Outcome = "won"     // верно и набран целевой счёт
	OutcomeLost    Outcome = "lost"    // вторая ошибка в раунде
	OutcomeIgnored Outcome = "ignored" // нет вопроса или игра уже окончена
)

// Finished ответ перевёл игру в состояние GameOver
func (o Outcome) Finished() bool {
	return o == OutcomeWon || o == OutcomeLost
}

// SessionState То, что сервис отдаёт наружу после операции
type SessionState struct {
	Session Session
	Outcome Outcome
	Token   string // выдаётся только при создании сессии
}

type SessionClaims struct {
	jwt.RegisteredClaims
}
