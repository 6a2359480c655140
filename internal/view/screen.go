package view

import (
	"fmt"
	"quiz_backend/internal/model"
)

// Тексты интерфейса, язык один
const (
	titleActive   = "Mattequiz"
	titleGameOver = "Spelet är slut!"
	scoreActive   = "Poäng: %d"
	scoreFinal    = "Din poäng: %d"
	retryHint     = "Försök igen! Du har en chans till."
	restartLabel  = "Spela igen"
)

// Icon декоративная иконка, выбор зависит только от состояния
type Icon string

const (
	IconCalculator Icon = "calculator"
	IconAlert      Icon = "alert"
	IconSmile      Icon = "smile"
	IconFrown      Icon = "frown"
)

// Screen Всё, что видит игрок. Собственного состояния нет
type Screen struct {
	Title     string
	ScoreText string

	// Активная игра
	Problem   string
	Options   []int
	RetryHint string

	// Конец игры
	GameOver     bool
	Success      bool
	RestartLabel string

	Icons []Icon
}

// Render строит экран по состоянию сессии
func Render(session model.Session, targetScore int) Screen {
	if session.GameOver {
		success := session.Score >= targetScore
		icon := IconFrown
		if success {
			icon = IconSmile
		}
		return Screen{
			Title:        titleGameOver,
			ScoreText:    fmt.Sprintf(scoreFinal, session.Score),
			GameOver:     true,
			Success:      success,
			RestartLabel: restartLabel,
			Icons:        []Icon{icon},
		}
	}

	screen := Screen{
		Title:     titleActive,
		ScoreText: fmt.Sprintf(scoreActive, session.Score),
	}
	if session.Round != nil {
		screen.Problem = session.Round.Question.String()
		screen.Options = append([]int(nil), session.Round.Options[:]...)
	}
	if session.Attempts == 1 {
		screen.RetryHint = retryHint
		screen.Icons = append(screen.Icons, IconAlert)
	}
	screen.Icons = append(screen.Icons, IconCalculator)

	return screen
}
