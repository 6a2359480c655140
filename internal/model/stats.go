package model

// QuizStats Снимок статистики по всем сессиям процесса
type QuizStats struct {
	TotalAnswers   int
	CorrectAnswers int
	WrongAnswers   int
	GamesWon       int
	GamesLost      int

	Accuracy       float64 // доля правильных ответов, %
	WindowAccuracy float64 // то же по последним WindowSize ответам
	WindowSize     int
}
