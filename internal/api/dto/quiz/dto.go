package quiz

import "time"

type AnswerRequest struct {
	Answer *int `json:"answer"` // Выбранный вариант, одно из трёх чисел на экране
}

type ScreenResponse struct {
	Title        string   `json:"title"`                   // Заголовок экрана
	ScoreText    string   `json:"score_text"`              // Строка со счётом
	Problem      string   `json:"problem,omitempty"`       // "7 + 3 = ?"
	Options      []int    `json:"options,omitempty"`       // Три варианта ответа
	RetryHint    string   `json:"retry_hint,omitempty"`    // Подсказка после первой ошибки
	GameOver     bool     `json:"game_over"`               // Игра окончена
	Success      bool     `json:"success"`                 // Набран целевой счёт
	RestartLabel string   `json:"restart_label,omitempty"` // Подпись кнопки перезапуска
	Icons        []string `json:"icons"`                   // Иконки экрана
}

type SessionResponse struct {
	SessionID    string         `json:"session_id"`
	SessionToken string         `json:"session_token,omitempty"` // Только при создании
	Score        int            `json:"score"`
	Attempts     int            `json:"attempts"`
	GameOver     bool           `json:"game_over"`
	Outcome      string         `json:"outcome,omitempty"` // Итог последнего ответа
	Screen       ScreenResponse `json:"screen"`
}

type ResultResponse struct {
	SessionID  string    `json:"session_id"`
	Score      int       `json:"score"`
	Won        bool      `json:"won"`
	FinishedAt time.Time `json:"finished_at"`
}

type LeaderboardResponse struct {
	Results []ResultResponse `json:"results"`
}

type StatsResponse struct {
	TotalAnswers   int     `json:"total_answers"`
	CorrectAnswers int     `json:"correct_answers"`
	WrongAnswers   int     `json:"wrong_answers"`
	GamesWon       int     `json:"games_won"`
	GamesLost      int     `json:"games_lost"`
	Accuracy       float64 `json:"accuracy"`        // %
	WindowAccuracy float64 `json:"window_accuracy"` // % по последним window_size ответам
	WindowSize     int     `json:"window_size"`
}
