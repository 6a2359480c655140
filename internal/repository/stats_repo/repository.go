package stats_repo

import (
	"quiz_backend/internal/model"
	"sync"
)

const (
	// defaultWindowSize Сколько последних ответов учитывается в точности окна
	defaultWindowSize = 200
)

// statsState Накопленная статистика всех сессий процесса
type statsState struct {
	TotalAnswers   int
	CorrectAnswers int
	WrongAnswers   int
	GamesWon       int
	GamesLost      int

	Window     []bool // последние ответы: true, если верный
	WindowSize int
}

// StatsRepo Репозиторий статистики в памяти
type StatsRepo struct {
	mtx   sync.RWMutex
	state statsState
}

// NewStatsRepository Конструктор с пустой статистикой. при windowSize <= 0 берётся значение по умолчанию
func NewStatsRepository(windowSize int) *StatsRepo {
	if windowSize <= 0 {
		windowSize = defaultWindowSize
	}
	return &StatsRepo{
		state: statsState{
			Window:     make([]bool, 0, windowSize),
			WindowSize: windowSize,
		},
	}
}

// QuizStats Снимок статистики с пересчитанными процентами
func (r *StatsRepo) QuizStats() model.QuizStats {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	var windowCorrect int
	for _, ok := range r.state.Window {
		if ok {
			windowCorrect++
		}
	}

	return model.QuizStats{
		TotalAnswers:   r.state.TotalAnswers,
		CorrectAnswers: r.state.CorrectAnswers,
		WrongAnswers:   r.state.WrongAnswers,
		GamesWon:       r.state.GamesWon,
		GamesLost:      r.state.GamesLost,
		Accuracy:       percent(r.state.CorrectAnswers, r.state.TotalAnswers),
		WindowAccuracy: percent(windowCorrect, len(r.state.Window)),
		WindowSize:     r.state.WindowSize,
	}
}

// RecordAnswer Обновление статистики после ответа
func (r *StatsRepo) RecordAnswer(outcome model.Outcome) {
	var correct bool
	switch outcome {
	case model.OutcomeCorrect, model.OutcomeWon:
		correct = true
	case model.OutcomeRetry, model.OutcomeLost:
	default:
		return
	}

	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.state.TotalAnswers++
	if correct {
		r.state.CorrectAnswers++
	} else {
		r.state.WrongAnswers++
	}

	switch outcome {
	case model.OutcomeWon:
		r.state.GamesWon++
	case model.OutcomeLost:
		r.state.GamesLost++
	}

	// Поддерживаем размер окна
	r.state.Window = append(r.state.Window, correct)
	if len(r.state.Window) > r.state.WindowSize {
		r.state.Window = r.state.Window[1:]
	}
}

func percent(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}
