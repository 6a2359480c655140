package quiz

import (
	"math/rand/v2"
	"quiz_backend/internal/config"
	"quiz_backend/internal/repository"
	"quiz_backend/internal/service"
	"time"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

// Source Источник случайных чисел для генерации раундов.
// *rand.Rand из math/rand/v2 ему удовлетворяет, в тестах подставляется детерминированный
type Source interface {
	IntN(n int) int
}

// globalSource общий генератор math/rand/v2, безопасен для конкурентных запросов
type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

type serv struct {
	cfg         config.QuizConfig
	tokenCfg    config.TokenConfig
	sessionRepo repository.SessionRepository
	resultRepo  repository.ResultRepository
	statsRepo   repository.StatsRepository
	txManager   trm.Manager
	rng         Source
	now         func() time.Time
}

// NewQuizService Создать сервис викторины. При rng == nil используется общий генератор
func NewQuizService(
	cfg config.QuizConfig,
	tokenCfg config.TokenConfig,
	sessionRepo repository.SessionRepository,
	resultRepo repository.ResultRepository,
	statsRepo repository.StatsRepository,
	txManager trm.Manager,
	rng Source,
) service.QuizService {
	if rng == nil {
		rng = globalSource{}
	}
	return &serv{
		cfg:         cfg,
		tokenCfg:    tokenCfg,
		sessionRepo: sessionRepo,
		resultRepo:  resultRepo,
		statsRepo:   statsRepo,
		txManager:   txManager,
		rng:         rng,
		now:         func() time.Time { return time.Now().UTC() },
	}
}
