package env

import (
	"fmt"
	"os"
	"quiz_backend/internal/config"

	"gopkg.in/yaml.v3"
)

// Значения по умолчанию совпадают с исходным виджетом
const (
	defaultTargetScore          = 20
	defaultMaxOperand           = 10
	defaultDecoySpread          = 5
	defaultLeaderboardLimit     = 10
	defaultWorksheetMaxProblems = 50
)

type quizFile struct {
	Quiz quizYAML `yaml:"quiz"`
}

type quizYAML struct {
	TargetScore          *int `yaml:"target_score"`
	MaxOperand           *int `yaml:"max_operand"`
	DecoySpread          *int `yaml:"decoy_spread"`
	LeaderboardLimit     *int `yaml:"leaderboard_limit"`
	WorksheetMaxProblems *int `yaml:"worksheet_max_problems"`
}

type quizConfig struct {
	targetScore          int
	maxOperand           int
	decoySpread          int
	leaderboardLimit     int
	worksheetMaxProblems int
}

// NewQuizConfigFromYAML читает секцию quiz из yaml-файла.
// Отсутствующие ключи получают значения по умолчанию, нулевые и отрицательные считаются ошибкой
func NewQuizConfigFromYAML(path string) (config.QuizConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read quiz config: %w", err)
	}

	return ParseQuizConfig(data)
}

func ParseQuizConfig(data []byte) (config.QuizConfig, error) {
	var f quizFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse quiz config: %w", err)
	}

	cfg := &quizConfig{}
	fields := []struct {
		name string
		src  *int
		dst  *int
		def  int
	}{
		{"target_score", f.Quiz.TargetScore, &cfg.targetScore, defaultTargetScore},
		{"max_operand", f.Quiz.MaxOperand, &cfg.maxOperand, defaultMaxOperand},
		{"decoy_spread", f.Quiz.DecoySpread, &cfg.decoySpread, defaultDecoySpread},
		{"leaderboard_limit", f.Quiz.LeaderboardLimit, &cfg.leaderboardLimit, defaultLeaderboardLimit},
		{"worksheet_max_problems", f.Quiz.WorksheetMaxProblems, &cfg.worksheetMaxProblems, defaultWorksheetMaxProblems},
	}
	for _, fld := range fields {
		if fld.src == nil {
			*fld.dst = fld.def
			continue
		}
		if *fld.src <= 0 {
			return nil, fmt.Errorf("quiz.%s must be positive, got %d", fld.name, *fld.src)
		}
		*fld.dst = *fld.src
	}

	return cfg, nil
}

// DefaultQuizConfig правила исходного виджета: до 20 очков, числа 0..10
func DefaultQuizConfig() config.QuizConfig {
	return &quizConfig{
		targetScore:          defaultTargetScore,
		maxOperand:           defaultMaxOperand,
		decoySpread:          defaultDecoySpread,
		leaderboardLimit:     defaultLeaderboardLimit,
		worksheetMaxProblems: defaultWorksheetMaxProblems,
	}
}

func (c *quizConfig) TargetScore() int          { return c.targetScore }
func (c *quizConfig) MaxOperand() int           { return c.maxOperand }
func (c *quizConfig) DecoySpread() int          { return c.decoySpread }
func (c *quizConfig) LeaderboardLimit() int     { return c.leaderboardLimit }
func (c *quizConfig) WorksheetMaxProblems() int { return c.worksheetMaxProblems }
