package stats_repo

import (
	"quiz_backend/internal/model"
	"sync"
	"testing"
)

func TestRecordAnswer(t *testing.T) {
	r := NewStatsRepository(0)

	for _, o := range []model.Outcome{
		model.OutcomeCorrect,
		model.OutcomeRetry,
		model.OutcomeCorrect,
		model.OutcomeLost,
		model.OutcomeWon,
		model.OutcomeIgnored,
	} {
		r.RecordAnswer(o)
	}

	got := r.QuizStats()
	if got.TotalAnswers != 5 {
		t.Errorf("TotalAnswers = %d, want 5", got.TotalAnswers)
	}
	if got.CorrectAnswers != 3 || got.WrongAnswers != 2 {
		t.Errorf("correct/wrong = %d/%d, want 3/2", got.CorrectAnswers, got.WrongAnswers)
	}
	if got.GamesWon != 1 || got.GamesLost != 1 {
		t.Errorf("won/lost = %d/%d, want 1/1", got.GamesWon, got.GamesLost)
	}
	if got.Accuracy != 60 {
		t.Errorf("Accuracy = %v, want 60", got.Accuracy)
	}
	if got.WindowSize != defaultWindowSize {
		t.Errorf("WindowSize = %d, want %d", got.WindowSize, defaultWindowSize)
	}
}

func TestRecordAnswer_WindowSlides(t *testing.T) {
	r := NewStatsRepository(2)

	r.RecordAnswer(model.OutcomeRetry)
	r.RecordAnswer(model.OutcomeCorrect)
	r.RecordAnswer(model.OutcomeCorrect)

	got := r.QuizStats()
	if got.WindowAccuracy != 100 {
		t.Errorf("WindowAccuracy = %v, want 100 after the miss slid out", got.WindowAccuracy)
	}
	if got.Accuracy < 66 || got.Accuracy > 67 {
		t.Errorf("Accuracy = %v, want ~66.7", got.Accuracy)
	}
}

func TestQuizStats_Empty(t *testing.T) {
	got := NewStatsRepository(10).QuizStats()
	if got.Accuracy != 0 || got.WindowAccuracy != 0 || got.TotalAnswers != 0 {
		t.Errorf("empty stats = %+v", got)
	}
}

func TestRecordAnswer_Concurrent(t *testing.T) {
	r := NewStatsRepository(50)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				r.RecordAnswer(model.OutcomeCorrect)
				_ = r.QuizStats()
			}
		}()
	}
	wg.Wait()

	if got := r.QuizStats().TotalAnswers; got != 800 {
		t.Errorf("TotalAnswers = %d, want 800", got)
	}
}
