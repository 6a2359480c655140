package quiz

import (
	"math/rand/v2"
	"quiz_backend/internal/model"
	"testing"
)

func sevenPlusThree() *model.Round {
	return &model.Round{
		Question: model.Question{Num1: 7, Num2: 3, Operator: model.OperatorAdd},
		Options:  [model.OptionCount]int{11, 10, 8},
	}
}

func TestEvaluate_CorrectAdvancesRound(t *testing.T) {
	s := newTestServ(rand.New(rand.NewPCG(3, 4)))
	round := sevenPlusThree()
	session := &model.Session{Round: round}

	if got := s.Evaluate(session, 10); got != model.OutcomeCorrect {
		t.Fatalf("outcome = %s, want correct", got)
	}
	if session.Score != 1 || session.GameOver {
		t.Errorf("state = %+v", session)
	}
	if session.Round == round {
		t.Error("round was not replaced")
	}
	if session.Attempts != 0 {
		t.Errorf("Attempts = %d, want 0", session.Attempts)
	}
}

func TestEvaluate_MissKeepsRound(t *testing.T) {
	for _, wrong := range []int{11, 8} {
		s := newTestServ(rand.New(rand.NewPCG(3, 4)))
		round := sevenPlusThree()
		session := &model.Session{Score: 2, Round: round}

		if got := s.Evaluate(session, wrong); got != model.OutcomeRetry {
			t.Fatalf("outcome = %s, want retry", got)
		}
		if session.Attempts != 1 || session.GameOver || session.Score != 2 {
			t.Errorf("state after miss = %+v", session)
		}
		if session.Round != round || *session.Round != *sevenPlusThree() {
			t.Error("round changed after first miss")
		}
	}
}

func TestEvaluate_SecondMissEndsGame(t *testing.T) {
	s := newTestServ(rand.New(rand.NewPCG(3, 4)))
	session := &model.Session{Score: 5, Round: sevenPlusThree()}

	s.Evaluate(session, 11)
	if got := s.Evaluate(session, 8); got != model.OutcomeLost {
		t.Fatalf("outcome = %s, want lost", got)
	}
	if !session.GameOver || session.Score != 5 {
		t.Errorf("state = %+v", session)
	}
	if session.Won(20) {
		t.Error("lost game reported as won")
	}
}

func TestEvaluate_RetryThenCorrectResetsAttempts(t *testing.T) {
	s := newTestServ(rand.New(rand.NewPCG(3, 4)))
	session := &model.Session{Round: sevenPlusThree()}

	s.Evaluate(session, 8)
	if got := s.Evaluate(session, 10); got != model.OutcomeCorrect {
		t.Fatalf("outcome = %s, want correct", got)
	}
	if session.Attempts != 0 || session.Score != 1 {
		t.Errorf("state = %+v", session)
	}

	// в новом раунде снова две попытки
	wrong := session.Round.Question.Answer() + 100
	if got := s.Evaluate(session, wrong); got != model.OutcomeRetry {
		t.Errorf("outcome = %s, want retry in the new round", got)
	}
}

func TestEvaluate_ReachingTargetWins(t *testing.T) {
	s := newTestServ(rand.New(rand.NewPCG(3, 4)))
	round := sevenPlusThree()
	session := &model.Session{Score: 19, Round: round}

	if got := s.Evaluate(session, 10); got != model.OutcomeWon {
		t.Fatalf("outcome = %s, want won", got)
	}
	if session.Score != 20 || !session.GameOver || !session.Won(20) {
		t.Errorf("state = %+v", session)
	}
	if session.Round != round {
		t.Error("a new round was generated after the winning answer")
	}
}

func TestEvaluate_Ignored(t *testing.T) {
	s := newTestServ(rand.New(rand.NewPCG(3, 4)))

	empty := &model.Session{Score: 3}
	if got := s.Evaluate(empty, 10); got != model.OutcomeIgnored {
		t.Errorf("no round: outcome = %s", got)
	}
	if empty.Score != 3 || empty.Attempts != 0 || empty.GameOver {
		t.Errorf("no round: state changed: %+v", empty)
	}

	over := &model.Session{Score: 3, GameOver: true, Round: sevenPlusThree()}
	if got := s.Evaluate(over, 10); got != model.OutcomeIgnored {
		t.Errorf("game over: outcome = %s", got)
	}
	if over.Score != 3 {
		t.Errorf("game over: Score = %d", over.Score)
	}
}

func TestEvaluate_FullWinningGame(t *testing.T) {
	s := newTestServ(rand.New(rand.NewPCG(9, 9)))
	session := &model.Session{}
	s.resetSession(session)

	for i := 1; i < 20; i++ {
		if got := s.Evaluate(session, session.Round.Question.Answer()); got != model.OutcomeCorrect {
			t.Fatalf("answer %d: outcome = %s", i, got)
		}
	}
	if got := s.Evaluate(session, session.Round.Question.Answer()); got != model.OutcomeWon {
		t.Fatalf("last answer: outcome = %s", got)
	}
	if session.Score != 20 {
		t.Errorf("Score = %d", session.Score)
	}
}

func TestResetSession(t *testing.T) {
	s := newTestServ(rand.New(rand.NewPCG(5, 6)))
	old := sevenPlusThree()
	session := &model.Session{Score: 20, Attempts: 1, GameOver: true, Round: old}

	s.resetSession(session)
	if session.Score != 0 || session.Attempts != 0 || session.GameOver {
		t.Errorf("state = %+v", session)
	}
	if session.Round == nil || session.Round == old {
		t.Error("no fresh round after reset")
	}
}
