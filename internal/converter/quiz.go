package converter

import (
	"quiz_backend/internal/api/dto/quiz"
	"quiz_backend/internal/model"
	"quiz_backend/internal/view"
)

func ToSessionResponse(state model.SessionState, targetScore int) quiz.SessionResponse {
	return quiz.SessionResponse{
		SessionID:    state.Session.ID,
		SessionToken: state.Token,
		Score:        state.Session.Score,
		Attempts:     state.Session.Attempts,
		GameOver:     state.Session.GameOver,
		Outcome:      string(state.Outcome),
		Screen:       toScreenResponse(view.Render(state.Session, targetScore)),
	}
}

func toScreenResponse(screen view.Screen) quiz.ScreenResponse {
	icons := make([]string, len(screen.Icons))
	for i, icon := range screen.Icons {
		icons[i] = string(icon)
	}

	return quiz.ScreenResponse{
		Title:        screen.Title,
		ScoreText:    screen.ScoreText,
		Problem:      screen.Problem,
		Options:      screen.Options,
		RetryHint:    screen.RetryHint,
		GameOver:     screen.GameOver,
		Success:      screen.Success,
		RestartLabel: screen.RestartLabel,
		Icons:        icons,
	}
}

func ToLeaderboardResponse(results []model.Result) quiz.LeaderboardResponse {
	out := make([]quiz.ResultResponse, len(results))
	for i, r := range results {
		out[i] = quiz.ResultResponse{
			SessionID:  r.SessionID,
			Score:      r.Score,
			Won:        r.Won,
			FinishedAt: r.FinishedAt,
		}
	}
	return quiz.LeaderboardResponse{Results: out}
}

func ToStatsResponse(stats model.QuizStats) quiz.StatsResponse {
	return quiz.StatsResponse{
		TotalAnswers:   stats.TotalAnswers,
		CorrectAnswers: stats.CorrectAnswers,
		WrongAnswers:   stats.WrongAnswers,
		GamesWon:       stats.GamesWon,
		GamesLost:      stats.GamesLost,
		Accuracy:       stats.Accuracy,
		WindowAccuracy: stats.WindowAccuracy,
		WindowSize:     stats.WindowSize,
	}
}
