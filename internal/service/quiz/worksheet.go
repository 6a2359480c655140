package quiz

import (
	"context"
	"io"
	"quiz_backend/internal/model"
	"quiz_backend/internal/service"
	"quiz_backend/internal/worksheet"
)

// Worksheet печатная версия викторины: problems задач того же формата и лист ответов
func (s *serv) Worksheet(ctx context.Context, problems int, w io.Writer) error {
	if problems <= 0 || problems > s.cfg.WorksheetMaxProblems() {
		return service.ErrInvalidLimit
	}

	rounds := make([]model.Round, problems)
	for i := range rounds {
		rounds[i] = s.GenerateRound()
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	return worksheet.Render(w, rounds)
}
