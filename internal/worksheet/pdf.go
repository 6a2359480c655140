package worksheet

import (
	"fmt"
	"io"
	"quiz_backend/internal/model"

	"codeberg.org/go-pdf/fpdf"
)

const (
	pageSize   = "A4"
	marginsMM  = 20.0
	fontFamily = "Helvetica"

	title       = "Mattequiz"
	answerTitle = "Facit"
)

// Render печатает задачи с вариантами ответа, на второй странице ответы
func Render(w io.Writer, rounds []model.Round) error {
	pdf := fpdf.New("P", "mm", pageSize, "")
	pdf.SetMargins(marginsMM, marginsMM, marginsMM)
	pdf.SetTitle(title, true)

	// Встроенные шрифты в cp1252, переводим å/ä/ö
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()

	// ---------- задачи ----------
	pdf.SetFont(fontFamily, "B", 22)
	pdf.CellFormat(0, 15, tr(title), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont(fontFamily, "", 14)
	for i, round := range rounds {
		q := round.Question
		line := fmt.Sprintf("%d.   %d %s %d = ____", i+1, q.Num1, q.Operator, q.Num2)
		pdf.CellFormat(90, 9, line, "", 0, "L", false, 0, "")

		opts := fmt.Sprintf("( ) %d     ( ) %d     ( ) %d", round.Options[0], round.Options[1], round.Options[2])
		pdf.CellFormat(0, 9, opts, "", 1, "L", false, 0, "")
	}

	// ---------- ответы ----------
	pdf.AddPage()
	pdf.SetFont(fontFamily, "B", 22)
	pdf.CellFormat(0, 15, tr(answerTitle), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont(fontFamily, "", 14)
	for i, round := range rounds {
		q := round.Question
		pdf.CellFormat(0, 8, fmt.Sprintf("%d.   %d %s %d = %d", i+1, q.Num1, q.Operator, q.Num2, q.Answer()), "", 1, "L", false, 0, "")
	}

	return pdf.Output(w)
}
