package quiz

import "quiz_backend/internal/model"

// GenerateRound генерирует задачу и три варианта ответа.
//
// Порядок обращений к генератору фиксирован: num1, num2, оператор,
// смещения двух ложных ответов, перестановка вариантов.
func (s *serv) GenerateRound() model.Round {
	maxOperand := s.cfg.MaxOperand()

	// Оба числа из 0..maxOperand
	num1 := s.rng.IntN(maxOperand + 1)
	num2 := s.rng.IntN(maxOperand + 1)

	operator := model.OperatorAdd
	if s.rng.IntN(2) == 1 {
		operator = model.OperatorSubtract
	}

	// При вычитании большее число ставим первым, чтобы ответ не был отрицательным
	if operator == model.OperatorSubtract && num1 < num2 {
		num1, num2 = num2, num1
	}

	question := model.Question{Num1: num1, Num2: num2, Operator: operator}
	correct := question.Answer()

	// Ложные ответы: один выше на 1..spread, другой ниже, но не меньше нуля.
	// На совпадения не проверяем: при correct == 0 нижний тоже будет 0
	spread := s.cfg.DecoySpread()
	above := correct + 1 + s.rng.IntN(spread)
	below := max(0, correct-1-s.rng.IntN(spread))

	options := [model.OptionCount]int{correct, above, below}
	s.shuffleOptions(&options)

	return model.Round{
		Question: question,
		Options:  options,
	}
}

// shuffleOptions перемешивает варианты (Фишер-Йейтс)
func (s *serv) shuffleOptions(options *[model.OptionCount]int) {
	for i := len(options) - 1; i > 0; i-- {
		j := s.rng.IntN(i + 1)
		options[i], options[j] = options[j], options[i]
	}
}

// startRound выдаёт новый раунд и сбрасывает попытки
func (s *serv) startRound(session *model.Session) {
	round := s.GenerateRound()
	session.Round = &round
	session.Attempts = 0
}
