package model

import "fmt"

// Operator арифметическое действие в задаче
type Operator string

const (
	OperatorAdd      Operator = "+"
	OperatorSubtract Operator = "-"
)

// OptionCount Количество вариантов ответа в раунде
const OptionCount = 3

// Question Задача вида "Num1 Operator Num2 = ?"
// Для вычитания Num1 всегда не меньше Num2, поэтому ответ не бывает отрицательным
type Question struct {
	Num1     int
	Num2     int
	Operator Operator
}

// Answer вычисляет правильный ответ на задачу
func (q Question) Answer() int {
	if q.Operator == OperatorSubtract {
		return q.Num1 - q.Num2
	}
	return q.Num1 + q.Num2
}

func (q Question) String() string {
	return fmt.Sprintf("%d %s %d = ?", q.Num1, q.Operator, q.Num2)
}

// Round Задача вместе с тремя вариантами ответа.
// Варианты могут совпадать (например, когда правильный ответ 0)
type Round struct {
	Question Question
	Options  [OptionCount]int
}

// HasOption проверяет, есть ли значение среди показанных вариантов
func (r Round) HasOption(v int) bool {
	for _, o := range r.Options {
		if o == v {
			return true
		}
	}
	return false
}
