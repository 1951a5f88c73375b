package parser

import "errors"

// Category — класс ошибки для секции обработки ошибок.
type Category int

const (
	CategoryNone Category = iota
	CategoryInvalidFormat
	CategoryArithmetic
	CategoryUnexpected
)

func (c Category) String() string {
	switch c {
	case CategoryNone:
		return "none"
	case CategoryInvalidFormat:
		return "invalid-format"
	case CategoryArithmetic:
		return "arithmetic"
	default:
		return "unexpected"
	}
}

// Classify сводит ошибку к одной из трёх категорий.
// Всё, что не распознано как разбор или деление на ноль, считается unexpected.
func Classify(err error) Category {
	switch {
	case err == nil:
		return CategoryNone
	case errors.Is(err, ErrInvalidNumber):
		return CategoryInvalidFormat
	case errors.Is(err, ErrDivideByZero):
		return CategoryArithmetic
	default:
		return CategoryUnexpected
	}
}
