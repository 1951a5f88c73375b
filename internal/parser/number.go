package parser

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	// ErrInvalidNumber — текст не является целым числом.
	ErrInvalidNumber = errors.New("invalid number")

	// ErrDivideByZero — делитель равен нулю.
	ErrDivideByZero = errors.New("divide by zero")
)

// UnexpectedError — всё остальное (ошибка чтения, паника внутри секции).
type UnexpectedError struct {
	Err error
}

func (e *UnexpectedError) Error() string { return e.Err.Error() }
func (e *UnexpectedError) Unwrap() error { return e.Err }

// Quotient — результат целочисленного деления.
type Quotient struct {
	Dividend int
	Divisor  int
	Result   int
}

func (q Quotient) String() string {
	return fmt.Sprintf("%d / %d = %d", q.Dividend, q.Divisor, q.Result)
}

// ParseInt разбирает строку как десятичное 32-битное целое.
// Всё, что не помещается в int32, тоже считается неверным числом.
// Ошибка оборачивает и ErrInvalidNumber, и исходную *strconv.NumError.
func ParseInt(text string) (int, error) {
	n, err := strconv.ParseInt(text, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidNumber, err)
	}
	return int(n), nil
}

// Divide разбирает text и делит на него dividend (с отбрасыванием остатка).
func Divide(dividend int, text string) (Quotient, error) {
	divisor, err := ParseInt(text)
	if err != nil {
		return Quotient{}, err
	}
	if divisor == 0 {
		return Quotient{}, ErrDivideByZero
	}

	return Quotient{Dividend: dividend, Divisor: divisor, Result: dividend / divisor}, nil
}

// Detail — текст исходной ошибки разбора без нашей обёртки,
// например `strconv.ParseInt: parsing "abc": invalid syntax`.
func Detail(err error) string {
	var numErr *strconv.NumError
	if errors.As(err, &numErr) {
		return numErr.Error()
	}
	return err.Error()
}
