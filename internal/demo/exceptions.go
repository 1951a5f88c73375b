package demo

import (
	"fmt"
	"log"

	"lang_demo/internal/parser"
)

const dividend = 100

// Exceptions — чтение делителя, деление и обработка трёх классов ошибок.
// Отложенная очистка выполняется на любом пути и освобождает ввод.
func (r *Runner) Exceptions() {
	r.console.Header("5. Exception Handling")

	defer func() {
		if rec := recover(); rec != nil {
			r.report(&parser.UnexpectedError{Err: fmt.Errorf("%v", rec)})
		}
		r.console.Println("This deferred cleanup always runs.")
		if err := r.console.CloseInput(); err != nil {
			log.Printf("exceptions: закрытие ввода: %v", err)
		}
	}()

	q, err := r.divide()
	if err != nil {
		r.report(err)
		return
	}
	r.console.Println(q.String())
}

func (r *Runner) divide() (parser.Quotient, error) {
	input, err := r.console.Prompt(fmt.Sprintf("Enter a number to divide %d by: ", dividend))
	if err != nil {
		return parser.Quotient{}, &parser.UnexpectedError{Err: fmt.Errorf("read input: %w", err)}
	}
	return parser.Divide(dividend, input)
}

func (r *Runner) report(err error) {
	category := parser.Classify(err)
	log.Printf("exceptions: category=%s err=%v", category, err)

	switch category {
	case parser.CategoryInvalidFormat:
		r.console.Errorln("Error: That's not a valid number! (" + parser.Detail(err) + ")")
	case parser.CategoryArithmetic:
		r.console.Errorln("Error: You can't divide by zero!")
	default:
		r.console.Errorln("An unexpected error occurred: " + err.Error())
	}
}
