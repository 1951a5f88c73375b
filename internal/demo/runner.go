// Package demo — пять демонстраций языка, выводимых через console.
package demo

import (
	"log"

	"lang_demo/internal/console"
)

// Runner печатает баннер, по очереди вызывает секции и печатает финальный баннер.
type Runner struct {
	console    *console.Console
	systemName string
}

func NewRunner(c *console.Console, systemName string) *Runner {
	return &Runner{
		console:    c,
		systemName: systemName,
	}
}

// Run никогда не возвращает ошибку: все сбои секций обрабатываются внутри.
func (r *Runner) Run() {
	r.console.Banner(r.systemName)
	r.console.Println()

	sections := []struct {
		name string
		run  func()
	}{
		{"primitives", r.Primitives},
		{"control-flow", r.ControlFlow},
		{"collections", r.Collections},
		{"objects", r.Objects},
		{"exceptions", r.Exceptions},
	}

	for _, s := range sections {
		log.Printf("section %s: start", s.name)
		s.run()
		log.Printf("section %s: done", s.name)
	}

	r.console.Println()
	r.console.Banner("Program Finished Successfully")
}
