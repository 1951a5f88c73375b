package demo

import (
	"log"
	"strings"
	"unicode/utf8"
)

const (
	greeting  = "Hello, World!"
	greetName = "Alice"
)

// Primitives — числа, руна, bool, строки и первое чтение из stdin.
func (r *Runner) Primitives() {
	r.console.Header("1. Primitives, Strings, and I/O")

	var smallNumber int8 = 100
	var mediumNumber int16 = 10000
	age := 30
	var bigNumber int64 = 1000000000
	var height float32 = 1.85
	preciseValue := 1.85123456789
	initial := 'A'
	isGoFun := true

	log.Printf("primitives: int8=%d int16=%d int64=%d float64=%v", smallNumber, mediumNumber, bigNumber, preciseValue)

	r.console.Printf("Age: %d\n", age)
	r.console.Printf("Height: %vm\n", height)
	r.console.Printf("Initial: %c\n", initial)
	r.console.Printf("Is Go fun? %t\n", isGoFun)

	r.console.Printf("String length: %d\n", utf8.RuneCountInString(greeting))
	r.console.Printf("Uppercase: %s\n", strings.ToUpper(greeting))
	r.console.Println("Concatenation: " + greeting + " My name is " + greetName)

	// Любой ввод подходит, даже пустой. Ошибку чтения считаем пустым именем.
	r.console.Println()
	name, err := r.console.Prompt("Enter your name: ")
	if err != nil {
		log.Printf("primitives: чтение имени: %v", err)
		name = ""
	}
	r.console.Println(Greet(name))
	r.console.Println()
}

// Greet — приветствие "Hello, <name>!".
func Greet(name string) string {
	return "Hello, " + name + "!"
}
