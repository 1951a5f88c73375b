package demo

import (
	"log"

	"lang_demo/internal/console"
	"lang_demo/internal/models"
)

// Demo is a plain value carrying instance data; its constructor announces itself.
type Demo struct {
	instanceData string
}

func NewDemo(c *console.Console, data string) *Demo {
	c.Println("A Demo object was created with data: " + data)
	return &Demo{instanceData: data}
}

// Objects shows Book, EBook and DisplayInfo called through the interface.
func (r *Runner) Objects() {
	r.console.Header("4. Object-Oriented Programming")

	demoObject := NewDemo(r.console, "Test Data")
	log.Printf("objects: demo instance data=%q", demoObject.instanceData)

	book := models.NewBook("Effective Java", "Joshua Bloch", 2018, 49.99)
	ebook := models.NewEBook("Java: The Complete Reference", "Herbert Schildt", 2022, 35.50, "PDF")

	r.console.Println(book.DisplayInfo())
	r.console.Println(ebook.DisplayInfo())

	r.console.Println()
	r.console.Header("Polymorphism")
	for _, line := range DisplayAll(Library(book, ebook)) {
		r.console.Println(line)
	}
	r.console.Println()
}

// Library keeps the given items in order behind the Displayable interface.
func Library(items ...models.Displayable) []models.Displayable {
	library := make([]models.Displayable, 0, len(items))
	library = append(library, items...)
	return library
}

// DisplayAll calls DisplayInfo on each item in order.
func DisplayAll(library []models.Displayable) []string {
	lines := make([]string, 0, len(library))
	for _, item := range library {
		lines = append(lines, item.DisplayInfo())
	}
	return lines
}
