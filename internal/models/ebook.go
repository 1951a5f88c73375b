package models

import "fmt"

// EBook is a Book with a file format (e.g. "PDF").
// The shared fields come from the embedded Book; only DisplayInfo differs.
type EBook struct {
	*Book
	format string
}

// NewEBook builds the Book part first, then sets the format.
func NewEBook(title string, author string, publishYear int, price float64, format string) *EBook {
	return &EBook{
		Book:   NewBook(title, author, publishYear, price),
		format: format,
	}
}

// DisplayInfo overrides Book.DisplayInfo.
func (e *EBook) DisplayInfo() string {
	return fmt.Sprintf("EBook: '%s' [%s format]. $%.2f", e.Title(), e.format, e.price)
}

func (e *EBook) Format() string          { return e.format }
func (e *EBook) SetFormat(format string) { e.format = format }
