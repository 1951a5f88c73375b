package models

import "fmt"

// Displayable — всё, что умеет выдать строку для консоли.
type Displayable interface {
	DisplayInfo() string
}

// Book — печатная книга.
// Поля закрыты, доступ через геттеры/сеттеры без валидации.
type Book struct {
	title       string
	author      string
	publishYear int
	price       float64
}

func NewBook(title string, author string, publishYear int, price float64) *Book {
	return &Book{
		title:       title,
		author:      author,
		publishYear: publishYear,
		price:       price,
	}
}

// DisplayInfo — строка в формате "Book: '<title>' by <author> (<year>). $<price>".
func (b *Book) DisplayInfo() string {
	return fmt.Sprintf("Book: '%s' by %s (%d). $%.2f", b.title, b.author, b.publishYear, b.price)
}

func (b *Book) Title() string         { return b.title }
func (b *Book) SetTitle(title string) { b.title = title }

func (b *Book) Author() string          { return b.author }
func (b *Book) SetAuthor(author string) { b.author = author }

func (b *Book) PublishYear() int        { return b.publishYear }
func (b *Book) SetPublishYear(year int) { b.publishYear = year }

func (b *Book) Price() float64         { return b.price }
func (b *Book) SetPrice(price float64) { b.price = price }
