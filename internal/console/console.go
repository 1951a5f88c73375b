// Package console is the only place the program touches stdin, stdout and stderr.
package console

import (
	"fmt"
	"io"
	"log"

	"github.com/charmbracelet/lipgloss"
)

// Console writes the transcript to out, errors to errOut, and reads from one shared Input.
type Console struct {
	out    io.Writer
	errOut io.Writer
	in     *Input

	noColor     bool
	bannerStyle lipgloss.Style
	headerStyle lipgloss.Style
	errorStyle  lipgloss.Style
}

type Options struct {
	NoColor bool
}

func New(in io.Reader, out io.Writer, errOut io.Writer, opts Options) *Console {
	// Renderers are bound to their writers; a non-terminal writer gets plain text.
	outRenderer := lipgloss.NewRenderer(out)
	errRenderer := lipgloss.NewRenderer(errOut)

	return &Console{
		out:     out,
		errOut:  errOut,
		in:      NewInput(in),
		noColor: opts.NoColor,
		bannerStyle: outRenderer.NewStyle().
			Foreground(lipgloss.Color("#8B5CF6")).
			Bold(true),
		headerStyle: outRenderer.NewStyle().
			Foreground(lipgloss.Color("#06B6D4")).
			Bold(true),
		errorStyle: errRenderer.NewStyle().
			Foreground(lipgloss.Color("#EF4444")),
	}
}

func (c *Console) Print(a ...any) {
	fmt.Fprint(c.out, a...)
}

func (c *Console) Printf(format string, a ...any) {
	fmt.Fprintf(c.out, format, a...)
}

func (c *Console) Println(a ...any) {
	fmt.Fprintln(c.out, a...)
}

// Banner prints "=== text ===".
func (c *Console) Banner(text string) {
	c.Println(c.render(c.bannerStyle, "=== "+text+" ==="))
}

// Header prints "--- text ---".
func (c *Console) Header(text string) {
	c.Println(c.render(c.headerStyle, "--- "+text+" ---"))
}

// Errorln writes one line to the error stream.
func (c *Console) Errorln(text string) {
	fmt.Fprintln(c.errOut, c.render(c.errorStyle, text))
}

// Prompt prints label without a newline and reads one line.
func (c *Console) Prompt(label string) (string, error) {
	c.Print(label)
	line, err := c.in.ReadLine()
	if err != nil {
		log.Printf("console: prompt %q: %v", label, err)
		return "", err
	}
	return line, nil
}

// CloseInput releases the input reader. Safe to call more than once.
func (c *Console) CloseInput() error {
	return c.in.Close()
}

func (c *Console) render(style lipgloss.Style, text string) string {
	if c.noColor {
		return text
	}
	return style.Render(text)
}
