package console

import (
	"bufio"
	"errors"
	"io"
	"sync"
)

// ErrInputClosed is returned by ReadLine after Close.
var ErrInputClosed = errors.New("input closed")

// Input reads lines from a source and releases it exactly once.
type Input struct {
	src     io.Reader
	scanner *bufio.Scanner

	closed   bool
	once     sync.Once
	closeErr error
}

func NewInput(src io.Reader) *Input {
	return &Input{
		src:     src,
		scanner: bufio.NewScanner(src),
	}
}

// ReadLine returns the next line without its terminator.
// It returns io.EOF when the source has no more lines.
func (in *Input) ReadLine() (string, error) {
	if in.closed {
		return "", ErrInputClosed
	}
	if in.scanner.Scan() {
		return in.scanner.Text(), nil
	}
	if err := in.scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

// Close releases the source if it is an io.Closer. Repeated calls are no-ops
// and return the result of the first one.
func (in *Input) Close() error {
	in.once.Do(func() {
		in.closed = true

		if c, ok := in.src.(io.Closer); ok {
			in.closeErr = c.Close()
		}
	})
	return in.closeErr
}
