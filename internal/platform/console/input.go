package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode"

	"golang.org/x/term"
)

// ErrInterrupted is returned when the player presses Ctrl+C or Ctrl+D in raw mode.
var ErrInterrupted = errors.New("console: interrupted")

const (
	keyCtrlC = 0x03
	keyCtrlD = 0x04
)

// KeyReader reads one move token at a time. It implements gemhunt.Input.
//
// In line mode whitespace, including the Enter that submits a line, is
// skipped; "u\n" and "udr\n" yield the same first token. In raw mode
// every key press is a token and is echoed back to the terminal.
type KeyReader struct {
	r    *bufio.Reader
	raw  bool
	echo io.Writer
}

// NewKeyReader returns a reader for line-buffered input.
func NewKeyReader(r io.Reader) *KeyReader {
	return &KeyReader{r: bufio.NewReader(r)}
}

// NewRawKeyReader returns a reader for a terminal in raw mode. Each key is
// echoed to echo followed by "\r\n"; echo may be nil.
func NewRawKeyReader(r io.Reader, echo io.Writer) *KeyReader {
	return &KeyReader{r: bufio.NewReader(r), raw: true, echo: echo}
}

// ReadMove blocks until the next non-whitespace key is available.
func (k *KeyReader) ReadMove() (rune, error) {
	for {
		ch, _, err := k.r.ReadRune()
		if err != nil {
			return 0, err
		}
		if k.raw && (ch == keyCtrlC || ch == keyCtrlD) {
			return 0, ErrInterrupted
		}
		if unicode.IsSpace(ch) {
			continue
		}
		if k.raw && k.echo != nil {
			fmt.Fprintf(k.echo, "%c\r\n", ch)
		}
		return ch, nil
	}
}

// MakeRaw puts the terminal behind f into raw mode and returns a function
// that restores it. It fails if f is not a terminal.
func MakeRaw(f *os.File) (restore func() error, err error) {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return nil, fmt.Errorf("console: %s is not a terminal", f.Name())
	}
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("console: cannot enter raw mode: %w", err)
	}
	return func() error {
		return term.Restore(fd, state)
	}, nil
}

// IsTerminal reports whether f is connected to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
