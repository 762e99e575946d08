// Package console runs Gem Hunters on a plain terminal: a line or raw-key
// reader for input and a text printer for output.
package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/vovakirdan/gem-hunters/internal/games/gemhunt"
)

// Printer writes game output as plain text. It implements gemhunt.Output.
type Printer struct {
	w       io.Writer
	newline string
}

// NewPrinter returns a printer that ends lines with "\n".
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w, newline: "\n"}
}

// NewRawPrinter returns a printer for a terminal in raw mode, where the
// line discipline no longer turns "\n" into "\r\n".
func NewRawPrinter(w io.Writer) *Printer {
	return &Printer{w: w, newline: "\r\n"}
}

// Board prints the six board rows.
func (p *Printer) Board(s gemhunt.Snapshot) {
	text := strings.TrimSuffix(s.String(), "\n")
	for _, row := range strings.Split(text, "\n") {
		fmt.Fprint(p.w, row, p.newline)
	}
}

// Message prints one status line. Prompts (text ending in a space) stay on
// the current line so the answer follows them.
func (p *Printer) Message(text string) {
	if strings.HasSuffix(text, " ") {
		fmt.Fprint(p.w, text)
		return
	}
	fmt.Fprint(p.w, text, p.newline)
}
