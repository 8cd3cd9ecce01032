package report

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/aymanbagabas/go-osc52/v2"
	"golang.org/x/term"
)

// ErrNotTerminal is returned when the clipboard target is not a terminal.
var ErrNotTerminal = errors.New("clipboard output is not a terminal")

// Clipboard copies text through the terminal with an OSC 52 escape sequence.
type Clipboard struct {
	out     io.Writer
	enabled bool
	mode    osc52.Mode
}

// NewClipboard targets f, usually os.Stderr. Copies are refused when f is
// not a terminal. Running under tmux or screen wraps the sequence for them.
func NewClipboard(f *os.File) *Clipboard {
	return &Clipboard{
		out:     f,
		enabled: term.IsTerminal(int(f.Fd())),
		mode:    detectMode(os.Getenv("TMUX"), os.Getenv("TERM")),
	}
}

// NewClipboardWriter targets an arbitrary writer and always copies.
func NewClipboardWriter(w io.Writer) *Clipboard {
	return &Clipboard{out: w, enabled: true, mode: osc52.DefaultMode}
}

func detectMode(tmux, termName string) osc52.Mode {
	switch {
	case tmux != "":
		return osc52.TmuxMode
	case strings.HasPrefix(termName, "screen"):
		return osc52.ScreenMode
	default:
		return osc52.DefaultMode
	}
}

// Enabled reports whether copies will be attempted.
func (c *Clipboard) Enabled() bool { return c.enabled }

// Copy places text on the system clipboard.
func (c *Clipboard) Copy(text string) error {
	if !c.enabled {
		return ErrNotTerminal
	}
	_, err := osc52.New(text).Mode(c.mode).WriteTo(c.out)
	return err
}
