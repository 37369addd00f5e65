// Package style renders emphasis (bold, underline) for report output.
package style

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// Kind is a type of emphasis.
type Kind int

const (
	Bold Kind = iota
	Underline
)

// Emphasizer decorates text for display.
type Emphasizer interface {
	Emphasize(text string, kind Kind) string
}

// ANSI emphasizes with terminal escape sequences.
type ANSI struct{}

func (ANSI) Emphasize(text string, kind Kind) string {
	switch kind {
	case Bold:
		return "\x1b[1m" + text + "\x1b[0m"
	case Underline:
		return "\x1b[4m" + text + "\x1b[0m"
	default:
		return text
	}
}

// Markup emphasizes with HTML-like tags.
type Markup struct{}

func (Markup) Emphasize(text string, kind Kind) string {
	switch kind {
	case Bold:
		return "<b>" + text + "</b>"
	case Underline:
		return "<u>" + text + "</u>"
	default:
		return text
	}
}

// Plain leaves text unchanged.
type Plain struct{}

func (Plain) Emphasize(text string, _ Kind) string {
	return text
}

// Auto returns ANSI when w is a terminal and Plain otherwise.
func Auto(w io.Writer) Emphasizer {
	if f, ok := w.(*os.File); ok {
		fd := f.Fd()
		if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
			return ANSI{}
		}
	}
	return Plain{}
}

// Parse returns the emphasizer named by a configuration value
// (auto, ansi, markup or plain). w is only used for auto.
func Parse(name string, w io.Writer) (Emphasizer, error) {
	switch name {
	case "", "auto":
		return Auto(w), nil
	case "ansi":
		return ANSI{}, nil
	case "markup":
		return Markup{}, nil
	case "plain":
		return Plain{}, nil
	default:
		return nil, fmt.Errorf("unknown style: %s", name)
	}
}
