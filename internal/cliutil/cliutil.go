// Package cliutil holds the color/tty helpers cmd/lmc's subcommands share:
// highlighting the ltl --satisfiable verdict and the parity --regions /
// --strategy winner columns when stdout is a terminal.
package cliutil

import (
	"os"

	"github.com/fatih/color"
)

// Printer renders verdicts and winner labels, optionally colorized.
type Printer struct {
	enabled bool
}

// NewPrinter returns a Printer. Color is on when stdout is a terminal and
// noColor is false.
func NewPrinter(noColor bool) *Printer {
	return &Printer{enabled: !noColor && isTTY(os.Stdout)}
}

// Verdict renders a "True"/"False" satisfiability result, green/red when
// enabled.
func (p *Printer) Verdict(ok bool) string {
	word := "False"
	if ok {
		word = "True"
	}
	if !p.enabled {
		return word
	}
	if ok {
		return color.GreenString(word)
	}
	return color.RedString(word)
}

// Winner renders a region owner's display string, cyan for Even and
// magenta for Odd when enabled.
func (p *Printer) Winner(label string, isEven bool) string {
	if !p.enabled {
		return label
	}
	if isEven {
		return color.CyanString(label)
	}
	return color.MagentaString(label)
}

func isTTY(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
