// Package display contains terminal formatting logic for CLI commands.
//
// Commands keep lookup and config logic separate from rendering by delegating
// all human-readable output to formatters in this package. Formatters write
// to the io.Writer they are given; commands decide between stdout and stderr.
package display

import (
	"io"

	"github.com/fatih/color"
)

var (
	Green = color.New(color.FgGreen).SprintFunc()
	Red   = color.New(color.FgRed).SprintFunc()
	Bold  = color.New(color.Bold).SprintFunc()
	Dim   = color.New(color.Faint).SprintFunc()
)

// Formatter writes formatted output to a writer.
type Formatter interface {
	Format(w io.Writer) error
}

var (
	_ Formatter = (*NetworkList)(nil)
	_ Formatter = (*Current)(nil)
	_ Formatter = (*ConfigSummary)(nil)
)

// DisableColors turns off color output (for non-TTY or JSON mode).
func DisableColors() {
	color.NoColor = true
}
