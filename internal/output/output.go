// Package output provides formatted output utilities for the CLI.
package output

import (
	"fmt"
	"io"
	"os"
)

// Verbosity controls how much the Writer prints.
type Verbosity int

const (
	// Normal prints violations and summaries only.
	Normal Verbosity = iota
	// Verbose additionally prints clean files and no-change notices.
	Verbose
	// Debug additionally echoes external commands as they run.
	Debug
)

// Writer handles CLI output formatting.
type Writer struct {
	out       io.Writer
	err       io.Writer
	color     bool
	verbosity Verbosity
}

// New creates a new Writer with default settings.
func New() *Writer {
	return &Writer{
		out:   os.Stdout,
		err:   os.Stderr,
		color: isTerminal(),
	}
}

// NewWithWriters creates a Writer with custom io.Writers (for testing).
func NewWithWriters(out, err io.Writer, color bool) *Writer {
	return &Writer{
		out:   out,
		err:   err,
		color: color,
	}
}

// SetVerbosity sets the output verbosity level.
func (w *Writer) SetVerbosity(v Verbosity) {
	w.verbosity = v
}

// Verbosity returns the current verbosity level.
func (w *Writer) Verbosity() Verbosity {
	return w.verbosity
}

// Print writes to stdout.
func (w *Writer) Print(format string, args ...interface{}) {
	fmt.Fprintf(w.out, format, args...)
}

// Println writes a line to stdout.
func (w *Writer) Println(format string, args ...interface{}) {
	fmt.Fprintf(w.out, format+"\n", args...)
}

// Errorln writes a line to stderr.
func (w *Writer) Errorln(format string, args ...interface{}) {
	fmt.Fprintf(w.err, format+"\n", args...)
}

// Info prints an informational line (skipped below Verbose).
func (w *Writer) Info(format string, args ...interface{}) {
	if w.verbosity < Verbose {
		return
	}
	w.Println(format, args...)
}

// Debug prints a diagnostic line (skipped below Debug).
func (w *Writer) Debug(format string, args ...interface{}) {
	if w.verbosity < Debug {
		return
	}
	msg := fmt.Sprintf(format, args...)
	if w.color {
		w.Errorln("%s%s%s", dim, msg, reset)
	} else {
		w.Errorln("%s", msg)
	}
}

// Warning prints a warning message to stderr.
func (w *Writer) Warning(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if w.color {
		w.Errorln("%swarning:%s %s", yellow, reset, msg)
	} else {
		w.Errorln("warning: %s", msg)
	}
}

// ErrorPrefix prints an error message with a wscheck prefix to stderr.
func (w *Writer) ErrorPrefix(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if w.color {
		w.Errorln("%swscheck:%s %s", red, reset, msg)
	} else {
		w.Errorln("wscheck: %s", msg)
	}
}

// FinalFailure prints a final failure message.
func (w *Writer) FinalFailure(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if w.color {
		w.Println("%s%s%s", red, msg, reset)
	} else {
		w.Println("%s", msg)
	}
}

// FinalSuccess prints a final success message (skipped below Verbose).
func (w *Writer) FinalSuccess(format string, args ...interface{}) {
	if w.verbosity < Verbose {
		return
	}
	msg := fmt.Sprintf(format, args...)
	if w.color {
		w.Println("%s%s%s", green, msg, reset)
	} else {
		w.Println("%s", msg)
	}
}

// isTerminal returns true if stdout is a terminal.
func isTerminal() bool {
	// Simple check - could be enhanced with golang.org/x/term
	if fi, _ := os.Stdout.Stat(); fi != nil {
		return (fi.Mode() & os.ModeCharDevice) != 0
	}
	return false
}

// ANSI color codes.
const (
	reset  = "\033[0m"
	bold   = "\033[1m"
	dim    = "\033[2m"
	red    = "\033[31m"
	green  = "\033[32m"
	yellow = "\033[33m"
	cyan   = "\033[36m"
)

// Semantic color roles for help output.
const (
	colorTitle       = bold + cyan
	colorSection     = bold + yellow
	colorFlag        = yellow
	colorDescription = dim
	colorExample     = cyan
)

// HelpTitle formats the main help title line.
func (w *Writer) HelpTitle(title string) {
	if w.color {
		w.Errorln("%s%s%s", colorTitle, title, reset)
	} else {
		w.Errorln("%s", title)
	}
}

// HelpSection formats a section header (e.g., "Flags:").
func (w *Writer) HelpSection(title string) {
	w.Errorln("")
	if w.color {
		w.Errorln("%s%s%s", colorSection, title, reset)
	} else {
		w.Errorln("%s", title)
	}
}

// HelpUsage formats usage lines.
func (w *Writer) HelpUsage(usage string) {
	w.Errorln("  %s", usage)
}

// HelpFlag formats a flag with its description.
func (w *Writer) HelpFlag(name, description string, width int) {
	if w.color {
		w.Errorln("  %s%-*s%s  %s%s%s", colorFlag, width, name, reset, colorDescription, description, reset)
	} else {
		w.Errorln("  %-*s  %s", width, name, description)
	}
}

// HelpExample formats an example command with description.
func (w *Writer) HelpExample(command, description string) {
	if w.color {
		w.Errorln("  %s%s%s", colorExample, command, reset)
		if description != "" {
			w.Errorln("      %s%s%s", colorDescription, description, reset)
		}
	} else {
		w.Errorln("  %s", command)
		if description != "" {
			w.Errorln("      %s", description)
		}
	}
}
