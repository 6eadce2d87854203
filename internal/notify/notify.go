// Package notify renders user-facing progress, advisory, and error lines.
// A Reporter is created once per run and handed to every stage, so output
// destinations can be swapped in tests.
package notify

import (
	"fmt"
	"io"
	"os"

	fcolor "github.com/fatih/color"
)

// MessageType selects the symbol and color of a line.
type MessageType int

const (
	// ActivityType marks a stage that has started (default color, ► symbol).
	ActivityType MessageType = iota
	// SuccessType marks a finished stage (green, ✔ symbol).
	SuccessType
	// WarningType is used for advisories (yellow, ⚠ symbol).
	WarningType
	// ErrorType is used for fatal errors (red, ✗ symbol).
	ErrorType
	// PlainType prints the content unstyled.
	PlainType
)

type messageConfig struct {
	symbol string
	color  *fcolor.Color
}

func getMessageConfig(t MessageType) messageConfig {
	switch t {
	case ActivityType:
		return messageConfig{symbol: "► ", color: fcolor.New(fcolor.Reset)}
	case SuccessType:
		return messageConfig{symbol: "✔ ", color: fcolor.New(fcolor.FgGreen)}
	case WarningType:
		return messageConfig{symbol: "⚠ ", color: fcolor.New(fcolor.FgYellow)}
	case ErrorType:
		return messageConfig{symbol: "✗ ", color: fcolor.New(fcolor.FgRed)}
	default:
		return messageConfig{color: fcolor.New(fcolor.Reset)}
	}
}

// Reporter writes styled lines. Progress goes to Out, advisories and
// errors to Err.
type Reporter struct {
	Out io.Writer
	Err io.Writer
}

// NewReporter returns a Reporter writing to out and errOut. Nil writers
// default to os.Stdout and os.Stderr.
func NewReporter(out, errOut io.Writer) *Reporter {
	if out == nil {
		out = os.Stdout
	}
	if errOut == nil {
		errOut = os.Stderr
	}
	return &Reporter{Out: out, Err: errOut}
}

// Start announces a stage that is about to run.
func (r *Reporter) Start(format string, args ...any) {
	write(r.Out, ActivityType, format, args...)
}

// Succeed marks the running stage as finished and leaves a blank line.
func (r *Reporter) Succeed(format string, args ...any) {
	write(r.Out, SuccessType, format, args...)
	fmt.Fprintln(r.Out)
}

// Warn prints a non-blocking advisory.
func (r *Reporter) Warn(format string, args ...any) {
	write(r.Err, WarningType, format, args...)
}

// Error prints a fatal error.
func (r *Reporter) Error(format string, args ...any) {
	write(r.Err, ErrorType, format, args...)
}

// Printf prints an unstyled line to Out.
func (r *Reporter) Printf(format string, args ...any) {
	write(r.Out, PlainType, format, args...)
}

func write(w io.Writer, t MessageType, format string, args ...any) {
	content := format
	if len(args) > 0 {
		content = fmt.Sprintf(format, args...)
	}
	cfg := getMessageConfig(t)
	// Output errors are ignored: a closed terminal must not abort the run.
	_, _ = cfg.color.Fprintf(w, "%s%s\n", cfg.symbol, content)
}
