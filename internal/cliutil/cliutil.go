// Package cliutil holds scaffolding shared by the interpreter and
// translate command-line tools: logger setup and error-to-exit-code
// mapping.
package cliutil

import (
	"errors"
	"io"
	"os"
	"time"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

// ExitUsage and ExitFailure mirror the conventional Unix exit codes for
// "bad invocation" and "ran but failed" respectively.
const (
	ExitUsage   = 2
	ExitFailure = 1
)

// NewLogger returns a zerolog.Logger writing to stderr, using a
// human-readable console format when stderr is a terminal and a plain
// JSON stream otherwise. verbose raises the level to debug.
func NewLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	var writer io.Writer = os.Stderr
	if isatty.IsTerminal(os.Stderr.Fd()) {
		writer = zerolog.ConsoleWriter{Out: colorable.NewColorable(os.Stderr), TimeFormat: time.Kitchen}
	}

	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}

// ExitCode maps an error returned from a command's run function to a
// process exit code: nil succeeds, a nil-comparable usage error exits 2,
// anything else exits 1.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}

	var usage *UsageError
	if errors.As(err, &usage) {
		return ExitUsage
	}

	return ExitFailure
}

// UsageError marks an error as a command-line usage mistake (wrong
// argument count, bad flag) rather than a runtime failure.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string { return e.Err.Error() }
func (e *UsageError) Unwrap() error { return e.Err }
