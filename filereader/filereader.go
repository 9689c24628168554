// Package filereader reads single-tape Turing machine transition tables
// from text files structured as one transition per line:
//
//	<state> <read> <next_state> <write> <direction>
//
// Fields are whitespace-delimited. read and write must parse as
// nonnegative integers; direction must be one of L, R, S. Blank lines are
// ignored; a trailing newline is tolerated.
package filereader

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	turing "github.com/Cheetar/turing-machine-interpreter"
)

const fieldCount = 5

var (
	// ErrParseTransition is returned when a transition line cannot be parsed.
	ErrParseTransition = errors.New("parse transition")

	// ErrNoTransitions is returned when the file contains no valid transitions.
	ErrNoTransitions = errors.New("no transitions")
)

// ReadFileCtx reads a transition table from the given filepath and returns
// a turing.Table, or an error in case of a missing file or a malformed
// line.
func ReadFileCtx(ctx context.Context, filePath string) (turing.Table, error) {
	path := filepath.Clean(filePath)

	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("file %q does not exist: %w", path, err)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read file %q: %w", path, err)
	}

	defer func() {
		_ = file.Close()
	}()

	return ReadCtx(ctx, file)
}

// ReadCtx reads a transition table from r.
func ReadCtx(ctx context.Context, r io.Reader) (turing.Table, error) {
	scanner := bufio.NewScanner(r)

	table := turing.NewTable()
	n := 0

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, err //nolint:wrapcheck
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		state, read, tr, err := ParseLine(line)
		if err != nil {
			return nil, err
		}

		table.Add(state, read, tr)
		n++
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read transitions: %w", err)
	}

	if n == 0 {
		return nil, ErrNoTransitions
	}

	return table, nil
}

// ParseLine parses a single transition line:
// "<state> <read> <next_state> <write> <direction>".
func ParseLine(line string) (state string, read turing.Symbol, tr turing.Transition, err error) {
	fields := strings.Fields(line)
	if len(fields) != fieldCount {
		return "", 0, turing.Transition{}, fmt.Errorf("%w: %w: %q: want %d fields, got %d",
			ErrParseTransition, turing.ErrArity, line, fieldCount, len(fields))
	}

	state = fields[0]

	read, err = parseSymbol(fields[1])
	if err != nil {
		return "", 0, turing.Transition{}, fmt.Errorf("%w: %q: %w", ErrParseTransition, line, err)
	}

	nextState := fields[2]

	write, err := parseSymbol(fields[3])
	if err != nil {
		return "", 0, turing.Transition{}, fmt.Errorf("%w: %q: %w", ErrParseTransition, line, err)
	}

	dir, err := turing.ParseDirection(fields[4])
	if err != nil {
		return "", 0, turing.Transition{}, fmt.Errorf("%w: %q: %w", ErrParseTransition, line, err)
	}

	return state, read, turing.Transition{NextState: nextState, Write: write, Move: dir}, nil
}

func parseSymbol(field string) (turing.Symbol, error) {
	v, err := strconv.Atoi(field)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("%w: %q", turing.ErrInvalidSymbol, field)
	}

	return turing.Symbol(v), nil
}
