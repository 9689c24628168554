// Package twotapereader reads two-tape Turing machine transition tables
// from text files structured as one transition per line:
//
//	<state> <read1> <read2> <next_state> <write1> <write2> <dir1> <dir2>
//
// The format mirrors the single-tape format read by filereader, with
// three extra fields for the second tape's read symbol, write symbol and
// direction.
package twotapereader

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
	"github.com/Cheetar/turing-machine-interpreter/twotape"
)

const fieldCount = 8

var (
	// ErrParseTransition is returned when a transition line cannot be parsed.
	ErrParseTransition = errors.New("parse transition")

	// ErrNoTransitions is returned when the file contains no valid transitions.
	ErrNoTransitions = errors.New("no transitions")
)

// ReadFileCtx reads a two-tape transition table from the given filepath.
func ReadFileCtx(ctx context.Context, filePath string) (twotape.Table, error) {
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

// ReadCtx reads a two-tape transition table from r.
func ReadCtx(ctx context.Context, r io.Reader) (twotape.Table, error) {
	scanner := bufio.NewScanner(r)

	table := twotape.NewTable()
	n := 0

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, err //nolint:wrapcheck
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		key, tr, err := ParseLine(line)
		if err != nil {
			return nil, err
		}

		table.Add(key, tr)
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

// ParseLine parses a single two-tape transition line:
// "<state> <read1> <read2> <next_state> <write1> <write2> <dir1> <dir2>".
func ParseLine(line string) (twotape.Key, twotape.Transition, error) {
	fields := strings.Fields(line)
	if len(fields) != fieldCount {
		return twotape.Key{}, twotape.Transition{}, fmt.Errorf("%w: %w: %q: want %d fields, got %d",
			ErrParseTransition, turing.ErrArity, line, fieldCount, len(fields))
	}

	read1, err := parseSymbol(fields[1])
	if err != nil {
		return twotape.Key{}, twotape.Transition{}, fmt.Errorf("%w: %q: %w", ErrParseTransition, line, err)
	}

	read2, err := parseSymbol(fields[2])
	if err != nil {
		return twotape.Key{}, twotape.Transition{}, fmt.Errorf("%w: %q: %w", ErrParseTransition, line, err)
	}

	write1, err := parseSymbol(fields[4])
	if err != nil {
		return twotape.Key{}, twotape.Transition{}, fmt.Errorf("%w: %q: %w", ErrParseTransition, line, err)
	}

	write2, err := parseSymbol(fields[5])
	if err != nil {
		return twotape.Key{}, twotape.Transition{}, fmt.Errorf("%w: %q: %w", ErrParseTransition, line, err)
	}

	dir1, err := turing.ParseDirection(fields[6])
	if err != nil {
		return twotape.Key{}, twotape.Transition{}, fmt.Errorf("%w: %q: %w", ErrParseTransition, line, err)
	}

	dir2, err := turing.ParseDirection(fields[7])
	if err != nil {
		return twotape.Key{}, twotape.Transition{}, fmt.Errorf("%w: %q: %w", ErrParseTransition, line, err)
	}

	key := twotape.Key{State: fields[0], Read1: read1, Read2: read2}
	tr := twotape.Transition{
		NextState: fields[3],
		Write1:    write1,
		Write2:    write2,
		Move1:     dir1,
		Move2:     dir2,
	}

	return key, tr, nil
}

func parseSymbol(field string) (turing.Symbol, error) {
	v, err := strconv.Atoi(field)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("%w: %q", turing.ErrInvalidSymbol, field)
	}

	return turing.Symbol(v), nil
}
