// Package turing implements the data model for nondeterministic
// single-tape Turing machines. The breadth-first interpreter lives in the
// interpret package.
package turing

import (
	"errors"
	"fmt"
)

// Symbol is a tape symbol. Blank is the designated Symbol 0. The
// input-word alphabet is {1..9}; Blank may not appear in an initial tape.
type Symbol int

// Blank is the designated blank tape symbol.
const Blank Symbol = 0

// Direction of head movement.
type Direction int

// Available head directions.
const (
	Left Direction = iota
	Right
	Stay
)

// String renders a Direction using the wire-format letters L/R/S.
func (d Direction) String() string {
	switch d {
	case Left:
		return "L"
	case Right:
		return "R"
	case Stay:
		return "S"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// ParseDirection parses a wire-format direction letter.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "L":
		return Left, nil
	case "R":
		return Right, nil
	case "S":
		return Stay, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownDirection, s)
	}
}

// Distinguished states. A machine need not use Reject.
const (
	Start  = "start"
	Accept = "accept"
	Reject = "reject"
)

// IsTerminal reports whether state is Accept or Reject. Terminal states
// have no outgoing transitions consulted by the interpreter.
func IsTerminal(state string) bool {
	return state == Accept || state == Reject
}

// Transition is a single outgoing edge of a nondeterministic transition
// table: on firing, transition to NextState, Write the symbol under the
// head, then Move the head in Direction.
type Transition struct {
	NextState string
	Write     Symbol
	Move      Direction
}

// Table is a nondeterministic single-tape transition table: each
// (state, symbol) key may map to several Transitions. Duplicate tuples
// collapse per the set semantics of spec §3.
type Table map[string]map[Symbol][]Transition

// NewTable returns an empty Table.
func NewTable() Table {
	return make(Table)
}

// Add inserts a transition, collapsing exact duplicates.
func (t Table) Add(state string, read Symbol, tr Transition) {
	byState, ok := t[state]
	if !ok {
		byState = make(map[Symbol][]Transition)
		t[state] = byState
	}

	for _, existing := range byState[read] {
		if existing == tr {
			return
		}
	}

	byState[read] = append(byState[read], tr)
}

// Lookup returns the (possibly empty) set of applicable transitions for a
// (state, symbol) pair. Accept and Reject are terminal and are never
// looked up by the interpreter.
func (t Table) Lookup(state string, read Symbol) []Transition {
	return t[state][read]
}

// Len returns the total number of transitions in the table.
func (t Table) Len() int {
	n := 0
	for _, byState := range t {
		for _, transitions := range byState {
			n += len(transitions)
		}
	}

	return n
}

var (
	// ErrUnknownDirection is returned when a direction field is not L, R or S.
	ErrUnknownDirection = errors.New("unknown direction")

	// ErrArity is returned when a transition line does not have the expected
	// number of whitespace-delimited fields.
	ErrArity = errors.New("wrong number of fields")

	// ErrInvalidSymbol is returned when a symbol field does not parse as a
	// nonnegative integer.
	ErrInvalidSymbol = errors.New("invalid symbol")

	// ErrInputContainsBlank is returned when the initial tape contains Blank.
	ErrInputContainsBlank = errors.New("input tape contains blank symbol")

	// ErrInvalidDigit is returned when an input-tape character is not a
	// decimal digit in 1..9.
	ErrInvalidDigit = errors.New("invalid input digit")
)

// ParseTape converts a line of decimal digits (each in 1..9) into an input
// tape. It rejects Blank per spec §3: the input-word alphabet is {1..9}.
func ParseTape(line string) ([]Symbol, error) {
	tape := make([]Symbol, 0, len(line))

	for _, r := range line {
		if r < '0' || r > '9' {
			return nil, fmt.Errorf("%w: %q", ErrInvalidDigit, r)
		}

		sym := Symbol(r - '0')
		if sym == Blank {
			return nil, fmt.Errorf("%w", ErrInputContainsBlank)
		}

		tape = append(tape, sym)
	}

	return tape, nil
}
