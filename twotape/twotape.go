// Package twotape implements the data model for two-tape nondeterministic
// Turing machines, the input to the translate package.
package twotape

import (
	turing "github.com/Cheetar/turing-machine-interpreter"
)

// Key identifies a two-tape transition table entry.
type Key struct {
	State string
	Read1 turing.Symbol
	Read2 turing.Symbol
}

// Transition is a single outgoing edge of a two-tape nondeterministic
// transition table.
type Transition struct {
	NextState string
	Write1    turing.Symbol
	Write2    turing.Symbol
	Move1     turing.Direction
	Move2     turing.Direction
}

// Table is a nondeterministic two-tape transition table: each
// (state, read1, read2) key may map to several Transitions.
type Table map[Key][]Transition

// NewTable returns an empty Table.
func NewTable() Table {
	return make(Table)
}

// Add inserts a transition, collapsing exact duplicates.
func (t Table) Add(key Key, tr Transition) {
	for _, existing := range t[key] {
		if existing == tr {
			return
		}
	}

	t[key] = append(t[key], tr)
}

// Lookup returns the (possibly empty) set of applicable transitions for a
// (state, read1, read2) key.
func (t Table) Lookup(state string, read1, read2 turing.Symbol) []Transition {
	return t[Key{State: state, Read1: read1, Read2: read2}]
}

// States returns every state mentioned anywhere in the table, plus Start,
// Accept and Reject.
func (t Table) States() map[string]struct{} {
	states := map[string]struct{}{turing.Start: {}, turing.Accept: {}, turing.Reject: {}}

	for key, transitions := range t {
		states[key.State] = struct{}{}

		for _, tr := range transitions {
			states[tr.NextState] = struct{}{}
		}
	}

	return states
}

// Alphabet returns the minimal alphabet required by spec §4.3.1: Blank
// plus every symbol mentioned anywhere in the table.
func (t Table) Alphabet() map[turing.Symbol]struct{} {
	alphabet := map[turing.Symbol]struct{}{turing.Blank: {}}

	for key, transitions := range t {
		alphabet[key.Read1] = struct{}{}
		alphabet[key.Read2] = struct{}{}

		for _, tr := range transitions {
			alphabet[tr.Write1] = struct{}{}
			alphabet[tr.Write2] = struct{}{}
		}
	}

	return alphabet
}
