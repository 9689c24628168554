package turing_test

import (
	"testing"

	turing "github.com/Cheetar/turing-machine-interpreter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDirection(t *testing.T) {
	t.Parallel()

	tt := []struct {
		name string
		in   string
		want turing.Direction
		err  error
	}{
		{name: "left", in: "L", want: turing.Left},
		{name: "right", in: "R", want: turing.Right},
		{name: "stay", in: "S", want: turing.Stay},
		{name: "unknown", in: "X", err: turing.ErrUnknownDirection},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := turing.ParseDirection(tc.in)
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestDirection_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "L", turing.Left.String())
	assert.Equal(t, "R", turing.Right.String())
	assert.Equal(t, "S", turing.Stay.String())
}

func TestIsTerminal(t *testing.T) {
	t.Parallel()

	assert.True(t, turing.IsTerminal(turing.Accept))
	assert.True(t, turing.IsTerminal(turing.Reject))
	assert.False(t, turing.IsTerminal(turing.Start))
	assert.False(t, turing.IsTerminal("q1"))
}

func TestTable_AddCollapsesDuplicates(t *testing.T) {
	t.Parallel()

	table := turing.NewTable()
	tr := turing.Transition{NextState: turing.Accept, Write: 1, Move: turing.Stay}

	table.Add(turing.Start, 1, tr)
	table.Add(turing.Start, 1, tr)

	assert.Len(t, table.Lookup(turing.Start, 1), 1)
	assert.Equal(t, 1, table.Len())
}

func TestTable_AddKeepsDistinctTransitionsNondeterministic(t *testing.T) {
	t.Parallel()

	table := turing.NewTable()
	table.Add(turing.Start, 1, turing.Transition{NextState: turing.Accept, Write: 1, Move: turing.Stay})
	table.Add(turing.Start, 1, turing.Transition{NextState: turing.Reject, Write: 1, Move: turing.Stay})

	assert.Len(t, table.Lookup(turing.Start, 1), 2)
}

func TestTable_LookupMissingIsEmpty(t *testing.T) {
	t.Parallel()

	table := turing.NewTable()
	assert.Empty(t, table.Lookup("nowhere", 5))
}

func TestParseTape(t *testing.T) {
	t.Parallel()

	tt := []struct {
		name string
		in   string
		want []turing.Symbol
		err  error
	}{
		{name: "digits", in: "123", want: []turing.Symbol{1, 2, 3}},
		{name: "empty", in: "", want: []turing.Symbol{}},
		{name: "blank rejected", in: "10", err: turing.ErrInputContainsBlank},
		{name: "non digit", in: "1a", err: turing.ErrInvalidDigit},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := turing.ParseTape(tc.in)
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
