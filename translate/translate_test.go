package translate_test

import (
	"testing"

	turing "github.com/Cheetar/turing-machine-interpreter"
	"github.com/Cheetar/turing-machine-interpreter/interpret"
	"github.com/Cheetar/turing-machine-interpreter/translate"
	"github.com/Cheetar/turing-machine-interpreter/twotape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTranslate_AcceptsImmediately ports spec §8 scenario 5: a two-tape
// machine that accepts on its very first transition translates into a
// single-tape machine that still accepts.
func TestTranslate_AcceptsImmediately(t *testing.T) {
	t.Parallel()

	t2 := twotape.NewTable()
	t2.Add(
		twotape.Key{State: turing.Start, Read1: 1, Read2: turing.Blank},
		twotape.Transition{NextState: turing.Accept, Write1: 1, Write2: turing.Blank, Move1: turing.Stay, Move2: turing.Stay},
	)

	single := translate.Translate(t2)
	assert.Positive(t, single.Len())

	tape, err := turing.ParseTape("1")
	require.NoError(t, err)

	accepted, err := interpret.Run(single, tape, 200)
	require.NoError(t, err)
	assert.True(t, accepted)
}

// TestTranslate_RejectsWhenNoPathAccepts mirrors scenario 2 (stuck
// machine): if the two-tape machine has no transition for the input at
// all, translation must still produce a single-tape machine that rejects
// within a bounded number of steps rather than looping forever.
func TestTranslate_RejectsWhenNoPathAccepts(t *testing.T) {
	t.Parallel()

	t2 := twotape.NewTable()
	t2.Add(
		twotape.Key{State: turing.Start, Read1: 2, Read2: turing.Blank},
		twotape.Transition{NextState: turing.Accept, Write1: 2, Write2: turing.Blank, Move1: turing.Stay, Move2: turing.Stay},
	)

	single := translate.Translate(t2)

	tape, err := turing.ParseTape("1")
	require.NoError(t, err)

	accepted, err := interpret.Run(single, tape, 500)
	require.NoError(t, err)
	assert.False(t, accepted)
}

// TestTranslate_TapeGrowth ports scenario 6: tape 1 must be able to grow
// (dir1 = R once past the original input length, together with dir2 = R
// growing tape 2) while the simulation continues to track both heads
// correctly.
func TestTranslate_TapeGrowth(t *testing.T) {
	t.Parallel()

	t2 := twotape.NewTable()
	t2.Add(
		twotape.Key{State: turing.Start, Read1: 1, Read2: turing.Blank},
		twotape.Transition{NextState: "grow", Write1: 1, Write2: 1, Move1: turing.Right, Move2: turing.Right},
	)
	t2.Add(
		twotape.Key{State: "grow", Read1: turing.Blank, Read2: turing.Blank},
		twotape.Transition{NextState: turing.Accept, Write1: turing.Blank, Write2: turing.Blank, Move1: turing.Stay, Move2: turing.Stay},
	)

	single := translate.Translate(t2)

	tape, err := turing.ParseTape("1")
	require.NoError(t, err)

	accepted, err := interpret.Run(single, tape, 2000)
	require.NoError(t, err)
	assert.True(t, accepted)
}

// TestTranslate_Nondeterminism ports scenario 3: two applicable
// transitions from the same key, one leading to accept and one to
// reject, must still translate into an overall-accepting single-tape
// machine (nondeterministic acceptance requires only one path).
func TestTranslate_Nondeterminism(t *testing.T) {
	t.Parallel()

	t2 := twotape.NewTable()
	t2.Add(
		twotape.Key{State: turing.Start, Read1: 1, Read2: turing.Blank},
		twotape.Transition{NextState: turing.Accept, Write1: 1, Write2: turing.Blank, Move1: turing.Stay, Move2: turing.Stay},
	)
	t2.Add(
		twotape.Key{State: turing.Start, Read1: 1, Read2: turing.Blank},
		twotape.Transition{NextState: turing.Reject, Write1: 1, Write2: turing.Blank, Move1: turing.Stay, Move2: turing.Stay},
	)

	single := translate.Translate(t2)

	tape, err := turing.ParseTape("1")
	require.NoError(t, err)

	accepted, err := interpret.Run(single, tape, 200)
	require.NoError(t, err)
	assert.True(t, accepted)
}

// TestTranslate_HeadOneLeftBoundaryClamps covers the Phase-6 dir1=L fix:
// moving head 1 left while already at tape position 0 must pin the head
// in place rather than run off the simulated tape.
func TestTranslate_HeadOneLeftBoundaryClamps(t *testing.T) {
	t.Parallel()

	t2 := twotape.NewTable()
	t2.Add(
		twotape.Key{State: turing.Start, Read1: 1, Read2: turing.Blank},
		twotape.Transition{NextState: "back", Write1: 1, Write2: turing.Blank, Move1: turing.Left, Move2: turing.Stay},
	)
	t2.Add(
		twotape.Key{State: "back", Read1: 1, Read2: turing.Blank},
		twotape.Transition{NextState: turing.Accept, Write1: 1, Write2: turing.Blank, Move1: turing.Stay, Move2: turing.Stay},
	)

	single := translate.Translate(t2)

	tape, err := turing.ParseTape("1")
	require.NoError(t, err)

	accepted, err := interpret.Run(single, tape, 500)
	require.NoError(t, err)
	assert.True(t, accepted)
}

// TestTranslate_WellFormedOutput checks the output well-formedness
// property of spec §10: every generated transition names a next state,
// and the table is nonempty whenever the input is.
func TestTranslate_WellFormedOutput(t *testing.T) {
	t.Parallel()

	t2 := twotape.NewTable()
	t2.Add(
		twotape.Key{State: turing.Start, Read1: 1, Read2: turing.Blank},
		twotape.Transition{NextState: turing.Accept, Write1: 1, Write2: turing.Blank, Move1: turing.Stay, Move2: turing.Stay},
	)

	single := translate.Translate(t2)
	assert.Positive(t, single.Len())

	for state, byRead := range single {
		for read, transitions := range byRead {
			for _, tr := range transitions {
				assert.NotEmpty(t, tr.NextState, "state %q read %d", state, read)
			}
		}
	}
}
