package twotapereader_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	turing "github.com/Cheetar/turing-machine-interpreter"
	"github.com/Cheetar/turing-machine-interpreter/twotape"
	"github.com/Cheetar/turing-machine-interpreter/twotapereader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//nolint:paralleltest
func TestReadFileCtx_ValidFile(t *testing.T) {
	testFilePath := filepath.Join("testdata", "accept_one.tm")
	assert.FileExists(t, testFilePath)

	ctx := context.Background()
	table, err := twotapereader.ReadFileCtx(ctx, testFilePath)
	require.NoError(t, err)
	assert.Len(t, table.Lookup(turing.Start, 1, 0), 1)
}

//nolint:paralleltest
func TestReadFileCtx_NoFile(t *testing.T) {
	ctx := context.Background()
	table, err := twotapereader.ReadFileCtx(ctx, "invalid_path")
	require.ErrorIs(t, err, os.ErrNotExist)
	assert.Nil(t, table)
}

func TestReadCtx_InvalidData(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	table, err := twotapereader.ReadCtx(ctx, strings.NewReader("\n\n"))
	require.ErrorIs(t, err, twotapereader.ErrNoTransitions)
	assert.Empty(t, table)
}

func TestParseLine(t *testing.T) {
	t.Parallel()

	tt := []struct {
		name      string
		line      string
		wantKey   twotape.Key
		wantTr    twotape.Transition
		wantError bool
	}{
		{
			name:    "valid",
			line:    "start 1 0 accept 1 0 S S",
			wantKey: twotape.Key{State: "start", Read1: 1, Read2: 0},
			wantTr:  twotape.Transition{NextState: "accept", Write1: 1, Write2: 0, Move1: turing.Stay, Move2: turing.Stay},
		},
		{
			name:      "bad arity",
			line:      "start 1 0 accept 1 0 S",
			wantError: true,
		},
		{
			name:      "bad direction",
			line:      "start 1 0 accept 1 0 X S",
			wantError: true,
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			key, tr, err := twotapereader.ParseLine(tc.line)
			if tc.wantError {
				require.ErrorIs(t, err, twotapereader.ErrParseTransition)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.wantKey, key)
			assert.Equal(t, tc.wantTr, tr)
		})
	}
}
