// Command translate compiles a two-tape nondeterministic Turing machine
// into an equivalent single-tape nondeterministic Turing machine and
// prints the generated transition table in the single-tape file format.
package main

import (
	"context"
	"fmt"
	"os"
	"sort"

	turing "github.com/Cheetar/turing-machine-interpreter"
	"github.com/Cheetar/turing-machine-interpreter/internal/cliutil"
	"github.com/Cheetar/turing-machine-interpreter/translate"
	"github.com/Cheetar/turing-machine-interpreter/twotapereader"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var verbose bool

func main() {
	os.Exit(cliutil.ExitCode(newRootCmd().Execute()))
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "translate <machine-file>",
		Short: "Compile a two-tape Turing machine into an equivalent single-tape machine",
		Long: `translate reads a two-tape nondeterministic transition table from
machine-file and prints an equivalent single-tape nondeterministic
transition table, one transition per line, in canonical order.`,
		Args: cobra.ExactArgs(1),
		RunE: runTranslate,
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	return cmd
}

func runTranslate(cmd *cobra.Command, args []string) error {
	logger := cliutil.NewLogger(verbose)
	ctx := logger.WithContext(context.Background())

	// The translate package logs through the global logger.
	log.Logger = logger

	t2, err := twotapereader.ReadFileCtx(ctx, args[0])
	if err != nil {
		return fmt.Errorf("load two-tape machine: %w", err)
	}

	single := translate.Translate(t2)

	zerolog.Ctx(ctx).Debug().Int("transitions", single.Len()).Msg("translated")

	for _, line := range lines(single) {
		fmt.Fprintln(cmd.OutOrStdout(), line)
	}

	return nil
}

// lines renders table in the canonical order described by spec.md §4.3.5:
// lexicographic by (state, read symbol), then by the order transitions
// were added for a given key.
func lines(table turing.Table) []string {
	type key struct {
		state string
		read  turing.Symbol
	}

	keys := make([]key, 0, len(table))
	for state, byRead := range table {
		for read := range byRead {
			keys = append(keys, key{state, read})
		}
	}

	sort.Slice(keys, func(i, j int) bool {
		if keys[i].state != keys[j].state {
			return keys[i].state < keys[j].state
		}

		return keys[i].read < keys[j].read
	})

	out := make([]string, 0, len(keys))

	for _, k := range keys {
		for _, tr := range table.Lookup(k.state, k.read) {
			out = append(out, fmt.Sprintf("%s %d %s %d %s", k.state, k.read, tr.NextState, tr.Write, tr.Move))
		}
	}

	return out
}
