// Command interpreter decides whether a nondeterministic single-tape
// Turing machine accepts an input word within a bounded number of steps.
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	turing "github.com/Cheetar/turing-machine-interpreter"
	"github.com/Cheetar/turing-machine-interpreter/filereader"
	"github.com/Cheetar/turing-machine-interpreter/internal/cliutil"
	"github.com/Cheetar/turing-machine-interpreter/interpret"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var verbose bool

func main() {
	os.Exit(cliutil.ExitCode(newRootCmd().Execute()))
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "interpreter <machine-file> <max-steps>",
		Short: "Decide whether a nondeterministic Turing machine accepts an input word",
		Long: `interpreter reads a nondeterministic single-tape transition table from
machine-file, a word of digits from stdin, and prints YES if some
execution path accepts the word within max-steps layers of breadth-first
exploration, NO otherwise.`,
		Args: cobra.ExactArgs(2),
		RunE: runInterpreter,
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	return cmd
}

func runInterpreter(cmd *cobra.Command, args []string) error {
	logger := cliutil.NewLogger(verbose)
	ctx := logger.WithContext(context.Background())

	steps, err := strconv.Atoi(args[1])
	if err != nil || steps < 0 {
		return &cliutil.UsageError{Err: fmt.Errorf("max-steps must be a nonnegative integer, got %q", args[1])}
	}

	table, err := filereader.ReadFileCtx(ctx, args[0])
	if err != nil {
		return fmt.Errorf("load machine: %w", err)
	}

	word, err := readTapeLine(cmd.InOrStdin())
	if err != nil {
		return fmt.Errorf("read input word: %w", err)
	}

	accepted, err := interpret.RunCtx(ctx, table, word, steps)
	if err != nil {
		return fmt.Errorf("run machine: %w", err)
	}

	zerolog.Ctx(ctx).Debug().Bool("accepted", accepted).Int("steps", steps).Msg("decision")

	if accepted {
		fmt.Fprintln(cmd.OutOrStdout(), "YES")
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), "NO")
	}

	return nil
}

func readTapeLine(r io.Reader) ([]turing.Symbol, error) {
	scanner := bufio.NewScanner(r)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, err
		}

		return turing.ParseTape("")
	}

	return turing.ParseTape(scanner.Text())
}
