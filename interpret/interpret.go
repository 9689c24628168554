// Package interpret decides whether a nondeterministic single-tape
// Turing machine accepts an input word within a bounded number of steps,
// using layered breadth-first exploration over the configuration graph
// with history-based cycle detection.
package interpret

import (
	"context"
	"strconv"
	"strings"

	turing "github.com/Cheetar/turing-machine-interpreter"
	"github.com/rs/zerolog"
)

// Config is a Turing machine configuration: the current state, the full
// tape contents, and the head position. Configurations are compared by
// value.
type Config struct {
	State string
	Tape  []turing.Symbol
	Head  int
}

// initial builds the initial configuration for a run: (start, tape ⧺
// [Blank], 0). The padding guarantees the head has a legal symbol under
// it even if the input is empty.
func initial(tape []turing.Symbol) Config {
	padded := make([]turing.Symbol, len(tape)+1)
	copy(padded, tape)
	padded[len(tape)] = turing.Blank

	return Config{State: turing.Start, Tape: padded, Head: 0}
}

// fingerprint returns a string uniquely identifying a Config's value, used
// as the history-set key. Structural value equality on (state, tape,
// head) is exactly string equality on the fingerprint.
func fingerprint(c Config) string {
	var b strings.Builder

	b.WriteString(c.State)
	b.WriteByte('\x00')
	b.WriteString(strconv.Itoa(c.Head))
	b.WriteByte('\x00')

	for _, s := range c.Tape {
		b.WriteString(strconv.Itoa(int(s)))
		b.WriteByte(',')
	}

	return b.String()
}

// successors computes every configuration reachable from c in one step of
// table, per spec §4.2: overwrite the read cell, move the head (clamped
// at 0 on Left, extending the tape by one Blank on Right past the end),
// and transition to the next state.
func successors(table turing.Table, c Config) []Config {
	read := c.Tape[c.Head]
	transitions := table.Lookup(c.State, read)

	if len(transitions) == 0 {
		return nil
	}

	out := make([]Config, 0, len(transitions))

	for _, tr := range transitions {
		tape := make([]turing.Symbol, len(c.Tape))
		copy(tape, c.Tape)
		tape[c.Head] = tr.Write

		head := c.Head

		switch tr.Move {
		case turing.Left:
			if head > 0 {
				head--
			}
		case turing.Right:
			head++
			if head >= len(tape) {
				tape = append(tape, turing.Blank)
			}
		case turing.Stay:
		}

		out = append(out, Config{State: tr.NextState, Tape: tape, Head: head})
	}

	return out
}

// Run decides whether table accepts tape within steps layers of BFS. See
// RunCtx for the context-aware variant.
func Run(table turing.Table, tape []turing.Symbol, steps int) (bool, error) {
	return RunCtx(context.Background(), table, tape, steps)
}

// RunCtx decides whether table accepts tape within steps layers of BFS,
// observing ctx for cancellation between layers. A config is dequeued at
// most once across the whole run (history dedup), so cycles in the
// configuration graph cannot cause nontermination: the run always
// terminates within steps layers.
//
// Stuck (no applicable transition) and exhausting steps with a non-empty
// frontier are both ordinary rejections, not errors.
func RunCtx(ctx context.Context, table turing.Table, tape []turing.Symbol, steps int) (bool, error) {
	logger := zerolog.Ctx(ctx)

	frontier := []Config{initial(tape)}
	history := make(map[string]struct{})

	for layer := 0; layer < steps; layer++ {
		if err := ctx.Err(); err != nil {
			return false, err //nolint:wrapcheck
		}

		if len(frontier) == 0 {
			logger.Debug().Int("layer", layer).Msg("frontier emptied, rejecting")
			return false, nil
		}

		var next []Config

		seenNext := make(map[string]struct{})

		for _, cfg := range frontier {
			fp := fingerprint(cfg)
			if _, dup := history[fp]; dup {
				continue
			}

			history[fp] = struct{}{}

			switch cfg.State {
			case turing.Accept:
				logger.Debug().Int("layer", layer).Msg("accept configuration reached")
				return true, nil
			case turing.Reject:
				continue
			}

			for _, succ := range successors(table, cfg) {
				sfp := fingerprint(succ)
				if _, dup := seenNext[sfp]; dup {
					continue
				}

				seenNext[sfp] = struct{}{}

				next = append(next, succ)
			}
		}

		logger.Debug().Int("layer", layer).Int("frontier_size", len(next)).Msg("bfs layer drained")

		frontier = next
	}

	return false, nil
}
