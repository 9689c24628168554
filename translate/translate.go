// Package translate compiles a two-tape nondeterministic Turing machine
// into an equivalent single-tape nondeterministic Turing machine, by
// simulating both tapes on one tape with head markers and a separator
// symbol (spec §4.3).
package translate

import (
	"sort"

	turing "github.com/Cheetar/turing-machine-interpreter"
	"github.com/Cheetar/turing-machine-interpreter/twotape"
	"github.com/rs/zerolog/log"
)

// bands over a symbol a ∈ A: plain a, underlined a+M, double-underlined
// a+2M, and a separator sentinel 4M distinct from all three bands.

func underline(let, maxVal turing.Symbol) turing.Symbol {
	return maxVal + let
}

func doubleUnderline(let, maxVal turing.Symbol) turing.Symbol {
	return 2*maxVal + let
}

func unUnderline(let, maxVal turing.Symbol) turing.Symbol {
	return let - maxVal
}

var dirs = [...]turing.Direction{turing.Left, turing.Right, turing.Stay}

// Translate compiles a two-tape transition table into a single-tape
// transition table simulating it, per spec §4.3. The result is itself a
// valid input to the interpret package.
func Translate(t2 twotape.Table) turing.Table {
	alphabet := sortedSymbols(t2.Alphabet())
	states := sortedStates(t2.States())
	maxVal := maxSymbol(alphabet) + 1

	underlinedAlphabet := mapSymbols(alphabet, func(s turing.Symbol) turing.Symbol { return underline(s, maxVal) })
	doubleUnderlinedAlphabet := mapSymbols(alphabet, func(s turing.Symbol) turing.Symbol { return doubleUnderline(s, maxVal) })
	separator := 4 * maxVal

	alphabetPlusSeparator := append(append([]turing.Symbol{}, alphabet...), separator)
	alphabetUnionDoubleUnderlined := append(append([]turing.Symbol{}, alphabet...), doubleUnderlinedAlphabet...)
	alphabetUnionDoubleUnderlinedPlusSeparator := append(append([]turing.Symbol{}, alphabetUnionDoubleUnderlined...), separator)

	out := turing.NewTable()

	g := &generator{
		t2:                                          t2,
		out:                                          out,
		alphabet:                                     alphabet,
		states:                                       states,
		maxVal:                                       maxVal,
		underlinedAlphabet:                           underlinedAlphabet,
		doubleUnderlinedAlphabet:                     doubleUnderlinedAlphabet,
		separator:                                    separator,
		alphabetPlusSeparator:                        alphabetPlusSeparator,
		alphabetUnionDoubleUnderlined:                alphabetUnionDoubleUnderlined,
		alphabetUnionDoubleUnderlinedPlusSeparator:    alphabetUnionDoubleUnderlinedPlusSeparator,
	}

	g.initialization()
	g.executeFirstHeadRead()
	g.executeSecondHeadAction()
	g.returnToHeadOne()
	g.executeFirstHeadAction()
	g.growTapeOne()
	g.checkTerminal()

	log.Debug().
		Int("states", len(states)).
		Int("alphabet", len(alphabet)).
		Int("transitions", out.Len()).
		Msg("translation complete")

	return out
}

// generator holds the shared context (alphabet, states, symbol bands)
// threaded through every phase-emission step.
type generator struct {
	t2  twotape.Table
	out turing.Table

	alphabet                 []turing.Symbol
	states                    []string
	maxVal                    turing.Symbol
	underlinedAlphabet        []turing.Symbol
	doubleUnderlinedAlphabet  []turing.Symbol
	separator                 turing.Symbol

	alphabetPlusSeparator                      []turing.Symbol
	alphabetUnionDoubleUnderlined               []turing.Symbol
	alphabetUnionDoubleUnderlinedPlusSeparator  []turing.Symbol
}

func (g *generator) add(state string, read turing.Symbol, nextState string, write turing.Symbol, move turing.Direction) {
	g.out.Add(state, read, turing.Transition{NextState: nextState, Write: write, Move: move})
}

// initialization implements Phase 1 (spec §4.3.3): underline the first
// input symbol, walk right writing the tape-1/tape-2 separators, mark one
// blank as the tape-2 head, then walk left back to the tape-1 head.
func (g *generator) initialization() {
	initFirstTape := phase{kind: kindInitFirstTape}.render()
	initSecondBlank := phase{kind: kindInitSecondBlank}.render()
	initSecondSeparator := phase{kind: kindInitSecondSeparator}.render()

	for _, let := range g.alphabet {
		g.add(turing.Start, let, initFirstTape, underline(let, g.maxVal), turing.Right)
	}

	for _, let := range g.alphabet {
		if let == turing.Blank {
			continue
		}

		g.add(initFirstTape, let, initFirstTape, let, turing.Right)
	}

	g.add(initFirstTape, turing.Blank, initSecondBlank, g.separator, turing.Right)
	g.add(initSecondBlank, turing.Blank, initSecondSeparator, doubleUnderline(turing.Blank, g.maxVal), turing.Right)

	for _, orgState := range g.states {
		goBackSecond := phase{kind: kindGoBackSecondTape, orgState: orgState}.render()
		goBackFirst := phase{kind: kindGoBackFirstTape, orgState: orgState}.render()

		if orgState == turing.Start {
			g.add(initSecondSeparator, turing.Blank, goBackSecond, g.separator, turing.Left)
		}

		for _, let := range g.alphabetUnionDoubleUnderlined {
			g.add(goBackSecond, let, goBackSecond, let, turing.Left)
		}

		g.add(goBackSecond, g.separator, goBackFirst, g.separator, turing.Left)

		for _, let := range g.alphabet {
			g.add(goBackFirst, let, goBackFirst, let, turing.Left)
		}

		for _, uLet := range g.underlinedAlphabet {
			let1 := unUnderline(uLet, g.maxVal)
			readLet2 := phase{kind: kindReadLet2, orgState: orgState, let1: let1}.render()
			g.add(goBackFirst, uLet, readLet2, uLet, turing.Right)
		}
	}
}

// executeFirstHeadRead implements Phases 2-3: walk right over tape-1 and
// the separator carrying (org_state, let1), then on the tape-2 head branch
// nondeterministically over every applicable two-tape transition. This is
// the only filtered emission in the whole translator (spec §4.3.4): the
// branch is emitted only for (org_state, let1, let2) keys present in t2.
func (g *generator) executeFirstHeadRead() {
	for _, orgState := range g.states {
		for _, let1 := range g.alphabet {
			readLet2 := phase{kind: kindReadLet2, orgState: orgState, let1: let1}.render()

			for _, let := range g.alphabetPlusSeparator {
				g.add(readLet2, let, readLet2, let, turing.Right)
			}

			for _, let2 := range g.alphabet {
				for _, tr := range g.t2.Lookup(orgState, let1, let2) {
					execHead2 := phase{
						kind: kindExecuteSecondHeadAction, orgState: tr.NextState,
						tlet1: tr.Write1, tlet2: tr.Write2, dir1: tr.Move1, dir2: tr.Move2,
					}.render()

					g.add(readLet2, doubleUnderline(let2, g.maxVal), execHead2, doubleUnderline(let2, g.maxVal), turing.Stay)
				}
			}
		}
	}
}

// executeSecondHeadAction implements Phase 4: perform tape-2's write and
// head-2 move for each of the three directions.
func (g *generator) executeSecondHeadAction() {
	for _, orgState := range g.states {
		for _, tlet1 := range g.alphabet {
			for _, dir1 := range dirs {
				goToHead1 := phase{kind: kindGoToFirstHead, orgState: orgState, tlet1: tlet1, dir1: dir1}.render()

				// dir2 = S: rewrite current cell as double_underline(tlet2), move left.
				for _, tlet2 := range g.alphabet {
					execHead2 := phase{
						kind: kindExecuteSecondHeadAction, orgState: orgState,
						tlet1: tlet1, tlet2: tlet2, dir1: dir1, dir2: turing.Stay,
					}.render()

					for _, let2 := range g.doubleUnderlinedAlphabet {
						g.add(execHead2, let2, goToHead1, doubleUnderline(tlet2, g.maxVal), turing.Left)
					}
				}

				// dir2 = R: overwrite plain, move right; grow tape 2 on SEPARATOR.
				execSecondRightCheck := phase{kind: kindExecSecondRightCheck, orgState: orgState, tlet1: tlet1, dir1: dir1}.render()
				execSecondRightGrow := phase{kind: kindExecSecondRightExceeded, orgState: orgState, tlet1: tlet1, dir1: dir1}.render()

				for _, tlet2 := range g.alphabet {
					execHead2 := phase{
						kind: kindExecuteSecondHeadAction, orgState: orgState,
						tlet1: tlet1, tlet2: tlet2, dir1: dir1, dir2: turing.Right,
					}.render()

					for _, let2 := range g.doubleUnderlinedAlphabet {
						g.add(execHead2, let2, execSecondRightCheck, tlet2, turing.Right)
					}
				}

				for _, let := range g.alphabet {
					g.add(execSecondRightCheck, let, goToHead1, doubleUnderline(let, g.maxVal), turing.Right)
				}

				g.add(execSecondRightCheck, g.separator, execSecondRightGrow, doubleUnderline(turing.Blank, g.maxVal), turing.Right)
				g.add(execSecondRightGrow, turing.Blank, goToHead1, g.separator, turing.Left)

				// dir2 = L: overwrite plain, move left; pin at boundary on SEPARATOR.
				execSecondLeftCheck := phase{kind: kindExecSecondLeftCheck, orgState: orgState, tlet1: tlet1, dir1: dir1}.render()
				execSecondLeftBoundary := phase{kind: kindExecSecondLeftExceeded, orgState: orgState, tlet1: tlet1, dir1: dir1}.render()

				for _, tlet2 := range g.alphabet {
					execHead2 := phase{
						kind: kindExecuteSecondHeadAction, orgState: orgState,
						tlet1: tlet1, tlet2: tlet2, dir1: dir1, dir2: turing.Left,
					}.render()

					for _, let2 := range g.doubleUnderlinedAlphabet {
						g.add(execHead2, let2, execSecondLeftCheck, tlet2, turing.Left)
					}
				}

				for _, let := range g.alphabet {
					g.add(execSecondLeftCheck, let, goToHead1, doubleUnderline(let, g.maxVal), turing.Left)
				}

				g.add(execSecondLeftCheck, g.separator, execSecondLeftBoundary, g.separator, turing.Right)

				for _, let := range g.alphabet {
					g.add(execSecondLeftBoundary, let, goToHead1, doubleUnderline(let, g.maxVal), turing.Left)
				}
			}
		}
	}
}

// returnToHeadOne implements Phase 5: walk left across tape 2, the
// separator and tape 1, carrying (org_state, tlet1, dir1), until the
// underlined tape-1 cell is reached.
func (g *generator) returnToHeadOne() {
	for _, orgState := range g.states {
		for _, tlet1 := range g.alphabet {
			for _, dir1 := range dirs {
				goToHead1 := phase{kind: kindGoToFirstHead, orgState: orgState, tlet1: tlet1, dir1: dir1}.render()
				execHead1 := phase{kind: kindExecuteFirstHeadAction, orgState: orgState, tlet1: tlet1, dir1: dir1}.render()

				for _, let := range g.alphabetUnionDoubleUnderlinedPlusSeparator {
					g.add(goToHead1, let, goToHead1, let, turing.Left)
				}

				for _, let1 := range g.underlinedAlphabet {
					g.add(goToHead1, let1, execHead1, let1, turing.Stay)
				}
			}
		}
	}
}

// executeFirstHeadAction implements Phase 6: tape-1's write and head-1
// move. dir1=L detects a clamped (leftmost) head by deferring the write
// and checking whether the move actually landed on a different,
// unmarked cell (spec §9's "Phase-6 dir1=L at leftmost" fix: the head
// pins at position 0 and that cell is re-underlined with tlet1).
func (g *generator) executeFirstHeadAction() {
	for _, orgState := range g.states {
		checkTerminal := phase{kind: kindCheckTerminal, orgState: orgState}.render()

		for _, tlet1 := range g.alphabet {
			execHead1S := phase{kind: kindExecuteFirstHeadAction, orgState: orgState, tlet1: tlet1, dir1: turing.Stay}.render()
			execHead1L := phase{kind: kindExecuteFirstHeadAction, orgState: orgState, tlet1: tlet1, dir1: turing.Left}.render()
			execHead1R := phase{kind: kindExecuteFirstHeadAction, orgState: orgState, tlet1: tlet1, dir1: turing.Right}.render()

			for _, let1 := range g.underlinedAlphabet {
				// dir1 = S: overwrite as underline(tlet1); done.
				g.add(execHead1S, let1, checkTerminal, underline(tlet1, g.maxVal), turing.Stay)

				// dir1 = L: defer the write (keep let1, preserving the mark) and
				// move left so the next state can tell clamped from moved.
				leftCheck := phase{kind: kindExecFirstLeftCheck, orgState: orgState, tlet1: tlet1}.render()
				g.add(execHead1L, let1, leftCheck, let1, turing.Left)

				// dir1 = R: write tlet1 immediately; direction of travel is away
				// from the old cell so there is nothing left to defer.
				rightCheck := phase{kind: kindExecFirstRightCheck, orgState: orgState}.render()
				g.add(execHead1R, let1, rightCheck, tlet1, turing.Right)
			}

			leftCheck := phase{kind: kindExecFirstLeftCheck, orgState: orgState, tlet1: tlet1}.render()
			leftNotExceeded := phase{kind: kindExecFirstLeftNotExceeded, orgState: orgState, tlet1: tlet1}.render()

			// Clamped: still on the same underlined cell. Perform the deferred
			// write now, keeping the mark since this is still the leftmost cell.
			for _, let1 := range g.underlinedAlphabet {
				g.add(leftCheck, let1, checkTerminal, underline(tlet1, g.maxVal), turing.Stay)
			}

			// Moved: landed on a real left neighbour. Mark it as the new head-1
			// position and walk back right to finish the deferred write.
			for _, let := range g.alphabet {
				g.add(leftCheck, let, leftNotExceeded, underline(let, g.maxVal), turing.Right)
			}

			for _, let1 := range g.underlinedAlphabet {
				g.add(leftNotExceeded, let1, checkTerminal, tlet1, turing.Left)
			}
		}

		rightCheck := phase{kind: kindExecFirstRightCheck, orgState: orgState}.render()
		growWriteSeparator := phase{kind: kindRewriteSecondWriteSeparator, orgState: orgState}.render()

		for _, let := range g.alphabet {
			g.add(rightCheck, let, checkTerminal, underline(let, g.maxVal), turing.Stay)
		}

		g.add(rightCheck, g.separator, growWriteSeparator, underline(turing.Blank, g.maxVal), turing.Right)
	}
}

// growTapeOne implements the tape-1 growth path of Phase 6 (dir1=R into
// the separator): shift the entire tape-2 region one cell right, carrying
// the displaced symbol forward cell by cell (a classical in-place rotate).
func (g *generator) growTapeOne() {
	for _, orgState := range g.states {
		growWriteSeparator := phase{kind: kindRewriteSecondWriteSeparator, orgState: orgState}.render()
		goToHeadCheckTerminal := phase{kind: kindGoToFirstHeadCheckTerminal, orgState: orgState}.render()
		checkTerminal := phase{kind: kindCheckTerminal, orgState: orgState}.render()

		for _, let := range g.alphabetUnionDoubleUnderlined {
			shift := phase{kind: kindRewriteSecond, orgState: orgState, lastLetter: let}.render()
			g.add(growWriteSeparator, let, shift, g.separator, turing.Right)
		}

		for _, let := range g.alphabetUnionDoubleUnderlined {
			shiftFrom := phase{kind: kindRewriteSecond, orgState: orgState, lastLetter: let}.render()

			for _, let2 := range g.alphabetUnionDoubleUnderlinedPlusSeparator {
				shiftTo := phase{kind: kindRewriteSecond, orgState: orgState, lastLetter: let2}.render()
				g.add(shiftFrom, let2, shiftTo, let, turing.Right)
			}
		}

		shiftAtSeparator := phase{kind: kindRewriteSecond, orgState: orgState, lastLetter: g.separator}.render()
		g.add(shiftAtSeparator, turing.Blank, goToHeadCheckTerminal, g.separator, turing.Left)

		for _, let := range g.alphabetUnionDoubleUnderlinedPlusSeparator {
			g.add(goToHeadCheckTerminal, let, goToHeadCheckTerminal, let, turing.Left)
		}

		for _, let1 := range g.underlinedAlphabet {
			g.add(goToHeadCheckTerminal, let1, checkTerminal, let1, turing.Stay)
		}
	}
}

// checkTerminal implements Phase 7: if the cycle's target state is accept
// or reject, transition into that bare terminal state; otherwise loop
// back into Phase 2 with the new org_state.
func (g *generator) checkTerminal() {
	for _, orgState := range g.states {
		checkTerminal := phase{kind: kindCheckTerminal, orgState: orgState}.render()

		if turing.IsTerminal(orgState) {
			for _, let1 := range g.underlinedAlphabet {
				g.add(checkTerminal, let1, orgState, let1, turing.Stay)
			}

			continue
		}

		for _, let1 := range g.underlinedAlphabet {
			readLet2 := phase{kind: kindReadLet2, orgState: orgState, let1: unUnderline(let1, g.maxVal)}.render()
			g.add(checkTerminal, let1, readLet2, let1, turing.Right)
		}
	}
}

func maxSymbol(alphabet []turing.Symbol) turing.Symbol {
	m := turing.Blank

	for _, s := range alphabet {
		if s > m {
			m = s
		}
	}

	return m
}

func mapSymbols(in []turing.Symbol, f func(turing.Symbol) turing.Symbol) []turing.Symbol {
	out := make([]turing.Symbol, len(in))
	for i, s := range in {
		out[i] = f(s)
	}

	return out
}

func sortedSymbols(set map[turing.Symbol]struct{}) []turing.Symbol {
	out := make([]turing.Symbol, 0, len(set))
	for s := range set {
		out = append(out, s)
	}

	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

func sortedStates(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for s := range set {
		out = append(out, s)
	}

	sort.Strings(out)

	return out
}
