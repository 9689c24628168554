package translate

import (
	"fmt"

	turing "github.com/Cheetar/turing-machine-interpreter"
)

// phaseKind tags which step of the simulation cycle a generated state
// belongs to. The simulator's state alphabet is built from a phase plus
// whatever typed payload fields that phase needs; render() turns a phase
// into its final string only at emission time (spec design note: model
// phases as a tagged variant, not ad-hoc string concatenation).
type phaseKind int

const (
	kindInitFirstTape phaseKind = iota
	kindInitSecondBlank
	kindInitSecondSeparator
	kindGoBackSecondTape
	kindGoBackFirstTape
	kindReadLet2
	kindExecuteSecondHeadAction
	kindExecSecondRightCheck
	kindExecSecondRightExceeded
	kindExecSecondLeftCheck
	kindExecSecondLeftExceeded
	kindGoToFirstHead
	kindExecuteFirstHeadAction
	kindExecFirstLeftCheck
	kindExecFirstLeftNotExceeded
	kindExecFirstRightCheck
	kindRewriteSecondWriteSeparator
	kindRewriteSecond
	kindGoToFirstHeadCheckTerminal
	kindCheckTerminal
)

// phase is the typed payload carried by a generated (non-terminal) state.
// Only the fields relevant to Kind are read by render(); callers only set
// the fields the phase in question actually uses.
type phase struct {
	kind       phaseKind
	orgState   string
	let1       turing.Symbol
	tlet1      turing.Symbol
	tlet2      turing.Symbol
	dir1       turing.Direction
	dir2       turing.Direction
	lastLetter turing.Symbol
}

// render produces the final state-name string for p. Encoding is
// implementation-private (spec §4.3.2); only its set semantics — distinct
// phases and payloads map to distinct strings — matter.
func (p phase) render() string {
	switch p.kind {
	case kindInitFirstTape:
		return "initFirstTape"
	case kindInitSecondBlank:
		return "initSecondTapeBlank"
	case kindInitSecondSeparator:
		return "initSecondTapeSeparator"
	case kindGoBackSecondTape:
		return fmt.Sprintf("goBackToHead1OnTape2|org:%s", p.orgState)
	case kindGoBackFirstTape:
		return fmt.Sprintf("goBackToHead1OnTape1|org:%s", p.orgState)
	case kindReadLet2:
		return fmt.Sprintf("readLet2|org:%s|let1:%d", p.orgState, p.let1)
	case kindExecuteSecondHeadAction:
		return fmt.Sprintf("execHead2|org:%s|tlet1:%d|tlet2:%d|dir1:%s|dir2:%s",
			p.orgState, p.tlet1, p.tlet2, p.dir1, p.dir2)
	case kindExecSecondRightCheck:
		return fmt.Sprintf("execHead2RightCheck|org:%s|tlet1:%d|dir1:%s", p.orgState, p.tlet1, p.dir1)
	case kindExecSecondRightExceeded:
		return fmt.Sprintf("execHead2RightGrow|org:%s|tlet1:%d|dir1:%s", p.orgState, p.tlet1, p.dir1)
	case kindExecSecondLeftCheck:
		return fmt.Sprintf("execHead2LeftCheck|org:%s|tlet1:%d|dir1:%s", p.orgState, p.tlet1, p.dir1)
	case kindExecSecondLeftExceeded:
		return fmt.Sprintf("execHead2LeftBoundary|org:%s|tlet1:%d|dir1:%s", p.orgState, p.tlet1, p.dir1)
	case kindGoToFirstHead:
		return fmt.Sprintf("goToHead1|org:%s|tlet1:%d|dir1:%s", p.orgState, p.tlet1, p.dir1)
	case kindExecuteFirstHeadAction:
		return fmt.Sprintf("execHead1|org:%s|tlet1:%d|dir1:%s", p.orgState, p.tlet1, p.dir1)
	case kindExecFirstLeftCheck:
		return fmt.Sprintf("execHead1LeftCheck|org:%s|tlet1:%d", p.orgState, p.tlet1)
	case kindExecFirstLeftNotExceeded:
		return fmt.Sprintf("execHead1LeftNotAtBoundary|org:%s|tlet1:%d", p.orgState, p.tlet1)
	case kindExecFirstRightCheck:
		return fmt.Sprintf("execHead1RightCheck|org:%s", p.orgState)
	case kindRewriteSecondWriteSeparator:
		return fmt.Sprintf("growTape1WriteSeparator|org:%s", p.orgState)
	case kindRewriteSecond:
		return fmt.Sprintf("growTape1Shift|org:%s|last:%d", p.orgState, p.lastLetter)
	case kindGoToFirstHeadCheckTerminal:
		return fmt.Sprintf("growTape1GoToHead1|org:%s", p.orgState)
	case kindCheckTerminal:
		return fmt.Sprintf("checkTerminal|org:%s", p.orgState)
	default:
		return fmt.Sprintf("invalidPhase(%d)", int(p.kind))
	}
}
