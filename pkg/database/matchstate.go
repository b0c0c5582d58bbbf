package database

import "github.com/cockroachdb/errors"

// MatchState is the lifecycle stage of a transaction's linkage to a fee.
// Hidden is not a state; it is a visibility flag next to it.
type MatchState string

const (
	MatchStateUnmatched = MatchState("unmatched")
	MatchStateSuggested = MatchState("suggested")
	MatchStateMatched   = MatchState("matched")
	MatchStateAllocated = MatchState("allocated")
	MatchStateDismissed = MatchState("dismissed")
)

var matchTransitions = map[MatchState]map[MatchState]struct{}{
	MatchStateUnmatched: {
		MatchStateSuggested: {},
		MatchStateMatched:   {},
		MatchStateAllocated: {},
		MatchStateDismissed: {},
	},
	MatchStateSuggested: {
		MatchStateUnmatched: {},
		MatchStateMatched:   {},
		MatchStateAllocated: {},
		MatchStateDismissed: {},
	},
	MatchStateMatched: {
		MatchStateUnmatched: {},
		MatchStateAllocated: {},
		MatchStateDismissed: {},
	},
	MatchStateAllocated: {
		MatchStateUnmatched: {},
	},
	MatchStateDismissed: {},
}

// CanTransition reports whether from may move to target. A state may always
// restate itself; repeated matcher runs depend on that being a no-op.
func CanTransition(from, target MatchState) bool {
	if from == target {
		return true
	}

	allowed, ok := matchTransitions[from]
	if !ok {
		return false
	}

	_, ok = allowed[target]

	return ok
}

// Transition moves the transaction to target or fails without touching it.
func (t *BankTransaction) Transition(target MatchState) error {
	if !CanTransition(t.MatchState, target) {
		return errors.Newf("illegal match state transition %s -> %s", t.MatchState, target)
	}

	t.MatchState = target

	return nil
}
