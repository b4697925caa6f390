package session

import "fmt"

// StateError reports an operation attempted in a state that does not
// permit it.
type StateError struct {
	Op    string
	State State
}

func (e *StateError) Error() string {
	return fmt.Sprintf("cannot %s in state %s", e.Op, e.State)
}

// GapIndexError reports a gap index outside the session's gap list.
type GapIndexError struct {
	Index int
	Count int
}

func (e *GapIndexError) Error() string {
	return fmt.Sprintf("gap index %d out of range (session has %d gaps)", e.Index, e.Count)
}

// ProposalError wraps a proposal builder failure. The session stays in
// the awaiting-response state so the user can try a different answer.
type ProposalError struct {
	GapID string
	Cause error
}

func (e *ProposalError) Error() string {
	return fmt.Sprintf("failed to build proposal for gap %s: %v", e.GapID, e.Cause)
}

func (e *ProposalError) Unwrap() error {
	return e.Cause
}
