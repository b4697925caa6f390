// Package session implements the interactive gap walk: a stateful
// controller that presents identified resume gaps one at a time, turns
// user answers into change proposals, and applies accepted proposals to
// the working resume document. A session is safe for concurrent use; a
// single mutex serializes all state transitions so a late accept cannot
// race a navigation.
package session

import (
	"context"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/resume-tailoring/internal/document"
	"github.com/jonathan/resume-tailoring/internal/strategies"
	"github.com/jonathan/resume-tailoring/internal/types"
)

// State names a phase of the gap walk.
type State string

const (
	// StateIdle means the session exists but the walk has not started.
	StateIdle State = "idle"
	// StatePresentingGap means a gap is on display and the suggested
	// question has not been answered yet.
	StatePresentingGap State = "presenting_gap"
	// StateAwaitingResponse means the user has seen the gap and the
	// session is waiting for (or retrying) their answer.
	StateAwaitingResponse State = "awaiting_response"
	// StateProposalPending means an answer was turned into a change
	// proposal awaiting accept or reject.
	StateProposalPending State = "proposal_pending"
	// StateComplete means the walk has finished; the document is frozen.
	StateComplete State = "complete"
)

// matchBonusPool is the total match-percentage bonus distributed across
// all gaps; each addressed gap earns its priority-weighted share.
const matchBonusPool = 30.0

// Session walks a user through the gaps of one analysis result against
// one resume document.
type Session struct {
	mu sync.Mutex

	id        string
	analysis  *types.GapAnalysisResult
	doc       document.Document
	builder   *strategies.Builder
	state     State
	index     int
	pending   *types.ChangeProposal
	addressed map[string]bool
	skipped   map[string]bool
	lastErr   string
	createdAt time.Time
	updatedAt time.Time
}

// New creates an idle session over the analysis result and the resume
// document it was computed from. Start begins the walk.
func New(analysis *types.GapAnalysisResult, doc document.Document, builder *strategies.Builder) *Session {
	now := time.Now()
	return &Session{
		id:        uuid.NewString(),
		analysis:  analysis,
		doc:       doc,
		builder:   builder,
		state:     StateIdle,
		addressed: make(map[string]bool),
		skipped:   make(map[string]bool),
		createdAt: now,
		updatedAt: now,
	}
}

// Start begins the walk at the first gap. A result with no gaps completes
// immediately.
func (s *Session) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateIdle {
		return &StateError{Op: "start", State: s.state}
	}
	if len(s.analysis.Gaps) == 0 {
		s.state = StateComplete
	} else {
		s.state = StatePresentingGap
	}
	s.touch()
	return nil
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Snapshot is a read-only view of session progress for presentation.
type Snapshot struct {
	ID           string                `json:"id"`
	State        State                 `json:"state"`
	CurrentIndex int                   `json:"currentIndex"`
	CurrentGap   *types.ResumeGap      `json:"currentGap,omitempty"`
	Pending      *types.ChangeProposal `json:"pendingProposal,omitempty"`
	TotalGaps    int                   `json:"totalGaps"`
	Addressed    int                   `json:"addressed"`
	Skipped      int                   `json:"skipped"`
	MatchPercent int                   `json:"matchPercent"`
	LastError    string                `json:"lastError,omitempty"`
	CreatedAt    time.Time             `json:"createdAt"`
	UpdatedAt    time.Time             `json:"updatedAt"`
}

// Snapshot captures the current progress.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		ID:           s.id,
		State:        s.state,
		CurrentIndex: s.index,
		Pending:      s.pending,
		TotalGaps:    len(s.analysis.Gaps),
		Addressed:    len(s.addressed),
		Skipped:      len(s.skipped),
		MatchPercent: s.matchPercent(),
		LastError:    s.lastErr,
		CreatedAt:    s.createdAt,
		UpdatedAt:    s.updatedAt,
	}
	if s.state != StateIdle && s.state != StateComplete && s.index < len(s.analysis.Gaps) {
		gap := s.analysis.Gaps[s.index]
		snap.CurrentGap = &gap
	}
	return snap
}

// CurrentGap returns the gap on display.
func (s *Session) CurrentGap() (types.ResumeGap, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateIdle || s.state == StateComplete {
		return types.ResumeGap{}, &StateError{Op: "present gap", State: s.state}
	}
	return s.analysis.Gaps[s.index], nil
}

// SubmitResponse turns the user's answer for the current gap into a
// change proposal. On builder failure the session stays in the
// awaiting-response state with the error recorded, so the user can
// rephrase and retry.
func (s *Session) SubmitResponse(ctx context.Context, response string) (*types.ChangeProposal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StatePresentingGap && s.state != StateAwaitingResponse {
		return nil, &StateError{Op: "submit response", State: s.state}
	}
	gap := s.analysis.Gaps[s.index]
	s.state = StateAwaitingResponse
	s.touch()

	proposal, err := s.builder.Propose(ctx, gap, response, s.doc)
	if err != nil {
		s.lastErr = err.Error()
		return nil, &ProposalError{GapID: gap.ID, Cause: err}
	}

	s.pending = proposal
	s.lastErr = ""
	s.state = StateProposalPending
	s.touch()
	return proposal, nil
}

// AcceptProposal applies the pending proposal to the document, marks the
// current gap addressed, and advances to the next gap.
func (s *Session) AcceptProposal() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateProposalPending || s.pending == nil {
		return &StateError{Op: "accept proposal", State: s.state}
	}

	updated, err := document.SetValue(s.doc, s.pending.Path, s.pending.NewValue)
	if err != nil {
		return err
	}
	s.doc = updated

	gap := s.analysis.Gaps[s.index]
	s.addressed[gap.ID] = true
	delete(s.skipped, gap.ID)
	s.pending = nil
	s.advance()
	return nil
}

// RejectProposal discards the pending proposal and advances. The gap
// stays unaddressed and does not contribute to the match score.
func (s *Session) RejectProposal() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateProposalPending || s.pending == nil {
		return &StateError{Op: "reject proposal", State: s.state}
	}
	s.pending = nil
	s.advance()
	return nil
}

// SkipCurrentGap marks the current gap skipped and advances without
// touching the document. Any pending proposal is discarded.
func (s *Session) SkipCurrentGap() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateIdle || s.state == StateComplete {
		return &StateError{Op: "skip gap", State: s.state}
	}
	gap := s.analysis.Gaps[s.index]
	if !s.addressed[gap.ID] {
		s.skipped[gap.ID] = true
	}
	s.pending = nil
	s.advance()
	return nil
}

// Navigate moves to the previous or next gap. Moving discards any
// pending proposal without applying it; addressed and skipped markers
// are untouched.
func (s *Session) Navigate(direction string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateIdle || s.state == StateComplete {
		return &StateError{Op: "navigate", State: s.state}
	}
	target := s.index
	switch direction {
	case "prev":
		target--
	case "next":
		target++
	default:
		return &GapIndexError{Index: s.index, Count: len(s.analysis.Gaps)}
	}
	return s.moveTo(target)
}

// SelectGap jumps directly to the given gap index, discarding any pending
// proposal.
func (s *Session) SelectGap(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateIdle || s.state == StateComplete {
		return &StateError{Op: "select gap", State: s.state}
	}
	return s.moveTo(index)
}

// Finalize ends the walk. Further mutations are rejected; the document
// and match score are frozen at their current values.
func (s *Session) Finalize() Snapshot {
	s.mu.Lock()
	s.pending = nil
	s.state = StateComplete
	s.touch()
	s.mu.Unlock()
	return s.Snapshot()
}

// Resume returns the working document as the typed resume model.
func (s *Session) Resume() (*types.ResumeData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return document.ToResume(s.doc)
}

// Document returns the working document tree. The tree is persistent, so
// callers may read it without holding the session lock afterwards.
func (s *Session) Document() document.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc
}

// MatchPercent reports the current job match estimate: the analysis
// baseline plus a priority-weighted share of the bonus pool for each
// addressed gap, capped at 100.
func (s *Session) MatchPercent() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.matchPercent()
}

func (s *Session) matchPercent() int {
	total := len(s.analysis.Gaps)
	if total == 0 {
		return clampPercent(s.analysis.Summary.OverallMatch)
	}

	score := float64(s.analysis.Summary.OverallMatch)
	perGap := matchBonusPool / float64(total)
	for _, gap := range s.analysis.Gaps {
		if s.addressed[gap.ID] {
			score += perGap * float64(4-gap.Priority)
		}
	}
	return clampPercent(int(math.Round(score)))
}

func clampPercent(v int) int {
	if v > 100 {
		return 100
	}
	if v < 0 {
		return 0
	}
	return v
}

// moveTo validates the target index and presents that gap. Caller holds
// the lock.
func (s *Session) moveTo(target int) error {
	if target < 0 || target >= len(s.analysis.Gaps) {
		return &GapIndexError{Index: target, Count: len(s.analysis.Gaps)}
	}
	s.index = target
	s.pending = nil
	s.lastErr = ""
	s.state = StatePresentingGap
	s.touch()
	return nil
}

// advance moves past the current gap, completing the walk when it was the
// last one. Caller holds the lock.
func (s *Session) advance() {
	s.lastErr = ""
	if s.index+1 >= len(s.analysis.Gaps) {
		s.state = StateComplete
	} else {
		s.index++
		s.state = StatePresentingGap
	}
	s.touch()
}

func (s *Session) touch() {
	s.updatedAt = time.Now()
}
