package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/resume-tailoring/internal/document"
	"github.com/jonathan/resume-tailoring/internal/schemas"
	"github.com/jonathan/resume-tailoring/internal/session"
	"github.com/jonathan/resume-tailoring/internal/types"
)

// AnalyzeResponse is the response for /analyze: the full analysis plus
// the session opened over it.
type AnalyzeResponse struct {
	Analysis *types.GapAnalysisResult `json:"analysis"`
	Session  session.Snapshot         `json:"session"`
}

// ProposalResponse is the response for /sessions/{id}/response.
type ProposalResponse struct {
	Proposal *types.ChangeProposal `json:"proposal"`
	Session  session.Snapshot      `json:"session"`
}

// handleAnalyze runs a gap analysis and opens a gap walk session over the
// result.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req types.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := schemas.ValidateResume(req.ResumeData); err != nil {
		s.failWith(w, err)
		return
	}

	analysis, err := s.engine.Analyze(r.Context(), req.ResumeData, req.JobDescription)
	if err != nil {
		s.failWith(w, err)
		return
	}

	doc, err := document.FromResume(req.ResumeData)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	userID := uuid.Nil
	if req.UserID != "" {
		userID, _ = uuid.Parse(req.UserID)
	}

	sess := session.New(analysis, doc, s.builder)
	if err := sess.Start(); err != nil {
		s.failWith(w, err)
		return
	}
	s.store.put(sess, userID)

	if s.db != nil {
		if err := s.db.SaveAnalysis(r.Context(), sess.ID(), analysis); err != nil {
			log.Printf("Failed to persist analysis for session %s: %v", sess.ID(), err)
		}
	}

	s.jsonResponse(w, http.StatusCreated, AnalyzeResponse{
		Analysis: analysis,
		Session:  sess.Snapshot(),
	})
}

// handleGetSession returns the session's current progress.
func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	entry, ok := s.lookup(w, r)
	if !ok {
		return
	}
	s.jsonResponse(w, http.StatusOK, entry.sess.Snapshot())
}

// handleSubmitResponse turns the user's answer into a change proposal.
func (s *Server) handleSubmitResponse(w http.ResponseWriter, r *http.Request) {
	entry, ok := s.lookup(w, r)
	if !ok {
		return
	}

	var req types.SubmitResponseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	proposal, err := entry.sess.SubmitResponse(r.Context(), req.Response)
	if err != nil {
		s.failWith(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, ProposalResponse{
		Proposal: proposal,
		Session:  entry.sess.Snapshot(),
	})
}

// handleAccept applies the pending proposal and snapshots the updated
// resume for persisted users.
func (s *Server) handleAccept(w http.ResponseWriter, r *http.Request) {
	entry, ok := s.lookup(w, r)
	if !ok {
		return
	}
	if err := entry.sess.AcceptProposal(); err != nil {
		s.failWith(w, err)
		return
	}

	if s.db != nil && entry.userID != uuid.Nil {
		if resume, err := entry.sess.Resume(); err == nil {
			if err := s.db.SaveResume(r.Context(), entry.userID, resume); err != nil {
				log.Printf("Failed to persist resume for session %s: %v", entry.sess.ID(), err)
			}
		}
	}

	s.jsonResponse(w, http.StatusOK, entry.sess.Snapshot())
}

// handleReject discards the pending proposal.
func (s *Server) handleReject(w http.ResponseWriter, r *http.Request) {
	s.transition(w, r, func(sess *session.Session) error {
		return sess.RejectProposal()
	})
}

// handleSkip skips the current gap.
func (s *Server) handleSkip(w http.ResponseWriter, r *http.Request) {
	s.transition(w, r, func(sess *session.Session) error {
		return sess.SkipCurrentGap()
	})
}

// handleNavigate moves between gaps.
func (s *Server) handleNavigate(w http.ResponseWriter, r *http.Request) {
	entry, ok := s.lookup(w, r)
	if !ok {
		return
	}

	var req types.NavigateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := entry.sess.Navigate(req.Direction); err != nil {
		s.failWith(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, entry.sess.Snapshot())
}

// handleSelectGap jumps to a gap by index.
func (s *Server) handleSelectGap(w http.ResponseWriter, r *http.Request) {
	entry, ok := s.lookup(w, r)
	if !ok {
		return
	}

	var req types.SelectGapRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := entry.sess.SelectGap(req.Index); err != nil {
		s.failWith(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, entry.sess.Snapshot())
}

// handleFinalize ends the walk and persists the outcome when a database
// and user are available.
func (s *Server) handleFinalize(w http.ResponseWriter, r *http.Request) {
	entry, ok := s.lookup(w, r)
	if !ok {
		return
	}

	snap := entry.sess.Finalize()

	if s.db != nil && entry.userID != uuid.Nil {
		resume, err := entry.sess.Resume()
		if err != nil {
			log.Printf("Failed to materialize resume for session %s: %v", snap.ID, err)
		} else {
			if err := s.db.SaveSessionOutcome(r.Context(), snap.ID, entry.userID, resume, snap.MatchPercent, snap.Addressed, snap.Skipped); err != nil {
				log.Printf("Failed to persist outcome for session %s: %v", snap.ID, err)
			}
			if err := s.db.SaveResume(r.Context(), entry.userID, resume); err != nil {
				log.Printf("Failed to persist resume for session %s: %v", snap.ID, err)
			}
		}
	}

	s.jsonResponse(w, http.StatusOK, snap)
}

// handleGetResume returns the session's working resume in its typed form.
func (s *Server) handleGetResume(w http.ResponseWriter, r *http.Request) {
	entry, ok := s.lookup(w, r)
	if !ok {
		return
	}

	resume, err := entry.sess.Resume()
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, resume)
}

// lookup resolves the session from the path, writing the 404 itself when
// the ID is unknown.
func (s *Server) lookup(w http.ResponseWriter, r *http.Request) (liveSession, bool) {
	id := r.PathValue("id")
	entry, ok := s.store.get(id)
	if !ok {
		s.failWith(w, &ErrSessionNotFound{SessionID: id})
		return liveSession{}, false
	}
	return entry, true
}

// transition runs a body-less state transition and returns the updated
// snapshot.
func (s *Server) transition(w http.ResponseWriter, r *http.Request, op func(*session.Session) error) {
	entry, ok := s.lookup(w, r)
	if !ok {
		return
	}
	if err := op(entry.sess); err != nil {
		s.failWith(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, entry.sess.Snapshot())
}
