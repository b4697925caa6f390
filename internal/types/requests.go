package types

import (
	"github.com/go-playground/validator/v10"
)

// AnalyzeRequest is the request to run a gap analysis and open a tailoring
// session. The job description length cap is enforced again by the engine;
// validating here rejects oversized input before any work is done.
type AnalyzeRequest struct {
	UserID         string      `json:"user_id,omitempty" validate:"omitempty,uuid4"`
	ResumeData     *ResumeData `json:"resumeData" validate:"required"`
	JobDescription string      `json:"jobDescription" validate:"required,min=1,max=10000"`
}

// SubmitResponseRequest carries the user's free-text answer for the
// current gap.
type SubmitResponseRequest struct {
	Response string `json:"response" validate:"required,min=1"`
}

// NavigateRequest moves between gaps without resolving them.
type NavigateRequest struct {
	Direction string `json:"direction" validate:"required,oneof=prev next"`
}

// SelectGapRequest jumps to a gap by index from the list view.
type SelectGapRequest struct {
	Index int `json:"index" validate:"min=0"`
}

// Validate validates the AnalyzeRequest using the validator.
func (r *AnalyzeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the SubmitResponseRequest using the validator.
func (r *SubmitResponseRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the NavigateRequest using the validator.
func (r *NavigateRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the SelectGapRequest using the validator.
func (r *SelectGapRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
