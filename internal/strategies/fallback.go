package strategies

import (
	"context"

	"github.com/jonathan/resume-tailoring/internal/document"
	"github.com/jonathan/resume-tailoring/internal/types"
)

// FallbackStrategy handles every gap/response pair the specific
// strategies declined. It appends the response to the career summary so
// no user input is ever lost.
type FallbackStrategy struct{}

// Name implements Strategy.
func (s *FallbackStrategy) Name() string { return "fallback" }

// CanHandle always reports true.
func (s *FallbackStrategy) CanHandle(types.ResumeGap, string, document.Document) bool {
	return true
}

// UpdatePath implements Strategy.
func (s *FallbackStrategy) UpdatePath(types.ResumeGap, string, document.Document) string {
	return careerSummaryPath
}

// FormatValue appends the response to the existing summary as a new
// paragraph, or uses it verbatim when there is no summary yet.
func (s *FallbackStrategy) FormatValue(_ context.Context, _ types.ResumeGap, response string, doc document.Document, _ string) (any, error) {
	if current := document.CareerSummary(doc); current != "" {
		return current + "\n\n" + response, nil
	}
	return response, nil
}
