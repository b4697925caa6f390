package strategies

import (
	"context"

	"github.com/jonathan/resume-tailoring/internal/document"
	"github.com/jonathan/resume-tailoring/internal/types"
)

// EducationStrategy targets the first education entry's field of study,
// or the career summary when no education entry exists yet.
type EducationStrategy struct{}

// Name implements Strategy.
func (s *EducationStrategy) Name() string { return "education" }

// CanHandle implements Strategy.
func (s *EducationStrategy) CanHandle(gap types.ResumeGap, _ string, _ document.Document) bool {
	return gap.Category == types.CategoryEducation
}

// UpdatePath implements Strategy.
func (s *EducationStrategy) UpdatePath(_ types.ResumeGap, _ string, doc document.Document) string {
	if document.EducationCount(doc) > 0 {
		return "education[0].fieldOfStudy"
	}
	return careerSummaryPath
}

// FormatValue passes the response through unchanged.
func (s *EducationStrategy) FormatValue(_ context.Context, _ types.ResumeGap, response string, _ document.Document, _ string) (any, error) {
	return response, nil
}
