package strategies

import (
	"context"

	"github.com/jonathan/resume-tailoring/internal/document"
	"github.com/jonathan/resume-tailoring/internal/formatting"
	"github.com/jonathan/resume-tailoring/internal/types"
)

// SummaryStrategy integrates responses into the career summary.
type SummaryStrategy struct{}

// Name implements Strategy.
func (s *SummaryStrategy) Name() string { return "summary" }

// CanHandle implements Strategy.
func (s *SummaryStrategy) CanHandle(gap types.ResumeGap, _ string, _ document.Document) bool {
	return gap.Category == types.CategorySummary
}

// UpdatePath implements Strategy.
func (s *SummaryStrategy) UpdatePath(types.ResumeGap, string, document.Document) string {
	return careerSummaryPath
}

// FormatValue implements Strategy.
func (s *SummaryStrategy) FormatValue(_ context.Context, _ types.ResumeGap, response string, doc document.Document, path string) (any, error) {
	current := document.ToString(document.GetValue(doc, path))
	return formatting.SummaryParagraph(response, current), nil
}
