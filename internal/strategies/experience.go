package strategies

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonathan/resume-tailoring/internal/document"
	"github.com/jonathan/resume-tailoring/internal/formatting"
	"github.com/jonathan/resume-tailoring/internal/types"
)

// ExperienceStrategy targets work experience achievements. It applies to
// experience-category gaps and to any response that mentions a company
// already present in the resume.
type ExperienceStrategy struct{}

// Name implements Strategy.
func (s *ExperienceStrategy) Name() string { return "experience" }

// CanHandle implements Strategy.
func (s *ExperienceStrategy) CanHandle(gap types.ResumeGap, response string, doc document.Document) bool {
	if gap.Category == types.CategoryExperience {
		return true
	}
	return formatting.MatchCompany(response, document.Companies(doc)) >= 0
}

// UpdatePath targets the achievements of the mentioned company when one
// is recognized, the first experience entry for experience gaps otherwise,
// and the career summary when the resume has no experience at all.
func (s *ExperienceStrategy) UpdatePath(gap types.ResumeGap, response string, doc document.Document) string {
	if idx := formatting.MatchCompany(response, document.Companies(doc)); idx >= 0 {
		return fmt.Sprintf("experience[%d].achievements", idx)
	}
	if gap.Category == types.CategoryExperience && document.ExperienceCount(doc) > 0 {
		return "experience[0].achievements"
	}
	return careerSummaryPath
}

// FormatValue turns the response into achievement bullets merged with the
// existing ones, or passes the response through for non-achievement paths.
func (s *ExperienceStrategy) FormatValue(_ context.Context, _ types.ResumeGap, response string, doc document.Document, path string) (any, error) {
	if strings.HasSuffix(path, ".achievements") {
		bullets := formatting.ExperienceBullets(response)
		current := document.ToStringSlice(document.GetValue(doc, path))
		return document.MergeStringSlices(current, bullets), nil
	}
	return response, nil
}
