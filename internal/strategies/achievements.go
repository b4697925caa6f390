package strategies

import (
	"context"
	"strings"

	"github.com/jonathan/resume-tailoring/internal/document"
	"github.com/jonathan/resume-tailoring/internal/formatting"
	"github.com/jonathan/resume-tailoring/internal/types"
)

// AchievementsStrategy routes achievement-category gaps into the first
// experience entry's achievements, formatted as bullets like the
// experience strategy does.
type AchievementsStrategy struct{}

// Name implements Strategy.
func (s *AchievementsStrategy) Name() string { return "achievements" }

// CanHandle implements Strategy.
func (s *AchievementsStrategy) CanHandle(gap types.ResumeGap, _ string, _ document.Document) bool {
	return gap.Category == types.CategoryAchievements
}

// UpdatePath implements Strategy.
func (s *AchievementsStrategy) UpdatePath(_ types.ResumeGap, _ string, doc document.Document) string {
	if document.ExperienceCount(doc) > 0 {
		return "experience[0].achievements"
	}
	return careerSummaryPath
}

// FormatValue formats the response as achievement bullets merged with the
// existing ones when targeting an achievements list.
func (s *AchievementsStrategy) FormatValue(_ context.Context, _ types.ResumeGap, response string, doc document.Document, path string) (any, error) {
	if strings.HasSuffix(path, ".achievements") {
		bullets := formatting.ExperienceBullets(response)
		current := document.ToStringSlice(document.GetValue(doc, path))
		return document.MergeStringSlices(current, bullets), nil
	}
	return response, nil
}
