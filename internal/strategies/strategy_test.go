package strategies

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-tailoring/internal/document"
	"github.com/jonathan/resume-tailoring/internal/types"
)

type fakeExtractor struct {
	skills []string
	err    error
	calls  int
}

func (f *fakeExtractor) Extract(_ context.Context, _ string) ([]string, error) {
	f.calls++
	return f.skills, f.err
}

func sampleDoc() document.Document {
	return document.Document{
		"profile": map[string]any{
			"fullName":      "Jane Doe",
			"careerSummary": "Seasoned engineer. Focused on backend systems.",
		},
		"experience": []any{
			map[string]any{
				"company":      "Acme Corp",
				"position":     "Engineer",
				"achievements": []any{"Shipped the widget service"},
			},
			map[string]any{
				"company":      "Globex",
				"position":     "Senior Engineer",
				"achievements": []any{},
			},
		},
		"education": []any{
			map[string]any{
				"institution":  "State University",
				"degree":       "BSc",
				"fieldOfStudy": "Computer Science",
			},
		},
		"skills": map[string]any{
			"technical": []any{"Go", "PostgreSQL"},
			"soft":      []any{"Communication"},
		},
	}
}

func gap(category types.GapCategory) types.ResumeGap {
	return types.ResumeGap{
		ID:       "gap-1",
		Category: category,
		Priority: types.PriorityHigh,
		Title:    "Test gap",
	}
}

func TestRegistrySelectsByCategory(t *testing.T) {
	registry := NewRegistry(nil)
	doc := sampleDoc()

	tests := []struct {
		category types.GapCategory
		want     string
	}{
		{types.CategoryExperience, "experience"},
		{types.CategoryTechnicalSkills, "skills"},
		{types.CategorySoftSkills, "skills"},
		{types.CategorySummary, "summary"},
		{types.CategoryEducation, "education"},
		{types.CategoryAchievements, "achievements"},
		{types.GapCategory("something-new"), "fallback"},
		{types.GapCategory(""), "fallback"},
	}

	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			strategy := registry.Select(gap(tt.category), "generic response", doc)
			assert.Equal(t, tt.want, strategy.Name())
		})
	}
}

func TestRegistryIsTotal(t *testing.T) {
	registry := NewRegistry(nil)
	strategy := registry.Select(gap("unmapped"), "", document.Document{})
	require.NotNil(t, strategy)
	assert.Equal(t, "fallback", strategy.Name())
}

func TestCompanyMentionRoutesToExperience(t *testing.T) {
	registry := NewRegistry(nil)
	doc := sampleDoc()
	g := gap(types.GapCategory("other"))

	strategy := registry.Select(g, "While at Globex I led the migration to Kubernetes.", doc)
	require.Equal(t, "experience", strategy.Name())

	path := strategy.UpdatePath(g, "While at Globex I led the migration to Kubernetes.", doc)
	assert.Equal(t, "experience[1].achievements", path)
}

func TestExperienceStrategyMergesBullets(t *testing.T) {
	s := &ExperienceStrategy{}
	doc := sampleDoc()
	g := gap(types.CategoryExperience)
	response := "I designed a distributed ingestion system handling millions of events per day with strict ordering."

	path := s.UpdatePath(g, response, doc)
	require.Equal(t, "experience[0].achievements", path)

	value, err := s.FormatValue(context.Background(), g, response, doc, path)
	require.NoError(t, err)

	bullets, ok := value.([]string)
	require.True(t, ok)
	require.NotEmpty(t, bullets)
	assert.Equal(t, "Shipped the widget service", bullets[0])
	assert.Greater(t, len(bullets), 1)
}

func TestExperienceStrategyFallsBackToSummary(t *testing.T) {
	s := &ExperienceStrategy{}
	doc := document.Document{"profile": map[string]any{"careerSummary": "Summary."}}
	g := gap(types.CategoryExperience)

	assert.Equal(t, careerSummaryPath, s.UpdatePath(g, "no company here", doc))
}

func TestSkillsStrategyUsesExtractor(t *testing.T) {
	extractor := &fakeExtractor{skills: []string{"Go", "Terraform", "Kafka"}}
	s := &SkillsStrategy{Extractor: extractor}
	doc := sampleDoc()
	g := gap(types.CategoryTechnicalSkills)

	path := s.UpdatePath(g, "", doc)
	require.Equal(t, "skills.technical", path)

	value, err := s.FormatValue(context.Background(), g, "I know Terraform and Kafka", doc, path)
	require.NoError(t, err)
	assert.Equal(t, 1, extractor.calls)
	assert.Equal(t, []string{"Go", "PostgreSQL", "Terraform", "Kafka"}, value)
}

func TestSkillsStrategyFallsBackOnExtractorError(t *testing.T) {
	extractor := &fakeExtractor{err: errors.New("quota exceeded")}
	s := &SkillsStrategy{Extractor: extractor}
	doc := sampleDoc()
	g := gap(types.CategoryTechnicalSkills)

	value, err := s.FormatValue(context.Background(), g, "I have used Docker and Kubernetes at scale", doc, "skills.technical")
	require.NoError(t, err)

	merged, ok := value.([]string)
	require.True(t, ok)
	assert.Contains(t, merged, "Docker")
	assert.Contains(t, merged, "Kubernetes")
	assert.Contains(t, merged, "Go")
}

func TestSkillsStrategyPropagatesCancellation(t *testing.T) {
	extractor := &fakeExtractor{err: context.Canceled}
	s := &SkillsStrategy{Extractor: extractor}
	g := gap(types.CategoryTechnicalSkills)

	_, err := s.FormatValue(context.Background(), g, "anything", sampleDoc(), "skills.technical")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSoftSkillsSplitAndMerge(t *testing.T) {
	s := &SkillsStrategy{}
	doc := sampleDoc()
	g := gap(types.CategorySoftSkills)

	value, err := s.FormatValue(context.Background(), g, "Cross-team collaboration, stakeholder management.", doc, "skills.soft")
	require.NoError(t, err)
	assert.Equal(t, []string{"Communication", "Cross-team collaboration", "stakeholder management"}, value)
}

func TestSoftSkillsEmptyResponseKeepsCurrent(t *testing.T) {
	s := &SkillsStrategy{}
	doc := sampleDoc()
	g := gap(types.CategorySoftSkills)

	value, err := s.FormatValue(context.Background(), g, "   ", doc, "skills.soft")
	require.NoError(t, err)
	assert.Equal(t, []string{"Communication"}, value)
}

func TestEducationStrategyPaths(t *testing.T) {
	s := &EducationStrategy{}
	g := gap(types.CategoryEducation)

	assert.Equal(t, "education[0].fieldOfStudy", s.UpdatePath(g, "", sampleDoc()))
	assert.Equal(t, careerSummaryPath, s.UpdatePath(g, "", document.Document{}))

	value, err := s.FormatValue(context.Background(), g, "Completed a minor in statistics", sampleDoc(), "education[0].fieldOfStudy")
	require.NoError(t, err)
	assert.Equal(t, "Completed a minor in statistics", value)
}

func TestAchievementsStrategyMergesBullets(t *testing.T) {
	s := &AchievementsStrategy{}
	doc := sampleDoc()
	g := gap(types.CategoryAchievements)

	path := s.UpdatePath(g, "", doc)
	require.Equal(t, "experience[0].achievements", path)

	value, err := s.FormatValue(context.Background(), g, "I reduced deployment times from hours to minutes by automating the release pipeline end to end.", doc, path)
	require.NoError(t, err)

	bullets, ok := value.([]string)
	require.True(t, ok)
	assert.Equal(t, "Shipped the widget service", bullets[0])
	assert.Greater(t, len(bullets), 1)
}

func TestFallbackAppendsToSummary(t *testing.T) {
	s := &FallbackStrategy{}
	doc := sampleDoc()
	g := gap(types.GapCategory("misc"))

	value, err := s.FormatValue(context.Background(), g, "Additional context.", doc, careerSummaryPath)
	require.NoError(t, err)
	assert.Equal(t, "Seasoned engineer. Focused on backend systems.\n\nAdditional context.", value)
}

func TestFallbackWithoutSummaryUsesResponse(t *testing.T) {
	s := &FallbackStrategy{}
	g := gap(types.GapCategory("misc"))

	value, err := s.FormatValue(context.Background(), g, "Fresh summary.", document.Document{}, careerSummaryPath)
	require.NoError(t, err)
	assert.Equal(t, "Fresh summary.", value)
}

func TestBuilderProposalShape(t *testing.T) {
	builder := NewBuilder(NewRegistry(nil))
	doc := sampleDoc()
	g := gap(types.CategorySummary)
	g.Title = "Summary does not mention leadership"

	proposal, err := builder.Propose(context.Background(), g, "Led a team of five engineers.", doc)
	require.NoError(t, err)
	require.NotNil(t, proposal)

	assert.Equal(t, careerSummaryPath, proposal.Path)
	assert.Equal(t, "Seasoned engineer. Focused on backend systems.", proposal.OldValue)
	assert.Equal(t, "Update based on gap: Summary does not mention leadership", proposal.Description)
	assert.NotEqual(t, proposal.OldValue, proposal.NewValue)
}

func TestBuilderSurfacesFormatError(t *testing.T) {
	extractor := &fakeExtractor{err: context.DeadlineExceeded}
	builder := NewBuilder(NewRegistry(extractor))
	g := gap(types.CategoryTechnicalSkills)

	proposal, err := builder.Propose(context.Background(), g, "anything", sampleDoc())
	require.Error(t, err)
	assert.Nil(t, proposal)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
