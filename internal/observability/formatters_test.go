package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-tailoring/internal/types"
)

func TestPrintGapAnalysis(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintGapAnalysis(&types.GapAnalysisResult{
		Gaps: []types.ResumeGap{
			{ID: "g1", Category: types.CategorySummary, Priority: types.PriorityHigh, Title: "Missing leadership"},
			{ID: "g2", Category: types.CategoryTechnicalSkills, Priority: types.PriorityLow, Title: "No Kubernetes"},
		},
		Summary: types.GapSummary{
			TotalGaps:         2,
			PriorityBreakdown: types.PriorityBreakdown{High: 1, Low: 1},
			OverallMatch:      64,
		},
	})

	out := buf.String()
	assert.Contains(t, out, "GAP ANALYSIS")
	assert.Contains(t, out, "Overall match: 64%")
	assert.Contains(t, out, "[HIGH] Missing leadership")
	assert.Contains(t, out, "[LOW] No Kubernetes")
}

func TestPrintGapAnalysisNilIsQuiet(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintGapAnalysis(nil)
	assert.Empty(t, buf.String())
}

func TestPrintGap(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintGap(0, 3, types.ResumeGap{
		Priority:          types.PriorityMedium,
		Title:             "No cloud experience listed",
		JobRequirement:    "AWS in production",
		SuggestedQuestion: "Have you deployed to AWS?",
	})

	out := buf.String()
	assert.Contains(t, out, "GAP 1 OF 3")
	assert.Contains(t, out, "[MEDIUM] No cloud experience listed")
	assert.Contains(t, out, "Have you deployed to AWS?")
}

func TestPrintProposal(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintProposal(&types.ChangeProposal{
		Path:     "skills.technical",
		OldValue: []string{"Go"},
		NewValue: []string{"Go", "Kubernetes"},
	})

	out := buf.String()
	assert.Contains(t, out, "PROPOSED CHANGE")
	assert.Contains(t, out, "Target: skills.technical")
	assert.Contains(t, out, "Before: Go")
	assert.Contains(t, out, "After:  Go | Kubernetes")
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "(empty)", formatValue(nil))
	assert.Equal(t, "plain", formatValue("plain"))
	assert.Equal(t, "a | b", formatValue([]any{"a", "b"}))
}
