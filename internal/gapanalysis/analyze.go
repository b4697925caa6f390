// Package gapanalysis produces a prioritized gap list by diffing a resume
// against a job description through the LLM, with defensive parsing of the
// model output and a legacy fallback interpretation.
package gapanalysis

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/resume-tailoring/internal/llm"
	"github.com/jonathan/resume-tailoring/internal/prompts"
	"github.com/jonathan/resume-tailoring/internal/types"
)

const (
	// MaxJobDescriptionLen caps job description input; longer requests are
	// rejected before any external call.
	MaxJobDescriptionLen = 10000

	// DefaultTimeout bounds the whole analysis call.
	DefaultTimeout = 85 * time.Second

	// legacyOverallMatch is the match percentage assumed when only the
	// legacy suggestions shape is available.
	legacyOverallMatch = 50
)

// Engine runs gap analyses against the configured LLM client.
type Engine struct {
	client  llm.Client
	timeout time.Duration
}

// NewEngine creates an engine with the default timeout.
func NewEngine(client llm.Client) *Engine {
	return &Engine{client: client, timeout: DefaultTimeout}
}

// WithTimeout overrides the analysis time bound. Zero or negative values
// keep the default.
func (e *Engine) WithTimeout(timeout time.Duration) *Engine {
	if timeout > 0 {
		e.timeout = timeout
	}
	return e
}

// Analyze diffs the resume against the job description and returns the
// prioritized gap list. Failures are typed: ValidationError before any
// call, TimeoutError when the bound is exceeded, APICallError for other
// transport failures, ParseError when the response defies interpretation.
func (e *Engine) Analyze(ctx context.Context, resume *types.ResumeData, jobDescription string) (*types.GapAnalysisResult, error) {
	if strings.TrimSpace(jobDescription) == "" {
		return nil, &ValidationError{Field: "jobDescription", Message: "job description is required"}
	}
	if len(jobDescription) > MaxJobDescriptionLen {
		return nil, &ValidationError{
			Field:   "jobDescription",
			Message: "job description exceeds the 10000 character limit",
		}
	}
	if resume == nil {
		return nil, &ValidationError{Field: "resumeData", Message: "resume data is required"}
	}

	resumeJSON, err := resume.ToJSON()
	if err != nil {
		return nil, &ValidationError{Field: "resumeData", Message: "resume data is not serializable"}
	}

	template := prompts.MustGet("tailoring.json", "analyze-gaps")
	prompt := prompts.Format(template, map[string]string{
		"ResumeJSON":     resumeJSON,
		"JobDescription": jobDescription,
	})

	// Bound the call; cancellation aborts the in-flight request and the
	// timer is released on every branch.
	callCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	responseText, err := e.client.GenerateJSON(callCtx, prompt, llm.TierAdvanced)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || callCtx.Err() == context.DeadlineExceeded {
			return nil, &TimeoutError{Timeout: e.timeout}
		}
		return nil, &APICallError{Message: "failed to generate gap analysis", Cause: err}
	}

	result, err := parseAnalysisResponse(responseText)
	if err != nil {
		return nil, err
	}

	postProcess(result)
	return result, nil
}

// parseAnalysisResponse interprets the model output. The expected shape
// has a gaps array; the legacy shape carries bare suggestion strings and
// is upgraded to synthetic gaps. Anything else is a parse failure with the
// raw response preserved.
func parseAnalysisResponse(responseText string) (*types.GapAnalysisResult, error) {
	jsonText := llm.ExtractJSONObject(llm.CleanJSONBlock(responseText))

	var probe struct {
		Gaps        json.RawMessage `json:"gaps"`
		Suggestions []string        `json:"suggestions"`
	}
	if err := json.Unmarshal([]byte(jsonText), &probe); err != nil {
		return nil, &ParseError{
			Message:     "response is not valid JSON",
			RawResponse: responseText,
			Cause:       err,
		}
	}

	if isJSONArray(probe.Gaps) {
		var result types.GapAnalysisResult
		if err := json.Unmarshal([]byte(jsonText), &result); err != nil {
			return nil, &ParseError{
				Message:     "gap analysis shape mismatch",
				RawResponse: responseText,
				Cause:       err,
			}
		}
		return &result, nil
	}

	// A present-but-empty suggestions array carries nothing to upgrade
	// and falls through to the shape-mismatch error below.
	if len(probe.Suggestions) > 0 {
		return resultFromSuggestions(probe.Suggestions), nil
	}

	return nil, &ParseError{
		Message:     "response contains no gaps array",
		RawResponse: responseText,
	}
}

func isJSONArray(raw json.RawMessage) bool {
	trimmed := strings.TrimSpace(string(raw))
	return strings.HasPrefix(trimmed, "[")
}

// resultFromSuggestions upgrades the legacy suggestions shape: one
// medium-priority experience gap per suggestion with placeholder fields.
func resultFromSuggestions(suggestions []string) *types.GapAnalysisResult {
	gaps := make([]types.ResumeGap, 0, len(suggestions))
	for _, suggestion := range suggestions {
		gaps = append(gaps, types.ResumeGap{
			ID:                 uuid.NewString(),
			Category:           types.CategoryExperience,
			Priority:           types.PriorityMedium,
			Title:              suggestion,
			Description:        suggestion,
			JobRequirement:     "See the job description",
			CurrentResumeState: "Not addressed in the current resume",
			SuggestedQuestion:  "Can you tell me more about your experience in this area?",
		})
	}
	return &types.GapAnalysisResult{
		Gaps:    gaps,
		Summary: types.GapSummary{OverallMatch: legacyOverallMatch},
	}
}

// postProcess assigns ids to id-less gaps, orders gaps ascending by
// priority (stable for equal priorities), and recomputes summary counts
// from the gaps themselves.
func postProcess(result *types.GapAnalysisResult) {
	for i := range result.Gaps {
		if result.Gaps[i].ID == "" {
			result.Gaps[i].ID = uuid.NewString()
		}
	}

	sort.SliceStable(result.Gaps, func(i, j int) bool {
		return result.Gaps[i].Priority < result.Gaps[j].Priority
	})

	breakdown := types.PriorityBreakdown{}
	categories := make(map[string]int)
	for _, gap := range result.Gaps {
		switch gap.Priority {
		case types.PriorityHigh:
			breakdown.High++
		case types.PriorityMedium:
			breakdown.Medium++
		default:
			breakdown.Low++
		}
		categories[string(gap.Category)]++
	}

	result.Summary.TotalGaps = len(result.Gaps)
	result.Summary.PriorityBreakdown = breakdown
	result.Summary.CategoryBreakdown = categories
	if result.Summary.OverallMatch < 0 {
		result.Summary.OverallMatch = 0
	}
	if result.Summary.OverallMatch > 100 {
		result.Summary.OverallMatch = 100
	}
}
