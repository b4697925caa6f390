package strategies

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/jonathan/resume-tailoring/internal/document"
	"github.com/jonathan/resume-tailoring/internal/formatting"
	"github.com/jonathan/resume-tailoring/internal/skills"
	"github.com/jonathan/resume-tailoring/internal/types"
)

// SkillsStrategy targets the technical or soft skill lists. Technical
// skills go through the LLM extractor first with the local pattern
// extractor as silent fallback; soft skills are split locally.
type SkillsStrategy struct {
	Extractor skills.Extractor
}

// Name implements Strategy.
func (s *SkillsStrategy) Name() string { return "skills" }

// CanHandle implements Strategy.
func (s *SkillsStrategy) CanHandle(gap types.ResumeGap, _ string, _ document.Document) bool {
	return gap.Category == types.CategoryTechnicalSkills || gap.Category == types.CategorySoftSkills
}

// UpdatePath implements Strategy.
func (s *SkillsStrategy) UpdatePath(gap types.ResumeGap, _ string, _ document.Document) string {
	if gap.Category == types.CategoryTechnicalSkills {
		return "skills.technical"
	}
	return "skills.soft"
}

// FormatValue extracts skills from the response and merges them with the
// current list. An extractor failure never surfaces to the user; it falls
// back to local extraction, except when the caller's context is gone.
func (s *SkillsStrategy) FormatValue(ctx context.Context, _ types.ResumeGap, response string, doc document.Document, path string) (any, error) {
	current := document.ToStringSlice(document.GetValue(doc, path))

	var extracted []string
	if path == "skills.technical" {
		var err error
		extracted, err = s.extractTechnical(ctx, response)
		if err != nil {
			return nil, err
		}
	} else {
		if strings.TrimSpace(response) == "" {
			// Nothing to add; keep the list as it is.
			return current, nil
		}
		extracted = formatting.SoftSkills(response)
	}

	return document.MergeStringSlices(current, extracted), nil
}

// extractTechnical tries the LLM extractor and falls back to the local
// pattern set when it errors or finds nothing. Context cancellation is
// the only failure that propagates: with the caller gone there is no one
// to degrade for.
func (s *SkillsStrategy) extractTechnical(ctx context.Context, response string) ([]string, error) {
	if s.Extractor != nil {
		extracted, err := s.Extractor.Extract(ctx, response)
		if err == nil && len(extracted) > 0 {
			return extracted, nil
		}
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil, err
			}
			log.Printf("LLM skill extraction failed, falling back to local extraction: %v", err)
		} else {
			log.Printf("LLM skill extraction returned no skills, falling back to local extraction")
		}
	}
	return formatting.TechnicalSkills(response), nil
}
