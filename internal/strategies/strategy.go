// Package strategies implements the section-update strategy registry: an
// ordered list of handlers that classify a free-text gap response to the
// resume section it should update and format the replacement value. The
// registry is total — the fallback strategy is registered last and
// handles everything — so classification never fails.
package strategies

import (
	"context"
	"fmt"

	"github.com/jonathan/resume-tailoring/internal/document"
	"github.com/jonathan/resume-tailoring/internal/skills"
	"github.com/jonathan/resume-tailoring/internal/types"
)

// careerSummaryPath is the universal fallback target.
const careerSummaryPath = "profile.careerSummary"

// Strategy decides whether it applies to a gap/response pair, which
// document path to update, and how to shape the new value. FormatValue
// takes a context because the skills strategy may call the external
// extractor; strategies degrade to generic transformations instead of
// failing on malformed input.
type Strategy interface {
	Name() string
	CanHandle(gap types.ResumeGap, response string, doc document.Document) bool
	UpdatePath(gap types.ResumeGap, response string, doc document.Document) string
	FormatValue(ctx context.Context, gap types.ResumeGap, response string, doc document.Document, path string) (any, error)
}

// Registry evaluates strategies in fixed priority order, most specific
// first, and dispatches to the first match.
type Registry struct {
	strategies []Strategy
}

// NewRegistry builds the registry in its fixed priority order. The
// extractor backs the technical-skills path and may be nil, in which case
// only local extraction is used.
func NewRegistry(extractor skills.Extractor) *Registry {
	return &Registry{
		strategies: []Strategy{
			&ExperienceStrategy{},
			&SkillsStrategy{Extractor: extractor},
			&SummaryStrategy{},
			&EducationStrategy{},
			&AchievementsStrategy{},
			&FallbackStrategy{}, // always last, always matches
		},
	}
}

// Select returns the first strategy that can handle the triple. The
// fallback guarantees a usable strategy is always returned.
func (r *Registry) Select(gap types.ResumeGap, response string, doc document.Document) Strategy {
	for _, strategy := range r.strategies {
		if strategy.CanHandle(gap, response, doc) {
			return strategy
		}
	}
	return r.strategies[len(r.strategies)-1]
}

// Builder assembles change proposals from classified responses.
type Builder struct {
	registry *Registry
}

// NewBuilder creates a proposal builder over the given registry.
func NewBuilder(registry *Registry) *Builder {
	return &Builder{registry: registry}
}

// Propose computes a change proposal for the gap and response against the
// current document: strategy selection, path resolution, old-value lookup,
// and value formatting. The formatting step may suspend on the skill
// extractor; its failure is returned to the caller rather than applied.
func (b *Builder) Propose(ctx context.Context, gap types.ResumeGap, response string, doc document.Document) (*types.ChangeProposal, error) {
	strategy := b.registry.Select(gap, response, doc)
	path := strategy.UpdatePath(gap, response, doc)
	oldValue := document.GetValue(doc, path)

	newValue, err := strategy.FormatValue(ctx, gap, response, doc, path)
	if err != nil {
		return nil, fmt.Errorf("strategy %s failed to format value: %w", strategy.Name(), err)
	}

	return &types.ChangeProposal{
		Path:        path,
		OldValue:    oldValue,
		NewValue:    newValue,
		Description: fmt.Sprintf("Update based on gap: %s", gap.Title),
	}, nil
}
