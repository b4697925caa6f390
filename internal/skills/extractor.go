// Package skills provides technical-skill extraction from free-form text
// using the LLM, with the response contract of the extraction service:
// skills come back categorized and are flattened for consumers. Anything
// other than a cleanly parsed response counts as "no skills extracted" so
// callers can fall back to local pattern matching.
package skills

import (
	"context"
	"encoding/json"
	"log"
	"strings"

	"github.com/jonathan/resume-tailoring/internal/llm"
	"github.com/jonathan/resume-tailoring/internal/prompts"
)

// Extractor extracts technical skills from text.
type Extractor interface {
	Extract(ctx context.Context, text string) ([]string, error)
}

// LLMExtractor implements Extractor on top of the LLM client.
type LLMExtractor struct {
	client llm.Client
}

// NewLLMExtractor creates an extractor backed by the given client.
func NewLLMExtractor(client llm.Client) *LLMExtractor {
	return &LLMExtractor{client: client}
}

// categorizedSkills mirrors the JSON shape the extraction prompt requests.
type categorizedSkills struct {
	ProgrammingLanguages   []string `json:"programmingLanguages"`
	FrameworksAndLibraries []string `json:"frameworksAndLibraries"`
	ToolsAndPlatforms      []string `json:"toolsAndPlatforms"`
	Databases              []string `json:"databases"`
	OtherTechnologies      []string `json:"otherTechnologies"`
}

// Extract asks the LLM for the technologies mentioned in text and returns
// them flattened across categories. A response that cannot be parsed is
// reported as zero skills with a nil error; only transport failures
// surface as errors. Either outcome tells the caller to fall back locally.
func (e *LLMExtractor) Extract(ctx context.Context, text string) ([]string, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	template := prompts.MustGet("skills.json", "extract-technical-skills")
	prompt := prompts.Format(template, map[string]string{"Text": text})

	response, err := e.client.GenerateJSON(ctx, prompt, llm.TierLite)
	if err != nil {
		return nil, err
	}

	var parsed categorizedSkills
	jsonText := llm.ExtractJSONObject(llm.CleanJSONBlock(response))
	if err := json.Unmarshal([]byte(jsonText), &parsed); err != nil {
		log.Printf("skill extraction returned unparseable response, treating as empty: %v", err)
		return nil, nil
	}

	return flatten(parsed), nil
}

// flatten combines the category lists in a stable order, deduplicated.
func flatten(parsed categorizedSkills) []string {
	var all []string
	seen := make(map[string]bool)
	for _, group := range [][]string{
		parsed.ProgrammingLanguages,
		parsed.FrameworksAndLibraries,
		parsed.ToolsAndPlatforms,
		parsed.Databases,
		parsed.OtherTechnologies,
	} {
		for _, skill := range group {
			if skill != "" && !seen[skill] {
				all = append(all, skill)
				seen[skill] = true
			}
		}
	}
	return all
}
