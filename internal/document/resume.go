package document

import (
	"encoding/json"

	"github.com/jonathan/resume-tailoring/internal/types"
)

// FromResume converts the typed resume model into a document tree.
func FromResume(resume *types.ResumeData) (Document, error) {
	if resume == nil {
		return Document{}, nil
	}
	data, err := json.Marshal(resume)
	if err != nil {
		return nil, err
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc == nil {
		doc = Document{}
	}
	return doc, nil
}

// ToResume converts a document tree back into the typed resume model.
func ToResume(doc Document) (*types.ResumeData, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	var resume types.ResumeData
	if err := json.Unmarshal(data, &resume); err != nil {
		return nil, err
	}
	return &resume, nil
}

// Companies lists the company names in document experience order. Entries
// without a company name are kept as empty strings so indexes stay aligned
// with the experience array.
func Companies(doc Document) []string {
	entries, _ := doc["experience"].([]any)
	companies := make([]string, len(entries))
	for i, entry := range entries {
		if m, ok := entry.(map[string]any); ok {
			companies[i] = ToString(m["company"])
		}
	}
	return companies
}

// ExperienceCount reports how many experience entries the document has.
func ExperienceCount(doc Document) int {
	entries, _ := doc["experience"].([]any)
	return len(entries)
}

// EducationCount reports how many education entries the document has.
func EducationCount(doc Document) int {
	entries, _ := doc["education"].([]any)
	return len(entries)
}

// CareerSummary returns the current career summary, or "" when unset.
func CareerSummary(doc Document) string {
	return ToString(GetValue(doc, "profile.careerSummary"))
}
