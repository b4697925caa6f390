// Package types provides type definitions for structured data used throughout the resume-tailoring system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "encoding/json"

// UserProfile holds personal and contact information. Every field is
// optional; the document fills in incrementally as the interview progresses.
type UserProfile struct {
	FullName      string `json:"fullName,omitempty"`
	Email         string `json:"email,omitempty"`
	Phone         string `json:"phone,omitempty"`
	LinkedIn      string `json:"linkedin,omitempty"`
	GitHub        string `json:"github,omitempty"`
	Portfolio     string `json:"portfolio,omitempty"`
	CareerSummary string `json:"careerSummary,omitempty"`
}

// WorkExperience represents a single work experience entry. Entries keep
// insertion order; no chronological sort is implied.
type WorkExperience struct {
	ID           string   `json:"id,omitempty"`
	Company      string   `json:"company"`
	Position     string   `json:"position,omitempty"`
	StartDate    string   `json:"startDate,omitempty"`
	EndDate      string   `json:"endDate,omitempty"`
	Location     string   `json:"location,omitempty"`
	Achievements []string `json:"achievements,omitempty"`
}

// Education represents a single education entry.
type Education struct {
	ID           string   `json:"id,omitempty"`
	Institution  string   `json:"institution"`
	Degree       string   `json:"degree,omitempty"`
	FieldOfStudy string   `json:"fieldOfStudy,omitempty"`
	StartDate    string   `json:"startDate,omitempty"`
	EndDate      string   `json:"endDate,omitempty"`
	GPA          *float64 `json:"gpa,omitempty"`
}

// Skills holds the technical and soft skill lists. Both are deduplicated
// ordered sequences.
type Skills struct {
	Technical []string `json:"technical,omitempty"`
	Soft      []string `json:"soft,omitempty"`
}

// ResumeData is the canonical resume document. It is partial at every
// level: absence of a field means "not yet known", never an error.
type ResumeData struct {
	Profile    *UserProfile     `json:"profile,omitempty"`
	Experience []WorkExperience `json:"experience,omitempty"`
	Education  []Education      `json:"education,omitempty"`
	Skills     *Skills          `json:"skills,omitempty"`
}

// ToJSON serializes the resume for prompt embedding.
func (r *ResumeData) ToJSON() (string, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
