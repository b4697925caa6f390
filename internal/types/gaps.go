package types

// GapCategory identifies which resume section a gap concerns.
type GapCategory string

// Known gap categories. The analysis prompt instructs the model to use
// exactly these values; anything else falls through to the generic
// update strategy.
const (
	CategoryTechnicalSkills GapCategory = "technical_skills"
	CategorySoftSkills      GapCategory = "soft_skills"
	CategoryExperience      GapCategory = "experience"
	CategoryEducation       GapCategory = "education"
	CategoryAchievements    GapCategory = "achievements"
	CategorySummary         GapCategory = "summary"
)

// Gap priority levels, 1 is highest.
const (
	PriorityHigh   = 1
	PriorityMedium = 2
	PriorityLow    = 3
)

// ResumeGap is a single identified mismatch between the resume and the
// target job description. Immutable once produced by the analysis engine.
type ResumeGap struct {
	ID                 string      `json:"id"`
	Category           GapCategory `json:"category"`
	Priority           int         `json:"priority"`
	Title              string      `json:"title"`
	Description        string      `json:"description"`
	JobRequirement     string      `json:"jobRequirement"`
	CurrentResumeState string      `json:"currentResumeState"`
	SuggestedQuestion  string      `json:"suggestedQuestion"`
}

// PriorityBreakdown counts gaps per priority level.
type PriorityBreakdown struct {
	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`
}

// GapSummary aggregates the analysis result.
type GapSummary struct {
	TotalGaps         int               `json:"totalGaps"`
	PriorityBreakdown PriorityBreakdown `json:"priorityBreakdown"`
	CategoryBreakdown map[string]int    `json:"categoryBreakdown"`
	OverallMatch      int               `json:"overallMatch"`
}

// GapAnalysisResult is the structured output of the gap analysis engine.
// Gaps are ordered ascending by priority after post-processing.
type GapAnalysisResult struct {
	Gaps    []ResumeGap `json:"gaps"`
	Summary GapSummary  `json:"summary"`
}
