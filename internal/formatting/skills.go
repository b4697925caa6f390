package formatting

import (
	"regexp"
	"strings"
)

// techPatterns covers the technology names the local extractor recognizes:
// databases, web frameworks, cloud/devops tooling, languages, vector
// search systems, and ML terms. Used as the fallback when the LLM-based
// extractor returns nothing.
var techPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(SQL|NoSQL|MongoDB|PostgreSQL|MySQL|Redis|Oracle|Cassandra)\b`),
	regexp.MustCompile(`(?i)\b(React|Angular|Vue|Svelte|Next\.?js|Node\.?js|Express|Django|Flask|Laravel|Spring|Rails)\b`),
	regexp.MustCompile(`(?i)\b(Docker|Kubernetes|AWS|Azure|GCP|Terraform|Jenkins|Git|CI/CD)\b`),
	regexp.MustCompile(`(?i)\b(Python|JavaScript|TypeScript|Java|C#|Go|Rust|Ruby|PHP|Swift|Kotlin)\b`),
	regexp.MustCompile(`(?i)\b(Pinecone|Weaviate|Qdrant|Milvus|Faiss|Elasticsearch|Vector\s*Database)\b`),
	regexp.MustCompile(`(?i)\b(Machine Learning|Deep Learning|NLP|Computer Vision|AI|LLM|GPT|Transformers)\b`),
}

// TechnicalSkills extracts recognizable technology names from a response
// using the local pattern set, deduplicated in first-occurrence order with
// the casing found in the text.
func TechnicalSkills(response string) []string {
	var skills []string
	seen := make(map[string]bool)
	for _, pattern := range techPatterns {
		for _, match := range pattern.FindAllString(response, -1) {
			if !seen[match] {
				skills = append(skills, match)
				seen[match] = true
			}
		}
	}
	return skills
}

const (
	minSoftSkillLen = 10
	maxSoftSkillLen = 50
)

var softSkillSplitRe = regexp.MustCompile(`[,.]`)

// SoftSkills splits a response on commas and periods and keeps fragments
// of plausible skill-phrase length. When nothing qualifies, the whole
// trimmed response is used as a single skill token.
func SoftSkills(response string) []string {
	var skills []string
	for _, part := range softSkillSplitRe.Split(response, -1) {
		trimmed := strings.TrimSpace(part)
		if len(trimmed) > minSoftSkillLen && len(trimmed) < maxSoftSkillLen {
			skills = append(skills, trimmed)
		}
	}
	if len(skills) == 0 {
		skills = []string{strings.TrimSpace(response)}
	}
	return skills
}
