package formatting

import "strings"

// minSummarySentenceLen guards against folding trivial fragments into an
// existing summary.
const minSummarySentenceLen = 15

// SummaryParagraph integrates a response into the career summary. With no
// existing summary the first one or two sentences of the response become
// the summary. A short existing summary gets the response's first sentence
// appended; a longer one gets it spliced in right after its own first
// sentence, preserving the rest.
func SummaryParagraph(response, currentSummary string) string {
	if currentSummary == "" {
		sentences := SplitSentences(response)
		if len(sentences) == 0 {
			return response
		}
		if len(sentences) > 2 {
			sentences = sentences[:2]
		}
		summary := strings.Join(sentences, ". ")
		return ensurePeriod(summary)
	}

	firstSentence := ""
	if sentences := SplitSentences(response); len(sentences) > 0 {
		firstSentence = sentences[0]
	}
	if len(firstSentence) < minSummarySentenceLen {
		return currentSummary
	}

	summaryParts := strings.Split(currentSummary, ". ")
	if len(summaryParts) <= 2 {
		return currentSummary + " " + firstSentence + "."
	}

	spliced := make([]string, 0, len(summaryParts)+1)
	spliced = append(spliced, summaryParts[0], firstSentence)
	spliced = append(spliced, summaryParts[1:]...)
	return ensurePeriod(strings.Join(spliced, ". "))
}

func ensurePeriod(s string) string {
	if strings.HasSuffix(s, ".") {
		return s
	}
	return s + "."
}
