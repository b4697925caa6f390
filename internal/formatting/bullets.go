package formatting

import (
	"regexp"
	"strings"
)

const (
	// minSentenceLen filters fragments too short to stand in a bullet.
	minSentenceLen = 15
	// maxBulletLen is the point past which a bullet is closed and a new
	// one started.
	maxBulletLen = 100
)

var (
	fillerPrefixRe = regexp.MustCompile(`(?i)^(I did this|This was at|While working at)`)
	actionVerbRe   = regexp.MustCompile(`(?i)^(Implemented|Developed|Built|Created|Designed|Led|Managed|Optimized|Used|Maintained)`)
	implementedRe  = regexp.MustCompile(`(?i)database|data|storage|index`)
	developedRe    = regexp.MustCompile(`(?i)app|application|system|platform`)
)

// ExperienceBullets turns a free-form answer into achievement bullets.
// Sentences are filtered (too short, filler prefixes), grouped greedily
// into bullets that start with an action verb, and finished with a capital
// letter and a period. When no sentence survives filtering but the answer
// has substance, a single truncated bullet is synthesized so the proposal
// is never empty.
func ExperienceBullets(response string) []string {
	sentences := SplitSentences(response)

	var bullets []string
	var current string

	for i, sentence := range sentences {
		if len(sentence) < minSentenceLen || fillerPrefixRe.MatchString(sentence) {
			continue
		}

		if current == "" {
			current = openBullet(sentence)
		} else {
			current += ", " + lowerFirst(sentence)
		}

		if len(current) > maxBulletLen || i == len(sentences)-1 {
			bullets = append(bullets, current)
			current = ""
		}
	}
	if current != "" {
		bullets = append(bullets, current)
	}

	if len(bullets) == 0 && len(response) > 20 {
		words := strings.Fields(response)
		if len(words) > 10 {
			words = words[:10]
		}
		bullets = append(bullets, "Implemented "+strings.Join(words, " ")+"...")
	}

	finished := make([]string, len(bullets))
	for i, bullet := range bullets {
		bullet = upperFirst(bullet)
		if !strings.HasSuffix(bullet, ".") {
			bullet += "."
		}
		finished[i] = bullet
	}
	return finished
}

// openBullet starts a bullet from a sentence, prepending an action verb
// chosen by keyword when the sentence does not already begin with one.
func openBullet(sentence string) string {
	if actionVerbRe.MatchString(sentence) {
		return sentence
	}
	switch {
	case implementedRe.MatchString(sentence):
		return "Implemented " + lowerFirst(sentence)
	case developedRe.MatchString(sentence):
		return "Developed " + lowerFirst(sentence)
	default:
		return "Built " + lowerFirst(sentence)
	}
}
