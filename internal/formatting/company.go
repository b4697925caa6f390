package formatting

import (
	"regexp"
	"strings"
)

// MatchCompany scans a response for the first company (in resume order)
// that it mentions. Matching is case-insensitive, tolerant of flexible
// whitespace and of legal suffixes like "Inc" or "LLC" following the name.
// Returns the index into companies, or -1 when none is mentioned. When a
// response names several companies the first match in resume order wins.
func MatchCompany(response string, companies []string) int {
	for i, company := range companies {
		if strings.TrimSpace(company) == "" {
			continue
		}
		pattern := `(?i)` + strings.ReplaceAll(regexp.QuoteMeta(company), ` `, `\s+`) + `\s*(inc|solutions|corp|llc)?`
		re, err := regexp.Compile(pattern)
		if err != nil {
			continue
		}
		if re.MatchString(response) {
			return i
		}
	}
	return -1
}
