package collector

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// DefaultCurrency is the reward currency looked for in reward cells
const DefaultCurrency = "Polychrome"

var codeRegex = regexp.MustCompile(`\b[A-Z0-9]{6,24}\b`)

// MatchCode returns the first code-shaped token in the upper-cased text
func MatchCode(text string) (string, bool) {
	code := codeRegex.FindString(strings.ToUpper(text))
	if code == "" {
		return "", false
	}
	return code, true
}

// RewardExtractor pulls a currency quantity out of a reward description
type RewardExtractor struct {
	regex *regexp.Regexp
}

// NewRewardExtractor builds an extractor for "<1-4 digits> <currency>[s]"
func NewRewardExtractor(currency string) *RewardExtractor {
	if currency == "" {
		currency = DefaultCurrency
	}
	pattern := fmt.Sprintf(`(?i)(\d{1,4})\s*%ss?`, regexp.QuoteMeta(currency))
	return &RewardExtractor{regex: regexp.MustCompile(pattern)}
}

// Extract returns the first quantity found in text
func (e *RewardExtractor) Extract(text string) (int, bool) {
	match := e.regex.FindStringSubmatch(normalizeSpace(text))
	if len(match) < 2 {
		return 0, false
	}
	n, err := strconv.Atoi(match[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

var defaultRewardExtractor = NewRewardExtractor(DefaultCurrency)

// ExtractReward extracts a Polychrome quantity from text
func ExtractReward(text string) (int, bool) {
	return defaultRewardExtractor.Extract(text)
}
