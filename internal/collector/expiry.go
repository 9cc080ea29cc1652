package collector

import (
	"regexp"
	"strings"
	"time"
)

var (
	// noExpiryMarkers are matched case-insensitively anywhere in the text
	noExpiryMarkers = []string{"no expiry", "none", "tbd", "unknown"}

	footnoteRegex = regexp.MustCompile(`\[\d+\]`)

	// Tried in order; the first layout that parses wins.
	dateLayouts = []string{
		"January 2, 2006",
		"Jan 2, 2006",
		"2006-01-02",
		"2006-1-2",
	}
)

// ParseExpiry interprets the free-text expiry cell of a row.
// Text that matches no known marker or date layout is treated as never expiring.
func ParseExpiry(text string) ExpiryStatus {
	if strings.TrimSpace(text) == "" {
		return ExpiryStatus{Kind: NoExpiry}
	}

	lower := strings.ToLower(text)
	if strings.Contains(lower, "expired") {
		return ExpiryStatus{Kind: Expired}
	}
	for _, marker := range noExpiryMarkers {
		if strings.Contains(lower, marker) {
			return ExpiryStatus{Kind: NoExpiry}
		}
	}

	cleaned := normalizeSpace(footnoteRegex.ReplaceAllString(text, ""))
	if isDashPlaceholder(cleaned) {
		return ExpiryStatus{Kind: NoExpiry}
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, cleaned); err == nil {
			return ExpiryStatus{Kind: OnDate, Date: t}
		}
	}

	return ExpiryStatus{Kind: NoExpiry}
}

// isDashPlaceholder reports whether s is made only of dash characters
func isDashPlaceholder(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch r {
		case '-', '–', '—', '−':
		default:
			return false
		}
	}
	return true
}

// IsActive reports whether a status is still valid on the given day.
// A code expiring today is still active.
func (s ExpiryStatus) IsActive(today time.Time) bool {
	switch s.Kind {
	case Expired:
		return false
	case OnDate:
		return !s.Date.Before(truncateDay(today))
	default:
		return true
	}
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
