package collector

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseExpiry(t *testing.T) {
	testCases := []struct {
		text     string
		expected ExpiryStatus
	}{
		{"", ExpiryStatus{Kind: NoExpiry}},
		{"   ", ExpiryStatus{Kind: NoExpiry}},
		{"expired", ExpiryStatus{Kind: Expired}},
		{"EXPIRED", ExpiryStatus{Kind: Expired}},
		{"Expired: July 4, 2024", ExpiryStatus{Kind: Expired}},
		{"No expiry", ExpiryStatus{Kind: NoExpiry}},
		{"None", ExpiryStatus{Kind: NoExpiry}},
		{"TBD", ExpiryStatus{Kind: NoExpiry}},
		{"Unknown", ExpiryStatus{Kind: NoExpiry}},
		{"-", ExpiryStatus{Kind: NoExpiry}},
		{"—", ExpiryStatus{Kind: NoExpiry}},
		{"– [1]", ExpiryStatus{Kind: NoExpiry}},
		{"January 1, 2099", ExpiresOn(2099, time.January, 1)},
		{"january 1, 2099", ExpiresOn(2099, time.January, 1)},
		{"Sep 30, 2025", ExpiresOn(2025, time.September, 30)},
		{"March 05, 2025[2]", ExpiresOn(2025, time.March, 5)},
		{"2025-12-31", ExpiresOn(2025, time.December, 31)},
		{"2025-12-31 [3] ", ExpiresOn(2025, time.December, 31)},
		{"2024-1-5", ExpiresOn(2024, time.January, 5)},
		{"2025-12-5", ExpiresOn(2025, time.December, 5)},
		{"June\u00a01, 2024", ExpiresOn(2024, time.June, 1)},
		{"Sep\u00a0 30,\u00a02025", ExpiresOn(2025, time.September, 30)},
		{"sometime next patch", ExpiryStatus{Kind: NoExpiry}},
		{"31/12/2025", ExpiryStatus{Kind: NoExpiry}},
	}

	for _, tc := range testCases {
		t.Run(tc.text, func(t *testing.T) {
			assert.Equal(t, tc.expected, ParseExpiry(tc.text))
		})
	}
}

func TestParseExpiryExpiredAnyCase(t *testing.T) {
	for _, text := range []string{"expired", "Expired", "eXpIrEd", "code has EXPIRED", "Expired (2024-01-01)"} {
		assert.Equal(t, Expired, ParseExpiry(text).Kind, text)
	}
}

func TestExpiryStatusIsActive(t *testing.T) {
	today := time.Date(2025, time.June, 15, 18, 30, 0, 0, time.UTC)

	assert.True(t, ExpiryStatus{Kind: NoExpiry}.IsActive(today))
	assert.False(t, ExpiryStatus{Kind: Expired}.IsActive(today))
	assert.True(t, ExpiresOn(2025, time.June, 15).IsActive(today), "a code expiring today is still active")
	assert.True(t, ExpiresOn(2025, time.June, 16).IsActive(today))
	assert.False(t, ExpiresOn(2025, time.June, 14).IsActive(today))
}

func TestExpiryKindString(t *testing.T) {
	assert.Equal(t, "no-expiry", NoExpiry.String())
	assert.Equal(t, "expired", Expired.String())
	assert.Equal(t, "on-date", OnDate.String())
	assert.Equal(t, "unknown", ExpiryKind(42).String())
}
