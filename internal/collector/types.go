package collector

import "time"

// RedemptionCode is an active code and the currency it grants
type RedemptionCode struct {
	Code   string `json:"code"`
	Reward int    `json:"reward"`
}

// ExpiryKind classifies the expiry cell of a row
type ExpiryKind int

const (
	// NoExpiry means the code never expires, or the date could not be read
	NoExpiry ExpiryKind = iota
	// Expired means the page marks the code as expired
	Expired
	// OnDate means the code expires at the end of Date
	OnDate
)

// String returns a readable name for the kind
func (k ExpiryKind) String() string {
	switch k {
	case NoExpiry:
		return "no-expiry"
	case Expired:
		return "expired"
	case OnDate:
		return "on-date"
	default:
		return "unknown"
	}
}

// ExpiryStatus is the interpreted expiry of a row. Date is only set for OnDate.
type ExpiryStatus struct {
	Kind ExpiryKind
	Date time.Time
}

// ExpiresOn returns an OnDate status for the given calendar day
func ExpiresOn(year int, month time.Month, day int) ExpiryStatus {
	return ExpiryStatus{Kind: OnDate, Date: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// Row holds the raw cell texts of one table row
type Row struct {
	Code   string
	Reward string
	Expiry string
}

// Candidate is a parsed row before aggregation
type Candidate struct {
	Code   string
	Expiry ExpiryStatus
	Reward int
}
