package cache

import "sjsage522/zenlesscollector/internal/collector"

// Diff returns the codes absent from previous, in result order
func Diff(previous Snapshot, codes []collector.RedemptionCode) []string {
	newCodes := []string{}
	for _, c := range codes {
		if _, seen := previous[c.Code]; !seen {
			newCodes = append(newCodes, c.Code)
		}
	}
	return newCodes
}

// SnapshotOf builds the replacement snapshot for a result set
func SnapshotOf(codes []collector.RedemptionCode) Snapshot {
	snapshot := make(Snapshot, len(codes))
	for _, c := range codes {
		snapshot[c.Code] = c.Reward
	}
	return snapshot
}
