package collector

import (
	"sort"
	"time"
)

// Aggregate drops inactive and zero-reward candidates, keeps the highest
// reward per code and returns the codes sorted by reward, highest first.
// Codes with equal rewards keep the order in which they were first seen.
func Aggregate(candidates []Candidate, today time.Time) []RedemptionCode {
	best := make(map[string]int)
	var order []string

	for _, c := range candidates {
		if !c.Expiry.IsActive(today) || c.Reward <= 0 {
			continue
		}
		prev, seen := best[c.Code]
		if !seen {
			order = append(order, c.Code)
			best[c.Code] = c.Reward
			continue
		}
		if c.Reward > prev {
			best[c.Code] = c.Reward
		}
	}

	codes := make([]RedemptionCode, 0, len(order))
	for _, code := range order {
		codes = append(codes, RedemptionCode{Code: code, Reward: best[code]})
	}

	return SortByReward(codes, false)
}

// SortByReward returns a stably sorted copy of codes
func SortByReward(codes []RedemptionCode, ascending bool) []RedemptionCode {
	sorted := make([]RedemptionCode, len(codes))
	copy(sorted, codes)

	sort.SliceStable(sorted, func(i, j int) bool {
		if ascending {
			return sorted[i].Reward < sorted[j].Reward
		}
		return sorted[i].Reward > sorted[j].Reward
	})
	return sorted
}
