// Package report renders evaluation results for reviewers: aggregate
// statistics and an Excel workbook.
package report

import (
	"sort"

	"github.com/hirekit/hirekit/internal/scoring"
)

// Stats aggregates a results collection.
type Stats struct {
	Count         int                  `json:"count"`
	Average       float64              `json:"average"`
	Median        float64              `json:"median"`
	Highest       int                  `json:"highest"`
	Lowest        int                  `json:"lowest"`
	DegradedCount int                  `json:"degraded_count"`
	TierCounts    map[scoring.Tier]int `json:"tier_counts"`
}

// Summarize computes aggregate statistics over the collection. An empty
// collection yields a zero Stats.
func Summarize(r *scoring.Results) Stats {
	stats := Stats{TierCounts: r.TierCounts()}
	if r.Len() == 0 {
		return stats
	}

	scores := make([]int, 0, r.Len())
	var total int
	for _, result := range r.Items {
		scores = append(scores, result.CompositeScore)
		total += result.CompositeScore
		if result.Degraded {
			stats.DegradedCount++
		}
	}

	sort.Ints(scores)

	stats.Count = len(scores)
	stats.Average = float64(total) / float64(len(scores))
	stats.Lowest = scores[0]
	stats.Highest = scores[len(scores)-1]

	mid := len(scores) / 2
	if len(scores)%2 == 1 {
		stats.Median = float64(scores[mid])
	} else {
		stats.Median = float64(scores[mid-1]+scores[mid]) / 2
	}

	return stats
}
