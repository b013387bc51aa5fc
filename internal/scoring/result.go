// Package scoring turns one candidate record, one job requirements record
// and one baseline snapshot into a bounded composite score with an
// explainable factor breakdown.
package scoring

import "math"

// Tier is one of the five ordered recommendation labels.
type Tier string

const (
	TierExcellent Tier = "Excellent"
	TierStrong    Tier = "Strong"
	TierGood      Tier = "Good"
	TierModerate  Tier = "Moderate"
	TierWeak      Tier = "Weak"
)

// TierFor maps a composite score onto its recommendation tier. Bounds are
// inclusive and the bands do not overlap.
func TierFor(score int) Tier {
	switch {
	case score >= 85:
		return TierExcellent
	case score >= 75:
		return TierStrong
	case score >= 60:
		return TierGood
	case score >= 45:
		return TierModerate
	default:
		return TierWeak
	}
}

// Rank returns the ordinal position of the tier, higher is better. Unknown
// labels rank below Weak.
func (t Tier) Rank() int {
	switch t {
	case TierExcellent:
		return 4
	case TierStrong:
		return 3
	case TierGood:
		return 2
	case TierModerate:
		return 1
	case TierWeak:
		return 0
	default:
		return -1
	}
}

// Factor is one scored sub-factor: its normalized value in [0,1] and the
// weight it carries inside its parent score.
type Factor struct {
	Name   string  `json:"name"`
	Value  float64 `json:"value"`
	Weight float64 `json:"weight"`
}

// Result is the complete evaluation of one candidate. The factor slices
// retain every raw value and weight, so both top-level scores and the
// composite can be reconstructed exactly from the breakdown. Degraded marks
// evaluations where the semantic judge was unavailable for at least one skill
// pair.
type Result struct {
	CandidateName     string   `json:"candidate_name"`
	JobFitScore       float64  `json:"job_fit_score"`
	PatternFitScore   float64  `json:"pattern_fit_score"`
	CompositeScore    int      `json:"composite_score"`
	Tier              Tier     `json:"recommendation_tier"`
	Comparison        string   `json:"comparison_to_good_hires"`
	JobFitFactors     []Factor `json:"job_fit_factors"`
	PatternFitFactors []Factor `json:"pattern_fit_factors"`
	Strengths         []string `json:"strengths,omitempty"`
	Weaknesses        []string `json:"weaknesses,omitempty"`
	Degraded          bool     `json:"degraded,omitempty"`
}

// weightedTotal folds a factor slice into its 0..100 parent score.
func weightedTotal(factors []Factor) float64 {
	var total float64
	for _, factor := range factors {
		total += factor.Value * factor.Weight
	}
	return 100 * total
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
