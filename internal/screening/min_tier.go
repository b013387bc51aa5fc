package screening

import (
	"context"
	"fmt"
	"strings"

	"github.com/hirekit/hirekit/internal/scoring"
)

type minTierFilter struct {
	disabled bool
	reason   string
	minRank  int
}

// NewMinTier creates the recommendation tier threshold step.
func NewMinTier() Filter {
	return &minTierFilter{}
}

func (f *minTierFilter) Name() string { return "min_tier" }

func (f *minTierFilter) Disable(reason string) {
	f.disabled = true
	f.reason = reason
}

func (f *minTierFilter) IsEnabled() bool { return !f.disabled }

func (f *minTierFilter) Validate(cfg *Config) error {
	f.minRank = -1
	if cfg == nil {
		return fmt.Errorf("screening configuration is required")
	}

	label := strings.TrimSpace(cfg.MinTier)
	if label == "" {
		return nil
	}

	lower := strings.ToLower(label)
	tier := scoring.Tier(strings.ToUpper(lower[:1]) + lower[1:])
	rank := tier.Rank()
	if rank < 0 {
		return fmt.Errorf("unknown recommendation tier %q", cfg.MinTier)
	}

	f.minRank = rank
	return nil
}

func (f *minTierFilter) Apply(_ context.Context, _ Deps, r *scoring.Results) (*scoring.Results, Step, error) {
	if f.minRank < 0 {
		return r, Step{Initial: r.Len(), Left: r.Len()}, nil
	}

	kept, step := keep(r, func(result *scoring.Result) bool {
		return result.Tier.Rank() >= f.minRank
	})
	return kept, step, nil
}
