package screening

import (
	"context"
	"fmt"

	"github.com/hirekit/hirekit/internal/scoring"
)

type minScoreFilter struct {
	disabled bool
	reason   string
	minScore int
}

// NewMinScore creates the composite score threshold step.
func NewMinScore() Filter {
	return &minScoreFilter{}
}

func (f *minScoreFilter) Name() string { return "min_score" }

func (f *minScoreFilter) Disable(reason string) {
	f.disabled = true
	f.reason = reason
}

func (f *minScoreFilter) IsEnabled() bool { return !f.disabled }

func (f *minScoreFilter) Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("screening configuration is required")
	}
	if cfg.MinScore < 0 || cfg.MinScore > 100 {
		return fmt.Errorf("minimum score %d is outside [0,100]", cfg.MinScore)
	}
	f.minScore = cfg.MinScore
	return nil
}

func (f *minScoreFilter) Apply(_ context.Context, _ Deps, r *scoring.Results) (*scoring.Results, Step, error) {
	if f.minScore <= 0 {
		return r, Step{Initial: r.Len(), Left: r.Len()}, nil
	}

	kept, step := keep(r, func(result *scoring.Result) bool {
		return result.CompositeScore >= f.minScore
	})
	return kept, step, nil
}
