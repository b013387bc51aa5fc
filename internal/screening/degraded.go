package screening

import (
	"context"

	"github.com/hirekit/hirekit/internal/scoring"
)

type degradedFilter struct {
	disabled bool
	reason   string
	exclude  bool
}

// NewExcludeDegraded creates the step that drops evaluations produced
// without a working semantic judge.
func NewExcludeDegraded() Filter {
	return &degradedFilter{}
}

func (f *degradedFilter) Name() string { return "exclude_degraded" }

func (f *degradedFilter) Disable(reason string) {
	f.disabled = true
	f.reason = reason
}

func (f *degradedFilter) IsEnabled() bool { return !f.disabled }

func (f *degradedFilter) Validate(cfg *Config) error {
	f.exclude = cfg != nil && cfg.ExcludeDegraded
	return nil
}

func (f *degradedFilter) Apply(_ context.Context, _ Deps, r *scoring.Results) (*scoring.Results, Step, error) {
	if !f.exclude {
		return r, Step{Initial: r.Len(), Left: r.Len()}, nil
	}

	kept, step := keep(r, func(result *scoring.Result) bool {
		return !result.Degraded
	})
	return kept, step, nil
}
