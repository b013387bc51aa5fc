// Package screening narrows a set of evaluation results before they reach
// the reviewer, one named step at a time.
package screening

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/hirekit/hirekit/internal/scoring"
)

// Filter represents a single screening step applied to evaluation results.
type Filter interface {
	Name() string
	Disable(reason string)
	IsEnabled() bool

	Validate(cfg *Config) error
	Apply(ctx context.Context, deps Deps, r *scoring.Results) (*scoring.Results, Step, error)
}

// Deps aggregates dependencies shared across all screening steps.
type Deps struct {
	Logger *zap.Logger
}

// Step describes the result of executing a screening step.
type Step struct {
	Initial int
	Dropped int
	Left    int
}

// Config contains configuration settings consumed by the filters.
type Config struct {
	MinScore        int
	MinTier         string
	ExcludeDegraded bool
}

// Status represents runtime information about a filter.
type Status struct {
	Name    string
	Enabled bool
	Reason  string
}

// DisableByName marks a filter with the provided name as disabled while
// keeping it in the list.
func DisableByName(steps []Filter, name, reason string) {
	for _, step := range steps {
		if step.Name() == name {
			step.Disable(reason)
		}
	}
}

// Run executes the supplied filters sequentially and returns the surviving
// results. All enabled filters are validated before the first one runs.
func Run(ctx context.Context, cfg *Config, deps Deps, steps []Filter, r *scoring.Results) (*scoring.Results, error) {
	for _, step := range steps {
		if !step.IsEnabled() {
			continue
		}
		if err := step.Validate(cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", step.Name(), err)
		}
	}

	for _, step := range steps {
		if !step.IsEnabled() {
			if deps.Logger != nil {
				deps.Logger.Info("screening step disabled", zap.String("name", step.Name()))
			}
			continue
		}

		next, info, err := step.Apply(ctx, deps, r)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", step.Name(), err)
		}

		if deps.Logger != nil {
			deps.Logger.Info("screening step",
				zap.String("name", step.Name()),
				zap.Int("initial", info.Initial),
				zap.Int("dropped", info.Dropped),
				zap.Int("left", info.Left),
			)
		}

		r = next
	}

	return r, nil
}

// Describe returns status entries for the provided filters.
func Describe(steps []Filter) []Status {
	statuses := make([]Status, 0, len(steps))
	for _, step := range steps {
		statuses = append(statuses, Status{
			Name:    step.Name(),
			Enabled: step.IsEnabled(),
		})
	}
	return statuses
}

// keep retains the results the predicate accepts and reports the step stats.
func keep(r *scoring.Results, predicate func(*scoring.Result) bool) (*scoring.Results, Step) {
	initial := r.Len()

	kept := &scoring.Results{}
	for _, result := range r.Items {
		if predicate(result) {
			kept.Items = append(kept.Items, result)
		}
	}

	return kept, Step{Initial: initial, Dropped: initial - kept.Len(), Left: kept.Len()}
}
