// Package similarity matches free-text phrase sets against each other using
// cheap exact comparison first and an injectable semantic-equivalence
// capability for the rest.
package similarity

import "context"

// Judgment is the provider's verdict on whether two phrases mean the same
// thing. Confidence is in [0,1]; providers that only return a boolean report
// confidence 1 for their answer.
type Judgment struct {
	Equivalent bool
	Confidence float64
}

// Judge is the external semantic-equivalence capability. Implementations may
// call out to a model provider; the resolver treats any returned error as
// "provider unavailable for this pair" and falls back to exact matching.
type Judge interface {
	JudgeEquivalence(ctx context.Context, a, b string) (Judgment, error)
}

// JudgeFunc adapts a plain function to the Judge interface.
type JudgeFunc func(ctx context.Context, a, b string) (Judgment, error)

func (f JudgeFunc) JudgeEquivalence(ctx context.Context, a, b string) (Judgment, error) {
	return f(ctx, a, b)
}
