package similarity

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/hirekit/hirekit/internal/profile"
)

// DefaultMinConfidence is the confidence a judgment must reach before a
// semantic match is accepted.
const DefaultMinConfidence = 0.5

// MatchedPair records which candidate phrase satisfied which required phrase.
type MatchedPair struct {
	Candidate string
	Required  string
}

// Match is the outcome of resolving one requirement set against one candidate
// set. Coverage is MatchCount over the size of the requirement set, with an
// empty requirement set vacuously covered (1.0). Degraded reports that the
// judge was unavailable for at least one pair, so coverage may be lower than
// a fully semantic comparison would produce.
type Match struct {
	MatchCount int
	Pairs      []MatchedPair
	Coverage   float64
	Degraded   bool
}

type pairKey struct {
	a string
	b string
}

type pairEntry struct {
	mu       sync.Mutex
	done     bool
	judgment Judgment
	err      error
}

// Resolver partitions requirement sets into matched and unmatched phrases.
// Exact matches after normalization are always free; everything else is
// settled by the judge, with every (candidate, required) judgment cached for
// the lifetime of the resolver so repeated pairs across many candidates cost
// one external call. Safe for concurrent use.
type Resolver struct {
	judge         Judge
	minConfidence float64
	logger        *zap.Logger

	mu    sync.Mutex
	cache map[pairKey]*pairEntry
}

// NewResolver creates a resolver around the provided judge. A nil judge
// yields a strict exact-match-only resolver. Non-positive minConfidence falls
// back to DefaultMinConfidence.
func NewResolver(judge Judge, minConfidence float64, logger *zap.Logger) *Resolver {
	if minConfidence <= 0 {
		minConfidence = DefaultMinConfidence
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Resolver{
		judge:         judge,
		minConfidence: minConfidence,
		logger:        logger,
		cache:         make(map[pairKey]*pairEntry),
	}
}

// Match resolves the required set against the candidate set. Each required
// phrase is checked for a normalized exact match first; remaining phrases are
// judged pairwise, short-circuiting once a match is found. Judge failures
// never propagate: the affected pair degrades to exact-only and the result is
// flagged.
func (r *Resolver) Match(ctx context.Context, candidate, required []string) Match {
	candidate = profile.NormalizeSet(candidate)
	required = profile.NormalizeSet(required)

	if len(required) == 0 {
		return Match{Coverage: 1.0}
	}

	exact := make(map[string]struct{}, len(candidate))
	for _, phrase := range candidate {
		exact[phrase] = struct{}{}
	}

	result := Match{}

	for _, want := range required {
		if _, ok := exact[want]; ok {
			result.MatchCount++
			result.Pairs = append(result.Pairs, MatchedPair{Candidate: want, Required: want})
			continue
		}

		if r.judge == nil {
			continue
		}

		for _, have := range candidate {
			judgment, err := r.judgeCached(ctx, have, want)
			if err != nil {
				result.Degraded = true
				r.logger.Debug("semantic judgment unavailable, falling back to exact match",
					zap.String("candidate_phrase", have),
					zap.String("required_phrase", want),
					zap.Error(err),
				)
				continue
			}

			if judgment.Equivalent && judgment.Confidence >= r.minConfidence {
				result.MatchCount++
				result.Pairs = append(result.Pairs, MatchedPair{Candidate: have, Required: want})
				break
			}
		}
	}

	result.Coverage = float64(result.MatchCount) / float64(len(required))
	return result
}

// judgeCached returns the cached judgment for the pair, issuing at most one
// external call per key. Concurrent callers for the same key are serialized
// on the entry; callers for different keys proceed independently.
func (r *Resolver) judgeCached(ctx context.Context, a, b string) (Judgment, error) {
	key := pairKey{a: a, b: b}

	r.mu.Lock()
	entry, ok := r.cache[key]
	if !ok {
		entry = &pairEntry{}
		r.cache[key] = entry
	}
	r.mu.Unlock()

	entry.mu.Lock()
	defer entry.mu.Unlock()

	if entry.done {
		return entry.judgment, entry.err
	}

	entry.judgment, entry.err = r.judge.JudgeEquivalence(ctx, a, b)
	entry.done = true

	return entry.judgment, entry.err
}
