package scoring

import (
	"context"
	"errors"
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/hirekit/hirekit/internal/baseline"
	"github.com/hirekit/hirekit/internal/logger"
	"github.com/hirekit/hirekit/internal/profile"
	"github.com/hirekit/hirekit/internal/similarity"
)

// ErrPrecondition marks run-level failures: the job requirements record or
// the baseline snapshot is missing. Per-candidate data issues never produce
// this error; they degrade individual factors instead.
var ErrPrecondition = errors.New("evaluation precondition not met")

// Job-fit factor weights.
const (
	weightQualifications   = 0.25
	weightExperienceFit    = 0.20
	weightMustHaveSkills   = 0.30
	weightNiceToHaveSkills = 0.15
	weightDomain           = 0.10
)

// Pattern-fit factor weights.
const (
	weightExperienceSimilarity = 0.25
	weightSkillsOverlap        = 0.30
	weightEducationPattern     = 0.20
	weightTechBackground       = 0.15
	weightCareerProgression    = 0.10
)

// Composite blend.
const (
	weightJobFit     = 0.40
	weightPatternFit = 0.60
)

// Engine evaluates candidates. It is stateless per call: the only shared
// state is the resolver's judgment cache, which is safe for concurrent use,
// so one engine may evaluate many candidates in parallel.
type Engine struct {
	resolver *similarity.Resolver
	logger   *zap.Logger
}

// NewEngine creates an engine around the provided resolver. A nil resolver
// yields strict exact-only skill matching.
func NewEngine(resolver *similarity.Resolver, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	if resolver == nil {
		resolver = similarity.NewResolver(nil, 0, log)
	}

	return &Engine{
		resolver: resolver,
		logger:   log,
	}
}

// Evaluate scores one candidate against the job requirements and the
// baseline snapshot. It returns either a complete result or a single error
// wrapping ErrPrecondition; there is no partial result.
func (e *Engine) Evaluate(ctx context.Context, candidate *profile.Candidate, job *profile.JobRequirements, snapshot *baseline.Snapshot) (*Result, error) {
	if candidate == nil {
		return nil, fmt.Errorf("%w: candidate record is required", ErrPrecondition)
	}
	if job == nil {
		return nil, fmt.Errorf("%w: job requirements record is required", ErrPrecondition)
	}
	if snapshot == nil || snapshot.CohortSize < 1 {
		return nil, fmt.Errorf("%w: baseline snapshot is required", ErrPrecondition)
	}

	mustHave := e.resolver.Match(ctx, candidate.Skills, job.MustHaveSkills)
	niceToHave := e.resolver.Match(ctx, candidate.Skills, job.NiceToHaveSkills)
	domain := e.resolver.Match(ctx, candidate.DomainExpertise, domainRequirements(job))

	jobFactors := []Factor{
		{Name: FactorQualifications, Value: computeQualificationsMatch(candidate, job.RequiredQualifications), Weight: weightQualifications},
		{Name: FactorExperienceFit, Value: computeExperienceFit(candidate.YearsOfExperience, job.RequiredExperience.MinYears), Weight: weightExperienceFit},
		{Name: FactorMustHaveSkills, Value: mustHave.Coverage, Weight: weightMustHaveSkills},
		{Name: FactorNiceToHaveSkills, Value: niceToHave.Coverage, Weight: weightNiceToHaveSkills},
		{Name: FactorDomain, Value: domain.Coverage, Weight: weightDomain},
	}

	patternFactors := []Factor{
		{Name: FactorExperienceSimilarity, Value: computeExperienceSimilarity(candidate.YearsOfExperience, snapshot.MeanYearsExperience), Weight: weightExperienceSimilarity},
		{Name: FactorSkillsOverlap, Value: computeSkillsOverlap(candidate.Skills, snapshot.TopSkills(skillsOverlapTopN)), Weight: weightSkillsOverlap},
		{Name: FactorEducationPattern, Value: computeEducationPattern(candidate, snapshot), Weight: weightEducationPattern},
		{Name: FactorTechBackground, Value: computeTechBackground(candidate, snapshot), Weight: weightTechBackground},
		{Name: FactorCareerProgression, Value: computeCareerProgression(candidate, snapshot.Progression), Weight: weightCareerProgression},
	}

	jobFit := weightedTotal(jobFactors)
	patternFit := weightedTotal(patternFactors)

	composite := int(math.Round(weightJobFit*jobFit + weightPatternFit*patternFit))
	if composite < 0 {
		composite = 0
	}
	if composite > 100 {
		composite = 100
	}

	tier := TierFor(composite)
	strengths, weaknesses := buildNotes(candidate, job, snapshot, jobFactors, patternFactors)

	result := &Result{
		CandidateName:     candidate.Name,
		JobFitScore:       jobFit,
		PatternFitScore:   patternFit,
		CompositeScore:    composite,
		Tier:              tier,
		Comparison:        comparisonFor(tier),
		JobFitFactors:     jobFactors,
		PatternFitFactors: patternFactors,
		Strengths:         strengths,
		Weaknesses:        weaknesses,
		Degraded:          mustHave.Degraded || niceToHave.Degraded || domain.Degraded,
	}

	e.logger.Debug("candidate evaluated",
		zap.String(logger.FieldCandidate, candidate.Name),
		zap.Float64("job_fit", jobFit),
		zap.Float64("pattern_fit", patternFit),
		zap.Int("composite", composite),
		zap.String("tier", string(tier)),
		zap.Bool("degraded", result.Degraded),
	)

	return result, nil
}

// domainRequirements picks the requirement set for the domain factor: the
// job's key competencies, falling back to the experience domains when no
// competencies were extracted.
func domainRequirements(job *profile.JobRequirements) []string {
	if len(job.KeyCompetencies) > 0 {
		return job.KeyCompetencies
	}
	return job.RequiredExperience.Domains
}
