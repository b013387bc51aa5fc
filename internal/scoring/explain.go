package scoring

import (
	"fmt"

	"github.com/hirekit/hirekit/internal/baseline"
	"github.com/hirekit/hirekit/internal/profile"
)

// Factors at or above strengthThreshold become strengths, at or below
// weaknessThreshold become weaknesses; anything in between stays silent.
const (
	strengthThreshold = 0.75
	weaknessThreshold = 0.40
)

// buildNotes derives the human-readable strengths and weaknesses from the
// factor breakdown. Vacuously satisfied factors are skipped: an empty
// requirement set says nothing about the candidate.
func buildNotes(candidate *profile.Candidate, job *profile.JobRequirements, snapshot *baseline.Snapshot, jobFactors, patternFactors []Factor) (strengths, weaknesses []string) {
	classify := func(factors []Factor) {
		for _, factor := range factors {
			if vacuousFactor(factor.Name, job, snapshot) {
				continue
			}

			note := describeFactor(factor, candidate, job, snapshot)
			if note == "" {
				continue
			}

			switch {
			case factor.Value >= strengthThreshold:
				strengths = append(strengths, note)
			case factor.Value <= weaknessThreshold:
				weaknesses = append(weaknesses, note)
			}
		}
	}

	classify(jobFactors)
	classify(patternFactors)
	return strengths, weaknesses
}

// vacuousFactor reports whether the factor's requirement side is empty, in
// which case its full credit carries no signal.
func vacuousFactor(name string, job *profile.JobRequirements, snapshot *baseline.Snapshot) bool {
	switch name {
	case FactorQualifications:
		return len(job.RequiredQualifications) == 0
	case FactorExperienceFit:
		return job.RequiredExperience.MinYears <= 0
	case FactorMustHaveSkills:
		return len(job.MustHaveSkills) == 0
	case FactorNiceToHaveSkills:
		return len(job.NiceToHaveSkills) == 0
	case FactorDomain:
		return len(job.KeyCompetencies) == 0 && len(job.RequiredExperience.Domains) == 0
	case FactorSkillsOverlap:
		return len(snapshot.SkillFrequency) == 0
	case FactorCareerProgression:
		return snapshot.Progression.SampleSize == 0
	default:
		return false
	}
}

func describeFactor(factor Factor, candidate *profile.Candidate, job *profile.JobRequirements, snapshot *baseline.Snapshot) string {
	switch factor.Name {
	case FactorQualifications:
		if factor.Value >= 1 {
			return "Meets every required qualification"
		}
		if factor.Value > 0 {
			return "Meets part of the required qualifications"
		}
		return "Missing the required qualifications"

	case FactorExperienceFit:
		if factor.Value >= 1 {
			return fmt.Sprintf("%.0f years of experience meets the %.0f year requirement",
				candidate.YearsOfExperience, job.RequiredExperience.MinYears)
		}
		return fmt.Sprintf("%.0f years of experience falls short of the %.0f year requirement",
			candidate.YearsOfExperience, job.RequiredExperience.MinYears)

	case FactorMustHaveSkills:
		return fmt.Sprintf("Covers %.0f%% of the must-have skills", factor.Value*100)

	case FactorNiceToHaveSkills:
		return fmt.Sprintf("Covers %.0f%% of the nice-to-have skills", factor.Value*100)

	case FactorDomain:
		return fmt.Sprintf("Covers %.0f%% of the required domain expertise", factor.Value*100)

	case FactorExperienceSimilarity:
		return fmt.Sprintf("%.0f years of experience versus the good-hire average of %.1f years",
			candidate.YearsOfExperience, snapshot.MeanYearsExperience)

	case FactorSkillsOverlap:
		return fmt.Sprintf("Shares %.0f%% of the most common good-hire skills", factor.Value*100)

	case FactorEducationPattern:
		if factor.Value >= 1 {
			return "Education profile matches the good-hire pattern"
		}
		return "Education profile differs from the good-hire pattern"

	case FactorTechBackground:
		if candidate.HasTechBackground {
			return fmt.Sprintf("Tech background, like %.0f%% of good hires", snapshot.TechBackgroundShare*100)
		}
		return fmt.Sprintf("No tech background, unlike %.0f%% of good hires", snapshot.TechBackgroundShare*100)

	case FactorCareerProgression:
		if factor.Value >= strengthThreshold {
			return "Career trajectory resembles the good-hire pattern"
		}
		return "Career trajectory differs from the good-hire pattern"
	}

	return ""
}

// comparisonFor phrases how the candidate sits relative to the reference
// cohort, one sentence per tier.
func comparisonFor(tier Tier) string {
	switch tier {
	case TierExcellent:
		return "Well above the good-hire pattern"
	case TierStrong:
		return "Above average compared to good hires"
	case TierGood:
		return "Comparable to good hires"
	case TierModerate:
		return "Below average compared to good hires"
	default:
		return "Significantly below the good-hire pattern"
	}
}
