package scoring

import (
	"math"
	"strings"

	"github.com/hirekit/hirekit/internal/baseline"
	"github.com/hirekit/hirekit/internal/profile"
)

// Sub-factor names. These appear verbatim in result breakdowns and reports.
const (
	FactorQualifications   = "qualifications_match"
	FactorExperienceFit    = "experience_fit"
	FactorMustHaveSkills   = "must_have_skills_match"
	FactorNiceToHaveSkills = "nice_to_have_skills_match"
	FactorDomain           = "domain_match"

	FactorExperienceSimilarity = "experience_similarity"
	FactorSkillsOverlap        = "skills_overlap"
	FactorEducationPattern     = "education_pattern_match"
	FactorTechBackground       = "tech_background_match"
	FactorCareerProgression    = "career_progression_similarity"
)

// experienceDecaySpan is the deviation from the cohort mean, in years, at
// which experience similarity bottoms out at zero.
const experienceDecaySpan = 10.0

// computeQualificationsMatch scores the fraction of required qualification
// predicates the candidate satisfies. Qualification phrases are reduced to
// two degree predicates; a requirement set naming neither predicate demands
// both. An empty requirement set is vacuously satisfied.
func computeQualificationsMatch(candidate *profile.Candidate, required []string) float64 {
	if len(required) == 0 {
		return 1.0
	}

	var wantAdvanced, wantEngineering bool
	for _, phrase := range required {
		normalized := profile.NormalizePhrase(phrase)
		for _, marker := range []string{"mba", "master", "phd", "advanced"} {
			if strings.Contains(normalized, marker) {
				wantAdvanced = true
			}
		}
		for _, marker := range []string{"engineering", "computer science", "technical degree"} {
			if strings.Contains(normalized, marker) {
				wantEngineering = true
			}
		}
	}

	if !wantAdvanced && !wantEngineering {
		wantAdvanced, wantEngineering = true, true
	}

	var predicates, satisfied int
	if wantAdvanced {
		predicates++
		if candidate.HasAdvancedDegree {
			satisfied++
		}
	}
	if wantEngineering {
		predicates++
		if candidate.HasEngineeringBackground {
			satisfied++
		}
	}

	return float64(satisfied) / float64(predicates)
}

// computeExperienceFit scores candidate years against the required minimum.
// Meeting or exceeding the minimum is full credit; a shortfall decays
// linearly toward zero. Overshoot is never rewarded beyond 1.0.
func computeExperienceFit(years, minYears float64) float64 {
	if minYears <= 0 {
		return 1.0
	}
	if years >= minYears {
		return 1.0
	}
	return clamp01(years / minYears)
}

// computeExperienceSimilarity scores closeness to the cohort mean. Over- and
// undershoot are penalized alike, reaching zero once the deviation spans
// experienceDecaySpan years.
func computeExperienceSimilarity(years, meanYears float64) float64 {
	return clamp01(1 - math.Abs(years-meanYears)/experienceDecaySpan)
}

// skillsOverlapTopN bounds the cohort skill table considered by the overlap
// calculator to the most common skills.
const skillsOverlapTopN = 10

// computeSkillsOverlap scores frequency-weighted coverage of the cohort's
// top skills: each top skill the candidate holds contributes its cohort
// count, divided by the total count of all top skills considered. A cohort
// with no recorded skills is vacuously covered.
func computeSkillsOverlap(skills []string, top []baseline.SkillCount) float64 {
	if len(top) == 0 {
		return 1.0
	}

	held := make(map[string]struct{}, len(skills))
	for _, skill := range profile.NormalizeSet(skills) {
		held[skill] = struct{}{}
	}

	var matched, total int
	for _, entry := range top {
		total += entry.Count
		if _, ok := held[entry.Skill]; ok {
			matched += entry.Count
		}
	}

	if total == 0 {
		return 1.0
	}
	return float64(matched) / float64(total)
}

// computeEducationPattern scores agreement between the candidate's degree
// flags and the cohort majority, one point per agreeing flag, averaged.
func computeEducationPattern(candidate *profile.Candidate, snapshot *baseline.Snapshot) float64 {
	var agreeing int
	if candidate.HasAdvancedDegree == (snapshot.AdvancedDegreeShare >= 0.5) {
		agreeing++
	}
	if candidate.HasEngineeringBackground == (snapshot.EngineeringShare >= 0.5) {
		agreeing++
	}
	return float64(agreeing) / 2
}

// computeTechBackground is all-or-nothing: full credit when the candidate's
// flag matches the cohort majority, zero otherwise.
func computeTechBackground(candidate *profile.Candidate, snapshot *baseline.Snapshot) float64 {
	if candidate.HasTechBackground == (snapshot.TechBackgroundShare >= 0.5) {
		return 1.0
	}
	return 0.0
}

// computeCareerProgression scores how closely the candidate's trajectory
// resembles the cohort pattern: role-count closeness and latest-role
// seniority closeness, averaged. A cohort without role history is vacuously
// matched; a candidate without role history against a real pattern scores
// zero.
func computeCareerProgression(candidate *profile.Candidate, pattern baseline.Progression) float64 {
	if pattern.SampleSize == 0 {
		return 1.0
	}
	if len(candidate.PriorRoles) == 0 {
		return 0.0
	}

	roles := float64(len(candidate.PriorRoles))
	roleCloseness := 1 - math.Abs(roles-pattern.MeanRoleCount)/math.Max(roles, pattern.MeanRoleCount)

	seniority := float64(baseline.SeniorityLevel(candidate.CurrentRole()))
	seniorityCloseness := 1 - math.Abs(seniority-pattern.MeanSeniority)/float64(baseline.MaxSeniority)

	return clamp01((roleCloseness + seniorityCloseness) / 2)
}
