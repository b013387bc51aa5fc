package baseline

import (
	"strings"

	"github.com/hirekit/hirekit/internal/profile"
)

// Seniority levels form a fixed ladder used to compare career trajectories.
const (
	SeniorityEntry = iota
	SeniorityMid
	SenioritySenior
	SeniorityLead
)

// MaxSeniority is the highest rung of the seniority ladder.
const MaxSeniority = SeniorityLead

// Progression describes the typical career trajectory of the cohort: how many
// roles a good hire has held and how senior their latest role is. A zero
// Progression means the cohort carried no role history at all.
type Progression struct {
	MeanRoleCount float64
	MeanSeniority float64
	SampleSize    int
}

// SeniorityLevel maps a role title onto the seniority ladder. Unrecognized
// titles land on the mid rung.
func SeniorityLevel(title string) int {
	normalized := strings.ToLower(title)

	for _, marker := range []string{"principal", "head", "director", "vp", "chief", "lead"} {
		if strings.Contains(normalized, marker) {
			return SeniorityLead
		}
	}
	for _, marker := range []string{"senior", "staff", "sr."} {
		if strings.Contains(normalized, marker) {
			return SenioritySenior
		}
	}
	for _, marker := range []string{"junior", "intern", "associate", "trainee", "jr."} {
		if strings.Contains(normalized, marker) {
			return SeniorityEntry
		}
	}

	return SeniorityMid
}

func deriveProgression(cohort []*profile.Candidate) Progression {
	var (
		roleCount int
		seniority int
		sampled   int
	)

	for _, candidate := range cohort {
		if len(candidate.PriorRoles) == 0 {
			continue
		}
		roleCount += len(candidate.PriorRoles)
		seniority += SeniorityLevel(candidate.CurrentRole())
		sampled++
	}

	if sampled == 0 {
		return Progression{}
	}

	return Progression{
		MeanRoleCount: float64(roleCount) / float64(sampled),
		MeanSeniority: float64(seniority) / float64(sampled),
		SampleSize:    sampled,
	}
}
