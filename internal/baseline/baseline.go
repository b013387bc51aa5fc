// Package baseline derives reusable population statistics from a reference
// cohort of prior good hires. A Snapshot is built once per cohort and shared
// read-only across any number of concurrent evaluations.
package baseline

import (
	"errors"
	"sort"

	"github.com/hirekit/hirekit/internal/profile"
)

// ErrEmptyCohort is returned when a snapshot is requested for a cohort
// without a single candidate record.
var ErrEmptyCohort = errors.New("reference cohort is empty")

// SkillCount is one entry of the cohort skill frequency table.
type SkillCount struct {
	Skill string
	Count int
}

// Snapshot holds the aggregate statistics of a good-hire cohort. All
// proportions are in [0,1] and every skill count is at most CohortSize. The
// snapshot is never mutated after Build returns.
type Snapshot struct {
	CohortSize          int
	MeanYearsExperience float64
	AdvancedDegreeShare float64
	EngineeringShare    float64
	TechBackgroundShare float64
	SkillFrequency      []SkillCount
	Progression         Progression
}

// Build computes a snapshot from the supplied cohort. The skill frequency
// table counts each skill once per candidate and is ordered by descending
// count with an alphabetical tie-break, so repeated builds over the same
// cohort yield identical snapshots.
func Build(cohort []*profile.Candidate) (*Snapshot, error) {
	if len(cohort) == 0 {
		return nil, ErrEmptyCohort
	}

	size := len(cohort)

	var (
		totalYears  float64
		advanced    int
		engineering int
		tech        int
	)

	counts := make(map[string]int)

	for _, candidate := range cohort {
		totalYears += candidate.YearsOfExperience
		if candidate.HasAdvancedDegree {
			advanced++
		}
		if candidate.HasEngineeringBackground {
			engineering++
		}
		if candidate.HasTechBackground {
			tech++
		}

		for _, skill := range profile.NormalizeSet(candidate.Skills) {
			counts[skill]++
		}
	}

	frequency := make([]SkillCount, 0, len(counts))
	for skill, count := range counts {
		frequency = append(frequency, SkillCount{Skill: skill, Count: count})
	}

	sort.Slice(frequency, func(i, j int) bool {
		if frequency[i].Count != frequency[j].Count {
			return frequency[i].Count > frequency[j].Count
		}
		return frequency[i].Skill < frequency[j].Skill
	})

	return &Snapshot{
		CohortSize:          size,
		MeanYearsExperience: totalYears / float64(size),
		AdvancedDegreeShare: float64(advanced) / float64(size),
		EngineeringShare:    float64(engineering) / float64(size),
		TechBackgroundShare: float64(tech) / float64(size),
		SkillFrequency:      frequency,
		Progression:         deriveProgression(cohort),
	}, nil
}

// TopSkills returns the n most common cohort skills, fewer when the table is
// shorter.
func (s *Snapshot) TopSkills(n int) []SkillCount {
	if n <= 0 || len(s.SkillFrequency) == 0 {
		return nil
	}
	if n > len(s.SkillFrequency) {
		n = len(s.SkillFrequency)
	}
	return s.SkillFrequency[:n]
}
