package profile

import (
	"encoding/json"
	"fmt"
	"os"
)

// ExperienceRequirement is the experience portion of a job requirements
// record: a minimum number of years plus the domains the experience should
// come from.
type ExperienceRequirement struct {
	MinYears float64  `json:"years" mapstructure:"years"`
	Domains  []string `json:"domains,omitempty" mapstructure:"domains"`
}

// JobRequirements is a structured job description record. One instance is
// shared read-only across all candidate evaluations in a run.
//
// MustHaveSkills and NiceToHaveSkills are expected to be disjoint: a skill
// listed in both is counted by two calculators and inflates the job-fit
// score.
type JobRequirements struct {
	RequiredQualifications []string              `json:"required_qualifications,omitempty" mapstructure:"required_qualifications"`
	RequiredExperience     ExperienceRequirement `json:"required_experience" mapstructure:"required_experience"`
	KeyResponsibilities    []string              `json:"key_responsibilities,omitempty" mapstructure:"key_responsibilities"`
	MustHaveSkills         []string              `json:"must_have_skills,omitempty" mapstructure:"must_have_skills"`
	NiceToHaveSkills       []string              `json:"nice_to_have_skills,omitempty" mapstructure:"nice_to_have_skills"`
	KeyCompetencies        []string              `json:"key_competencies,omitempty" mapstructure:"key_competencies"`
}

// Normalize enforces the record invariants in place: no duplicate normalized
// entries inside any of the phrase sets and a non-negative experience
// minimum.
func (j *JobRequirements) Normalize() {
	if j.RequiredExperience.MinYears < 0 {
		j.RequiredExperience.MinYears = 0
	}
	j.RequiredQualifications = NormalizeSet(j.RequiredQualifications)
	j.RequiredExperience.Domains = NormalizeSet(j.RequiredExperience.Domains)
	j.MustHaveSkills = NormalizeSet(j.MustHaveSkills)
	j.NiceToHaveSkills = NormalizeSet(j.NiceToHaveSkills)
	j.KeyCompetencies = NormalizeSet(j.KeyCompetencies)
}

// LoadRequirements reads a job requirements record from a JSON file.
func LoadRequirements(path string) (*JobRequirements, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading requirements file: %w", err)
	}

	var requirements JobRequirements
	if err := json.Unmarshal(data, &requirements); err != nil {
		return nil, fmt.Errorf("parsing requirements file %q: %w", path, err)
	}

	requirements.Normalize()
	return &requirements, nil
}
