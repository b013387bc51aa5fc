// Package profile defines the candidate and job requirement records shared by
// the extraction, baseline and scoring layers. Records are produced once by
// the extraction collaborator and treated as immutable afterwards.
package profile

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
)

// Role describes one prior position held by a candidate.
type Role struct {
	Title    string `json:"title,omitempty" mapstructure:"title"`
	Company  string `json:"company,omitempty" mapstructure:"company"`
	Duration string `json:"duration,omitempty" mapstructure:"duration"`
}

// Candidate is a structured candidate record. PriorRoles are ordered most
// recent first.
type Candidate struct {
	Name                     string   `json:"name,omitempty" mapstructure:"name"`
	YearsOfExperience        float64  `json:"years_of_experience" mapstructure:"years_of_experience"`
	HasAdvancedDegree        bool     `json:"has_advanced_degree" mapstructure:"has_advanced_degree"`
	HasEngineeringBackground bool     `json:"has_engineering_background" mapstructure:"has_engineering_background"`
	HasTechBackground        bool     `json:"has_tech_background" mapstructure:"has_tech_background"`
	Skills                   []string `json:"skills,omitempty" mapstructure:"skills"`
	DomainExpertise          []string `json:"domain_expertise,omitempty" mapstructure:"domain_expertise"`
	PriorRoles               []Role   `json:"prior_roles,omitempty" mapstructure:"prior_roles"`
	Achievements             []string `json:"achievements,omitempty" mapstructure:"achievements"`
}

// Normalize enforces the record invariants in place: years of experience is
// never negative and the phrase sets contain no duplicate normalized entries.
func (c *Candidate) Normalize() {
	if c.YearsOfExperience < 0 {
		c.YearsOfExperience = 0
	}
	c.Skills = NormalizeSet(c.Skills)
	c.DomainExpertise = NormalizeSet(c.DomainExpertise)
}

// CurrentRole returns the most recent role title, or an empty string when the
// candidate has no recorded roles.
func (c *Candidate) CurrentRole() string {
	if len(c.PriorRoles) == 0 {
		return ""
	}
	return c.PriorRoles[0].Title
}

// LoadCandidate reads a single structured candidate record from a JSON file.
func LoadCandidate(path string) (*Candidate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading candidate file: %w", err)
	}

	var candidate Candidate
	if err := json.Unmarshal(data, &candidate); err != nil {
		return nil, fmt.Errorf("parsing candidate file %q: %w", path, err)
	}

	candidate.Normalize()
	return &candidate, nil
}

// LoadCohort reads a cohort of candidate records from a JSON file. Both an
// array of records and an object keyed by profile id are accepted; the object
// form is ordered by key so repeated loads produce the same cohort order.
func LoadCohort(path string) ([]*Candidate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading cohort file: %w", err)
	}

	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, "[") {
		var cohort []*Candidate
		if err := json.Unmarshal(data, &cohort); err != nil {
			return nil, fmt.Errorf("parsing cohort file %q: %w", path, err)
		}
		return normalizeCohort(cohort), nil
	}

	var keyed map[string]*Candidate
	if err := json.Unmarshal(data, &keyed); err != nil {
		return nil, fmt.Errorf("parsing cohort file %q: %w", path, err)
	}

	keys := make([]string, 0, len(keyed))
	for key := range keyed {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	cohort := make([]*Candidate, 0, len(keyed))
	for _, key := range keys {
		cohort = append(cohort, keyed[key])
	}

	return normalizeCohort(cohort), nil
}

func normalizeCohort(cohort []*Candidate) []*Candidate {
	result := make([]*Candidate, 0, len(cohort))
	for _, candidate := range cohort {
		if candidate == nil {
			continue
		}
		candidate.Normalize()
		result = append(result, candidate)
	}
	return result
}
