package baseline

import (
	"errors"
	"testing"

	"github.com/hirekit/hirekit/internal/profile"
)

func testCohort() []*profile.Candidate {
	return []*profile.Candidate{
		{
			Name:                     "Ana",
			YearsOfExperience:        8,
			HasAdvancedDegree:        true,
			HasEngineeringBackground: true,
			HasTechBackground:        true,
			Skills:                   []string{"product strategy", "sql", "roadmapping"},
			PriorRoles: []profile.Role{
				{Title: "Senior Product Manager"},
				{Title: "Product Manager"},
			},
		},
		{
			Name:              "Bea",
			YearsOfExperience: 12,
			HasTechBackground: true,
			Skills:            []string{"product strategy", "stakeholder management"},
			PriorRoles: []profile.Role{
				{Title: "Head of Product"},
				{Title: "Senior Product Manager"},
				{Title: "Product Manager"},
			},
		},
		{
			Name:              "Cid",
			YearsOfExperience: 10,
			HasAdvancedDegree: true,
			Skills:            []string{"Product Strategy", "sql"},
		},
	}
}

func TestBuildRejectsEmptyCohort(t *testing.T) {
	t.Parallel()

	if _, err := Build(nil); !errors.Is(err, ErrEmptyCohort) {
		t.Fatalf("expected ErrEmptyCohort, got %v", err)
	}
}

func TestBuildStatistics(t *testing.T) {
	t.Parallel()

	snapshot, err := Build(testCohort())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if snapshot.CohortSize != 3 {
		t.Fatalf("expected cohort size 3, got %d", snapshot.CohortSize)
	}

	if snapshot.MeanYearsExperience != 10 {
		t.Fatalf("expected mean experience 10, got %v", snapshot.MeanYearsExperience)
	}

	if snapshot.AdvancedDegreeShare < 0.66 || snapshot.AdvancedDegreeShare > 0.67 {
		t.Fatalf("expected advanced degree share 2/3, got %v", snapshot.AdvancedDegreeShare)
	}

	if snapshot.TechBackgroundShare < 0.66 || snapshot.TechBackgroundShare > 0.67 {
		t.Fatalf("expected tech background share 2/3, got %v", snapshot.TechBackgroundShare)
	}
}

func TestBuildSkillFrequencyOrderAndBounds(t *testing.T) {
	t.Parallel()

	snapshot, err := Build(testCohort())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if snapshot.SkillFrequency[0].Skill != "product strategy" || snapshot.SkillFrequency[0].Count != 3 {
		t.Fatalf("expected product strategy on top, got %+v", snapshot.SkillFrequency[0])
	}

	for _, entry := range snapshot.SkillFrequency {
		if entry.Count > snapshot.CohortSize {
			t.Fatalf("skill %q counted %d times in a cohort of %d", entry.Skill, entry.Count, snapshot.CohortSize)
		}
	}

	// Ties are broken alphabetically so repeated builds are identical.
	second, err := Build(testCohort())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := range snapshot.SkillFrequency {
		if snapshot.SkillFrequency[i] != second.SkillFrequency[i] {
			t.Fatalf("frequency table not reproducible at %d: %+v vs %+v", i, snapshot.SkillFrequency[i], second.SkillFrequency[i])
		}
	}
}

func TestTopSkills(t *testing.T) {
	t.Parallel()

	snapshot, err := Build(testCohort())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	top := snapshot.TopSkills(2)
	if len(top) != 2 {
		t.Fatalf("expected 2 skills, got %d", len(top))
	}

	if got := snapshot.TopSkills(100); len(got) != len(snapshot.SkillFrequency) {
		t.Fatalf("expected full table, got %d entries", len(got))
	}

	if got := snapshot.TopSkills(0); got != nil {
		t.Fatalf("expected nil for zero request, got %v", got)
	}
}

func TestDeriveProgression(t *testing.T) {
	t.Parallel()

	snapshot, err := Build(testCohort())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	progression := snapshot.Progression
	if progression.SampleSize != 2 {
		t.Fatalf("expected 2 candidates with role history, got %d", progression.SampleSize)
	}

	if progression.MeanRoleCount != 2.5 {
		t.Fatalf("expected mean role count 2.5, got %v", progression.MeanRoleCount)
	}

	// Ana's latest role is senior (2), Bea's is lead (3).
	if progression.MeanSeniority != 2.5 {
		t.Fatalf("expected mean seniority 2.5, got %v", progression.MeanSeniority)
	}
}

func TestSeniorityLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		title  string
		expect int
	}{
		{"Principal Product Manager", SeniorityLead},
		{"Head of Product", SeniorityLead},
		{"Senior Product Manager", SenioritySenior},
		{"Product Manager", SeniorityMid},
		{"Associate Product Manager", SeniorityEntry},
		{"", SeniorityMid},
	}

	for _, tt := range tests {
		if got := SeniorityLevel(tt.title); got != tt.expect {
			t.Fatalf("SeniorityLevel(%q) = %d, expected %d", tt.title, got, tt.expect)
		}
	}
}
