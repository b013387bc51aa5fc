package profile

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempJSON(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "cohort.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing temp file: %v", err)
	}
	return path
}

func TestLoadCohortFromKeyedObject(t *testing.T) {
	t.Parallel()

	path := writeTempJSON(t, `{
		"profile_2": {"name": "Bea", "years_of_experience": 8, "skills": ["SQL", "sql"]},
		"profile_1": {"name": "Ana", "years_of_experience": -1}
	}`)

	cohort, err := LoadCohort(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(cohort) != 2 {
		t.Fatalf("expected 2 candidates, got %d", len(cohort))
	}

	// Keyed form is ordered by profile id.
	if cohort[0].Name != "Ana" || cohort[1].Name != "Bea" {
		t.Fatalf("unexpected cohort order: %s, %s", cohort[0].Name, cohort[1].Name)
	}

	if cohort[0].YearsOfExperience != 0 {
		t.Fatalf("expected negative years clamped, got %v", cohort[0].YearsOfExperience)
	}

	if len(cohort[1].Skills) != 1 {
		t.Fatalf("expected deduplicated skills, got %v", cohort[1].Skills)
	}
}

func TestLoadCohortFromArray(t *testing.T) {
	t.Parallel()

	path := writeTempJSON(t, `[
		{"name": "Ana", "years_of_experience": 5},
		{"name": "Bea", "years_of_experience": 7}
	]`)

	cohort, err := LoadCohort(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(cohort) != 2 {
		t.Fatalf("expected 2 candidates, got %d", len(cohort))
	}

	if cohort[0].Name != "Ana" {
		t.Fatalf("expected array order preserved, got %s first", cohort[0].Name)
	}
}

func TestLoadCohortRejectsMalformedFile(t *testing.T) {
	t.Parallel()

	path := writeTempJSON(t, "not json")

	if _, err := LoadCohort(path); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestLoadCandidateNormalizes(t *testing.T) {
	t.Parallel()

	path := writeTempJSON(t, `{
		"name": "Ana",
		"years_of_experience": 6,
		"skills": ["SQL", "sql", "Roadmapping"]
	}`)

	candidate, err := LoadCandidate(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if candidate.Name != "Ana" {
		t.Fatalf("unexpected name %q", candidate.Name)
	}

	if len(candidate.Skills) != 2 {
		t.Fatalf("expected deduplicated skills, got %v", candidate.Skills)
	}
}

func TestLoadRequirementsNormalizes(t *testing.T) {
	t.Parallel()

	path := writeTempJSON(t, `{
		"required_experience": {"years": 5, "domains": ["B2B SaaS"]},
		"must_have_skills": ["Product Strategy", "product strategy", "SQL"]
	}`)

	requirements, err := LoadRequirements(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(requirements.MustHaveSkills) != 2 {
		t.Fatalf("expected deduplicated skills, got %v", requirements.MustHaveSkills)
	}

	if requirements.RequiredExperience.MinYears != 5 {
		t.Fatalf("expected 5 years, got %v", requirements.RequiredExperience.MinYears)
	}
}

func TestCurrentRole(t *testing.T) {
	t.Parallel()

	candidate := &Candidate{}
	if candidate.CurrentRole() != "" {
		t.Fatalf("expected empty role for candidate without history")
	}

	candidate.PriorRoles = []Role{
		{Title: "Senior Product Manager"},
		{Title: "Product Manager"},
	}

	if candidate.CurrentRole() != "Senior Product Manager" {
		t.Fatalf("expected most recent role first, got %q", candidate.CurrentRole())
	}
}
