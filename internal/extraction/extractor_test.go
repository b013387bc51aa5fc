package extraction

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"
)

type stubGenerator struct {
	responses  []string
	errs       []error
	calls      int
	lastPrompt string
}

func (s *stubGenerator) GenerateContent(_ context.Context, prompt string) (string, error) {
	s.lastPrompt = prompt
	call := s.calls
	s.calls++

	if call < len(s.errs) && s.errs[call] != nil {
		return "", s.errs[call]
	}
	if call < len(s.responses) {
		return s.responses[call], nil
	}
	return s.responses[len(s.responses)-1], nil
}

func newTestExtractor(stub *stubGenerator) *Extractor {
	extractor := NewExtractor(stub, zap.NewNop())
	extractor.retryDelay = 0
	return extractor
}

func TestCandidateProfile(t *testing.T) {
	stub := &stubGenerator{responses: []string{"```json\n" + `{
		"name": "Dana",
		"years_of_experience": "12",
		"has_advanced_degree": true,
		"has_engineering_background": "yes",
		"has_tech_background": true,
		"skills": ["Product Strategy", "SQL", "product strategy"],
		"domain_expertise": ["fintech"],
		"prior_roles": [{"title": "Senior PM", "company": "Acme", "duration": "3 years"}],
		"achievements": ["Launched payments platform"]
	}` + "\n```"}}

	extractor := newTestExtractor(stub)

	candidate, err := extractor.CandidateProfile(context.Background(), "Dana... 12 years building products")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if candidate.Name != "Dana" {
		t.Fatalf("unexpected name: %s", candidate.Name)
	}

	// Weak typing: "12" and "yes" coerced to their schema types.
	if candidate.YearsOfExperience != 12 {
		t.Fatalf("expected years 12, got %v", candidate.YearsOfExperience)
	}
	if !candidate.HasEngineeringBackground {
		t.Fatalf("expected engineering background to be coerced to true")
	}

	// Normalization dedupes the repeated skill.
	if len(candidate.Skills) != 2 {
		t.Fatalf("expected 2 normalized skills, got %v", candidate.Skills)
	}

	if candidate.CurrentRole() != "Senior PM" {
		t.Fatalf("unexpected current role: %s", candidate.CurrentRole())
	}

	if !strings.Contains(stub.lastPrompt, "Dana... 12 years building products") {
		t.Fatalf("expected resume text in prompt")
	}
}

func TestCandidateProfileRejectsEmptyText(t *testing.T) {
	extractor := newTestExtractor(&stubGenerator{responses: []string{"{}"}})

	if _, err := extractor.CandidateProfile(context.Background(), "   "); err == nil {
		t.Fatalf("expected error for empty resume text")
	}
}

func TestJobRequirements(t *testing.T) {
	stub := &stubGenerator{responses: []string{`{
		"required_qualifications": ["MBA", "Engineering degree"],
		"required_experience": {"years": 8, "domains": ["saas"]},
		"key_responsibilities": ["Own the roadmap"],
		"must_have_skills": ["product strategy", "sql"],
		"nice_to_have_skills": ["roadmapping"],
		"key_competencies": ["stakeholder management"]
	}`}}

	extractor := newTestExtractor(stub)

	requirements, err := extractor.JobRequirements(context.Background(), "We are hiring a PM...")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if requirements.RequiredExperience.MinYears != 8 {
		t.Fatalf("expected 8 year minimum, got %v", requirements.RequiredExperience.MinYears)
	}

	if len(requirements.MustHaveSkills) != 2 {
		t.Fatalf("unexpected must-have skills: %v", requirements.MustHaveSkills)
	}
}

func TestExtractorRetriesProviderFailures(t *testing.T) {
	stub := &stubGenerator{
		errs:      []error{errors.New("rate limited"), errors.New("rate limited")},
		responses: []string{"", "", `{"name": "Dana"}`},
	}

	extractor := newTestExtractor(stub)

	candidate, err := extractor.CandidateProfile(context.Background(), "resume text")
	if err != nil {
		t.Fatalf("expected retries to recover, got %v", err)
	}

	if stub.calls != 3 {
		t.Fatalf("expected 3 attempts, got %d", stub.calls)
	}

	if candidate.Name != "Dana" {
		t.Fatalf("unexpected candidate: %+v", candidate)
	}
}

func TestExtractorGivesUpAfterMaxRetries(t *testing.T) {
	failure := errors.New("provider down")
	stub := &stubGenerator{
		errs:      []error{failure, failure, failure},
		responses: []string{"", "", ""},
	}

	extractor := newTestExtractor(stub)

	if _, err := extractor.CandidateProfile(context.Background(), "resume text"); err == nil {
		t.Fatalf("expected error after exhausting retries")
	}

	if stub.calls != 3 {
		t.Fatalf("expected exactly 3 attempts, got %d", stub.calls)
	}
}

func TestDecodeRecordRejectsProse(t *testing.T) {
	if err := decodeRecord("I could not parse this resume", &struct{}{}); err == nil {
		t.Fatalf("expected error for non-JSON response")
	}
}
