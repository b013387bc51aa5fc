package scoring

import (
	"testing"

	"github.com/hirekit/hirekit/internal/baseline"
	"github.com/hirekit/hirekit/internal/profile"
)

func TestTierFor(t *testing.T) {
	t.Parallel()

	cases := []struct {
		score int
		want  Tier
	}{
		{100, TierExcellent},
		{85, TierExcellent},
		{84, TierStrong},
		{75, TierStrong},
		{74, TierGood},
		{60, TierGood},
		{59, TierModerate},
		{45, TierModerate},
		{44, TierWeak},
		{0, TierWeak},
	}

	for _, tc := range cases {
		if got := TierFor(tc.score); got != tc.want {
			t.Fatalf("TierFor(%d) = %s, want %s", tc.score, got, tc.want)
		}
	}
}

func TestComputeQualificationsMatch(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		candidate *profile.Candidate
		required  []string
		want      float64
	}{
		{
			name:      "empty requirement set is vacuously satisfied",
			candidate: &profile.Candidate{},
			required:  nil,
			want:      1.0,
		},
		{
			name:      "single advanced degree predicate satisfied",
			candidate: &profile.Candidate{HasAdvancedDegree: true},
			required:  []string{"MBA preferred"},
			want:      1.0,
		},
		{
			name:      "half of two predicates satisfied",
			candidate: &profile.Candidate{HasAdvancedDegree: true},
			required:  []string{"mba", "engineering degree"},
			want:      0.5,
		},
		{
			name:      "unrecognized phrases demand both predicates",
			candidate: &profile.Candidate{HasAdvancedDegree: true, HasEngineeringBackground: true},
			required:  []string{"10 years of leadership"},
			want:      1.0,
		},
		{
			name:      "unrecognized phrases unmet",
			candidate: &profile.Candidate{},
			required:  []string{"10 years of leadership"},
			want:      0.0,
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if got := computeQualificationsMatch(tc.candidate, tc.required); got != tc.want {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestComputeExperienceFit(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		years float64
		min   float64
		want  float64
	}{
		{"no minimum is vacuously met", 0, 0, 1.0},
		{"exceeding minimum is full credit, never more", 12, 5, 1.0},
		{"meeting minimum exactly", 5, 5, 1.0},
		{"half the minimum", 2.5, 5, 0.5},
		{"no experience", 0, 5, 0.0},
	}

	for _, tc := range cases {
		if got := computeExperienceFit(tc.years, tc.min); got != tc.want {
			t.Fatalf("%s: got %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestComputeExperienceFitMonotonicInShortfall(t *testing.T) {
	t.Parallel()

	prev := 1.0
	for years := 8.0; years >= 0; years -= 0.5 {
		got := computeExperienceFit(years, 8)
		if got > prev {
			t.Fatalf("fit increased as shortfall grew: %v -> %v at %v years", prev, got, years)
		}
		prev = got
	}
}

func TestComputeExperienceSimilarity(t *testing.T) {
	t.Parallel()

	if got := computeExperienceSimilarity(10, 10); got != 1.0 {
		t.Fatalf("expected perfect similarity at the mean, got %v", got)
	}

	if got := computeExperienceSimilarity(5, 10); got != 0.5 {
		t.Fatalf("expected 0.5 at five years deviation, got %v", got)
	}

	if got := computeExperienceSimilarity(25, 10); got != 0.0 {
		t.Fatalf("expected similarity floor at large deviation, got %v", got)
	}

	// Overshoot and undershoot are penalized alike.
	over := computeExperienceSimilarity(13, 10)
	under := computeExperienceSimilarity(7, 10)
	if over != under {
		t.Fatalf("expected symmetric penalty, got over=%v under=%v", over, under)
	}
}

func TestComputeSkillsOverlap(t *testing.T) {
	t.Parallel()

	top := []baseline.SkillCount{
		{Skill: "sql", Count: 3},
		{Skill: "python", Count: 2},
	}

	if got := computeSkillsOverlap([]string{"SQL"}, top); got != 0.6 {
		t.Fatalf("expected frequency-weighted coverage 0.6, got %v", got)
	}

	if got := computeSkillsOverlap(nil, top); got != 0.0 {
		t.Fatalf("expected zero overlap for empty skills, got %v", got)
	}

	if got := computeSkillsOverlap([]string{"sql"}, nil); got != 1.0 {
		t.Fatalf("expected vacuous coverage for empty cohort table, got %v", got)
	}
}

func TestComputeEducationPattern(t *testing.T) {
	t.Parallel()

	majorityBoth := &baseline.Snapshot{AdvancedDegreeShare: 0.6, EngineeringShare: 0.7}

	both := &profile.Candidate{HasAdvancedDegree: true, HasEngineeringBackground: true}
	if got := computeEducationPattern(both, majorityBoth); got != 1.0 {
		t.Fatalf("expected full agreement, got %v", got)
	}

	neither := &profile.Candidate{}
	if got := computeEducationPattern(neither, majorityBoth); got != 0.0 {
		t.Fatalf("expected no agreement, got %v", got)
	}

	// When the cohort majority lacks the degrees, lacking them agrees.
	minorityBoth := &baseline.Snapshot{AdvancedDegreeShare: 0.3, EngineeringShare: 0.2}
	if got := computeEducationPattern(neither, minorityBoth); got != 1.0 {
		t.Fatalf("expected agreement with minority pattern, got %v", got)
	}
}

func TestComputeTechBackground(t *testing.T) {
	t.Parallel()

	snapshot := &baseline.Snapshot{TechBackgroundShare: 0.8}

	if got := computeTechBackground(&profile.Candidate{HasTechBackground: true}, snapshot); got != 1.0 {
		t.Fatalf("expected full credit for matching majority, got %v", got)
	}

	if got := computeTechBackground(&profile.Candidate{}, snapshot); got != 0.0 {
		t.Fatalf("expected zero for diverging from majority, got %v", got)
	}
}

func TestComputeCareerProgression(t *testing.T) {
	t.Parallel()

	pattern := baseline.Progression{MeanRoleCount: 3, MeanSeniority: 2, SampleSize: 10}

	matching := &profile.Candidate{PriorRoles: []profile.Role{
		{Title: "Senior Product Manager"},
		{Title: "Product Manager"},
		{Title: "Associate Product Manager"},
	}}
	if got := computeCareerProgression(matching, pattern); got != 1.0 {
		t.Fatalf("expected perfect trajectory match, got %v", got)
	}

	if got := computeCareerProgression(&profile.Candidate{}, pattern); got != 0.0 {
		t.Fatalf("expected zero for missing role history, got %v", got)
	}

	if got := computeCareerProgression(&profile.Candidate{}, baseline.Progression{}); got != 1.0 {
		t.Fatalf("expected vacuous match against empty pattern, got %v", got)
	}

	// Fewer and more junior roles score lower than the matching trajectory.
	junior := &profile.Candidate{PriorRoles: []profile.Role{{Title: "Junior Analyst"}}}
	got := computeCareerProgression(junior, pattern)
	if got <= 0 || got >= 1 {
		t.Fatalf("expected partial trajectory similarity, got %v", got)
	}
}
