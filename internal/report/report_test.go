package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hirekit/hirekit/internal/scoring"
)

func testResults() *scoring.Results {
	return &scoring.Results{Items: []*scoring.Result{
		{
			CandidateName:   "Ana",
			CompositeScore:  91,
			JobFitScore:     95,
			PatternFitScore: 88.3,
			Tier:            scoring.TierExcellent,
			JobFitFactors:   []scoring.Factor{{Name: scoring.FactorQualifications, Value: 1, Weight: 0.25}},
			Strengths:       []string{"Meets every required qualification"},
		},
		{CandidateName: "Bea", CompositeScore: 62, Tier: scoring.TierGood, Degraded: true},
		{CandidateName: "Cid", CompositeScore: 40, Tier: scoring.TierWeak},
	}}
}

func TestSummarize(t *testing.T) {
	t.Parallel()

	stats := Summarize(testResults())

	if stats.Count != 3 {
		t.Fatalf("expected count 3, got %d", stats.Count)
	}

	if stats.Highest != 91 || stats.Lowest != 40 {
		t.Fatalf("unexpected extremes: high=%d low=%d", stats.Highest, stats.Lowest)
	}

	if stats.Median != 62 {
		t.Fatalf("expected median 62, got %v", stats.Median)
	}

	if stats.DegradedCount != 1 {
		t.Fatalf("expected 1 degraded evaluation, got %d", stats.DegradedCount)
	}

	if stats.TierCounts[scoring.TierExcellent] != 1 || stats.TierCounts[scoring.TierWeak] != 1 {
		t.Fatalf("unexpected tier counts: %v", stats.TierCounts)
	}
}

func TestSummarizeEvenCountMedian(t *testing.T) {
	t.Parallel()

	results := &scoring.Results{Items: []*scoring.Result{
		{CompositeScore: 40, Tier: scoring.TierWeak},
		{CompositeScore: 60, Tier: scoring.TierGood},
	}}

	if got := Summarize(results).Median; got != 50 {
		t.Fatalf("expected median 50, got %v", got)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	t.Parallel()

	stats := Summarize(&scoring.Results{})
	if stats.Count != 0 || stats.Average != 0 {
		t.Fatalf("expected zero stats, got %+v", stats)
	}
}

func TestExportToExcelAppendsExtension(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "evaluations")

	if err := ExportToExcel(testResults(), "Senior Product Manager", path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := os.Stat(path + ".xlsx"); err != nil {
		t.Fatalf("expected workbook at %s.xlsx: %v", path, err)
	}
}

func TestExportToExcelKeepsRankingStable(t *testing.T) {
	t.Parallel()

	results := testResults()
	path := filepath.Join(t.TempDir(), "evaluations.xlsx")

	if err := ExportToExcel(results, "Senior Product Manager", path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The input collection keeps its original order.
	if results.Items[0].CandidateName != "Ana" || results.Items[2].CandidateName != "Cid" {
		t.Fatalf("export mutated the input collection: %+v", results.Items)
	}
}

func TestExportToExcelEmptyResults(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "empty.xlsx")

	if err := ExportToExcel(&scoring.Results{}, "Any Role", path); err != nil {
		t.Fatalf("export should handle empty results: %v", err)
	}

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected workbook at %s: %v", path, err)
	}
}
