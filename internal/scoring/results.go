package scoring

import (
	"encoding/json"
	"os"
	"sort"
)

// Results is an ordered collection of evaluation results.
type Results struct {
	Items []*Result `json:"items"`
}

func (r *Results) Len() int {
	return len(r.Items)
}

func (r *Results) FindByName(name string) *Result {
	for _, result := range r.Items {
		if result.CandidateName == name {
			return result
		}
	}
	return nil
}

// SortByComposite orders the collection best-first. Ties break on candidate
// name so repeated runs produce the same ranking.
func (r *Results) SortByComposite() {
	sort.SliceStable(r.Items, func(i, j int) bool {
		if r.Items[i].CompositeScore != r.Items[j].CompositeScore {
			return r.Items[i].CompositeScore > r.Items[j].CompositeScore
		}
		return r.Items[i].CandidateName < r.Items[j].CandidateName
	})
}

// TierCounts tallies how many results landed in each tier.
func (r *Results) TierCounts() map[Tier]int {
	counts := make(map[Tier]int)
	for _, result := range r.Items {
		counts[result.Tier]++
	}
	return counts
}

// DumpToTmpFile writes the collection to a temporary JSON file and returns
// its path.
func (r *Results) DumpToTmpFile() (string, error) {
	file, err := os.CreateTemp("", "evaluations_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return "", err
	}
	return file.Name(), nil
}
