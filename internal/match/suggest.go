package match

import (
	"slices"
)

// MinSuggestionScore is the similarity under which a candidate is not worth
// suggesting.
const MinSuggestionScore = 0.6

// Candidate is a known name scored against a misspelled one.
type Candidate struct {
	Name  string
	Score float64
}

// RankCandidates scores every known name against name, best first. Ties keep
// the order of known.
func RankCandidates(name string, known []string) []Candidate {
	norm := NormalizeKey(name)

	ranked := make([]Candidate, 0, len(known))
	for _, k := range known {
		ranked = append(ranked, Candidate{Name: k, Score: LevenshteinNormalized(norm, NormalizeKey(k))})
	}

	slices.SortStableFunc(ranked, func(a, b Candidate) int {
		switch {
		case a.Score > b.Score:
			return -1
		case a.Score < b.Score:
			return 1
		default:
			return 0
		}
	})

	return ranked
}

// Suggest returns the known names close enough to name to be offered as a
// correction, best first. An exact match is never suggested.
func Suggest(name string, known []string) []string {
	var out []string

	for _, c := range RankCandidates(name, known) {
		if c.Score < MinSuggestionScore {
			break
		}

		if c.Name != name {
			out = append(out, c.Name)
		}
	}

	return out
}
