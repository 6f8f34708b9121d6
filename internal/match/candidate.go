package match

import (
	"sort"

	"armature-merge/internal/scene"
)

// Suggestion defaults.
const (
	// DefaultMinScore is the minimum similarity for a name to be suggested.
	DefaultMinScore = 0.6
	// DefaultMaxSuggestions caps how many names a diagnostic carries.
	DefaultMaxSuggestions = 3
	// DefaultAmbiguityMargin is the score gap below which the top two
	// candidates are considered equally likely.
	DefaultAmbiguityMargin = 0.05
)

// Candidate is a node of the main hierarchy scored against a bone name.
type Candidate struct {
	Node  *scene.Node
	Score float64
	// order is the pre-order position, used as the tie-breaker.
	order int
}

// CandidateList is a list of candidates, best first.
type CandidateList []Candidate

// RankCandidates scores every descendant of root (root excluded) against
// name. Candidates are sorted by score descending, then by pre-order.
func RankCandidates(name string, root *scene.Node) CandidateList {
	if root == nil {
		return nil
	}

	want := NormalizeBoneName(name)

	var candidates CandidateList

	root.Walk(func(n *scene.Node) bool {
		if n == root {
			return true
		}

		candidates = append(candidates, Candidate{
			Node:  n,
			Score: Similarity(want, NormalizeBoneName(n.Name)),
			order: len(candidates),
		})

		return true
	})

	sort.Sort(candidates)

	return candidates
}

// Names returns up to limit distinct node names scoring at least minScore.
func (c CandidateList) Names(limit int, minScore float64) []string {
	var out []string

	seen := make(map[string]struct{})

	for _, cand := range c.AboveThreshold(minScore) {
		if len(out) >= limit {
			break
		}

		if _, dup := seen[cand.Node.Name]; dup {
			continue
		}

		seen[cand.Node.Name] = struct{}{}
		out = append(out, cand.Node.Name)
	}

	return out
}

// Len implements sort.Interface.
func (c CandidateList) Len() int { return len(c) }

// Swap implements sort.Interface.
func (c CandidateList) Swap(i, j int) { c[i], c[j] = c[j], c[i] }

// Less implements sort.Interface.
func (c CandidateList) Less(i, j int) bool {
	if c[i].Score != c[j].Score {
		return c[i].Score > c[j].Score
	}

	return c[i].order < c[j].order
}

// IsAmbiguous returns true if the top two candidates are within threshold.
func (c CandidateList) IsAmbiguous(threshold float64) bool {
	if len(c) < 2 {
		return false
	}

	return c[0].Score-c[1].Score < threshold
}

// AboveThreshold returns the candidates scoring at least threshold.
func (c CandidateList) AboveThreshold(threshold float64) CandidateList {
	var result CandidateList

	for _, cand := range c {
		if cand.Score >= threshold {
			result = append(result, cand)
		}
	}

	return result
}
