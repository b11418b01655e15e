// Package fuzzy ranks candidate option names for "did you mean"
// suggestions on unrecognized tokens.
package fuzzy

import (
	"sort"
	"strings"
)

// Matcher finds near matches within a maximum edit distance.
type Matcher struct {
	maxDistance int
	minLength   int
}

// NewMatcher creates a matcher with the given maximum Levenshtein
// distance. Inputs shorter than two characters never get suggestions.
func NewMatcher(maxDistance int) *Matcher {
	return &Matcher{maxDistance: maxDistance, minLength: 2}
}

// Match is one ranked candidate.
type Match struct {
	Value    string
	Distance int
}

// FindMatches returns all candidates within the distance limit, closest
// first, ties broken alphabetically. Comparison is case-insensitive and
// ignores leading dashes, so "-verbose" still suggests "--verbose".
func (m *Matcher) FindMatches(input string, candidates []string) []Match {
	stripped := strings.ToLower(strings.TrimLeft(input, "-"))
	if len(stripped) < m.minLength {
		return nil
	}

	var matches []Match
	for _, candidate := range candidates {
		target := strings.ToLower(strings.TrimLeft(candidate, "-"))
		d := levenshtein(stripped, target)
		if d <= m.maxDistance {
			matches = append(matches, Match{Value: candidate, Distance: d})
		}
	}
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Distance != matches[j].Distance {
			return matches[i].Distance < matches[j].Distance
		}
		return matches[i].Value < matches[j].Value
	})
	return matches
}

// FindBest returns the closest candidate within maxDistance edits of
// input, if any.
func FindBest(input string, candidates []string, maxDistance int) (string, bool) {
	matches := NewMatcher(maxDistance).FindMatches(input, candidates)
	if len(matches) == 0 {
		return "", false
	}
	return matches[0].Value, true
}

// levenshtein computes the edit distance between a and b using a rolling
// single-row table.
func levenshtein(a, b string) int {
	if a == b {
		return 0
	}
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	row := make([]int, len(b)+1)
	for j := range row {
		row[j] = j
	}
	for i := 1; i <= len(a); i++ {
		prev := row[0]
		row[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			next := min3(row[j]+1, row[j-1]+1, prev+cost)
			prev = row[j]
			row[j] = next
		}
	}
	return row[len(b)]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
