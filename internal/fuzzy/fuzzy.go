// Package fuzzy provides edit-distance matching for option suggestions
// Used by argv.Store.Unknown to suggest the option a misspelt token meant
package fuzzy

import (
	"sort"
	"strings"
)

// Matcher finds candidates within a maximum edit distance of an input
type Matcher struct {
	maxDistance int
	minLength   int
}

// NewMatcher creates a new fuzzy matcher with the given max edit distance
func NewMatcher(maxDistance int) *Matcher {
	return &Matcher{
		maxDistance: maxDistance,
		minLength:   2, // Don't suggest for very short inputs
	}
}

// Match represents a fuzzy match result
type Match struct {
	Value    string
	Distance int
	Score    float64 // 0.0 to 1.0, higher is better
}

// FindBest returns the best candidate, or "" if none is close enough
func (m *Matcher) FindBest(input string, candidates []string) string {
	matches := m.FindMatches(input, candidates)
	if len(matches) == 0 {
		return ""
	}
	return matches[0].Value
}

// FindMatches returns all candidates within range, best first. Comparison
// is case-insensitive and ignores leading dashes, so "--verbos" is close to
// "-verbose". Exact matches are not suggestions and are skipped.
func (m *Matcher) FindMatches(input string, candidates []string) []Match {
	input = normalize(input)
	if len(input) < m.minLength {
		return nil
	}

	var matches []Match
	for _, candidate := range candidates {
		c := normalize(candidate)
		if c == input {
			continue
		}
		distance := m.distance(input, c)
		if distance > m.maxDistance {
			continue
		}
		matches = append(matches, Match{
			Value:    candidate,
			Distance: distance,
			Score:    m.score(input, c, distance),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Score == matches[j].Score {
			return matches[i].Distance < matches[j].Distance
		}
		return matches[i].Score > matches[j].Score
	})
	return matches
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimLeft(s, "-/"))
}

// score weighs edit distance, shared prefix and length similarity
func (m *Matcher) score(a, b string, distance int) float64 {
	longest := max(len(a), len(b))
	if longest == 0 {
		return 1.0
	}

	score := 1.0 - float64(distance)/float64(longest)
	if p := commonPrefix(a, b); p > 0 {
		score += float64(p) / float64(min(len(a), len(b))) * 0.3
	}
	score += (1.0 - float64(abs(len(a)-len(b)))/float64(longest)) * 0.2
	return min(score, 1.0)
}

// distance is the Levenshtein distance between a and b, cut short once it
// is known to exceed maxDistance
func (m *Matcher) distance(a, b string) int {
	if abs(len(a)-len(b)) > m.maxDistance {
		return m.maxDistance + 1
	}
	if len(a) > len(b) {
		a, b = b, a
	}

	prev := make([]int, len(a)+1)
	curr := make([]int, len(a)+1)
	for i := range prev {
		prev[i] = i
	}

	for i := 1; i <= len(b); i++ {
		curr[0] = i
		rowMin := i
		for j := 1; j <= len(a); j++ {
			cost := 1
			if a[j-1] == b[i-1] {
				cost = 0
			}
			curr[j] = min(curr[j-1]+1, prev[j]+1, prev[j-1]+cost)
			rowMin = min(rowMin, curr[j])
		}
		if rowMin > m.maxDistance {
			return m.maxDistance + 1
		}
		prev, curr = curr, prev
	}
	return prev[len(a)]
}

func commonPrefix(a, b string) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}

func abs(a int) int {
	if a < 0 {
		return -a
	}
	return a
}

// FindBestOption finds the best matching option name
func FindBestOption(input string, options []string, maxDistance int) string {
	return NewMatcher(maxDistance).FindBest(input, options)
}
