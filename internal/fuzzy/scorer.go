//go:build !nofuzzy

package fuzzy

import (
	"math"
	"strings"
	"unicode"

	"github.com/agnivade/levenshtein"
)

func newScorer() Scorer {
	return levenshteinScorer{}
}

// levenshteinScorer rates similarity with edit distance over normalized
// text. Containment of the whole query scores 100; otherwise the best ratio
// of the query against the full text and against token windows of the same
// width wins, so a short query is not punished for the length of the record
// search text.
type levenshteinScorer struct{}

func (levenshteinScorer) Name() string { return "levenshtein" }

func (levenshteinScorer) Available() bool { return true }

func (levenshteinScorer) Score(query, text string) int {
	q := normalize(query)
	t := normalize(text)

	if q == "" || t == "" {
		return 0
	}
	if strings.Contains(t, q) {
		return 100
	}

	best := ratio(q, t)

	qTokens := strings.Fields(q)
	tTokens := strings.Fields(t)
	width := len(qTokens)
	for i := 0; i+width <= len(tTokens); i++ {
		window := strings.Join(tTokens[i:i+width], " ")
		if r := ratio(q, window); r > best {
			best = r
		}
	}

	return best
}

func ratio(a, b string) int {
	maxLen := len([]rune(a))
	if l := len([]rune(b)); l > maxLen {
		maxLen = l
	}
	if maxLen == 0 {
		return 100
	}

	dist := levenshtein.ComputeDistance(a, b)
	score := int(math.Round(100 * (1 - float64(dist)/float64(maxLen))))
	if score < 0 {
		return 0
	}
	return score
}

// normalize lowercases the string, turns punctuation into spaces and
// collapses runs of whitespace.
func normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for _, r := range strings.ToLower(s) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		default:
			b.WriteRune(' ')
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}
