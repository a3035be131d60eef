// Package fuzzy provides the optional typo-tolerant similarity scorer used
// by the search engine. The real implementation is backed by Levenshtein
// distance; building with the nofuzzy tag swaps in a stub that reports the
// capability as unavailable, and the engine degrades to tokenized matching.
package fuzzy

// Scorer rates the similarity of a query against a piece of text on a
// 0-100 scale, where 100 means identical after normalization.
type Scorer interface {
	Name() string
	Available() bool
	Score(query, text string) int
}

// Default returns the scorer selected at build time.
func Default() Scorer {
	return newScorer()
}

// Unavailable is the null scorer. It reports the capability as absent and
// never matches anything; callers are expected to fall back to tokenized
// matching.
type Unavailable struct{}

func (Unavailable) Name() string { return "unavailable" }

func (Unavailable) Available() bool { return false }

func (Unavailable) Score(string, string) int { return 0 }
