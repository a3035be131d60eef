//go:build nofuzzy

// Stub selected when the binary is built without fuzzy matching support.

package fuzzy

func newScorer() Scorer {
	return Unavailable{}
}
