// Package search implements the matching and ranking core: tokenized
// scoring over normalized titles with an optional typo-tolerant fuzzy pass.
package search

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"sort"
	"strings"

	"go.uber.org/zap"

	"reelfinder/internal/catalog"
	"reelfinder/internal/fuzzy"
)

// Strategy names how a result was matched.
type Strategy string

const (
	StrategyExact     Strategy = "exact"
	StrategyTokenized Strategy = "tokenized"
	StrategyFuzzy     Strategy = "fuzzy"
)

const (
	DefaultFuzzyThreshold     = 70
	DefaultMaxFuzzyCandidates = 250
	DefaultMaxResults         = 50

	// maxQueryLength bounds user input after sanitization.
	maxQueryLength = 100

	// Tokenized scoring: up to 80 points for token overlap plus a 20 point
	// boost when the search text contains the whole query.
	tokenScoreScale  = 80
	containmentBoost = 20
)

// ErrEmptyQuery is returned when the query is empty after sanitization.
var ErrEmptyQuery = errors.New("query is empty")

// Result is a single ranked match.
type Result struct {
	Movie    *catalog.Movie `json:"movie"`
	Score    int            `json:"score"`
	Strategy Strategy       `json:"strategy"`
}

// Results is the ranked match sequence, best first.
type Results []Result

// Config tunes one search call. Values are honored literally: a
// FuzzyThreshold of 0 admits every positive fuzzy score, and a zero
// MaxResults or MaxFuzzyCandidates means no cap. The flag layer supplies the
// Default* values, so an explicit 0 is never reinterpreted here.
type Config struct {
	Fuzzy              bool
	FuzzyThreshold     int
	MaxFuzzyCandidates int
	MaxResults         int
	// SortBy overrides relevance ordering with a record field:
	// rating, box_office or year.
	SortBy string
}

// Validate rejects out-of-range settings. Thresholds are never clamped
// silently.
func (c Config) Validate() error {
	if c.FuzzyThreshold < 0 || c.FuzzyThreshold > 100 {
		return fmt.Errorf("fuzzy threshold %d is out of range 0-100", c.FuzzyThreshold)
	}
	if c.MaxFuzzyCandidates < 0 {
		return fmt.Errorf("max fuzzy candidates must not be negative, got %d", c.MaxFuzzyCandidates)
	}
	if c.MaxResults < 0 {
		return fmt.Errorf("max results must not be negative, got %d", c.MaxResults)
	}
	switch c.SortBy {
	case "", catalog.SortByRating, catalog.SortByBoxOffice, catalog.SortByYear:
	default:
		return fmt.Errorf("unknown sort field %q: expected rating, box_office or year", c.SortBy)
	}
	return nil
}

// Engine ranks catalog records against a query. It is stateless between
// calls; identical inputs produce identical output.
type Engine struct {
	scorer fuzzy.Scorer
	logger *zap.Logger
}

func NewEngine(scorer fuzzy.Scorer, logger *zap.Logger) *Engine {
	return &Engine{scorer: scorer, logger: logger}
}

// Search returns ranked matches for the query. An empty record set yields an
// empty result, not an error. When fuzzy matching is requested but the
// scorer is unavailable the call degrades to tokenized matching with a
// logged warning.
func (e *Engine) Search(movies *catalog.Movies, query string, cfg Config) (Results, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	q := normalize(Sanitize(query))
	if q == "" {
		return nil, ErrEmptyQuery
	}
	if movies == nil || movies.Len() == 0 {
		return Results{}, nil
	}

	best := make(map[string]*ranked, movies.Len())
	keep := func(movie *catalog.Movie, pos, score int, strategy Strategy) {
		key := movie.Key()
		if cur, ok := best[key]; ok && cur.Score >= score {
			return
		}
		best[key] = &ranked{Result: Result{Movie: movie, Score: score, Strategy: strategy}, pos: pos}
	}

	for pos, movie := range movies.Items {
		score, strategy := scoreTokenized(q, movie)
		if score > 0 {
			keep(movie, pos, score, strategy)
		}
	}

	if cfg.Fuzzy {
		if e.scorer == nil || !e.scorer.Available() {
			if e.logger != nil {
				e.logger.Warn("fuzzy matching requested but not available, falling back to tokenized matching",
					zap.String("hint", "rebuild without the nofuzzy tag to enable fuzzy matching"),
				)
			}
		} else {
			for _, cand := range e.fuzzyCandidates(movies, best, cfg.MaxFuzzyCandidates) {
				score := e.scorer.Score(q, cand.movie.Name)
				if s := e.scorer.Score(q, cand.movie.SearchText()); s > score {
					score = s
				}
				// Score 0 means no similarity at all and is excluded even
				// when the threshold is 0.
				if score > 0 && score >= cfg.FuzzyThreshold {
					keep(cand.movie, cand.pos, score, StrategyFuzzy)
				}
			}
		}
	}

	ordered := make([]*ranked, 0, len(best))
	for _, r := range best {
		ordered = append(ordered, r)
	}

	switch cfg.SortBy {
	case catalog.SortByRating:
		sort.Slice(ordered, func(i, j int) bool {
			a, b := ordered[i], ordered[j]
			if a.Movie.Rating != b.Movie.Rating {
				return a.Movie.Rating > b.Movie.Rating
			}
			if a.Score != b.Score {
				return a.Score > b.Score
			}
			return a.pos < b.pos
		})
	case catalog.SortByBoxOffice:
		sort.Slice(ordered, func(i, j int) bool {
			a, b := ordered[i], ordered[j]
			if a.Movie.BoxOfficeMillions != b.Movie.BoxOfficeMillions {
				return a.Movie.BoxOfficeMillions > b.Movie.BoxOfficeMillions
			}
			if a.Score != b.Score {
				return a.Score > b.Score
			}
			return a.pos < b.pos
		})
	case catalog.SortByYear:
		sort.Slice(ordered, func(i, j int) bool {
			a, b := ordered[i], ordered[j]
			if a.Movie.Year != b.Movie.Year {
				return a.Movie.Year > b.Movie.Year
			}
			if a.Score != b.Score {
				return a.Score > b.Score
			}
			return a.pos < b.pos
		})
	default:
		// Relevance: score desc, ties keep catalog order.
		sort.Slice(ordered, func(i, j int) bool {
			if ordered[i].Score != ordered[j].Score {
				return ordered[i].Score > ordered[j].Score
			}
			return ordered[i].pos < ordered[j].pos
		})
	}

	if cfg.MaxResults > 0 && len(ordered) > cfg.MaxResults {
		ordered = ordered[:cfg.MaxResults]
	}

	results := make(Results, 0, len(ordered))
	for _, r := range ordered {
		results = append(results, r.Result)
	}
	return results, nil
}

type ranked struct {
	Result
	pos int
}

type candidate struct {
	movie *catalog.Movie
	pos   int
}

// fuzzyCandidates picks the records the fuzzy pass may consider: everything
// not already matched, ordered by rating then box office desc, capped to
// bound cost on large catalogs.
func (e *Engine) fuzzyCandidates(movies *catalog.Movies, matched map[string]*ranked, limit int) []candidate {
	candidates := make([]candidate, 0, movies.Len())
	for pos, movie := range movies.Items {
		if _, ok := matched[movie.Key()]; ok {
			continue
		}
		candidates = append(candidates, candidate{movie: movie, pos: pos})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i].movie, candidates[j].movie
		if a.Rating != b.Rating {
			return a.Rating > b.Rating
		}
		return a.BoxOfficeMillions > b.BoxOfficeMillions
	})

	if limit > 0 && len(candidates) > limit {
		candidates = candidates[:limit]
	}
	return candidates
}

// scoreTokenized rates a record against the normalized query. A numeric
// query matches the release year exactly. Records with no overlap score 0
// and are excluded.
func scoreTokenized(q string, movie *catalog.Movie) (int, Strategy) {
	if year, ok := numericQuery(q); ok {
		if movie.Year == year {
			return 100, StrategyExact
		}
		return 0, StrategyTokenized
	}

	name := normalize(movie.Name)
	if name == q {
		return 100, StrategyExact
	}

	text := normalize(movie.SearchText())
	qTokens := strings.Fields(q)
	if len(qTokens) == 0 {
		return 0, StrategyTokenized
	}

	textTokens := make(map[string]struct{})
	for _, t := range strings.Fields(text) {
		textTokens[t] = struct{}{}
	}
	nameTokens := strings.Fields(name)

	matched := 0
	for _, t := range qTokens {
		if _, ok := textTokens[t]; ok {
			matched++
			continue
		}
		for _, nt := range nameTokens {
			if strings.HasPrefix(nt, t) {
				matched++
				break
			}
		}
	}

	score := int(math.Round(tokenScoreScale * float64(matched) / float64(len(qTokens))))
	if strings.Contains(text, q) {
		score += containmentBoost
	}
	if score > 100 {
		score = 100
	}
	return score, StrategyTokenized
}

func numericQuery(q string) (int, bool) {
	if q == "" {
		return 0, false
	}
	for _, r := range q {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	year := 0
	for _, r := range q {
		year = year*10 + int(r-'0')
	}
	return year, true
}

var controlChars = regexp.MustCompile(`[\x00-\x1f\x7f-\x9f]`)

// Sanitize strips control characters, trims whitespace and caps the query
// length. The cap cuts on a rune boundary so a multibyte character is never
// split into invalid bytes.
func Sanitize(q string) string {
	q = strings.TrimSpace(controlChars.ReplaceAllString(q, ""))
	if runes := []rune(q); len(runes) > maxQueryLength {
		q = string(runes[:maxQueryLength])
	}
	return q
}

// normalize lowercases and splits on punctuation so "Sci-Fi" and "sci fi"
// compare equal.
func normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r > 127 {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
