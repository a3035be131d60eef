// Package synth grows the catalog with deterministic synthetic records,
// used to exercise searches against datasets larger than the seed list.
package synth

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"

	"reelfinder/internal/catalog"
)

// Options controls an expansion run. The zero value is filled with the
// defaults below.
type Options struct {
	MinTotal  int
	StartYear int
	EndYear   int
	Seed      int64
}

const (
	DefaultMinTotal  = 600
	DefaultStartYear = 2019
	DefaultEndYear   = 2025
	// defaultSeed keeps expansion reproducible across runs.
	defaultSeed = 42
)

var genres = []string{
	"Action", "Comedy", "Drama", "Sci-Fi", "Horror", "Thriller", "Romance",
	"Animation", "Fantasy", "Documentary", "Biography", "Family", "Adventure",
}

var categories = []string{"Blockbuster", "Streaming", "Indie", "Prestige", "Franchise", "Animation", "Other"}

var adjectives = []string{
	"Silent", "Crimson", "Golden", "Hidden", "Final", "Broken", "New", "Last", "First",
	"Endless", "Lonely", "Electric", "Shadow", "Secret", "Forgotten", "Midnight",
	"Distant", "Red", "Blue", "Iron", "Silver", "Urban", "Desert", "Frozen", "Burning",
}

var nouns = []string{
	"Dawn", "Echo", "Protocol", "Empire", "Promise", "Memory", "Reckoning", "Code",
	"Journey", "Legacy", "Labyrinth", "River", "Sky", "Threshold", "City", "Island",
	"Valley", "Storm", "Run", "Game", "Hour", "Moment", "Edge", "Light",
}

func (o Options) withDefaults() Options {
	if o.MinTotal == 0 {
		o.MinTotal = DefaultMinTotal
	}
	if o.StartYear == 0 {
		o.StartYear = DefaultStartYear
	}
	if o.EndYear == 0 {
		o.EndYear = DefaultEndYear
	}
	if o.Seed == 0 {
		o.Seed = defaultSeed
	}
	return o
}

// Expand appends synthetic records until the catalog holds at least
// MinTotal. Returns how many records were generated. Generation is seeded
// and therefore reproducible.
func Expand(c *catalog.Movies, opts Options) (int, error) {
	opts = opts.withDefaults()
	if opts.EndYear < opts.StartYear {
		return 0, fmt.Errorf("end year %d is before start year %d", opts.EndYear, opts.StartYear)
	}
	if c.Len() >= opts.MinTotal {
		return 0, nil
	}

	rng := rand.New(rand.NewSource(opts.Seed))

	existing := make(map[string]struct{}, c.Len())
	for _, movie := range c.Items {
		existing[movie.Name] = struct{}{}
	}

	generated := 0
	for c.Len() < opts.MinTotal {
		name := uniqueTitle(rng, existing)
		existing[name] = struct{}{}

		category := categories[rng.Intn(len(categories))]
		movie := &catalog.Movie{
			ID:                uuid.NewString(),
			Name:              name,
			Year:              opts.StartYear + rng.Intn(opts.EndYear-opts.StartYear+1),
			Genre:             genres[rng.Intn(len(genres))],
			Category:          category,
			BoxOfficeMillions: boxOfficeFor(rng, category),
			Rating:            ratingFor(rng, category),
		}

		c.Items = append(c.Items, movie)
		generated++
	}

	return generated, nil
}

func uniqueTitle(rng *rand.Rand, existing map[string]struct{}) string {
	for range 1000 {
		title := adjectives[rng.Intn(len(adjectives))] + " " + nouns[rng.Intn(len(nouns))]
		if _, ok := existing[title]; !ok {
			return title
		}
	}
	return fmt.Sprintf("%s %s %d",
		adjectives[rng.Intn(len(adjectives))],
		nouns[rng.Intn(len(nouns))],
		1000+rng.Intn(9000),
	)
}

func boxOfficeFor(rng *rand.Rand, category string) float64 {
	var lo, hi float64
	switch category {
	case "Blockbuster":
		lo, hi = 50.0, 2000.0
	case "Franchise":
		lo, hi = 20.0, 1000.0
	case "Streaming":
		lo, hi = 0.0, 50.0
	case "Animation":
		lo, hi = 10.0, 900.0
	default:
		lo, hi = 0.1, 200.0
	}
	return round1(lo + rng.Float64()*(hi-lo))
}

func ratingFor(rng *rand.Rand, category string) float64 {
	var lo, hi float64
	switch category {
	case "Prestige":
		lo, hi = 7.0, 9.5
	case "Blockbuster", "Franchise":
		lo, hi = 6.0, 9.0
	default:
		lo, hi = 5.0, 8.5
	}
	return round1(lo + rng.Float64()*(hi-lo))
}

func round1(v float64) float64 {
	return float64(int(v*10+0.5)) / 10
}
