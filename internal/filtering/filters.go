package filtering

import (
	"strings"

	"reelfinder/internal/catalog"
)

// keepFilter retains records satisfying a predicate, preserving order.
type keepFilter struct {
	name string
	keep func(*catalog.Movie) bool
}

func (f *keepFilter) Name() string { return f.name }

func (f *keepFilter) Apply(m *catalog.Movies) (*catalog.Movies, Step, error) {
	initial := m.Len()
	kept := make([]*catalog.Movie, 0, initial)
	for _, movie := range m.Items {
		if f.keep(movie) {
			kept = append(kept, movie)
		}
	}
	next := &catalog.Movies{Items: kept}
	return next, Step{Initial: initial, Dropped: initial - next.Len(), Left: next.Len()}, nil
}

// NewGenre keeps records whose genre or category contains the given value.
// Checking both fields mirrors how users mix the two ("Animation" is a genre
// token and a category).
func NewGenre(genre string) Filter {
	lower := strings.ToLower(genre)
	return &keepFilter{
		name: "genre",
		keep: func(m *catalog.Movie) bool {
			return strings.Contains(strings.ToLower(m.Genre), lower) ||
				strings.Contains(strings.ToLower(m.Category), lower)
		},
	}
}

// NewCategory keeps records whose category or genre contains the given value.
func NewCategory(category string) Filter {
	lower := strings.ToLower(category)
	return &keepFilter{
		name: "category",
		keep: func(m *catalog.Movie) bool {
			return strings.Contains(strings.ToLower(m.Category), lower) ||
				strings.Contains(strings.ToLower(m.Genre), lower)
		},
	}
}

// NewMinRating keeps records rated at or above the given minimum.
func NewMinRating(min float64) Filter {
	return &keepFilter{
		name: "min_rating",
		keep: func(m *catalog.Movie) bool { return m.Rating >= min },
	}
}

// NewYear keeps records released in the given year.
func NewYear(year int) Filter {
	return &keepFilter{
		name: "year",
		keep: func(m *catalog.Movie) bool { return m.Year == year },
	}
}

// NewYearFrom keeps records released in or after the given year.
func NewYearFrom(year int) Filter {
	return &keepFilter{
		name: "year_from",
		keep: func(m *catalog.Movie) bool { return m.Year >= year },
	}
}

// NewYearTo keeps records released in or before the given year.
func NewYearTo(year int) Filter {
	return &keepFilter{
		name: "year_to",
		keep: func(m *catalog.Movie) bool { return m.Year <= year },
	}
}
