// Package catalog holds the in-memory movie dataset: the record type, the
// ordered collection and the JSON/CSV loaders that feed it.
package catalog

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

const (
	SortByRating    = "rating"
	SortByBoxOffice = "box_office"
	SortByYear      = "year"
)

// Movie is a single catalog record. Records are treated as immutable once
// loaded.
type Movie struct {
	ID                string  `json:"id,omitempty" mapstructure:"id"`
	Name              string  `json:"name" mapstructure:"name"`
	Year              int     `json:"year" mapstructure:"year"`
	Category          string  `json:"category,omitempty" mapstructure:"category"`
	Genre             string  `json:"genre,omitempty" mapstructure:"genre"`
	BoxOfficeMillions float64 `json:"box_office_millions,omitempty" mapstructure:"box_office_millions"`
	Rating            float64 `json:"rating,omitempty" mapstructure:"rating"`
}

// Movies is an ordered collection of records. Order is the load order and is
// the tie-break for equal-score search results.
type Movies struct {
	Items []*Movie
}

// TokenCount is a genre or category token with the number of records
// carrying it.
type TokenCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

var tokenSplit = regexp.MustCompile(`[\s/,]+`)

// SearchText returns the lowercased text a query is matched against.
func (m *Movie) SearchText() string {
	return strings.ToLower(strings.TrimSpace(m.Name + " " + m.Genre + " " + m.Category))
}

// Key identifies a record for deduplication and favorites lookups.
func (m *Movie) Key() string {
	return fmt.Sprintf("%s|%d", strings.ToLower(m.Name), m.Year)
}

func (m *Movies) Len() int {
	return len(m.Items)
}

// FindByName returns the record with the given name (case-insensitive) and
// year, or nil.
func (m *Movies) FindByName(name string, year int) *Movie {
	lower := strings.ToLower(name)
	for _, movie := range m.Items {
		if strings.ToLower(movie.Name) == lower && movie.Year == year {
			return movie
		}
	}
	return nil
}

// TopRated returns up to n records ordered by rating then box office desc.
func (m *Movies) TopRated(n int) []*Movie {
	sorted := make([]*Movie, len(m.Items))
	copy(sorted, m.Items)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Rating != sorted[j].Rating {
			return sorted[i].Rating > sorted[j].Rating
		}
		return sorted[i].BoxOfficeMillions > sorted[j].BoxOfficeMillions
	})
	if n > 0 && n < len(sorted) {
		sorted = sorted[:n]
	}
	return sorted
}

// Sorted returns the records ordered by the given field desc (rating, box
// office or year), with rating then box office breaking ties. An unknown or
// empty field falls back to rating order.
func (m *Movies) Sorted(field string) []*Movie {
	sorted := make([]*Movie, len(m.Items))
	copy(sorted, m.Items)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		switch field {
		case SortByYear:
			if a.Year != b.Year {
				return a.Year > b.Year
			}
		case SortByBoxOffice:
			if a.BoxOfficeMillions != b.BoxOfficeMillions {
				return a.BoxOfficeMillions > b.BoxOfficeMillions
			}
		}
		if a.Rating != b.Rating {
			return a.Rating > b.Rating
		}
		return a.BoxOfficeMillions > b.BoxOfficeMillions
	})
	return sorted
}

// Genres returns genre token counts, count desc then name asc. Slash-joined
// values like "Action/Sci-Fi" contribute one count per token.
func (m *Movies) Genres() []TokenCount {
	return m.countTokens(func(movie *Movie) string { return movie.Genre })
}

// Categories returns category counts, count desc then name asc.
func (m *Movies) Categories() []TokenCount {
	return m.countTokens(func(movie *Movie) string { return movie.Category })
}

func (m *Movies) countTokens(field func(*Movie) string) []TokenCount {
	counts := make(map[string]int)
	for _, movie := range m.Items {
		v := field(movie)
		if v == "" {
			continue
		}
		for _, token := range tokenSplit.Split(v, -1) {
			token = strings.TrimSpace(token)
			if token != "" {
				counts[token]++
			}
		}
	}

	out := make([]TokenCount, 0, len(counts))
	for name, count := range counts {
		out = append(out, TokenCount{Name: name, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})
	return out
}
