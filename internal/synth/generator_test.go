package synth

import (
	"testing"

	"reelfinder/internal/catalog"
)

func TestExpandReachesMinTotal(t *testing.T) {
	movies := catalog.Seed()

	generated, err := Expand(movies, Options{MinTotal: 100})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if movies.Len() != 100 {
		t.Fatalf("expected 100 movies, got %d", movies.Len())
	}
	if generated != 100-24 {
		t.Fatalf("expected %d generated, got %d", 100-24, generated)
	}
}

func TestExpandIsDeterministic(t *testing.T) {
	a := catalog.Seed()
	b := catalog.Seed()

	if _, err := Expand(a, Options{MinTotal: 80}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := Expand(b, Options{MinTotal: 80}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := range a.Items {
		x, y := a.Items[i], b.Items[i]
		if x.Name != y.Name || x.Year != y.Year || x.Rating != y.Rating || x.BoxOfficeMillions != y.BoxOfficeMillions {
			t.Fatalf("expansion not reproducible at index %d: %+v vs %+v", i, x, y)
		}
	}
}

func TestExpandRespectsYearBounds(t *testing.T) {
	movies := &catalog.Movies{}

	if _, err := Expand(movies, Options{MinTotal: 50, StartYear: 2020, EndYear: 2022}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, m := range movies.Items {
		if m.Year < 2020 || m.Year > 2022 {
			t.Fatalf("generated year %d outside 2020-2022", m.Year)
		}
	}
}

func TestExpandGeneratesUniqueValidRecords(t *testing.T) {
	movies := catalog.Seed()

	if _, err := Expand(movies, Options{MinTotal: 200}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	seen := make(map[string]struct{}, movies.Len())
	for _, m := range movies.Items {
		if m.Name == "" || m.ID == "" {
			t.Fatalf("generated record missing name or id: %+v", m)
		}
		if m.Rating < 0 || m.Rating > 10 {
			t.Fatalf("generated rating out of range: %+v", m)
		}
		if m.BoxOfficeMillions < 0 {
			t.Fatalf("generated box office negative: %+v", m)
		}
		if _, ok := seen[m.Name]; ok {
			t.Fatalf("duplicate generated title: %s", m.Name)
		}
		seen[m.Name] = struct{}{}
	}
}

func TestExpandNoopWhenLargeEnough(t *testing.T) {
	movies := catalog.Seed()

	generated, err := Expand(movies, Options{MinTotal: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if generated != 0 || movies.Len() != 24 {
		t.Fatalf("expected a no-op, generated %d", generated)
	}
}

func TestExpandRejectsInvertedYearRange(t *testing.T) {
	if _, err := Expand(catalog.Seed(), Options{MinTotal: 50, StartYear: 2025, EndYear: 2019}); err == nil {
		t.Fatalf("expected an error for inverted year range")
	}
}
