package catalog

import "testing"

func sample() *Movies {
	return &Movies{Items: []*Movie{
		{Name: "Inception", Year: 2010, Genre: "Sci-Fi", Category: "Prestige", Rating: 8.8, BoxOfficeMillions: 829.9},
		{Name: "Coco", Year: 2017, Genre: "Family/Animation", Category: "Animation", Rating: 8.4, BoxOfficeMillions: 807.1},
		{Name: "Toy Story", Year: 1995, Genre: "Family/Animation", Category: "Animation", Rating: 8.3, BoxOfficeMillions: 373.6},
		{Name: "Get Out", Year: 2017, Genre: "Horror/Thriller", Category: "Indie", Rating: 7.7, BoxOfficeMillions: 255.4},
	}}
}

func TestFindByNameIsCaseInsensitive(t *testing.T) {
	movies := sample()

	if movies.FindByName("inception", 2010) == nil {
		t.Fatalf("expected to find inception regardless of case")
	}
	if movies.FindByName("Inception", 2011) != nil {
		t.Fatalf("year must match exactly")
	}
	if movies.FindByName("Tenet", 2020) != nil {
		t.Fatalf("expected nil for unknown movie")
	}
}

func TestTopRated(t *testing.T) {
	movies := sample()

	top := movies.TopRated(2)
	if len(top) != 2 {
		t.Fatalf("expected 2 movies, got %d", len(top))
	}
	if top[0].Name != "Inception" || top[1].Name != "Coco" {
		t.Fatalf("unexpected top order: %s, %s", top[0].Name, top[1].Name)
	}
}

func TestGenresSplitsAndCounts(t *testing.T) {
	movies := sample()

	genres := movies.Genres()
	if len(genres) == 0 {
		t.Fatalf("expected genre counts")
	}

	counts := make(map[string]int)
	for _, g := range genres {
		counts[g.Name] = g.Count
	}
	if counts["Family"] != 2 || counts["Animation"] != 2 {
		t.Fatalf("expected slash-joined genres to count per token, got %v", counts)
	}
	if counts["Sci-Fi"] != 1 {
		// The dash is part of the token; only slash, comma and whitespace split.
		t.Fatalf("expected Sci-Fi to stay one token, got %v", counts)
	}

	// Count desc, then name asc.
	for i := 1; i < len(genres); i++ {
		if genres[i].Count > genres[i-1].Count {
			t.Fatalf("counts must be non-increasing")
		}
		if genres[i].Count == genres[i-1].Count && genres[i].Name < genres[i-1].Name {
			t.Fatalf("equal counts must be name-ordered")
		}
	}
}

func TestSortedByField(t *testing.T) {
	movies := sample()

	tests := []struct {
		field string
		first string
	}{
		{field: SortByRating, first: "Inception"},
		{field: SortByBoxOffice, first: "Inception"},
		{field: SortByYear, first: "Coco"},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			sorted := movies.Sorted(tt.field)
			if sorted[0].Name != tt.first {
				t.Fatalf("expected %s first for %s, got %s", tt.first, tt.field, sorted[0].Name)
			}
			if movies.Items[0].Name != "Inception" {
				t.Fatalf("Sorted must not mutate the catalog order")
			}
		})
	}
}

func TestSeedIsValidAndDeduplicated(t *testing.T) {
	movies := Seed()

	if movies.Len() != 24 {
		t.Fatalf("expected 24 seed movies, got %d", movies.Len())
	}

	seen := make(map[string]struct{})
	for _, m := range movies.Items {
		if m.ID == "" {
			t.Fatalf("seed record %q has no ID", m.Name)
		}
		if err := validate(m); err != nil {
			t.Fatalf("seed record failed validation: %v", err)
		}
		if _, ok := seen[m.Key()]; ok {
			t.Fatalf("duplicate seed record: %s", m.Name)
		}
		seen[m.Key()] = struct{}{}
	}
}
