package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	return path
}

func TestLoadJSON(t *testing.T) {
	path := writeFile(t, "movies.json", `[
		{"name": "Tenet", "year": 2020, "genre": "Sci-Fi", "category": "Blockbuster", "box_office_millions": 365.3, "rating": 7.3},
		{"name": "Dune", "year": 2021.0, "genre": "Sci-Fi", "category": "Blockbuster", "box_office_millions": 434.8, "rating": 8.0},
		{"name": "", "year": 2020},
		{"name": "Tenet", "year": 2020, "rating": 7.3}
	]`)

	movies, err := Load(nil, path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Empty name skipped, duplicate (name, year) skipped, float year accepted.
	if movies.Len() != 2 {
		t.Fatalf("expected 2 movies, got %d", movies.Len())
	}
	dune := movies.FindByName("Dune", 2021)
	if dune == nil {
		t.Fatalf("expected weakly-typed year to load")
	}
	if dune.ID == "" {
		t.Fatalf("expected an ID to be assigned at load")
	}
}

func TestLoadCSV(t *testing.T) {
	path := writeFile(t, "movies.csv",
		"name,year,category,genre,box_office_millions,rating\n"+
			"Arrival,2016,Prestige,Sci-Fi/Drama,203.4,7.9\n"+
			"Sicario,2015,Indie,Thriller,84.9,7.6\n"+
			",2016,Indie,Drama,1.0,6.0\n")

	movies, err := Load(nil, path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if movies.Len() != 2 {
		t.Fatalf("expected 2 movies, got %d", movies.Len())
	}

	arrival := movies.FindByName("Arrival", 2016)
	if arrival == nil {
		t.Fatalf("expected Arrival in the catalog")
	}
	if arrival.BoxOfficeMillions != 203.4 || arrival.Rating != 7.9 {
		t.Fatalf("numeric columns parsed wrong: %+v", arrival)
	}
}

func TestLoadMultipleFilesDeduplicates(t *testing.T) {
	json := writeFile(t, "a.json", `[{"name": "Arrival", "year": 2016, "rating": 7.9}]`)
	csv := writeFile(t, "b.csv", "name,year,rating\nArrival,2016,7.9\nSicario,2015,7.6\n")

	movies, err := Load(nil, json, csv)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if movies.Len() != 2 {
		t.Fatalf("expected cross-file dedupe to leave 2 movies, got %d", movies.Len())
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		path func(t *testing.T) string
	}{
		{
			name: "missing file",
			path: func(t *testing.T) string { return filepath.Join(t.TempDir(), "absent.json") },
		},
		{
			name: "malformed json",
			path: func(t *testing.T) string { return writeFile(t, "bad.json", `{"not": "an array"}`) },
		},
		{
			name: "unsupported extension",
			path: func(t *testing.T) string { return writeFile(t, "movies.yaml", "name: Arrival") },
		},
		{
			name: "csv without name column",
			path: func(t *testing.T) string { return writeFile(t, "bad.csv", "title,year\nArrival,2016\n") },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(nil, tt.path(t)); err == nil {
				t.Fatalf("expected a fatal load error")
			}
		})
	}
}

func TestMergeValidatesRecords(t *testing.T) {
	movies := Seed()
	initial := movies.Len()

	added := movies.Merge(&Movies{Items: []*Movie{
		{Name: "Tenet", Year: 2020, Rating: 7.3},
		{Name: "Inception", Year: 2010},         // duplicate of a seed record
		{Name: "Bad Year", Year: 12},            // implausible year
		{Name: "Bad Rating", Year: 2020, Rating: 42}, // rating out of range
	}}, nil)

	if added != 1 {
		t.Fatalf("expected exactly 1 record added, got %d", added)
	}
	if movies.Len() != initial+1 {
		t.Fatalf("expected catalog to grow by 1, got %d -> %d", initial, movies.Len())
	}
}

func TestSaveJSONRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out", "movies.json")

	movies := sample()
	if err := movies.SaveJSON(path); err != nil {
		t.Fatalf("saving: %v", err)
	}

	loaded, err := Load(nil, path)
	if err != nil {
		t.Fatalf("loading saved file: %v", err)
	}
	if loaded.Len() != movies.Len() {
		t.Fatalf("expected %d movies after round trip, got %d", movies.Len(), loaded.Len())
	}
}
