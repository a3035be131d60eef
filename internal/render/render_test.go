package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"reelfinder/internal/catalog"
	"reelfinder/internal/search"
)

func TestValidateFormat(t *testing.T) {
	if err := ValidateFormat(FormatText); err != nil {
		t.Fatalf("text must be valid: %v", err)
	}
	if err := ValidateFormat(FormatJSON); err != nil {
		t.Fatalf("json must be valid: %v", err)
	}
	if err := ValidateFormat("yaml"); err == nil {
		t.Fatalf("expected an error for unknown format")
	}
}

func TestResultsJSON(t *testing.T) {
	results := search.Results{
		{
			Movie:    &catalog.Movie{Name: "Inception", Year: 2010, Genre: "Sci-Fi", Rating: 8.8},
			Score:    100,
			Strategy: search.StrategyExact,
		},
		{
			Movie:    &catalog.Movie{Name: "Interstellar", Year: 2014, Genre: "Sci-Fi/Drama", Rating: 8.6},
			Score:    80,
			Strategy: search.StrategyTokenized,
		},
	}

	var buf bytes.Buffer
	if err := Results(&buf, results, FormatJSON); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var decoded []map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(decoded) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(decoded))
	}
	if decoded[0]["name"] != "Inception" || decoded[0]["score"] != float64(100) {
		t.Fatalf("unexpected first row: %v", decoded[0])
	}
	if decoded[1]["strategy"] != "tokenized" {
		t.Fatalf("unexpected strategy: %v", decoded[1]["strategy"])
	}
}

func TestResultsText(t *testing.T) {
	results := search.Results{
		{
			Movie:    &catalog.Movie{Name: "Inception", Year: 2010, Genre: "Sci-Fi", Rating: 8.8},
			Score:    100,
			Strategy: search.StrategyExact,
		},
	}

	var buf bytes.Buffer
	if err := Results(&buf, results, FormatText); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "Found 1 match(es).") {
		t.Fatalf("missing count line in output:\n%s", out)
	}
	if !strings.Contains(out, "Inception") {
		t.Fatalf("missing movie name in output:\n%s", out)
	}
}

func TestResultsTextEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := Results(&buf, nil, FormatText); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "Found 0 match(es).") {
		t.Fatalf("unexpected empty output: %q", buf.String())
	}
}

func TestFormatMovie(t *testing.T) {
	movie := &catalog.Movie{
		Name:              "Inception",
		Year:              2010,
		Genre:             "Sci-Fi",
		Category:          "Prestige",
		BoxOfficeMillions: 829.9,
		Rating:            8.8,
	}

	got := FormatMovie(movie)
	want := "Inception (2010) | Genre: Sci-Fi | Category: Prestige | Box Office: $829.9M | Rating: 8.8/10"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}
