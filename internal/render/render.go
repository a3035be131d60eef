// Package render formats search results and catalog listings for stdout.
// Text output uses go-pretty tables; JSON output is indented.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"reelfinder/internal/catalog"
	"reelfinder/internal/search"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

// ValidateFormat rejects unknown --format values at the flag boundary.
func ValidateFormat(format string) error {
	switch format {
	case FormatText, FormatJSON:
		return nil
	default:
		return fmt.Errorf("unknown format %q: expected text or json", format)
	}
}

// resultRow is the flattened JSON shape for one match.
type resultRow struct {
	Name              string  `json:"name"`
	Year              int     `json:"year"`
	Genre             string  `json:"genre,omitempty"`
	Category          string  `json:"category,omitempty"`
	BoxOfficeMillions float64 `json:"box_office_millions,omitempty"`
	Rating            float64 `json:"rating,omitempty"`
	Score             int     `json:"score"`
	Strategy          string  `json:"strategy"`
}

// Results writes ranked matches in the requested format.
func Results(w io.Writer, results search.Results, format string) error {
	if format == FormatJSON {
		rows := make([]resultRow, 0, len(results))
		for _, r := range results {
			rows = append(rows, resultRow{
				Name:              r.Movie.Name,
				Year:              r.Movie.Year,
				Genre:             r.Movie.Genre,
				Category:          r.Movie.Category,
				BoxOfficeMillions: r.Movie.BoxOfficeMillions,
				Rating:            r.Movie.Rating,
				Score:             r.Score,
				Strategy:          string(r.Strategy),
			})
		}
		return writeJSON(w, rows)
	}

	fmt.Fprintf(w, "Found %d match(es).\n", len(results))
	if len(results) == 0 {
		return nil
	}

	tw := newTable(w)
	tw.AppendHeader(table.Row{"Name", "Year", "Genre", "Category", "Box Office ($M)", "Rating", "Score", "Match"})
	for _, r := range results {
		tw.AppendRow(table.Row{
			r.Movie.Name,
			r.Movie.Year,
			r.Movie.Genre,
			r.Movie.Category,
			strconv.FormatFloat(r.Movie.BoxOfficeMillions, 'f', 1, 64),
			strconv.FormatFloat(r.Movie.Rating, 'f', 1, 64),
			r.Score,
			string(r.Strategy),
		})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
		{Number: 6, Align: text.AlignRight},
		{Number: 7, Align: text.AlignRight},
	})
	tw.Render()
	return nil
}

// Movies writes a plain catalog listing (top rated, favorites).
func Movies(w io.Writer, title string, movies []*catalog.Movie, format string) error {
	if format == FormatJSON {
		return writeJSON(w, movies)
	}

	if title != "" {
		fmt.Fprintln(w, title)
	}
	tw := newTable(w)
	tw.AppendHeader(table.Row{"Name", "Year", "Genre", "Category", "Box Office ($M)", "Rating"})
	for _, m := range movies {
		tw.AppendRow(table.Row{
			m.Name,
			m.Year,
			m.Genre,
			m.Category,
			strconv.FormatFloat(m.BoxOfficeMillions, 'f', 1, 64),
			strconv.FormatFloat(m.Rating, 'f', 1, 64),
		})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
		{Number: 6, Align: text.AlignRight},
	})
	tw.Render()
	return nil
}

// Tokens writes genre or category counts.
func Tokens(w io.Writer, header string, tokens []catalog.TokenCount, format string) error {
	if format == FormatJSON {
		return writeJSON(w, tokens)
	}

	tw := newTable(w)
	tw.AppendHeader(table.Row{header, "Count"})
	for _, tc := range tokens {
		tw.AppendRow(table.Row{tc.Name, tc.Count})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{{Number: 2, Align: text.AlignRight}})
	tw.Render()
	return nil
}

// FormatMovie is the one-line rendering used by interactive prompts.
func FormatMovie(m *catalog.Movie) string {
	return fmt.Sprintf("%s (%d) | Genre: %s | Category: %s | Box Office: $%.1fM | Rating: %.1f/10",
		m.Name, m.Year, m.Genre, m.Category, m.BoxOfficeMillions, m.Rating)
}

func newTable(w io.Writer) table.Writer {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleRounded)
	return tw
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
