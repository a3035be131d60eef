package catalog

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap"
)

// Year bounds for record validation. Anything outside is treated as a data
// entry error and skipped.
const (
	minYear = 1878
	maxYear = 2100
)

func newID() string {
	return uuid.NewString()
}

// Load reads one or more dataset files, routed by extension (.json or .csv),
// and returns a validated, deduplicated collection. A file that cannot be
// read or parsed at all is a fatal error; individual invalid rows are
// skipped with a warning.
func Load(logger *zap.Logger, paths ...string) (*Movies, error) {
	movies := &Movies{}

	for _, path := range paths {
		var (
			loaded []*Movie
			err    error
		)

		switch strings.ToLower(filepath.Ext(path)) {
		case ".json":
			loaded, err = loadJSON(path)
		case ".csv":
			loaded, err = loadCSV(path)
		default:
			return nil, fmt.Errorf("unsupported dataset format %q: expected .json or .csv", path)
		}
		if err != nil {
			return nil, fmt.Errorf("loading dataset %s: %w", path, err)
		}

		added, skipped := merge(movies, loaded)
		if logger != nil {
			logger.Info("dataset file loaded",
				zap.String("path", path),
				zap.Int("added", added),
				zap.Int("skipped", skipped),
			)
		}
	}

	return movies, nil
}

// Merge appends records from other that pass validation and are not already
// present. Returns the number of records added.
func (m *Movies) Merge(other *Movies, logger *zap.Logger) int {
	if other == nil {
		return 0
	}
	added, skipped := merge(m, other.Items)
	if logger != nil && skipped > 0 {
		logger.Warn("some records were skipped during merge",
			zap.Int("added", added),
			zap.Int("skipped", skipped),
		)
	}
	return added
}

func merge(into *Movies, records []*Movie) (added, skipped int) {
	seen := make(map[string]struct{}, into.Len())
	for _, movie := range into.Items {
		seen[movie.Key()] = struct{}{}
	}

	for _, movie := range records {
		if err := validate(movie); err != nil {
			skipped++
			continue
		}
		key := movie.Key()
		if _, ok := seen[key]; ok {
			skipped++
			continue
		}
		if movie.ID == "" {
			movie.ID = newID()
		}
		seen[key] = struct{}{}
		into.Items = append(into.Items, movie)
		added++
	}

	return added, skipped
}

func validate(m *Movie) error {
	if m == nil || strings.TrimSpace(m.Name) == "" {
		return fmt.Errorf("record has no name")
	}
	if m.Year < minYear || m.Year > maxYear {
		return fmt.Errorf("record %q has implausible year %d", m.Name, m.Year)
	}
	if m.Rating < 0 || m.Rating > 10 {
		return fmt.Errorf("record %q has rating %v outside 0-10", m.Name, m.Rating)
	}
	if m.BoxOfficeMillions < 0 {
		return fmt.Errorf("record %q has negative box office", m.Name)
	}
	return nil
}

// loadJSON decodes an array of objects. Rows are decoded weakly typed so a
// year serialized as a float or a rating serialized as a string still load.
func loadJSON(path string) ([]*Movie, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var rows []map[string]any
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("expected a JSON array of movie objects: %w", err)
	}

	movies := make([]*Movie, 0, len(rows))
	for _, row := range rows {
		movie := &Movie{}
		cfg := &mapstructure.DecoderConfig{
			Result:           movie,
			WeaklyTypedInput: true,
		}
		decoder, err := mapstructure.NewDecoder(cfg)
		if err != nil {
			return nil, err
		}
		if err := decoder.Decode(row); err != nil {
			// A row with wrong field types is a skippable record, not a
			// broken file.
			continue
		}
		movies = append(movies, movie)
	}

	return movies, nil
}

// loadCSV reads a header-addressed CSV file. Recognized columns: name, year,
// category, genre, box_office_millions, rating. Unknown columns are ignored.
func loadCSV(path string) ([]*Movie, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading csv header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, col := range header {
		index[strings.ToLower(strings.TrimSpace(col))] = i
	}
	if _, ok := index["name"]; !ok {
		return nil, fmt.Errorf("csv header has no 'name' column")
	}

	var movies []*Movie
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading csv row: %w", err)
		}

		field := func(name string) string {
			i, ok := index[name]
			if !ok || i >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[i])
		}

		year, _ := strconv.Atoi(field("year"))
		boxOffice, _ := strconv.ParseFloat(field("box_office_millions"), 64)
		rating, _ := strconv.ParseFloat(field("rating"), 64)

		movies = append(movies, &Movie{
			ID:                field("id"),
			Name:              field("name"),
			Year:              year,
			Category:          field("category"),
			Genre:             field("genre"),
			BoxOfficeMillions: boxOffice,
			Rating:            rating,
		})
	}

	return movies, nil
}
