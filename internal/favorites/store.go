// Package favorites persists the user's favorite movies as a small JSON
// file holding (name, year) references into the catalog.
package favorites

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"
	"go.uber.org/zap"

	"reelfinder/internal/catalog"
	"reelfinder/internal/logger"
)

// DefaultFile is the favorites file used when none is configured.
const DefaultFile = "favorites.json"

var (
	ErrAlreadyFavorite = errors.New("movie is already in favorites")
	ErrNotFavorite     = errors.New("movie is not in favorites")
	ErrNotInCatalog    = errors.New("movie not found in catalog")
)

// Entry references a catalog record by name and release year.
type Entry struct {
	Name string `json:"name"`
	Year int    `json:"year"`
}

// Store keeps the in-memory favorites list in sync with its JSON file.
// Saves take an exclusive lock on a sidecar file so concurrent invocations
// do not clobber each other.
type Store struct {
	path    string
	logger  *zap.Logger
	entries []Entry
	index   map[string]struct{}
}

func NewStore(path string, logger *zap.Logger) *Store {
	if path == "" {
		path = DefaultFile
	}
	return &Store{
		path:   path,
		logger: logger,
		index:  make(map[string]struct{}),
	}
}

func key(name string, year int) string {
	return fmt.Sprintf("%s|%d", strings.ToLower(name), year)
}

// Load reads the favorites file. A missing file means an empty list; a
// malformed file or invalid entries are logged and skipped rather than
// failing the command.
func (s *Store) Load() error {
	s.entries = nil
	s.index = make(map[string]struct{})

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading favorites file %s: %w", s.path, err)
	}

	var raw []Entry
	if err := json.Unmarshal(data, &raw); err != nil {
		if s.logger != nil {
			s.logger.Warn("favorites file is malformed, starting with an empty list",
				zap.String("path", s.path),
				zap.String("preview", logger.TruncateForLog(string(data), 120)),
				zap.Error(err),
			)
		}
		return nil
	}

	for _, entry := range raw {
		if strings.TrimSpace(entry.Name) == "" || entry.Year == 0 {
			if s.logger != nil {
				s.logger.Warn("skipping invalid favorite entry",
					zap.String("name", entry.Name),
					zap.Int("year", entry.Year),
				)
			}
			continue
		}
		k := key(entry.Name, entry.Year)
		if _, ok := s.index[k]; ok {
			continue
		}
		s.entries = append(s.entries, entry)
		s.index[k] = struct{}{}
	}

	return nil
}

// Save writes the list back to disk under an exclusive file lock.
func (s *Store) Save() error {
	if dir := filepath.Dir(s.path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating favorites directory: %w", err)
		}
	}

	lock := flock.New(s.path + ".lock")
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("locking favorites file: %w", err)
	}
	defer lock.Unlock()

	entries := s.entries
	if entries == nil {
		entries = []Entry{}
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("writing favorites file %s: %w", s.path, err)
	}
	return nil
}

// Add stores a favorite after checking it exists in the catalog. The
// in-memory append is rolled back when the save fails.
func (s *Store) Add(c *catalog.Movies, name string, year int) error {
	k := key(name, year)
	if _, ok := s.index[k]; ok {
		return ErrAlreadyFavorite
	}
	if c == nil || c.FindByName(name, year) == nil {
		return ErrNotInCatalog
	}

	s.entries = append(s.entries, Entry{Name: name, Year: year})
	s.index[k] = struct{}{}

	if err := s.Save(); err != nil {
		s.entries = s.entries[:len(s.entries)-1]
		delete(s.index, k)
		return err
	}
	return nil
}

// Remove drops a favorite and persists the change. Like Add, the in-memory
// removal is rolled back when the save fails.
func (s *Store) Remove(name string, year int) error {
	k := key(name, year)
	if _, ok := s.index[k]; !ok {
		return ErrNotFavorite
	}

	previous := s.entries
	kept := make([]Entry, 0, len(previous))
	for _, entry := range previous {
		if key(entry.Name, entry.Year) != k {
			kept = append(kept, entry)
		}
	}
	s.entries = kept
	delete(s.index, k)

	if err := s.Save(); err != nil {
		s.entries = previous
		s.index[k] = struct{}{}
		return err
	}
	return nil
}

// Entries returns a copy of the favorite references.
func (s *Store) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Movies resolves the favorites to full catalog records, skipping entries
// no longer present in the catalog.
func (s *Store) Movies(c *catalog.Movies) []*catalog.Movie {
	var out []*catalog.Movie
	for _, entry := range s.entries {
		if movie := c.FindByName(entry.Name, entry.Year); movie != nil {
			out = append(out, movie)
		}
	}
	return out
}

func (s *Store) Len() int { return len(s.entries) }
