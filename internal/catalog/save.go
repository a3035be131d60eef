package catalog

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// SaveJSON writes the catalog as pretty-printed JSON, creating parent
// directories as needed.
func (m *Movies) SaveJSON(path string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	return enc.Encode(m.Items)
}
