// Package datasets embeds the sample Cities and Countries tables.
package datasets

import (
	"embed"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
)

// File names of the two tables the report reads
const (
	Cities    = "Cities.csv"
	Countries = "Countries.csv"
)

//go:embed *.csv
var Content embed.FS

// Seed writes every embedded CSV file into dir unless a file with the
// same name already exists there. Existing files are never overwritten.
func Seed(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	entries, err := fs.ReadDir(Content, ".")
	if err != nil {
		return err
	}

	for _, entry := range entries {
		target := filepath.Join(dir, entry.Name())
		if _, err := os.Stat(target); err == nil {
			continue
		} else if !errors.Is(err, fs.ErrNotExist) {
			return err
		}

		raw, err := Content.ReadFile(entry.Name())
		if err != nil {
			return err
		}
		if err := os.WriteFile(target, raw, 0644); err != nil {
			return err
		}
		slog.Info("seeded dataset", "file", target)
	}

	return nil
}
