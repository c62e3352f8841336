package storage

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/leengari/csvtables/internal/catalog"
)

// LoadCatalog loads each named CSV file under dir and registers it
// in a new catalog. The first failing file aborts the load.
func LoadCatalog(dir string, files ...string) (*catalog.Catalog, error) {
	cat := catalog.New()

	for _, file := range files {
		table, err := LoadTable(filepath.Join(dir, file))
		if err != nil {
			return nil, fmt.Errorf("failed to load table %s: %w", file, err)
		}
		cat.Insert(table)
	}

	slog.Info("catalog loaded successfully",
		slog.String("path", dir),
		slog.Int("table_count", cat.Len()),
	)

	return cat, nil
}
