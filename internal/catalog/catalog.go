package catalog

import (
	"log/slog"
	"sort"
	"sync"

	"golang.org/x/exp/maps"

	"github.com/leengari/csvtables/internal/domain/errors"
	"github.com/leengari/csvtables/internal/domain/schema"
)

// Catalog manages loaded tables by name in a thread-safe way
type Catalog struct {
	mu     sync.RWMutex
	tables map[string]*schema.Table
}

// New creates an empty catalog
func New() *Catalog {
	return &Catalog{
		tables: make(map[string]*schema.Table),
	}
}

// Insert registers a table under its name
// A table already registered under the same name is replaced.
func (c *Catalog) Insert(table *schema.Table) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if prev, ok := c.tables[table.Name]; ok {
		slog.Debug("replacing table",
			"table", table.Name,
			"old_checksum", prev.Checksum,
			"new_checksum", table.Checksum,
			"unchanged", prev.Checksum == table.Checksum,
		)
	}
	c.tables[table.Name] = table
}

// Search returns the table registered under exactly name,
// or a *errors.NotFoundError
func (c *Catalog) Search(name string) (*schema.Table, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	table, ok := c.tables[name]
	if !ok {
		return nil, &errors.NotFoundError{Name: name}
	}
	return table, nil
}

// Names returns the registered table names in sorted order
func (c *Catalog) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	names := maps.Keys(c.tables)
	sort.Strings(names)
	return names
}

// Len returns the number of registered tables
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.tables)
}
