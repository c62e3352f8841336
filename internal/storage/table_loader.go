package storage

import (
	"bytes"
	"encoding/csv"
	stderrors "errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/zeebo/xxh3"

	"github.com/leengari/csvtables/internal/domain/data"
	"github.com/leengari/csvtables/internal/domain/errors"
	"github.com/leengari/csvtables/internal/domain/schema"
)

// LoadTable reads a CSV file into a table named after the file's base name
func LoadTable(path string) (*schema.Table, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, &errors.LoadError{Path: path, Reason: "cannot read file", Err: err}
	}

	table, err := parse(filepath.Base(path), path, raw)
	if err != nil {
		return nil, err
	}
	table.Path = path

	slog.Info("table loaded",
		slog.String("table", table.Name),
		slog.String("path", path),
		slog.Int("rows", len(table.Rows)),
		slog.Int("columns", len(table.Columns)),
		slog.Uint64("checksum", table.Checksum),
	)

	return table, nil
}

// ParseTable reads CSV content from r into a table with the given name
func ParseTable(name string, r io.Reader) (*schema.Table, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, &errors.LoadError{Path: name, Reason: "cannot read source", Err: err}
	}
	return parse(name, name, raw)
}

func parse(name, source string, raw []byte) (*schema.Table, error) {
	reader := csv.NewReader(bytes.NewReader(raw))
	// FieldsPerRecord = 0: every record must match the header's field count
	reader.FieldsPerRecord = 0

	records, err := reader.ReadAll()
	if err != nil {
		le := &errors.LoadError{Path: source, Reason: "malformed csv", Err: err}
		var pe *csv.ParseError
		if stderrors.As(err, &pe) {
			le.Line = pe.Line
			if stderrors.Is(pe.Err, csv.ErrFieldCount) {
				le.Reason = "inconsistent column count"
			}
		}
		return nil, le
	}

	if len(records) == 0 {
		return nil, &errors.LoadError{Path: source, Reason: "missing header row"}
	}

	header := make([]string, len(records[0]))
	seen := make(map[string]bool, len(header))
	for i, col := range records[0] {
		col = strings.TrimSpace(strings.TrimPrefix(col, "\ufeff"))
		if col == "" {
			return nil, &errors.LoadError{Path: source, Line: 1, Reason: "empty column name"}
		}
		if seen[col] {
			return nil, &errors.LoadError{Path: source, Line: 1, Reason: "duplicate column name " + col}
		}
		seen[col] = true
		header[i] = col
	}

	rows := make([]data.Record, 0, len(records)-1)
	for _, values := range records[1:] {
		rows = append(rows, data.NewRecord(header, values))
	}

	return &schema.Table{
		Name:     name,
		Columns:  header,
		Rows:     rows,
		Checksum: xxh3.Hash(raw),
	}, nil
}
