package data

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/leengari/csvtables/internal/domain/errors"
)

// Record represents a single table row as read from a CSV line
// Key = column name, Value = raw cell text
type Record map[string]string

// NewRecord zips a header with one line of values
// The caller guarantees len(header) == len(values)
func NewRecord(header, values []string) Record {
	r := make(Record, len(header))
	for i, col := range header {
		r[col] = values[i]
	}
	return r
}

// Get returns the raw value of a column
func (r Record) Get(column string) (string, bool) {
	v, ok := r[column]
	return v, ok
}

// Float parses a column as a finite floating-point number
func (r Record) Float(column string) (float64, error) {
	raw, ok := r[column]
	if !ok {
		return 0, &errors.ColumnNotFoundError{ColumnName: column}
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, &errors.ParseError{Column: column, Value: raw, RowIndex: -1, Err: err}
	}
	// ParseFloat accepts inf and NaN; neither is a usable measurement
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, &errors.ParseError{Column: column, Value: raw, RowIndex: -1}
	}
	return f, nil
}

// Copy creates a copy of the record to prevent mutation
func (r Record) Copy() Record {
	c := make(Record, len(r))
	for k, v := range r {
		c[k] = v
	}
	return c
}

// Format renders the record in the given column order,
// e.g. {'city': 'Oslo', 'latitude': '59.9'}
func (r Record) Format(columns []string) string {
	var b strings.Builder
	b.WriteByte('{')
	for i, col := range columns {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "'%s': '%s'", col, r[col])
	}
	b.WriteByte('}')
	return b.String()
}
