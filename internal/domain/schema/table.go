package schema

import (
	"fmt"

	"github.com/leengari/csvtables/internal/domain/data"
	"github.com/leengari/csvtables/internal/domain/errors"
	"github.com/leengari/csvtables/internal/query/aggregate"
)

// Table represents a named, ordered collection of records sharing a header
// Tables are built once by the loader and are read-only afterward.
type Table struct {
	Name     string
	Path     string   // filesystem path of the source file (empty for in-memory sources)
	Columns  []string // header, in file order
	Rows     []data.Record
	Checksum uint64 // xxh3 of the source bytes
}

// HasColumn reports whether the header contains the column
func (t *Table) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// Filter returns copies of the rows that match the predicate, in table order
// The table itself is never modified, and writes to the result do not reach it.
func (t *Table) Filter(predicate func(data.Record) bool) []data.Record {
	result := make([]data.Record, 0)
	for _, row := range t.Rows {
		if predicate(row) {
			result = append(result, row.Copy())
		}
	}
	return result
}

// Aggregate reduces a column over every row of the table
func (t *Table) Aggregate(column string, reducer aggregate.Reducer) (float64, error) {
	if !t.HasColumn(column) {
		return 0, &errors.ColumnNotFoundError{TableName: t.Name, ColumnName: column}
	}
	return Aggregate(column, reducer, t.Rows)
}

func (t *Table) String() string {
	return fmt.Sprintf("Table Name: %s (%d Rows)", t.Name, len(t.Rows))
}

// Aggregate parses column from every row as a float and applies the reducer
// to the resulting values. It fails on an empty row set instead of letting
// the reducer produce NaN or a zero.
func Aggregate(column string, reducer aggregate.Reducer, rows []data.Record) (float64, error) {
	if len(rows) == 0 {
		return 0, &errors.EmptyInputError{Column: column}
	}

	values := make([]float64, len(rows))
	for i, row := range rows {
		v, err := row.Float(column)
		if err != nil {
			if pe, ok := err.(*errors.ParseError); ok {
				pe.RowIndex = i
			}
			return 0, err
		}
		values[i] = v
	}

	return reducer(values), nil
}
