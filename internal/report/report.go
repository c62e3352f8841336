// Package report prints the city temperature report.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/leengari/csvtables/internal/domain/data"
	"github.com/leengari/csvtables/internal/domain/schema"
	"github.com/leengari/csvtables/internal/engine"
	"github.com/leengari/csvtables/internal/planner/predicate"
	"github.com/leengari/csvtables/internal/query/aggregate"
)

// Column names of the Cities dataset
const (
	ColumnCity        = "city"
	ColumnCountry     = "country"
	ColumnLatitude    = "latitude"
	ColumnLongitude   = "longitude"
	ColumnTemperature = "temperature"
)

// Options selects what the report covers
type Options struct {
	FocusCountry string   // country listed city by city
	Countries    []string // countries given an Average/Minimum/Maximum block
	MinLatitude  float64  // cities at or above this latitude are printed in full
}

// DefaultOptions mirrors the classic report: Italy in focus, Italy and Sweden summarised,
// cities from latitude 60 north listed
func DefaultOptions() Options {
	return Options{
		FocusCountry: "Italy",
		Countries:    []string{"Italy", "Sweden"},
		MinLatitude:  60.0,
	}
}

// Writer prints report sections for a cities table
type Writer struct {
	out    io.Writer
	eng    *engine.Engine
	cities *schema.Table
}

// NewWriter creates a report writer
func NewWriter(out io.Writer, eng *engine.Engine, cities *schema.Table) *Writer {
	return &Writer{out: out, eng: eng, cities: cities}
}

// Write prints the full report
func (w *Writer) Write(opts Options) error {
	if err := w.writeOverallAverage(); err != nil {
		return err
	}
	if err := w.writeFocus(opts.FocusCountry); err != nil {
		return err
	}
	if err := w.writeNorthern(opts.MinLatitude); err != nil {
		return err
	}

	summaries, err := Summaries(w.eng, w.cities, ColumnTemperature, opts.Countries)
	if err != nil {
		return err
	}
	w.WriteSummaries(summaries)
	return nil
}

func (w *Writer) writeOverallAverage() error {
	avg, err := w.eng.Aggregate(ColumnTemperature, aggregate.Average, w.cities.Rows)
	if err != nil {
		return fmt.Errorf("average temperature: %w", err)
	}
	fmt.Fprintln(w.out, "The average temperature of all the cities:")
	fmt.Fprintf(w.out, "%.4f\n", avg)
	return nil
}

func (w *Writer) writeFocus(country string) error {
	rows := w.eng.Filter(w.cities, predicate.Equals(ColumnCountry, country))

	fmt.Fprintf(w.out, "\nAll the cities in %s:\n", country)
	fmt.Fprintln(w.out, FormatList(column(rows, ColumnCity)))

	if len(rows) == 0 {
		fmt.Fprintf(w.out, "\nno cities found in %s\n", country)
		return nil
	}

	stats := []struct {
		label   string
		reducer aggregate.Reducer
	}{
		{"average", aggregate.Average},
		{"max", aggregate.Maximum},
		{"min", aggregate.Minimum},
	}
	for _, s := range stats {
		v, err := w.eng.Aggregate(ColumnTemperature, s.reducer, rows)
		if err != nil {
			return fmt.Errorf("%s temperature in %s: %w", s.label, country, err)
		}
		fmt.Fprintf(w.out, "\nThe %s temperature of all the cities in %s :\n", s.label, country)
		fmt.Fprintf(w.out, "%.4f\n", v)
	}
	fmt.Fprintln(w.out)
	return nil
}

func (w *Writer) writeNorthern(minLatitude float64) error {
	pred, err := predicate.Compare(ColumnLatitude, ">=", strconv.FormatFloat(minLatitude, 'f', -1, 64))
	if err != nil {
		return err
	}
	w.WriteRows(w.eng.Filter(w.cities, pred))
	return nil
}

// WriteRows prints each row on its own line in header order
func (w *Writer) WriteRows(rows []data.Record) {
	for _, row := range rows {
		fmt.Fprintln(w.out, row.Format(w.cities.Columns))
	}
}

// WriteSummaries prints one Average/Minimum/Maximum block per country
func (w *Writer) WriteSummaries(summaries []Summary) {
	for _, s := range summaries {
		fmt.Fprintf(w.out, "\nTemperature in %s\n", s.Country)
		if s.Count == 0 {
			fmt.Fprintln(w.out, "no cities found")
			continue
		}
		fmt.Fprintf(w.out, "Average: %s\n", FormatNumber(s.Average))
		fmt.Fprintf(w.out, "Minimum: %s\n", FormatNumber(s.Minimum))
		fmt.Fprintf(w.out, "Maximum: %s\n", FormatNumber(s.Maximum))
	}
}

// FormatNumber prints the shortest representation of v that keeps a decimal
// point, e.g. 10.0, 12.5, 7.1234
func FormatNumber(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eEIN") {
		s += ".0"
	}
	return s
}

// FormatList prints values as a bracketed list of quoted strings, e.g. ['Rome', 'Turin']
func FormatList(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = "'" + v + "'"
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}

func column(rows []data.Record, name string) []string {
	out := make([]string, len(rows))
	for i, row := range rows {
		out[i], _ = row.Get(name)
	}
	return out
}
