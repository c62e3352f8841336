package report

import (
	"fmt"

	"github.com/leengari/csvtables/internal/domain/schema"
	"github.com/leengari/csvtables/internal/engine"
	"github.com/leengari/csvtables/internal/planner/predicate"
	"github.com/leengari/csvtables/internal/query/aggregate"
)

// Summary holds the temperature statistics of one country's cities
// Count == 0 means the country had no cities and the statistics are unset.
type Summary struct {
	Country string
	Count   int
	Average float64
	Minimum float64
	Maximum float64
}

// Summaries aggregates column over the cities of each country
// Every statistic is computed over that country's filtered rows only.
func Summaries(eng *engine.Engine, cities *schema.Table, column string, countries []string) ([]Summary, error) {
	out := make([]Summary, 0, len(countries))

	for _, country := range countries {
		rows := eng.Filter(cities, predicate.Equals(ColumnCountry, country))
		s := Summary{Country: country, Count: len(rows)}
		if len(rows) == 0 {
			out = append(out, s)
			continue
		}

		var err error
		if s.Average, err = eng.Aggregate(column, aggregate.Round(aggregate.Average, 4), rows); err != nil {
			return nil, fmt.Errorf("average for %s: %w", country, err)
		}
		if s.Minimum, err = eng.Aggregate(column, aggregate.Minimum, rows); err != nil {
			return nil, fmt.Errorf("minimum for %s: %w", country, err)
		}
		if s.Maximum, err = eng.Aggregate(column, aggregate.Maximum, rows); err != nil {
			return nil, fmt.Errorf("maximum for %s: %w", country, err)
		}
		out = append(out, s)
	}

	return out, nil
}
