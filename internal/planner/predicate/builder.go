package predicate

import (
	"fmt"

	"github.com/leengari/csvtables/internal/domain/data"
	"github.com/leengari/csvtables/internal/util/types"
)

// PredicateFunc is a function that tests whether a row matches certain criteria
type PredicateFunc func(data.Record) bool

// All matches every row
func All(data.Record) bool { return true }

// Equals matches rows whose column holds exactly value
func Equals(column, value string) PredicateFunc {
	return func(row data.Record) bool {
		v, ok := row[column]
		return ok && v == value
	}
}

// Compare builds a predicate for `column op literal`
// Supports: =, ==, !=, <>, <, <=, >, >=
// Rows missing the column never match.
func Compare(column, op, literal string) (PredicateFunc, error) {
	if !types.IsOperator(op) {
		return nil, fmt.Errorf("unsupported comparison operator %q", op)
	}

	return func(row data.Record) bool {
		val, ok := row[column]
		if !ok {
			return false
		}
		return types.CompareValues(val, op, literal)
	}, nil
}

// And matches rows accepted by every predicate, evaluated left to right
func And(preds ...PredicateFunc) PredicateFunc {
	return func(row data.Record) bool {
		for _, p := range preds {
			if !p(row) {
				return false
			}
		}
		return true
	}
}

// Or matches rows accepted by at least one predicate, evaluated left to right
func Or(preds ...PredicateFunc) PredicateFunc {
	return func(row data.Record) bool {
		for _, p := range preds {
			if p(row) {
				return true
			}
		}
		return false
	}
}

// Not inverts a predicate
func Not(pred PredicateFunc) PredicateFunc {
	return func(row data.Record) bool {
		return !pred(row)
	}
}
