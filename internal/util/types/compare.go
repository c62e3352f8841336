package types

import (
	"strconv"
	"strings"
)

// CompareValues evaluates `left op right` for two raw cell values.
// When both sides parse as numbers the comparison is numeric,
// otherwise it falls back to lexical string comparison.
// Unknown operators never match.
func CompareValues(left, op, right string) bool {
	lf, lerr := strconv.ParseFloat(strings.TrimSpace(left), 64)
	rf, rerr := strconv.ParseFloat(strings.TrimSpace(right), 64)
	if lerr == nil && rerr == nil {
		return compareOrdered(lf, op, rf)
	}
	return compareOrdered(left, op, right)
}

// IsOperator reports whether op is a supported comparison operator
func IsOperator(op string) bool {
	switch op {
	case "=", "==", "!=", "<>", "<", "<=", ">", ">=":
		return true
	}
	return false
}

func compareOrdered[T float64 | string](a T, op string, b T) bool {
	switch op {
	case "=", "==":
		return a == b
	case "!=", "<>":
		return a != b
	case "<":
		return a < b
	case "<=":
		return a <= b
	case ">":
		return a > b
	case ">=":
		return a >= b
	}
	return false
}
