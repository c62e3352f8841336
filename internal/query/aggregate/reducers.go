package aggregate

import (
	"math"

	"github.com/shopspring/decimal"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Reducer collapses a column of numbers into a single value
// Callers never pass an empty slice; schema.Aggregate guards that case.
type Reducer func(values []float64) float64

// Average returns the arithmetic mean
func Average(values []float64) float64 {
	return stat.Mean(values, nil)
}

// Minimum returns the smallest value
func Minimum(values []float64) float64 {
	return floats.Min(values)
}

// Maximum returns the largest value
func Maximum(values []float64) float64 {
	return floats.Max(values)
}

// Sum returns the total of all values
func Sum(values []float64) float64 {
	return floats.Sum(values)
}

// Count returns the number of values
func Count(values []float64) float64 {
	return float64(len(values))
}

// Round wraps a reducer so its result is rounded to the given number of
// decimal places (half away from zero). NaN and infinities pass through unchanged.
func Round(r Reducer, places int32) Reducer {
	return func(values []float64) float64 {
		v := r(values)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return v
		}
		return decimal.NewFromFloat(v).Round(places).InexactFloat64()
	}
}

// ByName resolves the reducer names accepted by the -aggregate flag
func ByName(name string) (Reducer, bool) {
	switch name {
	case "avg", "average", "mean":
		return Average, true
	case "min", "minimum":
		return Minimum, true
	case "max", "maximum":
		return Maximum, true
	case "sum":
		return Sum, true
	case "count":
		return Count, true
	}
	return nil, false
}
