package testutil

import (
	"errors"
	"math"
	"testing"
)

// AssertRowCount checks if the result has the expected number of rows
func AssertRowCount(t *testing.T, actual, expected int, context string) {
	t.Helper()
	if actual != expected {
		t.Errorf("%s: expected %d rows, got %d", context, expected, actual)
	}
}

// AssertNoError checks that an error is nil
func AssertNoError(t *testing.T, err error, context string) {
	t.Helper()
	if err != nil {
		t.Fatalf("%s: expected no error, got: %v", context, err)
	}
}

// AssertErrorIs checks that err matches the target kind
func AssertErrorIs(t *testing.T, err, target error, context string) {
	t.Helper()
	if err == nil {
		t.Fatalf("%s: expected %v, got nil", context, target)
	}
	if !errors.Is(err, target) {
		t.Fatalf("%s: expected %v, got: %v", context, target, err)
	}
}

// AssertFloat checks a float within a small tolerance
func AssertFloat(t *testing.T, actual, expected float64, context string) {
	t.Helper()
	if math.Abs(actual-expected) > 1e-9 {
		t.Errorf("%s: expected %v, got %v", context, expected, actual)
	}
}

// AssertStrings checks two string slices for equality
func AssertStrings(t *testing.T, actual, expected []string, context string) {
	t.Helper()
	if len(actual) != len(expected) {
		t.Fatalf("%s: expected %v, got %v", context, expected, actual)
	}
	for i := range expected {
		if actual[i] != expected[i] {
			t.Fatalf("%s: expected %v, got %v", context, expected, actual)
		}
	}
}
