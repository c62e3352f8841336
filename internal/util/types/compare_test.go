package types

import "testing"

func TestCompareValues(t *testing.T) {
	tests := []struct {
		left, op, right string
		expected        bool
	}{
		{"60.0", ">=", "60", true},
		{"59.9", ">=", "60.0", false},
		{"10", "<", "9", false}, // numeric, not lexical
		{"10", "=", "10.0", true},
		{"Italy", "=", "Italy", true},
		{"Italy", "!=", "Sweden", true},
		{"Italy", "<>", "Italy", false},
		{"Oslo", "<", "Rome", true},
		{"-1.4", "<", "0", true},
		{"1", "~", "1", false},
	}

	for _, tt := range tests {
		if got := CompareValues(tt.left, tt.op, tt.right); got != tt.expected {
			t.Errorf("%s %s %s: expected %v, got %v", tt.left, tt.op, tt.right, tt.expected, got)
		}
	}
}

func TestIsOperator(t *testing.T) {
	if !IsOperator(">=") || !IsOperator("<>") {
		t.Error("expected >= and <> to be operators")
	}
	if IsOperator("=>") {
		t.Error("=> is not an operator")
	}
}
