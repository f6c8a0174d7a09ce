package mathexpr

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in     string
		first  int
		op     string
		second int
	}{
		{"5 + 3", 5, "+", 3},
		{"10 - 4", 10, "-", 4},
		{"6 × 2", 6, "*", 2},
		{"8 ÷ 2", 8, "/", 2},
		{"12*3", 12, "*", 3},
		{"what is 5 + 3 = ?", 5, "+", 3},
	}
	for _, tt := range tests {
		expr := Parse(tt.in)
		if expr == nil {
			t.Errorf("Parse(%q) = nil", tt.in)
			continue
		}
		if expr.First != tt.first || expr.Operator != tt.op || expr.Second != tt.second {
			t.Errorf("Parse(%q) = %v, want %d %s %d", tt.in, expr, tt.first, tt.op, tt.second)
		}
	}
}

func TestParseNoMatch(t *testing.T) {
	for _, in := range []string{"", "hello", "five plus three", "+ 3"} {
		if expr := Parse(in); expr != nil {
			t.Errorf("Parse(%q) = %v, want nil", in, expr)
		}
	}
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		a    int
		op   string
		b    int
		want float64
	}{
		{5, "+", 3, 8},
		{10, "-", 4, 6},
		{6, "*", 2, 12},
		{8, "/", 2, 4},
		{7, "/", 2, 3.5},
	}
	for _, tt := range tests {
		got, err := Evaluate(tt.a, tt.op, tt.b)
		if err != nil {
			t.Errorf("Evaluate(%d %s %d): %v", tt.a, tt.op, tt.b, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Evaluate(%d %s %d) = %v, want %v", tt.a, tt.op, tt.b, got, tt.want)
		}
	}
}

func TestEvaluateDivisionByZero(t *testing.T) {
	// Division by zero must be distinguishable from a parse failure.
	expr := Parse("8 / 0")
	if expr == nil {
		t.Fatal("Parse(\"8 / 0\") = nil, want parsed expression")
	}
	_, err := expr.Value()
	var dz *DivisionByZeroError
	if !errors.As(err, &dz) {
		t.Fatalf("got %v, want DivisionByZeroError", err)
	}
}

func TestEvaluateUnknownOperator(t *testing.T) {
	_, err := Evaluate(1, "%", 2)
	if err == nil {
		t.Fatal("expected error for unknown operator")
	}
	var dz *DivisionByZeroError
	if errors.As(err, &dz) {
		t.Fatal("unknown operator must not report division by zero")
	}
}

func TestExplain(t *testing.T) {
	tests := []struct {
		expr *Expression
		want string
	}{
		{&Expression{5, "+", 3}, "Adding 5 and 3 gives us 8"},
		{&Expression{10, "-", 4}, "Subtracting 4 from 10 gives us 6"},
		{&Expression{6, "*", 2}, "Multiplying 6 by 2 gives us 12"},
		{&Expression{7, "/", 2}, "Dividing 7 by 2 gives us 3.5"},
	}
	for _, tt := range tests {
		result, err := tt.expr.Value()
		if err != nil {
			t.Fatalf("Value(%v): %v", tt.expr, err)
		}
		if got := Explain(tt.expr, result); got != tt.want {
			t.Errorf("Explain(%v) = %q, want %q", tt.expr, got, tt.want)
		}
	}
}
