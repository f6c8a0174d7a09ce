package mathexpr

import (
	"strings"
	"testing"
)

func TestCalculate(t *testing.T) {
	tests := []struct {
		in          string
		result      float64
		explanation string
	}{
		{"5 + 3", 8, "Adding 5 and 3 gives us 8"},
		{"10 - 4", 6, "Subtracting 4 from 10 gives us 6"},
		{"6 × 2", 12, "Multiplying 6 by 2 gives us 12"},
		{"7 / 2", 3.5, "Dividing 7 by 2 gives us 3.5"},
	}
	for _, tt := range tests {
		calc := Calculate(tt.in)
		if calc.Err != "" {
			t.Errorf("Calculate(%q): %s", tt.in, calc.Err)
			continue
		}
		if calc.Result == nil || *calc.Result != tt.result {
			t.Errorf("Calculate(%q) result = %v, want %v", tt.in, calc.Result, tt.result)
		}
		if calc.Explanation != tt.explanation {
			t.Errorf("Calculate(%q) explanation = %q, want %q", tt.in, calc.Explanation, tt.explanation)
		}
	}
}

func TestCalculateNormalizesExpression(t *testing.T) {
	calc := Calculate(" 6 × 2 ")
	if calc.Expression != "6 * 2" {
		t.Errorf("expression = %q, want %q", calc.Expression, "6 * 2")
	}
}

func TestCalculateRejectsUnsafeInput(t *testing.T) {
	calc := Calculate("5 + 3; DROP TABLE users")
	if calc.Err == "" || calc.Result != nil {
		t.Fatalf("unsafe input produced a result: %+v", calc)
	}
	if !strings.Contains(calc.Err, "Validation error") {
		t.Errorf("err = %q, want validation error", calc.Err)
	}
	if !strings.Contains(calc.Explanation, "invalid or potentially dangerous") {
		t.Errorf("explanation = %q", calc.Explanation)
	}
}

func TestCalculateDivisionByZero(t *testing.T) {
	calc := Calculate("8 / 0")
	if calc.Result != nil {
		t.Fatal("division by zero produced a result")
	}
	if calc.Err != "Cannot divide by zero" {
		t.Errorf("err = %q, want %q", calc.Err, "Cannot divide by zero")
	}
	if calc.Explanation != "Division by zero is not allowed in mathematics." {
		t.Errorf("explanation = %q", calc.Explanation)
	}
}

func TestCalculateNoExpression(t *testing.T) {
	// Passes the character class but carries no two-operand expression.
	calc := Calculate("5 5 5")
	if calc.Result != nil {
		t.Fatal("unparsable input produced a result")
	}
	if !strings.Contains(calc.Err, "no arithmetic expression") {
		t.Errorf("err = %q", calc.Err)
	}
}
