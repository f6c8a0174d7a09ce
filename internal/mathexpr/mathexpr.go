// Package mathexpr parses and evaluates two-operand arithmetic problems
// like "5 + 3" or "12 ÷ 4". It is the shared leaf under both the response
// and step validators.
package mathexpr

import (
	"fmt"
	"regexp"
	"strconv"
)

// Expression is a parsed two-operand arithmetic problem.
type Expression struct {
	First    int
	Operator string // one of + - * /
	Second   int
}

// String renders the expression in canonical "a op b" form.
func (e *Expression) String() string {
	return fmt.Sprintf("%d %s %d", e.First, e.Operator, e.Second)
}

// DivisionByZeroError distinguishes a division-by-zero from a parse failure.
type DivisionByZeroError struct{}

func (e *DivisionByZeroError) Error() string { return "division by zero" }

// problemRe matches the first "digits op digits" substring in a problem.
var problemRe = regexp.MustCompile(`(\d+)\s*([+\-×÷*/])\s*(\d+)`)

// Parse extracts the first two-operand expression from a problem string.
// × and ÷ are normalized to * and /. Returns nil if no expression is found;
// callers must treat nil as "could not parse", never as a crash.
func Parse(problem string) *Expression {
	matches := problemRe.FindStringSubmatch(problem)
	if matches == nil {
		return nil
	}

	first, _ := strconv.Atoi(matches[1])
	second, _ := strconv.Atoi(matches[3])

	return &Expression{
		First:    first,
		Operator: normalizeOp(matches[2]),
		Second:   second,
	}
}

// normalizeOp normalizes multiplication and division symbols.
func normalizeOp(op string) string {
	switch op {
	case "×":
		return "*"
	case "÷":
		return "/"
	default:
		return op
	}
}

// Evaluate applies one of the four basic operations.
func Evaluate(a int, op string, b int) (float64, error) {
	switch op {
	case "+":
		return float64(a + b), nil
	case "-":
		return float64(a - b), nil
	case "*":
		return float64(a * b), nil
	case "/":
		if b == 0 {
			return 0, &DivisionByZeroError{}
		}
		return float64(a) / float64(b), nil
	default:
		return 0, fmt.Errorf("unknown operator: %s", op)
	}
}

// Value evaluates a parsed expression.
func (e *Expression) Value() (float64, error) {
	return Evaluate(e.First, e.Operator, e.Second)
}
