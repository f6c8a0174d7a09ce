package mathexpr

import "fmt"

// Explain produces a kid-friendly sentence describing the calculation.
func Explain(e *Expression, result float64) string {
	switch e.Operator {
	case "+":
		return fmt.Sprintf("Adding %d and %d gives us %s", e.First, e.Second, formatResult(result))
	case "-":
		return fmt.Sprintf("Subtracting %d from %d gives us %s", e.Second, e.First, formatResult(result))
	case "*":
		return fmt.Sprintf("Multiplying %d by %d gives us %s", e.First, e.Second, formatResult(result))
	case "/":
		return fmt.Sprintf("Dividing %d by %d gives us %s", e.First, e.Second, formatResult(result))
	default:
		return fmt.Sprintf("The calculation %s equals %s", e, formatResult(result))
	}
}

// formatResult drops the decimal point for whole-number results.
func formatResult(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%g", v)
}
