package mathexpr

import (
	"errors"
	"fmt"

	"github.com/bhairavmehta/MathTeacherAgent/internal/sanitize"
)

// Calculation is the structured result of the calculator tool. It never
// fails hard: every failure path yields an Err plus a kid-friendly
// Explanation the tutor can relay as-is.
type Calculation struct {
	Expression  string   `json:"expression"`
	Result      *float64 `json:"result"`
	Err         string   `json:"error,omitempty"`
	Explanation string   `json:"explanation"`
}

// Calculate sanitizes, parses, and evaluates a raw expression, producing
// the operation-specific explanation for the result.
func Calculate(raw string) Calculation {
	clean, err := sanitize.MathExpression(raw)
	if err != nil {
		return Calculation{
			Expression:  raw,
			Err:         fmt.Sprintf("Validation error: %v", err),
			Explanation: "The expression contains invalid or potentially dangerous content. Please use only numbers and basic math operations (+, -, *, /).",
		}
	}

	expr := Parse(clean)
	if expr == nil {
		return Calculation{
			Expression:  clean,
			Err:         "no arithmetic expression found",
			Explanation: "There was an error with this calculation. Please check the expression.",
		}
	}

	result, err := expr.Value()
	if err != nil {
		var dz *DivisionByZeroError
		if errors.As(err, &dz) {
			return Calculation{
				Expression:  clean,
				Err:         "Cannot divide by zero",
				Explanation: "Division by zero is not allowed in mathematics.",
			}
		}
		return Calculation{
			Expression:  clean,
			Err:         fmt.Sprintf("Error calculating: %v", err),
			Explanation: "There was an error with this calculation. Please check the expression.",
		}
	}

	return Calculation{
		Expression:  clean,
		Result:      &result,
		Explanation: Explain(expr, result),
	}
}
