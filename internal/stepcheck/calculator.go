package stepcheck

import "strings"

// operatorTokens are the keystroke tokens treated as operators, including
// the display forms × and ÷ the calculator widget emits.
var operatorTokens = map[string]bool{
	"+": true, "-": true, "*": true, "/": true, "×": true, "÷": true,
}

// ValidateCalculatorStep scans the keystroke sequence for the two operator
// anomalies worth interrupting a student over. An empty expression is
// trivially correct: the calculator is simply ready.
func (v *Validator) ValidateCalculatorStep(expression string, operationSequence []string, currentInput string) Outcome {
	if strings.TrimSpace(expression) == "" {
		return Outcome{
			Result:        ResultCorrect,
			IsCorrect:     true,
			Feedback:      "Ready to calculate!",
			Hint:          "Enter your first number to get started.",
			GuidanceLevel: GuidanceGentle,
		}
	}

	if anomaly := analyzeOperatorSequence(operationSequence); anomaly != nil {
		return Outcome{
			Result:        ResultNeedsGuidance,
			IsCorrect:     false,
			Feedback:      "Let's double-check that calculation: " + anomaly.feedback,
			Hint:          anomaly.hint,
			MistakeType:   anomaly.mistake,
			GuidanceLevel: GuidanceHelpful,
		}
	}

	return Outcome{
		Result:        ResultCorrect,
		IsCorrect:     true,
		Feedback:      "Looking good! Your calculation is on track.",
		Hint:          "Continue with your calculation.",
		GuidanceLevel: GuidanceEncouraging,
	}
}

type operatorAnomaly struct {
	mistake  MistakeType
	feedback string
	hint     string
}

// analyzeOperatorSequence returns the first anomaly found, checking
// repeated operators before consecutive ones. Sequences with fewer than
// two tokens carry nothing to analyze.
func analyzeOperatorSequence(sequence []string) *operatorAnomaly {
	if len(sequence) < 2 {
		return nil
	}

	var operators []string
	distinct := map[string]bool{}
	for _, tok := range sequence {
		if operatorTokens[tok] {
			operators = append(operators, tok)
			distinct[tok] = true
		}
	}

	// Some repetition is normal (e.g. "1 + 2 + 3"); flag only when the
	// total operator count exceeds twice the distinct count.
	if len(operators) > len(distinct)*2 {
		return &operatorAnomaly{
			mistake:  MistakeRepeatedOperators,
			feedback: "Looks like you entered the same operator multiple times.",
			hint:     "Double-check your calculation - you might have an extra operator.",
		}
	}

	for i := 0; i < len(sequence)-1; i++ {
		if operatorTokens[sequence[i]] && operatorTokens[sequence[i+1]] {
			return &operatorAnomaly{
				mistake:  MistakeConsecutiveOperators,
				feedback: "You have two operators in a row.",
				hint:     "Make sure to enter a number between each operator.",
			}
		}
	}

	return nil
}
