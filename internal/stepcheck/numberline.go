package stepcheck

import (
	"fmt"

	"github.com/bhairavmehta/MathTeacherAgent/internal/mathexpr"
)

// ValidateNumberLineStep checks the next position a student proposes on the
// number line against the expected counting trajectory for the problem.
// expectedSequence is informational only; correctness is derived from the
// parsed problem.
func (v *Validator) ValidateNumberLineStep(problem, operation string, currentSteps []int, proposedStep int, expectedSequence []int) Outcome {
	expr := mathexpr.Parse(problem)
	if expr == nil {
		return guidanceFallback(fmt.Sprintf("could not parse the math problem: %q", problem))
	}

	if len(currentSteps) == 0 {
		return validateFirstStep(expr, proposedStep)
	}
	return validateSubsequentStep(expr, currentSteps, proposedStep)
}

// validateFirstStep checks that the student starts at the first operand.
func validateFirstStep(expr *mathexpr.Expression, proposedStep int) Outcome {
	dir := stepDirection(expr.Operator)

	if proposedStep == expr.First {
		word := "forward"
		if dir < 0 {
			word = "backward"
		}
		return Outcome{
			Result:        ResultCorrect,
			IsCorrect:     true,
			Feedback:      fmt.Sprintf("Perfect! You started at %d. Now let's count %s!", expr.First, word),
			Hint:          fmt.Sprintf("Great start! Next, click on %d.", expr.First+dir),
			GuidanceLevel: GuidanceEncouraging,
		}
	}

	return Outcome{
		Result:        ResultIncorrect,
		IsCorrect:     false,
		Feedback:      fmt.Sprintf("Let's start at the first number: %d", expr.First),
		Hint:          fmt.Sprintf("Click on %d to begin the problem.", expr.First),
		MistakeType:   MistakeWrongStartingNumber,
		GuidanceLevel: GuidanceSpecific,
	}
}

// validateSubsequentStep checks a step after the starting position. The
// first entry in currentSteps is the starting position, so the number of
// counting steps taken so far is len(currentSteps)-1.
func validateSubsequentStep(expr *mathexpr.Expression, currentSteps []int, proposedStep int) Outcome {
	dir := stepDirection(expr.Operator)
	lastPosition := currentSteps[len(currentSteps)-1]
	expectedNext := lastPosition + dir
	stepsTaken := len(currentSteps) - 1

	if proposedStep != expectedNext {
		return classifyNumberLineMistake(expr.Operator, lastPosition, expectedNext, proposedStep)
	}

	remaining := expr.Second - stepsTaken - 1
	if remaining <= 0 {
		finalAnswer := expr.First + dir*expr.Second
		return Outcome{
			Result:           ResultCorrect,
			IsCorrect:        true,
			Feedback:         fmt.Sprintf("🎉 Fantastic! You solved %d %s %d = %d!", expr.First, expr.Operator, expr.Second, finalAnswer),
			Hint:             "Excellent work! You completed the problem step by step.",
			GuidanceLevel:    GuidanceCelebration,
			ProblemCompleted: true,
			FinalAnswer:      finalAnswer,
		}
	}

	plural := ""
	if remaining > 1 {
		plural = "s"
	}
	return Outcome{
		Result:         ResultCorrect,
		IsCorrect:      true,
		Feedback:       fmt.Sprintf("Great! Keep going - %d more step%s.", remaining, plural),
		Hint:           fmt.Sprintf("Perfect! Now click on %d.", expectedNext+dir),
		GuidanceLevel:  GuidanceEncouraging,
		RemainingSteps: remaining,
	}
}

// classifyNumberLineMistake names the miss and produces operator-specific,
// position-specific corrective hints.
func classifyNumberLineMistake(operator string, lastPosition, expectedNext, proposedStep int) Outcome {
	switch {
	case operator == "+" && proposedStep > expectedNext:
		return Outcome{
			Result:        ResultIncorrect,
			IsCorrect:     false,
			Feedback:      "Slow down! Let's count one step at a time.",
			Hint:          fmt.Sprintf("Try clicking on %d instead of %d.", expectedNext, proposedStep),
			MistakeType:   MistakeSkippingNumbers,
			GuidanceLevel: GuidanceGentle,
		}

	case operator == "+" && proposedStep < lastPosition:
		return Outcome{
			Result:        ResultIncorrect,
			IsCorrect:     false,
			Feedback:      "For addition, we count forward (to the right)!",
			Hint:          fmt.Sprintf("Click on %d to continue counting forward.", expectedNext),
			MistakeType:   MistakeWrongDirection,
			GuidanceLevel: GuidanceSpecific,
		}

	case operator == "-" && proposedStep > lastPosition:
		return Outcome{
			Result:        ResultIncorrect,
			IsCorrect:     false,
			Feedback:      "For subtraction, we count backward (to the left)!",
			Hint:          fmt.Sprintf("Click on %d to continue counting backward.", expectedNext),
			MistakeType:   MistakeWrongDirection,
			GuidanceLevel: GuidanceSpecific,
		}

	case operator == "-" && proposedStep < expectedNext:
		return Outcome{
			Result:        ResultIncorrect,
			IsCorrect:     false,
			Feedback:      "Let's count one step at a time.",
			Hint:          fmt.Sprintf("Try clicking on %d instead of %d.", expectedNext, proposedStep),
			MistakeType:   MistakeSkippingNumbers,
			GuidanceLevel: GuidanceGentle,
		}

	default:
		direction := "forward"
		if operator != "+" {
			direction = "backward"
		}
		return Outcome{
			Result:        ResultIncorrect,
			IsCorrect:     false,
			Feedback:      fmt.Sprintf("Not quite! Let's count %s one number at a time.", direction),
			Hint:          fmt.Sprintf("Click on %d to continue.", expectedNext),
			MistakeType:   MistakeIncorrectSequence,
			GuidanceLevel: GuidanceHelpful,
		}
	}
}

// stepDirection is +1 for addition and -1 otherwise. The number line only
// hosts addition and subtraction.
func stepDirection(operator string) int {
	if operator == "+" {
		return 1
	}
	return -1
}
