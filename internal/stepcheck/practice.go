package stepcheck

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/bhairavmehta/MathTeacherAgent/internal/mathexpr"
)

// answerTolerance is how close a numeric answer must be to count as exact.
const answerTolerance = 0.01

// closeAnswerMargin is the widest miss still reported as "very close".
const closeAnswerMargin = 2.0

// ValidatePracticeStep checks one answer attempt on a practice problem.
// stepNumber is the 1-based attempt count; later attempts get more specific
// guidance.
func (v *Validator) ValidatePracticeStep(problem, operation, userInput string, stepNumber int) Outcome {
	input := strings.TrimSpace(userInput)
	if input == "" {
		return Outcome{
			Result:        ResultNeedsGuidance,
			IsCorrect:     false,
			Feedback:      "Please enter your answer to continue.",
			Hint:          "Take your time and think about the problem step by step.",
			GuidanceLevel: GuidanceGentle,
		}
	}

	userAnswer, err := strconv.ParseFloat(input, 64)
	if err != nil {
		return Outcome{
			Result:        ResultIncorrect,
			IsCorrect:     false,
			Feedback:      "Please enter a valid number.",
			Hint:          "Make sure you're entering just the number, like '8' or '12'.",
			MistakeType:   MistakeInvalidInput,
			GuidanceLevel: GuidanceSpecific,
		}
	}

	expr := mathexpr.Parse(problem)
	if expr == nil {
		return guidanceFallback(fmt.Sprintf("could not parse the math problem: %q", problem))
	}

	correct, err := expr.Value()
	if err != nil {
		return guidanceFallback(err.Error())
	}

	if math.Abs(userAnswer-correct) < answerTolerance {
		return Outcome{
			Result:        ResultCorrect,
			IsCorrect:     true,
			Feedback:      fmt.Sprintf("🎉 Excellent! %s = %s", problem, formatAnswer(correct)),
			Hint:          "Great job! You solved it correctly!",
			GuidanceLevel: GuidanceCelebration,
			CorrectAnswer: &correct,
		}
	}

	return classifyPracticeMistake(expr, userAnswer, correct, stepNumber)
}

// classifyPracticeMistake runs the operator-specific mistake checks, then
// the magnitude fallbacks.
func classifyPracticeMistake(expr *mathexpr.Expression, userAnswer, correct float64, stepNumber int) Outcome {
	switch expr.Operator {
	case "+":
		if userAnswer == float64(expr.First) || userAnswer == float64(expr.Second) {
			return Outcome{
				Result:        ResultIncorrect,
				IsCorrect:     false,
				Feedback:      "You entered one of the numbers from the problem. For addition, we need to add them together!",
				Hint:          fmt.Sprintf("Try adding %d + %d. What do you get?", expr.First, expr.Second),
				MistakeType:   MistakeNotAdding,
				GuidanceLevel: GuidanceSpecific,
			}
		}
		if math.Abs(userAnswer-float64(expr.First-expr.Second)) < answerTolerance {
			return Outcome{
				Result:        ResultIncorrect,
				IsCorrect:     false,
				Feedback:      "It looks like you subtracted instead of adding!",
				Hint:          fmt.Sprintf("For addition, we add the numbers together: %d + %d.", expr.First, expr.Second),
				MistakeType:   MistakeWrongOperation,
				GuidanceLevel: GuidanceSpecific,
			}
		}

	case "-":
		if math.Abs(userAnswer-float64(expr.First+expr.Second)) < answerTolerance {
			return Outcome{
				Result:        ResultIncorrect,
				IsCorrect:     false,
				Feedback:      "It looks like you added instead of subtracting!",
				Hint:          fmt.Sprintf("For subtraction, we take away: %d - %d.", expr.First, expr.Second),
				MistakeType:   MistakeWrongOperation,
				GuidanceLevel: GuidanceSpecific,
			}
		}
	}

	if math.Abs(userAnswer-correct) <= closeAnswerMargin {
		return Outcome{
			Result:        ResultPartiallyCorrect,
			IsCorrect:     false,
			Feedback:      fmt.Sprintf("You're very close! The answer is %s, you got %s.", formatAnswer(correct), formatAnswer(userAnswer)),
			Hint:          "Try again - you're almost there!",
			MistakeType:   MistakeCloseAnswer,
			GuidanceLevel: GuidanceEncouraging,
		}
	}

	level := GuidanceGentle
	if stepNumber > 1 {
		level = GuidanceSpecific
	}
	return Outcome{
		Result:        ResultIncorrect,
		IsCorrect:     false,
		Feedback:      fmt.Sprintf("Not quite right. The correct answer is %s.", formatAnswer(correct)),
		Hint:          fmt.Sprintf("Try working through %d %s %d step by step.", expr.First, expr.Operator, expr.Second),
		MistakeType:   MistakeIncorrectCalculation,
		GuidanceLevel: level,
		CorrectAnswer: &correct,
	}
}

// formatAnswer drops the decimal point for whole-number answers.
func formatAnswer(v float64) string {
	if v == math.Trunc(v) {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
