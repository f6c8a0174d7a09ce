package stepcheck

import "testing"

func TestPracticeCorrectAnswer(t *testing.T) {
	v := New()
	out := v.ValidatePracticeStep("5 + 3", "addition", "8", 1)

	if !out.IsCorrect || out.Result != ResultCorrect {
		t.Fatalf("got %+v, want correct", out)
	}
	if out.GuidanceLevel != GuidanceCelebration {
		t.Errorf("guidance = %q, want %q", out.GuidanceLevel, GuidanceCelebration)
	}
	if out.CorrectAnswer == nil || *out.CorrectAnswer != 8 {
		t.Errorf("correct answer = %v, want 8", out.CorrectAnswer)
	}
}

func TestPracticeEmptyInput(t *testing.T) {
	v := New()
	out := v.ValidatePracticeStep("5 + 3", "addition", "   ", 1)

	if out.Result != ResultNeedsGuidance {
		t.Fatalf("result = %q, want %q", out.Result, ResultNeedsGuidance)
	}
	if out.GuidanceLevel != GuidanceGentle {
		t.Errorf("guidance = %q, want %q", out.GuidanceLevel, GuidanceGentle)
	}
}

func TestPracticeNonNumericInput(t *testing.T) {
	v := New()
	out := v.ValidatePracticeStep("5 + 3", "addition", "eight", 1)

	if out.IsCorrect {
		t.Fatal("non-numeric input accepted")
	}
	if out.MistakeType != MistakeInvalidInput {
		t.Errorf("mistake type = %q, want %q", out.MistakeType, MistakeInvalidInput)
	}
}

func TestPracticeMistakeClassification(t *testing.T) {
	tests := []struct {
		name    string
		problem string
		input   string
		want    MistakeType
		result  Result
	}{
		{"echoed an operand", "5 + 3", "5", MistakeNotAdding, ResultIncorrect},
		{"subtracted instead of adding", "5 + 3", "2", MistakeWrongOperation, ResultIncorrect},
		{"added instead of subtracting", "9 - 4", "13", MistakeWrongOperation, ResultIncorrect},
		{"off by one", "5 + 3", "9", MistakeCloseAnswer, ResultPartiallyCorrect},
		{"way off", "5 + 3", "20", MistakeIncorrectCalculation, ResultIncorrect},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := New()
			out := v.ValidatePracticeStep(tt.problem, "", tt.input, 1)
			if out.IsCorrect {
				t.Fatalf("wrong answer accepted: %+v", out)
			}
			if out.MistakeType != tt.want {
				t.Errorf("mistake type = %q, want %q", out.MistakeType, tt.want)
			}
			if out.Result != tt.result {
				t.Errorf("result = %q, want %q", out.Result, tt.result)
			}
		})
	}
}

func TestPracticeGuidanceEscalates(t *testing.T) {
	v := New()

	first := v.ValidatePracticeStep("5 + 3", "addition", "20", 1)
	if first.GuidanceLevel != GuidanceGentle {
		t.Errorf("attempt 1 guidance = %q, want %q", first.GuidanceLevel, GuidanceGentle)
	}

	second := v.ValidatePracticeStep("5 + 3", "addition", "20", 2)
	if second.GuidanceLevel != GuidanceSpecific {
		t.Errorf("attempt 2 guidance = %q, want %q", second.GuidanceLevel, GuidanceSpecific)
	}
}

func TestPracticeFractionalAnswer(t *testing.T) {
	v := New()
	out := v.ValidatePracticeStep("7 / 2", "division", "3.5", 1)

	if !out.IsCorrect {
		t.Fatalf("got %+v, want correct", out)
	}
}

func TestPracticeDivisionByZeroFallsBack(t *testing.T) {
	v := New()
	out := v.ValidatePracticeStep("8 / 0", "division", "4", 1)

	if out.Result != ResultNeedsGuidance {
		t.Fatalf("result = %q, want %q", out.Result, ResultNeedsGuidance)
	}
	if out.MistakeType != MistakeValidationError {
		t.Errorf("mistake type = %q, want %q", out.MistakeType, MistakeValidationError)
	}
}

func TestPracticeUnparsableProblem(t *testing.T) {
	v := New()
	out := v.ValidatePracticeStep("apples and oranges", "addition", "8", 1)

	if out.Result != ResultNeedsGuidance {
		t.Fatalf("result = %q, want %q", out.Result, ResultNeedsGuidance)
	}
}
