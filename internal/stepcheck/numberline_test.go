package stepcheck

import "testing"

func TestNumberLineFirstStepCorrect(t *testing.T) {
	v := New()
	out := v.ValidateNumberLineStep("5 + 3", "addition", nil, 5, nil)

	if !out.IsCorrect || out.Result != ResultCorrect {
		t.Fatalf("got %+v, want correct first step", out)
	}
	if out.MistakeType != "" {
		t.Errorf("mistake type = %q, want empty", out.MistakeType)
	}
}

func TestNumberLineFirstStepWrong(t *testing.T) {
	v := New()
	out := v.ValidateNumberLineStep("5 + 3", "addition", nil, 2, nil)

	if out.IsCorrect {
		t.Fatal("wrong starting number accepted")
	}
	if out.MistakeType != MistakeWrongStartingNumber {
		t.Errorf("mistake type = %q, want %q", out.MistakeType, MistakeWrongStartingNumber)
	}
	if out.GuidanceLevel != GuidanceSpecific {
		t.Errorf("guidance = %q, want %q", out.GuidanceLevel, GuidanceSpecific)
	}
}

func TestNumberLineIntermediateStep(t *testing.T) {
	v := New()
	// Started at 5, one counting step taken (6); proposing 7 leaves one more.
	out := v.ValidateNumberLineStep("5 + 3", "addition", []int{5, 6}, 7, nil)

	if !out.IsCorrect {
		t.Fatalf("correct step rejected: %+v", out)
	}
	if out.ProblemCompleted {
		t.Error("problem reported complete too early")
	}
	if out.RemainingSteps != 1 {
		t.Errorf("remaining steps = %d, want 1", out.RemainingSteps)
	}
}

func TestNumberLineCompletion(t *testing.T) {
	v := New()
	out := v.ValidateNumberLineStep("5 + 3", "addition", []int{5, 6, 7}, 8, nil)

	if !out.IsCorrect {
		t.Fatalf("final step rejected: %+v", out)
	}
	if !out.ProblemCompleted {
		t.Fatal("problem not reported complete")
	}
	if out.FinalAnswer != 8 {
		t.Errorf("final answer = %d, want 8", out.FinalAnswer)
	}
	if out.GuidanceLevel != GuidanceCelebration {
		t.Errorf("guidance = %q, want %q", out.GuidanceLevel, GuidanceCelebration)
	}
}

func TestNumberLineSubtractionCompletion(t *testing.T) {
	v := New()
	out := v.ValidateNumberLineStep("10 - 4", "subtraction", []int{10, 9, 8, 7}, 6, nil)

	if !out.IsCorrect || !out.ProblemCompleted {
		t.Fatalf("got %+v, want completed", out)
	}
	if out.FinalAnswer != 6 {
		t.Errorf("final answer = %d, want 6", out.FinalAnswer)
	}
}

func TestNumberLineMistakeClassification(t *testing.T) {
	tests := []struct {
		name     string
		problem  string
		steps    []int
		proposed int
		want     MistakeType
	}{
		{"overshoot on addition", "5 + 3", []int{5, 6}, 8, MistakeSkippingNumbers},
		{"backward on addition", "5 + 3", []int{5, 6}, 4, MistakeWrongDirection},
		{"forward on subtraction", "10 - 4", []int{10, 9}, 10, MistakeWrongDirection},
		{"undershoot on subtraction", "10 - 4", []int{10, 9}, 6, MistakeSkippingNumbers},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := New()
			out := v.ValidateNumberLineStep(tt.problem, "", tt.steps, tt.proposed, nil)
			if out.IsCorrect {
				t.Fatalf("wrong step accepted: %+v", out)
			}
			if out.MistakeType != tt.want {
				t.Errorf("mistake type = %q, want %q", out.MistakeType, tt.want)
			}
		})
	}
}

func TestNumberLineGenericMistake(t *testing.T) {
	v := New()
	// Proposing the current position again: not an overshoot, not backward.
	out := v.ValidateNumberLineStep("5 + 3", "addition", []int{5, 6}, 6, nil)

	if out.IsCorrect {
		t.Fatal("repeated position accepted")
	}
	if out.MistakeType != MistakeIncorrectSequence {
		t.Errorf("mistake type = %q, want %q", out.MistakeType, MistakeIncorrectSequence)
	}
}

func TestNumberLineUnparsableProblem(t *testing.T) {
	v := New()
	out := v.ValidateNumberLineStep("what even is this", "addition", nil, 5, nil)

	if out.Result != ResultNeedsGuidance {
		t.Fatalf("result = %q, want %q", out.Result, ResultNeedsGuidance)
	}
	if out.MistakeType != MistakeValidationError {
		t.Errorf("mistake type = %q, want %q", out.MistakeType, MistakeValidationError)
	}
	if out.Err == "" {
		t.Error("diagnostic detail missing from fallback outcome")
	}
}
