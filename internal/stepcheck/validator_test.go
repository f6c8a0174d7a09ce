package stepcheck

import "testing"

func TestDispatchNumberLine(t *testing.T) {
	v := New()
	resp := v.ValidateLearningStep(Request{
		ToolType:   ToolNumberLine,
		Problem:    "5 + 3",
		Operation:  "addition",
		NumberLine: &NumberLineData{ProposedStep: 5},
	})

	if resp.Action != "validate_learning_step" {
		t.Errorf("action = %q", resp.Action)
	}
	if !resp.ValidationResult.IsCorrect {
		t.Fatalf("got %+v, want correct", resp.ValidationResult)
	}
	if resp.Message != resp.ValidationResult.Feedback {
		t.Error("response message should mirror outcome feedback")
	}
}

func TestDispatchPractice(t *testing.T) {
	v := New()
	resp := v.ValidateLearningStep(Request{
		ToolType:  ToolPracticeProblem,
		Problem:   "9 - 4",
		Operation: "subtraction",
		Practice:  &PracticeData{UserInput: "5", StepNumber: 1},
	})

	if !resp.ValidationResult.IsCorrect {
		t.Fatalf("got %+v, want correct", resp.ValidationResult)
	}
}

func TestDispatchCalculator(t *testing.T) {
	v := New()
	resp := v.ValidateLearningStep(Request{
		ToolType:   ToolCalculator,
		Problem:    "5 + 3",
		Calculator: &CalculatorData{Expression: "5 + 3", OperationSequence: []string{"5", "+", "3"}},
	})

	if !resp.ValidationResult.IsCorrect {
		t.Fatalf("got %+v, want correct", resp.ValidationResult)
	}
}

func TestDispatchUnknownTool(t *testing.T) {
	v := New()
	resp := v.ValidateLearningStep(Request{ToolType: "abacus", Problem: "5 + 3"})

	out := resp.ValidationResult
	if out.Result != ResultNeedsGuidance {
		t.Fatalf("result = %q, want %q", out.Result, ResultNeedsGuidance)
	}
	if out.MistakeType != MistakeInvalidTool {
		t.Errorf("mistake type = %q, want %q", out.MistakeType, MistakeInvalidTool)
	}
	if out.GuidanceLevel != GuidanceError {
		t.Errorf("guidance = %q, want %q", out.GuidanceLevel, GuidanceError)
	}
}

func TestDispatchMissingPayload(t *testing.T) {
	v := New()
	// A nil payload degrades to empty input, which practice treats as a
	// gentle prompt rather than an error.
	resp := v.ValidateLearningStep(Request{ToolType: ToolPracticeProblem, Problem: "5 + 3"})

	if resp.ValidationResult.Result != ResultNeedsGuidance {
		t.Fatalf("result = %q, want %q", resp.ValidationResult.Result, ResultNeedsGuidance)
	}
	if resp.ValidationResult.MistakeType != "" {
		t.Errorf("mistake type = %q, want empty", resp.ValidationResult.MistakeType)
	}
}

func TestCompletionMessageReflectsPerformance(t *testing.T) {
	complete := Request{
		ToolType:   ToolNumberLine,
		Problem:    "5 + 3",
		Operation:  "addition",
		NumberLine: &NumberLineData{CurrentSteps: []int{5, 6, 7}, ProposedStep: 8},
	}

	// Flawless run.
	v := New()
	resp := v.ValidateLearningStep(complete)
	if !resp.ValidationResult.ProblemCompleted {
		t.Fatalf("got %+v, want completed", resp.ValidationResult)
	}
	if want := "🌟 Perfect! You solved 5 + 3 with no mistakes!"; resp.Message != want {
		t.Errorf("message = %q, want %q", resp.Message, want)
	}

	// One earlier mistake changes the closing message tier.
	v = New()
	v.ValidateLearningStep(Request{
		ToolType:   ToolNumberLine,
		Problem:    "5 + 3",
		Operation:  "addition",
		NumberLine: &NumberLineData{ProposedStep: 2},
	})
	resp = v.ValidateLearningStep(complete)
	if want := "🎉 Great job! You solved 5 + 3 and learned from one small mistake!"; resp.Message != want {
		t.Errorf("message = %q, want %q", resp.Message, want)
	}
}

func TestHistoryRecordsEveryValidation(t *testing.T) {
	v := New()
	v.ValidateLearningStep(Request{ToolType: ToolNumberLine, Problem: "5 + 3", NumberLine: &NumberLineData{ProposedStep: 5}})
	v.ValidateLearningStep(Request{ToolType: ToolNumberLine, Problem: "5 + 3", NumberLine: &NumberLineData{ProposedStep: 2}})
	v.ValidateLearningStep(Request{ToolType: "abacus"})

	hist := v.History()
	if len(hist) != 3 {
		t.Fatalf("history length = %d, want 3", len(hist))
	}
	if hist[1].MistakeType != MistakeWrongStartingNumber {
		t.Errorf("history[1].MistakeType = %q, want %q", hist[1].MistakeType, MistakeWrongStartingNumber)
	}

	// History returns a copy; mutating it must not affect the validator.
	hist[0] = Outcome{}
	if v.History()[0].Result != ResultCorrect {
		t.Error("history copy aliases internal state")
	}
}
