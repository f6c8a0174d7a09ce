package stepcheck

import "testing"

func TestCalculatorEmptyExpressionIsReady(t *testing.T) {
	v := New()
	out := v.ValidateCalculatorStep("", nil, "")

	if !out.IsCorrect {
		t.Fatalf("got %+v, want ready state", out)
	}
	if out.Feedback != "Ready to calculate!" {
		t.Errorf("feedback = %q", out.Feedback)
	}
}

func TestCalculatorCleanSequence(t *testing.T) {
	v := New()
	out := v.ValidateCalculatorStep("5 + 3", []string{"5", "+", "3"}, "3")

	if !out.IsCorrect || out.Result != ResultCorrect {
		t.Fatalf("got %+v, want correct", out)
	}
}

func TestCalculatorConsecutiveOperators(t *testing.T) {
	v := New()
	out := v.ValidateCalculatorStep("5 + + 3", []string{"5", "+", "+", "3"}, "3")

	if out.IsCorrect {
		t.Fatal("consecutive operators accepted")
	}
	if out.MistakeType != MistakeConsecutiveOperators {
		t.Errorf("mistake type = %q, want %q", out.MistakeType, MistakeConsecutiveOperators)
	}
	if out.Result != ResultNeedsGuidance {
		t.Errorf("result = %q, want %q", out.Result, ResultNeedsGuidance)
	}
}

func TestCalculatorRepeatedOperators(t *testing.T) {
	v := New()
	// Three "+" against one distinct operator trips the repetition check
	// before the adjacency check runs.
	out := v.ValidateCalculatorStep("1 + 2 + 3 + 4", []string{"1", "+", "2", "+", "3", "+", "4"}, "4")

	if out.IsCorrect {
		t.Fatal("repeated operators accepted")
	}
	if out.MistakeType != MistakeRepeatedOperators {
		t.Errorf("mistake type = %q, want %q", out.MistakeType, MistakeRepeatedOperators)
	}
}

func TestCalculatorDisplayOperators(t *testing.T) {
	v := New()
	out := v.ValidateCalculatorStep("6 × × 2", []string{"6", "×", "×", "2"}, "2")

	if out.MistakeType != MistakeConsecutiveOperators {
		t.Errorf("mistake type = %q, want %q", out.MistakeType, MistakeConsecutiveOperators)
	}
}

func TestCalculatorShortSequence(t *testing.T) {
	v := New()
	out := v.ValidateCalculatorStep("5", []string{"5"}, "5")

	if !out.IsCorrect {
		t.Fatalf("got %+v, want correct", out)
	}
}
