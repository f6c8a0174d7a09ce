package stepcheck

import (
	"strings"
	"testing"
)

func TestLearningInsightsFromHistory(t *testing.T) {
	history := []Outcome{
		{Result: ResultCorrect, IsCorrect: true},
		{Result: ResultIncorrect, MistakeType: MistakeWrongDirection},
		{Result: ResultIncorrect, MistakeType: MistakeWrongDirection},
		{Result: ResultIncorrect, MistakeType: MistakeSkippingNumbers},
	}

	ins := LearningInsights(history)
	if ins.TotalValidations != 4 {
		t.Errorf("total = %d, want 4", ins.TotalValidations)
	}
	if ins.MistakeFrequency[MistakeWrongDirection] != 2 {
		t.Errorf("wrong_direction count = %d, want 2", ins.MistakeFrequency[MistakeWrongDirection])
	}
	if len(ins.Insights) != 2 || len(ins.Recommendations) != 2 {
		t.Fatalf("insights = %v, recommendations = %v, want 2 each", ins.Insights, ins.Recommendations)
	}
	if !strings.Contains(ins.Insights[0], "direction") {
		t.Errorf("first insight %q should mention direction confusion", ins.Insights[0])
	}
	if !strings.Contains(ins.Recommendations[1], "one-step-at-a-time") {
		t.Errorf("second recommendation %q should target skipped steps", ins.Recommendations[1])
	}
}

func TestLearningInsightsEmptyHistory(t *testing.T) {
	ins := LearningInsights(nil)
	if ins.TotalValidations != 0 {
		t.Errorf("total = %d, want 0", ins.TotalValidations)
	}
	if len(ins.Insights) != 0 || len(ins.Recommendations) != 0 {
		t.Errorf("empty history produced insights: %+v", ins)
	}
}

func TestInsightsFromFrequency(t *testing.T) {
	ins := InsightsFromFrequency(map[MistakeType]int{MistakeSkippingNumbers: 3}, 10)
	if len(ins.Insights) != 1 {
		t.Fatalf("insights = %v, want 1 entry", ins.Insights)
	}
	if !strings.Contains(ins.Insights[0], "skip") {
		t.Errorf("insight %q should mention skipped counting", ins.Insights[0])
	}
}

func TestGenerateSuccessMessage(t *testing.T) {
	tests := []struct {
		mistakes int
		want     string
	}{
		{0, "🌟 Perfect! You solved 5 + 3 with no mistakes!"},
		{1, "🎉 Great job! You solved 5 + 3 and learned from one small mistake!"},
		{4, "✅ Well done! You kept trying and solved 5 + 3 successfully!"},
	}
	for _, tt := range tests {
		got := GenerateSuccessMessage(ToolNumberLine, "5 + 3", PerformanceMetrics{StepsTaken: 3, MistakesMade: tt.mistakes})
		if got != tt.want {
			t.Errorf("mistakes=%d: got %q, want %q", tt.mistakes, got, tt.want)
		}
	}
}

func TestCommonMistakes(t *testing.T) {
	add := CommonMistakes("addition")
	if len(add) == 0 {
		t.Fatal("no catalog for addition")
	}
	found := false
	for _, m := range add {
		if m == "skipping_numbers" {
			found = true
		}
	}
	if !found {
		t.Errorf("addition catalog %v missing skipping_numbers", add)
	}
	if CommonMistakes("calculus") != nil {
		t.Error("unknown operation should return nil")
	}
}
