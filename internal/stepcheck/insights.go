package stepcheck

import "fmt"

// PerformanceMetrics summarizes a completed tool interaction.
type PerformanceMetrics struct {
	StepsTaken   int
	MistakesMade int
}

// GenerateSuccessMessage produces the closing encouragement for a solved
// problem, tiered by how many mistakes it took to get there.
func GenerateSuccessMessage(toolType ToolType, problem string, metrics PerformanceMetrics) string {
	switch metrics.MistakesMade {
	case 0:
		return fmt.Sprintf("🌟 Perfect! You solved %s with no mistakes!", problem)
	case 1:
		return fmt.Sprintf("🎉 Great job! You solved %s and learned from one small mistake!", problem)
	default:
		return fmt.Sprintf("✅ Well done! You kept trying and solved %s successfully!", problem)
	}
}

// Insights aggregates what the validation history says about how the
// student is doing.
type Insights struct {
	Insights         []string
	Recommendations  []string
	MistakeFrequency map[MistakeType]int
	TotalValidations int
}

// LearningInsights analyzes a validation history and maps recurring
// mistake types to teaching recommendations.
func LearningInsights(history []Outcome) Insights {
	freq := make(map[MistakeType]int)
	for _, o := range history {
		if o.MistakeType != "" {
			freq[o.MistakeType]++
		}
	}
	return InsightsFromFrequency(freq, len(history))
}

// InsightsFromFrequency builds insights from a precomputed mistake-type
// frequency table, e.g. one aggregated from the event log.
func InsightsFromFrequency(freq map[MistakeType]int, total int) Insights {
	result := Insights{
		MistakeFrequency: freq,
		TotalValidations: total,
	}
	if total == 0 {
		return result
	}

	if result.MistakeFrequency[MistakeWrongDirection] > 0 {
		result.Insights = append(result.Insights, "Student sometimes confuses addition and subtraction directions")
		result.Recommendations = append(result.Recommendations, "Practice more direction awareness exercises")
	}
	if result.MistakeFrequency[MistakeSkippingNumbers] > 0 {
		result.Insights = append(result.Insights, "Student tends to skip steps in counting")
		result.Recommendations = append(result.Recommendations, "Emphasize one-step-at-a-time approach")
	}

	return result
}
