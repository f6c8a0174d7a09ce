// Package stepcheck validates incremental student actions against the
// expected mathematical trajectory of a problem, classifying wrong steps
// into named mistake categories with targeted pedagogical feedback.
//
// Every validation is a pure function of its inputs. The only internal
// state is an optional diagnostic history used for learning insights;
// validation never fails hard, it always returns an Outcome.
package stepcheck

import (
	"fmt"
	"sync"
)

// Validator is the step-validation service. Construct one per process and
// inject it into request handlers.
type Validator struct {
	mu      sync.Mutex
	history []Outcome
}

// New creates a Validator.
func New() *Validator {
	return &Validator{}
}

// ValidateLearningStep dispatches a validation request to the right tool
// checker. An unknown tool type yields a needs-guidance outcome rather
// than a hard failure. Missing payloads degrade to zero-value payloads,
// which the per-tool checkers handle as empty input.
func (v *Validator) ValidateLearningStep(req Request) Response {
	var outcome Outcome

	switch req.ToolType {
	case ToolNumberLine:
		data := req.NumberLine
		if data == nil {
			data = &NumberLineData{}
		}
		outcome = v.ValidateNumberLineStep(req.Problem, req.Operation, data.CurrentSteps, data.ProposedStep, data.ExpectedSequence)

	case ToolPracticeProblem:
		data := req.Practice
		if data == nil {
			data = &PracticeData{StepNumber: 1}
		}
		outcome = v.ValidatePracticeStep(req.Problem, req.Operation, data.UserInput, data.StepNumber)

	case ToolCalculator:
		data := req.Calculator
		if data == nil {
			data = &CalculatorData{}
		}
		outcome = v.ValidateCalculatorStep(data.Expression, data.OperationSequence, data.CurrentInput)

	default:
		outcome = Outcome{
			Result:        ResultNeedsGuidance,
			IsCorrect:     false,
			Feedback:      fmt.Sprintf("Unknown tool type: %s", req.ToolType),
			Hint:          "Please try again with a valid tool type.",
			MistakeType:   MistakeInvalidTool,
			GuidanceLevel: GuidanceError,
		}
	}

	message := outcome.Feedback
	if outcome.ProblemCompleted {
		metrics := v.metrics()
		metrics.StepsTaken++
		message = GenerateSuccessMessage(req.ToolType, req.Problem, metrics)
	}

	v.record(outcome)

	return Response{
		Action:           "validate_learning_step",
		ToolType:         req.ToolType,
		Problem:          req.Problem,
		ValidationResult: outcome,
		Message:          message,
	}
}

// metrics summarizes the validations recorded so far.
func (v *Validator) metrics() PerformanceMetrics {
	v.mu.Lock()
	defer v.mu.Unlock()
	m := PerformanceMetrics{StepsTaken: len(v.history)}
	for _, o := range v.history {
		if !o.IsCorrect {
			m.MistakesMade++
		}
	}
	return m
}

// record appends an outcome to the diagnostic history.
func (v *Validator) record(o Outcome) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.history = append(v.history, o)
}

// History returns a copy of the diagnostic history.
func (v *Validator) History() []Outcome {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := make([]Outcome, len(v.history))
	copy(out, v.history)
	return out
}
