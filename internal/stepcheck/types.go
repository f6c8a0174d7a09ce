package stepcheck

// Result classifies the overall outcome of a step validation.
type Result string

const (
	ResultCorrect          Result = "correct"
	ResultIncorrect        Result = "incorrect"
	ResultPartiallyCorrect Result = "partially_correct"
	ResultNeedsGuidance    Result = "needs_guidance"
)

// GuidanceLevel tags the tone of feedback so the caller can pick phrasing
// and UI treatment.
type GuidanceLevel string

const (
	GuidanceGentle      GuidanceLevel = "gentle"
	GuidanceSpecific    GuidanceLevel = "specific"
	GuidanceEncouraging GuidanceLevel = "encouraging"
	GuidanceCelebration GuidanceLevel = "celebration"
	GuidanceHelpful     GuidanceLevel = "helpful"
	GuidanceError       GuidanceLevel = "error"
)

// MistakeType names a category of incorrect step, driving targeted hints.
type MistakeType string

const (
	MistakeWrongStartingNumber  MistakeType = "wrong_starting_number"
	MistakeSkippingNumbers      MistakeType = "skipping_numbers"
	MistakeWrongDirection       MistakeType = "wrong_direction"
	MistakeIncorrectSequence    MistakeType = "incorrect_sequence"
	MistakeInvalidInput         MistakeType = "invalid_input"
	MistakeNotAdding            MistakeType = "not_adding"
	MistakeWrongOperation       MistakeType = "wrong_operation"
	MistakeCloseAnswer          MistakeType = "close_answer"
	MistakeIncorrectCalculation MistakeType = "incorrect_calculation"
	MistakeRepeatedOperators    MistakeType = "repeated_operators"
	MistakeConsecutiveOperators MistakeType = "consecutive_operators"
	MistakeInvalidTool          MistakeType = "invalid_tool"
	MistakeValidationError      MistakeType = "validation_error"
)

// Outcome is the result of validating one learning step.
// Result == ResultCorrect iff IsCorrect is true.
type Outcome struct {
	Result        Result        `json:"result"`
	IsCorrect     bool          `json:"is_correct"`
	Feedback      string        `json:"feedback"`
	Hint          string        `json:"hint"`
	MistakeType   MistakeType   `json:"mistake_type,omitempty"`
	GuidanceLevel GuidanceLevel `json:"guidance_level"`

	// Number-line extras.
	ProblemCompleted bool `json:"problem_completed,omitempty"`
	FinalAnswer      int  `json:"final_answer,omitempty"`
	RemainingSteps   int  `json:"remaining_steps,omitempty"`

	// Practice extras.
	CorrectAnswer *float64 `json:"correct_answer,omitempty"`

	// Err carries the raw internal error detail when a validation path
	// failed and was converted to a needs-guidance outcome. Diagnostic
	// only; never shown to the student.
	Err string `json:"error,omitempty"`
}

// ToolType identifies which interactive tool a step belongs to.
type ToolType string

const (
	ToolNumberLine      ToolType = "number_line"
	ToolPracticeProblem ToolType = "practice_problem"
	ToolCalculator      ToolType = "calculator"
)

// NumberLineData is the step payload for the number-line tool.
type NumberLineData struct {
	CurrentSteps     []int `json:"current_steps"`
	ProposedStep     int   `json:"proposed_step"`
	ExpectedSequence []int `json:"expected_sequence"`
}

// PracticeData is the step payload for the practice-problem tool.
type PracticeData struct {
	UserInput  string `json:"user_input"`
	StepNumber int    `json:"step_number"`
}

// CalculatorData is the step payload for the calculator tool.
type CalculatorData struct {
	Expression        string   `json:"expression"`
	OperationSequence []string `json:"operation_sequence"`
	CurrentInput      string   `json:"current_input"`
}

// Request is a full learning-step validation request. Exactly one of the
// payload fields should be set, matching ToolType.
type Request struct {
	ToolType  ToolType `json:"tool_type"`
	Problem   string   `json:"problem"`
	Operation string   `json:"operation"`
	SessionID string   `json:"session_id,omitempty"`

	NumberLine *NumberLineData `json:"number_line,omitempty"`
	Practice   *PracticeData   `json:"practice,omitempty"`
	Calculator *CalculatorData `json:"calculator,omitempty"`
}

// Response is what ValidateLearningStep hands back to the orchestrator.
type Response struct {
	Action           string   `json:"action"`
	ToolType         ToolType `json:"tool_type"`
	Problem          string   `json:"problem"`
	ValidationResult Outcome  `json:"validation_result"`
	Message          string   `json:"message"`
}

// guidanceFallback converts an internal failure into the uniform
// needs-guidance outcome. Step validation never raises: every failure path
// yields a structured outcome with the raw detail kept for diagnostics.
func guidanceFallback(detail string) Outcome {
	return Outcome{
		Result:        ResultNeedsGuidance,
		IsCorrect:     false,
		Feedback:      "I'm having trouble understanding that step. Let's try again!",
		Hint:          "Take your time and try the next logical step.",
		MistakeType:   MistakeValidationError,
		GuidanceLevel: GuidanceGentle,
		Err:           detail,
	}
}
