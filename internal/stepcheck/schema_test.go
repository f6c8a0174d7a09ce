package stepcheck

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePayloadNumberLine(t *testing.T) {
	raw := json.RawMessage(`{"current_steps": [5, 6], "proposed_step": 7}`)
	require.NoError(t, ValidatePayload(ToolNumberLine, raw))
}

func TestValidatePayloadMissingRequired(t *testing.T) {
	raw := json.RawMessage(`{"current_steps": [5, 6]}`)
	err := ValidatePayload(ToolNumberLine, raw)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema validation failed")
}

func TestValidatePayloadUnknownField(t *testing.T) {
	raw := json.RawMessage(`{"proposed_step": 7, "surprise": true}`)
	require.Error(t, ValidatePayload(ToolNumberLine, raw))
}

func TestValidatePayloadMalformedJSON(t *testing.T) {
	err := ValidatePayload(ToolNumberLine, json.RawMessage(`{`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid JSON payload")
}

func TestValidatePayloadUnknownTool(t *testing.T) {
	err := ValidatePayload("abacus", json.RawMessage(`{}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no payload schema")
}

func TestDecodeRequestNumberLine(t *testing.T) {
	raw := json.RawMessage(`{"current_steps": [5, 6], "proposed_step": 7, "expected_sequence": [5, 6, 7, 8]}`)
	req, err := DecodeRequest(ToolNumberLine, "5 + 3", "addition", raw)
	require.NoError(t, err)
	require.NotNil(t, req.NumberLine)
	assert.Equal(t, []int{5, 6}, req.NumberLine.CurrentSteps)
	assert.Equal(t, 7, req.NumberLine.ProposedStep)
	assert.Equal(t, "5 + 3", req.Problem)
}

func TestDecodeRequestPracticeDefaultsStepNumber(t *testing.T) {
	raw := json.RawMessage(`{"user_input": "8"}`)
	req, err := DecodeRequest(ToolPracticeProblem, "5 + 3", "addition", raw)
	require.NoError(t, err)
	require.NotNil(t, req.Practice)
	assert.Equal(t, "8", req.Practice.UserInput)
	assert.Equal(t, 1, req.Practice.StepNumber)
}

func TestDecodeRequestCalculator(t *testing.T) {
	raw := json.RawMessage(`{"expression": "5 + 3", "operation_sequence": ["5", "+", "3"]}`)
	req, err := DecodeRequest(ToolCalculator, "5 + 3", "", raw)
	require.NoError(t, err)
	require.NotNil(t, req.Calculator)
	assert.Equal(t, "5 + 3", req.Calculator.Expression)
}

func TestDecodeRequestRejectsBadPayload(t *testing.T) {
	raw := json.RawMessage(`{"step_number": 0}`)
	_, err := DecodeRequest(ToolPracticeProblem, "5 + 3", "addition", raw)
	require.Error(t, err)
}
