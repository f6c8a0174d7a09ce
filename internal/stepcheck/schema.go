package stepcheck

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Payload schemas for the per-tool validationData JSON. The CLI and any
// transport boundary validate the raw payload against these before
// decoding, so malformed front-end data surfaces as a clear schema error
// instead of a half-decoded request.
var payloadSchemas = map[ToolType]map[string]any{
	ToolNumberLine: {
		"type": "object",
		"properties": map[string]any{
			"current_steps":     map[string]any{"type": "array", "items": map[string]any{"type": "integer"}},
			"proposed_step":     map[string]any{"type": "integer"},
			"expected_sequence": map[string]any{"type": "array", "items": map[string]any{"type": "integer"}},
		},
		"required":             []any{"proposed_step"},
		"additionalProperties": false,
	},
	ToolPracticeProblem: {
		"type": "object",
		"properties": map[string]any{
			"user_input":  map[string]any{"type": "string"},
			"step_number": map[string]any{"type": "integer", "minimum": 1},
		},
		"required":             []any{"user_input"},
		"additionalProperties": false,
	},
	ToolCalculator: {
		"type": "object",
		"properties": map[string]any{
			"expression":         map[string]any{"type": "string"},
			"operation_sequence": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
			"current_input":      map[string]any{"type": "string"},
		},
		"required":             []any{"expression"},
		"additionalProperties": false,
	},
}

// schemaCache caches compiled payload schemas by tool type.
var schemaCache sync.Map // map[ToolType]*jsonschema.Schema

// ValidatePayload checks a raw validationData document against the schema
// for the given tool type.
func ValidatePayload(tool ToolType, raw json.RawMessage) error {
	def, ok := payloadSchemas[tool]
	if !ok {
		return fmt.Errorf("no payload schema for tool type %q", tool)
	}

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON payload: %w", err)
	}

	compiled, err := compiledSchema(tool, def)
	if err != nil {
		return fmt.Errorf("compile payload schema: %w", err)
	}

	if err := compiled.Validate(parsed); err != nil {
		return fmt.Errorf("payload schema validation failed: %w", err)
	}
	return nil
}

// DecodeRequest validates and decodes a raw validationData document into a
// typed Request for the given tool.
func DecodeRequest(tool ToolType, problem, operation string, raw json.RawMessage) (Request, error) {
	if err := ValidatePayload(tool, raw); err != nil {
		return Request{}, err
	}

	req := Request{ToolType: tool, Problem: problem, Operation: operation}
	switch tool {
	case ToolNumberLine:
		data := &NumberLineData{}
		if err := json.Unmarshal(raw, data); err != nil {
			return Request{}, fmt.Errorf("decode number_line payload: %w", err)
		}
		req.NumberLine = data
	case ToolPracticeProblem:
		data := &PracticeData{StepNumber: 1}
		if err := json.Unmarshal(raw, data); err != nil {
			return Request{}, fmt.Errorf("decode practice payload: %w", err)
		}
		req.Practice = data
	case ToolCalculator:
		data := &CalculatorData{}
		if err := json.Unmarshal(raw, data); err != nil {
			return Request{}, fmt.Errorf("decode calculator payload: %w", err)
		}
		req.Calculator = data
	}
	return req, nil
}

// compiledSchema returns a cached compiled schema or compiles and caches it.
func compiledSchema(tool ToolType, def map[string]any) (*jsonschema.Schema, error) {
	if cached, ok := schemaCache.Load(tool); ok {
		return cached.(*jsonschema.Schema), nil
	}

	// The jsonschema library expects a parsed JSON value (any), not raw
	// bytes. Marshal then unmarshal to get a clean any representation.
	defBytes, err := json.Marshal(def)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	schemaURL := fmt.Sprintf("schema://%s.json", tool)
	if err := c.AddResource(schemaURL, defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}

	compiled, err := c.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}

	schemaCache.Store(tool, compiled)
	return compiled, nil
}
