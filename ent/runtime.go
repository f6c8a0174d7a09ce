// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/bhairavmehta/MathTeacherAgent/ent/schema"
	"github.com/bhairavmehta/MathTeacherAgent/ent/stepevent"
	"github.com/bhairavmehta/MathTeacherAgent/ent/validationevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	stepeventMixin := schema.StepEvent{}.Mixin()
	stepeventMixinFields0 := stepeventMixin[0].Fields()
	_ = stepeventMixinFields0
	stepeventFields := schema.StepEvent{}.Fields()
	_ = stepeventFields
	// stepeventDescTimestamp is the schema descriptor for timestamp field.
	stepeventDescTimestamp := stepeventMixinFields0[1].Descriptor()
	// stepevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	stepevent.DefaultTimestamp = stepeventDescTimestamp.Default.(func() time.Time)
	// stepeventDescSessionID is the schema descriptor for session_id field.
	stepeventDescSessionID := stepeventFields[0].Descriptor()
	// stepevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	stepevent.SessionIDValidator = stepeventDescSessionID.Validators[0].(func(string) error)
	// stepeventDescToolType is the schema descriptor for tool_type field.
	stepeventDescToolType := stepeventFields[1].Descriptor()
	// stepevent.ToolTypeValidator is a validator for the "tool_type" field. It is called by the builders before save.
	stepevent.ToolTypeValidator = stepeventDescToolType.Validators[0].(func(string) error)
	// stepeventDescProblem is the schema descriptor for problem field.
	stepeventDescProblem := stepeventFields[2].Descriptor()
	// stepevent.DefaultProblem holds the default value on creation for the problem field.
	stepevent.DefaultProblem = stepeventDescProblem.Default.(string)
	// stepeventDescResult is the schema descriptor for result field.
	stepeventDescResult := stepeventFields[3].Descriptor()
	// stepevent.ResultValidator is a validator for the "result" field. It is called by the builders before save.
	stepevent.ResultValidator = stepeventDescResult.Validators[0].(func(string) error)
	// stepeventDescMistakeType is the schema descriptor for mistake_type field.
	stepeventDescMistakeType := stepeventFields[5].Descriptor()
	// stepevent.DefaultMistakeType holds the default value on creation for the mistake_type field.
	stepevent.DefaultMistakeType = stepeventDescMistakeType.Default.(string)
	// stepeventDescGuidanceLevel is the schema descriptor for guidance_level field.
	stepeventDescGuidanceLevel := stepeventFields[6].Descriptor()
	// stepevent.DefaultGuidanceLevel holds the default value on creation for the guidance_level field.
	stepevent.DefaultGuidanceLevel = stepeventDescGuidanceLevel.Default.(string)
	validationeventMixin := schema.ValidationEvent{}.Mixin()
	validationeventMixinFields0 := validationeventMixin[0].Fields()
	_ = validationeventMixinFields0
	validationeventFields := schema.ValidationEvent{}.Fields()
	_ = validationeventFields
	// validationeventDescTimestamp is the schema descriptor for timestamp field.
	validationeventDescTimestamp := validationeventMixinFields0[1].Descriptor()
	// validationevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	validationevent.DefaultTimestamp = validationeventDescTimestamp.Default.(func() time.Time)
	// validationeventDescSessionID is the schema descriptor for session_id field.
	validationeventDescSessionID := validationeventFields[0].Descriptor()
	// validationevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	validationevent.SessionIDValidator = validationeventDescSessionID.Validators[0].(func(string) error)
	// validationeventDescMethod is the schema descriptor for method field.
	validationeventDescMethod := validationeventFields[1].Descriptor()
	// validationevent.DefaultMethod holds the default value on creation for the method field.
	validationevent.DefaultMethod = validationeventDescMethod.Default.(string)
	// validationeventDescStructured is the schema descriptor for structured field.
	validationeventDescStructured := validationeventFields[3].Descriptor()
	// validationevent.DefaultStructured holds the default value on creation for the structured field.
	validationevent.DefaultStructured = validationeventDescStructured.Default.(bool)
	// validationeventDescSecurity is the schema descriptor for security field.
	validationeventDescSecurity := validationeventFields[4].Descriptor()
	// validationevent.DefaultSecurity holds the default value on creation for the security field.
	validationevent.DefaultSecurity = validationeventDescSecurity.Default.(bool)
	// validationeventDescProblem is the schema descriptor for problem field.
	validationeventDescProblem := validationeventFields[5].Descriptor()
	// validationevent.DefaultProblem holds the default value on creation for the problem field.
	validationevent.DefaultProblem = validationeventDescProblem.Default.(string)
	// validationeventDescAnswer is the schema descriptor for answer field.
	validationeventDescAnswer := validationeventFields[6].Descriptor()
	// validationevent.DefaultAnswer holds the default value on creation for the answer field.
	validationevent.DefaultAnswer = validationeventDescAnswer.Default.(string)
	// validationeventDescErrorText is the schema descriptor for error_text field.
	validationeventDescErrorText := validationeventFields[7].Descriptor()
	// validationevent.DefaultErrorText holds the default value on creation for the error_text field.
	validationevent.DefaultErrorText = validationeventDescErrorText.Default.(string)
}
