package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// StepEvent records one learning-step validation and its classification.
type StepEvent struct {
	ent.Schema
}

func (StepEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (StepEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").NotEmpty(),
		field.String("tool_type").NotEmpty(), // number_line, practice_problem, calculator
		field.String("problem").Optional().Default(""),
		field.String("result").NotEmpty(), // correct, incorrect, partially_correct, needs_guidance
		field.Bool("correct"),
		field.String("mistake_type").Optional().Default(""),
		field.String("guidance_level").Optional().Default(""),
	}
}

func (StepEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("tool_type"),
		index.Fields("mistake_type"),
	}
}
