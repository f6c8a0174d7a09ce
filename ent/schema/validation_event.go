package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ValidationEvent records one tool-response validation attempt. The
// security flag separates injection detections from ordinary validation
// failures so they can be audited independently.
type ValidationEvent struct {
	ent.Schema
}

func (ValidationEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ValidationEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").NotEmpty(),
		field.String("method").Default("unknown"), // number_line, practice, calculator, unknown
		field.Bool("valid"),
		field.Bool("structured").Default(true),
		field.Bool("security").Default(false),
		field.String("problem").Optional().Default(""),
		field.String("answer").Optional().Default(""),
		field.String("error_text").Optional().Default(""),
	}
}

func (ValidationEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("security"),
	}
}
