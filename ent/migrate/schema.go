// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// StepEventsColumns holds the columns for the "step_events" table.
	StepEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "tool_type", Type: field.TypeString},
		{Name: "problem", Type: field.TypeString, Nullable: true, Default: ""},
		{Name: "result", Type: field.TypeString},
		{Name: "correct", Type: field.TypeBool},
		{Name: "mistake_type", Type: field.TypeString, Nullable: true, Default: ""},
		{Name: "guidance_level", Type: field.TypeString, Nullable: true, Default: ""},
	}
	// StepEventsTable holds the schema information for the "step_events" table.
	StepEventsTable = &schema.Table{
		Name:       "step_events",
		Columns:    StepEventsColumns,
		PrimaryKey: []*schema.Column{StepEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "stepevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{StepEventsColumns[1]},
			},
			{
				Name:    "stepevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{StepEventsColumns[2]},
			},
			{
				Name:    "stepevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{StepEventsColumns[3]},
			},
			{
				Name:    "stepevent_tool_type",
				Unique:  false,
				Columns: []*schema.Column{StepEventsColumns[4]},
			},
			{
				Name:    "stepevent_mistake_type",
				Unique:  false,
				Columns: []*schema.Column{StepEventsColumns[8]},
			},
		},
	}
	// ValidationEventsColumns holds the columns for the "validation_events" table.
	ValidationEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "method", Type: field.TypeString, Default: "unknown"},
		{Name: "valid", Type: field.TypeBool},
		{Name: "structured", Type: field.TypeBool, Default: true},
		{Name: "security", Type: field.TypeBool, Default: false},
		{Name: "problem", Type: field.TypeString, Nullable: true, Default: ""},
		{Name: "answer", Type: field.TypeString, Nullable: true, Default: ""},
		{Name: "error_text", Type: field.TypeString, Nullable: true, Default: ""},
	}
	// ValidationEventsTable holds the schema information for the "validation_events" table.
	ValidationEventsTable = &schema.Table{
		Name:       "validation_events",
		Columns:    ValidationEventsColumns,
		PrimaryKey: []*schema.Column{ValidationEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "validationevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{ValidationEventsColumns[1]},
			},
			{
				Name:    "validationevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ValidationEventsColumns[2]},
			},
			{
				Name:    "validationevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{ValidationEventsColumns[3]},
			},
			{
				Name:    "validationevent_security",
				Unique:  false,
				Columns: []*schema.Column{ValidationEventsColumns[7]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		StepEventsTable,
		ValidationEventsTable,
	}
)

func init() {
}
