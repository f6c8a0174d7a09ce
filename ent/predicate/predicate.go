// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// StepEvent is the predicate function for stepevent builders.
type StepEvent func(*sql.Selector)

// ValidationEvent is the predicate function for validationevent builders.
type ValidationEvent func(*sql.Selector)
