package store

import (
	"context"
	"fmt"

	"github.com/bhairavmehta/MathTeacherAgent/ent"
	"github.com/bhairavmehta/MathTeacherAgent/ent/validationevent"
)

func (r *eventRepo) AppendValidation(ctx context.Context, data ValidationEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.ValidationEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetMethod(data.Method).
		SetValid(data.Valid).
		SetStructured(data.Structured).
		SetSecurity(data.Security).
		SetProblem(data.Problem).
		SetAnswer(data.Answer).
		SetErrorText(data.ErrorText).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save validation event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryValidationEvents(ctx context.Context, opts QueryOpts) ([]ValidationEventRecord, error) {
	query := r.client.ValidationEvent.Query().
		Order(ent.Desc(validationevent.FieldSequence))

	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.After > 0 {
		query = query.Where(validationevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		query = query.Where(validationevent.SequenceLT(opts.Before))
	}
	if opts.SessionID != "" {
		query = query.Where(validationevent.SessionID(opts.SessionID))
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query validation events: %w", err)
	}

	records := make([]ValidationEventRecord, len(events))
	for i, e := range events {
		records[i] = ValidationEventRecord{
			ValidationEventData: ValidationEventData{
				SessionID:  e.SessionID,
				Method:     e.Method,
				Valid:      e.Valid,
				Structured: e.Structured,
				Security:   e.Security,
				Problem:    e.Problem,
				Answer:     e.Answer,
				ErrorText:  e.ErrorText,
			},
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
		}
	}
	return records, nil
}

func (r *eventRepo) SecurityEventCount(ctx context.Context) (int, error) {
	n, err := r.client.ValidationEvent.Query().
		Where(validationevent.Security(true)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count security events: %w", err)
	}
	return n, nil
}
