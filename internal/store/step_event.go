package store

import (
	"context"
	"fmt"

	"github.com/bhairavmehta/MathTeacherAgent/ent"
	"github.com/bhairavmehta/MathTeacherAgent/ent/stepevent"
)

func (r *eventRepo) AppendStep(ctx context.Context, data StepEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.StepEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetToolType(data.ToolType).
		SetProblem(data.Problem).
		SetResult(data.Result).
		SetCorrect(data.Correct).
		SetMistakeType(data.MistakeType).
		SetGuidanceLevel(data.GuidanceLevel).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save step event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryStepEvents(ctx context.Context, opts QueryOpts) ([]StepEventRecord, error) {
	query := r.client.StepEvent.Query().
		Order(ent.Desc(stepevent.FieldSequence))

	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.After > 0 {
		query = query.Where(stepevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		query = query.Where(stepevent.SequenceLT(opts.Before))
	}
	if opts.SessionID != "" {
		query = query.Where(stepevent.SessionID(opts.SessionID))
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query step events: %w", err)
	}

	records := make([]StepEventRecord, len(events))
	for i, e := range events {
		records[i] = StepEventRecord{
			StepEventData: StepEventData{
				SessionID:     e.SessionID,
				ToolType:      e.ToolType,
				Problem:       e.Problem,
				Result:        e.Result,
				Correct:       e.Correct,
				MistakeType:   e.MistakeType,
				GuidanceLevel: e.GuidanceLevel,
			},
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
		}
	}
	return records, nil
}

func (r *eventRepo) MistakeFrequency(ctx context.Context) (map[string]int, error) {
	events, err := r.client.StepEvent.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query mistake frequency: %w", err)
	}

	freq := make(map[string]int)
	for _, e := range events {
		if e.MistakeType != "" {
			freq[e.MistakeType]++
		}
	}
	return freq, nil
}
