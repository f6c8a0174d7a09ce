package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestAppendAndQueryValidationEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	require.NoError(t, repo.AppendValidation(ctx, ValidationEventData{
		SessionID:  "s1",
		Method:     "number_line",
		Valid:      true,
		Structured: true,
		Problem:    "5 + 3",
		Answer:     "8",
	}))
	require.NoError(t, repo.AppendValidation(ctx, ValidationEventData{
		SessionID: "s1",
		Valid:     false,
		Security:  true,
		ErrorText: "Legacy validation error: potential SQL injection pattern detected",
	}))

	events, err := repo.QueryValidationEvents(ctx, QueryOpts{})
	require.NoError(t, err)
	require.Len(t, events, 2)

	// Newest first.
	assert.True(t, events[0].Security)
	assert.False(t, events[0].Valid)
	assert.Equal(t, "number_line", events[1].Method)
	assert.Equal(t, "8", events[1].Answer)
	assert.Greater(t, events[0].Sequence, events[1].Sequence)
}

func TestQueryValidationEventsFilters(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for _, session := range []string{"a", "b", "a"} {
		require.NoError(t, repo.AppendValidation(ctx, ValidationEventData{SessionID: session, Valid: true}))
	}

	events, err := repo.QueryValidationEvents(ctx, QueryOpts{SessionID: "a"})
	require.NoError(t, err)
	assert.Len(t, events, 2)

	events, err = repo.QueryValidationEvents(ctx, QueryOpts{Limit: 1})
	require.NoError(t, err)
	assert.Len(t, events, 1)
}

func TestAppendAndQueryStepEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	require.NoError(t, repo.AppendStep(ctx, StepEventData{
		SessionID:     "s1",
		ToolType:      "number_line",
		Problem:       "5 + 3",
		Result:        "incorrect",
		MistakeType:   "wrong_direction",
		GuidanceLevel: "specific",
	}))
	require.NoError(t, repo.AppendStep(ctx, StepEventData{
		SessionID:     "s1",
		ToolType:      "number_line",
		Problem:       "5 + 3",
		Result:        "correct",
		Correct:       true,
		GuidanceLevel: "celebration",
	}))

	events, err := repo.QueryStepEvents(ctx, QueryOpts{})
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.True(t, events[0].Correct)
	assert.Equal(t, "wrong_direction", events[1].MistakeType)
}

func TestMistakeFrequency(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for _, m := range []string{"wrong_direction", "wrong_direction", "skipping_numbers", ""} {
		require.NoError(t, repo.AppendStep(ctx, StepEventData{
			SessionID:   "s1",
			ToolType:    "number_line",
			Result:      "incorrect",
			MistakeType: m,
		}))
	}

	freq, err := repo.MistakeFrequency(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, freq["wrong_direction"])
	assert.Equal(t, 1, freq["skipping_numbers"])
	// Correct steps carry no mistake type and are not counted.
	_, ok := freq[""]
	assert.False(t, ok)
}

func TestSecurityEventCount(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	require.NoError(t, repo.AppendValidation(ctx, ValidationEventData{SessionID: "s1", Valid: true}))
	require.NoError(t, repo.AppendValidation(ctx, ValidationEventData{SessionID: "s1", Security: true}))
	require.NoError(t, repo.AppendValidation(ctx, ValidationEventData{SessionID: "s2", Security: true}))

	n, err := repo.SecurityEventCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestSequencesAreStrictlyIncreasing(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, repo.AppendValidation(ctx, ValidationEventData{SessionID: "s1"}))
	}

	events, err := repo.QueryValidationEvents(ctx, QueryOpts{})
	require.NoError(t, err)
	require.Len(t, events, 5)
	for i := 1; i < len(events); i++ {
		assert.Greater(t, events[i-1].Sequence, events[i].Sequence)
	}
}
