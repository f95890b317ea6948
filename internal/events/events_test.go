package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	events []Event
	err    error
	closed bool
}

func (r *recorder) Publish(_ context.Context, e Event) error {
	r.events = append(r.events, e)
	return r.err
}

func (r *recorder) Close() error {
	r.closed = true
	return nil
}

func TestMultiFansOut(t *testing.T) {
	a, b := &recorder{}, &recorder{err: errors.New("broker down")}
	m := Multi{a, b}

	ev := New(TypeOrder, ActionOrderCreated, "o-1", "order placed", map[string]int64{"total": 10})
	err := m.Publish(context.Background(), ev)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broker down")
	assert.Len(t, a.events, 1)
	assert.Len(t, b.events, 1)
	assert.Equal(t, "o-1", a.events[0].Key)
	assert.False(t, a.events[0].OccurredAt.IsZero())

	require.NoError(t, m.Close())
	assert.True(t, a.closed)
	assert.True(t, b.closed)
}

func TestEmitSwallowsErrors(t *testing.T) {
	r := &recorder{err: errors.New("nope")}
	Emit(context.Background(), r, New(TypeLead, ActionLeadSubmitted, "l-1", "", nil))
	assert.Len(t, r.events, 1)

	Emit(context.Background(), nil, Event{})
	assert.NoError(t, Nop().Publish(context.Background(), Event{}))
}
