package audit

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
)

type memRecorder struct {
	mu     sync.Mutex
	events []Event
	err    error
}

func (m *memRecorder) Record(_ context.Context, ev Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, ev)
	return m.err
}

func (m *memRecorder) actions() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, 0, len(m.events))
	for _, ev := range m.events {
		out = append(out, ev.Action)
	}
	return out
}

func TestDispatcherDeliversInOrder(t *testing.T) {
	rec := &memRecorder{}
	d := NewDispatcher(rec, zaptest.NewLogger(t))

	d.Dispatch(Event{Action: "booking_created", Entity: "booking", EntityID: "1"})
	d.Dispatch(Event{Action: "booking_deleted", Entity: "booking", EntityID: "1"})

	require.NoError(t, d.Close(context.Background()))
	assert.Equal(t, []string{"booking_created", "booking_deleted"}, rec.actions())
	assert.False(t, rec.events[0].At.IsZero())
}

func TestDispatcherIgnoresEventsAfterClose(t *testing.T) {
	rec := &memRecorder{}
	d := NewDispatcher(rec, zaptest.NewLogger(t))

	require.NoError(t, d.Close(context.Background()))
	require.NoError(t, d.Close(context.Background()))
	d.Dispatch(Event{Action: "late"})

	assert.Empty(t, rec.actions())
}

func TestDispatcherSurvivesRecorderErrors(t *testing.T) {
	rec := &memRecorder{err: errors.New("sink down")}
	d := NewDispatcher(rec, zaptest.NewLogger(t))

	d.Dispatch(Event{Action: "a"})
	d.Dispatch(Event{Action: "b"})

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, d.Close(ctx))
	assert.Len(t, rec.actions(), 2)
}

func TestNilDispatcher(t *testing.T) {
	var d *Dispatcher
	d.Dispatch(Event{Action: "noop"})
	require.NoError(t, d.Close(context.Background()))
}

func TestLoggerRecord(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	l := New(zap.New(core))

	err := l.Record(context.Background(), Event{
		Action:   "booking_status_updated",
		Entity:   "booking",
		EntityID: "b-1",
		Actor:    "admin@example.com",
		Metadata: map[string]string{"status": "confirmed"},
		At:       time.Now(),
	})
	require.NoError(t, err)

	entries := logs.FilterMessage("audit event").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "audit", entries[0].LoggerName)
	assert.Equal(t, "booking_status_updated", entries[0].ContextMap()["action"])
	assert.Equal(t, "admin@example.com", entries[0].ContextMap()["actor"])
}
