package audit

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

const queueSize = 100

type Event struct {
	Action   string
	Entity   string
	EntityID string
	Actor    string
	Metadata any
	At       time.Time
}

// Dispatcher records events on a background worker. Dispatch never blocks;
// when the queue is full the event is dropped. A nil *Dispatcher is a no-op.
type Dispatcher struct {
	recorder Recorder
	log      *zap.Logger
	queue    chan Event

	mu     sync.RWMutex
	closed bool
	done   chan struct{}
}

func NewDispatcher(recorder Recorder, log *zap.Logger) *Dispatcher {
	d := &Dispatcher{
		recorder: recorder,
		log:      log,
		queue:    make(chan Event, queueSize),
		done:     make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)

	for ev := range d.queue {
		if err := d.recorder.Record(context.Background(), ev); err != nil {
			d.log.Warn("audit record failed", zap.String("action", ev.Action), zap.Error(err))
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	if d == nil {
		return
	}
	if ev.At.IsZero() {
		ev.At = time.Now().UTC()
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		return
	}

	select {
	case d.queue <- ev:
	default:
		d.log.Warn("audit queue full, dropping event", zap.String("action", ev.Action))
	}
}

// Close stops accepting events and waits until queued ones are recorded or ctx ends.
func (d *Dispatcher) Close(ctx context.Context) error {
	if d == nil {
		return nil
	}

	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()

	select {
	case <-d.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
