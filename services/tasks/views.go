package tasks

import (
	"context"
	"sync"
	"time"

	"estatehub/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// ViewSink persists one view of the document id.
type ViewSink func(ctx context.Context, id primitive.ObjectID) error

// ViewRecorder records document views off the request path. Record never
// blocks: when the buffer is full the view is dropped and logged. A single
// worker drains the buffer; sink errors are logged and otherwise ignored.
type ViewRecorder struct {
	name    string
	sink    ViewSink
	timeout time.Duration

	ch        chan primitive.ObjectID
	done      chan struct{}
	closeOnce sync.Once
	mu        sync.RWMutex
	closed    bool
}

// NewViewRecorder starts the worker. buffer <= 0 uses 256.
func NewViewRecorder(name string, sink ViewSink, buffer int) *ViewRecorder {
	if buffer <= 0 {
		buffer = 256
	}
	r := &ViewRecorder{
		name:    name,
		sink:    sink,
		timeout: 5 * time.Second,
		ch:      make(chan primitive.ObjectID, buffer),
		done:    make(chan struct{}),
	}
	go r.run()
	return r
}

// Record queues one view of id.
func (r *ViewRecorder) Record(id primitive.ObjectID) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.closed {
		return
	}
	select {
	case r.ch <- id:
	default:
		utils.GetLogger().Warn("View counter buffer full, dropping view",
			zap.String("recorder", r.name), zap.String("id", id.Hex()))
	}
}

func (r *ViewRecorder) run() {
	defer close(r.done)
	for id := range r.ch {
		ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
		if err := r.sink(ctx, id); err != nil {
			utils.GetLogger().Error("Failed to record view",
				zap.String("recorder", r.name), zap.String("id", id.Hex()), zap.Error(err))
		}
		cancel()
	}
}

// Close stops accepting views and waits for queued ones to drain, or for
// ctx to end.
func (r *ViewRecorder) Close(ctx context.Context) error {
	r.closeOnce.Do(func() {
		r.mu.Lock()
		r.closed = true
		close(r.ch)
		r.mu.Unlock()
	})
	select {
	case <-r.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
