package tasks

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"estatehub/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type countingSink struct {
	mu     sync.Mutex
	counts map[primitive.ObjectID]int
	fail   bool
	gate   chan struct{}
}

func (s *countingSink) record(ctx context.Context, id primitive.ObjectID) error {
	if s.gate != nil {
		<-s.gate
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail {
		return errors.New("store unavailable")
	}
	if s.counts == nil {
		s.counts = map[primitive.ObjectID]int{}
	}
	s.counts[id]++
	return nil
}

func TestViewRecorderDrainsOnClose(t *testing.T) {
	utils.SetLogger(zap.NewNop())
	sink := &countingSink{}
	r := NewViewRecorder("property", sink.record, 16)

	id := primitive.NewObjectID()
	for i := 0; i < 10; i++ {
		r.Record(id)
	}
	require.NoError(t, r.Close(context.Background()))
	assert.Equal(t, 10, sink.counts[id])

	r.Record(id)
	assert.Equal(t, 10, sink.counts[id])
}

func TestViewRecorderNeverBlocks(t *testing.T) {
	utils.SetLogger(zap.NewNop())
	sink := &countingSink{gate: make(chan struct{})}
	r := NewViewRecorder("property", sink.record, 1)

	done := make(chan struct{})
	go func() {
		for i := 0; i < 50; i++ {
			r.Record(primitive.NewObjectID())
		}
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Record blocked with a full buffer")
	}

	close(sink.gate)
	require.NoError(t, r.Close(context.Background()))
	total := 0
	for _, n := range sink.counts {
		total += n
	}
	assert.Less(t, total, 50)
	assert.GreaterOrEqual(t, total, 1)
}

func TestViewRecorderSwallowsSinkErrors(t *testing.T) {
	utils.SetLogger(zap.NewNop())
	sink := &countingSink{fail: true}
	r := NewViewRecorder("service", sink.record, 4)
	r.Record(primitive.NewObjectID())
	assert.NoError(t, r.Close(context.Background()))
}

func TestViewRecorderCloseHonoursContext(t *testing.T) {
	utils.SetLogger(zap.NewNop())
	sink := &countingSink{gate: make(chan struct{})}
	r := NewViewRecorder("property", sink.record, 4)
	r.Record(primitive.NewObjectID())

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, r.Close(ctx), context.DeadlineExceeded)
	close(sink.gate)
}
