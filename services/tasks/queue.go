package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const TypeViewIncrement = "views:increment"

// ViewPayload identifies the document whose counter is bumped.
type ViewPayload struct {
	Kind string `json:"kind"`
	ID   string `json:"id"`
}

// NewViewTask builds a single-attempt increment task.
func NewViewTask(kind string, id primitive.ObjectID) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(ViewPayload{Kind: kind, ID: id.Hex()})
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeViewIncrement, b)
	opts := []asynq.Option{
		asynq.MaxRetry(0),
		asynq.Timeout(10 * time.Second),
	}
	return task, opts, nil
}

// Enqueuer is the part of asynq.Client used to relay views.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// QueueSink returns a ViewSink that relays views of kind to the task queue.
func QueueSink(client Enqueuer, kind string) ViewSink {
	return func(ctx context.Context, id primitive.ObjectID) error {
		task, opts, err := NewViewTask(kind, id)
		if err != nil {
			return err
		}
		if _, err := client.EnqueueContext(ctx, task, opts...); err != nil {
			return fmt.Errorf("enqueue %s view: %w", kind, err)
		}
		return nil
	}
}
