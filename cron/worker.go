package cron

import (
	"context"
	"encoding/json"
	"time"

	"estatehub/config"
	"estatehub/services/tasks"
	"estatehub/utils"

	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Counter bumps the view counter of one document.
type Counter interface {
	IncrementViews(ctx context.Context, id primitive.ObjectID) error
}

// RedisOpt is the task queue connection taken from configuration.
func RedisOpt(cfg config.Config) asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisTaskDB,
	}
}

// ViewWorker consumes view-increment tasks.
type ViewWorker struct {
	srv *asynq.Server
	mux *asynq.ServeMux
}

// NewViewWorker wires counters by kind ("property", "service").
func NewViewWorker(opt asynq.RedisClientOpt, counters map[string]Counter) *ViewWorker {
	srv := asynq.NewServer(
		opt,
		asynq.Config{
			Concurrency: 4,
			Queues: map[string]int{
				"default": 1,
			},
			ShutdownTimeout: 5 * time.Second,
		},
	)
	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeViewIncrement, handleViewTask(counters))
	return &ViewWorker{srv: srv, mux: mux}
}

// Start runs the worker in the background.
func (w *ViewWorker) Start() error {
	if err := w.srv.Start(w.mux); err != nil {
		return err
	}
	utils.GetLogger().Info("View worker started")
	return nil
}

func (w *ViewWorker) Shutdown() {
	w.srv.Shutdown()
}

// handleViewTask never asks asynq to retry: a lost view is acceptable.
func handleViewTask(counters map[string]Counter) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		logger := utils.GetLogger()

		var p tasks.ViewPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("Invalid view payload", zap.Error(err))
			return nil
		}
		counter, ok := counters[p.Kind]
		if !ok {
			logger.Warn("Unknown view kind", zap.String("kind", p.Kind))
			return nil
		}
		id, err := primitive.ObjectIDFromHex(p.ID)
		if err != nil {
			logger.Error("Invalid view id", zap.String("id", p.ID))
			return nil
		}
		if err := counter.IncrementViews(ctx, id); err != nil {
			logger.Error("Failed to increment views",
				zap.String("kind", p.Kind), zap.String("id", p.ID), zap.Error(err))
		}
		return nil
	}
}
