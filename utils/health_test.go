package utils

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHealthMonitor(t *testing.T) {
	calls := 0
	m := NewHealthMonitor(
		HealthCheck{Name: "mongo", Ping: func(context.Context) error { calls++; return nil }},
		HealthCheck{Name: "redis", Optional: true, Ping: func(context.Context) error { return errors.New("refused") }},
	)

	status := m.Status(context.Background())
	assert.True(t, status.Healthy(), "optional failures do not degrade")
	assert.Equal(t, map[string]bool{"mongo": true, "redis": false}, status.Checks)

	// The snapshot is reused until the next refresh.
	m.Status(context.Background())
	assert.Equal(t, 1, calls)

	m.Refresh(context.Background())
	assert.Equal(t, 2, calls)
}

func TestHealthMonitorDegraded(t *testing.T) {
	m := NewHealthMonitor(HealthCheck{Name: "mongo", Ping: func(context.Context) error { return errors.New("down") }})
	status := m.Status(context.Background())
	assert.False(t, status.Healthy())
	assert.Equal(t, "degraded", status.Status)
}
