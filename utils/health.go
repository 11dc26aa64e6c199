package utils

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// HealthCheck pings one dependency. Optional checks are reported but do
// not make the service unhealthy.
type HealthCheck struct {
	Name     string
	Optional bool
	Ping     func(ctx context.Context) error
}

// HealthStatus is a snapshot of every check.
type HealthStatus struct {
	Status    string          `json:"status"`
	Checks    map[string]bool `json:"checks"`
	Uptime    string          `json:"uptime"`
	CheckedAt time.Time       `json:"checkedAt"`
}

func (s HealthStatus) Healthy() bool { return s.Status == "ok" }

type HealthMonitor struct {
	checks  []HealthCheck
	started time.Time

	mu      sync.RWMutex
	current HealthStatus
}

func NewHealthMonitor(checks ...HealthCheck) *HealthMonitor {
	return &HealthMonitor{checks: checks, started: time.Now()}
}

// Refresh runs every check and stores the result.
func (m *HealthMonitor) Refresh(ctx context.Context) HealthStatus {
	status := HealthStatus{Status: "ok", Checks: make(map[string]bool, len(m.checks)), CheckedAt: time.Now()}
	for _, hc := range m.checks {
		pctx, cancel := context.WithTimeout(ctx, 2*time.Second)
		err := hc.Ping(pctx)
		cancel()
		status.Checks[hc.Name] = err == nil
		if err != nil {
			GetLogger().Warn("Health check failed", zap.String("check", hc.Name), zap.Error(err))
			if !hc.Optional {
				status.Status = "degraded"
			}
		}
	}

	m.mu.Lock()
	m.current = status
	m.mu.Unlock()
	return status
}

// Status returns the last snapshot, running the checks if none exists yet.
func (m *HealthMonitor) Status(ctx context.Context) HealthStatus {
	m.mu.RLock()
	status := m.current
	m.mu.RUnlock()
	if status.CheckedAt.IsZero() {
		status = m.Refresh(ctx)
	}
	status.Uptime = time.Since(m.started).Round(time.Second).String()
	return status
}

// Start refreshes the snapshot every interval until ctx is done.
func (m *HealthMonitor) Start(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				m.Refresh(ctx)
			}
		}
	}()
}
