package session

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// Monitor periodically enforces the automatic cutoff on open sessions.
// Repeated polling is harmless because a stopped session no longer
// appears open.
type Monitor struct {
	engine   *Engine
	interval time.Duration
}

// NewMonitor creates a cutoff monitor polling at the given interval.
func NewMonitor(engine *Engine, interval time.Duration) *Monitor {
	return &Monitor{
		engine:   engine,
		interval: interval,
	}
}

// Run polls until the context is cancelled.
func (m *Monitor) Run(ctx context.Context) {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	log.Debug("cutoff monitor started", "interval", m.interval)
	for {
		select {
		case <-ctx.Done():
			log.Debug("cutoff monitor stopped")
			return
		case <-ticker.C:
			for _, record := range m.engine.EnforceCutoff(ctx) {
				log.Info("session stopped by automatic cutoff",
					"actor_id", record.EmployeeID, "record_id", record.ID, "minutes", record.DurationMinutes)
			}
		}
	}
}
