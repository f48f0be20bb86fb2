package cli

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"timeclock/internal/session"
)

// WatchCommand hosts the background cutoff monitor. It recovers every
// in-progress session from the durable store and then keeps enforcing the
// end-of-day cutoff until interrupted.
type WatchCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewWatchCommand creates a new watch command handler
func NewWatchCommand(app *App) *WatchCommand {
	return &WatchCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the watch command until SIGINT or SIGTERM
func (c *WatchCommand) Execute(ctx context.Context, args []string) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	employees, err := c.app.employees.ListEmployees(ctx)
	if err != nil {
		return c.errorHandler.Handle("start watcher", err)
	}

	restored := 0
	for _, employee := range employees {
		workSession, err := c.app.engine.Restore(ctx, employee.ID)
		if err != nil {
			return c.errorHandler.Handle("start watcher", err)
		}
		if workSession != nil {
			restored++
		}
	}

	fmt.Printf("Watching %d employees (%d running sessions), cutoff at %02d:00\n",
		len(employees), restored, c.app.config.Session.CutoffHour)

	monitor := session.NewMonitor(c.app.engine, c.app.config.Session.MonitorInterval)
	monitor.Run(ctx)

	fmt.Println("Watcher stopped")
	return nil
}
