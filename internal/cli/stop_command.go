package cli

import (
	"context"
	"fmt"

	"timeclock/internal/errors"
	"timeclock/internal/session"
)

// StopCommand handles the stop command
type StopCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewStopCommand creates a new stop command handler
func NewStopCommand(app *App) *StopCommand {
	return &StopCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the stop command
func (c *StopCommand) Execute(ctx context.Context, args []string, password string) error {
	if len(args) < 1 {
		return errors.NewInvalidInputError("command", "stop", "usage: timeclock stop <employee>")
	}

	employee, err := c.app.authenticateActor(ctx, args[0], password)
	if err != nil {
		return c.errorHandler.Handle("stop session", err)
	}

	if err := c.app.restoreSession(ctx, employee.ID); err != nil {
		return c.errorHandler.Handle("stop session", err)
	}

	record, err := c.app.engine.Stop(ctx, employee.ID, session.StopReasonManual)
	if err != nil {
		return c.errorHandler.Handle("stop session", err)
	}

	fmt.Printf("Stopped work session for %s: %d billable minutes", employee.Name, record.DurationMinutes)
	if record.LunchDeducted {
		fmt.Printf(" (lunch break deducted)")
	}
	fmt.Println()
	return nil
}
