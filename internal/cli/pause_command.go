package cli

import (
	"context"
	"fmt"

	"timeclock/internal/errors"
)

// PauseCommand handles the pause command
type PauseCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewPauseCommand creates a new pause command handler
func NewPauseCommand(app *App) *PauseCommand {
	return &PauseCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the pause command
func (c *PauseCommand) Execute(ctx context.Context, args []string, password string) error {
	if len(args) < 1 {
		return errors.NewInvalidInputError("command", "pause", "usage: timeclock pause <employee>")
	}

	employee, err := c.app.authenticateActor(ctx, args[0], password)
	if err != nil {
		return c.errorHandler.Handle("pause session", err)
	}

	if err := c.app.restoreSession(ctx, employee.ID); err != nil {
		return c.errorHandler.Handle("pause session", err)
	}

	if err := c.app.engine.Pause(ctx, employee.ID); err != nil {
		return c.errorHandler.Handle("pause session", err)
	}

	fmt.Printf("Paused work session for %s\n", employee.Name)
	return nil
}
