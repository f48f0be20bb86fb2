package cli

import (
	"context"
	"fmt"

	"timeclock/internal/errors"
)

// ResumeCommand handles the resume command
type ResumeCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewResumeCommand creates a new resume command handler
func NewResumeCommand(app *App) *ResumeCommand {
	return &ResumeCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the resume command
func (c *ResumeCommand) Execute(ctx context.Context, args []string, password string) error {
	if len(args) < 1 {
		return errors.NewInvalidInputError("command", "resume", "usage: timeclock resume <employee>")
	}

	employee, err := c.app.authenticateActor(ctx, args[0], password)
	if err != nil {
		return c.errorHandler.Handle("resume session", err)
	}

	if err := c.app.restoreSession(ctx, employee.ID); err != nil {
		return c.errorHandler.Handle("resume session", err)
	}

	if err := c.app.engine.Resume(ctx, employee.ID); err != nil {
		return c.errorHandler.Handle("resume session", err)
	}

	fmt.Printf("Resumed work session for %s\n", employee.Name)
	return nil
}
