package cli

import (
	"context"
	"fmt"

	"timeclock/internal/errors"
)

// StartCommand handles the start command
type StartCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewStartCommand creates a new start command handler
func NewStartCommand(app *App) *StartCommand {
	return &StartCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the start command
func (c *StartCommand) Execute(ctx context.Context, args []string, password string) error {
	if len(args) < 2 {
		return errors.NewInvalidInputError("command", "start", "usage: timeclock start <employee> <project>")
	}

	employee, err := c.app.authenticateActor(ctx, args[0], password)
	if err != nil {
		return c.errorHandler.Handle("start session", err)
	}

	project, err := c.app.resolveProject(ctx, args[1])
	if err != nil {
		return c.errorHandler.Handle("start session", err)
	}

	// Recover any session that survived a restart before checking state.
	if err := c.app.restoreSession(ctx, employee.ID); err != nil {
		return c.errorHandler.Handle("start session", err)
	}

	workSession, err := c.app.engine.Start(ctx, employee.ID, project.ID)
	if err != nil {
		return c.errorHandler.Handle("start session", err)
	}

	fmt.Printf("Started work session for %s on project %s at %s\n",
		employee.Name, project.Name, workSession.StartTime.Format("15:04:05"))
	return nil
}
