package cli

import (
	"context"
	"fmt"

	"timeclock/internal/errors"
)

// StatusCommand handles the status command
type StatusCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewStatusCommand creates a new status command handler
func NewStatusCommand(app *App) *StatusCommand {
	return &StatusCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the status command
func (c *StatusCommand) Execute(ctx context.Context, args []string, password string) error {
	if len(args) < 1 {
		return errors.NewInvalidInputError("command", "status", "usage: timeclock status <employee>")
	}

	employee, err := c.app.authenticateActor(ctx, args[0], password)
	if err != nil {
		return c.errorHandler.Handle("show status", err)
	}

	if err := c.app.restoreSession(ctx, employee.ID); err != nil {
		return c.errorHandler.Handle("show status", err)
	}

	workSession := c.app.engine.Current(employee.ID)
	if workSession == nil {
		fmt.Printf("No running work session for %s\n", employee.Name)
		return nil
	}

	elapsed, err := c.app.engine.Elapsed(employee.ID)
	if err != nil {
		return c.errorHandler.Handle("show status", err)
	}

	project, err := c.app.projects.GetProject(ctx, workSession.ProjectID)
	if err != nil {
		return c.errorHandler.Handle("show status", err)
	}

	state := "running"
	if workSession.IsPaused() {
		state = "paused"
	}

	fmt.Printf("%s is %s on project %s\n", employee.Name, state, project.Name)
	fmt.Printf("  Started: %s\n", workSession.StartTime.Format("2006-01-02 15:04:05"))
	fmt.Printf("  Worked:  %s\n", formatClock(elapsed))
	return nil
}
