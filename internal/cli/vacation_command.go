package cli

import (
	"context"
	"fmt"

	"timeclock/internal/errors"
)

// VacationCommand handles vacation request subcommands
type VacationCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewVacationCommand creates a new vacation command handler
func NewVacationCommand(app *App) *VacationCommand {
	return &VacationCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// ExecuteRequest files a vacation request for an authenticated employee
func (c *VacationCommand) ExecuteRequest(ctx context.Context, args []string, password string) error {
	if len(args) < 3 {
		return errors.NewInvalidInputError("command", "vacation request", "usage: timeclock vacation request <employee> <start> <end>")
	}

	employee, err := c.app.authenticateActor(ctx, args[0], password)
	if err != nil {
		return c.errorHandler.Handle("request vacation", err)
	}

	startDate, err := parseDate(args[1])
	if err != nil {
		return c.errorHandler.Handle("request vacation", err)
	}
	endDate, err := parseDate(args[2])
	if err != nil {
		return c.errorHandler.Handle("request vacation", err)
	}

	vacation, err := c.app.vacations.RequestVacation(ctx, employee.ID, startDate, endDate)
	if err != nil {
		return c.errorHandler.Handle("request vacation", err)
	}

	fmt.Printf("Requested vacation %s: %s to %s (%d days, %s)\n",
		vacation.ID,
		vacation.StartDate.Format("2006-01-02"), vacation.EndDate.Format("2006-01-02"),
		vacation.Days(), vacation.Status)
	return nil
}

// ExecuteList lists vacation requests, optionally for a single employee
func (c *VacationCommand) ExecuteList(ctx context.Context, args []string) error {
	var employeeID *string
	if len(args) > 0 {
		employeeID = &args[0]
	}

	vacations, err := c.app.vacations.ListVacations(ctx, employeeID)
	if err != nil {
		return c.errorHandler.Handle("list vacations", err)
	}

	if len(vacations) == 0 {
		fmt.Println("No vacation requests found")
		return nil
	}

	for _, vacation := range vacations {
		fmt.Printf("%s  %s  %s to %s  %s\n",
			vacation.ID, vacation.EmployeeID,
			vacation.StartDate.Format("2006-01-02"), vacation.EndDate.Format("2006-01-02"),
			vacation.Status)
	}
	return nil
}

// ExecuteApprove approves a pending vacation request. Requires the admin
// password.
func (c *VacationCommand) ExecuteApprove(ctx context.Context, args []string, adminPassword string) error {
	if len(args) < 1 {
		return errors.NewInvalidInputError("command", "vacation approve", "usage: timeclock vacation approve <id>")
	}
	if err := c.app.requireAdmin(adminPassword); err != nil {
		return c.errorHandler.Handle("approve vacation", err)
	}

	if err := c.app.vacations.ApproveVacation(ctx, args[0]); err != nil {
		return c.errorHandler.Handle("approve vacation", err)
	}

	fmt.Printf("Approved vacation %s\n", args[0])
	return nil
}

// ExecuteReject rejects a pending vacation request. Requires the admin
// password.
func (c *VacationCommand) ExecuteReject(ctx context.Context, args []string, adminPassword string) error {
	if len(args) < 1 {
		return errors.NewInvalidInputError("command", "vacation reject", "usage: timeclock vacation reject <id>")
	}
	if err := c.app.requireAdmin(adminPassword); err != nil {
		return c.errorHandler.Handle("reject vacation", err)
	}

	if err := c.app.vacations.RejectVacation(ctx, args[0]); err != nil {
		return c.errorHandler.Handle("reject vacation", err)
	}

	fmt.Printf("Rejected vacation %s\n", args[0])
	return nil
}
