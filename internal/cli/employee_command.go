package cli

import (
	"context"
	"fmt"

	"timeclock/internal/errors"
)

// EmployeeCommand handles employee management subcommands
type EmployeeCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewEmployeeCommand creates a new employee command handler
func NewEmployeeCommand(app *App) *EmployeeCommand {
	return &EmployeeCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// ExecuteAdd creates a new employee. Requires the admin password.
func (c *EmployeeCommand) ExecuteAdd(ctx context.Context, args []string, adminPassword string) error {
	if len(args) < 2 {
		return errors.NewInvalidInputError("command", "employee add", "usage: timeclock employee add <name> <password>")
	}
	if err := c.app.requireAdmin(adminPassword); err != nil {
		return c.errorHandler.Handle("add employee", err)
	}

	employee, err := c.app.employees.CreateEmployee(ctx, args[0], args[1])
	if err != nil {
		return c.errorHandler.Handle("add employee", err)
	}

	fmt.Printf("Added employee %s (%s)\n", employee.Name, employee.ID)
	return nil
}

// ExecuteList lists all employees
func (c *EmployeeCommand) ExecuteList(ctx context.Context, args []string) error {
	employees, err := c.app.employees.ListEmployees(ctx)
	if err != nil {
		return c.errorHandler.Handle("list employees", err)
	}

	if len(employees) == 0 {
		fmt.Println("No employees found")
		return nil
	}

	for _, employee := range employees {
		state := "active"
		if !employee.Active {
			state = "inactive"
		}
		fmt.Printf("%s  %-20s %s\n", employee.ID, employee.Name, state)
	}
	return nil
}

// ExecuteSetActive activates or deactivates an employee. Requires the admin
// password. Deactivated employees can no longer authenticate or clock in.
func (c *EmployeeCommand) ExecuteSetActive(ctx context.Context, args []string, active bool, adminPassword string) error {
	verb := "deactivate"
	if active {
		verb = "activate"
	}
	if len(args) < 1 {
		return errors.NewInvalidInputError("command", "employee "+verb, fmt.Sprintf("usage: timeclock employee %s <id>", verb))
	}
	if err := c.app.requireAdmin(adminPassword); err != nil {
		return c.errorHandler.Handle(verb+" employee", err)
	}

	employee, err := c.app.employees.SetEmployeeActive(ctx, args[0], active)
	if err != nil {
		return c.errorHandler.Handle(verb+" employee", err)
	}

	state := "inactive"
	if employee.Active {
		state = "active"
	}
	fmt.Printf("Employee %s is now %s\n", employee.Name, state)
	return nil
}
