package cli

import (
	"context"
	"fmt"

	"timeclock/internal/services"
)

// ReportCommand handles reporting subcommands for administrators
type ReportCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewReportCommand creates a new report command handler
func NewReportCommand(app *App) *ReportCommand {
	return &ReportCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// ExecuteEmployees prints billable totals per employee. Requires the admin
// password.
func (c *ReportCommand) ExecuteEmployees(ctx context.Context, from, to, adminPassword string) error {
	if err := c.app.requireAdmin(adminPassword); err != nil {
		return c.errorHandler.Handle("report employees", err)
	}

	timeRange, err := c.parseRange(from, to)
	if err != nil {
		return c.errorHandler.Handle("report employees", err)
	}

	totals, err := c.app.reporting.EmployeeTotals(ctx, timeRange)
	if err != nil {
		return c.errorHandler.Handle("report employees", err)
	}

	if len(totals) == 0 {
		fmt.Println("No time records found")
		return nil
	}

	fmt.Printf("%-20s %10s %8s %8s %6s\n", "Employee", "Minutes", "Records", "Lunch", "Open")
	for _, total := range totals {
		fmt.Printf("%-20s %10d %8d %8d %6d\n",
			total.Employee.Name, total.TotalMinutes, total.RecordCount,
			total.LunchDeducted, total.OpenRecords)
	}
	return nil
}

// ExecuteProjects prints billable totals per project. Requires the admin
// password.
func (c *ReportCommand) ExecuteProjects(ctx context.Context, from, to, adminPassword string) error {
	if err := c.app.requireAdmin(adminPassword); err != nil {
		return c.errorHandler.Handle("report projects", err)
	}

	timeRange, err := c.parseRange(from, to)
	if err != nil {
		return c.errorHandler.Handle("report projects", err)
	}

	totals, err := c.app.reporting.ProjectTotals(ctx, timeRange)
	if err != nil {
		return c.errorHandler.Handle("report projects", err)
	}

	if len(totals) == 0 {
		fmt.Println("No time records found")
		return nil
	}

	fmt.Printf("%-20s %10s %8s\n", "Project", "Minutes", "Records")
	for _, total := range totals {
		fmt.Printf("%-20s %10d %8d\n", total.Project.Name, total.TotalMinutes, total.RecordCount)
	}
	return nil
}

// parseRange converts the optional from/to date arguments into a time range.
// The to date is inclusive, so the range extends to the end of that day.
func (c *ReportCommand) parseRange(from, to string) (*services.TimeRange, error) {
	if from == "" && to == "" {
		return nil, nil
	}

	timeRange := &services.TimeRange{}
	if from != "" {
		start, err := parseDate(from)
		if err != nil {
			return nil, err
		}
		timeRange.Start = start
	}
	if to != "" {
		end, err := parseDate(to)
		if err != nil {
			return nil, err
		}
		timeRange.End = end.AddDate(0, 0, 1)
	}
	return timeRange, nil
}
