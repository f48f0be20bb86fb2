package cli

import (
	"context"
	"fmt"
	"time"

	"timeclock/internal/domain"
	"timeclock/internal/errors"
)

// RecordCommand handles time record subcommands
type RecordCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewRecordCommand creates a new record command handler
func NewRecordCommand(app *App) *RecordCommand {
	return &RecordCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// ExecuteList lists time records with optional filters
func (c *RecordCommand) ExecuteList(ctx context.Context, employeeID, projectID string, openOnly bool) error {
	opts := domain.SearchOptions{OpenOnly: openOnly}
	if employeeID != "" {
		opts.EmployeeID = &employeeID
	}
	if projectID != "" {
		opts.ProjectID = &projectID
	}

	records, err := c.app.records.SearchRecords(ctx, opts)
	if err != nil {
		return c.errorHandler.Handle("list records", err)
	}

	if len(records) == 0 {
		fmt.Println("No time records found")
		return nil
	}

	for _, record := range records {
		end := "running"
		if record.EndTime != nil {
			end = record.EndTime.Format("15:04")
		}
		lunch := ""
		if record.LunchDeducted {
			lunch = " lunch"
		}
		fmt.Printf("%s  %s  %s %s-%s  %4d min%s\n",
			record.ID, record.EmployeeID,
			record.StartTime.Format("2006-01-02"), record.StartTime.Format("15:04"), end,
			record.DurationMinutes, lunch)
	}
	return nil
}

// ExecuteEdit applies an administrative correction to a time record and
// recomputes its billable minutes. Requires the admin password.
func (c *RecordCommand) ExecuteEdit(ctx context.Context, args []string, pausedMinutes int, adminPassword string) error {
	if len(args) < 3 {
		return errors.NewInvalidInputError("command", "record edit",
			"usage: timeclock record edit <id> \"<start>\" \"<end>\"")
	}
	if err := c.app.requireAdmin(adminPassword); err != nil {
		return c.errorHandler.Handle("edit record", err)
	}
	if pausedMinutes < 0 {
		return errors.NewInvalidInputError("paused", pausedMinutes, "paused minutes cannot be negative")
	}

	startTime, err := parseDateTime(args[1])
	if err != nil {
		return c.errorHandler.Handle("edit record", err)
	}
	endTime, err := parseDateTime(args[2])
	if err != nil {
		return c.errorHandler.Handle("edit record", err)
	}

	paused := time.Duration(pausedMinutes) * time.Minute
	record, err := c.app.records.EditRecord(ctx, args[0], startTime, endTime, paused)
	if err != nil {
		return c.errorHandler.Handle("edit record", err)
	}

	fmt.Printf("Updated record %s: %d billable minutes", record.ID, record.DurationMinutes)
	if record.LunchDeducted {
		fmt.Printf(" (lunch break deducted)")
	}
	fmt.Println()
	return nil
}
