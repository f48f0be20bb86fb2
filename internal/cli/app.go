package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"timeclock/internal/config"
	"timeclock/internal/domain"
	"timeclock/internal/errors"
	"timeclock/internal/services"
	"timeclock/internal/session"
)

// App bundles the collaborators the command handlers work against
type App struct {
	config    *config.Config
	engine    *session.Engine
	employees services.EmployeeService
	projects  services.ProjectService
	records   services.TimeRecordService
	vacations services.VacationService
	reporting services.ReportingService
}

// NewApp creates a new CLI application instance with dependency injection
func NewApp(
	cfg *config.Config,
	engine *session.Engine,
	employees services.EmployeeService,
	projects services.ProjectService,
	records services.TimeRecordService,
	vacations services.VacationService,
	reporting services.ReportingService,
) *App {
	return &App{
		config:    cfg,
		engine:    engine,
		employees: employees,
		projects:  projects,
		records:   records,
		vacations: vacations,
		reporting: reporting,
	}
}

// authenticateActor verifies an employee login and returns the employee.
// Every session command goes through here so the engine only ever sees
// authenticated actor ids.
func (a *App) authenticateActor(ctx context.Context, name, password string) (*domain.Employee, error) {
	if strings.TrimSpace(name) == "" {
		return nil, errors.NewInvalidInputError("employee", name, "employee name is required")
	}
	return a.employees.Authenticate(ctx, name, password)
}

// requireAdmin gates administrative commands behind the admin password
func (a *App) requireAdmin(password string) error {
	return a.employees.AuthenticateAdmin(password)
}

// resolveProject accepts a project id or a project name and returns the
// matching project. Names are matched case-insensitively.
func (a *App) resolveProject(ctx context.Context, nameOrID string) (*domain.Project, error) {
	project, err := a.projects.GetProject(ctx, nameOrID)
	if err == nil {
		return project, nil
	}
	if !errors.IsErrorType(err, errors.ErrorTypeNotFound) {
		return nil, err
	}

	projects, err := a.projects.ListProjects(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range projects {
		if strings.EqualFold(p.Name, nameOrID) {
			return p, nil
		}
	}
	return nil, errors.NewNotFoundError("project", nameOrID)
}

// restoreSession recovers any in-progress session for the actor before a
// command acts on it. A restart must not lose a running timer.
func (a *App) restoreSession(ctx context.Context, actorID string) error {
	_, err := a.engine.Restore(ctx, actorID)
	return err
}

// formatClock renders a duration as HH:MM:SS for status displays
func formatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d.Seconds())
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, (total%3600)/60, total%60)
}

// parseDate parses a YYYY-MM-DD date argument
func parseDate(arg string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", arg, time.Local)
	if err != nil {
		return time.Time{}, errors.NewInvalidInputError("date", arg, "expected format YYYY-MM-DD")
	}
	return t, nil
}

// parseDateTime parses a YYYY-MM-DD HH:MM date-time argument
func parseDateTime(arg string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02 15:04", arg, time.Local)
	if err != nil {
		return time.Time{}, errors.NewInvalidInputError("time", arg, "expected format \"YYYY-MM-DD HH:MM\"")
	}
	return t, nil
}
