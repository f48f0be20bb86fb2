package cli

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timeclock/internal/config"
	"timeclock/internal/repository/sqlite"
	"timeclock/internal/services"
	"timeclock/internal/session"
	"timeclock/internal/snapshot"
)

// setupApp wires a full application against an in-memory database and a
// temporary snapshot directory.
func setupApp(t *testing.T) *App {
	t.Helper()

	cfg := config.NewConfig()
	cfg.Session.StateDir = t.TempDir()

	repo, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		repo.Close()
	})

	snapshots, err := snapshot.NewFileStore(cfg.Session.StateDir)
	require.NoError(t, err)

	policy := session.DefaultPolicy()
	employees := services.NewEmployeeService(repo, cfg.Admin.Password)
	projects := services.NewProjectService(repo)
	records := services.NewTimeRecordService(repo, policy)
	vacations := services.NewVacationService(repo)
	reporting := services.NewReportingService(repo)
	engine := session.NewEngine(records, projects, snapshots, session.SystemClock(), policy)

	app := NewApp(cfg, engine, employees, projects, records, vacations, reporting)

	ctx := context.Background()
	_, err = employees.CreateEmployee(ctx, "Alice", "secret")
	require.NoError(t, err)
	_, err = projects.CreateProject(ctx, "Website", "")
	require.NoError(t, err)

	return app
}

func TestSessionCommands_FullLifecycle(t *testing.T) {
	app := setupApp(t)
	ctx := context.Background()

	require.NoError(t, NewStartCommand(app).Execute(ctx, []string{"Alice", "Website"}, "secret"))
	require.NoError(t, NewStatusCommand(app).Execute(ctx, []string{"Alice"}, "secret"))
	require.NoError(t, NewPauseCommand(app).Execute(ctx, []string{"Alice"}, "secret"))
	require.NoError(t, NewResumeCommand(app).Execute(ctx, []string{"Alice"}, "secret"))
	require.NoError(t, NewStopCommand(app).Execute(ctx, []string{"Alice"}, "secret"))

	// After the stop nothing is open any more.
	open, err := app.records.FindOpenRecord(ctx, currentEmployeeID(t, app))
	require.NoError(t, err)
	assert.Nil(t, open)
}

func TestStartCommand_Errors(t *testing.T) {
	app := setupApp(t)
	ctx := context.Background()

	t.Run("should reject wrong password", func(t *testing.T) {
		err := NewStartCommand(app).Execute(ctx, []string{"Alice", "Website"}, "wrong")

		assert.Error(t, err)
	})

	t.Run("should reject unknown project", func(t *testing.T) {
		err := NewStartCommand(app).Execute(ctx, []string{"Alice", "Nope"}, "secret")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})

	t.Run("should reject a second running session", func(t *testing.T) {
		require.NoError(t, NewStartCommand(app).Execute(ctx, []string{"Alice", "Website"}, "secret"))

		err := NewStartCommand(app).Execute(ctx, []string{"Alice", "Website"}, "secret")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "already running")
	})
}

func TestStopCommand_WithoutSession(t *testing.T) {
	app := setupApp(t)

	err := NewStopCommand(app).Execute(context.Background(), []string{"Alice"}, "secret")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no active work session")
}

func TestApp_ResolveProject(t *testing.T) {
	app := setupApp(t)
	ctx := context.Background()

	byName, err := app.resolveProject(ctx, "website")
	require.NoError(t, err)
	assert.Equal(t, "Website", byName.Name)

	byID, err := app.resolveProject(ctx, byName.ID)
	require.NoError(t, err)
	assert.Equal(t, byName.ID, byID.ID)

	_, err = app.resolveProject(ctx, "missing")
	assert.Error(t, err)
}

func TestVacationCommands(t *testing.T) {
	app := setupApp(t)
	ctx := context.Background()

	require.NoError(t, NewVacationCommand(app).ExecuteRequest(ctx, []string{"Alice", "2026-07-01", "2026-07-14"}, "secret"))

	vacations, err := app.vacations.ListVacations(ctx, nil)
	require.NoError(t, err)
	require.Len(t, vacations, 1)

	require.NoError(t, NewVacationCommand(app).ExecuteApprove(ctx, []string{vacations[0].ID}, app.config.Admin.Password))

	err = NewVacationCommand(app).ExecuteApprove(ctx, []string{vacations[0].ID}, "wrong")
	assert.Error(t, err)
}

func TestEmployeeCommands_AdminGate(t *testing.T) {
	app := setupApp(t)
	ctx := context.Background()

	err := NewEmployeeCommand(app).ExecuteAdd(ctx, []string{"Bob", "hunter2"}, "wrong")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "permission denied")

	require.NoError(t, NewEmployeeCommand(app).ExecuteAdd(ctx, []string{"Bob", "hunter2"}, app.config.Admin.Password))

	employees, err := app.employees.ListEmployees(ctx)
	require.NoError(t, err)
	assert.Len(t, employees, 2)
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "00:00:00", formatClock(0))
	assert.Equal(t, "01:30:05", formatClock(90*time.Minute+5*time.Second))
	assert.Equal(t, "00:00:00", formatClock(-time.Minute))
}

func TestParseDate(t *testing.T) {
	parsed, err := parseDate("2026-07-01")
	require.NoError(t, err)
	assert.Equal(t, 2026, parsed.Year())

	_, err = parseDate("01.07.2026")
	assert.Error(t, err)
}

func TestParseDateTime(t *testing.T) {
	parsed, err := parseDateTime("2026-07-01 09:30")
	require.NoError(t, err)
	assert.Equal(t, 9, parsed.Hour())
	assert.Equal(t, 30, parsed.Minute())

	_, err = parseDateTime("2026-07-01")
	assert.Error(t, err)
}

func currentEmployeeID(t *testing.T, app *App) string {
	t.Helper()

	employees, err := app.employees.ListEmployees(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, employees)
	return employees[0].ID
}
