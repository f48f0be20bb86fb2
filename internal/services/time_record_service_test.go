package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timeclock/internal/domain"
	"timeclock/internal/repository/sqlite"
	"timeclock/internal/session"
)

type recordServiceFixture struct {
	service  TimeRecordService
	repo     sqlite.Repository
	employee *domain.Employee
	project  *domain.Project
}

func setupTimeRecordService(t *testing.T) *recordServiceFixture {
	t.Helper()

	repo, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		repo.Close()
	})

	employees := NewEmployeeService(repo, testAdminPassword)
	projects := NewProjectService(repo)
	ctx := context.Background()

	employee, err := employees.CreateEmployee(ctx, "Alice", "secret")
	require.NoError(t, err)
	project, err := projects.CreateProject(ctx, "Website", "")
	require.NoError(t, err)

	return &recordServiceFixture{
		service:  NewTimeRecordService(repo, session.DefaultPolicy()),
		repo:     repo,
		employee: employee,
		project:  project,
	}
}

func TestTimeRecordService_OpenRecordLifecycle(t *testing.T) {
	f := setupTimeRecordService(t)
	ctx := context.Background()
	start := time.Date(2026, time.June, 15, 9, 0, 0, 0, time.UTC)

	recordID, err := f.service.CreateOpenRecord(ctx, f.employee.ID, f.project.ID, start)
	require.NoError(t, err)
	assert.NotEmpty(t, recordID)

	t.Run("should find the open record", func(t *testing.T) {
		open, err := f.service.FindOpenRecord(ctx, f.employee.ID)

		require.NoError(t, err)
		require.NotNil(t, open)
		assert.Equal(t, recordID, open.ID)
		assert.True(t, open.IsOpen())
		assert.True(t, open.IsValid())
		assert.Equal(t, 0, open.DurationMinutes)
	})

	t.Run("should finalize the record", func(t *testing.T) {
		end := start.Add(8 * time.Hour)
		require.NoError(t, f.service.FinalizeRecord(ctx, recordID, end, 420, true))

		record, err := f.service.GetRecord(ctx, recordID)
		require.NoError(t, err)
		assert.False(t, record.IsOpen())
		assert.Equal(t, 420, record.DurationMinutes)
		assert.True(t, record.LunchDeducted)
	})

	t.Run("should return nil once no record is open", func(t *testing.T) {
		open, err := f.service.FindOpenRecord(ctx, f.employee.ID)

		require.NoError(t, err)
		assert.Nil(t, open)
	})
}

func TestTimeRecordService_SearchRecords(t *testing.T) {
	f := setupTimeRecordService(t)
	ctx := context.Background()
	start := time.Date(2026, time.June, 15, 9, 0, 0, 0, time.UTC)

	first, err := f.service.CreateOpenRecord(ctx, f.employee.ID, f.project.ID, start)
	require.NoError(t, err)
	require.NoError(t, f.service.FinalizeRecord(ctx, first, start.Add(3*time.Hour), 180, false))
	_, err = f.service.CreateOpenRecord(ctx, f.employee.ID, f.project.ID, start.Add(5*time.Hour))
	require.NoError(t, err)

	records, err := f.service.SearchRecords(ctx, domain.SearchOptions{EmployeeID: &f.employee.ID})
	require.NoError(t, err)
	assert.Len(t, records, 2)

	open, err := f.service.SearchRecords(ctx, domain.SearchOptions{OpenOnly: true})
	require.NoError(t, err)
	require.Len(t, open, 1)
	assert.True(t, open[0].IsOpen())
}

func TestTimeRecordService_EditRecord(t *testing.T) {
	t.Run("should recompute duration and lunch deduction", func(t *testing.T) {
		f := setupTimeRecordService(t)
		ctx := context.Background()
		start := time.Date(2026, time.June, 15, 9, 0, 0, 0, time.Local)

		recordID, err := f.service.CreateOpenRecord(ctx, f.employee.ID, f.project.ID, start)
		require.NoError(t, err)
		require.NoError(t, f.service.FinalizeRecord(ctx, recordID, start.Add(2*time.Hour), 120, false))

		// Correct the end time to 13:30; the lunch hour now overlaps.
		newEnd := time.Date(2026, time.June, 15, 13, 30, 0, 0, time.Local)
		record, err := f.service.EditRecord(ctx, recordID, start, newEnd, 15*time.Minute)

		require.NoError(t, err)
		// 270 gross minutes, minus 60 lunch, minus 15 paused.
		assert.Equal(t, 195, record.DurationMinutes)
		assert.True(t, record.LunchDeducted)
		assert.False(t, record.IsOpen())
		assert.True(t, record.IsValid())
	})

	t.Run("should reject end before start", func(t *testing.T) {
		f := setupTimeRecordService(t)
		ctx := context.Background()
		start := time.Date(2026, time.June, 15, 9, 0, 0, 0, time.UTC)

		recordID, err := f.service.CreateOpenRecord(ctx, f.employee.ID, f.project.ID, start)
		require.NoError(t, err)

		_, err = f.service.EditRecord(ctx, recordID, start, start.Add(-time.Hour), 0)

		assert.Error(t, err)
	})
}
