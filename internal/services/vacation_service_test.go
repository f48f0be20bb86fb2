package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timeclock/internal/domain"
	"timeclock/internal/errors"
	"timeclock/internal/repository/sqlite"
)

type vacationServiceFixture struct {
	service  VacationService
	employee *domain.Employee
}

func setupVacationService(t *testing.T) *vacationServiceFixture {
	t.Helper()

	repo, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		repo.Close()
	})

	employees := NewEmployeeService(repo, testAdminPassword)
	employee, err := employees.CreateEmployee(context.Background(), "Alice", "secret")
	require.NoError(t, err)

	return &vacationServiceFixture{
		service:  NewVacationService(repo),
		employee: employee,
	}
}

func vacationDate(day int) time.Time {
	return time.Date(2026, time.July, day, 0, 0, 0, 0, time.UTC)
}

func TestVacationService_RequestVacation(t *testing.T) {
	t.Run("should create pending request", func(t *testing.T) {
		f := setupVacationService(t)

		vacation, err := f.service.RequestVacation(context.Background(), f.employee.ID, vacationDate(1), vacationDate(14))

		require.NoError(t, err)
		assert.NotEmpty(t, vacation.ID)
		assert.Equal(t, domain.VacationPending, vacation.Status)
		assert.Equal(t, 14, vacation.Days())
	})

	t.Run("should allow a single-day vacation", func(t *testing.T) {
		f := setupVacationService(t)

		vacation, err := f.service.RequestVacation(context.Background(), f.employee.ID, vacationDate(3), vacationDate(3))

		require.NoError(t, err)
		assert.Equal(t, 1, vacation.Days())
	})

	t.Run("should reject end before start", func(t *testing.T) {
		f := setupVacationService(t)

		_, err := f.service.RequestVacation(context.Background(), f.employee.ID, vacationDate(14), vacationDate(1))

		assert.Error(t, err)
	})

	t.Run("should reject unknown employee", func(t *testing.T) {
		f := setupVacationService(t)

		_, err := f.service.RequestVacation(context.Background(), "missing", vacationDate(1), vacationDate(2))

		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))
	})
}

func TestVacationService_ApprovalWorkflow(t *testing.T) {
	f := setupVacationService(t)
	ctx := context.Background()

	first, err := f.service.RequestVacation(ctx, f.employee.ID, vacationDate(1), vacationDate(5))
	require.NoError(t, err)
	second, err := f.service.RequestVacation(ctx, f.employee.ID, vacationDate(10), vacationDate(12))
	require.NoError(t, err)

	require.NoError(t, f.service.ApproveVacation(ctx, first.ID))
	require.NoError(t, f.service.RejectVacation(ctx, second.ID))

	vacations, err := f.service.ListVacations(ctx, &f.employee.ID)
	require.NoError(t, err)
	require.Len(t, vacations, 2)
	assert.Equal(t, domain.VacationApproved, vacations[0].Status)
	assert.Equal(t, domain.VacationRejected, vacations[1].Status)

	err = f.service.ApproveVacation(ctx, "missing")
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))
}
