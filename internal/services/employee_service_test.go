package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timeclock/internal/errors"
	"timeclock/internal/repository/sqlite"
)

const testAdminPassword = "chef123"

func setupEmployeeService(t *testing.T) EmployeeService {
	t.Helper()

	repo, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		repo.Close()
	})
	return NewEmployeeService(repo, testAdminPassword)
}

func TestEmployeeService_CreateEmployee(t *testing.T) {
	tests := []struct {
		name           string
		employeeName   string
		password       string
		errorAssertion func(t *testing.T, err error)
	}{
		{
			name:         "should create employee with valid input",
			employeeName: "Alice",
			password:     "secret",
		},
		{
			name:         "should trim surrounding whitespace from name",
			employeeName: "  Bob  ",
			password:     "secret",
		},
		{
			name:         "should reject empty name",
			employeeName: "",
			password:     "secret",
			errorAssertion: func(t *testing.T, err error) {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "name")
			},
		},
		{
			name:         "should reject whitespace-only name",
			employeeName: "   ",
			password:     "secret",
			errorAssertion: func(t *testing.T, err error) {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "name")
			},
		},
		{
			name:         "should reject empty password",
			employeeName: "Alice",
			password:     "",
			errorAssertion: func(t *testing.T, err error) {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "password")
			},
		},
		{
			name:         "should reject too short password",
			employeeName: "Alice",
			password:     "ab",
			errorAssertion: func(t *testing.T, err error) {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "password")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := setupEmployeeService(t)
			ctx := context.Background()

			result, err := service.CreateEmployee(ctx, tt.employeeName, tt.password)

			if tt.errorAssertion != nil {
				tt.errorAssertion(t, err)
				assert.Nil(t, result)
			} else {
				require.NoError(t, err)
				require.NotNil(t, result)
				assert.NotEmpty(t, result.ID)
				assert.True(t, result.Active)
				assert.NotEqual(t, tt.password, result.PasswordHash)
			}
		})
	}
}

func TestEmployeeService_Authenticate(t *testing.T) {
	t.Run("should authenticate with correct credentials", func(t *testing.T) {
		service := setupEmployeeService(t)
		ctx := context.Background()
		created, err := service.CreateEmployee(ctx, "Alice", "secret")
		require.NoError(t, err)

		employee, err := service.Authenticate(ctx, "Alice", "secret")

		require.NoError(t, err)
		assert.Equal(t, created.ID, employee.ID)
	})

	t.Run("should reject wrong password", func(t *testing.T) {
		service := setupEmployeeService(t)
		ctx := context.Background()
		_, err := service.CreateEmployee(ctx, "Alice", "secret")
		require.NoError(t, err)

		_, err = service.Authenticate(ctx, "Alice", "wrong")

		assert.True(t, errors.IsErrorType(err, errors.ErrorTypePermission))
	})

	t.Run("should reject unknown employee", func(t *testing.T) {
		service := setupEmployeeService(t)

		_, err := service.Authenticate(context.Background(), "Ghost", "secret")

		assert.True(t, errors.IsErrorType(err, errors.ErrorTypePermission))
	})

	t.Run("should reject deactivated employee", func(t *testing.T) {
		service := setupEmployeeService(t)
		ctx := context.Background()
		created, err := service.CreateEmployee(ctx, "Alice", "secret")
		require.NoError(t, err)
		_, err = service.SetEmployeeActive(ctx, created.ID, false)
		require.NoError(t, err)

		_, err = service.Authenticate(ctx, "Alice", "secret")

		assert.True(t, errors.IsErrorType(err, errors.ErrorTypePermission))
	})
}

func TestEmployeeService_AuthenticateAdmin(t *testing.T) {
	service := setupEmployeeService(t)

	assert.NoError(t, service.AuthenticateAdmin(testAdminPassword))
	assert.True(t, errors.IsErrorType(service.AuthenticateAdmin("wrong"), errors.ErrorTypePermission))
	assert.True(t, errors.IsErrorType(service.AuthenticateAdmin(""), errors.ErrorTypePermission))
}

func TestEmployeeService_SetEmployeeActive(t *testing.T) {
	service := setupEmployeeService(t)
	ctx := context.Background()
	created, err := service.CreateEmployee(ctx, "Alice", "secret")
	require.NoError(t, err)

	deactivated, err := service.SetEmployeeActive(ctx, created.ID, false)
	require.NoError(t, err)
	assert.False(t, deactivated.Active)

	reactivated, err := service.SetEmployeeActive(ctx, created.ID, true)
	require.NoError(t, err)
	assert.True(t, reactivated.Active)

	_, err = service.Authenticate(ctx, "Alice", "secret")
	assert.NoError(t, err)
}

func TestEmployeeService_ListEmployees(t *testing.T) {
	service := setupEmployeeService(t)
	ctx := context.Background()

	for _, name := range []string{"Zed", "Alice", "Bob"} {
		_, err := service.CreateEmployee(ctx, name, "secret")
		require.NoError(t, err)
	}

	employees, err := service.ListEmployees(ctx)

	require.NoError(t, err)
	require.Len(t, employees, 3)
	assert.Equal(t, "Alice", employees[0].Name)
	assert.Equal(t, "Bob", employees[1].Name)
	assert.Equal(t, "Zed", employees[2].Name)
}

func TestHashPassword(t *testing.T) {
	// Fixed digest keeps stored hashes stable across versions.
	assert.Equal(t,
		"2bb80d537b1da3e38bd30361aa855686bde0eacd7162fef6a25fe97bf527a25b",
		HashPassword("secret"))
	assert.NotEqual(t, HashPassword("secret"), HashPassword("Secret"))
}
