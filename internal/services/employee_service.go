package services

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"

	"timeclock/internal/domain"
	"timeclock/internal/errors"
	"timeclock/internal/repository/sqlite"
	"timeclock/internal/validation"
)

// employeeServiceImpl implements the EmployeeService interface
type employeeServiceImpl struct {
	repo          sqlite.Repository
	mapper        *domain.Mapper
	validator     *validation.EmployeeValidator
	adminPassword string
}

// NewEmployeeService creates a new EmployeeService instance
func NewEmployeeService(repo sqlite.Repository, adminPassword string) EmployeeService {
	return &employeeServiceImpl{
		repo:          repo,
		mapper:        domain.NewMapper(),
		validator:     validation.NewEmployeeValidator(),
		adminPassword: adminPassword,
	}
}

// HashPassword returns the hex-encoded SHA-256 digest of a password.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// CreateEmployee creates a new active employee
func (s *employeeServiceImpl) CreateEmployee(ctx context.Context, name, password string) (*domain.Employee, error) {
	cleaned, err := s.validator.ValidateEmployeeForCreation(name, password)
	if err != nil {
		return nil, err
	}

	dbEmployee := &sqlite.Employee{
		Name:         cleaned,
		PasswordHash: HashPassword(password),
		Active:       true,
	}
	if err := s.repo.CreateEmployee(ctx, dbEmployee); err != nil {
		return nil, err
	}

	employee := s.mapper.Employee.FromDatabase(*dbEmployee)
	return &employee, nil
}

// GetEmployee returns a single employee by ID
func (s *employeeServiceImpl) GetEmployee(ctx context.Context, id string) (*domain.Employee, error) {
	dbEmployee, err := s.repo.GetEmployee(ctx, id)
	if err != nil {
		return nil, err
	}

	employee := s.mapper.Employee.FromDatabase(*dbEmployee)
	return &employee, nil
}

// ListEmployees returns all employees ordered by name
func (s *employeeServiceImpl) ListEmployees(ctx context.Context) ([]*domain.Employee, error) {
	dbEmployees, err := s.repo.ListEmployees(ctx)
	if err != nil {
		return nil, err
	}

	employees := make([]*domain.Employee, 0, len(dbEmployees))
	for _, dbEmployee := range dbEmployees {
		employee := s.mapper.Employee.FromDatabase(*dbEmployee)
		employees = append(employees, &employee)
	}
	return employees, nil
}

// SetEmployeeActive activates or deactivates an employee
func (s *employeeServiceImpl) SetEmployeeActive(ctx context.Context, id string, active bool) (*domain.Employee, error) {
	dbEmployee, err := s.repo.GetEmployee(ctx, id)
	if err != nil {
		return nil, err
	}

	dbEmployee.Active = active
	if err := s.repo.UpdateEmployee(ctx, dbEmployee); err != nil {
		return nil, err
	}

	employee := s.mapper.Employee.FromDatabase(*dbEmployee)
	return &employee, nil
}

// Authenticate verifies an employee login by name and password
func (s *employeeServiceImpl) Authenticate(ctx context.Context, name, password string) (*domain.Employee, error) {
	dbEmployee, err := s.repo.GetEmployeeByName(ctx, name)
	if err != nil {
		if errors.IsErrorType(err, errors.ErrorTypeNotFound) {
			return nil, errors.NewPermissionError("login", "employee")
		}
		return nil, err
	}

	if !dbEmployee.Active {
		return nil, errors.NewPermissionError("login", "employee").
			WithContext("reason", "employee is deactivated")
	}

	hash := HashPassword(password)
	if subtle.ConstantTimeCompare([]byte(hash), []byte(dbEmployee.PasswordHash)) != 1 {
		return nil, errors.NewPermissionError("login", "employee")
	}

	employee := s.mapper.Employee.FromDatabase(*dbEmployee)
	return &employee, nil
}

// AuthenticateAdmin verifies the administrator password
func (s *employeeServiceImpl) AuthenticateAdmin(password string) error {
	if subtle.ConstantTimeCompare([]byte(password), []byte(s.adminPassword)) != 1 {
		return errors.NewPermissionError("login", "admin")
	}
	return nil
}
