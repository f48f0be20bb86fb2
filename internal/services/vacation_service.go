package services

import (
	"context"
	"time"

	"timeclock/internal/domain"
	"timeclock/internal/errors"
	"timeclock/internal/repository/sqlite"
)

// vacationServiceImpl implements the VacationService interface
type vacationServiceImpl struct {
	repo   sqlite.Repository
	mapper *domain.Mapper
}

// NewVacationService creates a new VacationService instance
func NewVacationService(repo sqlite.Repository) VacationService {
	return &vacationServiceImpl{
		repo:   repo,
		mapper: domain.NewMapper(),
	}
}

// RequestVacation creates a pending vacation request for an employee
func (s *vacationServiceImpl) RequestVacation(ctx context.Context, employeeID string, startDate, endDate time.Time) (*domain.Vacation, error) {
	if employeeID == "" {
		return nil, errors.NewInvalidInputError("employee_id", employeeID, "must not be empty")
	}
	if startDate.IsZero() || endDate.IsZero() {
		return nil, errors.NewInvalidInputError("dates", nil, "start and end date are required")
	}
	if endDate.Before(startDate) {
		return nil, errors.NewInvalidInputError("end_date", endDate, "must not be before start date")
	}

	// The employee must exist; vacations reference them durably.
	if _, err := s.repo.GetEmployee(ctx, employeeID); err != nil {
		return nil, err
	}

	dbVacation := &sqlite.Vacation{
		EmployeeID: employeeID,
		StartDate:  startDate,
		EndDate:    endDate,
		Status:     string(domain.VacationPending),
	}
	if err := s.repo.CreateVacation(ctx, dbVacation); err != nil {
		return nil, err
	}

	vacation := s.mapper.Vacation.FromDatabase(*dbVacation)
	return &vacation, nil
}

// ListVacations returns vacation requests, optionally filtered by employee
func (s *vacationServiceImpl) ListVacations(ctx context.Context, employeeID *string) ([]*domain.Vacation, error) {
	dbVacations, err := s.repo.ListVacations(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	vacations := make([]*domain.Vacation, 0, len(dbVacations))
	for _, dbVacation := range dbVacations {
		vacation := s.mapper.Vacation.FromDatabase(*dbVacation)
		vacations = append(vacations, &vacation)
	}
	return vacations, nil
}

// ApproveVacation marks a pending vacation request as approved
func (s *vacationServiceImpl) ApproveVacation(ctx context.Context, id string) error {
	return s.repo.UpdateVacationStatus(ctx, id, string(domain.VacationApproved))
}

// RejectVacation marks a pending vacation request as rejected
func (s *vacationServiceImpl) RejectVacation(ctx context.Context, id string) error {
	return s.repo.UpdateVacationStatus(ctx, id, string(domain.VacationRejected))
}
