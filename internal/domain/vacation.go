package domain

import (
	"time"
)

// VacationStatus represents the approval state of a vacation request.
type VacationStatus string

const (
	VacationPending  VacationStatus = "pending"
	VacationApproved VacationStatus = "approved"
	VacationRejected VacationStatus = "rejected"
)

// Vacation represents a vacation request in the domain model.
type Vacation struct {
	ID         string
	EmployeeID string
	StartDate  time.Time
	EndDate    time.Time
	Status     VacationStatus
}

// NewVacation creates a new pending vacation request.
func NewVacation(employeeID string, startDate, endDate time.Time) Vacation {
	return Vacation{
		EmployeeID: employeeID,
		StartDate:  startDate,
		EndDate:    endDate,
		Status:     VacationPending,
	}
}

// IsValid checks if the vacation request has valid data.
func (v Vacation) IsValid() bool {
	if v.EmployeeID == "" {
		return false
	}
	if v.StartDate.IsZero() || v.EndDate.IsZero() {
		return false
	}
	if v.EndDate.Before(v.StartDate) {
		return false
	}
	switch v.Status {
	case VacationPending, VacationApproved, VacationRejected:
		return true
	}
	return false
}

// Days returns the inclusive number of calendar days the request covers.
func (v Vacation) Days() int {
	start := time.Date(v.StartDate.Year(), v.StartDate.Month(), v.StartDate.Day(), 0, 0, 0, 0, v.StartDate.Location())
	end := time.Date(v.EndDate.Year(), v.EndDate.Month(), v.EndDate.Day(), 0, 0, 0, 0, v.EndDate.Location())
	return int(end.Sub(start).Hours()/24) + 1
}
