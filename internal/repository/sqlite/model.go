package sqlite

import "time"

// Employee represents an employee row
type Employee struct {
	ID           string
	Name         string
	PasswordHash string
	Active       bool
}

// Project represents a project row
type Project struct {
	ID   string
	Name string
	Note string
}

// TimeRecord represents a single time tracking record.
// EndTime is NULL while the record is open; DurationMinutes stays 0
// until the record is finalized.
type TimeRecord struct {
	ID              string
	EmployeeID      string
	ProjectID       string
	StartTime       time.Time
	EndTime         *time.Time // Using pointer to allow NULL values
	DurationMinutes int
	LunchDeducted   bool
}

// Vacation represents a vacation request row
type Vacation struct {
	ID         string
	EmployeeID string
	StartDate  time.Time
	EndDate    time.Time
	Status     string
}
