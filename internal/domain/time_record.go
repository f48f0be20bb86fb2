package domain

import (
	"time"
)

// TimeRecord represents a durable time tracking record in the domain model.
// An open record (no end time) stands for a currently running work session;
// its DurationMinutes is 0 as a placeholder so the schema stays total.
type TimeRecord struct {
	ID              string
	EmployeeID      string
	ProjectID       string
	StartTime       time.Time
	EndTime         *time.Time
	DurationMinutes int
	LunchDeducted   bool
}

// NewOpenTimeRecord creates a new open TimeRecord for the given employee and project.
func NewOpenTimeRecord(employeeID, projectID string, startTime time.Time) TimeRecord {
	return TimeRecord{
		EmployeeID: employeeID,
		ProjectID:  projectID,
		StartTime:  startTime,
	}
}

// IsOpen returns true if the record represents a currently running session.
func (r TimeRecord) IsOpen() bool {
	return r.EndTime == nil
}

// Finalize sets the end time and the computed billable result on the record.
func (r TimeRecord) Finalize(endTime time.Time, durationMinutes int, lunchDeducted bool) TimeRecord {
	r.EndTime = &endTime
	r.DurationMinutes = durationMinutes
	r.LunchDeducted = lunchDeducted
	return r
}

// IsValid checks if the time record has valid data.
func (r TimeRecord) IsValid() bool {
	if r.EmployeeID == "" || r.ProjectID == "" {
		return false
	}
	if r.StartTime.IsZero() {
		return false
	}
	if r.EndTime != nil && r.EndTime.Before(r.StartTime) {
		return false
	}
	if r.IsOpen() && r.DurationMinutes != 0 {
		return false
	}
	if r.DurationMinutes < 0 {
		return false
	}
	return true
}
