package domain

import "time"

// SearchOptions represents search criteria for time records.
// This is a domain model that mirrors the database search options
// but belongs to the domain layer for proper separation of concerns.
type SearchOptions struct {
	StartTime  *time.Time
	EndTime    *time.Time
	EmployeeID *string
	ProjectID  *string
	OpenOnly   bool
}
