package services

import (
	"context"
	"time"

	"timeclock/internal/domain"
)

// TimeRange represents a time period with start and end times
type TimeRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// EmployeeTotal represents aggregated billable minutes for one employee
type EmployeeTotal struct {
	Employee       *domain.Employee `json:"employee"`
	TotalMinutes   int              `json:"total_minutes"`
	RecordCount    int              `json:"record_count"`
	LunchDeducted  int              `json:"lunch_deducted_count"`
	OpenRecords    int              `json:"open_records"`
}

// ProjectTotal represents aggregated billable minutes for one project
type ProjectTotal struct {
	Project      *domain.Project `json:"project"`
	TotalMinutes int             `json:"total_minutes"`
	RecordCount  int             `json:"record_count"`
}

// EmployeeService handles employee lifecycle and authentication
type EmployeeService interface {
	CreateEmployee(ctx context.Context, name, password string) (*domain.Employee, error)
	GetEmployee(ctx context.Context, id string) (*domain.Employee, error)
	ListEmployees(ctx context.Context) ([]*domain.Employee, error)
	SetEmployeeActive(ctx context.Context, id string, active bool) (*domain.Employee, error)

	// Authenticate verifies an employee login by name and password.
	// Inactive employees cannot authenticate.
	Authenticate(ctx context.Context, name, password string) (*domain.Employee, error)

	// AuthenticateAdmin verifies the administrator password.
	AuthenticateAdmin(password string) error
}

// ProjectService handles project lifecycle operations
type ProjectService interface {
	CreateProject(ctx context.Context, name, note string) (*domain.Project, error)
	GetProject(ctx context.Context, id string) (*domain.Project, error)
	ListProjects(ctx context.Context) ([]*domain.Project, error)
	UpdateProjectNote(ctx context.Context, id, note string) (*domain.Project, error)
	DeleteProject(ctx context.Context, id string) error

	// ProjectExists resolves a project id for the session engine.
	ProjectExists(ctx context.Context, projectID string) (bool, error)
}

// TimeRecordService handles durable time record operations, including the
// narrow store surface the session engine consumes.
type TimeRecordService interface {
	CreateOpenRecord(ctx context.Context, actorID, projectID string, startTime time.Time) (string, error)
	FinalizeRecord(ctx context.Context, recordID string, endTime time.Time, durationMinutes int, lunchDeducted bool) error
	FindOpenRecord(ctx context.Context, actorID string) (*domain.TimeRecord, error)

	GetRecord(ctx context.Context, id string) (*domain.TimeRecord, error)
	SearchRecords(ctx context.Context, opts domain.SearchOptions) ([]*domain.TimeRecord, error)

	// EditRecord applies an administrative edit and recomputes the duration
	// with the same algorithm the engine uses at stop.
	EditRecord(ctx context.Context, id string, startTime, endTime time.Time, paused time.Duration) (*domain.TimeRecord, error)
}

// VacationService handles vacation requests and their approval workflow
type VacationService interface {
	RequestVacation(ctx context.Context, employeeID string, startDate, endDate time.Time) (*domain.Vacation, error)
	ListVacations(ctx context.Context, employeeID *string) ([]*domain.Vacation, error)
	ApproveVacation(ctx context.Context, id string) error
	RejectVacation(ctx context.Context, id string) error
}

// ReportingService aggregates billable minutes for administrators
type ReportingService interface {
	EmployeeTotals(ctx context.Context, timeRange *TimeRange) ([]*EmployeeTotal, error)
	ProjectTotals(ctx context.Context, timeRange *TimeRange) ([]*ProjectTotal, error)
}
