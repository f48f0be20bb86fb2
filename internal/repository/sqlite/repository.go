package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"timeclock/internal/errors"
	"timeclock/internal/repository/sqlite/migrations"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// SearchOptions contains all possible search parameters for time records
type SearchOptions struct {
	StartTime  *time.Time
	EndTime    *time.Time
	EmployeeID *string
	ProjectID  *string
	OpenOnly   bool
}

// Repository defines the interface for database operations
type Repository interface {
	// Employee operations
	CreateEmployee(ctx context.Context, employee *Employee) error
	GetEmployee(ctx context.Context, id string) (*Employee, error)
	GetEmployeeByName(ctx context.Context, name string) (*Employee, error)
	ListEmployees(ctx context.Context) ([]*Employee, error)
	UpdateEmployee(ctx context.Context, employee *Employee) error

	// Project operations
	CreateProject(ctx context.Context, project *Project) error
	GetProject(ctx context.Context, id string) (*Project, error)
	ListProjects(ctx context.Context) ([]*Project, error)
	UpdateProject(ctx context.Context, project *Project) error
	DeleteProject(ctx context.Context, id string) error

	// Time record operations
	CreateTimeRecord(ctx context.Context, record *TimeRecord) error
	GetTimeRecord(ctx context.Context, id string) (*TimeRecord, error)
	FindOpenTimeRecord(ctx context.Context, employeeID string) (*TimeRecord, error)
	FinalizeTimeRecord(ctx context.Context, id string, endTime time.Time, durationMinutes int, lunchDeducted bool) error
	UpdateTimeRecord(ctx context.Context, record *TimeRecord) error
	SearchTimeRecords(ctx context.Context, opts SearchOptions) ([]*TimeRecord, error)
	DeleteTimeRecord(ctx context.Context, id string) error

	// Vacation operations
	CreateVacation(ctx context.Context, vacation *Vacation) error
	ListVacations(ctx context.Context, employeeID *string) ([]*Vacation, error)
	UpdateVacationStatus(ctx context.Context, id string, status string) error

	// Utility
	Close() error
}

// SQLiteRepository implements the Repository interface
type SQLiteRepository struct {
	db *sql.DB
}

// New creates a new SQLite repository instance
func New(dbPath string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewDatabaseError("open database", err)
	}

	// Run migrations
	if err := migrations.RunMigrations(db); err != nil {
		db.Close()
		return nil, errors.NewDatabaseError("run migrations", err)
	}

	return &SQLiteRepository{db: db}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// CreateEmployee creates a new employee
func (r *SQLiteRepository) CreateEmployee(ctx context.Context, employee *Employee) error {
	if employee.ID == "" {
		employee.ID = uuid.NewString()
	}

	query := `
	INSERT INTO employees (id, name, password_hash, active)
	VALUES (?, ?, ?, ?)`

	return Execute(ctx, r.db, query, employee.ID, employee.Name, employee.PasswordHash, employee.Active)
}

// GetEmployee retrieves an employee by ID
func (r *SQLiteRepository) GetEmployee(ctx context.Context, id string) (*Employee, error) {
	query := `
	SELECT id, name, password_hash, active
	FROM employees
	WHERE id = ?`

	return QuerySingle(ctx, r.db, query, ScanEmployee, "employee", id, id)
}

// GetEmployeeByName retrieves an employee by name
func (r *SQLiteRepository) GetEmployeeByName(ctx context.Context, name string) (*Employee, error) {
	query := `
	SELECT id, name, password_hash, active
	FROM employees
	WHERE name = ?`

	return QuerySingle(ctx, r.db, query, ScanEmployee, "employee", name, name)
}

// ListEmployees retrieves all employees ordered by name
func (r *SQLiteRepository) ListEmployees(ctx context.Context) ([]*Employee, error) {
	query := `
	SELECT id, name, password_hash, active
	FROM employees
	ORDER BY name ASC`

	return QueryMultiple(ctx, r.db, query, ScanEmployees, "employees")
}

// UpdateEmployee updates an existing employee
func (r *SQLiteRepository) UpdateEmployee(ctx context.Context, employee *Employee) error {
	query := `
	UPDATE employees
	SET name = ?, password_hash = ?, active = ?
	WHERE id = ?`

	return ExecuteWithRowsAffected(ctx, r.db, query, "employee", employee.ID, employee.Name, employee.PasswordHash, employee.Active, employee.ID)
}

// CreateProject creates a new project
func (r *SQLiteRepository) CreateProject(ctx context.Context, project *Project) error {
	if project.ID == "" {
		project.ID = uuid.NewString()
	}

	query := `INSERT INTO projects (id, name, note) VALUES (?, ?, ?)`
	return Execute(ctx, r.db, query, project.ID, project.Name, project.Note)
}

// GetProject retrieves a project by ID
func (r *SQLiteRepository) GetProject(ctx context.Context, id string) (*Project, error) {
	query := `SELECT id, name, note FROM projects WHERE id = ?`
	return QuerySingle(ctx, r.db, query, ScanProject, "project", id, id)
}

// ListProjects retrieves all projects ordered by name
func (r *SQLiteRepository) ListProjects(ctx context.Context) ([]*Project, error) {
	query := `SELECT id, name, note FROM projects ORDER BY name ASC`
	return QueryMultiple(ctx, r.db, query, ScanProjects, "projects")
}

// UpdateProject updates an existing project
func (r *SQLiteRepository) UpdateProject(ctx context.Context, project *Project) error {
	query := `UPDATE projects SET name = ?, note = ? WHERE id = ?`
	return ExecuteWithRowsAffected(ctx, r.db, query, "project", project.ID, project.Name, project.Note, project.ID)
}

// DeleteProject deletes a project by ID
func (r *SQLiteRepository) DeleteProject(ctx context.Context, id string) error {
	query := `DELETE FROM projects WHERE id = ?`
	return ExecuteWithRowsAffected(ctx, r.db, query, "project", id, id)
}

// CreateTimeRecord creates a new time record.
// Open records are stored with a NULL end time and zero duration.
func (r *SQLiteRepository) CreateTimeRecord(ctx context.Context, record *TimeRecord) error {
	if record.ID == "" {
		record.ID = uuid.NewString()
	}

	query := `
	INSERT INTO time_records (id, employee_id, project_id, start_time, end_time, duration_minutes, lunch_deducted)
	VALUES (?, ?, ?, ?, ?, ?, ?)`

	return Execute(ctx, r.db, query,
		record.ID,
		record.EmployeeID,
		record.ProjectID,
		FormatTimeForDB(record.StartTime),
		FormatTimePtrForDB(record.EndTime),
		record.DurationMinutes,
		record.LunchDeducted,
	)
}

// GetTimeRecord retrieves a time record by ID
func (r *SQLiteRepository) GetTimeRecord(ctx context.Context, id string) (*TimeRecord, error) {
	query := `
	SELECT id, employee_id, project_id, start_time, end_time, duration_minutes, lunch_deducted
	FROM time_records
	WHERE id = ?`

	return QuerySingle(ctx, r.db, query, ScanTimeRecord, "time record", id, id)
}

// FindOpenTimeRecord retrieves the open time record for an employee, if any.
// Returns a not found error when no record is open.
func (r *SQLiteRepository) FindOpenTimeRecord(ctx context.Context, employeeID string) (*TimeRecord, error) {
	query := `
	SELECT id, employee_id, project_id, start_time, end_time, duration_minutes, lunch_deducted
	FROM time_records
	WHERE employee_id = ? AND end_time IS NULL
	ORDER BY start_time DESC
	LIMIT 1`

	return QuerySingle(ctx, r.db, query, ScanTimeRecord, "open time record", employeeID, employeeID)
}

// FinalizeTimeRecord sets the end time and the computed billable result on an open record
func (r *SQLiteRepository) FinalizeTimeRecord(ctx context.Context, id string, endTime time.Time, durationMinutes int, lunchDeducted bool) error {
	query := `
	UPDATE time_records
	SET end_time = ?, duration_minutes = ?, lunch_deducted = ?
	WHERE id = ? AND end_time IS NULL`

	return ExecuteWithRowsAffected(ctx, r.db, query, "open time record", id, FormatTimeForDB(endTime), durationMinutes, lunchDeducted, id)
}

// UpdateTimeRecord updates an existing time record.
// Used by administrative edits which recompute the duration beforehand.
func (r *SQLiteRepository) UpdateTimeRecord(ctx context.Context, record *TimeRecord) error {
	query := `
	UPDATE time_records
	SET employee_id = ?, project_id = ?, start_time = ?, end_time = ?, duration_minutes = ?, lunch_deducted = ?
	WHERE id = ?`

	return ExecuteWithRowsAffected(ctx, r.db, query, "time record", record.ID,
		record.EmployeeID,
		record.ProjectID,
		FormatTimeForDB(record.StartTime),
		FormatTimePtrForDB(record.EndTime),
		record.DurationMinutes,
		record.LunchDeducted,
		record.ID,
	)
}

// DeleteTimeRecord deletes a time record by ID
func (r *SQLiteRepository) DeleteTimeRecord(ctx context.Context, id string) error {
	query := `DELETE FROM time_records WHERE id = ?`
	return ExecuteWithRowsAffected(ctx, r.db, query, "time record", id, id)
}

// SearchTimeRecords searches for time records based on the provided options
func (r *SQLiteRepository) SearchTimeRecords(ctx context.Context, opts SearchOptions) ([]*TimeRecord, error) {
	var conditions []string
	var args []interface{}

	// Build time range conditions
	if opts.StartTime != nil {
		conditions = append(conditions, "start_time >= ?")
		args = append(args, FormatTimePtrForDB(opts.StartTime))
	}
	if opts.EndTime != nil {
		conditions = append(conditions, "start_time <= ?")
		args = append(args, FormatTimePtrForDB(opts.EndTime))
	}

	if opts.EmployeeID != nil {
		conditions = append(conditions, "employee_id = ?")
		args = append(args, *opts.EmployeeID)
	}
	if opts.ProjectID != nil {
		conditions = append(conditions, "project_id = ?")
		args = append(args, *opts.ProjectID)
	}
	if opts.OpenOnly {
		conditions = append(conditions, "end_time IS NULL")
	}

	query := `
	SELECT id, employee_id, project_id, start_time, end_time, duration_minutes, lunch_deducted
	FROM time_records`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY start_time ASC"

	return QueryMultiple(ctx, r.db, query, ScanTimeRecords, "time records", args...)
}

// CreateVacation creates a new vacation request
func (r *SQLiteRepository) CreateVacation(ctx context.Context, vacation *Vacation) error {
	if vacation.ID == "" {
		vacation.ID = uuid.NewString()
	}

	query := `
	INSERT INTO vacations (id, employee_id, start_date, end_date, status)
	VALUES (?, ?, ?, ?, ?)`

	return Execute(ctx, r.db, query,
		vacation.ID,
		vacation.EmployeeID,
		FormatTimeForDB(vacation.StartDate),
		FormatTimeForDB(vacation.EndDate),
		vacation.Status,
	)
}

// ListVacations retrieves vacation requests, optionally filtered by employee
func (r *SQLiteRepository) ListVacations(ctx context.Context, employeeID *string) ([]*Vacation, error) {
	query := `
	SELECT id, employee_id, start_date, end_date, status
	FROM vacations`
	var args []interface{}
	if employeeID != nil {
		query += " WHERE employee_id = ?"
		args = append(args, *employeeID)
	}
	query += " ORDER BY start_date ASC"

	return QueryMultiple(ctx, r.db, query, ScanVacations, "vacations", args...)
}

// UpdateVacationStatus sets the approval status of a vacation request
func (r *SQLiteRepository) UpdateVacationStatus(ctx context.Context, id string, status string) error {
	query := `UPDATE vacations SET status = ? WHERE id = ?`
	return ExecuteWithRowsAffected(ctx, r.db, query, "vacation", id, status, id)
}
