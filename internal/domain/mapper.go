package domain

import (
	"timeclock/internal/repository/sqlite"
)

// EmployeeMapper handles conversion between domain and database Employee models.
type EmployeeMapper struct{}

// NewEmployeeMapper creates a new EmployeeMapper instance.
func NewEmployeeMapper() *EmployeeMapper {
	return &EmployeeMapper{}
}

// ToDatabase converts a domain Employee to a database Employee.
func (m *EmployeeMapper) ToDatabase(employee Employee) sqlite.Employee {
	return sqlite.Employee{
		ID:           employee.ID,
		Name:         employee.Name,
		PasswordHash: employee.PasswordHash,
		Active:       employee.Active,
	}
}

// FromDatabase converts a database Employee to a domain Employee.
func (m *EmployeeMapper) FromDatabase(dbEmployee sqlite.Employee) Employee {
	return Employee{
		ID:           dbEmployee.ID,
		Name:         dbEmployee.Name,
		PasswordHash: dbEmployee.PasswordHash,
		Active:       dbEmployee.Active,
	}
}

// FromDatabaseSlice converts a slice of database Employees to domain Employees.
func (m *EmployeeMapper) FromDatabaseSlice(dbEmployees []sqlite.Employee) []Employee {
	employees := make([]Employee, len(dbEmployees))
	for i, employee := range dbEmployees {
		employees[i] = m.FromDatabase(employee)
	}
	return employees
}

// ProjectMapper handles conversion between domain and database Project models.
type ProjectMapper struct{}

// NewProjectMapper creates a new ProjectMapper instance.
func NewProjectMapper() *ProjectMapper {
	return &ProjectMapper{}
}

// ToDatabase converts a domain Project to a database Project.
func (m *ProjectMapper) ToDatabase(project Project) sqlite.Project {
	return sqlite.Project{
		ID:   project.ID,
		Name: project.Name,
		Note: project.Note,
	}
}

// FromDatabase converts a database Project to a domain Project.
func (m *ProjectMapper) FromDatabase(dbProject sqlite.Project) Project {
	return Project{
		ID:   dbProject.ID,
		Name: dbProject.Name,
		Note: dbProject.Note,
	}
}

// FromDatabaseSlice converts a slice of database Projects to domain Projects.
func (m *ProjectMapper) FromDatabaseSlice(dbProjects []sqlite.Project) []Project {
	projects := make([]Project, len(dbProjects))
	for i, project := range dbProjects {
		projects[i] = m.FromDatabase(project)
	}
	return projects
}

// TimeRecordMapper handles conversion between domain and database TimeRecord models.
type TimeRecordMapper struct{}

// NewTimeRecordMapper creates a new TimeRecordMapper instance.
func NewTimeRecordMapper() *TimeRecordMapper {
	return &TimeRecordMapper{}
}

// ToDatabase converts a domain TimeRecord to a database TimeRecord.
func (m *TimeRecordMapper) ToDatabase(record TimeRecord) sqlite.TimeRecord {
	return sqlite.TimeRecord{
		ID:              record.ID,
		EmployeeID:      record.EmployeeID,
		ProjectID:       record.ProjectID,
		StartTime:       record.StartTime,
		EndTime:         record.EndTime,
		DurationMinutes: record.DurationMinutes,
		LunchDeducted:   record.LunchDeducted,
	}
}

// FromDatabase converts a database TimeRecord to a domain TimeRecord.
func (m *TimeRecordMapper) FromDatabase(dbRecord sqlite.TimeRecord) TimeRecord {
	return TimeRecord{
		ID:              dbRecord.ID,
		EmployeeID:      dbRecord.EmployeeID,
		ProjectID:       dbRecord.ProjectID,
		StartTime:       dbRecord.StartTime,
		EndTime:         dbRecord.EndTime,
		DurationMinutes: dbRecord.DurationMinutes,
		LunchDeducted:   dbRecord.LunchDeducted,
	}
}

// FromDatabaseSlice converts a slice of database TimeRecords to domain TimeRecords.
func (m *TimeRecordMapper) FromDatabaseSlice(dbRecords []sqlite.TimeRecord) []TimeRecord {
	records := make([]TimeRecord, len(dbRecords))
	for i, record := range dbRecords {
		records[i] = m.FromDatabase(record)
	}
	return records
}

// VacationMapper handles conversion between domain and database Vacation models.
type VacationMapper struct{}

// NewVacationMapper creates a new VacationMapper instance.
func NewVacationMapper() *VacationMapper {
	return &VacationMapper{}
}

// ToDatabase converts a domain Vacation to a database Vacation.
func (m *VacationMapper) ToDatabase(vacation Vacation) sqlite.Vacation {
	return sqlite.Vacation{
		ID:         vacation.ID,
		EmployeeID: vacation.EmployeeID,
		StartDate:  vacation.StartDate,
		EndDate:    vacation.EndDate,
		Status:     string(vacation.Status),
	}
}

// FromDatabase converts a database Vacation to a domain Vacation.
func (m *VacationMapper) FromDatabase(dbVacation sqlite.Vacation) Vacation {
	return Vacation{
		ID:         dbVacation.ID,
		EmployeeID: dbVacation.EmployeeID,
		StartDate:  dbVacation.StartDate,
		EndDate:    dbVacation.EndDate,
		Status:     VacationStatus(dbVacation.Status),
	}
}

// FromDatabaseSlice converts a slice of database Vacations to domain Vacations.
func (m *VacationMapper) FromDatabaseSlice(dbVacations []sqlite.Vacation) []Vacation {
	vacations := make([]Vacation, len(dbVacations))
	for i, vacation := range dbVacations {
		vacations[i] = m.FromDatabase(vacation)
	}
	return vacations
}

// SearchOptionsMapper handles conversion between domain and database SearchOptions.
type SearchOptionsMapper struct{}

// NewSearchOptionsMapper creates a new SearchOptionsMapper instance.
func NewSearchOptionsMapper() *SearchOptionsMapper {
	return &SearchOptionsMapper{}
}

// ToDatabase converts domain SearchOptions to database SearchOptions.
func (m *SearchOptionsMapper) ToDatabase(opts SearchOptions) sqlite.SearchOptions {
	return sqlite.SearchOptions{
		StartTime:  opts.StartTime,
		EndTime:    opts.EndTime,
		EmployeeID: opts.EmployeeID,
		ProjectID:  opts.ProjectID,
		OpenOnly:   opts.OpenOnly,
	}
}

// Mapper provides a unified interface for all mapping operations.
type Mapper struct {
	Employee      *EmployeeMapper
	Project       *ProjectMapper
	TimeRecord    *TimeRecordMapper
	Vacation      *VacationMapper
	SearchOptions *SearchOptionsMapper
}

// NewMapper creates a new Mapper instance with all sub-mappers.
func NewMapper() *Mapper {
	return &Mapper{
		Employee:      NewEmployeeMapper(),
		Project:       NewProjectMapper(),
		TimeRecord:    NewTimeRecordMapper(),
		Vacation:      NewVacationMapper(),
		SearchOptions: NewSearchOptionsMapper(),
	}
}
