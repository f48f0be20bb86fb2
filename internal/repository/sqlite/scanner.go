package sqlite

import (
	"database/sql"
)

// Scanner interface defines the common scanning behavior for both sql.Row and sql.Rows
type Scanner interface {
	Scan(dest ...interface{}) error
}

// Rows interface defines the common behavior for sql.Rows
type Rows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

// ScanTimeRecord scans a single time record from a database row
func ScanTimeRecord(scanner Scanner) (*TimeRecord, error) {
	record := &TimeRecord{}
	var endTime sql.NullTime

	err := scanner.Scan(
		&record.ID,
		&record.EmployeeID,
		&record.ProjectID,
		&record.StartTime,
		&endTime,
		&record.DurationMinutes,
		&record.LunchDeducted,
	)
	if err != nil {
		return nil, err
	}

	if endTime.Valid {
		record.EndTime = &endTime.Time
	}

	return record, nil
}

// ScanTimeRecords scans multiple time records from database rows
func ScanTimeRecords(rows Rows) ([]*TimeRecord, error) {
	var records []*TimeRecord
	for rows.Next() {
		record, err := ScanTimeRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// ScanEmployee scans a single employee from a database row
func ScanEmployee(scanner Scanner) (*Employee, error) {
	employee := &Employee{}
	err := scanner.Scan(&employee.ID, &employee.Name, &employee.PasswordHash, &employee.Active)
	if err != nil {
		return nil, err
	}
	return employee, nil
}

// ScanEmployees scans multiple employees from database rows
func ScanEmployees(rows Rows) ([]*Employee, error) {
	var employees []*Employee
	for rows.Next() {
		employee, err := ScanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, employee)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}

// ScanProject scans a single project from a database row
func ScanProject(scanner Scanner) (*Project, error) {
	project := &Project{}
	err := scanner.Scan(&project.ID, &project.Name, &project.Note)
	if err != nil {
		return nil, err
	}
	return project, nil
}

// ScanProjects scans multiple projects from database rows
func ScanProjects(rows Rows) ([]*Project, error) {
	var projects []*Project
	for rows.Next() {
		project, err := ScanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, project)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return projects, nil
}

// ScanVacation scans a single vacation request from a database row
func ScanVacation(scanner Scanner) (*Vacation, error) {
	vacation := &Vacation{}
	err := scanner.Scan(
		&vacation.ID,
		&vacation.EmployeeID,
		&vacation.StartDate,
		&vacation.EndDate,
		&vacation.Status,
	)
	if err != nil {
		return nil, err
	}
	return vacation, nil
}

// ScanVacations scans multiple vacation requests from database rows
func ScanVacations(rows Rows) ([]*Vacation, error) {
	var vacations []*Vacation
	for rows.Next() {
		vacation, err := ScanVacation(rows)
		if err != nil {
			return nil, err
		}
		vacations = append(vacations, vacation)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return vacations, nil
}
