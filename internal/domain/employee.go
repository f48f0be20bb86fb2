package domain

// Employee represents an employee in the domain model.
// This is a pure domain model without database-specific concerns.
type Employee struct {
	ID           string
	Name         string
	PasswordHash string
	Active       bool
}

// NewEmployee creates a new active Employee with the given name and password hash.
func NewEmployee(name, passwordHash string) Employee {
	return Employee{
		Name:         name,
		PasswordHash: passwordHash,
		Active:       true,
	}
}

// IsValid checks if the employee has valid data.
func (e Employee) IsValid() bool {
	return e.Name != "" && e.PasswordHash != ""
}

// CanClockIn returns true if the employee may start a work session.
func (e Employee) CanClockIn() bool {
	return e.Active
}

// String returns the employee name for display purposes.
func (e Employee) String() string {
	return e.Name
}
