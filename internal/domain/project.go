package domain

// Project represents a billable project in the domain model.
type Project struct {
	ID   string
	Name string
	Note string
}

// NewProject creates a new Project with the given name and optional note.
func NewProject(name, note string) Project {
	return Project{
		Name: name,
		Note: note,
	}
}

// IsValid checks if the project has valid data.
func (p Project) IsValid() bool {
	return p.Name != ""
}

// String returns the project name for display purposes.
func (p Project) String() string {
	return p.Name
}
