package services

import (
	"context"

	"timeclock/internal/domain"
	"timeclock/internal/errors"
	"timeclock/internal/repository/sqlite"
	"timeclock/internal/validation"
)

// projectServiceImpl implements the ProjectService interface
type projectServiceImpl struct {
	repo      sqlite.Repository
	mapper    *domain.Mapper
	validator *validation.ProjectValidator
}

// NewProjectService creates a new ProjectService instance
func NewProjectService(repo sqlite.Repository) ProjectService {
	return &projectServiceImpl{
		repo:      repo,
		mapper:    domain.NewMapper(),
		validator: validation.NewProjectValidator(),
	}
}

// CreateProject creates a new project with an optional note
func (s *projectServiceImpl) CreateProject(ctx context.Context, name, note string) (*domain.Project, error) {
	cleaned, err := s.validator.ValidateProjectForCreation(name)
	if err != nil {
		return nil, err
	}

	dbProject := &sqlite.Project{
		Name: cleaned,
		Note: note,
	}
	if err := s.repo.CreateProject(ctx, dbProject); err != nil {
		return nil, err
	}

	project := s.mapper.Project.FromDatabase(*dbProject)
	return &project, nil
}

// GetProject returns a single project by ID
func (s *projectServiceImpl) GetProject(ctx context.Context, id string) (*domain.Project, error) {
	dbProject, err := s.repo.GetProject(ctx, id)
	if err != nil {
		return nil, err
	}

	project := s.mapper.Project.FromDatabase(*dbProject)
	return &project, nil
}

// ListProjects returns all projects ordered by name
func (s *projectServiceImpl) ListProjects(ctx context.Context) ([]*domain.Project, error) {
	dbProjects, err := s.repo.ListProjects(ctx)
	if err != nil {
		return nil, err
	}

	projects := make([]*domain.Project, 0, len(dbProjects))
	for _, dbProject := range dbProjects {
		project := s.mapper.Project.FromDatabase(*dbProject)
		projects = append(projects, &project)
	}
	return projects, nil
}

// UpdateProjectNote replaces the note on an existing project
func (s *projectServiceImpl) UpdateProjectNote(ctx context.Context, id, note string) (*domain.Project, error) {
	dbProject, err := s.repo.GetProject(ctx, id)
	if err != nil {
		return nil, err
	}

	dbProject.Note = note
	if err := s.repo.UpdateProject(ctx, dbProject); err != nil {
		return nil, err
	}

	project := s.mapper.Project.FromDatabase(*dbProject)
	return &project, nil
}

// DeleteProject deletes a project by ID
func (s *projectServiceImpl) DeleteProject(ctx context.Context, id string) error {
	return s.repo.DeleteProject(ctx, id)
}

// ProjectExists resolves a project id for the session engine
func (s *projectServiceImpl) ProjectExists(ctx context.Context, projectID string) (bool, error) {
	_, err := s.repo.GetProject(ctx, projectID)
	if err != nil {
		if errors.IsErrorType(err, errors.ErrorTypeNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
