package cli

import (
	"context"
	"fmt"
	"strings"

	"timeclock/internal/errors"
)

// ProjectCommand handles project management subcommands
type ProjectCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewProjectCommand creates a new project command handler
func NewProjectCommand(app *App) *ProjectCommand {
	return &ProjectCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// ExecuteAdd creates a new project with an optional note. Requires the
// admin password.
func (c *ProjectCommand) ExecuteAdd(ctx context.Context, args []string, adminPassword string) error {
	if len(args) < 1 {
		return errors.NewInvalidInputError("command", "project add", "usage: timeclock project add <name> [note]")
	}
	if err := c.app.requireAdmin(adminPassword); err != nil {
		return c.errorHandler.Handle("add project", err)
	}

	note := strings.Join(args[1:], " ")
	project, err := c.app.projects.CreateProject(ctx, args[0], note)
	if err != nil {
		return c.errorHandler.Handle("add project", err)
	}

	fmt.Printf("Added project %s (%s)\n", project.Name, project.ID)
	return nil
}

// ExecuteList lists all projects
func (c *ProjectCommand) ExecuteList(ctx context.Context, args []string) error {
	projects, err := c.app.projects.ListProjects(ctx)
	if err != nil {
		return c.errorHandler.Handle("list projects", err)
	}

	if len(projects) == 0 {
		fmt.Println("No projects found")
		return nil
	}

	for _, project := range projects {
		if project.Note != "" {
			fmt.Printf("%s  %-20s %s\n", project.ID, project.Name, project.Note)
		} else {
			fmt.Printf("%s  %s\n", project.ID, project.Name)
		}
	}
	return nil
}

// ExecuteNote replaces the note on a project. Requires the admin password.
func (c *ProjectCommand) ExecuteNote(ctx context.Context, args []string, adminPassword string) error {
	if len(args) < 2 {
		return errors.NewInvalidInputError("command", "project note", "usage: timeclock project note <project> <note>")
	}
	if err := c.app.requireAdmin(adminPassword); err != nil {
		return c.errorHandler.Handle("update project note", err)
	}

	project, err := c.app.resolveProject(ctx, args[0])
	if err != nil {
		return c.errorHandler.Handle("update project note", err)
	}

	note := strings.Join(args[1:], " ")
	project, err = c.app.projects.UpdateProjectNote(ctx, project.ID, note)
	if err != nil {
		return c.errorHandler.Handle("update project note", err)
	}

	fmt.Printf("Updated note for project %s\n", project.Name)
	return nil
}

// ExecuteRemove deletes a project. Requires the admin password.
func (c *ProjectCommand) ExecuteRemove(ctx context.Context, args []string, adminPassword string) error {
	if len(args) < 1 {
		return errors.NewInvalidInputError("command", "project remove", "usage: timeclock project remove <project>")
	}
	if err := c.app.requireAdmin(adminPassword); err != nil {
		return c.errorHandler.Handle("remove project", err)
	}

	project, err := c.app.resolveProject(ctx, args[0])
	if err != nil {
		return c.errorHandler.Handle("remove project", err)
	}

	if err := c.app.projects.DeleteProject(ctx, project.ID); err != nil {
		return c.errorHandler.Handle("remove project", err)
	}

	fmt.Printf("Removed project %s\n", project.Name)
	return nil
}
