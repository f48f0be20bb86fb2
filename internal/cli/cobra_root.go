package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"timeclock/internal/config"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd    *cobra.Command
	app    *App
	config *config.Config
}

// NewRootCommand creates the root cobra command with global flags
func NewRootCommand(app *App, cfg *config.Config) *RootCommand {
	root := &RootCommand{
		app:    app,
		config: cfg,
	}

	root.cmd = &cobra.Command{
		Use:   "timeclock",
		Short: "A command-line time clock for small teams",
		Long: `Timeclock is a command-line time clock for small teams.

FEATURES:
  • Start, pause, resume and stop work sessions per employee
  • Automatic lunch break deduction for sessions overlapping the lunch window
  • Automatic end-of-day cutoff for forgotten sessions
  • Crash-safe session recovery across restarts
  • Employee, project and vacation management for administrators
  • Billable minute reports per employee and per project

EXAMPLES:
  timeclock start alice website --password secret     # Clock in on a project
  timeclock pause alice --password secret             # Take a break
  timeclock resume alice --password secret            # Back from the break
  timeclock stop alice --password secret              # Clock out
  timeclock status alice --password secret            # Show the running session
  timeclock watch                                     # Run the cutoff watcher
  timeclock employee add bob hunter2 --admin-password chef123
  timeclock project add website "Relaunch 2026" --admin-password chef123
  timeclock vacation request alice 2026-07-01 2026-07-14 --password secret
  timeclock report employees --from 2026-06-01 --to 2026-06-30 --admin-password chef123

CONFIGURATION:
  Configuration follows this priority order: environment variables > defaults

  Database Configuration:
    TC_DB_DIR                              Database directory (default: ~/.timeclock)
    TC_DB_FILENAME                         Database filename (default: timeclock.db)
    TC_DB_QUERY_TIMEOUT                    Query timeout (default: 10s)

  Session Configuration:
    TC_STATE_DIR                           Session snapshot directory (default: ~/.timeclock/state)
    TC_LUNCH_START_HOUR                    Lunch window start hour (default: 12)
    TC_LUNCH_END_HOUR                      Lunch window end hour (default: 13)
    TC_CUTOFF_HOUR                         Automatic cutoff hour (default: 17)
    TC_MONITOR_INTERVAL                    Cutoff poll interval (default: 30s)

  Application Configuration:
    TC_ADMIN_PASSWORD                      Administrator password
    TC_APP_TIMEOUT                         Application timeout (default: 60s)
    TC_LOG_LEVEL                           Log level (default: info)

GETTING HELP:
  timeclock [command] --help               # Get help for any specific command`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

// addGlobalFlags adds global authentication flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	flags.String("password", "", "Employee password for session and vacation commands")
	flags.String("admin-password", "", "Administrator password for management commands")
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	r.cmd.AddCommand(
		r.newStartCommand(),
		r.newPauseCommand(),
		r.newResumeCommand(),
		r.newStopCommand(),
		r.newStatusCommand(),
		r.newWatchCommand(),
		r.newEmployeeCommand(),
		r.newProjectCommand(),
		r.newVacationCommand(),
		r.newReportCommand(),
		r.newRecordCommand(),
	)
}

func (r *RootCommand) newStartCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "start <employee> <project>",
		Short: "Start a work session",
		Long: `Start a work session for an employee on a project.

The project may be given by id or by name. An employee can only have one
running session at a time.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			password, _ := cmd.Flags().GetString("password")
			return NewStartCommand(r.app).Execute(ctx, args, password)
		},
	}
}

func (r *RootCommand) newPauseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "pause <employee>",
		Short: "Pause the running work session",
		Long:  "Pause the employee's running work session. Paused time is not billable.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			password, _ := cmd.Flags().GetString("password")
			return NewPauseCommand(r.app).Execute(ctx, args, password)
		},
	}
}

func (r *RootCommand) newResumeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "resume <employee>",
		Short: "Resume a paused work session",
		Long:  "Resume the employee's paused work session.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			password, _ := cmd.Flags().GetString("password")
			return NewResumeCommand(r.app).Execute(ctx, args, password)
		},
	}
}

func (r *RootCommand) newStopCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stop <employee>",
		Short: "Stop the running work session",
		Long: `Stop the employee's running work session and record the billable minutes.

Sessions overlapping the lunch window have the overlap deducted once.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			password, _ := cmd.Flags().GetString("password")
			return NewStopCommand(r.app).Execute(ctx, args, password)
		},
	}
}

func (r *RootCommand) newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status <employee>",
		Short: "Show the employee's running work session",
		Long:  "Display the employee's running work session and the worked time so far.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			password, _ := cmd.Flags().GetString("password")
			return NewStatusCommand(r.app).Execute(ctx, args, password)
		},
	}
}

func (r *RootCommand) newWatchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Run the automatic cutoff watcher",
		Long: `Run the background watcher that recovers in-progress sessions and stops
every session that passes the end-of-day cutoff. Runs until interrupted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// The watcher runs until interrupted, no timeout.
			return NewWatchCommand(r.app).Execute(context.Background(), args)
		},
	}
}

func (r *RootCommand) newEmployeeCommand() *cobra.Command {
	employeeCmd := &cobra.Command{
		Use:   "employee",
		Short: "Manage employees",
	}

	employeeCmd.AddCommand(
		&cobra.Command{
			Use:   "add <name> <password>",
			Short: "Add a new employee",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx, cancel := r.commandContext()
				defer cancel()

				adminPassword, _ := cmd.Flags().GetString("admin-password")
				return NewEmployeeCommand(r.app).ExecuteAdd(ctx, args, adminPassword)
			},
		},
		&cobra.Command{
			Use:   "list",
			Short: "List all employees",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx, cancel := r.commandContext()
				defer cancel()

				return NewEmployeeCommand(r.app).ExecuteList(ctx, args)
			},
		},
		&cobra.Command{
			Use:   "activate <id>",
			Short: "Activate an employee",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx, cancel := r.commandContext()
				defer cancel()

				adminPassword, _ := cmd.Flags().GetString("admin-password")
				return NewEmployeeCommand(r.app).ExecuteSetActive(ctx, args, true, adminPassword)
			},
		},
		&cobra.Command{
			Use:   "deactivate <id>",
			Short: "Deactivate an employee",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx, cancel := r.commandContext()
				defer cancel()

				adminPassword, _ := cmd.Flags().GetString("admin-password")
				return NewEmployeeCommand(r.app).ExecuteSetActive(ctx, args, false, adminPassword)
			},
		},
	)

	return employeeCmd
}

func (r *RootCommand) newProjectCommand() *cobra.Command {
	projectCmd := &cobra.Command{
		Use:   "project",
		Short: "Manage projects",
	}

	projectCmd.AddCommand(
		&cobra.Command{
			Use:   "add <name> [note]",
			Short: "Add a new project",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx, cancel := r.commandContext()
				defer cancel()

				adminPassword, _ := cmd.Flags().GetString("admin-password")
				return NewProjectCommand(r.app).ExecuteAdd(ctx, args, adminPassword)
			},
		},
		&cobra.Command{
			Use:   "list",
			Short: "List all projects",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx, cancel := r.commandContext()
				defer cancel()

				return NewProjectCommand(r.app).ExecuteList(ctx, args)
			},
		},
		&cobra.Command{
			Use:   "note <project> <note>",
			Short: "Replace the note on a project",
			Args:  cobra.MinimumNArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx, cancel := r.commandContext()
				defer cancel()

				adminPassword, _ := cmd.Flags().GetString("admin-password")
				return NewProjectCommand(r.app).ExecuteNote(ctx, args, adminPassword)
			},
		},
		&cobra.Command{
			Use:   "remove <project>",
			Short: "Remove a project",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx, cancel := r.commandContext()
				defer cancel()

				adminPassword, _ := cmd.Flags().GetString("admin-password")
				return NewProjectCommand(r.app).ExecuteRemove(ctx, args, adminPassword)
			},
		},
	)

	return projectCmd
}

func (r *RootCommand) newVacationCommand() *cobra.Command {
	vacationCmd := &cobra.Command{
		Use:   "vacation",
		Short: "Manage vacation requests",
	}

	vacationCmd.AddCommand(
		&cobra.Command{
			Use:   "request <employee> <start> <end>",
			Short: "Request a vacation",
			Long:  "File a vacation request. Dates use the YYYY-MM-DD format and are inclusive.",
			Args:  cobra.ExactArgs(3),
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx, cancel := r.commandContext()
				defer cancel()

				password, _ := cmd.Flags().GetString("password")
				return NewVacationCommand(r.app).ExecuteRequest(ctx, args, password)
			},
		},
		&cobra.Command{
			Use:   "list [employee-id]",
			Short: "List vacation requests",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx, cancel := r.commandContext()
				defer cancel()

				return NewVacationCommand(r.app).ExecuteList(ctx, args)
			},
		},
		&cobra.Command{
			Use:   "approve <id>",
			Short: "Approve a vacation request",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx, cancel := r.commandContext()
				defer cancel()

				adminPassword, _ := cmd.Flags().GetString("admin-password")
				return NewVacationCommand(r.app).ExecuteApprove(ctx, args, adminPassword)
			},
		},
		&cobra.Command{
			Use:   "reject <id>",
			Short: "Reject a vacation request",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx, cancel := r.commandContext()
				defer cancel()

				adminPassword, _ := cmd.Flags().GetString("admin-password")
				return NewVacationCommand(r.app).ExecuteReject(ctx, args, adminPassword)
			},
		},
	)

	return vacationCmd
}

func (r *RootCommand) newReportCommand() *cobra.Command {
	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Billable minute reports",
	}

	employeesCmd := &cobra.Command{
		Use:   "employees",
		Short: "Billable minutes per employee",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			from, _ := cmd.Flags().GetString("from")
			to, _ := cmd.Flags().GetString("to")
			adminPassword, _ := cmd.Flags().GetString("admin-password")
			return NewReportCommand(r.app).ExecuteEmployees(ctx, from, to, adminPassword)
		},
	}
	employeesCmd.Flags().String("from", "", "Start date (YYYY-MM-DD, inclusive)")
	employeesCmd.Flags().String("to", "", "End date (YYYY-MM-DD, inclusive)")

	projectsCmd := &cobra.Command{
		Use:   "projects",
		Short: "Billable minutes per project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			from, _ := cmd.Flags().GetString("from")
			to, _ := cmd.Flags().GetString("to")
			adminPassword, _ := cmd.Flags().GetString("admin-password")
			return NewReportCommand(r.app).ExecuteProjects(ctx, from, to, adminPassword)
		},
	}
	projectsCmd.Flags().String("from", "", "Start date (YYYY-MM-DD, inclusive)")
	projectsCmd.Flags().String("to", "", "End date (YYYY-MM-DD, inclusive)")

	reportCmd.AddCommand(employeesCmd, projectsCmd)
	return reportCmd
}

func (r *RootCommand) newRecordCommand() *cobra.Command {
	recordCmd := &cobra.Command{
		Use:   "record",
		Short: "Inspect and correct time records",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List time records",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			employeeID, _ := cmd.Flags().GetString("employee")
			projectID, _ := cmd.Flags().GetString("project")
			openOnly, _ := cmd.Flags().GetBool("open")
			return NewRecordCommand(r.app).ExecuteList(ctx, employeeID, projectID, openOnly)
		},
	}
	listCmd.Flags().String("employee", "", "Filter by employee id")
	listCmd.Flags().String("project", "", "Filter by project id")
	listCmd.Flags().Bool("open", false, "Only show open records")

	editCmd := &cobra.Command{
		Use:   "edit <id> <start> <end>",
		Short: "Correct a time record",
		Long: `Correct the start and end time of a record and recompute its billable
minutes. Times use the "YYYY-MM-DD HH:MM" format.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			pausedMinutes, _ := cmd.Flags().GetInt("paused")
			adminPassword, _ := cmd.Flags().GetString("admin-password")
			return NewRecordCommand(r.app).ExecuteEdit(ctx, args, pausedMinutes, adminPassword)
		},
	}
	editCmd.Flags().Int("paused", 0, "Paused minutes to deduct")

	recordCmd.AddCommand(listCmd, editCmd)
	return recordCmd
}

// commandContext returns a context bounded by the configured application timeout
func (r *RootCommand) commandContext() (context.Context, context.CancelFunc) {
	timeout := 60 * time.Second
	if r.config != nil {
		timeout = r.config.Application.Timeout
	}
	return context.WithTimeout(context.Background(), timeout)
}
