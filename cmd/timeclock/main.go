package main

import (
	"fmt"
	"os"

	"timeclock/internal/cli"
	"timeclock/internal/config"
	"timeclock/internal/logging"
	"timeclock/internal/services"
	"timeclock/internal/session"
	"timeclock/internal/snapshot"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	logging.Setup(cfg.Application.LogLevel)

	// Create repository factory based on environment
	env := getEnvironment()
	factory := NewRepositoryFactory(env, cfg)

	repo, err := factory.CreateRepository()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating repository: %v\n", err)
		os.Exit(1)
	}
	defer repo.Close()

	snapshots, err := snapshot.NewFileStore(cfg.Session.StateDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating snapshot store: %v\n", err)
		os.Exit(1)
	}

	policy := session.Policy{
		LunchStartHour: cfg.Session.LunchStartHour,
		LunchEndHour:   cfg.Session.LunchEndHour,
		CutoffHour:     cfg.Session.CutoffHour,
	}

	employees := services.NewEmployeeService(repo, cfg.Admin.Password)
	projects := services.NewProjectService(repo)
	records := services.NewTimeRecordService(repo, policy)
	vacations := services.NewVacationService(repo)
	reporting := services.NewReportingService(repo)

	engine := session.NewEngine(records, projects, snapshots, session.SystemClock(), policy)

	app := cli.NewApp(cfg, engine, employees, projects, records, vacations, reporting)

	root := cli.NewRootCommand(app, cfg)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
