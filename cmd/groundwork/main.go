package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dmoreno/groundwork/internal/cli"
	"github.com/dmoreno/groundwork/internal/db"
	"github.com/dmoreno/groundwork/internal/repository"
	"github.com/dmoreno/groundwork/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.groundwork/groundwork.db
	dbPath := os.Getenv("GROUNDWORK_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".groundwork", "groundwork.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	projectRepo := repository.NewSQLiteProjectRepo(database)
	scheduleRepo := repository.NewSQLiteSchedulePhaseRepo(database)
	acclimationRepo := repository.NewSQLiteAcclimationRepo(database)
	punchRepo := repository.NewSQLitePunchRepo(database)
	deliveryRepo := repository.NewSQLiteDeliveryRepo(database)
	logRepo := repository.NewSQLiteDailyLogRepo(database)
	blockerRepo := repository.NewSQLiteBlockerRepo(database)

	// Wire unit of work for fact+blocker writes
	uow := db.NewSQLiteUnitOfWork(database)

	// Use-case logging is opt-in; the default output stays clean.
	var observers []service.UseCaseObserver
	if os.Getenv("GROUNDWORK_LOG") != "" {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr))
	}

	app := &cli.App{
		Projects: service.NewProjectService(projectRepo),
		Timeline: service.NewTimelineService(
			projectRepo, scheduleRepo, acclimationRepo, punchRepo,
			deliveryRepo, logRepo, blockerRepo, observers...),
		Schedule:  service.NewScheduleService(scheduleRepo),
		Punch:     service.NewPunchService(punchRepo, uow),
		Materials: service.NewMaterialService(deliveryRepo, acclimationRepo, uow, observers...),
		Logs:      service.NewLogService(logRepo),
		Blockers:  service.NewBlockerService(blockerRepo),
	}

	// Detect interactive terminal for form and TUI entrypoints.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
