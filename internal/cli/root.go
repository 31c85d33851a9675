package cli

import (
	"github.com/dmoreno/groundwork/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Projects  service.ProjectService
	Timeline  service.TimelineService
	Schedule  service.ScheduleService
	Punch     service.PunchService
	Materials service.MaterialService
	Logs      service.LogService
	Blockers  service.BlockerService

	// IsInteractive reports whether stdin is a terminal. Interactive-only
	// surfaces (forms, the timeline TUI) are gated on it.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "groundwork" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "groundwork",
		Short: "Field operations tracker for flooring jobs",
	}

	root.AddCommand(
		newProjectCmd(app),
		newTimelineCmd(app),
		newPhaseCmd(app),
		newPunchCmd(app),
		newMaterialCmd(app),
		newLogCmd(app),
		newBlockerCmd(app),
	)

	return root
}
