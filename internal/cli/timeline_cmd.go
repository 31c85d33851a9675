package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dmoreno/groundwork/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newTimelineCmd(app *App) *cobra.Command {
	var interactive bool

	cmd := &cobra.Command{
		Use:   "timeline <job>",
		Short: "Show the derived phase timeline for a job",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			result, err := app.Timeline.GetTimeline(ctx, id)
			if err != nil {
				return err
			}

			if interactive && app.interactive() {
				model := newTimelineModel(result)
				_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
				return err
			}

			fmt.Println(formatter.Header(fmt.Sprintf("%s — %s", result.Project.DisplayID(), result.Project.Name)))
			fmt.Print(formatter.RenderTimeline(result.Phases))

			if len(result.Schedule) > 0 {
				fmt.Println()
				fmt.Println(formatter.Header("schedule"))
				fmt.Print(formatter.RenderScheduleTable(result.Schedule))
				fmt.Println()
				fmt.Print(formatter.RenderGantt(result.Schedule, result.Bars, 40))
			}

			for _, w := range result.Warnings {
				fmt.Println(formatter.Dim(fmt.Sprintf(
					"warning: phase %s references missing dependency %s", w.PhaseID, w.MissingDep)))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Browse the timeline in a full-screen view")
	return cmd
}
