package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmoreno/groundwork/internal/cli/formatter"
	"github.com/dmoreno/groundwork/internal/domain"
	"github.com/spf13/cobra"
)

func newLogCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "log",
		Short: "Record daily field logs",
	}

	cmd.AddCommand(
		newLogAddCmd(app),
		newLogListCmd(app),
		newLogRemoveCmd(app),
	)

	return cmd
}

func newLogAddCmd(app *App) *cobra.Command {
	var project, phaseStr, date, crew, work, notes string
	var hours float64

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a day's work",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, project)
			if err != nil {
				return err
			}
			canonical, err := domain.ParsePhase(phaseStr)
			if err != nil {
				return err
			}

			l := &domain.DailyLog{
				ProjectID:     projectID,
				Phase:         canonical,
				HoursWorked:   hours,
				WorkCompleted: work,
				Notes:         notes,
			}
			if date != "" {
				if l.Date, err = parseDate(date); err != nil {
					return err
				}
			}
			if crew != "" {
				for _, name := range strings.Split(crew, ",") {
					l.Crew = append(l.Crew, strings.TrimSpace(name))
				}
			}

			if err := app.Logs.Create(ctx, l); err != nil {
				return err
			}
			fmt.Printf("Logged %.1fh of %s work\n", l.HoursWorked, l.Phase)
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Job ID or project ID")
	cmd.Flags().StringVar(&phaseStr, "phase", "", "Phase worked (demo, prep, ...)")
	cmd.Flags().StringVar(&date, "date", "", "Log date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&crew, "crew", "", "Comma-separated crew names")
	cmd.Flags().Float64Var(&hours, "hours", 0, "Hours worked")
	cmd.Flags().StringVar(&work, "work", "", "What was completed")
	cmd.Flags().StringVar(&notes, "notes", "", "Additional notes")
	_ = cmd.MarkFlagRequired("project")
	_ = cmd.MarkFlagRequired("phase")

	return cmd
}

func newLogListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list <job>",
		Short: "List daily logs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			logs, err := app.Logs.ListByProject(ctx, id)
			if err != nil {
				return err
			}
			if len(logs) == 0 {
				fmt.Println(formatter.Dim("No logs yet."))
				return nil
			}

			headers := []string{"DATE", "PHASE", "HOURS", "CREW", "WORK"}
			rows := make([][]string, 0, len(logs))
			for _, l := range logs {
				rows = append(rows, []string{
					formatter.ShortDate(l.Date),
					string(l.Phase),
					fmt.Sprintf("%.1f", l.HoursWorked),
					strings.Join(l.Crew, ", "),
					l.WorkCompleted,
				})
			}
			fmt.Print(formatter.RenderTable(headers, rows))
			return nil
		},
	}
}

func newLogRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <log-id>",
		Short: "Delete a daily log",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Logs.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Println("Deleted.")
			return nil
		},
	}
}
