package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/dmoreno/groundwork/internal/cli/formatter"
	"github.com/dmoreno/groundwork/internal/domain"
	"github.com/spf13/cobra"
)

func newPhaseCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "phase",
		Short: "Manage schedule phases",
	}

	cmd.AddCommand(
		newPhaseAddCmd(app),
		newPhaseListCmd(app),
		newPhaseStatusCmd(app),
		newPhaseDepCmd(app),
		newPhaseRemoveCmd(app),
	)

	return cmd
}

func newPhaseAddCmd(app *App) *cobra.Command {
	var project, name, phaseStr, start, end string
	var baseline bool

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a schedule phase to a job",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			// Missing flags fall back to a form on a terminal.
			if (name == "" || phaseStr == "" || start == "" || end == "") && app.interactive() {
				if err := phaseAddForm(&name, &phaseStr, &start, &end); err != nil {
					return err
				}
			}

			projectID, err := resolveProjectID(ctx, app, project)
			if err != nil {
				return err
			}
			canonical, err := domain.ParsePhase(phaseStr)
			if err != nil {
				return err
			}
			startDate, err := parseDate(start)
			if err != nil {
				return err
			}
			endDate, err := parseDate(end)
			if err != nil {
				return err
			}

			sp := &domain.SchedulePhase{
				ProjectID: projectID,
				Name:      name,
				Phase:     canonical,
				StartDate: startDate,
				EndDate:   endDate,
			}
			if baseline {
				sp.BaselineStart = &startDate
				sp.BaselineEnd = &endDate
			}

			if err := app.Schedule.Create(ctx, sp); err != nil {
				return err
			}
			fmt.Printf("Added phase %s (%s) %s → %s\n", sp.Name, sp.Phase, start, end)
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Job ID or project ID")
	cmd.Flags().StringVar(&name, "name", "", "Phase name")
	cmd.Flags().StringVar(&phaseStr, "phase", "", "Canonical phase (demo, prep, acclimation, install, cure, punch, closeout)")
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "End date (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&baseline, "baseline", false, "Record the window as the baseline plan")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}

func phaseAddForm(name, phaseStr, start, end *string) error {
	options := make([]huh.Option[string], 0, len(domain.PhaseOrder))
	for _, p := range domain.PhaseOrder {
		cfg, _ := domain.ConfigFor(p)
		options = append(options, huh.NewOption(cfg.Label, string(p)))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Phase Name").
				Placeholder("Install main floor").
				Value(name),
			huh.NewSelect[string]().
				Title("Canonical Phase").
				Options(options...).
				Value(phaseStr),
			huh.NewInput().
				Title("Start (YYYY-MM-DD)").
				Placeholder("2025-06-01").
				Value(start).
				Validate(validateDate),
			huh.NewInput().
				Title("End (YYYY-MM-DD)").
				Placeholder("2025-06-05").
				Value(end).
				Validate(validateDate),
		),
	).WithTheme(groundworkHuhTheme()).WithShowHelp(false)

	return form.Run()
}

func newPhaseListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list <job>",
		Short: "List schedule phases with derived variance and critical path",
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
			fmt.Print(formatter.RenderScheduleTable(result.Schedule))
			for _, w := range result.Warnings {
				fmt.Println(formatter.Dim(fmt.Sprintf(
					"warning: phase %s references missing dependency %s", w.PhaseID, w.MissingDep)))
			}
			return nil
		},
	}
}

func newPhaseStatusCmd(app *App) *cobra.Command {
	var progress int

	cmd := &cobra.Command{
		Use:   "status <phase-id> <status>",
		Short: "Update a schedule phase's status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			status := domain.SchedulePhaseStatus(args[1])
			if err := app.Schedule.SetStatus(context.Background(), args[0], status, progress); err != nil {
				return err
			}
			fmt.Printf("Phase %s → %s\n", args[0], status)
			return nil
		},
	}

	cmd.Flags().IntVar(&progress, "progress", 0, "Progress percentage (0-100)")
	return cmd
}

func newPhaseDepCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dep",
		Short: "Manage phase dependencies",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "add <phase-id> <depends-on-id>",
			Short: "Make one phase depend on another",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := app.Schedule.AddDependency(context.Background(), args[0], args[1]); err != nil {
					return err
				}
				fmt.Println("Dependency added.")
				return nil
			},
		},
		&cobra.Command{
			Use:   "remove <phase-id> <depends-on-id>",
			Short: "Remove a dependency",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := app.Schedule.RemoveDependency(context.Background(), args[0], args[1]); err != nil {
					return err
				}
				fmt.Println("Dependency removed.")
				return nil
			},
		},
	)

	return cmd
}

func newPhaseRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <phase-id>",
		Short: "Delete a schedule phase",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Schedule.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Println("Deleted.")
			return nil
		},
	}
}
