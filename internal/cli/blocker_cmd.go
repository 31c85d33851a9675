package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmoreno/groundwork/internal/cli/formatter"
	"github.com/dmoreno/groundwork/internal/domain"
	"github.com/spf13/cobra"
)

func newBlockerCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "blocker",
		Short: "Manage manual blockers",
	}

	cmd.AddCommand(
		newBlockerAddCmd(app),
		newBlockerListCmd(app),
		newBlockerResolveCmd(app),
	)

	return cmd
}

func newBlockerAddCmd(app *App) *cobra.Command {
	var project, reason, phases string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Raise a blocker by hand",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, project)
			if err != nil {
				return err
			}

			b := &domain.ProjectBlocker{
				ProjectID: projectID,
				Reason:    reason,
			}
			if phases != "" {
				for _, p := range strings.Split(phases, ",") {
					b.Phases = append(b.Phases, domain.Phase(strings.TrimSpace(p)))
				}
			}

			if err := app.Blockers.Add(ctx, b); err != nil {
				return err
			}
			if len(b.Phases) == 0 {
				fmt.Println("Blocker raised on the current phase.")
			} else {
				fmt.Printf("Blocker raised on: %s\n", phases)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Job ID or project ID")
	cmd.Flags().StringVar(&reason, "reason", "", "Why work is blocked")
	cmd.Flags().StringVar(&phases, "phases", "", "Comma-separated phases (empty blocks whichever phase is current)")
	_ = cmd.MarkFlagRequired("project")
	_ = cmd.MarkFlagRequired("reason")

	return cmd
}

func newBlockerListCmd(app *App) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list <job>",
		Short: "List blockers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}

			var blockers []domain.ProjectBlocker
			if all {
				blockers, err = app.Blockers.ListAll(ctx, id)
			} else {
				blockers, err = app.Blockers.ListActive(ctx, id)
			}
			if err != nil {
				return err
			}
			if len(blockers) == 0 {
				fmt.Println(formatter.Dim("No blockers."))
				return nil
			}

			headers := []string{"ID", "PHASES", "REASON", "SOURCE", "STATUS"}
			rows := make([][]string, 0, len(blockers))
			for _, b := range blockers {
				phases := "any"
				if len(b.Phases) > 0 {
					strs := make([]string, len(b.Phases))
					for i, p := range b.Phases {
						strs[i] = string(p)
					}
					phases = strings.Join(strs, ",")
				}
				status := formatter.StyleRed.Render("active")
				if !b.Active() {
					status = formatter.StyleGreen.Render("resolved")
				}
				rows = append(rows, []string{
					formatter.Dim(b.ID[:8]),
					phases,
					b.Reason,
					string(b.Source),
					status,
				})
			}
			fmt.Print(formatter.RenderTable(headers, rows))
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Include resolved blockers")
	return cmd
}

func newBlockerResolveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <blocker-id>",
		Short: "Resolve a manual blocker",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Blockers.Resolve(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Println("Resolved.")
			return nil
		},
	}
}
