package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/dmoreno/groundwork/internal/cli/formatter"
	"github.com/dmoreno/groundwork/internal/domain"
	"github.com/spf13/cobra"
)

func newProjectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage flooring jobs",
	}

	cmd.AddCommand(
		newProjectAddCmd(app),
		newProjectListCmd(app),
		newProjectInspectCmd(app),
		newProjectProgressCmd(app),
		newProjectArchiveCmd(app),
		newProjectUnarchiveCmd(app),
		newProjectRemoveCmd(app),
	)

	return cmd
}

func newProjectAddCmd(app *App) *cobra.Command {
	var jobID, name, client, site, start, target string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new job",
		RunE: func(cmd *cobra.Command, args []string) error {
			p := &domain.Project{
				JobID:       jobID,
				Name:        name,
				Client:      client,
				SiteAddress: site,
				Status:      domain.ProjectActive,
			}

			if start != "" {
				startDate, err := time.Parse("2006-01-02", start)
				if err != nil {
					return fmt.Errorf("invalid start date %q: %w", start, err)
				}
				p.StartDate = startDate
			}
			if target != "" {
				targetDate, err := time.Parse("2006-01-02", target)
				if err != nil {
					return fmt.Errorf("invalid target date %q: %w", target, err)
				}
				p.TargetDate = &targetDate
			}

			if err := app.Projects.Create(context.Background(), p); err != nil {
				return err
			}

			fmt.Printf("Created job %s [%s]\n", p.Name, p.JobID)
			return nil
		},
	}

	cmd.Flags().StringVar(&jobID, "job", "", "Job ID (2-6 uppercase letters + 2-5 digits, e.g. KITCH-042)")
	cmd.Flags().StringVar(&name, "name", "", "Job name")
	cmd.Flags().StringVar(&client, "client", "", "Client name")
	cmd.Flags().StringVar(&site, "site", "", "Site address")
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&target, "target", "", "Target completion date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("job")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newProjectListCmd(app *App) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List jobs",
		RunE: func(cmd *cobra.Command, args []string) error {
			projects, err := app.Projects.List(context.Background(), all)
			if err != nil {
				return err
			}
			if len(projects) == 0 {
				fmt.Println(formatter.Dim("No jobs. Create one with 'groundwork project add'."))
				return nil
			}

			headers := []string{"JOB", "NAME", "CLIENT", "STATUS", "PROGRESS", "TARGET"}
			rows := make([][]string, 0, len(projects))
			for _, p := range projects {
				target := formatter.Dim("—")
				if p.TargetDate != nil {
					target = formatter.RelativeDate(*p.TargetDate)
				}
				rows = append(rows, []string{
					formatter.Bold(p.JobID),
					p.Name,
					p.Client,
					string(p.Status),
					formatter.RenderProgress(float64(p.Progress)/100, 10),
					target,
				})
			}
			fmt.Print(formatter.RenderTable(headers, rows))
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Include archived jobs")
	return cmd
}

func newProjectInspectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <job>",
		Short: "Show job details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			p, err := app.Projects.GetByID(ctx, id)
			if err != nil {
				return err
			}

			var b []string
			b = append(b,
				fmt.Sprintf("%s  %s", formatter.Bold(p.JobID), p.Name),
				fmt.Sprintf("Client:   %s", p.Client),
				fmt.Sprintf("Site:     %s", p.SiteAddress),
				fmt.Sprintf("Status:   %s", p.Status),
				fmt.Sprintf("Started:  %s", formatter.ShortDate(p.StartDate)),
			)
			if p.TargetDate != nil {
				b = append(b, fmt.Sprintf("Target:   %s (%s)",
					formatter.ShortDate(*p.TargetDate), formatter.RelativeDate(*p.TargetDate)))
			}
			b = append(b, fmt.Sprintf("Progress: %s", formatter.RenderProgress(float64(p.Progress)/100, 20)))

			fmt.Println(formatter.RenderBox("job", joinLines(b)))
			return nil
		},
	}
}

func newProjectProgressCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "progress <job> <percent>",
		Short: "Set overall job progress",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			pct, err := parsePercent(args[1])
			if err != nil {
				return err
			}
			p, err := app.Projects.GetByID(ctx, id)
			if err != nil {
				return err
			}
			p.Progress = pct
			if err := app.Projects.Update(ctx, p); err != nil {
				return err
			}
			fmt.Printf("%s progress set to %d%%\n", p.JobID, pct)
			return nil
		},
	}
}

func newProjectArchiveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "archive <job>",
		Short: "Archive a job",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Projects.Archive(ctx, id); err != nil {
				return err
			}
			fmt.Println("Archived.")
			return nil
		},
	}
}

func newProjectUnarchiveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "unarchive <job>",
		Short: "Restore an archived job",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Projects.Unarchive(ctx, id); err != nil {
				return err
			}
			fmt.Println("Restored.")
			return nil
		},
	}
}

func newProjectRemoveCmd(app *App) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "remove <job>",
		Short: "Delete a job and all its records",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Projects.Delete(ctx, id, force); err != nil {
				return err
			}
			fmt.Println("Deleted.")
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Delete even if not archived")
	return cmd
}
