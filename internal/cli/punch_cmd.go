package cli

import (
	"context"
	"fmt"

	"github.com/dmoreno/groundwork/internal/cli/formatter"
	"github.com/dmoreno/groundwork/internal/domain"
	"github.com/spf13/cobra"
)

func newPunchCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "punch",
		Short: "Manage the walkthrough punch list",
	}

	cmd.AddCommand(
		newPunchAddCmd(app),
		newPunchListCmd(app),
		newPunchCloseCmd(app),
		newPunchReopenCmd(app),
		newPunchRemoveCmd(app),
	)

	return cmd
}

func newPunchAddCmd(app *App) *cobra.Command {
	var project, title, room, severity, assignee string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a punch item",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, project)
			if err != nil {
				return err
			}

			item := &domain.PunchItem{
				ProjectID:  projectID,
				Title:      title,
				Room:       room,
				Severity:   domain.PunchSeverity(severity),
				AssignedTo: assignee,
			}
			if err := app.Punch.Create(ctx, item); err != nil {
				return err
			}

			fmt.Printf("Added punch item: %s\n", item.Title)
			if item.Severity == domain.SeverityCritical {
				fmt.Println(formatter.StyleRed.Render("Critical item blocks the punch phase until closed."))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Job ID or project ID")
	cmd.Flags().StringVar(&title, "title", "", "What needs fixing")
	cmd.Flags().StringVar(&room, "room", "", "Room or area")
	cmd.Flags().StringVar(&severity, "severity", "minor", "minor, major, or critical")
	cmd.Flags().StringVar(&assignee, "assign", "", "Person responsible")
	_ = cmd.MarkFlagRequired("project")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func newPunchListCmd(app *App) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list <job>",
		Short: "List punch items",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			items, err := app.Punch.ListByProject(ctx, id)
			if err != nil {
				return err
			}

			headers := []string{"ID", "TITLE", "ROOM", "SEVERITY", "STATUS", "ASSIGNED"}
			var rows [][]string
			for _, pi := range items {
				if !all && !pi.Open() {
					continue
				}
				rows = append(rows, []string{
					formatter.Dim(pi.ID[:8]),
					pi.Title,
					pi.Room,
					formatter.SeverityStyle(pi.Severity).Render(string(pi.Severity)),
					string(pi.Status),
					pi.AssignedTo,
				})
			}
			if len(rows) == 0 {
				fmt.Println(formatter.Dim("Punch list is clear."))
				return nil
			}
			fmt.Print(formatter.RenderTable(headers, rows))
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Include completed items")
	return cmd
}

func newPunchCloseCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "close <item-id>",
		Short: "Close a punch item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Punch.Close(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Println("Closed.")
			return nil
		},
	}
}

func newPunchReopenCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "reopen <item-id>",
		Short: "Reopen a closed punch item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Punch.Reopen(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Println("Reopened.")
			return nil
		},
	}
}

func newPunchRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <item-id>",
		Short: "Delete a punch item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Punch.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Println("Deleted.")
			return nil
		},
	}
}
