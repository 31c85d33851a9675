package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/dmoreno/groundwork/internal/cli/formatter"
	"github.com/dmoreno/groundwork/internal/domain"
	"github.com/spf13/cobra"
)

func newMaterialCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "material",
		Short: "Track deliveries and acclimation",
	}

	cmd.AddCommand(
		newDeliveryAddCmd(app),
		newDeliveryListCmd(app),
		newDeliveryDelayedCmd(app),
		newDeliveryDeliveredCmd(app),
		newAcclimationStartCmd(app),
		newAcclimationListCmd(app),
		newAcclimationReadingCmd(app),
		newAcclimationCompleteCmd(app),
		newAcclimationCancelCmd(app),
		newAcclimationSweepCmd(app),
	)

	return cmd
}

func newDeliveryAddCmd(app *App) *cobra.Command {
	var project, material, unit, expected string
	var quantity float64
	var acclimate bool

	cmd := &cobra.Command{
		Use:   "order",
		Short: "Record an ordered material delivery",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, project)
			if err != nil {
				return err
			}
			expectedDate, err := parseDate(expected)
			if err != nil {
				return err
			}

			d := &domain.MaterialDelivery{
				ProjectID:           projectID,
				MaterialName:        material,
				Quantity:            quantity,
				Unit:                unit,
				ExpectedDate:        expectedDate,
				RequiresAcclimation: acclimate,
			}
			if err := app.Materials.AddDelivery(ctx, d); err != nil {
				return err
			}
			fmt.Printf("Ordered %g %s of %s, expected %s\n", d.Quantity, d.Unit, d.MaterialName, expected)
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Job ID or project ID")
	cmd.Flags().StringVar(&material, "material", "", "Material name")
	cmd.Flags().Float64Var(&quantity, "qty", 0, "Quantity")
	cmd.Flags().StringVar(&unit, "unit", "sqft", "Unit (sqft, boxes, rolls, gal)")
	cmd.Flags().StringVar(&expected, "expected", "", "Expected date (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&acclimate, "acclimate", false, "Material must acclimate on site before install")
	_ = cmd.MarkFlagRequired("project")
	_ = cmd.MarkFlagRequired("material")
	_ = cmd.MarkFlagRequired("expected")

	return cmd
}

func newDeliveryListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list <job>",
		Short: "List deliveries",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			deliveries, err := app.Materials.ListDeliveries(ctx, id)
			if err != nil {
				return err
			}
			if len(deliveries) == 0 {
				fmt.Println(formatter.Dim("No deliveries."))
				return nil
			}

			headers := []string{"ID", "MATERIAL", "QTY", "STATUS", "EXPECTED", "ACCLIMATE"}
			rows := make([][]string, 0, len(deliveries))
			for _, d := range deliveries {
				acclimate := ""
				if d.RequiresAcclimation {
					acclimate = "yes"
				}
				rows = append(rows, []string{
					formatter.Dim(d.ID[:8]),
					d.MaterialName,
					strconv.FormatFloat(d.Quantity, 'f', -1, 64) + " " + d.Unit,
					formatter.DeliveryStyle(d.Status).Render(string(d.Status)),
					formatter.ShortDate(d.ExpectedDate),
					acclimate,
				})
			}
			fmt.Print(formatter.RenderTable(headers, rows))
			return nil
		},
	}
}

func newDeliveryDelayedCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delayed <delivery-id>",
		Short: "Mark a delivery delayed (blocks install)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Materials.MarkDelayed(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Println(formatter.StyleRed.Render("Delivery delayed; install is blocked until it arrives."))
			return nil
		},
	}
}

func newDeliveryDeliveredCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delivered <delivery-id>",
		Short: "Mark a delivery as arrived",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Materials.MarkDelivered(context.Background(), args[0], time.Now().UTC()); err != nil {
				return err
			}
			fmt.Println("Delivered.")
			return nil
		},
	}
}

func newAcclimationStartCmd(app *App) *cobra.Command {
	var project, material string
	var hours int
	var minTemp, maxTemp, minHum, maxHum float64

	cmd := &cobra.Command{
		Use:   "acclimate",
		Short: "Start an acclimation session",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, project)
			if err != nil {
				return err
			}

			sess := &domain.AcclimationSession{
				ProjectID:      projectID,
				MaterialName:   material,
				RequiredHours:  hours,
				MinTempF:       minTemp,
				MaxTempF:       maxTemp,
				MinHumidityPct: minHum,
				MaxHumidityPct: maxHum,
			}
			if err := app.Materials.StartAcclimation(ctx, sess); err != nil {
				return err
			}
			fmt.Printf("%s acclimating, %dh required\n", sess.MaterialName, sess.RequiredHours)
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Job ID or project ID")
	cmd.Flags().StringVar(&material, "material", "", "Material name")
	cmd.Flags().IntVar(&hours, "hours", 48, "Required rest hours")
	cmd.Flags().Float64Var(&minTemp, "min-temp", 60, "Minimum acceptable temperature (°F)")
	cmd.Flags().Float64Var(&maxTemp, "max-temp", 80, "Maximum acceptable temperature (°F)")
	cmd.Flags().Float64Var(&minHum, "min-humidity", 30, "Minimum acceptable humidity (%)")
	cmd.Flags().Float64Var(&maxHum, "max-humidity", 55, "Maximum acceptable humidity (%)")
	_ = cmd.MarkFlagRequired("project")
	_ = cmd.MarkFlagRequired("material")

	return cmd
}

func newAcclimationListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "sessions <job>",
		Short: "List acclimation sessions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			sessions, err := app.Materials.ListSessions(ctx, id)
			if err != nil {
				return err
			}
			if len(sessions) == 0 {
				fmt.Println(formatter.Dim("No acclimation sessions."))
				return nil
			}

			now := time.Now().UTC()
			headers := []string{"ID", "MATERIAL", "STATUS", "ELAPSED", "READINGS"}
			rows := make([][]string, 0, len(sessions))
			for _, s := range sessions {
				elapsed := fmt.Sprintf("%d/%dh", s.ElapsedHours(now), s.RequiredHours)
				readings := fmt.Sprintf("%d", len(s.Readings))
				if !s.ReadingsInRange() {
					readings = formatter.StyleYellow.Render(readings + " ⚠")
				}
				rows = append(rows, []string{
					formatter.Dim(s.ID[:8]),
					s.MaterialName,
					string(s.Status),
					elapsed,
					readings,
				})
			}
			fmt.Print(formatter.RenderTable(headers, rows))
			return nil
		},
	}
}

func newAcclimationReadingCmd(app *App) *cobra.Command {
	var temp, humidity float64

	cmd := &cobra.Command{
		Use:   "reading <session-id>",
		Short: "Record a site condition reading",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r := domain.EnvReading{At: time.Now().UTC(), TempF: temp, HumidityPct: humidity}
			if err := app.Materials.RecordReading(context.Background(), args[0], r); err != nil {
				return err
			}
			fmt.Printf("Recorded %.0f°F / %.0f%% RH\n", temp, humidity)
			return nil
		},
	}

	cmd.Flags().Float64Var(&temp, "temp", 0, "Temperature (°F)")
	cmd.Flags().Float64Var(&humidity, "humidity", 0, "Relative humidity (%)")
	_ = cmd.MarkFlagRequired("temp")
	_ = cmd.MarkFlagRequired("humidity")

	return cmd
}

func newAcclimationCompleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "complete <session-id>",
		Short: "Mark an acclimation session complete",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Materials.CompleteSession(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Println("Session complete.")
			return nil
		},
	}
}

func newAcclimationCancelCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "cancel <session-id>",
		Short: "Cancel an acclimation session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Materials.CancelSession(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Println("Session cancelled.")
			return nil
		},
	}
}

func newAcclimationSweepCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "sweep <job>",
		Short: "Complete every session whose required hours have elapsed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			n, err := app.Materials.CompleteReadySessions(ctx, id, time.Now().UTC())
			if err != nil {
				return err
			}
			fmt.Printf("%d session(s) completed.\n", n)
			return nil
		},
	}
}
