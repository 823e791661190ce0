package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/clavrhq/clavr/internal/cli/formatter"
	"github.com/clavrhq/clavr/internal/contract"
	"github.com/spf13/cobra"
)

func newAgendaCmd(app *App) *cobra.Command {
	var day string
	var days int

	cmd := &cobra.Command{
		Use:   "agenda",
		Short: "Show the day's events",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			req := contract.AgendaRequest{Days: days}

			if day != "" {
				parsed, err := parseWhen(day, time.Now(), appLocation(ctx, app))
				if err != nil {
					return err
				}
				req.Day = parsed
			}

			resp, err := app.Agenda.Agenda(ctx, req)
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatAgenda(resp))
			return nil
		},
	}

	cmd.Flags().StringVar(&day, "day", "", "Day to show (today, tomorrow, or YYYY-MM-DD)")
	cmd.Flags().IntVar(&days, "days", 1, "Number of days to include")

	return cmd
}
