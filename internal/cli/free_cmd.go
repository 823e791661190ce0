package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/clavrhq/clavr/internal/cli/formatter"
	"github.com/clavrhq/clavr/internal/contract"
	"github.com/spf13/cobra"
)

func newFreeCmd(app *App) *cobra.Command {
	var day string
	var durationMin int
	var maxCount int
	var anyHour bool

	cmd := &cobra.Command{
		Use:   "free",
		Short: "Find open slots on a day",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			target := time.Now()
			if day != "" {
				parsed, err := parseWhen(day, time.Now(), appLocation(ctx, app))
				if err != nil {
					return err
				}
				target = parsed
			}

			resp, err := app.Scheduler.FindFreeSlots(ctx, contract.FreeSlotsRequest{
				Day:              target,
				DurationMin:      durationMin,
				MaxCount:         maxCount,
				WorkingHoursOnly: !anyHour,
			})
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatFreeSlots(resp))
			return nil
		},
	}

	cmd.Flags().StringVar(&day, "day", "", "Day to search (today, tomorrow, or YYYY-MM-DD)")
	cmd.Flags().IntVar(&durationMin, "duration", 0, "Slot length in minutes (default from profile)")
	cmd.Flags().IntVar(&maxCount, "count", 5, "Maximum slots to return")
	cmd.Flags().BoolVar(&anyHour, "any-hour", false, "Search outside working hours too")

	return cmd
}
