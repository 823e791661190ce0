package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/clavrhq/clavr/internal/cli/formatter"
	"github.com/clavrhq/clavr/internal/contract"
	"github.com/clavrhq/clavr/internal/domain"
	"github.com/spf13/cobra"
)

func newScheduleCmd(app *App) *cobra.Command {
	var at string
	var durationMin int
	var location string
	var force bool

	cmd := &cobra.Command{
		Use:   `schedule "<title>"`,
		Short: "Book an event, checking conflicts first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			start, err := parseWhen(at, time.Now(), appLocation(ctx, app))
			if err != nil {
				return err
			}

			req := contract.ConflictCheckRequest{
				Title:       args[0],
				Start:       start,
				DurationMin: durationMin,
				Location:    location,
			}

			result, err := app.Scheduler.CheckConflict(ctx, req)
			if err != nil {
				return err
			}

			if result.HasConflict && !force {
				fmt.Print(formatter.FormatConflictResult(result))
				if !app.IsInteractive() {
					return fmt.Errorf("slot is not free; rerun with --force to book anyway")
				}
				if !confirmBooking(fmt.Sprintf("Book %q anyway?", args[0])) {
					fmt.Println(formatter.Dim("Not booked."))
					return nil
				}
			}

			id, err := app.Scheduler.Book(ctx, req)
			if err != nil {
				return err
			}
			fmt.Printf("%s %s\n",
				formatter.StyleGreen.Render("Booked."),
				formatter.Dim(id),
			)
			return nil
		},
	}

	cmd.Flags().StringVar(&at, "at", "", "Start time (e.g. \"tomorrow 10:00\" or \"2025-06-02 10:00\")")
	cmd.Flags().IntVar(&durationMin, "duration", 0, "Duration in minutes (default from profile)")
	cmd.Flags().StringVar(&location, "location", "", "Event location")
	cmd.Flags().BoolVar(&force, "force", false, "Book even when the slot conflicts")
	_ = cmd.MarkFlagRequired("at")

	return cmd
}

func newRescheduleCmd(app *App) *cobra.Command {
	var at string
	var durationMin int

	cmd := &cobra.Command{
		Use:   "reschedule <event-id> <title>",
		Short: "Move an event to a new time",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			eventID, title := args[0], args[1]

			start, err := parseWhen(at, time.Now(), appLocation(ctx, app))
			if err != nil {
				return err
			}

			// The event being moved must not block its own new slot.
			result, err := app.Scheduler.CheckConflict(ctx, contract.ConflictCheckRequest{
				Title:          title,
				Start:          start,
				DurationMin:    durationMin,
				ExcludeEventID: eventID,
			})
			if err != nil {
				return err
			}
			if result.HasConflict {
				fmt.Print(formatter.FormatConflictResult(result))
				return fmt.Errorf("new slot is not free")
			}

			end := start.Add(time.Duration(resolveDuration(ctx, app, durationMin)) * time.Minute)
			err = app.Scheduler.Reschedule(ctx, domain.CalendarEvent{
				ID:    eventID,
				Title: title,
				Start: start,
				End:   end,
			})
			if err != nil {
				return err
			}
			fmt.Println(formatter.StyleGreen.Render("Moved."))
			return nil
		},
	}

	cmd.Flags().StringVar(&at, "at", "", "New start time")
	cmd.Flags().IntVar(&durationMin, "duration", 0, "Duration in minutes (default from profile)")
	_ = cmd.MarkFlagRequired("at")

	return cmd
}

func newCancelCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "cancel <event-id>",
		Short: "Delete an event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Scheduler.Cancel(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Println(formatter.StyleGreen.Render("Cancelled."))
			return nil
		},
	}
}

func resolveDuration(ctx context.Context, app *App, durationMin int) int {
	if durationMin > 0 {
		return durationMin
	}
	if profile, err := app.Profile.Get(ctx); err == nil && profile.DefaultEventMin > 0 {
		return profile.DefaultEventMin
	}
	return 60
}
