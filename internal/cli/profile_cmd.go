package cli

import (
	"context"
	"fmt"

	"github.com/clavrhq/clavr/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newProfileCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show or change assistant settings",
	}
	cmd.AddCommand(newProfileShowCmd(app), newProfileSetCmd(app))
	return cmd
}

func newProfileShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := app.Profile.Get(context.Background())
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatProfile(profile))
			return nil
		},
	}
}

func newProfileSetCmd(app *App) *cobra.Command {
	var timezone, home string
	var workStart, workEnd, eventMin, suggestions int
	var travel bool

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			profile, err := app.Profile.Get(ctx)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("timezone") {
				profile.Timezone = timezone
			}
			if cmd.Flags().Changed("home") {
				profile.HomeLocation = home
			}
			if cmd.Flags().Changed("work-start") {
				profile.WorkStartHour = workStart
			}
			if cmd.Flags().Changed("work-end") {
				profile.WorkEndHour = workEnd
			}
			if cmd.Flags().Changed("event-min") {
				profile.DefaultEventMin = eventMin
			}
			if cmd.Flags().Changed("suggestions") {
				profile.MaxSuggestions = suggestions
			}
			if cmd.Flags().Changed("travel-check") {
				profile.TravelCheckEnabled = travel
			}

			if err := app.Profile.Save(ctx, profile); err != nil {
				return err
			}
			fmt.Print(formatter.FormatProfile(profile))
			return nil
		},
	}

	cmd.Flags().StringVar(&timezone, "timezone", "", "IANA timezone, e.g. Europe/Berlin")
	cmd.Flags().StringVar(&home, "home", "", "Home location for travel checks")
	cmd.Flags().IntVar(&workStart, "work-start", 9, "Working hours start (24h)")
	cmd.Flags().IntVar(&workEnd, "work-end", 18, "Working hours end (24h)")
	cmd.Flags().IntVar(&eventMin, "event-min", 60, "Default event duration in minutes")
	cmd.Flags().IntVar(&suggestions, "suggestions", 3, "Alternatives offered on conflict")
	cmd.Flags().BoolVar(&travel, "travel-check", true, "Enable travel-time checks")

	return cmd
}
