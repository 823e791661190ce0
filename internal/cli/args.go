package cli

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// appLocation resolves the profile timezone for parsing user-supplied
// times, defaulting to UTC when the profile is unreadable.
func appLocation(ctx context.Context, app *App) *time.Location {
	profile, err := app.Profile.Get(ctx)
	if err != nil {
		return time.UTC
	}
	loc, err := time.LoadLocation(profile.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// whenLayouts are the accepted forms for --at style flags, tried in order.
var whenLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04",
	"2006-01-02T15:04",
	"2006-01-02",
}

// parseWhen parses a user-supplied point in time. "today 15:04" and
// "tomorrow 15:04" are resolved against now in loc; everything else goes
// through the fixed layouts.
func parseWhen(input string, now time.Time, loc *time.Location) (time.Time, error) {
	input = strings.TrimSpace(input)
	lower := strings.ToLower(input)

	for _, prefix := range []string{"today", "tomorrow"} {
		if lower == prefix || strings.HasPrefix(lower, prefix+" ") {
			day := now.In(loc)
			if prefix == "tomorrow" {
				day = day.AddDate(0, 0, 1)
			}
			rest := strings.TrimSpace(input[len(prefix):])
			if rest == "" {
				return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, loc), nil
			}
			clock, err := time.Parse("15:04", rest)
			if err != nil {
				return time.Time{}, fmt.Errorf("invalid time %q, expected HH:MM", rest)
			}
			return time.Date(day.Year(), day.Month(), day.Day(),
				clock.Hour(), clock.Minute(), 0, 0, loc), nil
		}
	}

	for _, layout := range whenLayouts {
		if t, err := time.ParseInLocation(layout, input, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized time %q, use YYYY-MM-DD HH:MM", input)
}
