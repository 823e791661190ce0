package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/clavrhq/clavr/internal/calendar"
	"github.com/clavrhq/clavr/internal/domain"
	"github.com/clavrhq/clavr/internal/repository"
)

// loadProfile returns the stored profile, falling back to defaults when
// the row is missing or no repo is wired. Any other repo error surfaces.
func loadProfile(ctx context.Context, profiles repository.UserProfileRepo) (*domain.UserProfile, error) {
	if profiles == nil {
		return domain.DefaultUserProfile(), nil
	}
	p, err := profiles.Get(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.DefaultUserProfile(), nil
		}
		return nil, fmt.Errorf("loading user profile: %w", err)
	}
	return p, nil
}

// profileLocation resolves the profile's IANA timezone, defaulting to UTC
// when the name is empty or unknown.
func profileLocation(p *domain.UserProfile) *time.Location {
	if p.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(p.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// profileHours maps the profile's working window onto the slot engine.
func profileHours(p *domain.UserProfile) calendar.WorkingHours {
	hours := calendar.DefaultWorkingHours()
	if p.WorkStartHour > 0 || p.WorkEndHour > 0 {
		hours = calendar.WorkingHours{StartHour: p.WorkStartHour, EndHour: p.WorkEndHour}
	}
	return hours
}

func startOfDayIn(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}
