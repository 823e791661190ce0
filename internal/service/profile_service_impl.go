package service

import (
	"context"
	"fmt"
	"time"

	"github.com/clavrhq/clavr/internal/domain"
	"github.com/clavrhq/clavr/internal/repository"
)

type profileService struct {
	profiles repository.UserProfileRepo
}

func NewProfileService(profiles repository.UserProfileRepo) ProfileService {
	return &profileService{profiles: profiles}
}

func (s *profileService) Get(ctx context.Context) (*domain.UserProfile, error) {
	return loadProfile(ctx, s.profiles)
}

func (s *profileService) Save(ctx context.Context, p *domain.UserProfile) error {
	if p.ID == "" {
		p.ID = "default"
	}
	if p.WorkStartHour < 0 || p.WorkEndHour > 24 || p.WorkStartHour >= p.WorkEndHour {
		return fmt.Errorf("%w: working hours %d-%d", ErrInvalidInput, p.WorkStartHour, p.WorkEndHour)
	}
	if p.Timezone != "" {
		if _, err := time.LoadLocation(p.Timezone); err != nil {
			return fmt.Errorf("%w: unknown timezone %q", ErrInvalidInput, p.Timezone)
		}
	}
	if p.DefaultEventMin <= 0 {
		p.DefaultEventMin = 60
	}
	if p.MaxSuggestions <= 0 {
		p.MaxSuggestions = 3
	}
	if err := s.profiles.Upsert(ctx, p); err != nil {
		return fmt.Errorf("saving profile: %w", err)
	}
	return nil
}
