package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/clavrhq/clavr/internal/contract"
	"github.com/clavrhq/clavr/internal/repository"
)

type agendaService struct {
	events   EventSource
	profiles repository.UserProfileRepo
	observer UseCaseObserver
}

func NewAgendaService(
	events EventSource,
	profiles repository.UserProfileRepo,
	observers ...UseCaseObserver,
) AgendaService {
	return &agendaService{
		events:   events,
		profiles: profiles,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *agendaService) Agenda(ctx context.Context, req contract.AgendaRequest) (resp *contract.AgendaResponse, err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "agenda",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
		})
	}()

	profile, err := loadProfile(ctx, s.profiles)
	if err != nil {
		return nil, err
	}
	loc := profileLocation(profile)

	day := req.Day
	if day.IsZero() {
		day = time.Now()
	}
	days := req.Days
	if days <= 0 {
		days = 1
	}

	rangeStart := startOfDayIn(day, loc)
	rangeEnd := rangeStart.AddDate(0, 0, days)

	events, err := s.events.ListEvents(ctx, rangeStart, rangeEnd)
	if err != nil {
		return nil, fmt.Errorf("listing calendar events: %w: %v", ErrUpstreamUnavailable, err)
	}

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Start.Before(events[j].Start)
	})

	return &contract.AgendaResponse{
		RangeStart: rangeStart,
		RangeEnd:   rangeEnd,
		Events:     events,
	}, nil
}
