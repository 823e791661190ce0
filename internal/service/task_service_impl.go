package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/clavrhq/clavr/internal/domain"
)

type taskService struct {
	tasks    TaskSource
	observer UseCaseObserver
}

func NewTaskService(tasks TaskSource, observers ...UseCaseObserver) TaskService {
	return &taskService{
		tasks:    tasks,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *taskService) List(ctx context.Context, includeCompleted bool) ([]domain.TaskItem, error) {
	items, err := s.tasks.ListTasks(ctx, includeCompleted)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w: %v", ErrUpstreamUnavailable, err)
	}
	// Due tasks first, soonest deadline on top; undated tasks keep their
	// provider order at the end.
	sort.SliceStable(items, func(i, j int) bool {
		di, dj := items[i].Due, items[j].Due
		if (di == nil) != (dj == nil) {
			return di != nil
		}
		if di != nil && dj != nil && !di.Equal(*dj) {
			return di.Before(*dj)
		}
		return false
	})
	return items, nil
}

func (s *taskService) Add(ctx context.Context, title, notes string, due *time.Time) (id string, err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "task-add",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    map[string]any{"title": title},
		})
	}()

	if title == "" {
		return "", fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	id, err = s.tasks.AddTask(ctx, domain.TaskItem{
		Title:  title,
		Notes:  notes,
		Due:    due,
		Status: domain.TaskNeedsAction,
	})
	if err != nil {
		return "", fmt.Errorf("adding task: %w: %v", ErrUpstreamUnavailable, err)
	}
	return id, nil
}

func (s *taskService) Complete(ctx context.Context, taskID string) error {
	if taskID == "" {
		return fmt.Errorf("%w: task id is required", ErrInvalidInput)
	}
	if err := s.tasks.CompleteTask(ctx, taskID); err != nil {
		return fmt.Errorf("completing task: %w: %v", ErrUpstreamUnavailable, err)
	}
	return nil
}
