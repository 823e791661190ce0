package service

import (
	"context"
	"time"

	"github.com/clavrhq/clavr/internal/contract"
	"github.com/clavrhq/clavr/internal/domain"
)

// EventSource reads and writes calendar events for a time window.
// The Google Calendar client implements it; tests use in-memory fakes.
type EventSource interface {
	ListEvents(ctx context.Context, rangeStart, rangeEnd time.Time) ([]domain.CalendarEvent, error)
	InsertEvent(ctx context.Context, ev domain.CalendarEvent) (string, error)
	UpdateEvent(ctx context.Context, ev domain.CalendarEvent) error
	DeleteEvent(ctx context.Context, eventID string) error
}

// TaskSource reads and writes to-do items.
type TaskSource interface {
	ListTasks(ctx context.Context, includeCompleted bool) ([]domain.TaskItem, error)
	AddTask(ctx context.Context, task domain.TaskItem) (string, error)
	CompleteTask(ctx context.Context, taskID string) error
}

// MailSource reads mailbox state.
type MailSource interface {
	Search(ctx context.Context, query string, maxResults int) ([]domain.EmailMessage, error)
	UnreadCount(ctx context.Context) (int, error)
}

type SchedulerService interface {
	CheckConflict(ctx context.Context, req contract.ConflictCheckRequest) (*contract.ConflictResult, error)
	FindFreeSlots(ctx context.Context, req contract.FreeSlotsRequest) (*contract.FreeSlotsResponse, error)
	Book(ctx context.Context, req contract.ConflictCheckRequest) (string, error)
	Reschedule(ctx context.Context, ev domain.CalendarEvent) error
	Cancel(ctx context.Context, eventID string) error
}

type AgendaService interface {
	Agenda(ctx context.Context, req contract.AgendaRequest) (*contract.AgendaResponse, error)
}

type TaskService interface {
	List(ctx context.Context, includeCompleted bool) ([]domain.TaskItem, error)
	Add(ctx context.Context, title, notes string, due *time.Time) (string, error)
	Complete(ctx context.Context, taskID string) error
}

type EmailService interface {
	Summary(ctx context.Context, req contract.EmailSummaryRequest) (*contract.EmailSummaryResponse, error)
	Search(ctx context.Context, query string, maxResults int) ([]domain.EmailMessage, error)
}

type ProfileService interface {
	Get(ctx context.Context) (*domain.UserProfile, error)
	Save(ctx context.Context, p *domain.UserProfile) error
}

type HistoryService interface {
	Record(ctx context.Context, query, intent, reply string) error
	Recent(ctx context.Context, limit int) ([]*domain.ExchangeLog, error)
}
