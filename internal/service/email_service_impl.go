package service

import (
	"context"
	"fmt"
	"time"

	"github.com/clavrhq/clavr/internal/contract"
	"github.com/clavrhq/clavr/internal/domain"
	"github.com/clavrhq/clavr/internal/intelligence"
)

type emailService struct {
	mail       MailSource
	summarizer intelligence.SummarizeService
	observer   UseCaseObserver
}

func NewEmailService(
	mail MailSource,
	summarizer intelligence.SummarizeService,
	observers ...UseCaseObserver,
) EmailService {
	return &emailService{
		mail:       mail,
		summarizer: summarizer,
		observer:   useCaseObserverOrNoop(observers),
	}
}

func (s *emailService) Summary(ctx context.Context, req contract.EmailSummaryRequest) (resp *contract.EmailSummaryResponse, err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "email-summary",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
		})
	}()

	query := req.Query
	if query == "" {
		query = "in:inbox"
	}
	maxResults := req.MaxResults
	if maxResults <= 0 {
		maxResults = 10
	}

	messages, err := s.mail.Search(ctx, query, maxResults)
	if err != nil {
		return nil, fmt.Errorf("searching mail: %w: %v", ErrUpstreamUnavailable, err)
	}
	unread, err := s.mail.UnreadCount(ctx)
	if err != nil {
		return nil, fmt.Errorf("counting unread mail: %w: %v", ErrUpstreamUnavailable, err)
	}

	return &contract.EmailSummaryResponse{
		Messages:    messages,
		UnreadCount: unread,
		Summary:     s.summarizer.SummarizeEmail(ctx, messages, unread),
	}, nil
}

func (s *emailService) Search(ctx context.Context, query string, maxResults int) ([]domain.EmailMessage, error) {
	if query == "" {
		return nil, fmt.Errorf("%w: query is required", ErrInvalidInput)
	}
	if maxResults <= 0 {
		maxResults = 10
	}
	messages, err := s.mail.Search(ctx, query, maxResults)
	if err != nil {
		return nil, fmt.Errorf("searching mail: %w: %v", ErrUpstreamUnavailable, err)
	}
	return messages, nil
}
