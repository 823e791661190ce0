package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/clavrhq/clavr/internal/domain"
	"github.com/clavrhq/clavr/internal/repository"
)

type historyService struct {
	logs repository.HistoryRepo
}

func NewHistoryService(logs repository.HistoryRepo) HistoryService {
	return &historyService{logs: logs}
}

func (s *historyService) Record(ctx context.Context, query, intent, reply string) error {
	if query == "" {
		return fmt.Errorf("%w: query is required", ErrInvalidInput)
	}
	err := s.logs.Insert(ctx, &domain.ExchangeLog{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		Query:     query,
		Intent:    intent,
		Reply:     reply,
	})
	if err != nil {
		return fmt.Errorf("recording exchange: %w", err)
	}
	return nil
}

func (s *historyService) Recent(ctx context.Context, limit int) ([]*domain.ExchangeLog, error) {
	return s.logs.ListRecent(ctx, limit)
}
