package repository

import (
	"context"

	"github.com/clavrhq/clavr/internal/domain"
)

type UserProfileRepo interface {
	Get(ctx context.Context) (*domain.UserProfile, error)
	Upsert(ctx context.Context, p *domain.UserProfile) error
}

type HistoryRepo interface {
	Insert(ctx context.Context, log *domain.ExchangeLog) error
	ListRecent(ctx context.Context, limit int) ([]*domain.ExchangeLog, error)
}
