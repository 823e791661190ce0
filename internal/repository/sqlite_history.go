package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/clavrhq/clavr/internal/db"
	"github.com/clavrhq/clavr/internal/domain"
)

// SQLiteHistoryRepo implements HistoryRepo using a SQLite database.
type SQLiteHistoryRepo struct {
	db db.DBTX
}

// NewSQLiteHistoryRepo creates a new SQLiteHistoryRepo.
func NewSQLiteHistoryRepo(conn db.DBTX) *SQLiteHistoryRepo {
	return &SQLiteHistoryRepo{db: conn}
}

func (r *SQLiteHistoryRepo) Insert(ctx context.Context, log *domain.ExchangeLog) error {
	createdAt := log.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	query := `INSERT INTO exchange_log (id, created_at, query, intent, reply)
		VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		log.ID,
		createdAt.UTC().Format(time.RFC3339),
		log.Query,
		log.Intent,
		log.Reply,
	)
	if err != nil {
		return fmt.Errorf("inserting exchange log: %w", err)
	}
	return nil
}

func (r *SQLiteHistoryRepo) ListRecent(ctx context.Context, limit int) ([]*domain.ExchangeLog, error) {
	if limit <= 0 {
		limit = 20
	}
	query := `SELECT id, created_at, query, intent, reply
		FROM exchange_log ORDER BY created_at DESC, id DESC LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("listing exchange logs: %w", err)
	}
	defer rows.Close()

	var logs []*domain.ExchangeLog
	for rows.Next() {
		var l domain.ExchangeLog
		var createdAt string
		if err := rows.Scan(&l.ID, &createdAt, &l.Query, &l.Intent, &l.Reply); err != nil {
			return nil, fmt.Errorf("scanning exchange log: %w", err)
		}
		t, err := time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parsing exchange log timestamp: %w", err)
		}
		l.CreatedAt = t
		logs = append(logs, &l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating exchange logs: %w", err)
	}
	return logs, nil
}
