package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/clavrhq/clavr/internal/db"
	"github.com/clavrhq/clavr/internal/domain"
)

// SQLiteUserProfileRepo implements UserProfileRepo using a SQLite database.
type SQLiteUserProfileRepo struct {
	db db.DBTX
}

// NewSQLiteUserProfileRepo creates a new SQLiteUserProfileRepo.
func NewSQLiteUserProfileRepo(conn db.DBTX) *SQLiteUserProfileRepo {
	return &SQLiteUserProfileRepo{db: conn}
}

func (r *SQLiteUserProfileRepo) Get(ctx context.Context) (*domain.UserProfile, error) {
	query := `SELECT id, timezone, work_start_hour, work_end_hour, home_location,
		default_event_min, max_suggestions, travel_check_enabled
		FROM user_profile WHERE id = 'default'`
	row := r.db.QueryRowContext(ctx, query)

	var p domain.UserProfile
	var travelEnabled int
	err := row.Scan(
		&p.ID,
		&p.Timezone,
		&p.WorkStartHour,
		&p.WorkEndHour,
		&p.HomeLocation,
		&p.DefaultEventMin,
		&p.MaxSuggestions,
		&travelEnabled,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("user profile: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning user profile: %w", err)
	}
	p.TravelCheckEnabled = intToBool(travelEnabled)
	return &p, nil
}

func (r *SQLiteUserProfileRepo) Upsert(ctx context.Context, p *domain.UserProfile) error {
	query := `INSERT OR REPLACE INTO user_profile (id, timezone, work_start_hour,
		work_end_hour, home_location, default_event_min, max_suggestions, travel_check_enabled)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		p.Timezone,
		p.WorkStartHour,
		p.WorkEndHour,
		p.HomeLocation,
		p.DefaultEventMin,
		p.MaxSuggestions,
		boolToInt(p.TravelCheckEnabled),
	)
	if err != nil {
		return fmt.Errorf("upserting user profile: %w", err)
	}
	return nil
}
