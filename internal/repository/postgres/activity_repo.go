package postgres

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mlovre/kanbo/kanbo-backend/internal/domain"
)

// ActivityRepository implements domain.ActivityRepository using PostgreSQL.
// Activity logs are append-only; there is no update or delete.
type ActivityRepository struct {
	pool *pgxpool.Pool
}

// NewActivityRepository creates a new ActivityRepository
func NewActivityRepository(pool *pgxpool.Pool) *ActivityRepository {
	return &ActivityRepository{pool: pool}
}

// Create inserts a new activity log entry
func (r *ActivityRepository) Create(ctx context.Context, a *domain.ActivityLog) error {
	details, err := json.Marshal(a.Details)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx,
		`insert into activity_logs (id, board_id, user_id, activity_type, details, created_at)
		 values ($1, $2, $3, $4, $5, $6)`,
		a.ID, a.BoardID, a.UserID, a.ActivityType, details, a.CreatedAt)
	return err
}

// ListByBoard retrieves the most recent activity entries for a board,
// newest first, capped at limit.
func (r *ActivityRepository) ListByBoard(ctx context.Context, boardID string, limit int) ([]*domain.ActivityLog, error) {
	rows, err := r.pool.Query(ctx,
		`select id, board_id, user_id, activity_type, details, created_at
		 from activity_logs where board_id = $1 order by created_at desc limit $2`,
		boardID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*domain.ActivityLog
	for rows.Next() {
		var a domain.ActivityLog
		var details []byte
		if err := rows.Scan(&a.ID, &a.BoardID, &a.UserID, &a.ActivityType, &details, &a.CreatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(details, &a.Details); err != nil {
			return nil, err
		}
		out = append(out, &a)
	}
	return out, rows.Err()
}
