package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mlovre/kanbo/kanbo-backend/internal/domain"
)

// ListRepository implements domain.ListRepository using PostgreSQL
type ListRepository struct {
	pool *pgxpool.Pool
}

// NewListRepository creates a new ListRepository
func NewListRepository(pool *pgxpool.Pool) *ListRepository {
	return &ListRepository{pool: pool}
}

const listColumns = `id, title, board_id, position, created_at, updated_at`

// Create inserts a new list
func (r *ListRepository) Create(ctx context.Context, l *domain.List) error {
	_, err := r.pool.Exec(ctx,
		`insert into lists (`+listColumns+`) values ($1, $2, $3, $4, $5, $6)`,
		l.ID, l.Title, l.BoardID, l.Position, l.CreatedAt, l.UpdatedAt)
	return err
}

// GetByID retrieves a list by id
func (r *ListRepository) GetByID(ctx context.Context, id string) (*domain.List, error) {
	var l domain.List
	err := r.pool.QueryRow(ctx, `select `+listColumns+` from lists where id = $1`, id).
		Scan(&l.ID, &l.Title, &l.BoardID, &l.Position, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrListNotFound
		}
		return nil, err
	}
	return &l, nil
}

// ListByBoard retrieves a board's lists in ascending position order
func (r *ListRepository) ListByBoard(ctx context.Context, boardID string) ([]*domain.List, error) {
	rows, err := r.pool.Query(ctx,
		`select `+listColumns+` from lists where board_id = $1 order by position`, boardID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*domain.List
	for rows.Next() {
		var l domain.List
		if err := rows.Scan(&l.ID, &l.Title, &l.BoardID, &l.Position, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, &l)
	}
	return out, rows.Err()
}

// MaxPositionInBoard returns the highest list position on a board, or nil
// when the board has no lists.
func (r *ListRepository) MaxPositionInBoard(ctx context.Context, boardID string) (*float64, error) {
	var max *float64
	err := r.pool.QueryRow(ctx,
		`select max(position) from lists where board_id = $1`, boardID).Scan(&max)
	if err != nil {
		return nil, err
	}
	return max, nil
}
