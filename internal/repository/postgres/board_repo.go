package postgres

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mlovre/kanbo/kanbo-backend/internal/domain"
)

// BoardRepository implements domain.BoardRepository using PostgreSQL
type BoardRepository struct {
	pool *pgxpool.Pool
}

// NewBoardRepository creates a new BoardRepository
func NewBoardRepository(pool *pgxpool.Pool) *BoardRepository {
	return &BoardRepository{pool: pool}
}

const boardColumns = `id, title, workspace_id, visibility, owner_id, members, created_at, updated_at`

// Create inserts a new board
func (r *BoardRepository) Create(ctx context.Context, b *domain.Board) error {
	members, err := json.Marshal(b.Members)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx,
		`insert into boards (`+boardColumns+`) values ($1, $2, $3, $4, $5, $6, $7, $8)`,
		b.ID, b.Title, b.WorkspaceID, b.Visibility, b.OwnerID, members, b.CreatedAt, b.UpdatedAt)
	return err
}

// GetForMember retrieves a board by id, scoped to the given member. A
// missing board and a non-member caller produce the same ErrBoardNotFound.
func (r *BoardRepository) GetForMember(ctx context.Context, id, userID string) (*domain.Board, error) {
	row := r.pool.QueryRow(ctx,
		`select `+boardColumns+` from boards where id = $1 and members @> $2`,
		id, memberMatch(userID))
	b, err := scanBoard(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrBoardNotFound
		}
		return nil, err
	}
	return b, nil
}

// ListForMember retrieves all boards the user is a member of
func (r *BoardRepository) ListForMember(ctx context.Context, userID string) ([]*domain.Board, error) {
	rows, err := r.pool.Query(ctx,
		`select `+boardColumns+` from boards where members @> $1 order by created_at`,
		memberMatch(userID))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*domain.Board
	for rows.Next() {
		b, err := scanBoard(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func scanBoard(row pgx.Row) (*domain.Board, error) {
	var b domain.Board
	var members []byte
	if err := row.Scan(&b.ID, &b.Title, &b.WorkspaceID, &b.Visibility, &b.OwnerID, &members, &b.CreatedAt, &b.UpdatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(members, &b.Members); err != nil {
		return nil, err
	}
	return &b, nil
}
