package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mlovre/kanbo/kanbo-backend/internal/domain"
)

// CommentRepository implements domain.CommentRepository using PostgreSQL
type CommentRepository struct {
	pool *pgxpool.Pool
}

// NewCommentRepository creates a new CommentRepository
func NewCommentRepository(pool *pgxpool.Pool) *CommentRepository {
	return &CommentRepository{pool: pool}
}

// Create inserts a new comment
func (r *CommentRepository) Create(ctx context.Context, c *domain.Comment) error {
	_, err := r.pool.Exec(ctx,
		`insert into comments (id, body, card_id, author_id, created_at, updated_at)
		 values ($1, $2, $3, $4, $5, $6)`,
		c.ID, c.Text, c.CardID, c.AuthorID, c.CreatedAt, c.UpdatedAt)
	return err
}

// ListByCard retrieves a card's comments oldest first
func (r *CommentRepository) ListByCard(ctx context.Context, cardID string) ([]*domain.Comment, error) {
	rows, err := r.pool.Query(ctx,
		`select id, body, card_id, author_id, created_at, updated_at
		 from comments where card_id = $1 order by created_at`, cardID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*domain.Comment
	for rows.Next() {
		var c domain.Comment
		if err := rows.Scan(&c.ID, &c.Text, &c.CardID, &c.AuthorID, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, &c)
	}
	return out, rows.Err()
}
