package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mlovre/kanbo/kanbo-backend/internal/domain"
)

// CardRepository implements domain.CardRepository using PostgreSQL
type CardRepository struct {
	pool *pgxpool.Pool
}

// NewCardRepository creates a new CardRepository
func NewCardRepository(pool *pgxpool.Pool) *CardRepository {
	return &CardRepository{pool: pool}
}

const cardColumns = `id, title, description, list_id, position, labels, assignees, due_date, created_at, updated_at`

// Create inserts a new card
func (r *CardRepository) Create(ctx context.Context, c *domain.Card) error {
	_, err := r.pool.Exec(ctx,
		`insert into cards (`+cardColumns+`) values ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		c.ID, c.Title, c.Description, c.ListID, c.Position, c.Labels, c.Assignees, c.DueDate, c.CreatedAt, c.UpdatedAt)
	return err
}

// GetByID retrieves a card by id
func (r *CardRepository) GetByID(ctx context.Context, id string) (*domain.Card, error) {
	c, err := scanCard(r.pool.QueryRow(ctx, `select `+cardColumns+` from cards where id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCardNotFound
		}
		return nil, err
	}
	return c, nil
}

// ListByListIDs retrieves cards across lists in ascending position order
func (r *CardRepository) ListByListIDs(ctx context.Context, listIDs []string) ([]*domain.Card, error) {
	if len(listIDs) == 0 {
		return nil, nil
	}
	rows, err := r.pool.Query(ctx,
		`select `+cardColumns+` from cards where list_id = any($1) order by position`, listIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectCards(rows)
}

// MaxPositionInList returns the highest card position in a list, or nil
// when the list has no cards.
func (r *CardRepository) MaxPositionInList(ctx context.Context, listID string) (*float64, error) {
	var max *float64
	err := r.pool.QueryRow(ctx,
		`select max(position) from cards where list_id = $1`, listID).Scan(&max)
	if err != nil {
		return nil, err
	}
	return max, nil
}

// Update applies a partial patch: only non-nil patch fields change, other
// columns are left untouched. Returns the updated card.
func (r *CardRepository) Update(ctx context.Context, id string, patch domain.CardPatch) (*domain.Card, error) {
	sets := []string{"updated_at = now()"}
	args := []any{}
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if patch.Title != nil {
		sets = append(sets, "title = "+arg(*patch.Title))
	}
	if patch.Description != nil {
		sets = append(sets, "description = "+arg(*patch.Description))
	}
	if patch.ListID != nil {
		sets = append(sets, "list_id = "+arg(*patch.ListID))
	}
	if patch.Position != nil {
		sets = append(sets, "position = "+arg(*patch.Position))
	}
	if patch.Labels != nil {
		sets = append(sets, "labels = "+arg(*patch.Labels))
	}
	if patch.Assignees != nil {
		sets = append(sets, "assignees = "+arg(*patch.Assignees))
	}
	if patch.DueDate != nil {
		sets = append(sets, "due_date = "+arg(*patch.DueDate))
	}

	query := `update cards set ` + strings.Join(sets, ", ") +
		` where id = ` + arg(id) + ` returning ` + cardColumns
	c, err := scanCard(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCardNotFound
		}
		return nil, err
	}
	return c, nil
}

// Search retrieves cards matching the filter in ascending position order
func (r *CardRepository) Search(ctx context.Context, filter domain.CardFilter) ([]*domain.Card, error) {
	if len(filter.ListIDs) == 0 {
		return nil, nil
	}

	query := `select ` + cardColumns + ` from cards where list_id = any($1)`
	args := []any{filter.ListIDs}

	if filter.Text != "" {
		args = append(args, "%"+filter.Text+"%")
		query += fmt.Sprintf(` and (title ilike $%d or coalesce(description, '') ilike $%d)`, len(args), len(args))
	}
	if len(filter.Labels) > 0 {
		args = append(args, filter.Labels)
		query += fmt.Sprintf(` and labels && $%d`, len(args))
	}
	if len(filter.Assignees) > 0 {
		args = append(args, filter.Assignees)
		query += fmt.Sprintf(` and assignees && $%d`, len(args))
	}
	query += ` order by position`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectCards(rows)
}

func scanCard(row pgx.Row) (*domain.Card, error) {
	var c domain.Card
	if err := row.Scan(&c.ID, &c.Title, &c.Description, &c.ListID, &c.Position,
		&c.Labels, &c.Assignees, &c.DueDate, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

func collectCards(rows pgx.Rows) ([]*domain.Card, error) {
	var out []*domain.Card
	for rows.Next() {
		c, err := scanCard(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
