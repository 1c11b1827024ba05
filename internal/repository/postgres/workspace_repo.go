package postgres

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mlovre/kanbo/kanbo-backend/internal/domain"
)

// WorkspaceRepository implements domain.WorkspaceRepository using PostgreSQL
type WorkspaceRepository struct {
	pool *pgxpool.Pool
}

// NewWorkspaceRepository creates a new WorkspaceRepository
func NewWorkspaceRepository(pool *pgxpool.Pool) *WorkspaceRepository {
	return &WorkspaceRepository{pool: pool}
}

// Create inserts a new workspace
func (r *WorkspaceRepository) Create(ctx context.Context, w *domain.Workspace) error {
	members, err := json.Marshal(w.Members)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx,
		`insert into workspaces (id, name, description, owner_id, members, created_at, updated_at)
		 values ($1, $2, $3, $4, $5, $6, $7)`,
		w.ID, w.Name, w.Description, w.OwnerID, members, w.CreatedAt, w.UpdatedAt)
	return err
}

// ListForMember retrieves all workspaces the user is a member of
func (r *WorkspaceRepository) ListForMember(ctx context.Context, userID string) ([]*domain.Workspace, error) {
	rows, err := r.pool.Query(ctx,
		`select id, name, description, owner_id, members, created_at, updated_at
		 from workspaces where members @> $1 order by created_at`,
		memberMatch(userID))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*domain.Workspace
	for rows.Next() {
		var w domain.Workspace
		var members []byte
		if err := rows.Scan(&w.ID, &w.Name, &w.Description, &w.OwnerID, &members, &w.CreatedAt, &w.UpdatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(members, &w.Members); err != nil {
			return nil, err
		}
		out = append(out, &w)
	}
	return out, rows.Err()
}

// memberMatch builds the jsonb containment document that matches a member
// set containing the given user id, regardless of role.
func memberMatch(userID string) []byte {
	doc, _ := json.Marshal([]map[string]string{{"user_id": userID}})
	return doc
}
