package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/zunohq/zuno/internal/workspaces/domain"
)

type workspacesRepo struct {
	db dbtx
}

const workspaceColumns = `id, name, slug, description, owner_id, is_active, created_at, updated_at`

func scanWorkspace(row *sql.Row) (domain.Workspace, error) {
	var w domain.Workspace
	err := row.Scan(
		&w.ID, &w.Name, &w.Slug, &w.Description, &w.OwnerID, &w.IsActive,
		&w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		return domain.Workspace{}, mapNotFound(err)
	}
	return w, nil
}

func (r *workspacesRepo) CreateWorkspace(ctx context.Context, w domain.Workspace) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO workspaces (id, name, slug, description, owner_id, is_active, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		w.ID, w.Name, w.Slug, w.Description, w.OwnerID, w.IsActive, now, now,
	)
	return mapConflict(err)
}

func (r *workspacesRepo) GetWorkspaceByID(ctx context.Context, id string) (domain.Workspace, error) {
	return scanWorkspace(r.db.QueryRowContext(ctx,
		`SELECT `+workspaceColumns+` FROM workspaces WHERE id = ?`, id))
}

func (r *workspacesRepo) GetActiveWorkspaceByID(ctx context.Context, id string) (domain.Workspace, error) {
	return scanWorkspace(r.db.QueryRowContext(ctx,
		`SELECT `+workspaceColumns+` FROM workspaces WHERE id = ? AND is_active = TRUE`, id))
}

func (r *workspacesRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM workspaces WHERE slug = ?`, slug).Scan(&n)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *workspacesRepo) CountByOwner(ctx context.Context, ownerID string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM workspaces WHERE owner_id = ?`, ownerID).Scan(&n)
	return n, err
}

func (r *workspacesRepo) ListByOwner(ctx context.Context, ownerID string) ([]domain.Workspace, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+workspaceColumns+` FROM workspaces
		 WHERE owner_id = ? ORDER BY created_at DESC, id DESC`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Workspace
	for rows.Next() {
		var w domain.Workspace
		if err := rows.Scan(
			&w.ID, &w.Name, &w.Slug, &w.Description, &w.OwnerID, &w.IsActive,
			&w.CreatedAt, &w.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, rows.Err()
}

func (r *workspacesRepo) GetDefaultByOwner(ctx context.Context, ownerID string) (domain.Workspace, error) {
	return scanWorkspace(r.db.QueryRowContext(ctx,
		`SELECT `+workspaceColumns+` FROM workspaces
		 WHERE owner_id = ? ORDER BY created_at ASC, id ASC LIMIT 1`, ownerID))
}
