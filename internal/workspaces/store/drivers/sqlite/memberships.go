package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/zunohq/zuno/internal/workspaces/domain"
	"github.com/zunohq/zuno/internal/workspaces/store"
)

type membershipsRepo struct {
	db dbtx
}

const membershipColumns = `id, workspace_id, user_id, role, is_active, joined_at, updated_at`

func scanMembership(row *sql.Row) (domain.Membership, error) {
	var m domain.Membership
	err := row.Scan(
		&m.ID, &m.WorkspaceID, &m.UserID, &m.Role, &m.IsActive,
		&m.JoinedAt, &m.UpdatedAt,
	)
	if err != nil {
		return domain.Membership{}, mapNotFound(err)
	}
	return m, nil
}

func (r *membershipsRepo) CreateMembership(ctx context.Context, m domain.Membership) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO workspace_members (id, workspace_id, user_id, role, is_active, joined_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		m.ID, m.WorkspaceID, m.UserID, m.Role, m.IsActive, now, now,
	)
	return mapConflict(err)
}

func (r *membershipsRepo) GetMembership(ctx context.Context, workspaceID, userID string) (domain.Membership, error) {
	return scanMembership(r.db.QueryRowContext(ctx,
		`SELECT `+membershipColumns+` FROM workspace_members
		 WHERE workspace_id = ? AND user_id = ?`,
		workspaceID, userID))
}

func (r *membershipsRepo) CountActiveMembers(ctx context.Context, workspaceID string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM workspace_members
		 WHERE workspace_id = ? AND is_active = TRUE`, workspaceID).Scan(&n)
	return n, err
}

func (r *membershipsRepo) ReactivateMembership(ctx context.Context, id string, role domain.Role) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE workspace_members
		 SET is_active = TRUE, role = ?, updated_at = ?
		 WHERE id = ?`,
		role, time.Now().UTC(), id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *membershipsRepo) ListActiveMembers(ctx context.Context, workspaceID string) ([]store.MemberDetail, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT m.id, m.workspace_id, m.user_id, m.role, m.is_active, m.joined_at, m.updated_at,
		        u.id, u.email, u.full_name, u.password_hash, u.is_verified, u.is_active,
		        u.verification_token, u.verification_token_expires, u.created_at, u.updated_at
		 FROM workspace_members m
		 JOIN users u ON u.id = m.user_id
		 WHERE m.workspace_id = ? AND m.is_active = TRUE
		 ORDER BY m.role DESC, u.full_name ASC`,
		workspaceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []store.MemberDetail
	for rows.Next() {
		var d store.MemberDetail
		var token sql.NullString
		var tokenExpires sql.NullTime
		if err := rows.Scan(
			&d.Membership.ID, &d.Membership.WorkspaceID, &d.Membership.UserID,
			&d.Membership.Role, &d.Membership.IsActive, &d.Membership.JoinedAt,
			&d.Membership.UpdatedAt,
			&d.User.ID, &d.User.Email, &d.User.FullName, &d.User.PasswordHash,
			&d.User.IsVerified, &d.User.IsActive, &token, &tokenExpires,
			&d.User.CreatedAt, &d.User.UpdatedAt,
		); err != nil {
			return nil, err
		}
		d.User.VerificationToken = mapNullStringPtr(token)
		d.User.VerificationTokenExpires = mapNullTimePtr(tokenExpires)
		out = append(out, d)
	}
	return out, rows.Err()
}
