package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/zunohq/zuno/internal/workspaces/domain"
)

type invitesRepo struct {
	db dbtx
}

const inviteColumns = `id, workspace_id, invited_by, email, role, token, status,
	invited_to_workspace_name, expires_at, accepted_at, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanInvite(row rowScanner) (domain.Invite, error) {
	var inv domain.Invite
	var invitedBy sql.NullString
	var acceptedAt sql.NullTime
	err := row.Scan(
		&inv.ID, &inv.WorkspaceID, &invitedBy, &inv.Email, &inv.Role, &inv.Token,
		&inv.Status, &inv.InvitedToWorkspaceName, &inv.ExpiresAt, &acceptedAt,
		&inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		return domain.Invite{}, mapNotFound(err)
	}
	if invitedBy.Valid {
		inv.InvitedBy = invitedBy.String
	}
	inv.AcceptedAt = mapNullTimePtr(acceptedAt)
	return inv, nil
}

func (r *invitesRepo) CreateInvite(ctx context.Context, inv domain.Invite) error {
	now := time.Now().UTC()
	var invitedBy sql.NullString
	if inv.InvitedBy != "" {
		invitedBy = sql.NullString{String: inv.InvitedBy, Valid: true}
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO invites (id, workspace_id, invited_by, email, role, token, status,
			invited_to_workspace_name, expires_at, accepted_at, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		inv.ID, inv.WorkspaceID, invitedBy, inv.Email, inv.Role, inv.Token, inv.Status,
		inv.InvitedToWorkspaceName, inv.ExpiresAt, mapOptionalTime(inv.AcceptedAt),
		now, now,
	)
	return mapConflict(err)
}

func (r *invitesRepo) GetPendingInviteByToken(ctx context.Context, token string) (domain.Invite, error) {
	return scanInvite(r.db.QueryRowContext(ctx,
		`SELECT `+inviteColumns+` FROM invites
		 WHERE token = ? AND status = 'pending'`, token))
}

func (r *invitesRepo) GetPendingInviteForEmail(ctx context.Context, workspaceID, email string, now time.Time) (domain.Invite, error) {
	return scanInvite(r.db.QueryRowContext(ctx,
		`SELECT `+inviteColumns+` FROM invites
		 WHERE workspace_id = ? AND email = ? AND status = 'pending' AND expires_at > ?`,
		workspaceID, email, now))
}

func (r *invitesRepo) CountPendingInvites(ctx context.Context, workspaceID string, now time.Time) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM invites
		 WHERE workspace_id = ? AND status = 'pending' AND expires_at > ?`,
		workspaceID, now).Scan(&n)
	return n, err
}

func (r *invitesRepo) MarkInviteExpired(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE invites SET status = 'expired', updated_at = ?
		 WHERE id = ? AND status = 'pending'`,
		time.Now().UTC(), id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *invitesRepo) MarkInviteAccepted(ctx context.Context, id string, at time.Time) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE invites SET status = 'accepted', accepted_at = ?, updated_at = ?
		 WHERE id = ? AND status = 'pending'`,
		at, at, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *invitesRepo) MarkInviteDeclined(ctx context.Context, token, email string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE invites SET status = 'declined', updated_at = ?
		 WHERE token = ? AND email = ? AND status = 'pending'`,
		time.Now().UTC(), token, email)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *invitesRepo) RefreshInvite(ctx context.Context, id string, role domain.Role, invitedBy string, expiresAt time.Time) error {
	var inviter sql.NullString
	if invitedBy != "" {
		inviter = sql.NullString{String: invitedBy, Valid: true}
	}
	res, err := r.db.ExecContext(ctx,
		`UPDATE invites SET role = ?, invited_by = ?, expires_at = ?, updated_at = ?
		 WHERE id = ? AND status = 'pending'`,
		role, inviter, expiresAt, time.Now().UTC(), id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *invitesRepo) ListPendingByEmail(ctx context.Context, email string, now time.Time) ([]domain.Invite, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+inviteColumns+` FROM invites
		 WHERE email = ? AND status = 'pending' AND expires_at > ?
		 ORDER BY created_at DESC`,
		email, now)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectInvites(rows)
}

func (r *invitesRepo) ListByWorkspace(ctx context.Context, workspaceID string) ([]domain.Invite, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+inviteColumns+` FROM invites
		 WHERE workspace_id = ?
		 ORDER BY created_at DESC`,
		workspaceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectInvites(rows)
}

func (r *invitesRepo) MarkExpiredInvites(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE invites SET status = 'expired', updated_at = ?
		 WHERE status = 'pending' AND expires_at <= ?`,
		now, now)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func collectInvites(rows *sql.Rows) ([]domain.Invite, error) {
	var out []domain.Invite
	for rows.Next() {
		inv, err := scanInvite(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, inv)
	}
	return out, rows.Err()
}
