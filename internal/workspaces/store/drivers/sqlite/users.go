package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/zunohq/zuno/internal/workspaces/domain"
)

type usersRepo struct {
	db dbtx
}

const userColumns = `id, email, full_name, password_hash, is_verified, is_active,
	verification_token, verification_token_expires, created_at, updated_at`

func scanUser(row *sql.Row) (domain.User, error) {
	var u domain.User
	var token sql.NullString
	var tokenExpires sql.NullTime
	err := row.Scan(
		&u.ID, &u.Email, &u.FullName, &u.PasswordHash, &u.IsVerified, &u.IsActive,
		&token, &tokenExpires, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	u.VerificationToken = mapNullStringPtr(token)
	u.VerificationTokenExpires = mapNullTimePtr(tokenExpires)
	return u, nil
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	return scanUser(r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ?`, id))
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	return scanUser(r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = ?`, email))
}

func (r *usersRepo) GetVerifiedUserByEmail(ctx context.Context, email string) (domain.User, error) {
	return scanUser(r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = ? AND is_verified = TRUE`, email))
}

func (r *usersRepo) GetUserByVerificationToken(ctx context.Context, token string, now time.Time) (domain.User, error) {
	return scanUser(r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users
		 WHERE verification_token = ? AND verification_token_expires > ?`,
		token, now))
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users (id, email, full_name, password_hash, is_verified, is_active,
			verification_token, verification_token_expires, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		u.ID, u.Email, u.FullName, u.PasswordHash, u.IsVerified, u.IsActive,
		mapOptionalString(u.VerificationToken), mapOptionalTime(u.VerificationTokenExpires),
		now, now,
	)
	return mapConflict(err)
}

func (r *usersRepo) MarkUserVerified(ctx context.Context, userID string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users
		 SET is_verified = TRUE,
		     verification_token = NULL,
		     verification_token_expires = NULL,
		     updated_at = ?
		 WHERE id = ?`,
		time.Now().UTC(), userID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *usersRepo) SetVerificationToken(ctx context.Context, userID, token string, expires time.Time) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users
		 SET verification_token = ?,
		     verification_token_expires = ?,
		     updated_at = ?
		 WHERE id = ? AND is_verified = FALSE`,
		token, expires, time.Now().UTC(), userID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *usersRepo) ClaimUnverifiedUser(ctx context.Context, userID, fullName, passwordHash string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users
		 SET full_name = ?,
		     password_hash = ?,
		     is_verified = TRUE,
		     verification_token = NULL,
		     verification_token_expires = NULL,
		     updated_at = ?
		 WHERE id = ? AND is_verified = FALSE`,
		fullName, passwordHash, time.Now().UTC(), userID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *usersRepo) ClearExpiredVerificationTokens(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users
		 SET verification_token = NULL,
		     verification_token_expires = NULL,
		     updated_at = ?
		 WHERE verification_token IS NOT NULL AND verification_token_expires <= ?`,
		now, now)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
