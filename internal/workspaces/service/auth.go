package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/zunohq/zuno/internal/workspaces/domain"
	"github.com/zunohq/zuno/internal/workspaces/store"
	"github.com/zunohq/zuno/pkg/cryptox"
	"github.com/zunohq/zuno/pkg/idx"
	"github.com/zunohq/zuno/pkg/slogx"
)

// DefaultVerificationTTL is how long a registration's email verification
// token stays valid.
const DefaultVerificationTTL = 24 * time.Hour

// AuthService handles registration, email verification, and login.
type AuthService struct {
	Store           store.Store
	Mailer          Mailer
	Signer          TokenIssuer
	FrontendURL     string
	VerificationTTL time.Duration
}

func (s *AuthService) verificationTTL() time.Duration {
	if s.VerificationTTL > 0 {
		return s.VerificationTTL
	}
	return DefaultVerificationTTL
}

// Register creates an unverified user and emails them a verification link.
// The account cannot log in until the link is followed.
func (s *AuthService) Register(ctx context.Context, email, fullName, password string) (domain.User, error) {
	log := slogx.FromContext(ctx)
	email = strings.ToLower(strings.TrimSpace(email))

	// 1. Hash the password up front; no cleartext past this point.
	hash, err := cryptox.HashPassword(password)
	if err != nil {
		log.Error("failed to hash password", slog.Any("error", err))
		return domain.User{}, err
	}

	// 2. Mint the single-use verification token.
	token, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		return domain.User{}, err
	}
	expires := time.Now().UTC().Add(s.verificationTTL())

	user := domain.User{
		ID:                       idx.New().String(),
		Email:                    email,
		FullName:                 fullName,
		PasswordHash:             hash,
		IsVerified:               false,
		IsActive:                 true,
		VerificationToken:        &token,
		VerificationTokenExpires: &expires,
	}

	// 3. Insert; a duplicate email surfaces as a conflict.
	if err := s.Store.Users().CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, ErrEmailTaken
		}
		log.Error("failed to create user", slog.Any("error", err))
		return domain.User{}, err
	}

	log.Info("user registered", slog.String("user_id", user.ID))

	// 4. Send the verification email. Best effort: the account exists either
	// way and the token can be resent out of band.
	if s.Mailer != nil {
		link := s.FrontendURL + "/verify-email?token=" + token
		if err := s.Mailer.SendVerificationEmail(ctx, email, link, fullName); err != nil {
			log.Warn("failed to send verification email",
				slog.String("user_id", user.ID),
				slog.Any("error", err),
			)
		}
	}

	return user, nil
}

// VerifyEmail redeems a verification token. On success the user is marked
// verified and provisioned with their free subscription and personal
// workspace, all in one transaction.
func (s *AuthService) VerifyEmail(ctx context.Context, token string) (domain.User, domain.Workspace, error) {
	log := slogx.FromContext(ctx)

	user, err := s.Store.Users().GetUserByVerificationToken(ctx, token, time.Now().UTC())
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, domain.Workspace{}, ErrInvalidVerificationToken
		}
		return domain.User{}, domain.Workspace{}, err
	}

	var ws domain.Workspace
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		// 1. Flip the user to verified and burn the token.
		if err := tx.Users().MarkUserVerified(ctx, user.ID); err != nil {
			return err
		}

		// 2. Provision the free subscription.
		if _, err := ensureSubscription(ctx, tx, user.ID); err != nil {
			return err
		}

		// 3. Provision the personal workspace.
		var err error
		ws, err = createDefaultWorkspace(ctx, tx, user.ID, user.FullName)
		return err
	})
	if err != nil {
		log.Error("failed to provision verified user",
			slog.String("user_id", user.ID),
			slog.Any("error", err),
		)
		return domain.User{}, domain.Workspace{}, err
	}

	user.IsVerified = true
	user.VerificationToken = nil
	user.VerificationTokenExpires = nil

	log.Info("email verified",
		slog.String("user_id", user.ID),
		slog.String("workspace_id", ws.ID),
	)
	return user, ws, nil
}

// Login authenticates a verified user and returns them with a fresh access
// token. Unknown emails and wrong passwords both yield ErrInvalidCredentials
// so the response does not reveal which one it was.
func (s *AuthService) Login(ctx context.Context, email, password string) (domain.User, string, error) {
	log := slogx.FromContext(ctx)
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, "", ErrInvalidCredentials
		}
		return domain.User{}, "", err
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrPasswordMismatch) {
			return domain.User{}, "", ErrInvalidCredentials
		}
		log.Error("failed to verify password", slog.Any("error", err))
		return domain.User{}, "", err
	}

	if !user.IsVerified {
		return domain.User{}, "", ErrEmailNotVerified
	}
	if !user.IsActive {
		return domain.User{}, "", ErrInvalidCredentials
	}

	accessToken, err := s.Signer.Issue(user.Email, user.ID)
	if err != nil {
		log.Error("failed to issue access token", slog.Any("error", err))
		return domain.User{}, "", err
	}

	log.Info("user logged in", slog.String("user_id", user.ID))
	return user, accessToken, nil
}

// ResendVerification mints a fresh verification token for an unverified
// account and emails the link again. This is the recovery path once the
// original token has expired and been swept.
func (s *AuthService) ResendVerification(ctx context.Context, email string) (domain.User, error) {
	log := slogx.FromContext(ctx)
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrUserNotFound
		}
		return domain.User{}, err
	}
	if user.IsVerified {
		return domain.User{}, ErrEmailAlreadyVerified
	}

	token, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		return domain.User{}, err
	}
	expires := time.Now().UTC().Add(s.verificationTTL())

	// Guarded on the row still being unverified, so a verification that
	// lands between the read and the update wins.
	if err := s.Store.Users().SetVerificationToken(ctx, user.ID, token, expires); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrEmailAlreadyVerified
		}
		return domain.User{}, err
	}
	user.VerificationToken = &token
	user.VerificationTokenExpires = &expires

	log.Info("verification email resent", slog.String("user_id", user.ID))

	if s.Mailer != nil {
		link := s.FrontendURL + "/verify-email?token=" + token
		if err := s.Mailer.SendVerificationEmail(ctx, email, link, user.FullName); err != nil {
			log.Warn("failed to send verification email",
				slog.String("user_id", user.ID),
				slog.Any("error", err),
			)
		}
	}

	return user, nil
}

// CurrentUser loads the account behind an access token, refusing
// deactivated accounts even when their token is still within its TTL.
func (s *AuthService) CurrentUser(ctx context.Context, userID string) (domain.User, error) {
	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrUserNotFound
		}
		return domain.User{}, err
	}
	if !user.IsActive {
		return domain.User{}, ErrUserDeactivated
	}
	return user, nil
}

// RefreshToken issues a fresh access token for an authenticated user,
// re-checking the account state so a deactivation cuts the session short
// at the next renewal.
func (s *AuthService) RefreshToken(ctx context.Context, userID string) (domain.User, string, error) {
	log := slogx.FromContext(ctx)

	user, err := s.CurrentUser(ctx, userID)
	if err != nil {
		return domain.User{}, "", err
	}
	if !user.IsVerified {
		return domain.User{}, "", ErrEmailNotVerified
	}

	accessToken, err := s.Signer.Issue(user.Email, user.ID)
	if err != nil {
		log.Error("failed to issue access token", slog.Any("error", err))
		return domain.User{}, "", err
	}

	log.Info("access token refreshed", slog.String("user_id", user.ID))
	return user, accessToken, nil
}
