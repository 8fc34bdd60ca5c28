package jwtx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify(t *testing.T) {
	t.Parallel()

	signer := &Signer{Secret: []byte("test-secret"), Issuer: "workspaces", TTL: time.Hour}

	token, err := signer.Issue("alice@example.com", "01JTESTUSERID")
	require.NoError(t, err)

	claims, err := signer.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "alice@example.com", claims.Subject)
	require.Equal(t, "01JTESTUSERID", claims.UserID)
	require.Equal(t, "workspaces", claims.Issuer)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	t.Parallel()

	a := &Signer{Secret: []byte("secret-a"), Issuer: "workspaces"}
	b := &Signer{Secret: []byte("secret-b"), Issuer: "workspaces"}

	token, err := a.Issue("alice@example.com", "u1")
	require.NoError(t, err)

	_, err = b.Verify(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	t.Parallel()

	signer := &Signer{Secret: []byte("test-secret"), Issuer: "workspaces", TTL: -time.Minute}

	token, err := signer.Issue("alice@example.com", "u1")
	require.NoError(t, err)

	_, err = signer.Verify(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsWrongIssuer(t *testing.T) {
	t.Parallel()

	a := &Signer{Secret: []byte("shared"), Issuer: "other-service"}
	b := &Signer{Secret: []byte("shared"), Issuer: "workspaces"}

	token, err := a.Issue("alice@example.com", "u1")
	require.NoError(t, err)

	_, err = b.Verify(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestIssueRequiresSecret(t *testing.T) {
	t.Parallel()

	signer := &Signer{Issuer: "workspaces"}
	_, err := signer.Issue("alice@example.com", "u1")
	require.ErrorIs(t, err, ErrNoSecret)
}
