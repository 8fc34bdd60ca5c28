package http

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/zunohq/zuno/internal/workspaces/service"
	"github.com/zunohq/zuno/internal/workspaces/store/drivers/sqlite"
	"github.com/zunohq/zuno/pkg/cryptox"
	"github.com/zunohq/zuno/pkg/jwtx"
	"github.com/zunohq/zuno/pkg/zunosdk"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "pepper")
	if err != nil {
		panic(err)
	}
	cryptox.SetPepperPath(filepath.Join(dir, "pepper"))

	code := m.Run()
	_ = os.RemoveAll(dir)
	os.Exit(code)
}

// recordingMailer captures outgoing email so tests can fish tokens out of
// the links.
type recordingMailer struct {
	mu    sync.Mutex
	links []string
}

func (m *recordingMailer) SendVerificationEmail(_ context.Context, _, link, _ string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.links = append(m.links, link)
	return nil
}

func (m *recordingMailer) SendInvitationEmail(_ context.Context, _, _, _, link, _ string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.links = append(m.links, link)
	return nil
}

func (m *recordingMailer) lastToken(t *testing.T) string {
	t.Helper()
	m.mu.Lock()
	defer m.mu.Unlock()
	require.NotEmpty(t, m.links)
	link := m.links[len(m.links)-1]
	i := len(link) - 1
	for i >= 0 && link[i] != '=' {
		i--
	}
	require.GreaterOrEqual(t, i, 0, "link %q has no token query", link)
	return link[i+1:]
}

func newTestServer(t *testing.T) (*httptest.Server, *recordingMailer) {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	signer := &jwtx.Signer{
		Secret: []byte("router-test-secret"),
		Issuer: "test-issuer",
		TTL:    time.Hour,
	}
	mailer := &recordingMailer{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	router := NewRouter(signer, "test", st, logger)
	router.AuthService = &service.AuthService{
		Store:       st,
		Mailer:      mailer,
		Signer:      signer,
		FrontendURL: "https://app.test",
	}
	router.WorkspaceService = &service.WorkspaceService{Store: st}
	router.SubscriptionService = &service.SubscriptionService{Store: st}
	router.InviteService = &service.InviteService{
		Store:       st,
		Mailer:      mailer,
		Signer:      signer,
		FrontendURL: "https://app.test",
	}
	router.ApplyRoutes()

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv, mailer
}

func TestSignupInviteAcceptFlow(t *testing.T) {
	ctx := context.Background()
	srv, mailer := newTestServer(t)

	owner := zunosdk.NewClient(srv.URL)

	// Register, pull the verification token from the email link, verify.
	reg, err := owner.Register(ctx, zunosdk.RegisterRequest{
		Email:    "olive@example.com",
		FullName: "Olive Owner",
		Password: "correct horse battery",
	})
	require.NoError(t, err)
	require.Equal(t, "olive@example.com", reg.Email)

	verified, err := owner.VerifyEmail(ctx, mailer.lastToken(t))
	require.NoError(t, err)
	require.NotEmpty(t, verified.WorkspaceID)

	// Log in and look around.
	login, err := owner.Login(ctx, "olive@example.com", "correct horse battery")
	require.NoError(t, err)
	require.Equal(t, "Bearer", login.TokenType)

	def, err := owner.DefaultWorkspace(ctx)
	require.NoError(t, err)
	require.Equal(t, "Olive's Workspace", def.Name)

	sub, err := owner.Subscription(ctx)
	require.NoError(t, err)
	require.Equal(t, "free", sub.Plan)
	require.Equal(t, 5, sub.SeatLimit)

	// Invite a teammate.
	inv, err := owner.InviteMember(ctx, def.ID, zunosdk.InviteMemberRequest{
		Email: "mel@example.com",
		Role:  "member",
	})
	require.NoError(t, err)
	require.Equal(t, "created", inv.Outcome)

	inviteToken := mailer.lastToken(t)

	// The public landing page shows the invite without auth.
	anon := zunosdk.NewClient(srv.URL)
	details, err := anon.InviteDetails(ctx, inviteToken)
	require.NoError(t, err)
	require.Equal(t, def.Name, details.WorkspaceName)
	require.False(t, details.UserExists)

	// Accept as a brand-new user.
	accepted, err := anon.AcceptInvite(ctx, zunosdk.AcceptInviteRequest{
		Token:    inviteToken,
		FullName: "Mel Member",
		Password: "another fine password",
	})
	require.NoError(t, err)
	require.True(t, accepted.IsNewUser)
	require.Equal(t, def.ID, accepted.Workspace.ID)
	require.NotEmpty(t, accepted.PersonalWorkspaceID)

	// The member roster now has both of them, owner first.
	members, err := owner.ListMembers(ctx, def.ID)
	require.NoError(t, err)
	require.Len(t, members.Members, 2)
	require.Equal(t, "owner", members.Members[0].Role)

	// Replaying the invite token fails with 404.
	_, err = anon.InviteDetails(ctx, inviteToken)
	var apiErr *zunosdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	require.Equal(t, zunosdk.ErrorCodeNotFound, apiErr.Code)
}

func TestLoginFailuresOnTheWire(t *testing.T) {
	ctx := context.Background()
	srv, mailer := newTestServer(t)
	client := zunosdk.NewClient(srv.URL)

	_, err := client.Register(ctx, zunosdk.RegisterRequest{
		Email:    "jane@example.com",
		FullName: "Jane Doe",
		Password: "correct horse battery",
	})
	require.NoError(t, err)

	var apiErr *zunosdk.APIError

	// Unverified accounts are told to verify first.
	_, err = client.Login(ctx, "jane@example.com", "correct horse battery")
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusForbidden, apiErr.StatusCode)
	require.Equal(t, zunosdk.ErrorCodeEmailNotVerified, apiErr.Code)

	_, err = client.VerifyEmail(ctx, mailer.lastToken(t))
	require.NoError(t, err)

	// Wrong password after verification.
	_, err = client.Login(ctx, "jane@example.com", "not the password")
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	require.Equal(t, zunosdk.ErrorCodeInvalidCredentials, apiErr.Code)

	// Duplicate registration conflicts.
	_, err = client.Register(ctx, zunosdk.RegisterRequest{
		Email:    "jane@example.com",
		FullName: "Jane Again",
		Password: "correct horse battery",
	})
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusConflict, apiErr.StatusCode)
	require.Equal(t, zunosdk.ErrorCodeEmailTaken, apiErr.Code)
}

func TestAuthnRequired(t *testing.T) {
	ctx := context.Background()
	srv, _ := newTestServer(t)
	client := zunosdk.NewClient(srv.URL)

	var apiErr *zunosdk.APIError
	_, err := client.ListWorkspaces(ctx)
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)

	client.SetToken("not-a-jwt")
	_, err = client.ListWorkspaces(ctx)
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
}

func TestHealthEndpoints(t *testing.T) {
	srv, _ := newTestServer(t)

	for _, path := range []string{"/livez", "/readyz"} {
		resp, err := http.Get(srv.URL + path)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		_ = resp.Body.Close()
	}
}

func TestVerificationResendAndSessionRenewal(t *testing.T) {
	ctx := context.Background()
	srv, mailer := newTestServer(t)

	client := zunosdk.NewClient(srv.URL)

	_, err := client.Register(ctx, zunosdk.RegisterRequest{
		Email:    "pat@example.com",
		FullName: "Pat Park",
		Password: "correct horse battery",
	})
	require.NoError(t, err)

	// Ask for the link again; a second mail goes out with a fresh token and
	// the response stays generic.
	resent, err := client.ResendVerification(ctx, "pat@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, resent.Message)

	// An address with no account gets the very same answer.
	unknown, err := client.ResendVerification(ctx, "nobody@example.com")
	require.NoError(t, err)
	require.Equal(t, resent.Message, unknown.Message)

	// The re-sent token verifies.
	_, err = client.VerifyEmail(ctx, mailer.lastToken(t))
	require.NoError(t, err)

	_, err = client.Login(ctx, "pat@example.com", "correct horse battery")
	require.NoError(t, err)

	// The session endpoints work off the installed token.
	me, err := client.Me(ctx)
	require.NoError(t, err)
	require.Equal(t, "pat@example.com", me.Email)

	refreshed, err := client.RefreshToken(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, refreshed.AccessToken)

	// The renewed token is installed and keeps working.
	me, err = client.Me(ctx)
	require.NoError(t, err)
	require.Equal(t, "Pat Park", me.FullName)
}
