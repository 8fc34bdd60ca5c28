package zunosdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client is a small typed client for the workspaces service, used by other
// services and by the end-to-end tests. Unauthenticated calls work out of
// the box; calls that need a session use the token set via SetToken (or the
// one returned by Login / AcceptInvite, which the client picks up itself).
type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	token string
}

// NewClient creates a workspaces service client.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// SetToken installs a bearer token for authenticated calls.
func (c *Client) SetToken(token string) { c.token = token }

// Register creates a new unverified account.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (RegisterResponse, error) {
	var resp RegisterResponse
	err := c.do(ctx, http.MethodPost, "/v1/auth/register", req, &resp)
	return resp, err
}

// VerifyEmail redeems a verification token.
func (c *Client) VerifyEmail(ctx context.Context, token string) (VerifyEmailResponse, error) {
	var resp VerifyEmailResponse
	err := c.do(ctx, http.MethodPost, "/v1/auth/verify-email", VerifyEmailRequest{Token: token}, &resp)
	return resp, err
}

// Login authenticates and installs the returned token on the client.
func (c *Client) Login(ctx context.Context, email, password string) (LoginResponse, error) {
	var resp LoginResponse
	err := c.do(ctx, http.MethodPost, "/v1/auth/login", LoginRequest{Email: email, Password: password}, &resp)
	if err == nil {
		c.token = resp.AccessToken
	}
	return resp, err
}

// ResendVerification asks for a fresh verification email.
func (c *Client) ResendVerification(ctx context.Context, email string) (ResendVerificationResponse, error) {
	var resp ResendVerificationResponse
	err := c.do(ctx, http.MethodPost, "/v1/auth/resend-verification", ResendVerificationRequest{Email: email}, &resp)
	return resp, err
}

// Me returns the account behind the installed token.
func (c *Client) Me(ctx context.Context) (User, error) {
	var resp User
	err := c.do(ctx, http.MethodGet, "/v1/auth/me", nil, &resp)
	return resp, err
}

// RefreshToken renews the session and installs the fresh token on the
// client.
func (c *Client) RefreshToken(ctx context.Context) (LoginResponse, error) {
	var resp LoginResponse
	err := c.do(ctx, http.MethodPost, "/v1/auth/refresh-token", nil, &resp)
	if err == nil {
		c.token = resp.AccessToken
	}
	return resp, err
}

// InviteDetails resolves an invite token for display.
func (c *Client) InviteDetails(ctx context.Context, token string) (InviteDetailsResponse, error) {
	var resp InviteDetailsResponse
	err := c.do(ctx, http.MethodGet, "/v1/invites/"+token, nil, &resp)
	return resp, err
}

// AcceptInvite redeems an invite and installs the returned token.
func (c *Client) AcceptInvite(ctx context.Context, req AcceptInviteRequest) (AcceptInviteResponse, error) {
	var resp AcceptInviteResponse
	err := c.do(ctx, http.MethodPost, "/v1/invites/accept", req, &resp)
	if err == nil {
		c.token = resp.AccessToken
	}
	return resp, err
}

// DeclineInvite turns down an invite.
func (c *Client) DeclineInvite(ctx context.Context, token, email string) error {
	return c.do(ctx, http.MethodPost, "/v1/invites/decline", DeclineInviteRequest{Token: token, Email: email}, nil)
}

// PendingInvites lists open invites addressed to the logged-in user.
func (c *Client) PendingInvites(ctx context.Context) (PendingInvitesResponse, error) {
	var resp PendingInvitesResponse
	err := c.do(ctx, http.MethodGet, "/v1/invites/pending", nil, &resp)
	return resp, err
}

// CreateWorkspace provisions an additional workspace for the logged-in user.
func (c *Client) CreateWorkspace(ctx context.Context, req CreateWorkspaceRequest) (CreateWorkspaceResponse, error) {
	var resp CreateWorkspaceResponse
	err := c.do(ctx, http.MethodPost, "/v1/workspaces", req, &resp)
	return resp, err
}

// ListWorkspaces returns the workspaces the logged-in user owns.
func (c *Client) ListWorkspaces(ctx context.Context) (WorkspaceListResponse, error) {
	var resp WorkspaceListResponse
	err := c.do(ctx, http.MethodGet, "/v1/workspaces", nil, &resp)
	return resp, err
}

// DefaultWorkspace returns the logged-in user's first-created workspace.
func (c *Client) DefaultWorkspace(ctx context.Context) (Workspace, error) {
	var resp Workspace
	err := c.do(ctx, http.MethodGet, "/v1/workspaces/default", nil, &resp)
	return resp, err
}

// ListMembers returns a workspace's active members.
func (c *Client) ListMembers(ctx context.Context, workspaceID string) (MemberListResponse, error) {
	var resp MemberListResponse
	err := c.do(ctx, http.MethodGet, "/v1/workspaces/"+workspaceID+"/members", nil, &resp)
	return resp, err
}

// InviteMember invites an email into a workspace.
func (c *Client) InviteMember(ctx context.Context, workspaceID string, req InviteMemberRequest) (InviteMemberResponse, error) {
	var resp InviteMemberResponse
	err := c.do(ctx, http.MethodPost, "/v1/workspaces/"+workspaceID+"/invites", req, &resp)
	return resp, err
}

// SentInvites lists every invite a workspace has issued.
func (c *Client) SentInvites(ctx context.Context, workspaceID string) (SentInvitesResponse, error) {
	var resp SentInvitesResponse
	err := c.do(ctx, http.MethodGet, "/v1/workspaces/"+workspaceID+"/invites", nil, &resp)
	return resp, err
}

// Subscription reports the logged-in user's plan and limits.
func (c *Client) Subscription(ctx context.Context) (SubscriptionResponse, error) {
	var resp SubscriptionResponse
	err := c.do(ctx, http.MethodGet, "/v1/subscription", nil, &resp)
	return resp, err
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return parseAPIError(resp)
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
