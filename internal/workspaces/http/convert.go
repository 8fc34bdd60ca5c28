package http

import (
	"encoding/json"
	"net/http"

	"github.com/zunohq/zuno/internal/workspaces/domain"
	"github.com/zunohq/zuno/internal/workspaces/store"
	"github.com/zunohq/zuno/pkg/zunosdk"
)

// decodeJSON reads a JSON request body into v, capping the body size.
func decodeJSON(r *http.Request, v any) error {
	defer r.Body.Close()
	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, 1<<20))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

func toUser(u domain.User) zunosdk.User {
	return zunosdk.User{
		ID:         u.ID,
		Email:      u.Email,
		FullName:   u.FullName,
		IsVerified: u.IsVerified,
		CreatedAt:  u.CreatedAt,
	}
}

func toWorkspace(w domain.Workspace) zunosdk.Workspace {
	return zunosdk.Workspace{
		ID:          w.ID,
		Name:        w.Name,
		Slug:        w.Slug,
		Description: w.Description,
		OwnerID:     w.OwnerID,
		CreatedAt:   w.CreatedAt,
	}
}

func toInvite(i domain.Invite) zunosdk.Invite {
	return zunosdk.Invite{
		ID:            i.ID,
		WorkspaceID:   i.WorkspaceID,
		WorkspaceName: i.InvitedToWorkspaceName,
		Email:         i.Email,
		Role:          string(i.Role),
		Status:        string(i.Status),
		InvitedBy:     i.InvitedBy,
		ExpiresAt:     i.ExpiresAt,
		CreatedAt:     i.CreatedAt,
	}
}

func toInvites(invites []domain.Invite) []zunosdk.Invite {
	out := make([]zunosdk.Invite, 0, len(invites))
	for _, inv := range invites {
		out = append(out, toInvite(inv))
	}
	return out
}

func toMembers(details []store.MemberDetail) []zunosdk.Member {
	out := make([]zunosdk.Member, 0, len(details))
	for _, d := range details {
		out = append(out, zunosdk.Member{
			UserID:   d.User.ID,
			Email:    d.User.Email,
			FullName: d.User.FullName,
			Role:     string(d.Membership.Role),
			JoinedAt: d.Membership.JoinedAt,
		})
	}
	return out
}
