package http

import (
	"net/http"

	"github.com/zunohq/zuno/internal/workspaces/service"
	"github.com/zunohq/zuno/pkg/httpx"
	"github.com/zunohq/zuno/pkg/zunosdk"
)

type MembersHandler struct {
	WorkspaceService *service.WorkspaceService
}

// ServeHTTP godoc
//
//	@Summary		Workspace Members Endpoint
//	@Description	List a workspace's active members, owners first. The caller must be an active member.
//	@Tags			Workspaces
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string							true	"Workspace ID"
//	@Success		200	{object}	zunosdk.MemberListResponse		"workspace_id, members"
//	@Failure		403	{object}	zunosdk.ErrorResponse			"not a member of this workspace"
//	@Failure		404	{object}	zunosdk.ErrorResponse			"workspace not found or inactive"
//	@Router			/v1/workspaces/{id}/members [get].
func (h *MembersHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	workspaceID := r.PathValue("id")
	userID := httpx.UserIDFromCtx(r.Context())

	members, err := h.WorkspaceService.ListMembers(r.Context(), workspaceID, userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, zunosdk.MemberListResponse{
		WorkspaceID: workspaceID,
		Members:     toMembers(members),
	})
}
