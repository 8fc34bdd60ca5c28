package http

import (
	"net/http"
	"strings"

	"github.com/zunohq/zuno/internal/workspaces/service"
	"github.com/zunohq/zuno/pkg/httpx"
	"github.com/zunohq/zuno/pkg/zunosdk"
)

type WorkspaceHandler struct {
	WorkspaceService *service.WorkspaceService
}

// HandleCreate godoc
//
//	@Summary		Create Workspace Endpoint
//	@Description	Provision an additional workspace owned by the authenticated user.
//	@Description	The owner's plan caps how many workspaces they may own.
//	@Tags			Workspaces
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		zunosdk.CreateWorkspaceRequest	true	"name, optional description"
//	@Success		201		{object}	zunosdk.CreateWorkspaceResponse	"workspace, plan, workspace_count, workspace_limit"
//	@Failure		400		{object}	zunosdk.ErrorResponse			"error, error_description"
//	@Failure		403		{object}	zunosdk.ErrorResponse			"workspace limit exceeded"
//	@Router			/v1/workspaces [post].
func (h *WorkspaceHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFromCtx(r.Context())

	var req zunosdk.CreateWorkspaceRequest
	if err := decodeJSON(r, &req); err != nil {
		writeInvalidRequest(w, "Invalid JSON body")
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		writeInvalidRequest(w, "name is required")
		return
	}

	result, err := h.WorkspaceService.CreateWorkspace(r.Context(), userID, req.Name, req.Description)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, zunosdk.CreateWorkspaceResponse{
		Workspace:      toWorkspace(result.Workspace),
		Plan:           result.CurrentPlan,
		WorkspaceCount: result.WorkspaceCount,
		WorkspaceLimit: result.WorkspaceLimit,
	})
}

// HandleList godoc
//
//	@Summary		List Workspaces Endpoint
//	@Description	List the workspaces owned by the authenticated user, newest first.
//	@Tags			Workspaces
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	zunosdk.WorkspaceListResponse	"workspaces"
//	@Failure		401	{object}	zunosdk.ErrorResponse			"error, error_description"
//	@Router			/v1/workspaces [get].
func (h *WorkspaceHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFromCtx(r.Context())

	workspaces, err := h.WorkspaceService.ListWorkspaces(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := make([]zunosdk.Workspace, 0, len(workspaces))
	for _, ws := range workspaces {
		out = append(out, toWorkspace(ws))
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, zunosdk.WorkspaceListResponse{Workspaces: out})
}

// HandleDefault godoc
//
//	@Summary		Default Workspace Endpoint
//	@Description	Return the authenticated user's first-created workspace.
//	@Tags			Workspaces
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	zunosdk.Workspace		"workspace"
//	@Failure		404	{object}	zunosdk.ErrorResponse	"workspace not found"
//	@Router			/v1/workspaces/default [get].
func (h *WorkspaceHandler) HandleDefault(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFromCtx(r.Context())

	ws, err := h.WorkspaceService.DefaultWorkspace(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, toWorkspace(ws))
}
