package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/zunohq/zuno/internal/workspaces/domain"
	"github.com/zunohq/zuno/internal/workspaces/store"
	"github.com/zunohq/zuno/pkg/idx"
	"github.com/zunohq/zuno/pkg/slogx"
	"github.com/zunohq/zuno/pkg/slugx"
)

// WorkspaceService handles workspace provisioning and member listings.
type WorkspaceService struct {
	Store store.Store
}

// CreateWorkspaceResult carries the new workspace together with the plan
// context that allowed it, for the creation response.
type CreateWorkspaceResult struct {
	Workspace      domain.Workspace
	CurrentPlan    string
	WorkspaceCount int
	WorkspaceLimit int
}

// CreateWorkspace provisions a workspace for ownerID with an owner
// membership, enforcing the owner's plan workspace limit. The count check
// and the inserts run in one transaction.
func (s *WorkspaceService) CreateWorkspace(ctx context.Context, ownerID, name, description string) (CreateWorkspaceResult, error) {
	log := slogx.FromContext(ctx)

	var result CreateWorkspaceResult
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		// 1. Resolve the owner's plan and its workspace cap.
		sub, err := ensureSubscription(ctx, tx, ownerID)
		if err != nil {
			return err
		}
		limits := domain.LimitsFor(sub.Plan)

		// 2. Gate on the cap before touching anything.
		count, err := tx.Workspaces().CountByOwner(ctx, ownerID)
		if err != nil {
			return err
		}
		if count >= limits.WorkspaceLimit {
			return &WorkspaceLimitError{
				Plan:           sub.Plan,
				WorkspaceLimit: limits.WorkspaceLimit,
				WorkspaceCount: count,
			}
		}

		// 3. Create the workspace plus its owner membership.
		ws, err := createWorkspaceWithOwner(ctx, tx, ownerID, name, description)
		if err != nil {
			return err
		}

		result = CreateWorkspaceResult{
			Workspace:      ws,
			CurrentPlan:    sub.Plan,
			WorkspaceCount: count + 1,
			WorkspaceLimit: limits.WorkspaceLimit,
		}
		return nil
	})
	if err != nil {
		return CreateWorkspaceResult{}, err
	}

	log.Info("workspace created",
		slog.String("workspace_id", result.Workspace.ID),
		slog.String("slug", result.Workspace.Slug),
		slog.String("owner_id", ownerID),
	)
	return result, nil
}

// CreateDefaultWorkspace provisions the personal workspace a user gets on
// verification, named after their first name. Runs in its own transaction;
// callers already inside one should use createDefaultWorkspace.
func (s *WorkspaceService) CreateDefaultWorkspace(ctx context.Context, userID, fullName string) (domain.Workspace, error) {
	var ws domain.Workspace
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		var err error
		ws, err = createDefaultWorkspace(ctx, tx, userID, fullName)
		return err
	})
	return ws, err
}

// DefaultWorkspace returns the user's first-created workspace.
func (s *WorkspaceService) DefaultWorkspace(ctx context.Context, userID string) (domain.Workspace, error) {
	ws, err := s.Store.Workspaces().GetDefaultByOwner(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Workspace{}, ErrWorkspaceNotFound
	}
	return ws, err
}

// ListWorkspaces returns the workspaces owned by userID, newest first.
func (s *WorkspaceService) ListWorkspaces(ctx context.Context, userID string) ([]domain.Workspace, error) {
	return s.Store.Workspaces().ListByOwner(ctx, userID)
}

// ListMembers returns the active members of a workspace. The requester must
// themselves be an active member.
func (s *WorkspaceService) ListMembers(ctx context.Context, workspaceID, requesterID string) ([]store.MemberDetail, error) {
	if _, err := s.Store.Workspaces().GetActiveWorkspaceByID(ctx, workspaceID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrWorkspaceNotFound
		}
		return nil, err
	}

	m, err := s.Store.Memberships().GetMembership(ctx, workspaceID, requesterID)
	if err != nil || !m.IsActive {
		if err == nil || errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotAMember
		}
		return nil, err
	}

	return s.Store.Memberships().ListActiveMembers(ctx, workspaceID)
}

// createWorkspaceWithOwner inserts a workspace with a unique slug and the
// owner's membership. Runs against whatever store it is handed so services
// can compose it into a larger transaction.
func createWorkspaceWithOwner(ctx context.Context, st store.Store, ownerID, name, description string) (domain.Workspace, error) {
	slug, err := uniqueSlug(ctx, st, name)
	if err != nil {
		return domain.Workspace{}, err
	}

	ws := domain.Workspace{
		ID:          idx.New().String(),
		Name:        name,
		Slug:        slug,
		Description: description,
		OwnerID:     ownerID,
		IsActive:    true,
	}
	if err := st.Workspaces().CreateWorkspace(ctx, ws); err != nil {
		return domain.Workspace{}, err
	}

	member := domain.Membership{
		ID:          idx.New().String(),
		WorkspaceID: ws.ID,
		UserID:      ownerID,
		Role:        domain.RoleOwner,
		IsActive:    true,
	}
	if err := st.Memberships().CreateMembership(ctx, member); err != nil {
		return domain.Workspace{}, err
	}

	return ws, nil
}

// createDefaultWorkspace provisions "{First}'s Workspace" for a freshly
// verified user.
func createDefaultWorkspace(ctx context.Context, st store.Store, userID, fullName string) (domain.Workspace, error) {
	name := fmt.Sprintf("%s's Workspace", domain.User{FullName: fullName}.FirstName())
	return createWorkspaceWithOwner(ctx, st, userID, name, "")
}

// uniqueSlug derives a URL slug from name and suffixes -1, -2, ... until it
// finds one no workspace claims yet. The final insert still carries a unique
// index, so a racing claim surfaces as ErrAlreadyExists from CreateWorkspace.
func uniqueSlug(ctx context.Context, st store.Store, name string) (string, error) {
	base := slugx.Slugify(name)
	if base == "" {
		base = "workspace"
	}

	slug := base
	for i := 1; ; i++ {
		taken, err := st.Workspaces().SlugExists(ctx, slug)
		if err != nil {
			return "", err
		}
		if !taken {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, i)
	}
}
