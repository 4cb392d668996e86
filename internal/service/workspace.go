package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"manageme.app/hub/common/id"
	"manageme.app/hub/internal/model"
	"manageme.app/hub/internal/store"
)

const (
	DeleteTokenLength = 32
	DeleteTokenTTL    = 5 * time.Minute
)

var (
	ErrWorkspaceNotFound  = errors.New("workspace not found")
	ErrDeleteTokenInvalid = errors.New("delete confirmation token is invalid")
	ErrDeleteTokenExpired = errors.New("delete confirmation token has expired")
)

type WorkspaceService interface {
	Create(ctx context.Context, name, description, icon, ownerID string) (*model.Workspace, error)
	Get(ctx context.Context, id string) (*model.Workspace, error)
	// RequestDelete begins the two-phase removal of a workspace.
	// Owner-only; returns a short-lived confirmation token.
	RequestDelete(ctx context.Context, workspaceID, requesterID string) (string, error)
	// ConfirmDelete executes a previously requested removal, cascading
	// to channels, messages and tasks. All-or-nothing. Returns the
	// deleted workspace so callers can clean up derived state.
	ConfirmDelete(ctx context.Context, token string) (*model.Workspace, error)
}

type pendingDelete struct {
	workspaceID string
	requesterID string
	expiresAt   time.Time
}

type workspaceService struct {
	workspaces store.WorkspaceStore
	users      store.UserStore
	selections SelectionService

	mu      sync.Mutex
	pending map[string]pendingDelete // keyed by confirmation token
}

func NewWorkspaceService(workspaces store.WorkspaceStore, users store.UserStore, selections SelectionService) WorkspaceService {
	return &workspaceService{
		workspaces: workspaces,
		users:      users,
		selections: selections,
		pending:    make(map[string]pendingDelete),
	}
}

func (s *workspaceService) Create(ctx context.Context, name, description, icon, ownerID string) (*model.Workspace, error) {
	name = strings.TrimSpace(name)
	description = strings.TrimSpace(description)

	var fields []FieldError
	if name == "" {
		fields = append(fields, FieldError{Field: "name", Message: "Workspace name is required"})
	}
	if description == "" {
		fields = append(fields, FieldError{Field: "description", Message: "Description is required"})
	}
	if len(fields) > 0 {
		return nil, invalid(fields...)
	}

	if _, err := s.users.GetByID(ctx, ownerID); err != nil {
		return nil, fmt.Errorf("fetching owner: %w", err)
	}

	ws := &model.Workspace{
		ID:          id.New("ws"),
		Name:        name,
		Description: description,
		Icon:        icon,
		OwnerID:     ownerID,
		MemberIDs:   []string{ownerID},
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.workspaces.Create(ctx, ws); err != nil {
		return nil, fmt.Errorf("creating workspace: %w", err)
	}

	// The new workspace becomes the creator's active selection. It has
	// no channels yet, so channel selection stays empty.
	if _, err := s.selections.SelectWorkspace(ctx, ownerID, ws.ID); err != nil {
		slog.WarnContext(ctx, "failed to select created workspace", "error", err, "workspace_id", ws.ID)
	}

	slog.InfoContext(ctx, "workspace created",
		"workspace_id", ws.ID,
		"owner_id", ownerID,
		"name", name,
	)
	return ws, nil
}

func (s *workspaceService) Get(ctx context.Context, wsID string) (*model.Workspace, error) {
	ws, err := s.workspaces.GetByID(ctx, wsID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrWorkspaceNotFound
		}
		return nil, fmt.Errorf("fetching workspace: %w", err)
	}
	return ws, nil
}

func (s *workspaceService) RequestDelete(ctx context.Context, workspaceID, requesterID string) (string, error) {
	ws, err := s.workspaces.GetByID(ctx, workspaceID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", ErrWorkspaceNotFound
		}
		return "", fmt.Errorf("fetching workspace: %w", err)
	}

	if !ws.IsOwner(requesterID) {
		slog.WarnContext(ctx, "non-owner requested workspace deletion",
			"workspace_id", workspaceID,
			"requester_id", requesterID,
		)
		return "", ErrPermissionDenied
	}

	token, err := generateSecureToken(DeleteTokenLength)
	if err != nil {
		return "", fmt.Errorf("generating token: %w", err)
	}

	s.mu.Lock()
	s.pending[token] = pendingDelete{
		workspaceID: workspaceID,
		requesterID: requesterID,
		expiresAt:   time.Now().Add(DeleteTokenTTL),
	}
	s.mu.Unlock()

	slog.InfoContext(ctx, "workspace deletion requested",
		"workspace_id", workspaceID,
		"requester_id", requesterID,
	)
	return token, nil
}

func (s *workspaceService) ConfirmDelete(ctx context.Context, token string) (*model.Workspace, error) {
	s.mu.Lock()
	pd, ok := s.pending[token]
	if ok {
		delete(s.pending, token)
	}
	s.mu.Unlock()

	if !ok {
		return nil, ErrDeleteTokenInvalid
	}
	if time.Now().After(pd.expiresAt) {
		return nil, ErrDeleteTokenExpired
	}

	ws, err := s.workspaces.GetByID(ctx, pd.workspaceID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrWorkspaceNotFound
		}
		return nil, fmt.Errorf("fetching workspace: %w", err)
	}

	if err := s.workspaces.Delete(ctx, pd.workspaceID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrWorkspaceNotFound
		}
		return nil, fmt.Errorf("deleting workspace: %w", err)
	}

	s.selections.DropWorkspace(pd.workspaceID)

	slog.InfoContext(ctx, "workspace deleted",
		"workspace_id", pd.workspaceID,
		"requester_id", pd.requesterID,
	)
	return ws, nil
}

func generateSecureToken(length int) (string, error) {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(bytes), nil
}
