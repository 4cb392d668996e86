package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"manageme.app/hub/internal/store"
)

type ChannelTab string

const (
	TabMessages ChannelTab = "messages"
	TabTasks    ChannelTab = "tasks"
)

var ErrNotVisible = errors.New("not visible to user")

// Selection is a user's current workspace/channel focus plus the active
// channel tab. It is UI session state, not part of the entity graph.
type Selection struct {
	WorkspaceID string     `json:"workspace_id,omitempty"`
	ChannelID   string     `json:"channel_id,omitempty"`
	ActiveTab   ChannelTab `json:"active_tab"`
}

type SelectionService interface {
	Get(ctx context.Context, userID string) Selection
	// SelectWorkspace focuses a workspace, auto-selects the first
	// channel the user is a member of (or none), and resets the tab
	// to messages.
	SelectWorkspace(ctx context.Context, userID, workspaceID string) (Selection, error)
	// SelectChannel focuses a channel and resets the tab to messages.
	SelectChannel(ctx context.Context, userID, channelID string) (Selection, error)
	SetTab(ctx context.Context, userID string, tab ChannelTab) (Selection, error)
	// DropWorkspace clears any selection pointing at a removed workspace.
	DropWorkspace(workspaceID string)
}

type selectionService struct {
	workspaces store.WorkspaceStore
	channels   store.ChannelStore
	membership MembershipService

	mu         sync.Mutex
	selections map[string]Selection // keyed by user ID
}

func NewSelectionService(workspaces store.WorkspaceStore, channels store.ChannelStore, membership MembershipService) SelectionService {
	return &selectionService{
		workspaces: workspaces,
		channels:   channels,
		membership: membership,
		selections: make(map[string]Selection),
	}
}

func (s *selectionService) Get(_ context.Context, userID string) Selection {
	s.mu.Lock()
	defer s.mu.Unlock()

	sel, ok := s.selections[userID]
	if !ok {
		return Selection{ActiveTab: TabMessages}
	}
	return sel
}

func (s *selectionService) SelectWorkspace(ctx context.Context, userID, workspaceID string) (Selection, error) {
	ws, err := s.workspaces.GetByID(ctx, workspaceID)
	if err != nil {
		return Selection{}, fmt.Errorf("fetching workspace: %w", err)
	}
	if !ws.HasMember(userID) {
		return Selection{}, ErrNotVisible
	}

	visible, err := s.membership.VisibleChannels(ctx, userID, workspaceID)
	if err != nil {
		return Selection{}, err
	}

	sel := Selection{WorkspaceID: workspaceID, ActiveTab: TabMessages}
	if len(visible) > 0 {
		sel.ChannelID = visible[0].ID
	}

	s.mu.Lock()
	s.selections[userID] = sel
	s.mu.Unlock()
	return sel, nil
}

func (s *selectionService) SelectChannel(ctx context.Context, userID, channelID string) (Selection, error) {
	ch, err := s.channels.GetByID(ctx, channelID)
	if err != nil {
		return Selection{}, fmt.Errorf("fetching channel: %w", err)
	}
	if !ch.HasMember(userID) {
		return Selection{}, ErrNotVisible
	}

	sel := Selection{WorkspaceID: ch.WorkspaceID, ChannelID: channelID, ActiveTab: TabMessages}

	s.mu.Lock()
	s.selections[userID] = sel
	s.mu.Unlock()
	return sel, nil
}

func (s *selectionService) SetTab(_ context.Context, userID string, tab ChannelTab) (Selection, error) {
	if tab != TabMessages && tab != TabTasks {
		return Selection{}, invalid(FieldError{Field: "tab", Message: "unknown tab"})
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sel := s.selections[userID]
	sel.ActiveTab = tab
	s.selections[userID] = sel
	return sel, nil
}

func (s *selectionService) DropWorkspace(workspaceID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for userID, sel := range s.selections {
		if sel.WorkspaceID == workspaceID {
			delete(s.selections, userID)
		}
	}
}
