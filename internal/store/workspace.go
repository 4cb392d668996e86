package store

import (
	"context"
	"slices"

	"manageme.app/hub/internal/model"
)

type workspaceStore struct {
	m *Memory
}

func (s *workspaceStore) GetByID(_ context.Context, id string) (*model.Workspace, error) {
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()

	ws, ok := s.m.workspaces[id]
	if !ok {
		return nil, ErrNotFound
	}
	return cloneWorkspace(ws), nil
}

func (s *workspaceStore) Create(_ context.Context, ws *model.Workspace) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()

	if _, exists := s.m.workspaces[ws.ID]; exists {
		return &IntegrityError{Entity: "workspace", Ref: "id", Reason: "duplicate id " + ws.ID}
	}
	if len(ws.MemberIDs) == 0 {
		return &IntegrityError{Entity: "workspace", Ref: "member_ids", Reason: "membership cannot be empty"}
	}
	if !slices.Contains(ws.MemberIDs, ws.OwnerID) {
		return &IntegrityError{Entity: "workspace", Ref: "owner_id", Reason: "owner must be a member"}
	}

	s.m.workspaces[ws.ID] = cloneWorkspace(ws)
	s.m.workspaceOrder = append(s.m.workspaceOrder, ws.ID)
	return nil
}

func (s *workspaceStore) AddMember(_ context.Context, id, userID string) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()

	ws, ok := s.m.workspaces[id]
	if !ok {
		return ErrNotFound
	}
	if !slices.Contains(ws.MemberIDs, userID) {
		ws.MemberIDs = append(ws.MemberIDs, userID)
	}
	return nil
}

// Delete removes the workspace and everything it contains. Tasks that
// were linked onto boards in other workspaces are unlinked as well, so
// no channel is left referencing a deleted task.
func (s *workspaceStore) Delete(_ context.Context, id string) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()

	if _, ok := s.m.workspaces[id]; !ok {
		return ErrNotFound
	}

	removedTasks := make(map[string]bool)
	removedChannels := make(map[string]bool)
	for chID, ch := range s.m.channels {
		if ch.WorkspaceID == id {
			removedChannels[chID] = true
		}
	}
	for taskID, t := range s.m.tasks {
		if t.WorkspaceID == id {
			removedTasks[taskID] = true
		}
	}

	for chID := range removedChannels {
		delete(s.m.channels, chID)
	}
	for taskID := range removedTasks {
		delete(s.m.tasks, taskID)
	}
	for msgID, msg := range s.m.messages {
		if removedChannels[msg.ChannelID] {
			delete(s.m.messages, msgID)
		}
	}
	for invID, inv := range s.m.invites {
		if inv.WorkspaceID == id {
			delete(s.m.invites, invID)
		}
	}
	for _, ch := range s.m.channels {
		ch.LinkedTaskIDs = slices.DeleteFunc(ch.LinkedTaskIDs, func(taskID string) bool {
			return removedTasks[taskID]
		})
	}
	delete(s.m.workspaces, id)

	s.m.workspaceOrder = slices.DeleteFunc(s.m.workspaceOrder, func(wsID string) bool { return wsID == id })
	s.m.channelOrder = slices.DeleteFunc(s.m.channelOrder, func(chID string) bool { return removedChannels[chID] })
	s.m.taskOrder = slices.DeleteFunc(s.m.taskOrder, func(taskID string) bool { return removedTasks[taskID] })
	s.m.messageOrder = slices.DeleteFunc(s.m.messageOrder, func(msgID string) bool {
		_, alive := s.m.messages[msgID]
		return !alive
	})
	s.m.inviteOrder = slices.DeleteFunc(s.m.inviteOrder, func(invID string) bool {
		_, alive := s.m.invites[invID]
		return !alive
	})
	return nil
}

func (s *workspaceStore) List(_ context.Context) ([]model.Workspace, error) {
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()

	out := make([]model.Workspace, 0, len(s.m.workspaceOrder))
	for _, id := range s.m.workspaceOrder {
		out = append(out, *cloneWorkspace(s.m.workspaces[id]))
	}
	return out, nil
}

func (s *workspaceStore) ListByMember(_ context.Context, userID string) ([]model.Workspace, error) {
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()

	var out []model.Workspace
	for _, id := range s.m.workspaceOrder {
		if ws := s.m.workspaces[id]; ws.HasMember(userID) {
			out = append(out, *cloneWorkspace(ws))
		}
	}
	return out, nil
}
