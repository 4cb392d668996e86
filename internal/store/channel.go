package store

import (
	"context"
	"slices"

	"manageme.app/hub/internal/model"
)

type channelStore struct {
	m *Memory
}

func (s *channelStore) GetByID(_ context.Context, id string) (*model.Channel, error) {
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()

	ch, ok := s.m.channels[id]
	if !ok {
		return nil, ErrNotFound
	}
	return cloneChannel(ch), nil
}

func (s *channelStore) Create(_ context.Context, ch *model.Channel) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()

	if _, exists := s.m.channels[ch.ID]; exists {
		return &IntegrityError{Entity: "channel", Ref: "id", Reason: "duplicate id " + ch.ID}
	}
	ws, ok := s.m.workspaces[ch.WorkspaceID]
	if !ok {
		return &IntegrityError{Entity: "channel", Ref: "workspace_id", Reason: "workspace " + ch.WorkspaceID + " does not exist"}
	}
	for _, memberID := range ch.MemberIDs {
		if !slices.Contains(ws.MemberIDs, memberID) {
			return &IntegrityError{Entity: "channel", Ref: "member_ids", Reason: "user " + memberID + " is not a workspace member"}
		}
	}

	s.m.channels[ch.ID] = cloneChannel(ch)
	s.m.channelOrder = append(s.m.channelOrder, ch.ID)
	return nil
}

func (s *channelStore) AddMember(_ context.Context, id, userID string) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()

	ch, ok := s.m.channels[id]
	if !ok {
		return ErrNotFound
	}
	ws := s.m.workspaces[ch.WorkspaceID]
	if ws == nil || !slices.Contains(ws.MemberIDs, userID) {
		return &IntegrityError{Entity: "channel", Ref: "member_ids", Reason: "user " + userID + " is not a workspace member"}
	}
	if !slices.Contains(ch.MemberIDs, userID) {
		ch.MemberIDs = append(ch.MemberIDs, userID)
	}
	return nil
}

func (s *channelStore) AddLinkedTasks(_ context.Context, id string, taskIDs []string) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()

	ch, ok := s.m.channels[id]
	if !ok {
		return ErrNotFound
	}

	// Validate the whole batch before touching the channel, so a bad
	// id cannot leave a partial link behind.
	for _, taskID := range taskIDs {
		task, exists := s.m.tasks[taskID]
		if !exists {
			return &IntegrityError{Entity: "channel", Ref: "linked_task_ids", Reason: "task " + taskID + " does not exist"}
		}
		if task.ChannelID == id {
			return &IntegrityError{Entity: "channel", Ref: "linked_task_ids", Reason: "task " + taskID + " already belongs to this channel"}
		}
	}

	for _, taskID := range taskIDs {
		if !slices.Contains(ch.LinkedTaskIDs, taskID) {
			ch.LinkedTaskIDs = append(ch.LinkedTaskIDs, taskID)
		}
	}
	return nil
}

func (s *channelStore) ListByWorkspace(_ context.Context, workspaceID string) ([]model.Channel, error) {
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()

	var out []model.Channel
	for _, id := range s.m.channelOrder {
		if ch := s.m.channels[id]; ch.WorkspaceID == workspaceID {
			out = append(out, *cloneChannel(ch))
		}
	}
	return out, nil
}
