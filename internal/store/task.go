package store

import (
	"context"
	"slices"

	"manageme.app/hub/internal/model"
)

type taskStore struct {
	m *Memory
}

func (s *taskStore) GetByID(_ context.Context, id string) (*model.Task, error) {
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()

	t, ok := s.m.tasks[id]
	if !ok {
		return nil, ErrNotFound
	}
	return cloneTask(t), nil
}

func (s *taskStore) Create(_ context.Context, task *model.Task) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()

	if _, exists := s.m.tasks[task.ID]; exists {
		return &IntegrityError{Entity: "task", Ref: "id", Reason: "duplicate id " + task.ID}
	}
	ch, ok := s.m.channels[task.ChannelID]
	if !ok {
		return &IntegrityError{Entity: "task", Ref: "channel_id", Reason: "channel " + task.ChannelID + " does not exist"}
	}
	if ch.WorkspaceID != task.WorkspaceID {
		return &IntegrityError{Entity: "task", Ref: "workspace_id", Reason: "channel belongs to workspace " + ch.WorkspaceID}
	}
	if !task.Status.Valid() {
		return &IntegrityError{Entity: "task", Ref: "status", Reason: "unknown status " + string(task.Status)}
	}

	s.m.tasks[task.ID] = cloneTask(task)
	s.m.taskOrder = append(s.m.taskOrder, task.ID)
	return nil
}

func (s *taskStore) SetStatus(_ context.Context, id string, status model.TaskStatus) (*model.Task, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()

	t, ok := s.m.tasks[id]
	if !ok {
		return nil, ErrNotFound
	}
	if !status.Valid() {
		return nil, &IntegrityError{Entity: "task", Ref: "status", Reason: "unknown status " + string(status)}
	}
	t.Status = status
	return cloneTask(t), nil
}

func (s *taskStore) List(_ context.Context) ([]model.Task, error) {
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()

	out := make([]model.Task, 0, len(s.m.taskOrder))
	for _, id := range s.m.taskOrder {
		out = append(out, *cloneTask(s.m.tasks[id]))
	}
	return out, nil
}

func (s *taskStore) ListByChannel(_ context.Context, channelID string) ([]model.Task, error) {
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()

	var out []model.Task
	for _, id := range s.m.taskOrder {
		if t := s.m.tasks[id]; t.ChannelID == channelID {
			out = append(out, *cloneTask(t))
		}
	}
	return out, nil
}

// ListBoard returns home tasks first, then linked tasks in link order.
func (s *taskStore) ListBoard(_ context.Context, channelID string) ([]model.Task, error) {
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()

	ch, ok := s.m.channels[channelID]
	if !ok {
		return nil, ErrNotFound
	}

	var out []model.Task
	for _, id := range s.m.taskOrder {
		if t := s.m.tasks[id]; t.ChannelID == channelID {
			out = append(out, *cloneTask(t))
		}
	}
	for _, taskID := range ch.LinkedTaskIDs {
		if t, exists := s.m.tasks[taskID]; exists && !slices.ContainsFunc(out, func(have model.Task) bool { return have.ID == taskID }) {
			out = append(out, *cloneTask(t))
		}
	}
	return out, nil
}
