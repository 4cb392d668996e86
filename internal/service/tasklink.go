package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"manageme.app/hub/internal/model"
	"manageme.app/hub/internal/store"
)

// TaskLinkService surfaces tasks from one channel on another channel's
// board. Linking is additive and referential: the task keeps its home
// channel, it is simply visible in both places.
type TaskLinkService interface {
	// Candidates returns every task in the cross-workspace universe
	// that is not already on the target channel's board.
	Candidates(ctx context.Context, channelID string) ([]model.Task, error)
	Link(ctx context.Context, channelID string, taskIDs []string) error
}

type taskLinkService struct {
	channels store.ChannelStore
	tasks    store.TaskStore
}

func NewTaskLinkService(channels store.ChannelStore, tasks store.TaskStore) TaskLinkService {
	return &taskLinkService{
		channels: channels,
		tasks:    tasks,
	}
}

func (s *taskLinkService) Candidates(ctx context.Context, channelID string) ([]model.Task, error) {
	ch, err := s.channels.GetByID(ctx, channelID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrChannelNotFound
		}
		return nil, fmt.Errorf("fetching channel: %w", err)
	}

	all, err := s.tasks.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}

	var candidates []model.Task
	for _, t := range all {
		if t.ChannelID == channelID || ch.HasLinkedTask(t.ID) {
			continue
		}
		candidates = append(candidates, t)
	}
	return candidates, nil
}

func (s *taskLinkService) Link(ctx context.Context, channelID string, taskIDs []string) error {
	if len(taskIDs) == 0 {
		return invalid(FieldError{Field: "task_ids", Message: "Select at least one task to link"})
	}

	if err := s.channels.AddLinkedTasks(ctx, channelID, taskIDs); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrChannelNotFound
		}
		return fmt.Errorf("linking tasks: %w", err)
	}

	slog.InfoContext(ctx, "tasks linked to channel",
		"channel_id", channelID,
		"count", len(taskIDs),
	)
	return nil
}
