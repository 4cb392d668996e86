package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"manageme.app/hub/common"
	"manageme.app/hub/common/id"
	"manageme.app/hub/internal/model"
	"manageme.app/hub/internal/store"
)

var ErrChannelNotFound = errors.New("channel not found")

type ChannelService interface {
	Create(ctx context.Context, workspaceID, name, description string, kind model.ChannelKind, creatorID string) (*model.Channel, error)
	Get(ctx context.Context, id string) (*model.Channel, error)
	// Join adds a workspace member to a public channel.
	Join(ctx context.Context, channelID, userID string) error
}

type channelService struct {
	workspaces store.WorkspaceStore
	channels   store.ChannelStore
	selections SelectionService
}

func NewChannelService(workspaces store.WorkspaceStore, channels store.ChannelStore, selections SelectionService) ChannelService {
	return &channelService{
		workspaces: workspaces,
		channels:   channels,
		selections: selections,
	}
}

func (s *channelService) Create(ctx context.Context, workspaceID, name, description string, kind model.ChannelKind, creatorID string) (*model.Channel, error) {
	description = strings.TrimSpace(description)

	var fields []FieldError
	normalized, err := common.NormalizeChannelName(name)
	switch {
	case errors.Is(err, common.ErrEmptyChannelName):
		fields = append(fields, FieldError{Field: "name", Message: "Channel name is required"})
	case errors.Is(err, common.ErrInvalidChannelName):
		fields = append(fields, FieldError{Field: "name", Message: "Channel name can only contain lowercase letters, numbers, and hyphens"})
	}
	if description == "" {
		fields = append(fields, FieldError{Field: "description", Message: "Description is required"})
	}
	if !kind.Valid() {
		fields = append(fields, FieldError{Field: "kind", Message: "Channel must be public or private"})
	}
	if len(fields) > 0 {
		return nil, invalid(fields...)
	}

	ws, err := s.workspaces.GetByID(ctx, workspaceID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrWorkspaceNotFound
		}
		return nil, fmt.Errorf("fetching workspace: %w", err)
	}
	if !ws.HasMember(creatorID) {
		return nil, ErrPermissionDenied
	}

	ch := &model.Channel{
		ID:          id.New("ch"),
		WorkspaceID: workspaceID,
		Name:        normalized,
		Description: description,
		Kind:        kind,
		MemberIDs:   []string{creatorID},
		CreatedBy:   creatorID,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.channels.Create(ctx, ch); err != nil {
		return nil, fmt.Errorf("creating channel: %w", err)
	}

	// The new channel becomes the creator's active selection, with the
	// tab reset to messages.
	if _, err := s.selections.SelectChannel(ctx, creatorID, ch.ID); err != nil {
		slog.WarnContext(ctx, "failed to select created channel", "error", err, "channel_id", ch.ID)
	}

	slog.InfoContext(ctx, "channel created",
		"channel_id", ch.ID,
		"workspace_id", workspaceID,
		"name", normalized,
		"kind", kind,
	)
	return ch, nil
}

func (s *channelService) Get(ctx context.Context, chID string) (*model.Channel, error) {
	ch, err := s.channels.GetByID(ctx, chID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrChannelNotFound
		}
		return nil, fmt.Errorf("fetching channel: %w", err)
	}
	return ch, nil
}

func (s *channelService) Join(ctx context.Context, channelID, userID string) error {
	ch, err := s.Get(ctx, channelID)
	if err != nil {
		return err
	}
	if ch.Kind == model.ChannelKindPrivate {
		return ErrPermissionDenied
	}

	if err := s.channels.AddMember(ctx, channelID, userID); err != nil {
		return fmt.Errorf("joining channel: %w", err)
	}

	slog.InfoContext(ctx, "user joined channel", "channel_id", channelID, "user_id", userID)
	return nil
}
