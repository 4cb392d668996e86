package service

import (
	"context"
	"errors"
	"fmt"

	"manageme.app/hub/internal/model"
	"manageme.app/hub/internal/store"
)

// MembershipService derives what the acting user can see from the raw
// entity graph. Pure reads, no side effects.
type MembershipService interface {
	VisibleWorkspaces(ctx context.Context, userID string) ([]model.Workspace, error)
	VisibleChannels(ctx context.Context, userID, workspaceID string) ([]model.Channel, error)
	// VisibleChannel resolves a channel the user is a member of. Channels
	// the user does not belong to report ErrNotVisible, same as a channel
	// that does not exist, so membership cannot be probed by id.
	VisibleChannel(ctx context.Context, userID, channelID string) (*model.Channel, error)
	// GroupedChannels splits the visible channels by kind for display
	// grouping (public section first, then private).
	GroupedChannels(ctx context.Context, userID, workspaceID string) (public, private []model.Channel, err error)
}

type membershipService struct {
	workspaces store.WorkspaceStore
	channels   store.ChannelStore
}

func NewMembershipService(workspaces store.WorkspaceStore, channels store.ChannelStore) MembershipService {
	return &membershipService{
		workspaces: workspaces,
		channels:   channels,
	}
}

func (s *membershipService) VisibleWorkspaces(ctx context.Context, userID string) ([]model.Workspace, error) {
	return s.workspaces.ListByMember(ctx, userID)
}

// VisibleChannels filters by the channel's own membership. Workspace
// membership is necessary but not sufficient: a workspace member sees
// only the channels they belong to, public or private.
func (s *membershipService) VisibleChannels(ctx context.Context, userID, workspaceID string) ([]model.Channel, error) {
	all, err := s.channels.ListByWorkspace(ctx, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("listing channels: %w", err)
	}

	var visible []model.Channel
	for _, ch := range all {
		if ch.HasMember(userID) {
			visible = append(visible, ch)
		}
	}
	return visible, nil
}

func (s *membershipService) VisibleChannel(ctx context.Context, userID, channelID string) (*model.Channel, error) {
	ch, err := s.channels.GetByID(ctx, channelID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrChannelNotFound
		}
		return nil, fmt.Errorf("getting channel: %w", err)
	}

	if !ch.HasMember(userID) {
		return nil, ErrNotVisible
	}
	return ch, nil
}

func (s *membershipService) GroupedChannels(ctx context.Context, userID, workspaceID string) ([]model.Channel, []model.Channel, error) {
	visible, err := s.VisibleChannels(ctx, userID, workspaceID)
	if err != nil {
		return nil, nil, err
	}

	var public, private []model.Channel
	for _, ch := range visible {
		if ch.Kind == model.ChannelKindPrivate {
			private = append(private, ch)
		} else {
			public = append(public, ch)
		}
	}
	return public, private, nil
}
