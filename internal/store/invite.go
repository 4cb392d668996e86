package store

import (
	"context"
	"errors"
	"strings"
	"time"

	"manageme.app/hub/internal/model"
)

// ErrInviteResolved is returned when resolving an invite that has
// already reached a terminal status.
var ErrInviteResolved = errors.New("invite already resolved")

type inviteStore struct {
	m *Memory
}

func (s *inviteStore) GetByID(_ context.Context, id string) (*model.Invite, error) {
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()

	inv, ok := s.m.invites[id]
	if !ok {
		return nil, ErrNotFound
	}
	return cloneInvite(inv), nil
}

func (s *inviteStore) GetPending(_ context.Context, channelID, email string) (*model.Invite, error) {
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()

	for _, id := range s.m.inviteOrder {
		inv := s.m.invites[id]
		if inv.ChannelID == channelID && strings.EqualFold(inv.InvitedEmail, email) && inv.Status == model.InviteStatusPending {
			return cloneInvite(inv), nil
		}
	}
	return nil, ErrNotFound
}

func (s *inviteStore) Create(_ context.Context, inv *model.Invite) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()

	if _, exists := s.m.invites[inv.ID]; exists {
		return &IntegrityError{Entity: "invite", Ref: "id", Reason: "duplicate id " + inv.ID}
	}
	ch, ok := s.m.channels[inv.ChannelID]
	if !ok {
		return &IntegrityError{Entity: "invite", Ref: "channel_id", Reason: "channel " + inv.ChannelID + " does not exist"}
	}
	if ch.WorkspaceID != inv.WorkspaceID {
		return &IntegrityError{Entity: "invite", Ref: "workspace_id", Reason: "channel belongs to workspace " + ch.WorkspaceID}
	}

	s.m.invites[inv.ID] = cloneInvite(inv)
	s.m.inviteOrder = append(s.m.inviteOrder, inv.ID)
	return nil
}

func (s *inviteStore) Resolve(_ context.Context, id string, status model.InviteStatus) (*model.Invite, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()

	inv, ok := s.m.invites[id]
	if !ok {
		return nil, ErrNotFound
	}
	if inv.Status != model.InviteStatusPending {
		return nil, ErrInviteResolved
	}
	if status != model.InviteStatusAccepted && status != model.InviteStatusRejected {
		return nil, &IntegrityError{Entity: "invite", Ref: "status", Reason: "invalid resolution " + string(status)}
	}

	now := time.Now().UTC()
	inv.Status = status
	inv.ResolvedAt = &now
	return cloneInvite(inv), nil
}

func (s *inviteStore) ListByChannel(_ context.Context, channelID string) ([]model.Invite, error) {
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()

	var out []model.Invite
	for _, id := range s.m.inviteOrder {
		if inv := s.m.invites[id]; inv.ChannelID == channelID {
			out = append(out, *cloneInvite(inv))
		}
	}
	return out, nil
}

func (s *inviteStore) ListPending(_ context.Context) ([]model.Invite, error) {
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()

	var out []model.Invite
	for _, id := range s.m.inviteOrder {
		if inv := s.m.invites[id]; inv.Status == model.InviteStatusPending {
			out = append(out, *cloneInvite(inv))
		}
	}
	return out, nil
}
