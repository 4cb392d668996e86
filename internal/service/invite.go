package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"sync"
	"time"

	"manageme.app/hub/common/id"
	"manageme.app/hub/internal/model"
	"manageme.app/hub/internal/queue"
	"manageme.app/hub/internal/store"
)

var (
	ErrInviteNotFound      = errors.New("invite not found")
	ErrInviteResolved      = errors.New("invite has already been resolved")
	ErrInvitePendingExists = errors.New("a pending invite already exists for this email")
	// ErrInviteInFlight is the explicit form of the submit-button
	// debounce: a send for the same channel and email is still being
	// processed, so the duplicate is refused rather than queued.
	ErrInviteInFlight = errors.New("an invite for this email is already being sent")

	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

type InviteService interface {
	Send(ctx context.Context, channelID, email, message, invitedBy string) (*model.Invite, error)
	// Accept resolves a pending invite and, when the invited email
	// belongs to a known user, adds them to the workspace and channel.
	Accept(ctx context.Context, inviteID string) (*model.Invite, error)
	Reject(ctx context.Context, inviteID string) (*model.Invite, error)
	ListByChannel(ctx context.Context, channelID string) ([]model.Invite, error)
	ListPending(ctx context.Context) ([]model.Invite, error)
}

type inviteService struct {
	invites    store.InviteStore
	channels   store.ChannelStore
	workspaces store.WorkspaceStore
	users      store.UserStore
	producer   queue.Producer

	mu       sync.Mutex
	inFlight map[string]bool // channelID + "\x00" + lowercased email
}

func NewInviteService(
	invites store.InviteStore,
	channels store.ChannelStore,
	workspaces store.WorkspaceStore,
	users store.UserStore,
	producer queue.Producer,
) InviteService {
	return &inviteService{
		invites:    invites,
		channels:   channels,
		workspaces: workspaces,
		users:      users,
		producer:   producer,
		inFlight:   make(map[string]bool),
	}
}

func (s *inviteService) Send(ctx context.Context, channelID, email, message, invitedBy string) (*model.Invite, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, invalid(FieldError{Field: "email", Message: "Email address is required"})
	}
	if !emailPattern.MatchString(email) {
		return nil, invalid(FieldError{Field: "email", Message: "Enter a valid email address"})
	}

	ch, err := s.channels.GetByID(ctx, channelID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrChannelNotFound
		}
		return nil, fmt.Errorf("fetching channel: %w", err)
	}

	key := channelID + "\x00" + email
	s.mu.Lock()
	if s.inFlight[key] {
		s.mu.Unlock()
		return nil, ErrInviteInFlight
	}
	s.inFlight[key] = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		delete(s.inFlight, key)
		s.mu.Unlock()
	}()

	if existing, err := s.invites.GetPending(ctx, channelID, email); err == nil && existing != nil {
		return nil, ErrInvitePendingExists
	}

	inv := &model.Invite{
		ID:           id.New("inv"),
		ChannelID:    channelID,
		ChannelName:  ch.Name,
		WorkspaceID:  ch.WorkspaceID,
		InvitedBy:    invitedBy,
		InvitedEmail: email,
		Message:      strings.TrimSpace(message),
		Status:       model.InviteStatusPending,
		SentAt:       time.Now().UTC(),
	}

	if err := s.invites.Create(ctx, inv); err != nil {
		return nil, fmt.Errorf("creating invite: %w", err)
	}

	if err := s.producer.Enqueue(ctx, queue.Task{
		TaskType:      queue.TaskTypeInviteEmail,
		InviteID:      inv.ID,
		InvitedEmail:  email,
		InviteMessage: inv.Message,
		ChannelID:     channelID,
		ChannelName:   ch.Name,
		WorkspaceID:   ch.WorkspaceID,
	}); err != nil {
		// The invite stays pending; delivery will be retried when the
		// queue recovers rather than silently dropped.
		slog.ErrorContext(ctx, "failed to enqueue invite delivery", "error", err, "invite_id", inv.ID)
		return nil, fmt.Errorf("enqueueing invite delivery: %w", err)
	}

	slog.InfoContext(ctx, "invite created",
		"invite_id", inv.ID,
		"channel_id", channelID,
		"email", email,
	)
	return inv, nil
}

func (s *inviteService) Accept(ctx context.Context, inviteID string) (*model.Invite, error) {
	inv, err := s.resolve(ctx, inviteID, model.InviteStatusAccepted)
	if err != nil {
		return nil, err
	}

	// Joining is best effort: the invited address may not have an
	// account yet, in which case membership is granted at signup.
	user, err := s.users.GetByEmail(ctx, inv.InvitedEmail)
	if err == nil {
		if err := s.workspaces.AddMember(ctx, inv.WorkspaceID, user.ID); err != nil {
			return nil, fmt.Errorf("adding workspace member: %w", err)
		}
		if err := s.channels.AddMember(ctx, inv.ChannelID, user.ID); err != nil {
			return nil, fmt.Errorf("adding channel member: %w", err)
		}
		slog.InfoContext(ctx, "invited user joined channel",
			"invite_id", inviteID,
			"user_id", user.ID,
			"channel_id", inv.ChannelID,
		)
	}

	return inv, nil
}

func (s *inviteService) Reject(ctx context.Context, inviteID string) (*model.Invite, error) {
	return s.resolve(ctx, inviteID, model.InviteStatusRejected)
}

func (s *inviteService) resolve(ctx context.Context, inviteID string, status model.InviteStatus) (*model.Invite, error) {
	inv, err := s.invites.Resolve(ctx, inviteID, status)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			return nil, ErrInviteNotFound
		case errors.Is(err, store.ErrInviteResolved):
			return nil, ErrInviteResolved
		}
		return nil, fmt.Errorf("resolving invite: %w", err)
	}

	slog.InfoContext(ctx, "invite resolved",
		"invite_id", inviteID,
		"status", status,
	)
	return inv, nil
}

func (s *inviteService) ListByChannel(ctx context.Context, channelID string) ([]model.Invite, error) {
	return s.invites.ListByChannel(ctx, channelID)
}

func (s *inviteService) ListPending(ctx context.Context) ([]model.Invite, error) {
	return s.invites.ListPending(ctx)
}
