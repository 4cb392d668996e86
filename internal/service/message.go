package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"manageme.app/hub/common/id"
	"manageme.app/hub/internal/model"
	"manageme.app/hub/internal/store"
)

var ErrMessageNotFound = errors.New("message not found")

type MessageService interface {
	Post(ctx context.Context, channelID, userID, content string) (*model.Message, error)
	// Edit replaces the message body. Only the author may edit.
	Edit(ctx context.Context, messageID, userID, content string) (*model.Message, error)
	List(ctx context.Context, channelID string) ([]model.Message, error)
}

type messageService struct {
	messages store.MessageStore
	channels store.ChannelStore
	users    store.UserStore
}

func NewMessageService(messages store.MessageStore, channels store.ChannelStore, users store.UserStore) MessageService {
	return &messageService{messages: messages, channels: channels, users: users}
}

func (s *messageService) Post(ctx context.Context, channelID, userID, content string) (*model.Message, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, invalid(FieldError{Field: "content", Message: "Message cannot be empty"})
	}

	ch, err := s.channels.GetByID(ctx, channelID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrChannelNotFound
		}
		return nil, fmt.Errorf("fetching channel: %w", err)
	}
	if !ch.HasMember(userID) {
		return nil, ErrPermissionDenied
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("fetching author: %w", err)
	}

	msg := &model.Message{
		ID:         id.New("msg"),
		ChannelID:  channelID,
		UserID:     user.ID,
		UserName:   user.Name,
		UserAvatar: user.Avatar,
		Content:    content,
		Timestamp:  time.Now().UTC(),
	}

	if err := s.messages.Create(ctx, msg); err != nil {
		return nil, fmt.Errorf("creating message: %w", err)
	}

	slog.InfoContext(ctx, "message posted",
		"message_id", msg.ID,
		"channel_id", channelID,
		"user_id", userID,
	)
	return msg, nil
}

func (s *messageService) Edit(ctx context.Context, messageID, userID, content string) (*model.Message, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, invalid(FieldError{Field: "content", Message: "Message cannot be empty"})
	}

	msg, err := s.messages.GetByID(ctx, messageID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrMessageNotFound
		}
		return nil, fmt.Errorf("fetching message: %w", err)
	}
	if msg.UserID != userID {
		return nil, ErrPermissionDenied
	}

	updated, err := s.messages.SetContent(ctx, messageID, content)
	if err != nil {
		return nil, fmt.Errorf("updating message: %w", err)
	}
	return updated, nil
}

func (s *messageService) List(ctx context.Context, channelID string) ([]model.Message, error) {
	return s.messages.ListByChannel(ctx, channelID)
}
