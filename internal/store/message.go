package store

import (
	"context"
	"sort"

	"manageme.app/hub/internal/model"
)

type messageStore struct {
	m *Memory
}

func (s *messageStore) GetByID(_ context.Context, id string) (*model.Message, error) {
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()

	msg, ok := s.m.messages[id]
	if !ok {
		return nil, ErrNotFound
	}
	return cloneMessage(msg), nil
}

func (s *messageStore) Create(_ context.Context, msg *model.Message) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()

	if _, exists := s.m.messages[msg.ID]; exists {
		return &IntegrityError{Entity: "message", Ref: "id", Reason: "duplicate id " + msg.ID}
	}
	if _, ok := s.m.channels[msg.ChannelID]; !ok {
		return &IntegrityError{Entity: "message", Ref: "channel_id", Reason: "channel " + msg.ChannelID + " does not exist"}
	}

	s.m.messages[msg.ID] = cloneMessage(msg)
	s.m.messageOrder = append(s.m.messageOrder, msg.ID)
	return nil
}

func (s *messageStore) SetContent(_ context.Context, id, content string) (*model.Message, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()

	msg, ok := s.m.messages[id]
	if !ok {
		return nil, ErrNotFound
	}
	msg.Content = content
	msg.Edited = true
	return cloneMessage(msg), nil
}

// ListByChannel returns the channel transcript ordered by timestamp ascending.
func (s *messageStore) ListByChannel(_ context.Context, channelID string) ([]model.Message, error) {
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()

	var out []model.Message
	for _, id := range s.m.messageOrder {
		if msg := s.m.messages[id]; msg.ChannelID == channelID {
			out = append(out, *cloneMessage(msg))
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.Before(out[j].Timestamp)
	})
	return out, nil
}
