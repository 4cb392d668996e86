package store

import (
	"context"
	"strings"

	"manageme.app/hub/internal/model"
)

type userStore struct {
	m *Memory
}

func (s *userStore) GetByID(_ context.Context, id string) (*model.User, error) {
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()

	u, ok := s.m.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return cloneUser(u), nil
}

func (s *userStore) GetByEmail(_ context.Context, email string) (*model.User, error) {
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()

	for _, id := range s.m.userOrder {
		if strings.EqualFold(s.m.users[id].Email, email) {
			return cloneUser(s.m.users[id]), nil
		}
	}
	return nil, ErrNotFound
}

func (s *userStore) Create(_ context.Context, user *model.User) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()

	if _, exists := s.m.users[user.ID]; exists {
		return &IntegrityError{Entity: "user", Ref: "id", Reason: "duplicate id " + user.ID}
	}

	s.m.users[user.ID] = cloneUser(user)
	s.m.userOrder = append(s.m.userOrder, user.ID)
	return nil
}

func (s *userStore) List(_ context.Context) ([]model.User, error) {
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()

	out := make([]model.User, 0, len(s.m.userOrder))
	for _, id := range s.m.userOrder {
		out = append(out, *cloneUser(s.m.users[id]))
	}
	return out, nil
}
