package model

import (
	"slices"
	"time"
)

type Workspace struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Icon        string    `json:"icon,omitempty"`
	OwnerID     string    `json:"owner_id"`
	MemberIDs   []string  `json:"member_ids"`
	CreatedAt   time.Time `json:"created_at"`
}

// HasMember reports whether the user belongs to the workspace.
// The owner is always a member; the store rejects any state where it isn't.
func (w *Workspace) HasMember(userID string) bool {
	return slices.Contains(w.MemberIDs, userID)
}

func (w *Workspace) IsOwner(userID string) bool {
	return w.OwnerID == userID
}
