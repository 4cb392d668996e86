package model

import "time"

type InviteStatus string

const (
	InviteStatusPending  InviteStatus = "pending"
	InviteStatusAccepted InviteStatus = "accepted"
	InviteStatusRejected InviteStatus = "rejected"
)

type Invite struct {
	ID           string       `json:"id"`
	ChannelID    string       `json:"channel_id"`
	ChannelName  string       `json:"channel_name"`
	WorkspaceID  string       `json:"workspace_id"`
	InvitedBy    string       `json:"invited_by"`
	InvitedEmail string       `json:"invited_email"`
	Message      string       `json:"message,omitempty"`
	Status       InviteStatus `json:"status"`
	SentAt       time.Time    `json:"sent_at"`
	ResolvedAt   *time.Time   `json:"resolved_at,omitempty"`
}

// Resolved reports whether the invite has reached a terminal status.
// Status is monotonic: pending resolves exactly once, never reversed.
func (i *Invite) Resolved() bool {
	return i.Status != InviteStatusPending
}
