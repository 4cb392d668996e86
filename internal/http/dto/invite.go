package dto

import (
	"time"

	"manageme.app/hub/internal/model"
)

type SendInviteRequest struct {
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message,omitempty" binding:"omitempty,max=1024"`
}

type InviteResponse struct {
	ID           string     `json:"id"`
	ChannelID    string     `json:"channel_id"`
	ChannelName  string     `json:"channel_name"`
	WorkspaceID  string     `json:"workspace_id"`
	InvitedBy    string     `json:"invited_by"`
	InvitedEmail string     `json:"invited_email"`
	Message      string     `json:"message,omitempty"`
	Status       string     `json:"status"`
	SentAt       time.Time  `json:"sent_at"`
	ResolvedAt   *time.Time `json:"resolved_at,omitempty"`
}

func ToInviteResponse(inv *model.Invite) *InviteResponse {
	return &InviteResponse{
		ID:           inv.ID,
		ChannelID:    inv.ChannelID,
		ChannelName:  inv.ChannelName,
		WorkspaceID:  inv.WorkspaceID,
		InvitedBy:    inv.InvitedBy,
		InvitedEmail: inv.InvitedEmail,
		Message:      inv.Message,
		Status:       string(inv.Status),
		SentAt:       inv.SentAt,
		ResolvedAt:   inv.ResolvedAt,
	}
}

func ToInviteResponses(invites []model.Invite) []InviteResponse {
	out := make([]InviteResponse, len(invites))
	for i := range invites {
		out[i] = *ToInviteResponse(&invites[i])
	}
	return out
}
