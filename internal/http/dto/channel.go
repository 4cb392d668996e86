package dto

import (
	"time"

	"manageme.app/hub/internal/model"
)

type CreateChannelRequest struct {
	// Name is normalized server-side: lowercased, spaces become hyphens.
	Name        string `json:"name" binding:"required,min=1,max=255"`
	Description string `json:"description" binding:"required,min=1,max=1024"`
	Kind        string `json:"kind" binding:"required,oneof=public private"`
}

type ChannelResponse struct {
	ID            string    `json:"id"`
	WorkspaceID   string    `json:"workspace_id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Kind          string    `json:"kind"`
	MemberIDs     []string  `json:"member_ids"`
	LinkedTaskIDs []string  `json:"linked_task_ids,omitempty"`
	CreatedBy     string    `json:"created_by"`
	CreatedAt     time.Time `json:"created_at"`
}

func ToChannelResponse(ch *model.Channel) *ChannelResponse {
	return &ChannelResponse{
		ID:            ch.ID,
		WorkspaceID:   ch.WorkspaceID,
		Name:          ch.Name,
		Description:   ch.Description,
		Kind:          string(ch.Kind),
		MemberIDs:     ch.MemberIDs,
		LinkedTaskIDs: ch.LinkedTaskIDs,
		CreatedBy:     ch.CreatedBy,
		CreatedAt:     ch.CreatedAt,
	}
}

func ToChannelResponses(channels []model.Channel) []ChannelResponse {
	out := make([]ChannelResponse, len(channels))
	for i := range channels {
		out[i] = *ToChannelResponse(&channels[i])
	}
	return out
}

// GroupedChannelsResponse mirrors the sidebar split between public and
// private channels.
type GroupedChannelsResponse struct {
	Public  []ChannelResponse `json:"public"`
	Private []ChannelResponse `json:"private"`
}

type LinkTasksRequest struct {
	TaskIDs []string `json:"task_ids" binding:"required,min=1"`
}
