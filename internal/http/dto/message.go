package dto

import (
	"time"

	"manageme.app/hub/internal/model"
)

type PostMessageRequest struct {
	Content string `json:"content" binding:"required,min=1,max=8192"`
}

type EditMessageRequest struct {
	Content string `json:"content" binding:"required,min=1,max=8192"`
}

type MessageResponse struct {
	ID         string    `json:"id"`
	ChannelID  string    `json:"channel_id"`
	UserID     string    `json:"user_id"`
	UserName   string    `json:"user_name"`
	UserAvatar string    `json:"user_avatar"`
	Content    string    `json:"content"`
	Timestamp  time.Time `json:"timestamp"`
	Edited     bool      `json:"edited,omitempty"`
}

func ToMessageResponse(msg *model.Message) *MessageResponse {
	return &MessageResponse{
		ID:         msg.ID,
		ChannelID:  msg.ChannelID,
		UserID:     msg.UserID,
		UserName:   msg.UserName,
		UserAvatar: msg.UserAvatar,
		Content:    msg.Content,
		Timestamp:  msg.Timestamp,
		Edited:     msg.Edited,
	}
}

func ToMessageResponses(messages []model.Message) []MessageResponse {
	out := make([]MessageResponse, len(messages))
	for i := range messages {
		out[i] = *ToMessageResponse(&messages[i])
	}
	return out
}
