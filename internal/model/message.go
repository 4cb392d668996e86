package model

import "time"

// Message is append-only. Author name and avatar are denormalized so a
// channel transcript renders without a user lookup per row.
type Message struct {
	ID         string    `json:"id"`
	ChannelID  string    `json:"channel_id"`
	UserID     string    `json:"user_id"`
	UserName   string    `json:"user_name"`
	UserAvatar string    `json:"user_avatar"`
	Content    string    `json:"content"`
	Timestamp  time.Time `json:"timestamp"`
	Edited     bool      `json:"edited,omitempty"`
}
