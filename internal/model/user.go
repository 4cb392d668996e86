package model

import "time"

type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Avatar    string    `json:"avatar"` // short label shown next to messages, e.g. initials
	CreatedAt time.Time `json:"created_at"`
}
