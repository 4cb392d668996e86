package model

import (
	"slices"
	"time"
)

type ChannelKind string

const (
	ChannelKindPublic  ChannelKind = "public"
	ChannelKindPrivate ChannelKind = "private"
)

func (k ChannelKind) Valid() bool {
	return k == ChannelKindPublic || k == ChannelKindPrivate
}

type Channel struct {
	ID          string      `json:"id"`
	WorkspaceID string      `json:"workspace_id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Kind        ChannelKind `json:"kind"`
	MemberIDs   []string    `json:"member_ids"`

	// LinkedTaskIDs references tasks whose home is another channel but
	// which are also surfaced on this channel's board. Linking is
	// additive; a task's ChannelID always denotes provenance.
	LinkedTaskIDs []string `json:"linked_task_ids,omitempty"`

	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}

func (c *Channel) HasMember(userID string) bool {
	return slices.Contains(c.MemberIDs, userID)
}

func (c *Channel) HasLinkedTask(taskID string) bool {
	return slices.Contains(c.LinkedTaskIDs, taskID)
}
