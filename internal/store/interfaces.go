package store

import (
	"context"

	"manageme.app/hub/internal/model"
)

// UserStore defines the contract for user data access
type UserStore interface {
	GetByID(ctx context.Context, id string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	Create(ctx context.Context, user *model.User) error
	List(ctx context.Context) ([]model.User, error)
}

// WorkspaceStore defines the contract for workspace data access
type WorkspaceStore interface {
	GetByID(ctx context.Context, id string) (*model.Workspace, error)
	Create(ctx context.Context, ws *model.Workspace) error
	AddMember(ctx context.Context, id, userID string) error
	// Delete removes the workspace and cascades removal of its
	// channels, messages and tasks. All-or-nothing.
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]model.Workspace, error)
	ListByMember(ctx context.Context, userID string) ([]model.Workspace, error)
}

// ChannelStore defines the contract for channel data access
type ChannelStore interface {
	GetByID(ctx context.Context, id string) (*model.Channel, error)
	Create(ctx context.Context, ch *model.Channel) error
	AddMember(ctx context.Context, id, userID string) error
	// AddLinkedTasks appends task references to the channel's board.
	// Already-linked and home-channel tasks are rejected.
	AddLinkedTasks(ctx context.Context, id string, taskIDs []string) error
	ListByWorkspace(ctx context.Context, workspaceID string) ([]model.Channel, error)
}

// MessageStore defines the contract for message data access
type MessageStore interface {
	GetByID(ctx context.Context, id string) (*model.Message, error)
	Create(ctx context.Context, msg *model.Message) error
	// SetContent replaces the message body and marks it edited.
	SetContent(ctx context.Context, id, content string) (*model.Message, error)
	ListByChannel(ctx context.Context, channelID string) ([]model.Message, error)
}

// TaskStore defines the contract for task data access
type TaskStore interface {
	GetByID(ctx context.Context, id string) (*model.Task, error)
	Create(ctx context.Context, task *model.Task) error
	SetStatus(ctx context.Context, id string, status model.TaskStatus) (*model.Task, error)
	List(ctx context.Context) ([]model.Task, error)
	// ListByChannel returns tasks whose home is the channel, by provenance.
	ListByChannel(ctx context.Context, channelID string) ([]model.Task, error)
	// ListBoard returns the channel's full board: home tasks plus linked tasks.
	ListBoard(ctx context.Context, channelID string) ([]model.Task, error)
}

// InviteStore defines the contract for invite data access
type InviteStore interface {
	GetByID(ctx context.Context, id string) (*model.Invite, error)
	GetPending(ctx context.Context, channelID, email string) (*model.Invite, error)
	Create(ctx context.Context, inv *model.Invite) error
	// Resolve transitions a pending invite to a terminal status exactly once.
	Resolve(ctx context.Context, id string, status model.InviteStatus) (*model.Invite, error)
	ListByChannel(ctx context.Context, channelID string) ([]model.Invite, error)
	ListPending(ctx context.Context) ([]model.Invite, error)
}
