package store

import (
	"slices"
	"sync"

	"manageme.app/hub/internal/model"
)

// Memory holds the process-local entity graph. Every mutation goes
// through the typed store views returned by the accessor methods; the
// graph is never handed out directly, and reads return copies so
// callers cannot alias interior state. A single RWMutex serializes all
// graph access.
type Memory struct {
	mu sync.RWMutex

	users      map[string]*model.User
	workspaces map[string]*model.Workspace
	channels   map[string]*model.Channel
	messages   map[string]*model.Message
	tasks      map[string]*model.Task
	invites    map[string]*model.Invite

	// insertion order, for stable listings
	userOrder      []string
	workspaceOrder []string
	channelOrder   []string
	messageOrder   []string
	taskOrder      []string
	inviteOrder    []string
}

func NewMemory() *Memory {
	return &Memory{
		users:      make(map[string]*model.User),
		workspaces: make(map[string]*model.Workspace),
		channels:   make(map[string]*model.Channel),
		messages:   make(map[string]*model.Message),
		tasks:      make(map[string]*model.Task),
		invites:    make(map[string]*model.Invite),
	}
}

func (m *Memory) Users() UserStore {
	return &userStore{m: m}
}

func (m *Memory) Workspaces() WorkspaceStore {
	return &workspaceStore{m: m}
}

func (m *Memory) Channels() ChannelStore {
	return &channelStore{m: m}
}

func (m *Memory) Messages() MessageStore {
	return &messageStore{m: m}
}

func (m *Memory) Tasks() TaskStore {
	return &taskStore{m: m}
}

func (m *Memory) Invites() InviteStore {
	return &inviteStore{m: m}
}

// --- copy-out helpers -------------------------------------------------------

func cloneUser(u *model.User) *model.User {
	c := *u
	return &c
}

func cloneWorkspace(w *model.Workspace) *model.Workspace {
	c := *w
	c.MemberIDs = slices.Clone(w.MemberIDs)
	return &c
}

func cloneChannel(ch *model.Channel) *model.Channel {
	c := *ch
	c.MemberIDs = slices.Clone(ch.MemberIDs)
	c.LinkedTaskIDs = slices.Clone(ch.LinkedTaskIDs)
	return &c
}

func cloneMessage(msg *model.Message) *model.Message {
	c := *msg
	return &c
}

func cloneTask(t *model.Task) *model.Task {
	c := *t
	c.AssignedTo = slices.Clone(t.AssignedTo)
	if t.DueDate != nil {
		due := *t.DueDate
		c.DueDate = &due
	}
	return &c
}

func cloneInvite(inv *model.Invite) *model.Invite {
	c := *inv
	if inv.ResolvedAt != nil {
		at := *inv.ResolvedAt
		c.ResolvedAt = &at
	}
	return &c
}
