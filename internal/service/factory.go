package service

import (
	"manageme.app/hub/internal/queue"
	"manageme.app/hub/internal/store"
)

// Services wires every service over a shared store. Each service is
// constructed once: selection state, pending delete tokens and the
// invite debounce all live in memory, so handlers must share instances.
type Services struct {
	memberships MembershipService
	selections  SelectionService
	workspaces  WorkspaceService
	channels    ChannelService
	kanban      KanbanService
	taskLinks   TaskLinkService
	invites     InviteService
	messages    MessageService
}

func NewServices(mem *store.Memory, producer queue.Producer) *Services {
	users := mem.Users()
	workspaces := mem.Workspaces()
	channels := mem.Channels()
	messages := mem.Messages()
	tasks := mem.Tasks()
	invites := mem.Invites()

	memberships := NewMembershipService(workspaces, channels)
	selections := NewSelectionService(workspaces, channels, memberships)
	kanban := NewKanbanService(tasks, channels, producer)

	return &Services{
		memberships: memberships,
		selections:  selections,
		workspaces:  NewWorkspaceService(workspaces, users, selections),
		channels:    NewChannelService(workspaces, channels, selections),
		kanban:      kanban,
		taskLinks:   NewTaskLinkService(channels, tasks),
		invites:     NewInviteService(invites, channels, workspaces, users, producer),
		messages:    NewMessageService(messages, channels, users),
	}
}

func (s *Services) Memberships() MembershipService { return s.memberships }
func (s *Services) Selections() SelectionService   { return s.selections }
func (s *Services) Workspaces() WorkspaceService   { return s.workspaces }
func (s *Services) Channels() ChannelService       { return s.channels }
func (s *Services) Kanban() KanbanService          { return s.kanban }
func (s *Services) TaskLinks() TaskLinkService     { return s.taskLinks }
func (s *Services) Invites() InviteService         { return s.invites }
func (s *Services) Messages() MessageService       { return s.messages }
