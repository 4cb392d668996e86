package queue

type TaskType string

const (
	// TaskTypeInviteEmail delivers the invitation email for a newly
	// created invite.
	TaskTypeInviteEmail TaskType = "invite_email"
	// TaskTypeTaskStatusChanged fans out a kanban status transition so
	// interested consumers (activity feeds, notifications) can react.
	TaskTypeTaskStatusChanged TaskType = "task_status_changed"
)

type Task struct {
	TaskType TaskType
	Attempt  int
	TraceID  string

	// Invite delivery tasks are self-contained: the worker builds the
	// email from the payload without reaching back into the server's
	// entity graph.
	InviteID      string
	InvitedEmail  string
	InviteMessage string
	ChannelID     string
	ChannelName   string
	WorkspaceID   string

	TaskID     string
	FromStatus string
	ToStatus   string
}
