package worker

import (
	"context"
	"fmt"
	"log/slog"

	"manageme.app/hub/internal/queue"
)

// Processor handles queue tasks from their payload alone. Invite tasks
// carry everything the email needs, so the worker never reaches back
// into the server's entity graph.
type Processor struct {
	mailer Mailer
	cfg    ProcessorConfig
}

type ProcessorConfig struct {
	// DashboardURL is embedded in invite emails so recipients land on
	// the right deployment.
	DashboardURL string
}

func NewProcessor(mailer Mailer, cfg ProcessorConfig) *Processor {
	return &Processor{mailer: mailer, cfg: cfg}
}

func (p *Processor) Process(ctx context.Context, task queue.Task) error {
	switch task.TaskType {
	case queue.TaskTypeInviteEmail:
		return p.deliverInvite(ctx, task)
	case queue.TaskTypeTaskStatusChanged:
		return p.recordStatusChange(ctx, task)
	default:
		return fmt.Errorf("unknown task type %q", task.TaskType)
	}
}

func (p *Processor) deliverInvite(ctx context.Context, task queue.Task) error {
	email := Email{
		To:      task.InvitedEmail,
		Subject: fmt.Sprintf("You've been invited to #%s", task.ChannelName),
		Body:    inviteBody(task, p.cfg.DashboardURL),
	}
	if err := p.mailer.Send(ctx, email); err != nil {
		return fmt.Errorf("sending invite email: %w", err)
	}

	slog.InfoContext(ctx, "invite email sent",
		"invite_id", task.InviteID,
		"email", task.InvitedEmail)
	return nil
}

func (p *Processor) recordStatusChange(ctx context.Context, task queue.Task) error {
	slog.InfoContext(ctx, "task status changed",
		"task_id", task.TaskID,
		"channel_id", task.ChannelID,
		"workspace_id", task.WorkspaceID,
		"from", task.FromStatus,
		"to", task.ToStatus)
	return nil
}

func inviteBody(task queue.Task, dashboardURL string) string {
	body := fmt.Sprintf("You have been invited to join the #%s channel.", task.ChannelName)
	if task.InviteMessage != "" {
		body += "\n\n" + task.InviteMessage
	}
	if dashboardURL != "" {
		body += fmt.Sprintf("\n\nAccept or decline at %s/invites/%s", dashboardURL, task.InviteID)
	}
	return body
}
