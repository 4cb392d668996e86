package queue

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel/trace"
)

type Producer interface {
	Enqueue(ctx context.Context, task Task) error
	Close() error
}

type redisProducer struct {
	client *redis.Client
	stream string
	logger *slog.Logger
}

func NewRedisProducer(client *redis.Client, stream string, logger *slog.Logger) Producer {
	if logger == nil {
		logger = slog.Default()
	}
	return &redisProducer{
		client: client,
		stream: stream,
		logger: logger,
	}
}

func (p *redisProducer) Enqueue(ctx context.Context, task Task) error {
	attempt := task.Attempt
	if attempt <= 0 {
		attempt = 1
	}

	// Propagate the active trace across the stream so worker spans link
	// back to the originating request.
	if task.TraceID == "" {
		if sc := trace.SpanContextFromContext(ctx); sc.HasTraceID() {
			task.TraceID = sc.TraceID().String()
		}
	}

	if err := p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: p.stream,
		Values: taskValues(task, attempt),
	}).Err(); err != nil {
		return fmt.Errorf("enqueue task: %w", err)
	}

	p.logger.InfoContext(ctx, "enqueued task",
		"task_type", task.TaskType,
		"invite_id", task.InviteID,
		"task_id", task.TaskID,
		"attempt", attempt)
	return nil
}

func (p *redisProducer) Close() error {
	return p.client.Close()
}

func taskValues(task Task, attempt int) map[string]any {
	values := map[string]any{
		"task_type": string(task.TaskType),
		"attempt":   attempt,
	}
	if task.TraceID != "" {
		values["trace_id"] = task.TraceID
	}
	if task.InviteID != "" {
		values["invite_id"] = task.InviteID
	}
	if task.InvitedEmail != "" {
		values["invited_email"] = task.InvitedEmail
	}
	if task.InviteMessage != "" {
		values["invite_message"] = task.InviteMessage
	}
	if task.ChannelID != "" {
		values["channel_id"] = task.ChannelID
	}
	if task.ChannelName != "" {
		values["channel_name"] = task.ChannelName
	}
	if task.WorkspaceID != "" {
		values["workspace_id"] = task.WorkspaceID
	}
	if task.TaskID != "" {
		values["task_id"] = task.TaskID
	}
	if task.FromStatus != "" {
		values["from_status"] = task.FromStatus
	}
	if task.ToStatus != "" {
		values["to_status"] = task.ToStatus
	}
	return values
}
