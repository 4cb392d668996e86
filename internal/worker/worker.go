package worker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"manageme.app/hub/common/logger"
	"manageme.app/hub/internal/queue"
)

// TaskProcessor handles one decoded queue task.
type TaskProcessor interface {
	Process(ctx context.Context, task queue.Task) error
}

type Worker struct {
	consumer  *queue.RedisConsumer
	processor TaskProcessor

	stopCh    chan struct{}
	stoppedCh chan struct{}
}

func New(consumer *queue.RedisConsumer, processor TaskProcessor) *Worker {
	return &Worker{
		consumer:  consumer,
		processor: processor,
		stopCh:    make(chan struct{}),
		stoppedCh: make(chan struct{}),
	}
}

func (w *Worker) Run(ctx context.Context) error {
	defer close(w.stoppedCh)

	slog.InfoContext(ctx, "worker started")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-w.stopCh:
			slog.InfoContext(ctx, "worker stopping")
			return nil
		default:
			if err := w.processOneBatch(ctx); err != nil {
				slog.ErrorContext(ctx, "batch processing error", "error", err)
				// Brief backoff on error
				time.Sleep(time.Second)
			}
		}
	}
}

func (w *Worker) Stop() {
	close(w.stopCh)
	<-w.stoppedCh
}

func (w *Worker) processOneBatch(ctx context.Context) error {
	messages, err := w.consumer.Read(ctx)
	if err != nil {
		return fmt.Errorf("reading from stream: %w", err)
	}

	for _, msg := range messages {
		if err := w.processMessageSafe(ctx, msg); err != nil {
			slog.ErrorContext(ctx, "message processing failed",
				"error", err,
				"message_id", msg.ID,
				"task_type", msg.Task.TaskType)
			w.handleFailedMessage(ctx, msg, err)
			continue
		}

		if ackErr := w.consumer.Ack(ctx, msg); ackErr != nil {
			// Message will be redelivered, which is safe: invite
			// delivery skips resolved invites and status fan-out is
			// idempotent.
			slog.WarnContext(ctx, "failed to ACK message",
				"error", ackErr,
				"message_id", msg.ID)
		}
	}

	return nil
}

func (w *Worker) processMessageSafe(ctx context.Context, msg queue.Message) (err error) {
	defer func() {
		if r := recover(); r != nil {
			slog.ErrorContext(ctx, "panic recovered in message processing",
				"panic", r,
				"message_id", msg.ID)
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return w.ProcessMessage(ctx, msg)
}

func (w *Worker) ProcessMessage(ctx context.Context, msg queue.Message) error {
	sc := logger.StartSpanFromTraceID(ctx, msg.Task.TraceID, "worker.process")
	defer sc.End()
	ctx = sc.Context()

	fields := logger.LogFields{
		Component: "hub.worker",
		MessageID: logger.Ptr(msg.ID),
	}
	if msg.Task.ChannelID != "" {
		fields.ChannelID = logger.Ptr(msg.Task.ChannelID)
	}
	if msg.Task.InviteID != "" {
		fields.InviteID = logger.Ptr(msg.Task.InviteID)
	}
	ctx = logger.WithLogFields(ctx, fields)

	slog.InfoContext(ctx, "processing message",
		"message_id", msg.ID,
		"task_type", msg.Task.TaskType,
		"attempt", msg.Task.Attempt)

	return w.processor.Process(ctx, msg.Task)
}

func (w *Worker) handleFailedMessage(ctx context.Context, msg queue.Message, err error) {
	if msg.Task.Attempt >= w.consumer.MaxAttempts() {
		slog.ErrorContext(ctx, "max attempts reached, sending to DLQ",
			"message_id", msg.ID,
			"task_type", msg.Task.TaskType,
			"attempts", msg.Task.Attempt)
		if dlqErr := w.consumer.SendDLQ(ctx, msg, err.Error()); dlqErr != nil {
			slog.ErrorContext(ctx, "failed to send to DLQ", "error", dlqErr)
		}
		return
	}

	slog.WarnContext(ctx, "requeuing failed message",
		"message_id", msg.ID,
		"task_type", msg.Task.TaskType,
		"attempt", msg.Task.Attempt)
	if requeueErr := w.consumer.Requeue(ctx, msg, err.Error()); requeueErr != nil {
		slog.ErrorContext(ctx, "failed to requeue message", "error", requeueErr)
	}
}
