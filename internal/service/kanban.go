package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"manageme.app/hub/common/id"
	"manageme.app/hub/internal/model"
	"manageme.app/hub/internal/queue"
	"manageme.app/hub/internal/store"
)

var ErrTaskNotFound = errors.New("task not found")

// CompletionStats is a pure projection over a task set. It is computed
// on demand and never stored, so it cannot drift from the tasks.
type CompletionStats struct {
	Total      int `json:"total"`
	Done       int `json:"done"`
	Percentage int `json:"percentage"`
}

type KanbanService interface {
	CreateTask(ctx context.Context, channelID, title, description string, assignedTo []string, dueDate *time.Time, createdBy string) (*model.Task, error)
	// SetStatus moves a task to a column. Setting the current status is
	// a null transition: nothing is mutated and no event is emitted.
	// The boolean reports whether a transition happened.
	SetStatus(ctx context.Context, taskID string, status model.TaskStatus) (*model.Task, bool, error)
	// Board returns the channel's full board: home tasks plus tasks
	// linked in from other channels.
	Board(ctx context.Context, channelID string) ([]model.Task, error)
	Stats(ctx context.Context, channelID string) (CompletionStats, error)
}

type kanbanService struct {
	tasks    store.TaskStore
	channels store.ChannelStore
	producer queue.Producer
}

func NewKanbanService(tasks store.TaskStore, channels store.ChannelStore, producer queue.Producer) KanbanService {
	return &kanbanService{
		tasks:    tasks,
		channels: channels,
		producer: producer,
	}
}

func (s *kanbanService) CreateTask(ctx context.Context, channelID, title, description string, assignedTo []string, dueDate *time.Time, createdBy string) (*model.Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, invalid(FieldError{Field: "title", Message: "Task title is required"})
	}

	ch, err := s.channels.GetByID(ctx, channelID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrChannelNotFound
		}
		return nil, fmt.Errorf("fetching channel: %w", err)
	}

	task := &model.Task{
		ID:          id.New("task"),
		Title:       title,
		Description: strings.TrimSpace(description),
		AssignedTo:  assignedTo,
		Status:      model.TaskStatusTodo,
		DueDate:     dueDate,
		CreatedBy:   createdBy,
		CreatedAt:   time.Now().UTC(),
		ChannelID:   channelID,
		WorkspaceID: ch.WorkspaceID,
	}

	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("creating task: %w", err)
	}

	slog.InfoContext(ctx, "task created",
		"task_id", task.ID,
		"channel_id", channelID,
		"title", title,
	)
	return task, nil
}

func (s *kanbanService) SetStatus(ctx context.Context, taskID string, status model.TaskStatus) (*model.Task, bool, error) {
	if !status.Valid() {
		return nil, false, invalid(FieldError{Field: "status", Message: "Unknown task status"})
	}

	task, err := s.tasks.GetByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, false, ErrTaskNotFound
		}
		return nil, false, fmt.Errorf("fetching task: %w", err)
	}

	if task.Status == status {
		return task, false, nil
	}

	from := task.Status
	updated, err := s.tasks.SetStatus(ctx, taskID, status)
	if err != nil {
		return nil, false, fmt.Errorf("updating task status: %w", err)
	}

	if s.producer != nil {
		if err := s.producer.Enqueue(ctx, queue.Task{
			TaskType:    queue.TaskTypeTaskStatusChanged,
			TaskID:      taskID,
			ChannelID:   task.ChannelID,
			WorkspaceID: task.WorkspaceID,
			FromStatus:  string(from),
			ToStatus:    string(status),
		}); err != nil {
			// The transition itself is committed; fan-out is best effort.
			slog.ErrorContext(ctx, "failed to enqueue status change", "error", err, "task_id", taskID)
		}
	}

	slog.InfoContext(ctx, "task status changed",
		"task_id", taskID,
		"from", from,
		"to", status,
	)
	return updated, true, nil
}

func (s *kanbanService) Board(ctx context.Context, channelID string) ([]model.Task, error) {
	board, err := s.tasks.ListBoard(ctx, channelID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrChannelNotFound
		}
		return nil, fmt.Errorf("listing board: %w", err)
	}
	return board, nil
}

func (s *kanbanService) Stats(ctx context.Context, channelID string) (CompletionStats, error) {
	board, err := s.Board(ctx, channelID)
	if err != nil {
		return CompletionStats{}, err
	}
	return ComputeStats(board), nil
}

// TasksByStatus filters a board down to one column. The three columns
// partition the board: every task lands in exactly one.
func TasksByStatus(tasks []model.Task, status model.TaskStatus) []model.Task {
	var out []model.Task
	for _, t := range tasks {
		if t.Status == status {
			out = append(out, t)
		}
	}
	return out
}

// ComputeStats derives completion statistics for a task set.
// An empty board is 0%, not a division by zero.
func ComputeStats(tasks []model.Task) CompletionStats {
	stats := CompletionStats{Total: len(tasks)}
	for _, t := range tasks {
		if t.Status == model.TaskStatusDone {
			stats.Done++
		}
	}
	if stats.Total > 0 {
		stats.Percentage = int(math.Round(float64(stats.Done) / float64(stats.Total) * 100))
	}
	return stats
}
