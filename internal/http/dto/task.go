package dto

import (
	"time"

	"manageme.app/hub/internal/model"
	"manageme.app/hub/internal/service"
)

type CreateTaskRequest struct {
	Title       string     `json:"title" binding:"required,min=1,max=255"`
	Description string     `json:"description" binding:"omitempty,max=4096"`
	AssignedTo  []string   `json:"assigned_to,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
}

type SetTaskStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=todo in-progress done"`
}

type TaskResponse struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	AssignedTo  []string   `json:"assigned_to"`
	Status      string     `json:"status"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	ChannelID   string     `json:"channel_id"`
	WorkspaceID string     `json:"workspace_id"`
	CreatedBy   string     `json:"created_by"`
	CreatedAt   time.Time  `json:"created_at"`
}

func ToTaskResponse(t *model.Task) *TaskResponse {
	return &TaskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		AssignedTo:  t.AssignedTo,
		Status:      string(t.Status),
		DueDate:     t.DueDate,
		ChannelID:   t.ChannelID,
		WorkspaceID: t.WorkspaceID,
		CreatedBy:   t.CreatedBy,
		CreatedAt:   t.CreatedAt,
	}
}

func ToTaskResponses(tasks []model.Task) []TaskResponse {
	out := make([]TaskResponse, len(tasks))
	for i := range tasks {
		out[i] = *ToTaskResponse(&tasks[i])
	}
	return out
}

// BoardResponse groups a channel's tasks into kanban columns in display
// order, with completion stats alongside.
type BoardResponse struct {
	Columns []BoardColumn `json:"columns"`
	Stats   StatsResponse `json:"stats"`
}

type BoardColumn struct {
	Status string         `json:"status"`
	Tasks  []TaskResponse `json:"tasks"`
}

type StatsResponse struct {
	Total      int `json:"total"`
	Done       int `json:"done"`
	Percentage int `json:"percentage"`
}

func ToBoardResponse(tasks []model.Task, stats service.CompletionStats) BoardResponse {
	columns := make([]BoardColumn, len(model.TaskStatuses))
	for i, status := range model.TaskStatuses {
		columns[i] = BoardColumn{
			Status: string(status),
			Tasks:  ToTaskResponses(service.TasksByStatus(tasks, status)),
		}
	}
	return BoardResponse{
		Columns: columns,
		Stats:   ToStatsResponse(stats),
	}
}

func ToStatsResponse(stats service.CompletionStats) StatsResponse {
	return StatsResponse{
		Total:      stats.Total,
		Done:       stats.Done,
		Percentage: stats.Percentage,
	}
}
