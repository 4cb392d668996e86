package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"manageme.app/hub/internal/http/dto"
	"manageme.app/hub/internal/http/middleware"
	"manageme.app/hub/internal/model"
	"manageme.app/hub/internal/service"
)

type TaskHandler struct {
	kanban      service.KanbanService
	memberships service.MembershipService
}

func NewTaskHandler(kanban service.KanbanService, memberships service.MembershipService) *TaskHandler {
	return &TaskHandler{kanban: kanban, memberships: memberships}
}

func (h *TaskHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	task, err := h.kanban.CreateTask(ctx, c.Param("id"), req.Title, req.Description, req.AssignedTo, req.DueDate, middleware.UserID(ctx))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTaskResponse(task))
}

// Board returns the channel's kanban board: home tasks plus linked
// tasks, grouped into columns, with completion stats. Boards of channels
// the caller does not belong to read as missing.
func (h *TaskHandler) Board(c *gin.Context) {
	ctx := c.Request.Context()
	channelID := c.Param("id")

	if _, err := h.memberships.VisibleChannel(ctx, middleware.UserID(ctx), channelID); err != nil {
		respondError(c, err)
		return
	}

	tasks, err := h.kanban.Board(ctx, channelID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBoardResponse(tasks, service.ComputeStats(tasks)))
}

func (h *TaskHandler) Stats(c *gin.Context) {
	ctx := c.Request.Context()

	if _, err := h.memberships.VisibleChannel(ctx, middleware.UserID(ctx), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	stats, err := h.kanban.Stats(ctx, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToStatsResponse(stats))
}

// SetStatus moves a task between kanban columns. Dropping a task on the
// column it already occupies is a no-op and reports changed=false.
func (h *TaskHandler) SetStatus(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.SetTaskStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: status must be one of todo, in-progress, done"})
		return
	}

	task, changed, err := h.kanban.SetStatus(ctx, c.Param("id"), model.TaskStatus(req.Status))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"task":    dto.ToTaskResponse(task),
		"changed": changed,
	})
}
