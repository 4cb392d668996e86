package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"manageme.app/hub/internal/http/middleware"
	"manageme.app/hub/internal/service"
)

type SelectionHandler struct {
	selections service.SelectionService
}

func NewSelectionHandler(selections service.SelectionService) *SelectionHandler {
	return &SelectionHandler{selections: selections}
}

// Get returns the caller's current workspace/channel selection and the
// active tab.
func (h *SelectionHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()
	c.JSON(http.StatusOK, h.selections.Get(ctx, middleware.UserID(ctx)))
}

type selectWorkspaceRequest struct {
	WorkspaceID string `json:"workspace_id" binding:"required"`
}

// SelectWorkspace switches the active workspace. The first visible
// channel becomes selected and the tab resets to messages.
func (h *SelectionHandler) SelectWorkspace(c *gin.Context) {
	ctx := c.Request.Context()

	var req selectWorkspaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: workspace_id is required"})
		return
	}

	sel, err := h.selections.SelectWorkspace(ctx, middleware.UserID(ctx), req.WorkspaceID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, sel)
}

type selectChannelRequest struct {
	ChannelID string `json:"channel_id" binding:"required"`
}

func (h *SelectionHandler) SelectChannel(c *gin.Context) {
	ctx := c.Request.Context()

	var req selectChannelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: channel_id is required"})
		return
	}

	sel, err := h.selections.SelectChannel(ctx, middleware.UserID(ctx), req.ChannelID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, sel)
}

type setTabRequest struct {
	Tab string `json:"tab" binding:"required,oneof=messages tasks"`
}

func (h *SelectionHandler) SetTab(c *gin.Context) {
	ctx := c.Request.Context()

	var req setTabRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: tab must be messages or tasks"})
		return
	}

	sel, err := h.selections.SetTab(ctx, middleware.UserID(ctx), service.ChannelTab(req.Tab))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, sel)
}
