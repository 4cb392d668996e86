package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"manageme.app/hub/internal/http/dto"
	"manageme.app/hub/internal/http/middleware"
	"manageme.app/hub/internal/model"
	"manageme.app/hub/internal/service"
)

type ChannelHandler struct {
	channels    service.ChannelService
	memberships service.MembershipService
	taskLinks   service.TaskLinkService
}

func NewChannelHandler(channels service.ChannelService, memberships service.MembershipService, taskLinks service.TaskLinkService) *ChannelHandler {
	return &ChannelHandler{channels: channels, memberships: memberships, taskLinks: taskLinks}
}

// ListByWorkspace returns the caller's visible channels in a workspace,
// grouped into public and private the way the sidebar renders them.
func (h *ChannelHandler) ListByWorkspace(c *gin.Context) {
	ctx := c.Request.Context()
	userID := middleware.UserID(ctx)

	public, private, err := h.memberships.GroupedChannels(ctx, userID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.GroupedChannelsResponse{
		Public:  dto.ToChannelResponses(public),
		Private: dto.ToChannelResponses(private),
	})
}

func (h *ChannelHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreateChannelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	ch, err := h.channels.Create(ctx, c.Param("id"), req.Name, req.Description, model.ChannelKind(req.Kind), middleware.UserID(ctx))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToChannelResponse(ch))
}

func (h *ChannelHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	// Private channels are invisible to non-members rather than forbidden.
	ch, err := h.memberships.VisibleChannel(ctx, middleware.UserID(ctx), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToChannelResponse(ch))
}

func (h *ChannelHandler) Join(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.channels.Join(ctx, c.Param("id"), middleware.UserID(ctx)); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// LinkCandidates returns tasks eligible for linking into this channel's
// board: every task in the system except the channel's own tasks and
// those already linked.
func (h *ChannelHandler) LinkCandidates(c *gin.Context) {
	ctx := c.Request.Context()

	if _, err := h.memberships.VisibleChannel(ctx, middleware.UserID(ctx), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	tasks, err := h.taskLinks.Candidates(ctx, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"tasks": dto.ToTaskResponses(tasks)})
}

// LinkTasks adds task references to the channel's board. The whole
// batch is validated first; nothing is linked on failure.
func (h *ChannelHandler) LinkTasks(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.LinkTasksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: task_ids is required"})
		return
	}

	if err := h.taskLinks.Link(ctx, c.Param("id"), req.TaskIDs); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
