package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"manageme.app/hub/internal/http/dto"
	"manageme.app/hub/internal/http/middleware"
	"manageme.app/hub/internal/service"
)

type MessageHandler struct {
	messages    service.MessageService
	memberships service.MembershipService
}

func NewMessageHandler(messages service.MessageService, memberships service.MembershipService) *MessageHandler {
	return &MessageHandler{messages: messages, memberships: memberships}
}

// List returns the channel transcript, oldest first. The channel must be
// visible to the caller; private channels read as missing to outsiders.
func (h *MessageHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	if _, err := h.memberships.VisibleChannel(ctx, middleware.UserID(ctx), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	messages, err := h.messages.List(ctx, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"messages": dto.ToMessageResponses(messages)})
}

func (h *MessageHandler) Post(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.PostMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: content is required"})
		return
	}

	// Resolve visibility first so posting to a hidden channel reads as
	// not-found rather than forbidden.
	if _, err := h.memberships.VisibleChannel(ctx, middleware.UserID(ctx), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	msg, err := h.messages.Post(ctx, c.Param("id"), middleware.UserID(ctx), req.Content)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToMessageResponse(msg))
}

// Edit replaces a message body. Author-only; the message is marked edited.
func (h *MessageHandler) Edit(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.EditMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: content is required"})
		return
	}

	msg, err := h.messages.Edit(ctx, c.Param("id"), middleware.UserID(ctx), req.Content)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToMessageResponse(msg))
}
