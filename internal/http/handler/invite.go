package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"manageme.app/hub/internal/http/dto"
	"manageme.app/hub/internal/http/middleware"
	"manageme.app/hub/internal/service"
)

type InviteHandler struct {
	invites     service.InviteService
	memberships service.MembershipService
	adminAPIKey string
}

func NewInviteHandler(invites service.InviteService, memberships service.MembershipService, adminAPIKey string) *InviteHandler {
	return &InviteHandler{invites: invites, memberships: memberships, adminAPIKey: adminAPIKey}
}

// Send creates a pending invite for a channel and queues the email.
// Concurrent sends for the same channel and address are refused.
func (h *InviteHandler) Send(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.SendInviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: a valid email is required"})
		return
	}

	inv, err := h.invites.Send(ctx, c.Param("id"), req.Email, req.Message, middleware.UserID(ctx))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToInviteResponse(inv))
}

func (h *InviteHandler) ListByChannel(c *gin.Context) {
	ctx := c.Request.Context()

	if _, err := h.memberships.VisibleChannel(ctx, middleware.UserID(ctx), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	invites, err := h.invites.ListByChannel(ctx, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"invites": dto.ToInviteResponses(invites)})
}

// ListPending lists every unresolved invite across channels (admin only).
func (h *InviteHandler) ListPending(c *gin.Context) {
	ctx := c.Request.Context()

	invites, err := h.invites.ListPending(ctx)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"invites": dto.ToInviteResponses(invites)})
}

func (h *InviteHandler) Accept(c *gin.Context) {
	ctx := c.Request.Context()

	inv, err := h.invites.Accept(ctx, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	slog.InfoContext(ctx, "invite accepted via API", "invite_id", inv.ID)
	c.JSON(http.StatusOK, dto.ToInviteResponse(inv))
}

func (h *InviteHandler) Reject(c *gin.Context) {
	ctx := c.Request.Context()

	inv, err := h.invites.Reject(ctx, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	slog.InfoContext(ctx, "invite rejected via API", "invite_id", inv.ID)
	c.JSON(http.StatusOK, dto.ToInviteResponse(inv))
}

// RequireAdminAPIKey middleware checks for valid admin API key
func (h *InviteHandler) RequireAdminAPIKey() gin.HandlerFunc {
	return func(c *gin.Context) {
		if h.adminAPIKey == "" {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "admin API not configured"})
			c.Abort()
			return
		}

		apiKey := c.GetHeader("X-Admin-API-Key")
		if apiKey == "" {
			apiKey = c.GetHeader("Authorization")
			if len(apiKey) > 7 && apiKey[:7] == "Bearer " {
				apiKey = apiKey[7:]
			}
		}

		if apiKey != h.adminAPIKey {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or missing API key"})
			c.Abort()
			return
		}

		c.Next()
	}
}
