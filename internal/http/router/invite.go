package router

import (
	"github.com/gin-gonic/gin"

	"manageme.app/hub/internal/http/handler"
)

// InviteRouter sets up invite routes.
// - /invites/:id/accept and /reject resolve a pending invite
// - /admin/invites/* routes require the admin API key
func InviteRouter(rg *gin.RouterGroup, adminRg *gin.RouterGroup, h *handler.InviteHandler) {
	rg.POST("/:id/accept", h.Accept)
	rg.POST("/:id/reject", h.Reject)

	admin := adminRg.Group("")
	admin.Use(h.RequireAdminAPIKey())
	{
		admin.GET("/pending", h.ListPending)
	}
}
