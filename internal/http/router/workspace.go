package router

import (
	"github.com/gin-gonic/gin"

	"manageme.app/hub/internal/http/handler"
)

// WorkspaceRouter sets up workspace routes. Deletion is two-step:
// request a token, then confirm with it.
func WorkspaceRouter(rg *gin.RouterGroup, h *handler.WorkspaceHandler, ch *handler.ChannelHandler) {
	rg.GET("", h.List)
	rg.POST("", h.Create)
	rg.GET("/:id", h.Get)
	rg.POST("/:id/delete-request", h.RequestDelete)
	rg.POST("/:id/delete-confirm", h.ConfirmDelete)

	rg.GET("/:id/channels", ch.ListByWorkspace)
	rg.POST("/:id/channels", ch.Create)
}
