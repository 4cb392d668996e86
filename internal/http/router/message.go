package router

import (
	"github.com/gin-gonic/gin"

	"manageme.app/hub/internal/http/handler"
)

func MessageRouter(rg *gin.RouterGroup, h *handler.MessageHandler) {
	rg.PATCH("/:id", h.Edit)
}
