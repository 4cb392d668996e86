package router

import (
	"github.com/gin-gonic/gin"

	"manageme.app/hub/internal/http/handler"
)

func SelectionRouter(rg *gin.RouterGroup, h *handler.SelectionHandler) {
	rg.GET("", h.Get)
	rg.PUT("/workspace", h.SelectWorkspace)
	rg.PUT("/channel", h.SelectChannel)
	rg.PUT("/tab", h.SetTab)
}
