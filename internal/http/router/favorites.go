package router

import (
	"github.com/gin-gonic/gin"

	"manageme.app/hub/internal/http/handler"
)

func FavoritesRouter(rg *gin.RouterGroup, h *handler.FavoritesHandler) {
	rg.GET("", h.List)
	rg.GET("/ids", h.IDs)
	rg.POST("/toggle", h.Toggle)
}
