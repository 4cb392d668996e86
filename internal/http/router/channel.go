package router

import (
	"github.com/gin-gonic/gin"

	"manageme.app/hub/internal/http/handler"
)

func ChannelRouter(rg *gin.RouterGroup, ch *handler.ChannelHandler, msg *handler.MessageHandler, task *handler.TaskHandler, inv *handler.InviteHandler) {
	rg.GET("/:id", ch.Get)
	rg.POST("/:id/join", ch.Join)

	rg.GET("/:id/messages", msg.List)
	rg.POST("/:id/messages", msg.Post)

	rg.GET("/:id/board", task.Board)
	rg.GET("/:id/board/stats", task.Stats)
	rg.POST("/:id/tasks", task.Create)

	rg.GET("/:id/link-candidates", ch.LinkCandidates)
	rg.POST("/:id/links", ch.LinkTasks)

	rg.GET("/:id/invites", inv.ListByChannel)
	rg.POST("/:id/invites", inv.Send)
}
