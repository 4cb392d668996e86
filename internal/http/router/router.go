package router

import (
	"github.com/gin-gonic/gin"

	"manageme.app/hub/internal/favorites"
	"manageme.app/hub/internal/http/handler"
	"manageme.app/hub/internal/http/middleware"
	"manageme.app/hub/internal/service"
	"manageme.app/hub/internal/store"
)

type RouterConfig struct {
	AdminAPIKey  string
	IsProduction bool
}

func SetupRoutes(router *gin.Engine, services *service.Services, favs *favorites.Repository, users store.UserStore, cfg RouterConfig) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	workspaceHandler := handler.NewWorkspaceHandler(services.Workspaces(), services.Memberships(), favs)
	channelHandler := handler.NewChannelHandler(services.Channels(), services.Memberships(), services.TaskLinks())
	taskHandler := handler.NewTaskHandler(services.Kanban(), services.Memberships())
	messageHandler := handler.NewMessageHandler(services.Messages(), services.Memberships())
	inviteHandler := handler.NewInviteHandler(services.Invites(), services.Memberships(), cfg.AdminAPIKey)
	selectionHandler := handler.NewSelectionHandler(services.Selections())
	favoritesHandler := handler.NewFavoritesHandler(favs)
	userHandler := handler.NewUserHandler(users)

	v1 := router.Group("/api/v1")
	v1.Use(middleware.RequireUser(users))
	{
		UserRouter(v1.Group("/users"), userHandler)
		WorkspaceRouter(v1.Group("/workspaces"), workspaceHandler, channelHandler)
		ChannelRouter(v1.Group("/channels"), channelHandler, messageHandler, taskHandler, inviteHandler)
		TaskRouter(v1.Group("/tasks"), taskHandler)
		MessageRouter(v1.Group("/messages"), messageHandler)
		InviteRouter(v1.Group("/invites"), router.Group("/admin/invites"), inviteHandler)
		SelectionRouter(v1.Group("/selection"), selectionHandler)
		FavoritesRouter(v1.Group("/favorites"), favoritesHandler)
	}
}
