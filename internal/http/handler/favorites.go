package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"manageme.app/hub/internal/favorites"
	"manageme.app/hub/internal/http/middleware"
)

type FavoritesHandler struct {
	repo *favorites.Repository
}

func NewFavoritesHandler(repo *favorites.Repository) *FavoritesHandler {
	return &FavoritesHandler{repo: repo}
}

// List returns the caller's favorite workspaces as denormalized
// snapshots, ready to render.
func (h *FavoritesHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	snaps, err := h.repo.List(ctx, middleware.UserID(ctx))
	if err != nil {
		respondError(c, err)
		return
	}
	if snaps == nil {
		snaps = []favorites.Snapshot{}
	}

	c.JSON(http.StatusOK, gin.H{"favorites": snaps})
}

func (h *FavoritesHandler) IDs(c *gin.Context) {
	ctx := c.Request.Context()

	ids, err := h.repo.IDs(ctx, middleware.UserID(ctx))
	if err != nil {
		respondError(c, err)
		return
	}
	// An empty favorites list renders as [], never null.
	if ids == nil {
		ids = []string{}
	}

	c.JSON(http.StatusOK, gin.H{"ids": ids})
}

type toggleFavoriteRequest struct {
	WorkspaceID string `json:"workspace_id" binding:"required"`
}

func (h *FavoritesHandler) Toggle(c *gin.Context) {
	ctx := c.Request.Context()

	var req toggleFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: workspace_id is required"})
		return
	}

	favorited, err := h.repo.Toggle(ctx, middleware.UserID(ctx), req.WorkspaceID)
	if err != nil {
		if errors.Is(err, favorites.ErrNotFavoritable) {
			c.JSON(http.StatusNotFound, gin.H{"error": "workspace not found"})
			return
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"workspace_id": req.WorkspaceID,
		"favorited":    favorited,
	})
}
