package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"manageme.app/hub/internal/favorites"
	"manageme.app/hub/internal/http/dto"
	"manageme.app/hub/internal/http/middleware"
	"manageme.app/hub/internal/service"
)

type WorkspaceHandler struct {
	workspaces  service.WorkspaceService
	memberships service.MembershipService
	favorites   *favorites.Repository
}

func NewWorkspaceHandler(workspaces service.WorkspaceService, memberships service.MembershipService, favs *favorites.Repository) *WorkspaceHandler {
	return &WorkspaceHandler{workspaces: workspaces, memberships: memberships, favorites: favs}
}

// List returns the workspaces visible to the caller, i.e. the ones they
// are a member of.
func (h *WorkspaceHandler) List(c *gin.Context) {
	ctx := c.Request.Context()
	userID := middleware.UserID(ctx)

	workspaces, err := h.memberships.VisibleWorkspaces(ctx, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"workspaces": dto.ToWorkspaceResponses(workspaces)})
}

func (h *WorkspaceHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreateWorkspaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	ws, err := h.workspaces.Create(ctx, req.Name, req.Description, req.Icon, middleware.UserID(ctx))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToWorkspaceResponse(ws))
}

func (h *WorkspaceHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	ws, err := h.workspaces.Get(ctx, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	if !ws.HasMember(middleware.UserID(ctx)) {
		c.JSON(http.StatusNotFound, gin.H{"error": "workspace not found"})
		return
	}

	c.JSON(http.StatusOK, dto.ToWorkspaceResponse(ws))
}

// RequestDelete is the first half of the two-step removal: the owner
// asks for deletion and receives a short-lived confirmation token.
func (h *WorkspaceHandler) RequestDelete(c *gin.Context) {
	ctx := c.Request.Context()

	token, err := h.workspaces.RequestDelete(ctx, c.Param("id"), middleware.UserID(ctx))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.RequestDeleteResponse{
		ConfirmToken: token,
		ExpiresIn:    service.DeleteTokenTTL.String(),
	})
}

// ConfirmDelete completes the removal, cascading to the workspace's
// channels, messages, tasks and invites.
func (h *WorkspaceHandler) ConfirmDelete(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.ConfirmDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: confirm_token is required"})
		return
	}

	ws, err := h.workspaces.ConfirmDelete(ctx, req.ConfirmToken)
	if err != nil {
		respondError(c, err)
		return
	}

	// Favorites live outside the entity graph, so the cascade does not
	// reach them.
	if h.favorites != nil {
		h.favorites.Prune(ctx, ws.MemberIDs, ws.ID)
	}

	c.Status(http.StatusNoContent)
}
