package dto

import (
	"time"

	"manageme.app/hub/internal/model"
)

type CreateWorkspaceRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=255"`
	Description string `json:"description" binding:"required,min=1,max=1024"`
	Icon        string `json:"icon,omitempty" binding:"omitempty,max=16"`
}

type WorkspaceResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Icon        string    `json:"icon,omitempty"`
	OwnerID     string    `json:"owner_id"`
	MemberIDs   []string  `json:"member_ids"`
	CreatedAt   time.Time `json:"created_at"`
}

func ToWorkspaceResponse(ws *model.Workspace) *WorkspaceResponse {
	return &WorkspaceResponse{
		ID:          ws.ID,
		Name:        ws.Name,
		Description: ws.Description,
		Icon:        ws.Icon,
		OwnerID:     ws.OwnerID,
		MemberIDs:   ws.MemberIDs,
		CreatedAt:   ws.CreatedAt,
	}
}

func ToWorkspaceResponses(workspaces []model.Workspace) []WorkspaceResponse {
	out := make([]WorkspaceResponse, len(workspaces))
	for i := range workspaces {
		out[i] = *ToWorkspaceResponse(&workspaces[i])
	}
	return out
}

type RequestDeleteResponse struct {
	// ConfirmToken must be echoed back to complete the deletion. It
	// expires after a few minutes.
	ConfirmToken string `json:"confirm_token"`
	ExpiresIn    string `json:"expires_in"`
}

type ConfirmDeleteRequest struct {
	ConfirmToken string `json:"confirm_token" binding:"required"`
}
