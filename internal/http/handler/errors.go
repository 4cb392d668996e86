package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"manageme.app/hub/internal/service"
	"manageme.app/hub/internal/store"
)

// respondError maps service errors onto HTTP status codes. Anything
// unrecognized is logged and reported as a 500 without leaking detail.
func respondError(c *gin.Context, err error) {
	if ve := service.AsValidation(err); ve != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "validation failed",
			"fields": ve.Fields,
		})
		return
	}

	var ie *store.IntegrityError
	if errors.As(err, &ie) {
		c.JSON(http.StatusConflict, gin.H{"error": ie.Error()})
		return
	}

	switch {
	case errors.Is(err, service.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, gin.H{"error": "permission denied"})
	case errors.Is(err, service.ErrWorkspaceNotFound),
		errors.Is(err, service.ErrChannelNotFound),
		errors.Is(err, service.ErrTaskNotFound),
		errors.Is(err, service.ErrMessageNotFound),
		errors.Is(err, service.ErrInviteNotFound),
		errors.Is(err, service.ErrNotVisible),
		errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvitePendingExists),
		errors.Is(err, service.ErrInviteInFlight),
		errors.Is(err, service.ErrInviteResolved):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrDeleteTokenInvalid):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrDeleteTokenExpired):
		c.JSON(http.StatusGone, gin.H{"error": err.Error()})
	default:
		slog.ErrorContext(c.Request.Context(), "request handling failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
