package handlers

import (
	"context"
	"database/sql"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"smart-wedding-backend/internal/models"
)

// PhotoModerator toggles the visibility flag on one photo.
type PhotoModerator interface {
	SetPhotoHidden(ctx context.Context, photoID uuid.UUID, hidden bool) error
}

type ModerationHandler struct {
	moderator PhotoModerator
}

func NewModerationHandler(moderator PhotoModerator) *ModerationHandler {
	return &ModerationHandler{moderator: moderator}
}

// SetVisibility hides or unhides one photo. Hidden photos stop appearing
// in snapshots and are filtered out of live delivery; the blobs stay in
// storage untouched.
func (h *ModerationHandler) SetVisibility(c *gin.Context) {
	photoID, err := uuid.Parse(c.Param("photo_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid photo id"})
		return
	}

	var req models.SetVisibilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid request body",
			Message: err.Error(),
		})
		return
	}

	if err := h.moderator.SetPhotoHidden(c.Request.Context(), photoID, req.Hidden); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "photo not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to update photo visibility",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"photo_id": photoID.String(), "hidden": req.Hidden})
}
