package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"smart-wedding-backend/internal/models"
)

// WeddingDirectory resolves a wedding from its public URL slug.
type WeddingDirectory interface {
	GetWeddingBySlug(slug string) (*models.Wedding, error)
}

type WeddingsHandler struct {
	weddings WeddingDirectory
}

func NewWeddingsHandler(weddings WeddingDirectory) *WeddingsHandler {
	return &WeddingsHandler{weddings: weddings}
}

// GetWedding returns the display metadata for one wedding page.
func (h *WeddingsHandler) GetWedding(c *gin.Context) {
	slug := c.Param("slug")

	wedding, err := h.weddings.GetWeddingBySlug(slug)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "wedding not found",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, wedding)
}
