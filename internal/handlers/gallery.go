package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"smart-wedding-backend/internal/feed"
	"smart-wedding-backend/internal/gallery"
	"smart-wedding-backend/internal/models"
)

type GalleryHandler struct {
	weddings    WeddingDirectory
	photos      gallery.PhotoReader
	distributor *feed.Distributor
}

func NewGalleryHandler(weddings WeddingDirectory, photos gallery.PhotoReader, distributor *feed.Distributor) *GalleryHandler {
	return &GalleryHandler{
		weddings:    weddings,
		photos:      photos,
		distributor: distributor,
	}
}

// GetGallery returns the bounded initial snapshot for one viewing mode:
// 20 photos for the grid, 50 for the venue live feed, newest first.
func (h *GalleryHandler) GetGallery(c *gin.Context) {
	slug := c.Param("slug")
	wedding, err := h.weddings.GetWeddingBySlug(slug)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "wedding not found",
			Message: err.Error(),
		})
		return
	}

	mode := gallery.ParseMode(c.Query("mode"))
	projection, err := gallery.Load(h.photos, wedding.ID, mode)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to load gallery",
			Message: err.Error(),
		})
		return
	}

	photos := projection.Photos()
	if photos == nil {
		// Zero photos is a valid gallery, not an error.
		photos = []models.Photo{}
	}
	c.JSON(http.StatusOK, models.GalleryResponse{
		WeddingID: wedding.ID.String(),
		Mode:      string(mode),
		Photos:    photos,
	})
}

// StreamGallery serves one viewer session over SSE: the initial snapshot
// first, then every live insert for this wedding, newest prepended. The
// live channel is released when the client disconnects.
func (h *GalleryHandler) StreamGallery(c *gin.Context) {
	slug := c.Param("slug")
	wedding, err := h.weddings.GetWeddingBySlug(slug)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "wedding not found",
			Message: err.Error(),
		})
		return
	}

	mode := gallery.ParseMode(c.Query("mode"))
	projection, err := gallery.Load(h.photos, wedding.ID, mode)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to load gallery",
			Message: err.Error(),
		})
		return
	}

	// Snapshot first, then the live channel, so nothing is rendered out of
	// order on mount.
	sub := h.distributor.Subscribe(wedding.ID)
	defer sub.Close()

	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.SSEvent("snapshot", models.GalleryResponse{
		WeddingID: wedding.ID.String(),
		Mode:      string(mode),
		Photos:    projection.Photos(),
	})
	c.Writer.Flush()

	c.Stream(func(w io.Writer) bool {
		select {
		case photo, open := <-sub.C():
			if !open {
				return false
			}
			if !projection.Apply(photo) {
				return true
			}
			c.SSEvent("photo", photo)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
