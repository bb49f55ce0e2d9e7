package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"smart-wedding-backend/internal/models"
)

// GuestbookReader lists entries for one wedding, newest first.
type GuestbookReader interface {
	ListGuestbookEntries(weddingID uuid.UUID) ([]models.GuestbookEntry, error)
}

// GuestbookWriter persists one signed entry.
type GuestbookWriter interface {
	CreateGuestbookEntry(ctx context.Context, weddingID uuid.UUID, writerName, message string) (*models.GuestbookEntry, error)
}

type GuestbookHandler struct {
	weddings WeddingDirectory
	reader   GuestbookReader
	writer   GuestbookWriter
}

func NewGuestbookHandler(weddings WeddingDirectory, reader GuestbookReader, writer GuestbookWriter) *GuestbookHandler {
	return &GuestbookHandler{
		weddings: weddings,
		reader:   reader,
		writer:   writer,
	}
}

// ListEntries returns every guestbook entry for a wedding, newest first.
func (h *GuestbookHandler) ListEntries(c *gin.Context) {
	wedding, err := h.weddings.GetWeddingBySlug(c.Param("slug"))
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "wedding not found",
			Message: err.Error(),
		})
		return
	}

	entries, err := h.reader.ListGuestbookEntries(wedding.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to load guestbook",
			Message: err.Error(),
		})
		return
	}
	if entries == nil {
		entries = []models.GuestbookEntry{}
	}

	c.JSON(http.StatusOK, models.GuestbookResponse{Entries: entries})
}

// SignGuestbook creates one entry. Both the writer name and the message
// are required.
func (h *GuestbookHandler) SignGuestbook(c *gin.Context) {
	wedding, err := h.weddings.GetWeddingBySlug(c.Param("slug"))
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "wedding not found",
			Message: err.Error(),
		})
		return
	}

	var req models.SignGuestbookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid request body",
			Message: err.Error(),
		})
		return
	}

	writerName := strings.TrimSpace(req.WriterName)
	message := strings.TrimSpace(req.Message)
	if writerName == "" || message == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "writer_name and message are required",
		})
		return
	}

	entry, err := h.writer.CreateGuestbookEntry(c.Request.Context(), wedding.ID, writerName, message)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to sign guestbook",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, entry)
}
