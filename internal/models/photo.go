package models

import (
	"time"

	"github.com/google/uuid"
)

// Photo is one guest upload. A row exists only after both the archival and
// display blobs are durably stored, so both URLs always resolve.
type Photo struct {
	ID           uuid.UUID `json:"id"`
	WeddingID    uuid.UUID `json:"wedding_id"`
	UploaderName string    `json:"uploader_name"`
	OriginalURL  string    `json:"original_url"`
	DisplayURL   string    `json:"display_url"`
	IsHidden     bool      `json:"is_hidden"`
	CreatedAt    time.Time `json:"created_at"`
}
