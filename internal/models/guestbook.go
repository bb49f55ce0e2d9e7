package models

import (
	"time"

	"github.com/google/uuid"
)

type GuestbookEntry struct {
	ID         uuid.UUID `json:"id"`
	WeddingID  uuid.UUID `json:"wedding_id"`
	WriterName string    `json:"writer_name"`
	Message    string    `json:"message"`
	CreatedAt  time.Time `json:"created_at"`
}
