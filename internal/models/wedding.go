package models

import (
	"time"

	"github.com/google/uuid"
)

// Wedding is the tenancy boundary for photos and guestbook entries.
// Rows are provisioned out of band and treated as immutable here.
type Wedding struct {
	ID             uuid.UUID `json:"id"`
	HostID         string    `json:"host_id"`
	Slug           string    `json:"slug"`
	GroomName      string    `json:"groom_name"`
	BrideName      string    `json:"bride_name"`
	WeddingDate    string    `json:"wedding_date"`
	Location       string    `json:"location"`
	WelcomeMessage string    `json:"welcome_message"`
	CreatedAt      time.Time `json:"created_at"`
}
