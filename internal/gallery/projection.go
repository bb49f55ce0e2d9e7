// Package gallery builds the ordered list of visible photos a viewer
// session renders: a bounded initial snapshot merged with live inserts.
package gallery

import (
	"github.com/google/uuid"
	"smart-wedding-backend/internal/models"
)

// Mode selects the rendering surface. It only changes the snapshot cap and
// layout; the subscription and merge logic are identical.
type Mode string

const (
	// ModeGrid is the compact mobile grid.
	ModeGrid Mode = "grid"
	// ModeLiveFeed is the larger venue screen feed.
	ModeLiveFeed Mode = "live-feed"
)

// ParseMode maps a query parameter to a Mode, defaulting to the grid.
func ParseMode(s string) Mode {
	if Mode(s) == ModeLiveFeed {
		return ModeLiveFeed
	}
	return ModeGrid
}

// SnapshotLimit is the initial-load cap for the mode. Live inserts are not
// capped; the list may grow past this while the viewer stays mounted.
func (m Mode) SnapshotLimit() int {
	if m == ModeLiveFeed {
		return 50
	}
	return 20
}

// PhotoReader is the read side of the relational store: visible photos for
// one wedding, newest first, capped.
type PhotoReader interface {
	ListVisiblePhotos(weddingID uuid.UUID, limit int) ([]models.Photo, error)
}

// Projection holds one viewer session's in-memory photo list. It is owned
// by a single session and is not safe for concurrent use.
type Projection struct {
	weddingID uuid.UUID
	mode      Mode
	photos    []models.Photo
}

// Load fetches the bounded initial snapshot for a wedding.
func Load(reader PhotoReader, weddingID uuid.UUID, mode Mode) (*Projection, error) {
	photos, err := reader.ListVisiblePhotos(weddingID, mode.SnapshotLimit())
	if err != nil {
		return nil, err
	}
	return &Projection{
		weddingID: weddingID,
		mode:      mode,
		photos:    photos,
	}, nil
}

// Apply merges one live insert: prepend unless the photo is hidden or
// belongs to another wedding. The list is never re-sorted after a prepend;
// delivery order from the live channel is trusted. Reports whether the
// photo was added.
func (p *Projection) Apply(photo models.Photo) bool {
	if photo.IsHidden || photo.WeddingID != p.weddingID {
		return false
	}
	p.photos = append([]models.Photo{photo}, p.photos...)
	return true
}

// Photos returns the current ordered list, newest first. An empty list is a
// valid state, not an error.
func (p *Projection) Photos() []models.Photo {
	return p.photos
}

// Mode returns the projection's rendering mode.
func (p *Projection) Mode() Mode {
	return p.mode
}
