package supabase

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/supabase-community/postgrest-go"
	"github.com/supabase-community/supabase-go"
	"smart-wedding-backend/internal/models"
)

// ReadClient serves the read side over PostgREST, the same access path the
// browser clients use, so row filters and limits match what viewers see.
type ReadClient struct {
	client *supabase.Client
}

func NewReadClient(supabaseURL, apiKey string) (*ReadClient, error) {
	client, err := supabase.NewClient(supabaseURL, apiKey, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create supabase client: %w", err)
	}

	return &ReadClient{client: client}, nil
}

// GetWeddingBySlug resolves one wedding by its URL slug.
func (r *ReadClient) GetWeddingBySlug(slug string) (*models.Wedding, error) {
	var wedding models.Wedding
	_, err := r.client.From("weddings").
		Select("*", "", false).
		Eq("slug", slug).
		Single().
		ExecuteTo(&wedding)
	if err != nil {
		return nil, fmt.Errorf("failed to get wedding %q: %w", slug, err)
	}

	return &wedding, nil
}

// ListVisiblePhotos returns non-hidden photos for one wedding, newest
// first, capped at limit.
func (r *ReadClient) ListVisiblePhotos(weddingID uuid.UUID, limit int) ([]models.Photo, error) {
	var photos []models.Photo
	_, err := r.client.From("photos").
		Select("*", "", false).
		Eq("wedding_id", weddingID.String()).
		Eq("is_hidden", strconv.FormatBool(false)).
		Order("created_at", &postgrest.OrderOpts{Ascending: false}).
		Limit(limit, "").
		ExecuteTo(&photos)
	if err != nil {
		return nil, fmt.Errorf("failed to list photos for wedding %s: %w", weddingID, err)
	}

	return photos, nil
}

// ListGuestbookEntries returns every guestbook entry for a wedding, newest
// first.
func (r *ReadClient) ListGuestbookEntries(weddingID uuid.UUID) ([]models.GuestbookEntry, error) {
	var entries []models.GuestbookEntry
	_, err := r.client.From("guestbooks").
		Select("*", "", false).
		Eq("wedding_id", weddingID.String()).
		Order("created_at", &postgrest.OrderOpts{Ascending: false}).
		ExecuteTo(&entries)
	if err != nil {
		return nil, fmt.Errorf("failed to list guestbook for wedding %s: %w", weddingID, err)
	}

	return entries, nil
}
