package supabase

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"smart-wedding-backend/internal/models"
)

// DatabaseClient is the write side: direct SQL so inserts can return the
// server-assigned id and timestamp in one round trip.
type DatabaseClient struct {
	db *sql.DB
}

func NewDatabaseClient(connectionString string) (*DatabaseClient, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DatabaseClient{db: db}, nil
}

// CreatePhoto inserts the metadata row for one stored photo. The insert
// commits only after both blobs exist, so the returned row's URLs always
// resolve. The insert also fires the photos_insert notification that feeds
// live galleries.
func (d *DatabaseClient) CreatePhoto(ctx context.Context, weddingID uuid.UUID, uploaderName, originalURL, displayURL string) (*models.Photo, error) {
	var photo models.Photo
	err := d.db.QueryRowContext(ctx, `
		INSERT INTO photos (wedding_id, uploader_name, original_url, display_url)
		VALUES ($1, $2, $3, $4)
		RETURNING id, wedding_id, uploader_name, original_url, display_url, is_hidden, created_at
	`, weddingID, uploaderName, originalURL, displayURL).Scan(
		&photo.ID, &photo.WeddingID, &photo.UploaderName,
		&photo.OriginalURL, &photo.DisplayURL, &photo.IsHidden, &photo.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create photo: %w", err)
	}

	return &photo, nil
}

// SetPhotoHidden toggles the moderation flag on one photo.
func (d *DatabaseClient) SetPhotoHidden(ctx context.Context, photoID uuid.UUID, hidden bool) error {
	res, err := d.db.ExecContext(ctx, `
		UPDATE photos
		SET is_hidden = $1
		WHERE id = $2
	`, hidden, photoID)
	if err != nil {
		return fmt.Errorf("failed to update photo visibility: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// CreateGuestbookEntry signs the guestbook for one wedding.
func (d *DatabaseClient) CreateGuestbookEntry(ctx context.Context, weddingID uuid.UUID, writerName, message string) (*models.GuestbookEntry, error) {
	var entry models.GuestbookEntry
	err := d.db.QueryRowContext(ctx, `
		INSERT INTO guestbooks (wedding_id, writer_name, message)
		VALUES ($1, $2, $3)
		RETURNING id, wedding_id, writer_name, message, created_at
	`, weddingID, writerName, message).Scan(
		&entry.ID, &entry.WeddingID, &entry.WriterName, &entry.Message, &entry.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create guestbook entry: %w", err)
	}

	return &entry, nil
}

func (d *DatabaseClient) Close() error {
	return d.db.Close()
}
