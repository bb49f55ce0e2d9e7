package handlers_test

import (
	"bytes"
	"context"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"smart-wedding-backend/internal/handlers"
)

type fakeModerator struct {
	known      map[uuid.UUID]bool
	lastID     uuid.UUID
	lastHidden bool
}

func (f *fakeModerator) SetPhotoHidden(ctx context.Context, photoID uuid.UUID, hidden bool) error {
	if _, ok := f.known[photoID]; !ok {
		return sql.ErrNoRows
	}
	f.lastID = photoID
	f.lastHidden = hidden
	return nil
}

func moderationRouter(moderator *fakeModerator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := handlers.NewModerationHandler(moderator)

	router := gin.New()
	router.PATCH("/api/v1/photos/:photo_id/visibility", handler.SetVisibility)
	return router
}

func TestSetVisibility_HidesPhoto(t *testing.T) {
	photoID := uuid.New()
	moderator := &fakeModerator{known: map[uuid.UUID]bool{photoID: false}}
	router := moderationRouter(moderator)

	req, _ := http.NewRequest("PATCH", "/api/v1/photos/"+photoID.String()+"/visibility", bytes.NewBufferString(`{"hidden": true}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, photoID, moderator.lastID)
	assert.True(t, moderator.lastHidden)
	assert.Contains(t, w.Body.String(), `"hidden":true`)
}

func TestSetVisibility_UnhidesPhoto(t *testing.T) {
	photoID := uuid.New()
	moderator := &fakeModerator{known: map[uuid.UUID]bool{photoID: true}}
	router := moderationRouter(moderator)

	req, _ := http.NewRequest("PATCH", "/api/v1/photos/"+photoID.String()+"/visibility", bytes.NewBufferString(`{"hidden": false}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.False(t, moderator.lastHidden)
}

func TestSetVisibility_InvalidPhotoID(t *testing.T) {
	router := moderationRouter(&fakeModerator{})

	req, _ := http.NewRequest("PATCH", "/api/v1/photos/not-a-uuid/visibility", bytes.NewBufferString(`{"hidden": true}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSetVisibility_UnknownPhoto(t *testing.T) {
	router := moderationRouter(&fakeModerator{})

	req, _ := http.NewRequest("PATCH", "/api/v1/photos/"+uuid.New().String()+"/visibility", bytes.NewBufferString(`{"hidden": true}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
