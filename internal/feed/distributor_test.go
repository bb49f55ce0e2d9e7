package feed_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"smart-wedding-backend/internal/feed"
	"smart-wedding-backend/internal/models"
)

func newPhoto(weddingID uuid.UUID, hidden bool) models.Photo {
	return models.Photo{
		ID:           uuid.New(),
		WeddingID:    weddingID,
		UploaderName: "Aunt Jane",
		OriginalURL:  "https://example.com/o.jpg",
		DisplayURL:   "https://example.com/d.jpg",
		IsHidden:     hidden,
		CreatedAt:    time.Now(),
	}
}

func TestDistributor_DeliversToAllSubscribersInOrder(t *testing.T) {
	dist := feed.NewDistributor()
	weddingID := uuid.New()

	sub1 := dist.Subscribe(weddingID)
	defer sub1.Close()
	sub2 := dist.Subscribe(weddingID)
	defer sub2.Close()

	first := newPhoto(weddingID, false)
	second := newPhoto(weddingID, false)
	dist.Publish(first)
	dist.Publish(second)

	for _, sub := range []*feed.Subscription{sub1, sub2} {
		got1 := <-sub.C()
		got2 := <-sub.C()
		assert.Equal(t, first.ID, got1.ID)
		assert.Equal(t, second.ID, got2.ID)
	}
}

func TestDistributor_NeverDeliversHiddenPhotos(t *testing.T) {
	dist := feed.NewDistributor()
	weddingID := uuid.New()

	sub := dist.Subscribe(weddingID)
	defer sub.Close()

	dist.Publish(newPhoto(weddingID, true))
	visible := newPhoto(weddingID, false)
	dist.Publish(visible)

	got := <-sub.C()
	assert.Equal(t, visible.ID, got.ID)
	assert.Empty(t, sub.C())
}

func TestDistributor_ScopedToOneWedding(t *testing.T) {
	dist := feed.NewDistributor()
	weddingID := uuid.New()
	otherID := uuid.New()

	sub := dist.Subscribe(weddingID)
	defer sub.Close()

	dist.Publish(newPhoto(otherID, false))
	assert.Empty(t, sub.C())

	mine := newPhoto(weddingID, false)
	dist.Publish(mine)
	got := <-sub.C()
	assert.Equal(t, mine.ID, got.ID)
}

func TestSubscription_CloseReleasesChannel(t *testing.T) {
	dist := feed.NewDistributor()
	weddingID := uuid.New()

	sub := dist.Subscribe(weddingID)
	require.Equal(t, 1, dist.SubscriberCount(weddingID))

	sub.Close()
	assert.Equal(t, 0, dist.SubscriberCount(weddingID))

	// Publishing after close must not panic and the channel is drained.
	dist.Publish(newPhoto(weddingID, false))
	_, open := <-sub.C()
	assert.False(t, open)

	// Idempotent.
	sub.Close()
}

func TestDistributor_SlowSubscriberDoesNotBlock(t *testing.T) {
	dist := feed.NewDistributor()
	weddingID := uuid.New()

	sub := dist.Subscribe(weddingID)
	defer sub.Close()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < feed.DefaultBuffer+10; i++ {
			dist.Publish(newPhoto(weddingID, false))
		}
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("publish blocked on a full subscriber buffer")
	}
}
