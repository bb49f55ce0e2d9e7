package supabase

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/lib/pq"
	"smart-wedding-backend/internal/feed"
	"smart-wedding-backend/internal/models"
)

// photoInsertChannel is the NOTIFY channel fired by the AFTER INSERT
// trigger on photos (see internal/database/migrations).
const photoInsertChannel = "photos_insert"

const (
	minReconnectInterval = 10 * time.Second
	maxReconnectInterval = time.Minute
	pingInterval         = 90 * time.Second
)

// PhotoListener bridges Postgres insert notifications into the feed
// distributor. pq.Listener reconnects on its own; connection events are
// logged so a dropped channel is never silent.
type PhotoListener struct {
	listener *pq.Listener
	dist     *feed.Distributor
}

func NewPhotoListener(databaseURL string, dist *feed.Distributor) *PhotoListener {
	listener := pq.NewListener(databaseURL, minReconnectInterval, maxReconnectInterval,
		func(event pq.ListenerEventType, err error) {
			if err != nil {
				log.Printf("photo listener connection event %d: %v", event, err)
			}
		})

	return &PhotoListener{
		listener: listener,
		dist:     dist,
	}
}

// Run consumes insert notifications until the context is cancelled. A nil
// notification marks a reconnect; inserts during the gap are not replayed
// (viewers pick them up on their next snapshot load).
func (p *PhotoListener) Run(ctx context.Context) error {
	if err := p.listener.Listen(photoInsertChannel); err != nil {
		return &feed.ChannelError{Op: "listen", Err: err}
	}
	defer p.listener.Close()

	log.Printf("photo listener subscribed to %s", photoInsertChannel)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case notification := <-p.listener.Notify:
			if notification == nil {
				log.Printf("photo listener reconnected, live feed may have missed inserts")
				continue
			}
			p.dispatch(notification.Extra)
		case <-time.After(pingInterval):
			go func() {
				if err := p.listener.Ping(); err != nil {
					log.Printf("photo listener ping failed: %v", err)
				}
			}()
		}
	}
}

func (p *PhotoListener) dispatch(payload string) {
	var photo models.Photo
	if err := json.Unmarshal([]byte(payload), &photo); err != nil {
		log.Printf("photo listener: bad notification payload: %v", err)
		return
	}
	p.dist.Publish(photo)
}
