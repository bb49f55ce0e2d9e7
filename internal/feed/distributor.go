// Package feed fans newly inserted photos out to live viewer sessions.
// Delivery is push-based and best-effort: one topic per wedding, insertion
// order preserved per subscriber, hidden photos never delivered.
package feed

import (
	"log"
	"sync"

	"github.com/google/uuid"
	"smart-wedding-backend/internal/models"
)

// DefaultBuffer is the per-subscriber channel capacity.
const DefaultBuffer = 64

type Distributor struct {
	mu   sync.RWMutex
	subs map[uuid.UUID]map[*Subscription]struct{}
}

func NewDistributor() *Distributor {
	return &Distributor{
		subs: make(map[uuid.UUID]map[*Subscription]struct{}),
	}
}

// Subscribe opens a live channel for one wedding. The caller owns the
// subscription and must Close it when the viewer goes away.
func (d *Distributor) Subscribe(weddingID uuid.UUID) *Subscription {
	sub := &Subscription{
		weddingID: weddingID,
		ch:        make(chan models.Photo, DefaultBuffer),
		dist:      d,
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.subs[weddingID] == nil {
		d.subs[weddingID] = make(map[*Subscription]struct{})
	}
	d.subs[weddingID][sub] = struct{}{}
	return sub
}

// Publish delivers a freshly inserted photo to every subscriber of its
// wedding. Hidden photos are filtered here so no projection ever sees them.
// A subscriber that cannot keep up loses the message instead of blocking
// the pipeline; the gap is logged.
func (d *Distributor) Publish(photo models.Photo) {
	if photo.IsHidden {
		return
	}

	d.mu.RLock()
	defer d.mu.RUnlock()
	for sub := range d.subs[photo.WeddingID] {
		select {
		case sub.ch <- photo:
		default:
			log.Printf("feed: dropping photo %s for slow subscriber (wedding %s)", photo.ID, photo.WeddingID)
		}
	}
}

// SubscriberCount reports how many live channels are open for a wedding.
func (d *Distributor) SubscriberCount(weddingID uuid.UUID) int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.subs[weddingID])
}

func (d *Distributor) remove(sub *Subscription) {
	d.mu.Lock()
	defer d.mu.Unlock()
	set := d.subs[sub.weddingID]
	if set == nil {
		return
	}
	delete(set, sub)
	if len(set) == 0 {
		delete(d.subs, sub.weddingID)
	}
}

// Subscription is one viewer session's live channel.
type Subscription struct {
	weddingID uuid.UUID
	ch        chan models.Photo
	dist      *Distributor
	once      sync.Once
}

// C yields inserted photos for the subscribed wedding in delivery order.
// The channel is closed by Close.
func (s *Subscription) C() <-chan models.Photo {
	return s.ch
}

// Close releases the subscription. Safe to call more than once.
func (s *Subscription) Close() {
	s.once.Do(func() {
		s.dist.remove(s)
		close(s.ch)
	})
}
