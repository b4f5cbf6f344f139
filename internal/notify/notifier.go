// Package notify keeps the transient toast queue. Toasts self-expire after
// a fixed delay or leave on explicit dismissal; each push is also published
// to redis (best effort) so the websocket stream can relay it live.
package notify

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/veeda241/DAC-website/internal/entity"
)

// Channel is the redis pub/sub channel toasts are mirrored onto.
const Channel = "club_notifications"

// DefaultTTL matches the original portal's 3000 ms toast lifetime.
const DefaultTTL = 3 * time.Second

type Notifier struct {
	mu     sync.Mutex
	queue  []entity.Notification
	timers map[string]*time.Timer

	ttl time.Duration
	rdb *redis.Client
}

// New builds a notifier with the given toast lifetime. rdb may be nil, in
// which case toasts are local only.
func New(ttl time.Duration, rdb *redis.Client) *Notifier {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Notifier{
		timers: map[string]*time.Timer{},
		ttl:    ttl,
		rdb:    rdb,
	}
}

// Push enqueues a toast and schedules its expiry.
func (n *Notifier) Push(kind entity.NotificationKind, message string) entity.Notification {
	notif := entity.Notification{
		ID:      uuid.NewString(),
		Message: message,
		Kind:    kind,
	}

	n.mu.Lock()
	n.queue = append(n.queue, notif)
	n.timers[notif.ID] = time.AfterFunc(n.ttl, func() { n.Dismiss(notif.ID) })
	n.mu.Unlock()

	n.publish(notif)
	return notif
}

func (n *Notifier) Success(message string) { n.Push(entity.NotifySuccess, message) }
func (n *Notifier) Info(message string)    { n.Push(entity.NotifyInfo, message) }
func (n *Notifier) Error(message string)   { n.Push(entity.NotifyError, message) }

// Dismiss removes a toast before its expiry. Dismissing an already-expired
// id is a no-op.
func (n *Notifier) Dismiss(id string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.removeLocked(id)
}

// Clear drops every queued toast. Called on logout.
func (n *Notifier) Clear() {
	n.mu.Lock()
	defer n.mu.Unlock()
	for id := range n.timers {
		n.timers[id].Stop()
		delete(n.timers, id)
	}
	n.queue = nil
}

// List returns the current queue in enqueue order.
func (n *Notifier) List() []entity.Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]entity.Notification, len(n.queue))
	copy(out, n.queue)
	return out
}

func (n *Notifier) removeLocked(id string) {
	if t, ok := n.timers[id]; ok {
		t.Stop()
		delete(n.timers, id)
	}
	kept := n.queue[:0:0]
	for _, item := range n.queue {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	n.queue = kept
}

func (n *Notifier) publish(notif entity.Notification) {
	if n.rdb == nil {
		return
	}
	payload, err := json.Marshal(notif)
	if err != nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	n.rdb.Publish(ctx, Channel, payload)
}
