package live

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/Arslan-Abrahum/test-ht-sub002/internal/models"
)

// Feed maintains upstream websocket connections to the platform's
// broadcast endpoint, one per watched item, and forwards every bid event
// into the hub
type Feed struct {
	baseURL string // e.g. ws://host/ws/items
	hub     *Hub

	mu       sync.Mutex
	watching map[string]context.CancelFunc
}

// NewFeed creates a feed forwarding into hub
func NewFeed(baseURL string, hub *Hub) *Feed {
	return &Feed{
		baseURL:  baseURL,
		hub:      hub,
		watching: make(map[string]context.CancelFunc),
	}
}

// Watch ensures an upstream connection exists for the item. Safe to call
// repeatedly; only the first call per item dials.
func (f *Feed) Watch(ctx context.Context, itemID string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.watching[itemID]; ok {
		return
	}
	watchCtx, cancel := context.WithCancel(ctx)
	f.watching[itemID] = cancel
	go f.watchLoop(watchCtx, itemID)
}

// Unwatch tears down the upstream connection for an item
func (f *Feed) Unwatch(itemID string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if cancel, ok := f.watching[itemID]; ok {
		cancel()
		delete(f.watching, itemID)
	}
}

// watchLoop dials the upstream endpoint and forwards events until the
// context is cancelled, reconnecting with doubling backoff on failure
func (f *Feed) watchLoop(ctx context.Context, itemID string) {
	url := f.baseURL + "/" + itemID
	backoff := time.Second

	for {
		conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
		if err != nil {
			slog.Warn("upstream dial failed", "item", itemID, "error", err, "retry_in", backoff)
			select {
			case <-ctx.Done():
				return
			case <-time.After(backoff):
			}
			if backoff < 30*time.Second {
				backoff *= 2
			}
			continue
		}

		slog.Info("watching live item", "item", itemID)
		backoff = time.Second

		if err := f.forward(ctx, conn); err != nil {
			slog.Warn("upstream connection lost", "item", itemID, "error", err)
		}
		conn.Close()

		select {
		case <-ctx.Done():
			return
		default:
		}
	}
}

func (f *Feed) forward(ctx context.Context, conn *websocket.Conn) error {
	// unblock ReadMessage when the watch is cancelled; done reclaims the
	// watcher when this connection ends first, so reconnects do not pile
	// up parked goroutines
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			conn.Close()
		case <-done:
		}
	}()

	for {
		_, payload, err := conn.ReadMessage()
		if err != nil {
			return err
		}
		var ev models.BidEvent
		if json.Unmarshal(payload, &ev) != nil || ev.ItemID == "" {
			// keepalives and malformed frames are not relayed
			continue
		}
		f.hub.Broadcast(ev.ItemID, payload)
	}
}
