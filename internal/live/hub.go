// Package live relays bid events from the platform's broadcast endpoint
// to dashboard browsers watching live auctions.
package live

import (
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// Hub fans bid events out to the browser connections watching each
// auction item
type Hub struct {
	subscribers sync.Map // itemID -> *sync.Map of *Client
	onEmpty     func(itemID string)

	register   chan *Client
	unregister chan *Client
	broadcast  chan *event
}

type event struct {
	itemID  string
	payload []byte
}

// Client is one browser connection watching an item
type Client struct {
	ID     string
	ItemID string
	Conn   *websocket.Conn
	Send   chan []byte
}

// NewHub creates a hub; call Run in a goroutine to start it
func NewHub() *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan *event, 256),
	}
}

// OnEmpty sets a callback invoked from the hub loop when the last
// watcher of an item disconnects; set it before Run
func (h *Hub) OnEmpty(fn func(itemID string)) {
	h.onEmpty = fn
}

// Run drives the hub's connection lifecycle and fan-out loop
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.add(client)
		case client := <-h.unregister:
			h.remove(client)
		case ev := <-h.broadcast:
			h.fanOut(ev.itemID, ev.payload)
		}
	}
}

// Register adds a browser connection to the hub
func (h *Hub) Register(client *Client) {
	h.register <- client
}

// Unregister drops a browser connection
func (h *Hub) Unregister(client *Client) {
	h.unregister <- client
}

// Broadcast queues a payload for every connection watching the item
func (h *Hub) Broadcast(itemID string, payload []byte) {
	h.broadcast <- &event{itemID: itemID, payload: payload}
}

// SubscriberCount reports how many connections watch an item
func (h *Hub) SubscriberCount(itemID string) int {
	set, ok := h.subscribers.Load(itemID)
	if !ok {
		return 0
	}
	count := 0
	set.(*sync.Map).Range(func(_, _ interface{}) bool {
		count++
		return true
	})
	return count
}

func (h *Hub) add(client *Client) {
	set, _ := h.subscribers.LoadOrStore(client.ItemID, &sync.Map{})
	set.(*sync.Map).Store(client, true)
	slog.Debug("live client subscribed", "client", client.ID, "item", client.ItemID)
	go client.writePump()
}

// remove drops a client from its item's subscriber set. Idempotent: the
// fan-out drop path and the client's own unregister can both land here.
// Runs on the hub loop only.
func (h *Hub) remove(client *Client) {
	set, ok := h.subscribers.Load(client.ItemID)
	if !ok {
		return
	}
	if _, present := set.(*sync.Map).LoadAndDelete(client); !present {
		return
	}
	close(client.Send)
	client.Conn.Close()
	slog.Debug("live client unsubscribed", "client", client.ID, "item", client.ItemID)

	if h.SubscriberCount(client.ItemID) == 0 {
		h.subscribers.Delete(client.ItemID)
		if h.onEmpty != nil {
			h.onEmpty(client.ItemID)
		}
	}
}

func (h *Hub) fanOut(itemID string, payload []byte) {
	set, ok := h.subscribers.Load(itemID)
	if !ok {
		return
	}
	set.(*sync.Map).Range(func(key, _ interface{}) bool {
		client := key.(*Client)
		select {
		case client.Send <- payload:
		default:
			// a full send buffer means a stalled browser; drop it inline —
			// sending on the unregister channel here would block the hub
			// loop on itself
			h.remove(client)
		}
		return true
	})
}

// writePump pushes queued payloads and keepalive pings to the browser
func (c *Client) writePump() {
	ticker := time.NewTicker(54 * time.Second)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()

	for {
		select {
		case payload, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if !ok {
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.Conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}
		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// ReadPump discards inbound frames and unregisters on disconnect; run it
// in a goroutine per connection
func (c *Client) ReadPump(h *Hub) {
	defer func() {
		h.Unregister(c)
	}()

	c.Conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	c.Conn.SetPongHandler(func(string) error {
		c.Conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				slog.Debug("live client read error", "client", c.ID, "error", err)
			}
			return
		}
	}
}
