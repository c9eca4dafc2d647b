package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"github.com/Arslan-Abrahum/test-ht-sub002/internal/live"
	"github.com/Arslan-Abrahum/test-ht-sub002/internal/models"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// the console serves its own pages; tighten if ever exposed raw
		return true
	},
}

// LiveAuctions lists the currently running auctions with their
// countdowns; prices update over the page's websocket
func (h *Handler) LiveAuctions(w http.ResponseWriter, r *http.Request) {
	sess := currentSession(r)
	items, err := h.API.ListAuctions(r.Context(), sess.AccessToken, models.StatusActive)
	if err != nil {
		h.handleAPIError(w, r, err, sess.LandingRoute())
		return
	}
	h.render(w, r, "live-auctions.html", &pageData{
		Session: sess,
		Data:    map[string]interface{}{"Listing": buildListing(items, r)},
	})
}

// AuctionDetail shows one auction with its full bid history; rows on the
// live page link here
func (h *Handler) AuctionDetail(w http.ResponseWriter, r *http.Request) {
	sess := currentSession(r)
	id := mux.Vars(r)["id"]

	item, err := h.API.GetAuction(r.Context(), sess.AccessToken, id)
	if err != nil {
		h.handleAPIError(w, r, err, sess.LandingRoute())
		return
	}
	bids, err := h.API.BidHistory(r.Context(), sess.AccessToken, id)
	if err != nil {
		h.handleAPIError(w, r, err, sess.LandingRoute())
		return
	}

	images := make([]string, 0, len(item.Images))
	for _, img := range item.Images {
		images = append(images, h.mediaURL(img))
	}
	h.render(w, r, "auction-detail.html", &pageData{
		Session: sess,
		Data: map[string]interface{}{
			"Item":   item,
			"Bids":   bids,
			"Images": images,
		},
	})
}

// LiveSocket upgrades the connection and subscribes the browser to bid
// events for one auction item
func (h *Handler) LiveSocket(w http.ResponseWriter, r *http.Request) {
	itemID := mux.Vars(r)["itemID"]
	if itemID == "" {
		http.Error(w, "item id is required", http.StatusBadRequest)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Warn("websocket upgrade failed", "error", err)
		return
	}

	client := &live.Client{
		ID:     uuid.New().String(),
		ItemID: itemID,
		Conn:   conn,
		Send:   make(chan []byte, 256),
	}
	h.Hub.Register(client)
	// the upstream watch outlives this request; it serves every browser
	// on the item
	h.Feed.Watch(context.Background(), itemID)
	go client.ReadPump(h.Hub)
}
