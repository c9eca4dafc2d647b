package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Arslan-Abrahum/test-ht-sub002/internal/models"
)

func jsonBody(r *http.Request, v interface{}) error {
	return json.NewDecoder(r.Body).Decode(v)
}

func TestPlaceBid(t *testing.T) {
	var gotBody models.BidRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/auctions/item-1/bid" || r.Method != http.MethodPost {
			t.Errorf("got %s %s", r.Method, r.URL.Path)
		}
		if err := jsonBody(r, &gotBody); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.Write([]byte(`{"id":"bid-1","item_id":"item-1","amount":250.5,"status":"ACCEPTED"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	bid, err := c.PlaceBid(context.Background(), "tok", "item-1", 250.50)
	if err != nil {
		t.Fatalf("PlaceBid: %v", err)
	}
	if gotBody.Amount != 250.50 {
		t.Errorf("sent amount = %v", gotBody.Amount)
	}
	if bid.ID != "bid-1" || bid.Status != "ACCEPTED" {
		t.Errorf("bid = %+v", bid)
	}
}

func TestBidHistory(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/auctions/item-1/bids" {
			t.Errorf("path = %s", r.URL.Path)
		}
		w.Write([]byte(`[{"id":"bid-2","amount":300},{"id":"bid-1","amount":250}]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	bids, err := c.BidHistory(context.Background(), "tok", "item-1")
	if err != nil {
		t.Fatalf("BidHistory: %v", err)
	}
	if len(bids) != 2 || bids[0].Amount != 300 {
		t.Errorf("bids = %+v", bids)
	}
}

func TestWatchlistRoundTrip(t *testing.T) {
	var gotMethods []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethods = append(gotMethods, r.Method+" "+r.URL.Path)
		switch r.Method {
		case http.MethodGet:
			w.Write([]byte(`[{"item_id":"item-1"}]`))
		default:
			w.WriteHeader(http.StatusNoContent)
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	ctx := context.Background()
	if err := c.WatchItem(ctx, "tok", "item-1"); err != nil {
		t.Fatalf("WatchItem: %v", err)
	}
	entries, err := c.Watchlist(ctx, "tok")
	if err != nil {
		t.Fatalf("Watchlist: %v", err)
	}
	if len(entries) != 1 || entries[0].ItemID != "item-1" {
		t.Errorf("entries = %+v", entries)
	}
	if err := c.UnwatchItem(ctx, "tok", "item-1"); err != nil {
		t.Fatalf("UnwatchItem: %v", err)
	}

	want := []string{
		"POST /api/watchlist/item-1",
		"GET /api/watchlist",
		"DELETE /api/watchlist/item-1",
	}
	for i, w := range want {
		if gotMethods[i] != w {
			t.Errorf("call %d = %q, want %q", i, gotMethods[i], w)
		}
	}
}

func TestRefreshToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/auth/token/refresh" {
			t.Errorf("path = %s", r.URL.Path)
		}
		var body map[string]string
		if err := jsonBody(r, &body); err != nil {
			t.Errorf("decode body: %v", err)
		}
		if body["refresh"] != "old-refresh" {
			t.Errorf("refresh = %q", body["refresh"])
		}
		w.Write([]byte(`{"access":"new-access","refresh":"new-refresh"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	pair, err := c.RefreshToken(context.Background(), "old-refresh")
	if err != nil {
		t.Fatalf("RefreshToken: %v", err)
	}
	if pair.Access != "new-access" || pair.Refresh != "new-refresh" {
		t.Errorf("pair = %+v", pair)
	}
}
