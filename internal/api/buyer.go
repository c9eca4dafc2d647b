package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/Arslan-Abrahum/test-ht-sub002/internal/models"
)

// PlaceBid submits a bid on an auction item
func (c *Client) PlaceBid(ctx context.Context, token, itemID string, amount float64) (*models.Bid, error) {
	var bid models.Bid
	path := "/auctions/" + url.PathEscape(itemID) + "/bid"
	if err := c.do(ctx, http.MethodPost, path, token, models.BidRequest{Amount: amount}, &bid); err != nil {
		return nil, err
	}
	return &bid, nil
}

// BidHistory retrieves the bid history for an auction item
func (c *Client) BidHistory(ctx context.Context, token, itemID string) ([]models.Bid, error) {
	var bids []models.Bid
	path := "/auctions/" + url.PathEscape(itemID) + "/bids"
	if err := c.do(ctx, http.MethodGet, path, token, nil, &bids); err != nil {
		return nil, err
	}
	return bids, nil
}

// Watchlist retrieves the buyer's watched items
func (c *Client) Watchlist(ctx context.Context, token string) ([]models.WatchlistEntry, error) {
	var entries []models.WatchlistEntry
	if err := c.do(ctx, http.MethodGet, "/watchlist", token, nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// WatchItem adds an item to the buyer's watchlist
func (c *Client) WatchItem(ctx context.Context, token, itemID string) error {
	return c.do(ctx, http.MethodPost, "/watchlist/"+url.PathEscape(itemID), token, nil, nil)
}

// UnwatchItem removes an item from the buyer's watchlist
func (c *Client) UnwatchItem(ctx context.Context, token, itemID string) error {
	return c.do(ctx, http.MethodDelete, "/watchlist/"+url.PathEscape(itemID), token, nil, nil)
}
