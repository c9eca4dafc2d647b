package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/Arslan-Abrahum/test-ht-sub002/internal/models"
)

// ListAuctions retrieves auction items, optionally filtered by status
func (c *Client) ListAuctions(ctx context.Context, token, status string) ([]models.AuctionItem, error) {
	path := "/auctions"
	if status != "" {
		path += "?status=" + url.QueryEscape(status)
	}
	var items []models.AuctionItem
	if err := c.do(ctx, http.MethodGet, path, token, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// GetAuction retrieves a single auction item
func (c *Client) GetAuction(ctx context.Context, token, id string) (*models.AuctionItem, error) {
	var item models.AuctionItem
	if err := c.do(ctx, http.MethodGet, "/auctions/"+url.PathEscape(id), token, nil, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// ListCategories retrieves all auction categories
func (c *Client) ListCategories(ctx context.Context, token string) ([]models.Category, error) {
	var cats []models.Category
	if err := c.do(ctx, http.MethodGet, "/categories", token, nil, &cats); err != nil {
		return nil, err
	}
	return cats, nil
}

// ListUsers retrieves platform users (admin only)
func (c *Client) ListUsers(ctx context.Context, token string) ([]models.User, error) {
	var users []models.User
	if err := c.do(ctx, http.MethodGet, "/users", token, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}
