package api

import (
	"context"
	"net/http"

	"github.com/Arslan-Abrahum/test-ht-sub002/internal/models"
)

// Profile retrieves the authenticated user's profile
func (c *Client) Profile(ctx context.Context, token string) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodGet, "/profile", token, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateProfile updates the authenticated user's profile fields
func (c *Client) UpdateProfile(ctx context.Context, token string, fields map[string]string) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodPut, "/profile", token, fields, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
