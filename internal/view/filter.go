package view

import (
	"strings"

	"github.com/Arslan-Abrahum/test-ht-sub002/internal/models"
)

// FilterAuctions applies the listing pages' client-side search: a
// case-insensitive substring match over title, id and seller name, plus an
// exact status filter. Empty query and status pass everything through.
func FilterAuctions(items []models.AuctionItem, query, status string) []models.AuctionItem {
	query = strings.ToLower(strings.TrimSpace(query))
	out := make([]models.AuctionItem, 0, len(items))
	for _, item := range items {
		if status != "" && item.Status != status {
			continue
		}
		if query != "" && !matches(item, query) {
			continue
		}
		out = append(out, item)
	}
	return out
}

func matches(item models.AuctionItem, query string) bool {
	return strings.Contains(strings.ToLower(item.Title), query) ||
		strings.Contains(strings.ToLower(item.ID), query) ||
		strings.Contains(strings.ToLower(item.SellerName), query)
}
