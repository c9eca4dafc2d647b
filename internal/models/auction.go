package models

import "time"

// AuctionItem represents a listing on the platform
type AuctionItem struct {
	ID           string            `json:"id"`
	Title        string            `json:"title"`
	Description  string            `json:"description"`
	Category     string            `json:"category"`
	Status       string            `json:"status"`
	InitialPrice float64           `json:"initial_price"`
	CurrentBid   float64           `json:"current_bid"`
	BuyNowPrice  float64           `json:"buy_now_price,omitempty"`
	BuyNow       bool              `json:"buy_now_enabled,omitempty"`
	StartDate    time.Time         `json:"start_date"`
	EndDate      time.Time         `json:"end_date"`
	Images       []string          `json:"images"`
	SellerID     string            `json:"seller_id"`
	SellerName   string            `json:"seller_name,omitempty"`
	ManagerID    string            `json:"manager_id,omitempty"`
	SpecificData map[string]string `json:"specific_data,omitempty"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

// AuctionItem status constants
const (
	StatusDraft    = "DRAFT"
	StatusPending  = "PENDING"
	StatusActive   = "ACTIVE"
	StatusApproved = "APPROVED"
	StatusRejected = "REJECTED"
	StatusClosed   = "CLOSED"
)

// Category represents an auction category
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Bid represents a single bid on an auction item
type Bid struct {
	ID        string    `json:"id"`
	ItemID    string    `json:"item_id"`
	UserID    string    `json:"user_id"`
	Amount    float64   `json:"amount"`
	Timestamp time.Time `json:"timestamp"`
	Status    string    `json:"status"`
}

// BidRequest is the outgoing payload when placing a bid
type BidRequest struct {
	Amount float64 `json:"amount"`
}

// BidEvent is pushed by the platform's broadcast endpoint when a bid
// is accepted; relayed to dashboard browsers watching the item
type BidEvent struct {
	EventID     string    `json:"event_id"`
	ItemID      string    `json:"item_id"`
	UserID      string    `json:"user_id"`
	Amount      float64   `json:"amount"`
	PreviousBid float64   `json:"previous_bid"`
	Timestamp   time.Time `json:"timestamp"`
}

// WatchlistEntry is an item a buyer is watching
type WatchlistEntry struct {
	ItemID  string    `json:"item_id"`
	AddedAt time.Time `json:"added_at"`
}
