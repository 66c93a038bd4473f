package queries

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Read models (DTO for read side)
type AuctionView struct {
	ID              uuid.UUID        `json:"id"`
	SellerID        uuid.UUID        `json:"seller_id"`
	SellerName      string           `json:"seller_name"`
	Title           string           `json:"title"`
	Description     string           `json:"description"`
	StartPrice      decimal.Decimal  `json:"start_price"`
	StepPrice       decimal.Decimal  `json:"step_price"`
	CurrentPrice    decimal.Decimal  `json:"current_price"`
	BuyNowPrice     *decimal.Decimal `json:"buy_now_price,omitempty"`
	HighestBidderID *uuid.UUID       `json:"highest_bidder_id,omitempty"`
	BidCount        int32            `json:"bid_count"`
	Status          string           `json:"status"`
	EndTime         time.Time        `json:"end_time"`
	CreatedAt       time.Time        `json:"created_at"`
}

type AuctionListItem struct {
	ID           uuid.UUID       `json:"id"`
	Title        string          `json:"title"`
	CurrentPrice decimal.Decimal `json:"current_price"`
	BidCount     int32           `json:"bid_count"`
	Status       string          `json:"status"`
	EndTime      time.Time       `json:"end_time"`
}

// BidView is one public ledger entry. Private ceilings never appear here.
type BidView struct {
	BidderID   uuid.UUID       `json:"bidder_id"`
	BidderName string          `json:"bidder_name"`
	Amount     decimal.Decimal `json:"amount"`
	CreatedAt  time.Time       `json:"created_at"`
}

// BidStatusView is the caller's own standing on an auction. MaxAmount is
// the caller's ceiling only; other bidders' ceilings are never exposed.
type BidStatusView struct {
	Outcome      string           `json:"outcome"` // winning | outbid | none
	CurrentPrice decimal.Decimal  `json:"current_price"`
	MaxAmount    *decimal.Decimal `json:"max_amount,omitempty"`
	BidCount     int32            `json:"bid_count"`
}
