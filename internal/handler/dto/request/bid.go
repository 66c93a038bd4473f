package request

import "github.com/shopspring/decimal"

// PlaceBidRequest carries the bidder's maximum amount. The engine bids on
// the caller's behalf up to this ceiling; it is never shown to others.
type PlaceBidRequest struct {
	MaxAmount decimal.Decimal `json:"max_amount" binding:"required"`
}
