package response

import (
	"time"

	"bidloop/internal/usecase/commands"
	"bidloop/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PlaceBidResponse struct {
	Outcome      string          `json:"outcome"`
	CurrentPrice decimal.Decimal `json:"currentPrice"`
	BidCount     int32           `json:"bidCount"`
}

type BuyNowResponse struct {
	Price    decimal.Decimal `json:"price"`
	BidCount int32           `json:"bidCount"`
}

type BidResponse struct {
	BidderID   uuid.UUID       `json:"bidderId"`
	BidderName string          `json:"bidderName"`
	Amount     decimal.Decimal `json:"amount"`
	CreatedAt  time.Time       `json:"createdAt"`
}

type BidStatusResponse struct {
	Outcome      string           `json:"outcome"`
	CurrentPrice decimal.Decimal  `json:"currentPrice"`
	MaxAmount    *decimal.Decimal `json:"maxAmount,omitempty"`
	BidCount     int32            `json:"bidCount"`
}

func FromPlaceBidResult(r *commands.PlaceBidResult) *PlaceBidResponse {
	return &PlaceBidResponse{
		Outcome:      string(r.Outcome),
		CurrentPrice: r.CurrentPrice,
		BidCount:     r.BidCount,
	}
}

func FromBuyNowResult(r *commands.BuyNowResult) *BuyNowResponse {
	return &BuyNowResponse{
		Price:    r.Price,
		BidCount: r.BidCount,
	}
}

func FromBidView(rm *queries.BidView) *BidResponse {
	return &BidResponse{
		BidderID:   rm.BidderID,
		BidderName: rm.BidderName,
		Amount:     rm.Amount,
		CreatedAt:  rm.CreatedAt,
	}
}

func FromBidStatusView(rm *queries.BidStatusView) *BidStatusResponse {
	return &BidStatusResponse{
		Outcome:      rm.Outcome,
		CurrentPrice: rm.CurrentPrice,
		MaxAmount:    rm.MaxAmount,
		BidCount:     rm.BidCount,
	}
}
