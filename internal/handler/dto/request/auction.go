package request

import (
	"strings"
	"time"

	"bidloop/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateAuctionRequest struct {
	Title       string           `json:"title" binding:"required"`
	Description string           `json:"description"`
	StartPrice  decimal.Decimal  `json:"start_price" binding:"required"`
	StepPrice   decimal.Decimal  `json:"step_price" binding:"required"`
	BuyNowPrice *decimal.Decimal `json:"buy_now_price,omitempty"`
	EndTime     time.Time        `json:"end_time" binding:"required"`
}

func (r CreateAuctionRequest) ToParams(sellerID uuid.UUID) commands.CreateAuctionParams {
	return commands.CreateAuctionParams{
		SellerID:    sellerID,
		Title:       strings.TrimSpace(r.Title),
		Description: strings.TrimSpace(r.Description),
		StartPrice:  r.StartPrice,
		StepPrice:   r.StepPrice,
		BuyNowPrice: r.BuyNowPrice,
		EndTime:     r.EndTime,
	}
}

type ExtendAuctionRequest struct {
	EndTime time.Time `json:"end_time" binding:"required"`
}
