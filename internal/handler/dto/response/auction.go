package response

import (
	"time"

	"bidloop/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type AuctionResponse struct {
	ID              uuid.UUID        `json:"id"`
	SellerID        uuid.UUID        `json:"sellerId"`
	SellerName      string           `json:"sellerName"`
	Title           string           `json:"title"`
	Description     string           `json:"description"`
	StartPrice      decimal.Decimal  `json:"startPrice"`
	StepPrice       decimal.Decimal  `json:"stepPrice"`
	CurrentPrice    decimal.Decimal  `json:"currentPrice"`
	BuyNowPrice     *decimal.Decimal `json:"buyNowPrice,omitempty"`
	HighestBidderID *uuid.UUID       `json:"highestBidderId,omitempty"`
	BidCount        int32            `json:"bidCount"`
	Status          string           `json:"status"`
	EndTime         time.Time        `json:"endTime"`
	CreatedAt       time.Time        `json:"createdAt"`
}

type AuctionListResponse struct {
	ID           uuid.UUID       `json:"id"`
	Title        string          `json:"title"`
	CurrentPrice decimal.Decimal `json:"currentPrice"`
	BidCount     int32           `json:"bidCount"`
	Status       string          `json:"status"`
	EndTime      time.Time       `json:"endTime"`
}

type CreateAuctionResponse struct {
	AuctionID uuid.UUID `json:"auctionId"`
}

func FromAuctionView(rm *queries.AuctionView) *AuctionResponse {
	return &AuctionResponse{
		ID:              rm.ID,
		SellerID:        rm.SellerID,
		SellerName:      rm.SellerName,
		Title:           rm.Title,
		Description:     rm.Description,
		StartPrice:      rm.StartPrice,
		StepPrice:       rm.StepPrice,
		CurrentPrice:    rm.CurrentPrice,
		BuyNowPrice:     rm.BuyNowPrice,
		HighestBidderID: rm.HighestBidderID,
		BidCount:        rm.BidCount,
		Status:          rm.Status,
		EndTime:         rm.EndTime,
		CreatedAt:       rm.CreatedAt,
	}
}

func FromAuctionListItem(rm *queries.AuctionListItem) *AuctionListResponse {
	return &AuctionListResponse{
		ID:           rm.ID,
		Title:        rm.Title,
		CurrentPrice: rm.CurrentPrice,
		BidCount:     rm.BidCount,
		Status:       rm.Status,
		EndTime:      rm.EndTime,
	}
}
