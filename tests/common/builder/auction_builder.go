//go:build unit || e2e || integration

package builder

import (
	"time"

	"bidloop/internal/domain/auction"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type AuctionBuilder struct {
	SellerID    uuid.UUID
	Title       string
	Description string
	StartPrice  decimal.Decimal
	StepPrice   decimal.Decimal
	BuyNowPrice *decimal.Decimal
	EndTime     time.Time
	Now         time.Time
}

func NewAuctionBuilder() *AuctionBuilder {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return &AuctionBuilder{
		SellerID:    uuid.New(),
		Title:       "Vintage camera",
		Description: "Fully working, some cosmetic wear",
		StartPrice:  decimal.NewFromInt(50),
		StepPrice:   decimal.NewFromInt(10),
		EndTime:     now.Add(48 * time.Hour),
		Now:         now,
	}
}

func (b *AuctionBuilder) With(mutate func(*AuctionBuilder)) *AuctionBuilder {
	mutate(b)
	return b
}

func (b *AuctionBuilder) BuildDomain() (*auction.Auction, error) {
	return auction.NewAuction(
		b.SellerID,
		b.Title,
		b.Description,
		b.StartPrice,
		b.StepPrice,
		b.BuyNowPrice,
		b.EndTime,
		b.Now,
	)
}

// Fluent builder methods
func (b *AuctionBuilder) WithTitle(title string) *AuctionBuilder {
	b.Title = title
	return b
}

func (b *AuctionBuilder) WithStartPrice(p decimal.Decimal) *AuctionBuilder {
	b.StartPrice = p
	return b
}

func (b *AuctionBuilder) WithStepPrice(p decimal.Decimal) *AuctionBuilder {
	b.StepPrice = p
	return b
}

func (b *AuctionBuilder) WithBuyNowPrice(p decimal.Decimal) *AuctionBuilder {
	b.BuyNowPrice = &p
	return b
}

func (b *AuctionBuilder) WithEndTime(t time.Time) *AuctionBuilder {
	b.EndTime = t
	return b
}
