package auction

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidStartPrice  = errors.New("start price must be positive")
	ErrInvalidStepPrice   = errors.New("step price must be positive")
	ErrInvalidBuyNowPrice = errors.New("buy-now price must exceed start price")
	ErrEndTimeInPast      = errors.New("end time must be in the future")
	ErrEmptyTitle         = errors.New("title must not be empty")
	ErrInvalidStatus      = errors.New("invalid auction status")
	ErrNotActive          = errors.New("auction is not active")
	ErrNoBuyNowPrice      = errors.New("auction has no buy-now price")
)

type Auction struct {
	id              uuid.UUID
	sellerID        uuid.UUID
	title           string
	description     string
	startPrice      decimal.Decimal
	stepPrice       decimal.Decimal
	currentPrice    decimal.Decimal
	buyNowPrice     *decimal.Decimal
	highestBidderID *uuid.UUID
	bidCount        int32
	status          Status
	endTime         time.Time
	createdAt       time.Time
	updatedAt       time.Time
}

func NewAuction(
	sellerID uuid.UUID,
	title, description string,
	startPrice, stepPrice decimal.Decimal,
	buyNowPrice *decimal.Decimal,
	endTime time.Time,
	now time.Time,
) (*Auction, error) {
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if !startPrice.IsPositive() {
		return nil, ErrInvalidStartPrice
	}
	if !stepPrice.IsPositive() {
		return nil, ErrInvalidStepPrice
	}
	if buyNowPrice != nil && !buyNowPrice.GreaterThan(startPrice) {
		return nil, ErrInvalidBuyNowPrice
	}
	if !endTime.After(now) {
		return nil, ErrEndTimeInPast
	}

	return &Auction{
		id:           uuid.New(),
		sellerID:     sellerID,
		title:        title,
		description:  description,
		startPrice:   startPrice,
		stepPrice:    stepPrice,
		currentPrice: startPrice,
		buyNowPrice:  buyNowPrice,
		status:       StatusActive,
		endTime:      endTime,
	}, nil
}

func Reconstruct(
	id, sellerID uuid.UUID,
	title, description string,
	startPrice, stepPrice, currentPrice decimal.Decimal,
	buyNowPrice *decimal.Decimal,
	highestBidderID *uuid.UUID,
	bidCount int32,
	status Status,
	endTime, createdAt, updatedAt time.Time,
) *Auction {
	return &Auction{
		id:              id,
		sellerID:        sellerID,
		title:           title,
		description:     description,
		startPrice:      startPrice,
		stepPrice:       stepPrice,
		currentPrice:    currentPrice,
		buyNowPrice:     buyNowPrice,
		highestBidderID: highestBidderID,
		bidCount:        bidCount,
		status:          status,
		endTime:         endTime,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

func (a *Auction) IsActive() bool {
	return a.status == StatusActive
}

func (a *Auction) HasLeader() bool {
	return a.highestBidderID != nil
}

// MinimumBid is the smallest acceptable ledger bid: the start price while no
// one leads, otherwise one step above the visible price.
func (a *Auction) MinimumBid() decimal.Decimal {
	if !a.HasLeader() {
		return a.startPrice
	}
	return a.currentPrice.Add(a.stepPrice)
}

func (a *Auction) HasEnded(now time.Time) bool {
	return !now.Before(a.endTime)
}

// ClosingStatus is the terminal status the scheduler assigns at end time.
func (a *Auction) ClosingStatus() Status {
	if a.HasLeader() {
		return StatusSold
	}
	return StatusExpired
}

func (a *Auction) Extend(newEndTime time.Time) error {
	if !a.IsActive() {
		return ErrNotActive
	}
	if !newEndTime.After(a.endTime) {
		return ErrEndTimeInPast
	}
	a.endTime = newEndTime
	return nil
}

func (a *Auction) ID() uuid.UUID                 { return a.id }
func (a *Auction) SellerID() uuid.UUID           { return a.sellerID }
func (a *Auction) Title() string                 { return a.title }
func (a *Auction) Description() string           { return a.description }
func (a *Auction) StartPrice() decimal.Decimal   { return a.startPrice }
func (a *Auction) StepPrice() decimal.Decimal    { return a.stepPrice }
func (a *Auction) CurrentPrice() decimal.Decimal { return a.currentPrice }
func (a *Auction) BuyNowPrice() *decimal.Decimal { return a.buyNowPrice }
func (a *Auction) HighestBidderID() *uuid.UUID   { return a.highestBidderID }
func (a *Auction) BidCount() int32               { return a.bidCount }
func (a *Auction) Status() Status                { return a.status }
func (a *Auction) EndTime() time.Time            { return a.endTime }
func (a *Auction) CreatedAt() time.Time          { return a.createdAt }
func (a *Auction) UpdatedAt() time.Time          { return a.updatedAt }
