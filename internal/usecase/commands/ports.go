package commands

import (
	"context"
	"time"

	"bidloop/internal/domain/auction"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ClosedAuction is the write-side snapshot handed to the notification
// collaborator after a closing transaction commits.
type ClosedAuction struct {
	AuctionID  uuid.UUID
	Title      string
	SellerID   uuid.UUID
	WinnerID   *uuid.UUID
	FinalPrice decimal.Decimal
	Status     auction.Status
	EndTime    time.Time
}

// Notifier is fire-and-forget: callers log returned errors and never let
// them affect the state transition that triggered them.
type Notifier interface {
	NotifySellerNoWinner(ctx context.Context, closed ClosedAuction) error
	NotifySellerSold(ctx context.Context, closed ClosedAuction) error
	NotifyBidderWon(ctx context.Context, closed ClosedAuction) error
}

// CloseScheduler registers one-shot closing actions. Schedule replaces any
// prior registration for the same auction.
type CloseScheduler interface {
	Schedule(auctionID uuid.UUID, endTime time.Time)
	Cancel(auctionID uuid.UUID)
}
