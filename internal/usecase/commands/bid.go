package commands

import (
	"context"
	"log/slog"

	"bidloop/internal/domain/auction"
	"bidloop/internal/infra"
	"bidloop/internal/pkg/clock"
	"bidloop/internal/pkg/errs"
	"bidloop/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrAuctionNotFound         = errs.New("auction not found")
	ErrAuctionNotActive        = errs.New("auction is not active")
	ErrInvalidBidAmount        = errs.New("bid amount must be positive")
	ErrBidTooLow               = errs.New("bid below minimum amount")
	ErrSellerOwnAuction        = errs.New("seller cannot bid on own auction")
	ErrNoBuyNowPrice           = errs.New("auction has no buy-now price")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type BidOutcome string

const (
	OutcomeWinning BidOutcome = "winning"
	OutcomeOutbid  BidOutcome = "outbid"
)

type PlaceBidResult struct {
	Outcome      BidOutcome
	CurrentPrice decimal.Decimal
	LeaderID     uuid.UUID
	BidCount     int32
}

type BuyNowResult struct {
	Price    decimal.Decimal
	BidCount int32
}

type BidCommands interface {
	PlaceBid(ctx context.Context, auctionID, bidderID uuid.UUID, amount decimal.Decimal) (*PlaceBidResult, error)
	BuyNow(ctx context.Context, auctionID, bidderID uuid.UUID) (*BuyNowResult, error)
}

type bidCommandsImpl struct {
	uow       shared.UnitOfWork
	scheduler CloseScheduler
	notifier  Notifier
	clock     clock.Clock
}

func NewBidCommands(uow shared.UnitOfWork, scheduler CloseScheduler, notifier Notifier, clock clock.Clock) BidCommands {
	return &bidCommandsImpl{
		uow:       uow,
		scheduler: scheduler,
		notifier:  notifier,
		clock:     clock,
	}
}

// PlaceBid upserts the caller's standing ceiling and recomputes the visible
// price and leader inside one exclusive transaction. The FOR UPDATE lock on
// the auction row serializes concurrent bids on the same auction; bids on
// other auctions are unaffected.
func (b *bidCommandsImpl) PlaceBid(
	ctx context.Context,
	auctionID, bidderID uuid.UUID,
	amount decimal.Decimal,
) (*PlaceBidResult, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidBidAmount
	}

	var result *PlaceBidResult
	err := b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		a, err := b.lockActiveAuction(ctx, tx, auctionID)
		if err != nil {
			return err
		}
		if a.SellerID() == bidderID {
			return ErrSellerOwnAuction
		}
		if amount.LessThan(a.MinimumBid()) {
			return ErrBidTooLow
		}

		now := b.clock.Now()
		if err := tx.Commitments().Upsert(ctx, auctionID, bidderID, amount, now); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		commitments, err := tx.Commitments().ListRanked(ctx, auctionID)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		top, err := tx.Ledger().Top(ctx, auctionID)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		resolution := auction.Resolve(
			bidderID,
			a.StartPrice(), a.StepPrice(), a.CurrentPrice(),
			commitments,
			top,
		)

		for _, entry := range resolution.Appends {
			if err := tx.Ledger().Append(ctx, auctionID, entry.BidderID, entry.Amount, now); err != nil {
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
		}

		bidCount := a.BidCount() + resolution.BidCountDelta()
		if resolution.Changed || resolution.BidCountDelta() > 0 {
			if err := tx.Auctions().UpdatePricing(ctx, auctionID, resolution.Price, resolution.LeaderID, bidCount); err != nil {
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
		}

		outcome := OutcomeOutbid
		if resolution.LeaderID == bidderID {
			outcome = OutcomeWinning
		}
		result = &PlaceBidResult{
			Outcome:      outcome,
			CurrentPrice: resolution.Price,
			LeaderID:     resolution.LeaderID,
			BidCount:     bidCount,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// BuyNow ends an active auction immediately at its buy-now price. The
// pending scheduled close is cancelled after commit; notifications are
// fire-and-forget.
func (b *bidCommandsImpl) BuyNow(ctx context.Context, auctionID, bidderID uuid.UUID) (*BuyNowResult, error) {
	var (
		result *BuyNowResult
		closed ClosedAuction
	)
	err := b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		a, err := b.lockActiveAuction(ctx, tx, auctionID)
		if err != nil {
			return err
		}
		if a.SellerID() == bidderID {
			return ErrSellerOwnAuction
		}
		buyNow := a.BuyNowPrice()
		if buyNow == nil {
			return ErrNoBuyNowPrice
		}

		now := b.clock.Now()
		if err := tx.Ledger().Append(ctx, auctionID, bidderID, *buyNow, now); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		bidCount := a.BidCount() + 1
		if err := tx.Auctions().UpdatePricing(ctx, auctionID, *buyNow, bidderID, bidCount); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if err := tx.Auctions().UpdateStatus(ctx, auctionID, auction.StatusSold); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		winnerID := bidderID
		closed = ClosedAuction{
			AuctionID:  auctionID,
			Title:      a.Title(),
			SellerID:   a.SellerID(),
			WinnerID:   &winnerID,
			FinalPrice: *buyNow,
			Status:     auction.StatusSold,
			EndTime:    a.EndTime(),
		}
		result = &BuyNowResult{Price: *buyNow, BidCount: bidCount}
		return nil
	})
	if err != nil {
		return nil, err
	}

	b.scheduler.Cancel(auctionID)

	if err := b.notifier.NotifySellerSold(ctx, closed); err != nil {
		slog.Warn("failed to notify seller of buy-now sale", "auction_id", auctionID, "error", err.Error())
	}
	if err := b.notifier.NotifyBidderWon(ctx, closed); err != nil {
		slog.Warn("failed to notify buy-now winner", "auction_id", auctionID, "error", err.Error())
	}

	return result, nil
}

func (b *bidCommandsImpl) lockActiveAuction(ctx context.Context, tx shared.Tx, auctionID uuid.UUID) (*auction.Auction, error) {
	a, err := tx.Auctions().FindByIDForUpdate(ctx, auctionID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrAuctionNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !a.IsActive() {
		return nil, ErrAuctionNotActive
	}
	return a, nil
}
