package commands

import (
	"context"
	"log/slog"

	"bidloop/internal/domain/auction"
	"bidloop/internal/infra"
	"bidloop/internal/pkg/errs"
	"bidloop/internal/usecase/shared"

	"github.com/google/uuid"
)

// ClosingCommands owns the one-time active -> {sold, expired} transition.
// CloseAuction is idempotent: a second call observes a terminal status and
// does nothing, which guards against a timer firing concurrently with the
// startup recovery sweep.
type ClosingCommands interface {
	CloseAuction(ctx context.Context, auctionID uuid.UUID) error
	ActiveClosings(ctx context.Context) ([]shared.ActiveClosing, error)
}

type closingCommandsImpl struct {
	uow      shared.UnitOfWork
	notifier Notifier
}

func NewClosingCommands(uow shared.UnitOfWork, notifier Notifier) ClosingCommands {
	return &closingCommandsImpl{
		uow:      uow,
		notifier: notifier,
	}
}

func (c *closingCommandsImpl) CloseAuction(ctx context.Context, auctionID uuid.UUID) error {
	var closed *ClosedAuction

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		a, err := tx.Auctions().FindByIDForUpdate(ctx, auctionID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrAuctionNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if !a.IsActive() {
			// Already closed by another path.
			return nil
		}

		status := a.ClosingStatus()
		if err := tx.Auctions().UpdateStatus(ctx, auctionID, status); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		closed = &ClosedAuction{
			AuctionID:  a.ID(),
			Title:      a.Title(),
			SellerID:   a.SellerID(),
			WinnerID:   a.HighestBidderID(),
			FinalPrice: a.CurrentPrice(),
			Status:     status,
			EndTime:    a.EndTime(),
		}
		return nil
	})
	if err != nil {
		return err
	}
	if closed == nil {
		return nil
	}

	c.dispatchNotifications(ctx, *closed)
	return nil
}

func (c *closingCommandsImpl) ActiveClosings(ctx context.Context) ([]shared.ActiveClosing, error) {
	var closings []shared.ActiveClosing
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		closings, err = tx.Auctions().ListActive(ctx)
		return err
	})
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return closings, nil
}

// Notification failures must never reopen a closed auction: they are logged
// and dropped after the status transition has committed.
func (c *closingCommandsImpl) dispatchNotifications(ctx context.Context, closed ClosedAuction) {
	if closed.Status == auction.StatusSold {
		if err := c.notifier.NotifySellerSold(ctx, closed); err != nil {
			slog.Warn("failed to notify seller of sale", "auction_id", closed.AuctionID, "error", err.Error())
		}
		if err := c.notifier.NotifyBidderWon(ctx, closed); err != nil {
			slog.Warn("failed to notify winning bidder", "auction_id", closed.AuctionID, "error", err.Error())
		}
		return
	}

	if err := c.notifier.NotifySellerNoWinner(ctx, closed); err != nil {
		slog.Warn("failed to notify seller of expiry", "auction_id", closed.AuctionID, "error", err.Error())
	}
}
