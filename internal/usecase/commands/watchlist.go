package commands

import (
	"context"

	"bidloop/internal/infra"
	"bidloop/internal/pkg/clock"
	"bidloop/internal/pkg/errs"
	"bidloop/internal/usecase/shared"

	"github.com/google/uuid"
)

type WatchlistCommands interface {
	Watch(ctx context.Context, userID, auctionID uuid.UUID) error
	Unwatch(ctx context.Context, userID, auctionID uuid.UUID) error
}

type watchlistCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewWatchlistCommands(uow shared.UnitOfWork, clock clock.Clock) WatchlistCommands {
	return &watchlistCommandsImpl{
		uow:   uow,
		clock: clock,
	}
}

// Watch is idempotent: re-watching an already watched auction succeeds.
func (w *watchlistCommandsImpl) Watch(ctx context.Context, userID, auctionID uuid.UUID) error {
	err := w.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Watchlist().Add(ctx, userID, auctionID, w.clock.Now())
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrAuctionNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (w *watchlistCommandsImpl) Unwatch(ctx context.Context, userID, auctionID uuid.UUID) error {
	err := w.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Watchlist().Remove(ctx, userID, auctionID)
	})
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}
