package commands

import (
	"context"
	"errors"
	"time"

	"bidloop/internal/domain/auction"
	"bidloop/internal/infra"
	"bidloop/internal/pkg/clock"
	"bidloop/internal/pkg/errs"
	"bidloop/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrNotSeller        = errs.New("caller is not the seller")
	ErrDomainValidation = errs.New("domain validation error")
)

type CreateAuctionParams struct {
	SellerID    uuid.UUID
	Title       string
	Description string
	StartPrice  decimal.Decimal
	StepPrice   decimal.Decimal
	BuyNowPrice *decimal.Decimal
	EndTime     time.Time
}

type AuctionCommands interface {
	CreateAuction(ctx context.Context, params CreateAuctionParams) (uuid.UUID, error)
	ExtendAuction(ctx context.Context, auctionID, sellerID uuid.UUID, newEndTime time.Time) error
}

type auctionCommandsImpl struct {
	uow       shared.UnitOfWork
	scheduler CloseScheduler
	clock     clock.Clock
}

func NewAuctionCommands(uow shared.UnitOfWork, scheduler CloseScheduler, clock clock.Clock) AuctionCommands {
	return &auctionCommandsImpl{
		uow:       uow,
		scheduler: scheduler,
		clock:     clock,
	}
}

func (a *auctionCommandsImpl) CreateAuction(ctx context.Context, params CreateAuctionParams) (uuid.UUID, error) {
	entity, err := auction.NewAuction(
		params.SellerID,
		params.Title,
		params.Description,
		params.StartPrice,
		params.StepPrice,
		params.BuyNowPrice,
		params.EndTime,
		a.clock.Now(),
	)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Auctions().Create(ctx, entity)
	})
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	a.scheduler.Schedule(entity.ID(), entity.EndTime())
	return entity.ID(), nil
}

// ExtendAuction moves an active auction's end time forward and re-registers
// the scheduled close (cancel/replace).
func (a *auctionCommandsImpl) ExtendAuction(ctx context.Context, auctionID, sellerID uuid.UUID, newEndTime time.Time) error {
	err := a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entity, err := tx.Auctions().FindByIDForUpdate(ctx, auctionID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrAuctionNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if entity.SellerID() != sellerID {
			return ErrNotSeller
		}
		if err := entity.Extend(newEndTime); err != nil {
			if errors.Is(err, auction.ErrNotActive) {
				return ErrAuctionNotActive
			}
			return errs.Mark(err, ErrDomainValidation)
		}
		return tx.Auctions().UpdateEndTime(ctx, auctionID, newEndTime)
	})
	if err != nil {
		return err
	}

	a.scheduler.Schedule(auctionID, newEndTime)
	return nil
}
