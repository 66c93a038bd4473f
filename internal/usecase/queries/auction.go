package queries

import (
	"context"

	"bidloop/internal/infra"
	"bidloop/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrAuctionNotFound = errs.New("auction not found")

type AuctionReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AuctionView, error)
	ListActive(ctx context.Context) ([]*AuctionListItem, error)
	ListBids(ctx context.Context, auctionID uuid.UUID) ([]*BidView, error)
	BidStatus(ctx context.Context, auctionID, bidderID uuid.UUID) (*BidStatusView, error)
	ListWatched(ctx context.Context, userID uuid.UUID) ([]*AuctionListItem, error)
}

type AuctionQueries interface {
	GetAuction(ctx context.Context, id uuid.UUID) (*AuctionView, error)
	ListActiveAuctions(ctx context.Context) ([]*AuctionListItem, error)
	GetBidHistory(ctx context.Context, auctionID uuid.UUID) ([]*BidView, error)
	GetBidStatus(ctx context.Context, auctionID, bidderID uuid.UUID) (*BidStatusView, error)
	GetWatchlist(ctx context.Context, userID uuid.UUID) ([]*AuctionListItem, error)
}

type auctionQueriesImpl struct {
	store AuctionReadStore
}

func NewAuctionQueries(store AuctionReadStore) AuctionQueries {
	return &auctionQueriesImpl{store: store}
}

func (q *auctionQueriesImpl) GetAuction(ctx context.Context, id uuid.UUID) (*AuctionView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrAuctionNotFound
		}
		return nil, errs.Wrap(err, "failed to find auction")
	}
	return view, nil
}

func (q *auctionQueriesImpl) ListActiveAuctions(ctx context.Context) ([]*AuctionListItem, error) {
	items, err := q.store.ListActive(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list active auctions")
	}
	return items, nil
}

func (q *auctionQueriesImpl) GetBidHistory(ctx context.Context, auctionID uuid.UUID) ([]*BidView, error) {
	bids, err := q.store.ListBids(ctx, auctionID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrAuctionNotFound
		}
		return nil, errs.Wrap(err, "failed to list bids")
	}
	return bids, nil
}

func (q *auctionQueriesImpl) GetBidStatus(ctx context.Context, auctionID, bidderID uuid.UUID) (*BidStatusView, error) {
	status, err := q.store.BidStatus(ctx, auctionID, bidderID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrAuctionNotFound
		}
		return nil, errs.Wrap(err, "failed to read bid status")
	}
	return status, nil
}

func (q *auctionQueriesImpl) GetWatchlist(ctx context.Context, userID uuid.UUID) ([]*AuctionListItem, error) {
	items, err := q.store.ListWatched(ctx, userID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list watched auctions")
	}
	return items, nil
}
