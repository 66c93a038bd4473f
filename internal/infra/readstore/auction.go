package readstore

import (
	"context"
	"errors"

	"bidloop/internal/infra"
	"bidloop/internal/infra/db"
	"bidloop/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type AuctionReadStore struct {
	db db.DBTX
}

func NewAuctionReadStore(dbtx db.DBTX) *AuctionReadStore {
	return &AuctionReadStore{db: dbtx}
}

func (s *AuctionReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuctionView, error) {
	const query = `
		SELECT a.id, a.seller_id, u.display_name, a.title, a.description,
		       a.start_price::text, a.step_price::text, a.current_price::text, a.buy_now_price::text,
		       a.highest_bidder_id, a.bid_count, a.status, a.end_time, a.created_at
		FROM auctions a
		JOIN users u ON u.id = a.seller_id
		WHERE a.id = $1`

	var (
		view                          queries.AuctionView
		startRaw, stepRaw, currentRaw string
		buyNowRaw                     *string
	)
	err := s.db.QueryRow(ctx, query, id).Scan(
		&view.ID, &view.SellerID, &view.SellerName, &view.Title, &view.Description,
		&startRaw, &stepRaw, &currentRaw, &buyNowRaw,
		&view.HighestBidderID, &view.BidCount, &view.Status, &view.EndTime, &view.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "auction not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to read auction", err)
	}

	if view.StartPrice, err = decimal.NewFromString(startRaw); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "corrupt start price", err)
	}
	if view.StepPrice, err = decimal.NewFromString(stepRaw); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "corrupt step price", err)
	}
	if view.CurrentPrice, err = decimal.NewFromString(currentRaw); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "corrupt current price", err)
	}
	if buyNowRaw != nil {
		buyNow, err := decimal.NewFromString(*buyNowRaw)
		if err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "corrupt buy-now price", err)
		}
		view.BuyNowPrice = &buyNow
	}

	return &view, nil
}

func (s *AuctionReadStore) ListActive(ctx context.Context) ([]*queries.AuctionListItem, error) {
	const query = `
		SELECT id, title, current_price::text, bid_count, status, end_time
		FROM auctions
		WHERE status = 'active'
		ORDER BY end_time ASC`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to list active auctions", err)
	}
	defer rows.Close()

	return scanListItems(rows)
}

func (s *AuctionReadStore) ListBids(ctx context.Context, auctionID uuid.UUID) ([]*queries.BidView, error) {
	const query = `
		SELECT b.bidder_id, u.display_name, b.amount::text, b.created_at
		FROM bid_ledger b
		JOIN users u ON u.id = b.bidder_id
		WHERE b.auction_id = $1
		ORDER BY b.amount DESC, b.created_at ASC, b.id DESC`

	rows, err := s.db.Query(ctx, query, auctionID)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to list bids", err)
	}
	defer rows.Close()

	var bids []*queries.BidView
	for rows.Next() {
		var (
			bid    queries.BidView
			rawAmt string
		)
		if err := rows.Scan(&bid.BidderID, &bid.BidderName, &rawAmt, &bid.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan bid", err)
		}
		if bid.Amount, err = decimal.NewFromString(rawAmt); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "corrupt bid amount", err)
		}
		bids = append(bids, &bid)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to iterate bids", err)
	}
	return bids, nil
}

// BidStatus reports the caller's own standing. The outer join keeps the
// query answering "none" when the caller never committed on this auction.
func (s *AuctionReadStore) BidStatus(ctx context.Context, auctionID, bidderID uuid.UUID) (*queries.BidStatusView, error) {
	const query = `
		SELECT a.current_price::text, a.bid_count, a.highest_bidder_id, c.max_amount::text
		FROM auctions a
		LEFT JOIN max_commitments c ON c.auction_id = a.id AND c.bidder_id = $2
		WHERE a.id = $1`

	var (
		currentRaw      string
		bidCount        int32
		highestBidderID *uuid.UUID
		maxRaw          *string
	)
	err := s.db.QueryRow(ctx, query, auctionID, bidderID).Scan(&currentRaw, &bidCount, &highestBidderID, &maxRaw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "auction not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to read bid status", err)
	}

	view := &queries.BidStatusView{BidCount: bidCount}
	if view.CurrentPrice, err = decimal.NewFromString(currentRaw); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "corrupt current price", err)
	}

	switch {
	case maxRaw == nil:
		view.Outcome = "none"
	case highestBidderID != nil && *highestBidderID == bidderID:
		view.Outcome = string(outcomeWinning)
	default:
		view.Outcome = string(outcomeOutbid)
	}

	if maxRaw != nil {
		maxAmount, err := decimal.NewFromString(*maxRaw)
		if err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "corrupt commitment amount", err)
		}
		view.MaxAmount = &maxAmount
	}

	return view, nil
}

func (s *AuctionReadStore) ListWatched(ctx context.Context, userID uuid.UUID) ([]*queries.AuctionListItem, error) {
	const query = `
		SELECT a.id, a.title, a.current_price::text, a.bid_count, a.status, a.end_time
		FROM watchlist w
		JOIN auctions a ON a.id = w.auction_id
		WHERE w.user_id = $1
		ORDER BY a.end_time ASC`

	rows, err := s.db.Query(ctx, query, userID)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to list watched auctions", err)
	}
	defer rows.Close()

	return scanListItems(rows)
}

type outcome string

const (
	outcomeWinning outcome = "winning"
	outcomeOutbid  outcome = "outbid"
)

func scanListItems(rows pgx.Rows) ([]*queries.AuctionListItem, error) {
	var items []*queries.AuctionListItem
	for rows.Next() {
		var (
			item   queries.AuctionListItem
			rawAmt string
		)
		if err := rows.Scan(&item.ID, &item.Title, &rawAmt, &item.BidCount, &item.Status, &item.EndTime); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan auction row", err)
		}
		price, err := decimal.NewFromString(rawAmt)
		if err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "corrupt price", err)
		}
		item.CurrentPrice = price
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to iterate auction rows", err)
	}
	return items, nil
}
