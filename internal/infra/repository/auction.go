package repository

import (
	"context"
	"time"

	"bidloop/internal/domain/auction"
	"bidloop/internal/infra"
	"bidloop/internal/infra/db"
	"bidloop/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type AuctionRepository struct {
	db db.DBTX
}

func NewAuctionRepository(dbtx db.DBTX) *AuctionRepository {
	return &AuctionRepository{db: dbtx}
}

func (r *AuctionRepository) Create(ctx context.Context, a *auction.Auction) error {
	const query = `
		INSERT INTO auctions (
			id, seller_id, title, description,
			start_price, step_price, current_price, buy_now_price,
			status, end_time
		) VALUES ($1, $2, $3, $4, $5::numeric, $6::numeric, $7::numeric, $8::numeric, $9, $10)`

	var buyNow *string
	if p := a.BuyNowPrice(); p != nil {
		s := p.String()
		buyNow = &s
	}

	_, err := r.db.Exec(ctx, query,
		a.ID(), a.SellerID(), a.Title(), a.Description(),
		a.StartPrice().String(), a.StepPrice().String(), a.CurrentPrice().String(), buyNow,
		a.Status().String(), a.EndTime(),
	)
	if err != nil {
		return classifyErr("failed to create auction", err)
	}
	return nil
}

// FindByIDForUpdate reads the auction under an exclusive row lock. All
// concurrent PlaceBid/close calls on the same auction queue here; rows of
// other auctions are untouched.
func (r *AuctionRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*auction.Auction, error) {
	const query = `
		SELECT id, seller_id, title, description,
		       start_price::text, step_price::text, current_price::text, buy_now_price::text,
		       highest_bidder_id, bid_count, status, end_time, created_at, updated_at
		FROM auctions
		WHERE id = $1
		FOR UPDATE`

	var (
		rowID, sellerID          uuid.UUID
		title, description       string
		startRaw, stepRaw        string
		currentRaw               string
		buyNowRaw                *string
		highestBidderID          *uuid.UUID
		bidCount                 int32
		statusRaw                string
		endTime, created, updated time.Time
	)
	err := r.db.QueryRow(ctx, query, id).Scan(
		&rowID, &sellerID, &title, &description,
		&startRaw, &stepRaw, &currentRaw, &buyNowRaw,
		&highestBidderID, &bidCount, &statusRaw, &endTime, &created, &updated,
	)
	if err != nil {
		return nil, classifyErr("failed to lock auction", err)
	}

	startPrice, err := parseAmount(startRaw)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "corrupt start price", err)
	}
	stepPrice, err := parseAmount(stepRaw)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "corrupt step price", err)
	}
	currentPrice, err := parseAmount(currentRaw)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "corrupt current price", err)
	}
	buyNowPrice, err := parseOptionalAmount(buyNowRaw)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "corrupt buy-now price", err)
	}
	status, err := auction.ParseStatus(statusRaw)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "corrupt auction status", err)
	}

	return auction.Reconstruct(
		rowID, sellerID, title, description,
		startPrice, stepPrice, currentPrice, buyNowPrice,
		highestBidderID, bidCount, status,
		endTime, created, updated,
	), nil
}

func (r *AuctionRepository) UpdatePricing(ctx context.Context, id uuid.UUID, price decimal.Decimal, leaderID uuid.UUID, bidCount int32) error {
	const query = `
		UPDATE auctions
		SET current_price = $2::numeric, highest_bidder_id = $3, bid_count = $4, updated_at = now()
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id, price.String(), leaderID, bidCount)
	if err != nil {
		return classifyErr("failed to update auction pricing", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindNotFound, "auction vanished during pricing update", nil)
	}
	return nil
}

func (r *AuctionRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status auction.Status) error {
	const query = `
		UPDATE auctions
		SET status = $2, updated_at = now()
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id, status.String())
	if err != nil {
		return classifyErr("failed to update auction status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindNotFound, "auction vanished during status update", nil)
	}
	return nil
}

func (r *AuctionRepository) UpdateEndTime(ctx context.Context, id uuid.UUID, endTime time.Time) error {
	const query = `
		UPDATE auctions
		SET end_time = $2, updated_at = now()
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id, endTime)
	if err != nil {
		return classifyErr("failed to update auction end time", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindNotFound, "auction vanished during end time update", nil)
	}
	return nil
}

func (r *AuctionRepository) ListActive(ctx context.Context) ([]shared.ActiveClosing, error) {
	const query = `
		SELECT id, end_time
		FROM auctions
		WHERE status = 'active'
		ORDER BY end_time`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, classifyErr("failed to list active auctions", err)
	}
	defer rows.Close()

	var closings []shared.ActiveClosing
	for rows.Next() {
		var c shared.ActiveClosing
		if err := rows.Scan(&c.AuctionID, &c.EndTime); err != nil {
			return nil, classifyErr("failed to scan active auction", err)
		}
		closings = append(closings, c)
	}
	if err := rows.Err(); err != nil {
		return nil, classifyErr("failed to iterate active auctions", err)
	}
	return closings, nil
}
