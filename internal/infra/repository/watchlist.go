package repository

import (
	"context"
	"time"

	"bidloop/internal/infra/db"

	"github.com/google/uuid"
)

type WatchlistRepository struct {
	db db.DBTX
}

func NewWatchlistRepository(dbtx db.DBTX) *WatchlistRepository {
	return &WatchlistRepository{db: dbtx}
}

func (r *WatchlistRepository) Add(ctx context.Context, userID, auctionID uuid.UUID, now time.Time) error {
	const query = `
		INSERT INTO watchlist (user_id, auction_id, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, auction_id) DO NOTHING`

	_, err := r.db.Exec(ctx, query, userID, auctionID, now)
	if err != nil {
		return classifyErr("failed to add watchlist entry", err)
	}
	return nil
}

func (r *WatchlistRepository) Remove(ctx context.Context, userID, auctionID uuid.UUID) error {
	const query = `
		DELETE FROM watchlist
		WHERE user_id = $1 AND auction_id = $2`

	_, err := r.db.Exec(ctx, query, userID, auctionID)
	if err != nil {
		return classifyErr("failed to remove watchlist entry", err)
	}
	return nil
}
