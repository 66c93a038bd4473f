package repository

import (
	"context"
	"errors"
	"time"

	"bidloop/internal/domain/auction"
	"bidloop/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type LedgerRepository struct {
	db db.DBTX
}

func NewLedgerRepository(dbtx db.DBTX) *LedgerRepository {
	return &LedgerRepository{db: dbtx}
}

func (r *LedgerRepository) Append(ctx context.Context, auctionID, bidderID uuid.UUID, amount decimal.Decimal, now time.Time) error {
	const query = `
		INSERT INTO bid_ledger (auction_id, bidder_id, amount, created_at)
		VALUES ($1, $2, $3::numeric, $4)`

	_, err := r.db.Exec(ctx, query, auctionID, bidderID, amount.String(), now)
	if err != nil {
		return classifyErr("failed to append ledger entry", err)
	}
	return nil
}

// Top returns nil when the ledger is still empty. A single resolution can
// append a runner-up entry and a winner entry at the same amount and
// timestamp; the winner is written last, so id DESC breaks that tie.
func (r *LedgerRepository) Top(ctx context.Context, auctionID uuid.UUID) (*auction.TopEntry, error) {
	const query = `
		SELECT bidder_id, amount::text
		FROM bid_ledger
		WHERE auction_id = $1
		ORDER BY amount DESC, created_at ASC, id DESC
		LIMIT 1`

	var (
		entry  auction.TopEntry
		rawAmt string
	)
	err := r.db.QueryRow(ctx, query, auctionID).Scan(&entry.BidderID, &rawAmt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, classifyErr("failed to read top ledger entry", err)
	}

	entry.Amount, err = parseAmount(rawAmt)
	if err != nil {
		return nil, classifyErr("corrupt ledger amount", err)
	}
	return &entry, nil
}
