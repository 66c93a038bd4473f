package repository

import (
	"context"
	"time"

	"bidloop/internal/domain/auction"
	"bidloop/internal/infra/db"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CommitmentRepository struct {
	db db.DBTX
}

func NewCommitmentRepository(dbtx db.DBTX) *CommitmentRepository {
	return &CommitmentRepository{db: dbtx}
}

// Upsert replaces the ceiling on conflict. created_at is deliberately left
// untouched so the first commitment keeps its tie-break priority.
func (r *CommitmentRepository) Upsert(ctx context.Context, auctionID, bidderID uuid.UUID, maxAmount decimal.Decimal, now time.Time) error {
	const query = `
		INSERT INTO max_commitments (auction_id, bidder_id, max_amount, created_at)
		VALUES ($1, $2, $3::numeric, $4)
		ON CONFLICT (auction_id, bidder_id)
		DO UPDATE SET max_amount = EXCLUDED.max_amount`

	_, err := r.db.Exec(ctx, query, auctionID, bidderID, maxAmount.String(), now)
	if err != nil {
		return classifyErr("failed to upsert commitment", err)
	}
	return nil
}

func (r *CommitmentRepository) ListRanked(ctx context.Context, auctionID uuid.UUID) ([]auction.Commitment, error) {
	const query = `
		SELECT bidder_id, max_amount::text, created_at
		FROM max_commitments
		WHERE auction_id = $1
		ORDER BY max_amount DESC, created_at ASC`

	rows, err := r.db.Query(ctx, query, auctionID)
	if err != nil {
		return nil, classifyErr("failed to list commitments", err)
	}
	defer rows.Close()

	var commitments []auction.Commitment
	for rows.Next() {
		var (
			c      auction.Commitment
			rawAmt string
		)
		if err := rows.Scan(&c.BidderID, &rawAmt, &c.CreatedAt); err != nil {
			return nil, classifyErr("failed to scan commitment", err)
		}
		c.MaxAmount, err = parseAmount(rawAmt)
		if err != nil {
			return nil, classifyErr("corrupt commitment amount", err)
		}
		commitments = append(commitments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, classifyErr("failed to iterate commitments", err)
	}
	return commitments, nil
}
