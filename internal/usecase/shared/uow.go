package shared

import (
	"context"
	"time"

	"bidloop/internal/domain/auction"
	"bidloop/internal/domain/user"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UnitOfWork is the single transaction boundary for the write side. Both the
// bid resolution engine and the lifecycle closer run their whole read-modify-
// write sequence inside one Within call; the auction row lock taken there is
// the per-auction serialization point.
type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Auctions() AuctionRepository
	Commitments() CommitmentRepository
	Ledger() LedgerRepository
	Users() UserRepository
	Watchlist() WatchlistRepository
}

// ActiveClosing is the minimal row the scheduler needs to rebuild its
// timer registry on startup.
type ActiveClosing struct {
	AuctionID uuid.UUID
	EndTime   time.Time
}

type AuctionRepository interface {
	Create(ctx context.Context, a *auction.Auction) error
	// FindByIDForUpdate takes the exclusive row lock (SELECT ... FOR UPDATE)
	// that serializes concurrent bids on one auction.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*auction.Auction, error)
	UpdatePricing(ctx context.Context, id uuid.UUID, price decimal.Decimal, leaderID uuid.UUID, bidCount int32) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status auction.Status) error
	UpdateEndTime(ctx context.Context, id uuid.UUID, endTime time.Time) error
	ListActive(ctx context.Context) ([]ActiveClosing, error)
}

type CommitmentRepository interface {
	// Upsert replaces max_amount for (auction, bidder) and keeps the original
	// created_at, preserving first-commitment tie-break priority.
	Upsert(ctx context.Context, auctionID, bidderID uuid.UUID, maxAmount decimal.Decimal, now time.Time) error
	// ListRanked returns all commitments for the auction ordered by
	// max_amount desc, created_at asc.
	ListRanked(ctx context.Context, auctionID uuid.UUID) ([]auction.Commitment, error)
}

type LedgerRepository interface {
	Append(ctx context.Context, auctionID, bidderID uuid.UUID, amount decimal.Decimal, now time.Time) error
	// Top returns the leading ledger entry (amount desc, created_at asc),
	// or nil when the ledger is empty.
	Top(ctx context.Context, auctionID uuid.UUID) (*auction.TopEntry, error)
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	FindByEmail(ctx context.Context, email user.Email) (*user.User, error)
}

type WatchlistRepository interface {
	Add(ctx context.Context, userID, auctionID uuid.UUID, now time.Time) error
	Remove(ctx context.Context, userID, auctionID uuid.UUID) error
}
