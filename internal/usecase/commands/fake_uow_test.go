//go:build unit

package commands_test

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"bidloop/internal/domain/auction"
	"bidloop/internal/domain/user"
	"bidloop/internal/infra"
	"bidloop/internal/usecase/commands"
	"bidloop/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// fakeUoW runs the transaction body against in-process maps. It gives the
// command layer real repository semantics (not-found kinds, ranked listings,
// top-entry tie breaks) without a database.
type fakeUoW struct {
	store *fakeStore
}

type fakeStore struct {
	mu          sync.Mutex
	auctions    map[uuid.UUID]*auction.Auction
	commitments map[uuid.UUID][]auction.Commitment
	ledger      map[uuid.UUID][]ledgerEntry
	users       map[uuid.UUID]*user.User
	watched     map[[2]uuid.UUID]bool
	seq         int
}

type ledgerEntry struct {
	bidderID  uuid.UUID
	amount    decimal.Decimal
	createdAt time.Time
	seq       int
}

func newFakeUoW() *fakeUoW {
	return &fakeUoW{store: &fakeStore{
		auctions:    make(map[uuid.UUID]*auction.Auction),
		commitments: make(map[uuid.UUID][]auction.Commitment),
		ledger:      make(map[uuid.UUID][]ledgerEntry),
		users:       make(map[uuid.UUID]*user.User),
		watched:     make(map[[2]uuid.UUID]bool),
	}}
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	u.store.mu.Lock()
	defer u.store.mu.Unlock()
	return fn(ctx, &fakeTx{store: u.store})
}

func (u *fakeUoW) putAuction(a *auction.Auction) {
	u.store.mu.Lock()
	defer u.store.mu.Unlock()
	u.store.auctions[a.ID()] = a
}

func (u *fakeUoW) auction(id uuid.UUID) *auction.Auction {
	u.store.mu.Lock()
	defer u.store.mu.Unlock()
	return u.store.auctions[id]
}

func (u *fakeUoW) ledgerLen(auctionID uuid.UUID) int {
	u.store.mu.Lock()
	defer u.store.mu.Unlock()
	return len(u.store.ledger[auctionID])
}

func (u *fakeUoW) ledgerTop(auctionID uuid.UUID) *auction.TopEntry {
	u.store.mu.Lock()
	defer u.store.mu.Unlock()
	top, _ := (&fakeLedgerRepo{u.store}).Top(context.Background(), auctionID)
	return top
}

type fakeTx struct {
	store *fakeStore
}

func (t *fakeTx) Auctions() shared.AuctionRepository       { return &fakeAuctionRepo{t.store} }
func (t *fakeTx) Commitments() shared.CommitmentRepository { return &fakeCommitmentRepo{t.store} }
func (t *fakeTx) Ledger() shared.LedgerRepository          { return &fakeLedgerRepo{t.store} }
func (t *fakeTx) Users() shared.UserRepository             { return &fakeUserRepo{t.store} }
func (t *fakeTx) Watchlist() shared.WatchlistRepository    { return &fakeWatchlistRepo{t.store} }

type fakeAuctionRepo struct{ store *fakeStore }

func (r *fakeAuctionRepo) Create(_ context.Context, a *auction.Auction) error {
	r.store.auctions[a.ID()] = a
	return nil
}

func (r *fakeAuctionRepo) FindByIDForUpdate(_ context.Context, id uuid.UUID) (*auction.Auction, error) {
	a, ok := r.store.auctions[id]
	if !ok {
		return nil, infra.WrapRepoErr(infra.KindNotFound, "auction not found", errors.New("no rows"))
	}
	return a, nil
}

func (r *fakeAuctionRepo) UpdatePricing(_ context.Context, id uuid.UUID, price decimal.Decimal, leaderID uuid.UUID, bidCount int32) error {
	a := r.store.auctions[id]
	leader := leaderID
	r.store.auctions[id] = auction.Reconstruct(
		a.ID(), a.SellerID(), a.Title(), a.Description(),
		a.StartPrice(), a.StepPrice(), price,
		a.BuyNowPrice(), &leader, bidCount,
		a.Status(), a.EndTime(), a.CreatedAt(), a.UpdatedAt(),
	)
	return nil
}

func (r *fakeAuctionRepo) UpdateStatus(_ context.Context, id uuid.UUID, status auction.Status) error {
	a := r.store.auctions[id]
	r.store.auctions[id] = auction.Reconstruct(
		a.ID(), a.SellerID(), a.Title(), a.Description(),
		a.StartPrice(), a.StepPrice(), a.CurrentPrice(),
		a.BuyNowPrice(), a.HighestBidderID(), a.BidCount(),
		status, a.EndTime(), a.CreatedAt(), a.UpdatedAt(),
	)
	return nil
}

func (r *fakeAuctionRepo) UpdateEndTime(_ context.Context, id uuid.UUID, endTime time.Time) error {
	a := r.store.auctions[id]
	r.store.auctions[id] = auction.Reconstruct(
		a.ID(), a.SellerID(), a.Title(), a.Description(),
		a.StartPrice(), a.StepPrice(), a.CurrentPrice(),
		a.BuyNowPrice(), a.HighestBidderID(), a.BidCount(),
		a.Status(), endTime, a.CreatedAt(), a.UpdatedAt(),
	)
	return nil
}

func (r *fakeAuctionRepo) ListActive(_ context.Context) ([]shared.ActiveClosing, error) {
	var closings []shared.ActiveClosing
	for _, a := range r.store.auctions {
		if a.IsActive() {
			closings = append(closings, shared.ActiveClosing{AuctionID: a.ID(), EndTime: a.EndTime()})
		}
	}
	return closings, nil
}

type fakeCommitmentRepo struct{ store *fakeStore }

func (r *fakeCommitmentRepo) Upsert(_ context.Context, auctionID, bidderID uuid.UUID, maxAmount decimal.Decimal, now time.Time) error {
	list := r.store.commitments[auctionID]
	for i, c := range list {
		if c.BidderID == bidderID {
			list[i].MaxAmount = maxAmount
			return nil
		}
	}
	r.store.commitments[auctionID] = append(list, auction.Commitment{
		BidderID:  bidderID,
		MaxAmount: maxAmount,
		CreatedAt: now,
	})
	return nil
}

func (r *fakeCommitmentRepo) ListRanked(_ context.Context, auctionID uuid.UUID) ([]auction.Commitment, error) {
	return auction.RankCommitments(r.store.commitments[auctionID]), nil
}

type fakeLedgerRepo struct{ store *fakeStore }

func (r *fakeLedgerRepo) Append(_ context.Context, auctionID, bidderID uuid.UUID, amount decimal.Decimal, now time.Time) error {
	r.store.seq++
	r.store.ledger[auctionID] = append(r.store.ledger[auctionID], ledgerEntry{
		bidderID:  bidderID,
		amount:    amount,
		createdAt: now,
		seq:       r.store.seq,
	})
	return nil
}

func (r *fakeLedgerRepo) Top(_ context.Context, auctionID uuid.UUID) (*auction.TopEntry, error) {
	entries := r.store.ledger[auctionID]
	if len(entries) == 0 {
		return nil, nil
	}
	sorted := make([]ledgerEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		if !sorted[i].amount.Equal(sorted[j].amount) {
			return sorted[i].amount.GreaterThan(sorted[j].amount)
		}
		if !sorted[i].createdAt.Equal(sorted[j].createdAt) {
			return sorted[i].createdAt.Before(sorted[j].createdAt)
		}
		return sorted[i].seq > sorted[j].seq
	})
	return &auction.TopEntry{BidderID: sorted[0].bidderID, Amount: sorted[0].amount}, nil
}

type fakeUserRepo struct{ store *fakeStore }

func (r *fakeUserRepo) Create(_ context.Context, u *user.User) error {
	for _, existing := range r.store.users {
		if existing.Email() == u.Email() {
			return infra.WrapRepoErr(infra.KindDuplicateKey, "email taken", errors.New("unique violation"))
		}
	}
	r.store.users[u.ID()] = u
	return nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email user.Email) (*user.User, error) {
	for _, u := range r.store.users {
		if u.Email() == email {
			return u, nil
		}
	}
	return nil, infra.WrapRepoErr(infra.KindNotFound, "user not found", errors.New("no rows"))
}

type fakeWatchlistRepo struct{ store *fakeStore }

func (r *fakeWatchlistRepo) Add(_ context.Context, userID, auctionID uuid.UUID, _ time.Time) error {
	if _, ok := r.store.auctions[auctionID]; !ok {
		return infra.WrapRepoErr(infra.KindNotFound, "auction not found", errors.New("fk violation"))
	}
	r.store.watched[[2]uuid.UUID{userID, auctionID}] = true
	return nil
}

func (r *fakeWatchlistRepo) Remove(_ context.Context, userID, auctionID uuid.UUID) error {
	delete(r.store.watched, [2]uuid.UUID{userID, auctionID})
	return nil
}

// fakeScheduler records registrations instead of arming timers.
type fakeScheduler struct {
	mu        sync.Mutex
	scheduled map[uuid.UUID]time.Time
	cancelled []uuid.UUID
}

func newFakeScheduler() *fakeScheduler {
	return &fakeScheduler{scheduled: make(map[uuid.UUID]time.Time)}
}

func (s *fakeScheduler) Schedule(auctionID uuid.UUID, endTime time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scheduled[auctionID] = endTime
}

func (s *fakeScheduler) Cancel(auctionID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.scheduled, auctionID)
	s.cancelled = append(s.cancelled, auctionID)
}

// fakeNotifier records outgoing notifications.
type fakeNotifier struct {
	mu       sync.Mutex
	noWinner []commands.ClosedAuction
	sold     []commands.ClosedAuction
	won      []commands.ClosedAuction
}

func (n *fakeNotifier) NotifySellerNoWinner(_ context.Context, closed commands.ClosedAuction) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.noWinner = append(n.noWinner, closed)
	return nil
}

func (n *fakeNotifier) NotifySellerSold(_ context.Context, closed commands.ClosedAuction) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sold = append(n.sold, closed)
	return nil
}

func (n *fakeNotifier) NotifyBidderWon(_ context.Context, closed commands.ClosedAuction) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.won = append(n.won, closed)
	return nil
}
