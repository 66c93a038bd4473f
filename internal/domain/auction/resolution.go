package auction

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Commitment is a bidder's standing private ceiling on one auction
// (proxy bid). One per (auction, bidder); a later submission replaces the
// amount but keeps the original CreatedAt, so ties at equal ceilings keep
// favoring the earlier bidder.
type Commitment struct {
	BidderID  uuid.UUID
	MaxAmount decimal.Decimal
	CreatedAt time.Time
}

// TopEntry is the current head of the public bid ledger.
type TopEntry struct {
	BidderID uuid.UUID
	Amount   decimal.Decimal
}

// LedgerAppend is a realized price point to record publicly.
type LedgerAppend struct {
	BidderID uuid.UUID
	Amount   decimal.Decimal
}

// Resolution is the recomputed visible state after one commitment lands.
// Appends carries zero, one or two ledger entries; Changed reports whether
// the auction row (price/leader) must be rewritten.
type Resolution struct {
	Price    decimal.Decimal
	LeaderID uuid.UUID
	Appends  []LedgerAppend
	Changed  bool
}

func (r Resolution) BidCountDelta() int32 {
	return int32(len(r.Appends))
}

// RankCommitments orders by ceiling descending, then by first-commitment
// time ascending. The store returns rows in this order already; sorting
// again keeps the engine correct against any store.
func RankCommitments(commitments []Commitment) []Commitment {
	ranked := make([]Commitment, len(commitments))
	copy(ranked, commitments)
	sort.SliceStable(ranked, func(i, j int) bool {
		if !ranked[i].MaxAmount.Equal(ranked[j].MaxAmount) {
			return ranked[i].MaxAmount.GreaterThan(ranked[j].MaxAmount)
		}
		return ranked[i].CreatedAt.Before(ranked[j].CreatedAt)
	})
	return ranked
}

// Resolve recomputes visible price and leader from the full commitment set
// after caller's commitment has been upserted. It is pure: the surrounding
// transaction applies the returned appends and row update atomically.
//
// Two ledger appends are computed independently and may both fire on one
// call: the runner-up append records that the caller's own ceiling was
// reached and beaten, the leader append records a new realized price point.
func Resolve(
	caller uuid.UUID,
	startPrice, stepPrice, currentPrice decimal.Decimal,
	commitments []Commitment,
	top *TopEntry,
) Resolution {
	ranked := RankCommitments(commitments)

	winner := ranked[0]
	var runnerUp *Commitment
	if len(ranked) > 1 {
		runnerUp = &ranked[1]
	}

	res := Resolution{
		Price:    currentPrice,
		LeaderID: winner.BidderID,
	}

	// The caller landed second behind someone else's pre-existing higher
	// ceiling: record the caller's full ceiling as a losing bid.
	if runnerUp != nil && runnerUp.BidderID == caller {
		res.Appends = append(res.Appends, LedgerAppend{
			BidderID: caller,
			Amount:   runnerUp.MaxAmount,
		})
	}

	candidate := startPrice
	if runnerUp != nil {
		candidate = decimal.Min(runnerUp.MaxAmount.Add(stepPrice), winner.MaxAmount)
		if candidate.LessThan(startPrice) {
			candidate = startPrice
		}
	}

	// The visible price never regresses.
	newPrice := decimal.Max(candidate, currentPrice)

	leaderChanged := top == nil || top.BidderID != winner.BidderID
	priceRose := top == nil || newPrice.GreaterThan(top.Amount)

	if priceRose || leaderChanged {
		res.Appends = append(res.Appends, LedgerAppend{
			BidderID: winner.BidderID,
			Amount:   newPrice,
		})
		res.Price = newPrice
		res.Changed = true
	}

	return res
}
