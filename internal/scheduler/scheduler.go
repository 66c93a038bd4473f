package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"bidloop/internal/pkg/clock"
	"bidloop/internal/usecase/shared"

	"github.com/google/uuid"
)

// Closer is the slice of the command layer the scheduler drives. CloseAuction
// must be idempotent because a timer can fire while a recovery sweep is
// already closing the same auction.
type Closer interface {
	CloseAuction(ctx context.Context, auctionID uuid.UUID) error
	ActiveClosings(ctx context.Context) ([]shared.ActiveClosing, error)
}

// Scheduler keeps one pending timer per active auction in process memory.
// The database remains the source of truth: losing a timer to a crash only
// delays a closing until RestoreAll runs on the next startup.
type Scheduler struct {
	mu     sync.Mutex
	timers map[uuid.UUID]*time.Timer

	closer Closer
	clock  clock.Clock
}

func New(closer Closer, clk clock.Clock) *Scheduler {
	return &Scheduler{
		timers: make(map[uuid.UUID]*time.Timer),
		closer: closer,
		clock:  clk,
	}
}

// Schedule registers a closing at endTime, replacing any pending timer for
// the same auction. An endTime already in the past fires immediately.
func (s *Scheduler) Schedule(auctionID uuid.UUID, endTime time.Time) {
	delay := endTime.Sub(s.clock.Now())
	if delay < 0 {
		delay = 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if prev, ok := s.timers[auctionID]; ok {
		prev.Stop()
	}
	s.timers[auctionID] = time.AfterFunc(delay, func() {
		s.fire(auctionID)
	})
}

// Cancel drops the pending timer, if any. Used when a buy-now purchase closes
// the auction ahead of its end time.
func (s *Scheduler) Cancel(auctionID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t, ok := s.timers[auctionID]; ok {
		t.Stop()
		delete(s.timers, auctionID)
	}
}

// RestoreAll rebuilds the timer registry from the auctions table. Auctions
// whose end time passed while the process was down are closed synchronously
// here, before this returns and the HTTP server starts accepting bids.
func (s *Scheduler) RestoreAll(ctx context.Context) error {
	closings, err := s.closer.ActiveClosings(ctx)
	if err != nil {
		return err
	}

	now := s.clock.Now()
	scheduled := 0
	closed := 0
	for _, c := range closings {
		if !c.EndTime.After(now) {
			if err := s.closer.CloseAuction(ctx, c.AuctionID); err != nil {
				return err
			}
			closed++
			continue
		}
		s.Schedule(c.AuctionID, c.EndTime)
		scheduled++
	}

	slog.Info("auction close timers restored", "scheduled", scheduled, "closed_overdue", closed)
	return nil
}

func (s *Scheduler) fire(auctionID uuid.UUID) {
	s.mu.Lock()
	delete(s.timers, auctionID)
	s.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.closer.CloseAuction(ctx, auctionID); err != nil {
		slog.Error("failed to close auction on timer", "auction_id", auctionID, "error", err.Error())
	}
}

// Stop cancels every pending timer. Closings are not lost: the next startup
// recovery sweep picks up whatever was still active.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, t := range s.timers {
		t.Stop()
		delete(s.timers, id)
	}
}
