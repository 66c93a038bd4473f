//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"bidloop/internal/domain/auction"
	"bidloop/internal/pkg/clock"
	"bidloop/internal/usecase/commands"
	"bidloop/tests/common/builder"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bidFixture struct {
	uow       *fakeUoW
	scheduler *fakeScheduler
	notifier  *fakeNotifier
	clock     *clock.MockClock
	commands  commands.BidCommands
	auctionID uuid.UUID
	sellerID  uuid.UUID
}

func newBidFixture(t *testing.T, mutate ...func(*builder.AuctionBuilder)) *bidFixture {
	t.Helper()

	b := builder.NewAuctionBuilder()
	for _, m := range mutate {
		m(b)
	}
	a, err := b.BuildDomain()
	require.NoError(t, err)

	uow := newFakeUoW()
	uow.putAuction(a)

	scheduler := newFakeScheduler()
	notifier := &fakeNotifier{}
	clk := clock.NewMockClock(b.Now)

	return &bidFixture{
		uow:       uow,
		scheduler: scheduler,
		notifier:  notifier,
		clock:     clk,
		commands:  commands.NewBidCommands(uow, scheduler, notifier, clk),
		auctionID: a.ID(),
		sellerID:  a.SellerID(),
	}
}

func d(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func TestPlaceBid(t *testing.T) {
	ctx := context.Background()
	bidderA := uuid.New()
	bidderB := uuid.New()

	t.Run("最初の入札は開始価格でリーダーになる", func(t *testing.T) {
		f := newBidFixture(t)

		result, err := f.commands.PlaceBid(ctx, f.auctionID, bidderA, d(100))
		require.NoError(t, err)

		assert.Equal(t, commands.OutcomeWinning, result.Outcome)
		assert.True(t, result.CurrentPrice.Equal(d(50)), "price %s", result.CurrentPrice)
		assert.Equal(t, int32(1), result.BidCount)
		assert.Equal(t, 1, f.uow.ledgerLen(f.auctionID))
	})

	t.Run("高い上限が前リーダーを自動で上回る", func(t *testing.T) {
		f := newBidFixture(t)

		_, err := f.commands.PlaceBid(ctx, f.auctionID, bidderA, d(100))
		require.NoError(t, err)
		f.clock.Add(time.Minute)

		result, err := f.commands.PlaceBid(ctx, f.auctionID, bidderB, d(150))
		require.NoError(t, err)

		assert.Equal(t, commands.OutcomeWinning, result.Outcome)
		assert.True(t, result.CurrentPrice.Equal(d(110)), "price %s", result.CurrentPrice)
		assert.Equal(t, bidderB, result.LeaderID)
		assert.Equal(t, int32(2), result.BidCount)
	})

	t.Run("最低入札額未満の引き上げは拒否され状態は変わらない", func(t *testing.T) {
		f := newBidFixture(t)

		_, err := f.commands.PlaceBid(ctx, f.auctionID, bidderA, d(100))
		require.NoError(t, err)
		f.clock.Add(time.Minute)
		_, err = f.commands.PlaceBid(ctx, f.auctionID, bidderB, d(150))
		require.NoError(t, err)
		f.clock.Add(time.Minute)

		// Visible price 110, leader B: minimum acceptable is 120.
		_, err = f.commands.PlaceBid(ctx, f.auctionID, bidderA, d(105))
		require.ErrorIs(t, err, commands.ErrBidTooLow)

		a := f.uow.auction(f.auctionID)
		assert.True(t, a.CurrentPrice().Equal(d(110)), "price %s", a.CurrentPrice())
		assert.Equal(t, int32(2), a.BidCount())
		assert.Equal(t, 2, f.uow.ledgerLen(f.auctionID))
	})

	t.Run("届かない上限は敗北記録と新価格の二件を台帳に追加する", func(t *testing.T) {
		f := newBidFixture(t)

		_, err := f.commands.PlaceBid(ctx, f.auctionID, bidderA, d(100))
		require.NoError(t, err)
		f.clock.Add(time.Minute)
		_, err = f.commands.PlaceBid(ctx, f.auctionID, bidderB, d(150))
		require.NoError(t, err)
		f.clock.Add(time.Minute)

		result, err := f.commands.PlaceBid(ctx, f.auctionID, bidderA, d(130))
		require.NoError(t, err)

		assert.Equal(t, commands.OutcomeOutbid, result.Outcome)
		assert.Equal(t, bidderB, result.LeaderID)
		assert.True(t, result.CurrentPrice.Equal(d(140)), "price %s", result.CurrentPrice)
		assert.Equal(t, int32(4), result.BidCount)
		assert.Equal(t, 4, f.uow.ledgerLen(f.auctionID))
	})

	t.Run("同額上限のタイは先着がリーダーを守り台帳先頭も一致する", func(t *testing.T) {
		f := newBidFixture(t)

		_, err := f.commands.PlaceBid(ctx, f.auctionID, bidderA, d(100))
		require.NoError(t, err)
		f.clock.Add(time.Minute)

		result, err := f.commands.PlaceBid(ctx, f.auctionID, bidderB, d(100))
		require.NoError(t, err)

		assert.Equal(t, commands.OutcomeOutbid, result.Outcome)
		assert.Equal(t, bidderA, result.LeaderID)
		assert.True(t, result.CurrentPrice.Equal(d(100)), "price %s", result.CurrentPrice)

		// Runner-up and winner entries land at the same amount and time;
		// the ledger head must still be the winner.
		top := f.uow.ledgerTop(f.auctionID)
		require.NotNil(t, top)
		assert.Equal(t, bidderA, top.BidderID)
		assert.True(t, top.Amount.Equal(d(100)), "top %s", top.Amount)
	})

	t.Run("出品者は自分のオークションに入札できない", func(t *testing.T) {
		f := newBidFixture(t)

		_, err := f.commands.PlaceBid(ctx, f.auctionID, f.sellerID, d(100))
		require.ErrorIs(t, err, commands.ErrSellerOwnAuction)
	})

	t.Run("正でない金額は拒否される", func(t *testing.T) {
		f := newBidFixture(t)

		_, err := f.commands.PlaceBid(ctx, f.auctionID, bidderA, decimal.Zero)
		require.ErrorIs(t, err, commands.ErrInvalidBidAmount)

		_, err = f.commands.PlaceBid(ctx, f.auctionID, bidderA, d(-10))
		require.ErrorIs(t, err, commands.ErrInvalidBidAmount)
	})

	t.Run("存在しないオークションはNotFound", func(t *testing.T) {
		f := newBidFixture(t)

		_, err := f.commands.PlaceBid(ctx, uuid.New(), bidderA, d(100))
		require.ErrorIs(t, err, commands.ErrAuctionNotFound)
	})

	t.Run("終了済みオークションへの入札は拒否される", func(t *testing.T) {
		f := newBidFixture(t)
		closing := commands.NewClosingCommands(f.uow, f.notifier)
		require.NoError(t, closing.CloseAuction(ctx, f.auctionID))

		_, err := f.commands.PlaceBid(ctx, f.auctionID, bidderA, d(100))
		require.ErrorIs(t, err, commands.ErrAuctionNotActive)
	})
}

func TestBuyNow(t *testing.T) {
	ctx := context.Background()
	buyer := uuid.New()

	t.Run("即決価格で即座に落札する", func(t *testing.T) {
		f := newBidFixture(t, func(b *builder.AuctionBuilder) {
			b.WithBuyNowPrice(d(300))
		})

		result, err := f.commands.BuyNow(ctx, f.auctionID, buyer)
		require.NoError(t, err)

		assert.True(t, result.Price.Equal(d(300)), "price %s", result.Price)

		a := f.uow.auction(f.auctionID)
		assert.Equal(t, auction.StatusSold, a.Status())
		assert.Equal(t, buyer, *a.HighestBidderID())

		// Pending close timer must be dropped and both parties notified.
		assert.Contains(t, f.scheduler.cancelled, f.auctionID)
		require.Len(t, f.notifier.sold, 1)
		require.Len(t, f.notifier.won, 1)
		assert.Equal(t, buyer, *f.notifier.won[0].WinnerID)
	})

	t.Run("即決価格のないオークションでは失敗する", func(t *testing.T) {
		f := newBidFixture(t)

		_, err := f.commands.BuyNow(ctx, f.auctionID, buyer)
		require.ErrorIs(t, err, commands.ErrNoBuyNowPrice)
	})

	t.Run("出品者は自分のオークションを即決購入できない", func(t *testing.T) {
		f := newBidFixture(t, func(b *builder.AuctionBuilder) {
			b.WithBuyNowPrice(d(300))
		})

		_, err := f.commands.BuyNow(ctx, f.auctionID, f.sellerID)
		require.ErrorIs(t, err, commands.ErrSellerOwnAuction)
	})

	t.Run("売却済みオークションは再度購入できない", func(t *testing.T) {
		f := newBidFixture(t, func(b *builder.AuctionBuilder) {
			b.WithBuyNowPrice(d(300))
		})

		_, err := f.commands.BuyNow(ctx, f.auctionID, buyer)
		require.NoError(t, err)

		_, err = f.commands.BuyNow(ctx, f.auctionID, uuid.New())
		require.ErrorIs(t, err, commands.ErrAuctionNotActive)
	})
}
