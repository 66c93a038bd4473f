//go:build unit

package auction_test

import (
	"testing"
	"time"

	"bidloop/internal/domain/auction"
	"bidloop/tests/common/builder"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.AuctionBuilder)
	errIs  error
}

func TestNewAuction(t *testing.T) {
	t.Run("基本成功ケース", func(t *testing.T) {
		actual, err := builder.NewAuctionBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, auction.StatusActive, actual.Status())
		assert.True(t, actual.IsActive())
		assert.False(t, actual.HasLeader())
		assert.True(t, actual.CurrentPrice().Equal(actual.StartPrice()))
		assert.Equal(t, int32(0), actual.BidCount())
	})

	t.Run("タイトル検証", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "空でないタイトルOK",
				mutate: func(b *builder.AuctionBuilder) { b.WithTitle("Old clock") },
			},
			{
				name:   "空のタイトルNG",
				mutate: func(b *builder.AuctionBuilder) { b.WithTitle("") },
				errIs:  auction.ErrEmptyTitle,
			},
		})
	})

	t.Run("価格検証", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "正の開始価格OK",
				mutate: func(b *builder.AuctionBuilder) { b.WithStartPrice(decimal.NewFromInt(1)) },
			},
			{
				name:   "ゼロの開始価格NG",
				mutate: func(b *builder.AuctionBuilder) { b.WithStartPrice(decimal.Zero) },
				errIs:  auction.ErrInvalidStartPrice,
			},
			{
				name:   "負の開始価格NG",
				mutate: func(b *builder.AuctionBuilder) { b.WithStartPrice(decimal.NewFromInt(-5)) },
				errIs:  auction.ErrInvalidStartPrice,
			},
			{
				name:   "ゼロの刻み幅NG",
				mutate: func(b *builder.AuctionBuilder) { b.WithStepPrice(decimal.Zero) },
				errIs:  auction.ErrInvalidStepPrice,
			},
			{
				name:   "開始価格を超える即決価格OK",
				mutate: func(b *builder.AuctionBuilder) { b.WithBuyNowPrice(decimal.NewFromInt(500)) },
			},
			{
				name:   "開始価格以下の即決価格NG",
				mutate: func(b *builder.AuctionBuilder) { b.WithBuyNowPrice(decimal.NewFromInt(50)) },
				errIs:  auction.ErrInvalidBuyNowPrice,
			},
		})
	})

	t.Run("終了時刻検証", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name: "過去の終了時刻NG",
				mutate: func(b *builder.AuctionBuilder) {
					b.WithEndTime(b.Now.Add(-time.Hour))
				},
				errIs: auction.ErrEndTimeInPast,
			},
			{
				name: "現在時刻ちょうどNG",
				mutate: func(b *builder.AuctionBuilder) {
					b.WithEndTime(b.Now)
				},
				errIs: auction.ErrEndTimeInPast,
			},
		})
	})
}

func TestMinimumBid(t *testing.T) {
	t.Run("リーダー不在なら開始価格", func(t *testing.T) {
		a, err := builder.NewAuctionBuilder().BuildDomain()
		require.NoError(t, err)

		assert.True(t, a.MinimumBid().Equal(a.StartPrice()))
	})

	t.Run("リーダーがいれば現在価格+刻み", func(t *testing.T) {
		leaderID := uuid.New()
		a := reconstructActive(t, decimal.NewFromInt(110), &leaderID)

		assert.True(t, a.MinimumBid().Equal(decimal.NewFromInt(120)), "minimum %s", a.MinimumBid())
	})
}

func TestClosingStatus(t *testing.T) {
	t.Run("入札があればsold", func(t *testing.T) {
		leaderID := uuid.New()
		a := reconstructActive(t, decimal.NewFromInt(110), &leaderID)

		assert.Equal(t, auction.StatusSold, a.ClosingStatus())
	})

	t.Run("入札がなければexpired", func(t *testing.T) {
		a := reconstructActive(t, decimal.NewFromInt(50), nil)

		assert.Equal(t, auction.StatusExpired, a.ClosingStatus())
	})
}

func TestExtend(t *testing.T) {
	t.Run("終了時刻を延長できる", func(t *testing.T) {
		a, err := builder.NewAuctionBuilder().BuildDomain()
		require.NoError(t, err)

		newEnd := a.EndTime().Add(24 * time.Hour)
		require.NoError(t, a.Extend(newEnd))
		assert.Equal(t, newEnd, a.EndTime())
	})

	t.Run("現在の終了時刻より前には延長できない", func(t *testing.T) {
		a, err := builder.NewAuctionBuilder().BuildDomain()
		require.NoError(t, err)

		err = a.Extend(a.EndTime().Add(-time.Hour))
		require.ErrorIs(t, err, auction.ErrEndTimeInPast)
	})

	t.Run("終了済みオークションは延長できない", func(t *testing.T) {
		a := reconstructWithStatus(t, auction.StatusSold)

		err := a.Extend(time.Now().Add(24 * time.Hour))
		require.ErrorIs(t, err, auction.ErrNotActive)
	})
}

func reconstructActive(t *testing.T, currentPrice decimal.Decimal, leaderID *uuid.UUID) *auction.Auction {
	t.Helper()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	bidCount := int32(0)
	if leaderID != nil {
		bidCount = 3
	}
	return auction.Reconstruct(
		uuid.New(), uuid.New(),
		"Vintage camera", "",
		decimal.NewFromInt(50), decimal.NewFromInt(10), currentPrice,
		nil, leaderID, bidCount,
		auction.StatusActive,
		now.Add(48*time.Hour), now, now,
	)
}

func reconstructWithStatus(t *testing.T, status auction.Status) *auction.Auction {
	t.Helper()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return auction.Reconstruct(
		uuid.New(), uuid.New(),
		"Vintage camera", "",
		decimal.NewFromInt(50), decimal.NewFromInt(10), decimal.NewFromInt(50),
		nil, nil, 0,
		status,
		now.Add(48*time.Hour), now, now,
	)
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewAuctionBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
