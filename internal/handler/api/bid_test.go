//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"bidloop/internal/handler/api"
	"bidloop/internal/handler/dto/response"
	"bidloop/internal/handler/middleware"
	"bidloop/internal/pkg/jwt"
	"bidloop/internal/usecase/commands"
	"bidloop/internal/usecase/queries"
	commonhttp "bidloop/tests/common/httptest"
	commandsmock "bidloop/tests/mock/commands"
	queriesmock "bidloop/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BidHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockBids    *commandsmock.MockBidCommands
	mockQueries *queriesmock.MockAuctionQueries
	router      *gin.Engine
	bidderID    uuid.UUID
	token       string
}

func TestBidHandlerSuite(t *testing.T) {
	suite.Run(t, new(BidHandlerTestSuite))
}

func (s *BidHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	s.ctrl = gomock.NewController(s.T())
	s.mockBids = commandsmock.NewMockBidCommands(s.ctrl)
	s.mockQueries = queriesmock.NewMockAuctionQueries(s.ctrl)

	tokens := jwt.NewService("test-secret", time.Hour)
	s.bidderID = uuid.New()
	token, err := tokens.GenerateToken(s.bidderID)
	s.Require().NoError(err)
	s.token = token

	handler := api.NewBidHandler(s.mockBids, s.mockQueries)
	auth := middleware.NewAuthMiddleware(tokens)

	s.router = gin.New()
	auctions := s.router.Group("/api/auctions")
	auctions.GET("/:id/bids", handler.GetBidHistory)
	auctions.POST("/:id/bids", auth.RequireAuth(), handler.PlaceBid)
	auctions.POST("/:id/buy-now", auth.RequireAuth(), handler.BuyNow)
	auctions.GET("/:id/bid-status", auth.RequireAuth(), handler.GetBidStatus)
}

func (s *BidHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *BidHandlerTestSuite) TestPlaceBid() {
	auctionID := uuid.New()
	path := "/api/auctions/" + auctionID.String() + "/bids"

	s.Run("正常な入札は200と結果を返す", func() {
		s.mockBids.EXPECT().
			PlaceBid(gomock.Any(), auctionID, s.bidderID, decimalEq(150)).
			Return(&commands.PlaceBidResult{
				Outcome:      commands.OutcomeWinning,
				CurrentPrice: decimal.NewFromInt(110),
				LeaderID:     s.bidderID,
				BidCount:     2,
			}, nil)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, path,
			map[string]any{"max_amount": "150"}, s.token)

		s.Equal(http.StatusOK, w.Code)
		var body response.PlaceBidResponse
		commonhttp.DecodeResponseBody(s.T(), w.Body, &body)
		s.Equal("winning", body.Outcome)
		s.True(body.CurrentPrice.Equal(decimal.NewFromInt(110)))
		s.Equal(int32(2), body.BidCount)
	})

	s.Run("最低額未満は400", func() {
		s.mockBids.EXPECT().
			PlaceBid(gomock.Any(), auctionID, s.bidderID, gomock.Any()).
			Return(nil, commands.ErrBidTooLow)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, path,
			map[string]any{"max_amount": "55"}, s.token)

		commonhttp.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "below the minimum")
	})

	s.Run("終了済みオークションは409", func() {
		s.mockBids.EXPECT().
			PlaceBid(gomock.Any(), auctionID, s.bidderID, gomock.Any()).
			Return(nil, commands.ErrAuctionNotActive)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, path,
			map[string]any{"max_amount": "100"}, s.token)

		commonhttp.AssertErrorResponse(s.T(), w, http.StatusConflict, "no longer active")
	})

	s.Run("出品者の入札は403", func() {
		s.mockBids.EXPECT().
			PlaceBid(gomock.Any(), auctionID, s.bidderID, gomock.Any()).
			Return(nil, commands.ErrSellerOwnAuction)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, path,
			map[string]any{"max_amount": "100"}, s.token)

		commonhttp.AssertErrorResponse(s.T(), w, http.StatusForbidden, "their own auctions")
	})

	s.Run("存在しないオークションは404", func() {
		s.mockBids.EXPECT().
			PlaceBid(gomock.Any(), auctionID, s.bidderID, gomock.Any()).
			Return(nil, commands.ErrAuctionNotFound)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, path,
			map[string]any{"max_amount": "100"}, s.token)

		commonhttp.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Auction not found")
	})

	s.Run("トークンなしは401", func() {
		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, path,
			map[string]any{"max_amount": "100"}, "")

		s.Equal(http.StatusUnauthorized, w.Code)
	})

	s.Run("不正なIDパラメータは400", func() {
		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost,
			"/api/auctions/not-a-uuid/bids",
			map[string]any{"max_amount": "100"}, s.token)

		s.Equal(http.StatusBadRequest, w.Code)
	})

	s.Run("金額のないリクエストボディは400", func() {
		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, path,
			map[string]any{}, s.token)

		s.Equal(http.StatusBadRequest, w.Code)
	})
}

func (s *BidHandlerTestSuite) TestBuyNow() {
	auctionID := uuid.New()
	path := "/api/auctions/" + auctionID.String() + "/buy-now"

	s.Run("即決購入は200で確定価格を返す", func() {
		s.mockBids.EXPECT().
			BuyNow(gomock.Any(), auctionID, s.bidderID).
			Return(&commands.BuyNowResult{
				Price:    decimal.NewFromInt(300),
				BidCount: 1,
			}, nil)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, path, nil, s.token)

		s.Equal(http.StatusOK, w.Code)
		var body response.BuyNowResponse
		commonhttp.DecodeResponseBody(s.T(), w.Body, &body)
		s.True(body.Price.Equal(decimal.NewFromInt(300)))
	})

	s.Run("即決価格のないオークションは400", func() {
		s.mockBids.EXPECT().
			BuyNow(gomock.Any(), auctionID, s.bidderID).
			Return(nil, commands.ErrNoBuyNowPrice)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, path, nil, s.token)

		s.Equal(http.StatusBadRequest, w.Code)
	})
}

func (s *BidHandlerTestSuite) TestGetBidHistory() {
	auctionID := uuid.New()
	path := "/api/auctions/" + auctionID.String() + "/bids"

	s.Run("認証なしで履歴を取得できる", func() {
		s.mockQueries.EXPECT().
			GetBidHistory(gomock.Any(), auctionID).
			Return([]*queries.BidView{
				{
					BidderID:   uuid.New(),
					BidderName: "Bob",
					Amount:     decimal.NewFromInt(110),
					CreatedAt:  time.Date(2025, 6, 1, 12, 5, 0, 0, time.UTC),
				},
			}, nil)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet, path, nil, "")

		s.Equal(http.StatusOK, w.Code)
		var body []response.BidResponse
		commonhttp.DecodeResponseBody(s.T(), w.Body, &body)
		s.Len(body, 1)
		s.Equal("Bob", body[0].BidderName)
	})

	s.Run("存在しないオークションは404", func() {
		s.mockQueries.EXPECT().
			GetBidHistory(gomock.Any(), auctionID).
			Return(nil, queries.ErrAuctionNotFound)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet, path, nil, "")

		s.Equal(http.StatusNotFound, w.Code)
	})
}

func (s *BidHandlerTestSuite) TestGetBidStatus() {
	auctionID := uuid.New()
	path := "/api/auctions/" + auctionID.String() + "/bid-status"

	s.Run("自分の状況と上限額が返る", func() {
		max := decimal.NewFromInt(150)
		s.mockQueries.EXPECT().
			GetBidStatus(gomock.Any(), auctionID, s.bidderID).
			Return(&queries.BidStatusView{
				Outcome:      "winning",
				CurrentPrice: decimal.NewFromInt(110),
				MaxAmount:    &max,
				BidCount:     2,
			}, nil)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet, path, nil, s.token)

		s.Equal(http.StatusOK, w.Code)
		var body response.BidStatusResponse
		commonhttp.DecodeResponseBody(s.T(), w.Body, &body)
		s.Equal("winning", body.Outcome)
		s.Require().NotNil(body.MaxAmount)
		s.True(body.MaxAmount.Equal(max))
	})

	s.Run("トークンなしは401", func() {
		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet, path, nil, "")

		s.Equal(http.StatusUnauthorized, w.Code)
	})
}

// decimalEq matches a decimal argument by value rather than representation.
func decimalEq(v int64) gomock.Matcher {
	return gomock.Cond(func(x any) bool {
		d, ok := x.(decimal.Decimal)
		return ok && d.Equal(decimal.NewFromInt(v))
	})
}
