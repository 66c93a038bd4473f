package api

import (
	"errors"
	"net/http"

	reqdto "bidloop/internal/handler/dto/request"
	resdto "bidloop/internal/handler/dto/response"
	"bidloop/internal/handler/middleware"
	"bidloop/internal/usecase/commands"
	"bidloop/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BidHandler struct {
	bidCommands    commands.BidCommands
	auctionQueries queries.AuctionQueries
}

func NewBidHandler(bidCommands commands.BidCommands, auctionQueries queries.AuctionQueries) *BidHandler {
	return &BidHandler{
		bidCommands:    bidCommands,
		auctionQueries: auctionQueries,
	}
}

// @Summary Place bid
// @Description Submit or raise a maximum bid on an active auction
// @Tags bids
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Auction ID"
// @Param request body reqdto.PlaceBidRequest true "Maximum bid"
// @Success 200 {object} resdto.PlaceBidResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 429 {object} map[string]string
// @Router /auctions/{id}/bids [post]
func (h *BidHandler) PlaceBid(c *gin.Context) {
	bidderID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	auctionID, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req reqdto.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.bidCommands.PlaceBid(c.Request.Context(), auctionID, bidderID, req.MaxAmount)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrAuctionNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Auction not found",
			})
		case errors.Is(err, commands.ErrAuctionNotActive):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Auction is no longer active",
			})
		case errors.Is(err, commands.ErrSellerOwnAuction):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Sellers cannot bid on their own auctions",
			})
		case errors.Is(err, commands.ErrInvalidBidAmount):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Bid amount must be positive",
			})
		case errors.Is(err, commands.ErrBidTooLow):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Bid is below the minimum acceptable amount",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromPlaceBidResult(result))
}

// @Summary Buy now
// @Description Purchase an auction immediately at its buy-now price
// @Tags bids
// @Produce json
// @Security BearerAuth
// @Param id path string true "Auction ID"
// @Success 200 {object} resdto.BuyNowResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /auctions/{id}/buy-now [post]
func (h *BidHandler) BuyNow(c *gin.Context) {
	bidderID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	auctionID, ok := parseIDParam(c)
	if !ok {
		return
	}

	result, err := h.bidCommands.BuyNow(c.Request.Context(), auctionID, bidderID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrAuctionNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Auction not found",
			})
		case errors.Is(err, commands.ErrAuctionNotActive):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Auction is no longer active",
			})
		case errors.Is(err, commands.ErrSellerOwnAuction):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Sellers cannot buy their own auctions",
			})
		case errors.Is(err, commands.ErrNoBuyNowPrice):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Auction has no buy-now price",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBuyNowResult(result))
}

// @Summary Bid history
// @Description List the public bid ledger for an auction
// @Tags bids
// @Produce json
// @Param id path string true "Auction ID"
// @Success 200 {array} resdto.BidResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /auctions/{id}/bids [get]
func (h *BidHandler) GetBidHistory(c *gin.Context) {
	auctionID, ok := parseIDParam(c)
	if !ok {
		return
	}

	bids, err := h.auctionQueries.GetBidHistory(c.Request.Context(), auctionID)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrAuctionNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Auction not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	response := make([]*resdto.BidResponse, len(bids))
	for i, bid := range bids {
		response[i] = resdto.FromBidView(bid)
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Bid status
// @Description Get the caller's own standing on an auction
// @Tags bids
// @Produce json
// @Security BearerAuth
// @Param id path string true "Auction ID"
// @Success 200 {object} resdto.BidStatusResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /auctions/{id}/bid-status [get]
func (h *BidHandler) GetBidStatus(c *gin.Context) {
	bidderID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	auctionID, ok := parseIDParam(c)
	if !ok {
		return
	}

	status, err := h.auctionQueries.GetBidStatus(c.Request.Context(), auctionID, bidderID)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrAuctionNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Auction not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBidStatusView(status))
}
