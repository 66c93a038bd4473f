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
	"github.com/google/uuid"
)

type AuctionHandler struct {
	auctionCommands commands.AuctionCommands
	auctionQueries  queries.AuctionQueries
}

func NewAuctionHandler(auctionCommands commands.AuctionCommands, auctionQueries queries.AuctionQueries) *AuctionHandler {
	return &AuctionHandler{
		auctionCommands: auctionCommands,
		auctionQueries:  auctionQueries,
	}
}

// @Summary Create auction
// @Description List a new item for auction
// @Tags auctions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateAuctionRequest true "Auction listing"
// @Success 201 {object} resdto.CreateAuctionResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auctions [post]
func (h *AuctionHandler) CreateAuction(c *gin.Context) {
	sellerID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateAuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	auctionID, err := h.auctionCommands.CreateAuction(c.Request.Context(), req.ToParams(sellerID))
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrDomainValidation):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid auction parameters",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.CreateAuctionResponse{AuctionID: auctionID})
}

// @Summary Get auction
// @Description Get auction details by ID
// @Tags auctions
// @Produce json
// @Param id path string true "Auction ID"
// @Success 200 {object} resdto.AuctionResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /auctions/{id} [get]
func (h *AuctionHandler) GetAuction(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	view, err := h.auctionQueries.GetAuction(c.Request.Context(), id)
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

	c.JSON(http.StatusOK, resdto.FromAuctionView(view))
}

// @Summary List active auctions
// @Description List all active auctions ordered by closing time
// @Tags auctions
// @Produce json
// @Success 200 {array} resdto.AuctionListResponse
// @Router /auctions [get]
func (h *AuctionHandler) ListActiveAuctions(c *gin.Context) {
	items, err := h.auctionQueries.ListActiveAuctions(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.AuctionListResponse, len(items))
	for i, item := range items {
		response[i] = resdto.FromAuctionListItem(item)
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Extend auction
// @Description Move an active auction's end time forward (seller only)
// @Tags auctions
// @Accept json
// @Security BearerAuth
// @Param id path string true "Auction ID"
// @Param request body reqdto.ExtendAuctionRequest true "New end time"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /auctions/{id}/extend [patch]
func (h *AuctionHandler) ExtendAuction(c *gin.Context) {
	sellerID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req reqdto.ExtendAuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	err := h.auctionCommands.ExtendAuction(c.Request.Context(), id, sellerID, req.EndTime)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrAuctionNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Auction not found",
			})
		case errors.Is(err, commands.ErrNotSeller):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Only the seller can extend an auction",
			})
		case errors.Is(err, commands.ErrAuctionNotActive):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Auction is no longer active",
			})
		case errors.Is(err, commands.ErrDomainValidation):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "New end time must be after the current end time",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

func parseIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid auction ID format",
		})
		return uuid.Nil, false
	}
	return id, true
}
