package api

import (
	"errors"
	"net/http"

	resdto "bidloop/internal/handler/dto/response"
	"bidloop/internal/handler/middleware"
	"bidloop/internal/usecase/commands"
	"bidloop/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type WatchlistHandler struct {
	watchlistCommands commands.WatchlistCommands
	auctionQueries    queries.AuctionQueries
}

func NewWatchlistHandler(watchlistCommands commands.WatchlistCommands, auctionQueries queries.AuctionQueries) *WatchlistHandler {
	return &WatchlistHandler{
		watchlistCommands: watchlistCommands,
		auctionQueries:    auctionQueries,
	}
}

// @Summary Watch auction
// @Description Add an auction to the caller's watchlist
// @Tags watchlist
// @Security BearerAuth
// @Param id path string true "Auction ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /auctions/{id}/watch [put]
func (h *WatchlistHandler) Watch(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
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

	if err := h.watchlistCommands.Watch(c.Request.Context(), userID, auctionID); err != nil {
		switch {
		case errors.Is(err, commands.ErrAuctionNotFound):
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

	c.Status(http.StatusNoContent)
}

// @Summary Unwatch auction
// @Description Remove an auction from the caller's watchlist
// @Tags watchlist
// @Security BearerAuth
// @Param id path string true "Auction ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auctions/{id}/watch [delete]
func (h *WatchlistHandler) Unwatch(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
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

	if err := h.watchlistCommands.Unwatch(c.Request.Context(), userID, auctionID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Get watchlist
// @Description List the caller's watched auctions
// @Tags watchlist
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.AuctionListResponse
// @Failure 401 {object} map[string]string
// @Router /watchlist [get]
func (h *WatchlistHandler) GetWatchlist(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	items, err := h.auctionQueries.GetWatchlist(c.Request.Context(), userID)
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
