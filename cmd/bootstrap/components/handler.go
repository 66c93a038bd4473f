package components

import (
	"bidloop/internal/handler"
	"bidloop/internal/handler/api"
	"bidloop/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewAuctionHandler,
		api.NewBidHandler,
		api.NewWatchlistHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	auth *api.AuthHandler,
	auction *api.AuctionHandler,
	bid *api.BidHandler,
	watchlist *api.WatchlistHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:      auth,
		Auction:   auction,
		Bid:       bid,
		Watchlist: watchlist,
	}
}
