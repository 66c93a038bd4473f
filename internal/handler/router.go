package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	rd "github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"bidloop/internal/handler/api"
	"bidloop/internal/handler/middleware"
	"bidloop/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth      *api.AuthHandler
	Auction   *api.AuctionHandler
	Bid       *api.BidHandler
	Watchlist *api.WatchlistHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware, rdb *rd.Client) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, cfg, h, authMiddleware, rdb)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware, rdb *rd.Client) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register},
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
			})
		}

		auctions := apiGroup.Group("/auctions")
		{
			addRoutes(auctions, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Auction.ListActiveAuctions},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Auction.GetAuction},
				{Method: http.MethodGet, Path: "/:id/bids", Handler: h.Bid.GetBidHistory},
			})

			authRequired := auctions.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			bidLimit := middleware.BidRateLimit(rdb, cfg.RateLimit)
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Auction.CreateAuction},
				{Method: http.MethodPatch, Path: "/:id/extend", Handler: h.Auction.ExtendAuction},
				{Method: http.MethodPost, Path: "/:id/bids", Handler: h.Bid.PlaceBid, Mw: []gin.HandlerFunc{bidLimit}},
				{Method: http.MethodPost, Path: "/:id/buy-now", Handler: h.Bid.BuyNow, Mw: []gin.HandlerFunc{bidLimit}},
				{Method: http.MethodGet, Path: "/:id/bid-status", Handler: h.Bid.GetBidStatus},
				{Method: http.MethodPut, Path: "/:id/watch", Handler: h.Watchlist.Watch},
				{Method: http.MethodDelete, Path: "/:id/watch", Handler: h.Watchlist.Unwatch},
			})
		}

		watchlist := apiGroup.Group("/watchlist")
		watchlist.Use(authMiddleware.RequireAuth())
		{
			addRoutes(watchlist, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Watchlist.GetWatchlist},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
