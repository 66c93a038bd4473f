package components

import (
	"bidloop/internal/infra/db"
	"bidloop/internal/infra/readstore"
	"bidloop/internal/infra/uow"
	"bidloop/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		uow.NewPostgresUoW,
		// Read-side store for queries
		fx.Annotate(
			readstore.NewAuctionReadStore,
			fx.As(new(queries.AuctionReadStore)),
		),
		queries.NewAuctionQueries,
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
