package components

import (
	"bidloop/internal/pkg/clock"
	"bidloop/internal/usecase/commands"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewAuctionCommands,
		commands.NewBidCommands,
		commands.NewClosingCommands,
		commands.NewWatchlistCommands,
	),
)
