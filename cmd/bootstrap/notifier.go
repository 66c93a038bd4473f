package bootstrap

import (
	"context"

	"bidloop/internal/notification"
	"bidloop/internal/pkg/config"
	"bidloop/internal/usecase/commands"

	"go.uber.org/fx"
)

var NotifierModule = fx.Module("notifier",
	fx.Provide(
		NewNotifier,
	),
)

func NewNotifier(lc fx.Lifecycle, cfg config.Config) commands.Notifier {
	notifier := notification.NewKafkaNotifier(cfg.Kafka)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return notifier.Close()
		},
	})

	return notifier
}
