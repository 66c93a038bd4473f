package bootstrap

import (
	"context"

	"bidloop/internal/pkg/clock"
	"bidloop/internal/scheduler"
	"bidloop/internal/usecase/commands"

	"go.uber.org/fx"
)

var SchedulerModule = fx.Module("scheduler",
	fx.Provide(
		NewScheduler,
		func(s *scheduler.Scheduler) commands.CloseScheduler { return s },
	),
	fx.Invoke(registerSchedulerLifecycle),
)

func NewScheduler(closing commands.ClosingCommands, clk clock.Clock) *scheduler.Scheduler {
	return scheduler.New(closing, clk)
}

// Timers must be rebuilt before the HTTP server starts taking bids, so this
// hook is registered ahead of the server hook.
func registerSchedulerLifecycle(lc fx.Lifecycle, s *scheduler.Scheduler) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return s.RestoreAll(ctx)
		},
		OnStop: func(_ context.Context) error {
			s.Stop()
			return nil
		},
	})
}
