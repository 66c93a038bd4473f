package redis

import (
	"context"
	"time"

	"bidloop/internal/pkg/config"
	"bidloop/internal/pkg/errs"

	rd "github.com/redis/go-redis/v9"
)

var errRedisConnect = errs.New("failed to connect to redis")

// Connect builds the shared client and verifies the connection before the
// server starts accepting traffic.
func Connect(cfg config.RedisConfig) (*rd.Client, func(), error) {
	client := rd.NewClient(&rd.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, errs.Mark(err, errRedisConnect)
	}

	cleanup := func() {
		_ = client.Close()
	}
	return client, cleanup, nil
}
