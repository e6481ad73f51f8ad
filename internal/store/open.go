package store

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/nhle/devdesign-studio/internal/credential"
	"github.com/nhle/devdesign-studio/internal/model"
)

// Open returns the backend selected by cfg.
func Open(ctx context.Context, cfg model.StorageConfig) (Store, error) {
	switch cfg.Driver {
	case model.DriverSQLite, "":
		return NewSQLiteStore(cfg.Path)
	case model.DriverRedis:
		return NewRedisStore(ctx, &redis.Options{
			Addr:     cfg.RedisAddr,
			Password: redisPassword(),
			DB:       cfg.RedisDB,
		}, "devdesign-studio")
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}

// redisPassword resolves the backend password. A missing or unreadable
// password means an unauthenticated server.
func redisPassword() string {
	pw, err := credential.RedisPassword()
	if err != nil {
		return ""
	}
	return pw
}
