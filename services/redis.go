package services

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	appContext "github.com/alphabatem/common/context"
	"github.com/redis/go-redis/v9"
)

type RedisService struct {
	appContext.DefaultService
	redis *redis.Client
}

const REDIS_SVC = "redis_svc"

func (svc RedisService) Id() string {
	return REDIS_SVC
}

func (svc *RedisService) Configure(ctx *appContext.Context) error {
	svc.initRedisClient()
	return svc.DefaultService.Configure(ctx)
}

func (svc *RedisService) Start() error {
	if svc.redis != nil {
		ctx := context.Background()
		_, err := svc.redis.Ping(ctx).Result()
		if err != nil {
			return fmt.Errorf("failed to connect to Redis: %w", err)
		}
	}
	return nil
}

func (svc *RedisService) initRedisClient() {
	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		redisAddr = "localhost:6379"
	}

	redisPassword := os.Getenv("REDIS_PASSWORD")

	redisDB := 0
	if dbStr := os.Getenv("REDIS_DB"); dbStr != "" {
		if db, err := strconv.Atoi(dbStr); err == nil {
			redisDB = db
		}
	}

	svc.redis = redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: redisPassword,
		DB:       redisDB,
	})
}

// IncrWithWindow increments a fixed-window counter, setting the window
// expiry on first increment. Returns the counter value after increment.
func (svc *RedisService) IncrWithWindow(ctx context.Context, key string, window time.Duration) (int64, error) {
	if svc.redis == nil {
		return 0, fmt.Errorf("redis client not initialized")
	}

	pipe := svc.redis.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.ExpireNX(ctx, key, window)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, err
	}
	return incr.Val(), nil
}

func (svc *RedisService) TTL(ctx context.Context, key string) (time.Duration, error) {
	if svc.redis == nil {
		return 0, fmt.Errorf("redis client not initialized")
	}
	return svc.redis.TTL(ctx, key).Result()
}

func (svc *RedisService) Shutdown() {
	if svc.redis != nil {
		_ = svc.redis.Close()
	}
}
