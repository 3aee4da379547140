// services/rate_limit.go
package services

import (
	"fmt"
	"strconv"
	"time"

	"github.com/alphabatem/common/context"
	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"

	"github.com/qazkids/qazkids_api/shared"
)

// RateLimitService throttles the unauthenticated auth endpoints with
// fixed-window counters in redis, keyed by endpoint type and client IP.
type RateLimitService struct {
	context.DefaultService

	configs  map[string]*RateLimitConfig
	redisSvc *RedisService
}

// RateLimitConfig represents rate limiting configuration
type RateLimitConfig struct {
	EndpointType string
	MaxRequests  int
	WindowSize   time.Duration
}

const RATE_LIMIT_SVC = "rate_limit_svc"

func (svc RateLimitService) Id() string {
	return RATE_LIMIT_SVC
}

func (svc *RateLimitService) Configure(ctx *context.Context) error {
	svc.configs = map[string]*RateLimitConfig{
		"login": {
			EndpointType: "login",
			MaxRequests:  10,
			WindowSize:   15 * time.Minute,
		},
		"register": {
			EndpointType: "register",
			MaxRequests:  5,
			WindowSize:   15 * time.Minute,
		},
	}
	return svc.DefaultService.Configure(ctx)
}

func (svc *RateLimitService) Start() error {
	svc.redisSvc = svc.Service(REDIS_SVC).(*RedisService)
	return nil
}

// Limit returns the middleware for one endpoint type. Redis being down
// fails open: auth still works, it just is not throttled.
func (svc *RateLimitService) Limit(endpointType string) fiber.Handler {
	config, ok := svc.configs[endpointType]
	if !ok {
		return func(c *fiber.Ctx) error { return c.Next() }
	}

	return func(c *fiber.Ctx) error {
		key := fmt.Sprintf("ratelimit:%s:%s", config.EndpointType, c.IP())

		count, err := svc.redisSvc.IncrWithWindow(c.Context(), key, config.WindowSize)
		if err != nil {
			log.WithError(err).WithField("endpoint", config.EndpointType).Warn("Rate limit check failed, allowing request")
			return c.Next()
		}

		if count > int64(config.MaxRequests) {
			retryAfter := config.WindowSize
			if ttl, err := svc.redisSvc.TTL(c.Context(), key); err == nil && ttl > 0 {
				retryAfter = ttl
			}
			c.Set(fiber.HeaderRetryAfter, strconv.Itoa(int(retryAfter.Seconds())))
			return shared.ResponseJSON(c, fiber.StatusTooManyRequests, "Too many requests", nil)
		}

		return c.Next()
	}
}
