package services

import (
	"fmt"
	"sync"
	"time"

	"github.com/alphabatem/common/context"
	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"

	"github.com/retroden/arcade_api/shared"
)

type RateLimitService struct {
	context.DefaultService

	configs map[string]*RateLimitConfig
	mutex   sync.RWMutex

	redisSvc *RedisService
}

// RateLimitConfig represents rate limiting configuration
type RateLimitConfig struct {
	EndpointType string
	MaxRequests  int
	WindowSize   time.Duration
	Description  string
	IsActive     bool
}

const RATE_LIMIT_SVC = "rate_limit_svc"

func (svc RateLimitService) Id() string {
	return RATE_LIMIT_SVC
}

func (svc *RateLimitService) Configure(ctx *context.Context) error {
	svc.configs = make(map[string]*RateLimitConfig)
	return svc.DefaultService.Configure(ctx)
}

func (svc *RateLimitService) Start() error {
	svc.redisSvc = svc.Service(REDIS_SVC).(*RedisService)
	svc.initDefaultConfigs()
	return nil
}

func (svc *RateLimitService) initDefaultConfigs() {
	svc.mutex.Lock()
	defer svc.mutex.Unlock()

	svc.configs = map[string]*RateLimitConfig{
		// Registration - prevent bulk user creation
		"create_user": {
			EndpointType: "create_user",
			MaxRequests:  10,
			WindowSize:   15 * time.Minute,
			Description:  "User registration rate limit",
			IsActive:     true,
		},
		// Session logging - the client timer fires one of these per play
		"log_session": {
			EndpointType: "log_session",
			MaxRequests:  60,
			WindowSize:   time.Hour,
			Description:  "Session logging rate limit",
			IsActive:     true,
		},
		// General API calls per IP
		"api_general": {
			EndpointType: "api_general",
			MaxRequests:  1000,
			WindowSize:   time.Hour,
			Description:  "General API rate limit",
			IsActive:     true,
		},
	}
}

func (svc *RateLimitService) getConfig(endpointType string) *RateLimitConfig {
	svc.mutex.RLock()
	defer svc.mutex.RUnlock()
	return svc.configs[endpointType]
}

// Limit returns a fiber middleware enforcing the named config per client IP.
func (svc *RateLimitService) Limit(endpointType string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		cfg := svc.getConfig(endpointType)
		if cfg == nil || !cfg.IsActive {
			return c.Next()
		}

		key := fmt.Sprintf("ratelimit:%s:%s", cfg.EndpointType, c.IP())
		count, err := svc.redisSvc.IncrWithWindow(c.Context(), key, cfg.WindowSize)
		if err != nil {
			// Degrade open: a limiter outage must not take the API down.
			log.WithError(err).Warn("Rate limiter unavailable, allowing request")
			return c.Next()
		}

		if count > int64(cfg.MaxRequests) {
			log.WithFields(log.Fields{
				"endpoint_type": cfg.EndpointType,
				"ip":            c.IP(),
				"count":         count,
			}).Warn("Rate limit exceeded")

			return shared.NewTooManyRequestsError(nil, "Too many requests")
		}

		return c.Next()
	}
}
