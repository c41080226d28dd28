package middlewares

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"
)

// RateLimiterConfig holds the configuration for the rate limiter
type RateLimiterConfig struct {
	RequestsPerSecond float64
	Burst             int
	// IdleTimeout drops the limiter of a client that has been quiet this long.
	IdleTimeout time.Duration
}

// NewRateLimiterMiddleware limits each client IP to its own token bucket.
func NewRateLimiterMiddleware(config RateLimiterConfig) gin.HandlerFunc {
	idle := config.IdleTimeout
	if idle <= 0 {
		idle = 10 * time.Minute
	}
	limiters := gocache.New(idle, 2*idle)

	return func(c *gin.Context) {
		ip := c.ClientIP()

		var limiter *rate.Limiter
		if v, ok := limiters.Get(ip); ok {
			limiter = v.(*rate.Limiter)
		} else {
			limiter = rate.NewLimiter(rate.Limit(config.RequestsPerSecond), config.Burst)
			if err := limiters.Add(ip, limiter, gocache.DefaultExpiration); err != nil {
				// lost the race; use the limiter stored first
				if v, ok := limiters.Get(ip); ok {
					limiter = v.(*rate.Limiter)
				}
			}
		}
		limiters.SetDefault(ip, limiter)

		if !limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "rate limit exceeded",
			})
			return
		}

		c.Next()
	}
}
