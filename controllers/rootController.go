package controllers

import (
	"CarePulse/handlers"
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// HealthCheck reports whether a backing service is reachable.
type HealthCheck func(ctx context.Context) error

// SetupRootRoute registers onboarding and the health endpoint.
func SetupRootRoute(router *gin.Engine, authHandler *handlers.AuthHandler, checks map[string]HealthCheck) {
	router.GET("/", authHandler.Home)
	router.POST("/", authHandler.Onboard)
	router.POST("/logoff", authHandler.Logoff)
	router.GET("/healthz", healthHandler(checks))
}

func healthHandler(checks map[string]HealthCheck) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		status := http.StatusOK
		report := gin.H{}
		for name, check := range checks {
			if err := check(ctx); err != nil {
				log.Error().Err(err).Str("dependency", name).Msg("health check failed")
				report[name] = "down"
				status = http.StatusServiceUnavailable
				continue
			}
			report[name] = "up"
		}
		c.JSON(status, gin.H{"status": http.StatusText(status), "checks": report})
	}
}
