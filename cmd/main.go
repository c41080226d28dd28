package main

import (
	"CarePulse/cache"
	"CarePulse/config"
	"CarePulse/database"
	"CarePulse/logger"
	"CarePulse/routes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// the logger is configured from cfg, so fall back to the default one
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	appLogger := logger.New(cfg.Env)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.InitDB(ctx, cfg.DBURL, cfg.IsDevelopment())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize database")
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Error().Err(err).Msg("failed to close database")
		}
	}()

	redisClient, err := database.NewRedisClient(ctx, cfg.RedisAddress, cfg.Redis)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize Redis client")
	}
	defer redisClient.Close()

	appCache, err := cache.NewCache(redisClient)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize cache")
	}

	handler, err := routes.SetupRoutes(appCache, cfg, db, redisClient, appLogger)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to set up routes")
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       2 * time.Minute, // identification document uploads
		WriteTimeout:      30 * time.Second,
		MaxHeaderBytes:    1 << 20,
		IdleTimeout:       30 * time.Second,
	}

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		log.Info().Str("addr", srv.Addr).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("listen and serve failed")
		}
	}()

	go func() {
		defer wg.Done()
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				database.MonitorRedisPool(redisClient)
			}
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()

	log.Info().Msg("shutting down server")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}

	wg.Wait()
	log.Info().Msg("server exited gracefully")
}
