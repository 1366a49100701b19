package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"marineval/internal/extraction"
	httpapi "marineval/internal/http"
	"marineval/internal/meta"
	"marineval/internal/platform/config"
	"marineval/internal/platform/httpserver"
	"marineval/internal/platform/logger"
	platformmetrics "marineval/internal/platform/metrics"
	platformredis "marineval/internal/platform/redis"
	validationhandler "marineval/internal/validation/handler"
	validationmetrics "marineval/internal/validation/metrics"
	"marineval/internal/validation/service"
	"marineval/internal/vessels"
)

// main wires dependencies explicitly and keeps the server lifecycle small.
// Business logic lives in the internal packages.
func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "marineval: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := logger.New(cfg.Env, cfg.LogLevel)

	// The registry is built once here and shared read-only across all
	// requests. A failing source is not fatal: the loader degrades to an
	// empty registry and vessel checks fail closed.
	var source vessels.Source
	if cfg.RedisURL != "" {
		rdb, err := platformredis.New(ctx, cfg.RedisURL)
		if err != nil {
			log.Warn("redis unavailable, falling back to vessel file", "error", err.Error())
		} else {
			defer rdb.Close()
			source = vessels.NewRedisSource(rdb.Client, cfg.VesselRedisKey)
		}
	}
	if source == nil {
		source = vessels.NewFileSource(cfg.VesselFile)
	}
	registry := vessels.Load(ctx, source, log)

	httpMetrics := platformmetrics.New()
	valMetrics := validationmetrics.New()

	extractor := extraction.NewRuleBased(log)
	svc := service.New(extractor, registry, log, valMetrics)

	validateHandler := validationhandler.New(svc, log, cfg.MaxBodyBytes)
	metaHandler := meta.New(registry, cfg.Version, log)

	router := httpapi.NewRouter(log, httpMetrics, validateHandler, metaHandler)
	srv := httpserver.New(cfg.Addr, router)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting marineval",
			"addr", cfg.Addr,
			"env", cfg.Env,
			"version", cfg.Version,
			"vessels", registry.Size(),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		return nil
	})
	return g.Wait()
}
