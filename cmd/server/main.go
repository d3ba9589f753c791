package main

import (
	"context"
	"errors"
	"fmt"
	"itinerary-planner/internal/adapters/cache"
	"itinerary-planner/internal/adapters/citiesapi"
	"itinerary-planner/internal/adapters/memory"
	"itinerary-planner/internal/adapters/repositories"
	"itinerary-planner/internal/api"
	"itinerary-planner/internal/config"
	"itinerary-planner/internal/platform/db"
	"itinerary-planner/internal/platform/logger"
	"itinerary-planner/internal/ports"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// main is the application composition root.
// It picks a city source (Postgres, REST backend or seed file), optionally
// fronts it with Redis, and starts the HTTP server.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	lg, err := logger.New(cfg.Log.Level)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = lg.Sync() }()
	zap.ReplaceGlobals(lg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	source, closeSource, err := newCitySource(ctx, cfg, lg)
	if err != nil {
		lg.Fatal("city source setup failed", zap.Error(err))
	}
	defer closeSource()

	router := api.NewRouter(source, lg, api.Options{
		AllowedOrigins:    cfg.Server.AllowedOrigins,
		RequestsPerSecond: cfg.Server.RateLimitRPS,
		Burst:             cfg.Server.RateLimitBurst,
	})

	// Timeouts are tuned for cold-cache requests against a remote city backend.
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		lg.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen and serve: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		lg.Error("server stopped with error", zap.Error(err))
		return
	}
	lg.Info("server stopped")
}

// newCitySource returns the configured source and a func releasing its
// resources.
func newCitySource(ctx context.Context, cfg *config.Config, lg *zap.Logger) (ports.CitySource, func(), error) {
	var (
		source  ports.CitySource
		closers []func()
	)
	closeAll := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	switch {
	case cfg.Database.URL != "":
		conn, err := db.Open(ctx, cfg.Database)
		if err != nil {
			return nil, nil, err
		}
		closers = append(closers, func() { _ = conn.Close() })
		source = repositories.NewSQLCityRepository(conn)
		lg.Info("using postgres city source")

	case cfg.CitiesAPI.BaseURL != "":
		client, err := citiesapi.NewClient(cfg.CitiesAPI.BaseURL, cfg.CitiesAPI.Timeout, lg)
		if err != nil {
			return nil, nil, err
		}
		source = client
		lg.Info("using cities api source", zap.String("base_url", cfg.CitiesAPI.BaseURL))

	default:
		cities, err := repositories.LoadSeedFile(cfg.SeedPath)
		if err != nil {
			return nil, nil, err
		}
		source = memory.NewCitySource(cities)
		lg.Info("using seed file city source", zap.String("path", cfg.SeedPath), zap.Int("cities", len(cities)))
	}

	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		closers = append(closers, func() { _ = rdb.Close() })

		if err := rdb.Ping(ctx).Err(); err != nil {
			lg.Warn("redis unreachable, cache will fall through", zap.String("addr", cfg.Redis.Addr), zap.Error(err))
		}

		cached, err := cache.NewRedisCitySource(rdb, source, cfg.Redis.CacheTTL, lg)
		if err != nil {
			closeAll()
			return nil, nil, fmt.Errorf("redis cache: %w", err)
		}
		source = cached
	}

	return source, closeAll, nil
}
