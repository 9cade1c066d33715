package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"ordersdash/data"
	"ordersdash/internal/api"
	"ordersdash/internal/cache"
	"ordersdash/internal/config"
	"ordersdash/internal/dashboard"
	"ordersdash/internal/engine"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load: %v", err)
	}
	log.SetLevel(cfg.Level())

	// 1. Initialize Echo (Starts Instantly)
	e := echo.New()
	e.HideBanner = true
	e.Logger.SetLevel(cfg.Level())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{AllowOrigins: cfg.AllowedOrigins}))
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	api.Setup(e)

	// 2. Handler starts empty and answers 503 until the dataset is in
	h := api.NewHandler(nil)
	h.RegisterRoutes(e)

	memo := newCache(ctx, cfg)

	// 3. Load the dataset in the background
	go func() {
		log.Info("BACKGROUND: loading orders dataset...")
		t0 := time.Now()

		store, err := loadStore(cfg.OrdersFile)
		if err != nil {
			log.Errorf("BACKGROUND: %v; serving an empty dataset", err)
			store = engine.LoadBytes(nil)
		}
		svc := dashboard.New(store, memo, cfg.CacheTTL)

		// Warm the memoized views before going live
		svc.Summary(ctx)
		svc.Options(ctx)

		h.SetData(svc)
		log.Infof("BACKGROUND: dataset ready in %v (%d orders)", time.Since(t0), store.Len())
	}()

	// 4. Start Server
	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-ctx.Done()
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Errorf("server shutdown error: %v", err)
	}
	if c, ok := memo.(*cache.Redis); ok {
		_ = c.Close()
	}
}

func loadStore(path string) (*engine.Store, error) {
	if path == "" {
		return engine.LoadBytes(data.Orders), nil
	}
	return engine.LoadFile(path)
}

// newCache prefers redis and falls back to process memory.
func newCache(ctx context.Context, cfg config.Config) cache.Cache {
	if cfg.RedisAddr == "" {
		return cache.NewMemory()
	}
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rc, err := cache.NewRedis(pingCtx, cache.RedisOptions{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err != nil {
		log.Warnf("redis unavailable, using in-process cache: %v", err)
		return cache.NewMemory()
	}
	return rc
}
