package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/mytheresa/go-storefront/app"
	"github.com/mytheresa/go-storefront/config"
	"github.com/mytheresa/go-storefront/models"
	"github.com/mytheresa/go-storefront/storefront"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}

	seed, err := loadSeed(cfg)
	if err != nil {
		logger.Fatal("failed to load product seed", zap.String("code", cfg.ProductCode), zap.Error(err))
	}

	store, err := storefront.New(seed, storefront.Options{Premium: cfg.Premium, Logger: logger})
	if err != nil {
		logger.Fatal("failed to build storefront", zap.Error(err))
	}
	defer store.Close()

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           app.NewRouter(store, logger),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("starting server", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", zap.Error(err))
	}
}

// loadSeed reads the product from Postgres when DATABASE_URL is set and
// falls back to the built-in product otherwise.
func loadSeed(cfg config.Config) (models.Product, error) {
	if cfg.DatabaseURL == "" {
		return models.DefaultProduct(), nil
	}

	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		return models.Product{}, err
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	p, err := models.NewProductsRepository(db).GetByCode(cfg.ProductCode)
	if err != nil {
		return models.Product{}, err
	}
	return *p, nil
}
