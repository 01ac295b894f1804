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

	"github.com/VhudzikiIV/PeaQBodyCare/internal/config"
	h "github.com/VhudzikiIV/PeaQBodyCare/internal/http"
	"github.com/VhudzikiIV/PeaQBodyCare/internal/repository"
	"github.com/VhudzikiIV/PeaQBodyCare/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	store, err := repository.NewPostgres(cfg.Database.DSN(), cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer store.Close()

	logger.Info("connected to postgres",
		zap.String("host", cfg.Database.Host),
		zap.String("database", cfg.Database.Name))

	if err := store.RunMigrations(cfg.Database.MigrationsDir); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}

	router := h.NewRouter(h.RouterConfig{
		Store:          store,
		Accounts:       service.NewAccountService(store),
		Orders:         service.NewOrderService(store, cfg.WhatsApp.Number),
		Logger:         logger,
		RequestTimeout: cfg.Server.RequestTimeout,
		ImagesDir:      cfg.Static.ImagesDir,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	logger.Info("server exited")
}
