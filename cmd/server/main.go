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

	"github.com/pontesfelipe/sistur-sub000/internal/catalog"
	"github.com/pontesfelipe/sistur-sub000/internal/config"
	"github.com/pontesfelipe/sistur-sub000/internal/serverapp"
)

func main() {
	srvCfg, err := config.ServerFromEnv()
	if err != nil {
		panic(err)
	}

	logger, err := buildLogger(srvCfg.Debug)
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	cfg := &config.Config{Game: config.Default()}
	if srvCfg.ConfigPath != "" {
		cfg, err = config.Load(srvCfg.ConfigPath)
		if err != nil {
			logger.Fatal("load config", zap.Error(err))
		}
	}

	cat := catalog.Default()
	if cfg.CatalogPath != "" {
		cat, err = catalog.LoadFile(cfg.CatalogPath)
		if err != nil {
			logger.Fatal("load catalog", zap.Error(err))
		}
	}

	handler, closeStore, err := serverapp.NewHandler(serverapp.Options{
		Config:  cfg,
		Catalog: cat,
		DataDir: srvCfg.DataDir,
		Logger:  logger,
	})
	if err != nil {
		logger.Fatal("build server", zap.Error(err))
	}
	defer func() { _ = closeStore() }()

	srv := &http.Server{
		Addr:              srvCfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("listening", zap.String("addr", srvCfg.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("serve", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown", zap.Error(err))
	}
}

func buildLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
