package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/openmarket/ledger/internal/adapter"
	"github.com/openmarket/ledger/internal/api/middleware"
	"github.com/openmarket/ledger/internal/api/server"
	"github.com/openmarket/ledger/internal/config"
	"github.com/openmarket/ledger/internal/ledger"
	"github.com/openmarket/ledger/internal/logger"
	"github.com/openmarket/ledger/internal/metadata"
	"github.com/openmarket/ledger/internal/session"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	cfg, err := config.LoadMarketdConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:     cfg.Debug,
		SentryDSN: cfg.SentryDSN,
		Tags: map[string]string{
			"service": "marketd",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting marketd")

	// Establish the chain session up front so a bad node URL or key
	// fails at startup, not on the first request.
	manager := session.NewManager(cfg.Ethereum, adapter.NewEthClientDialer())
	defer manager.Close()

	sess, err := manager.Current(ctx)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to establish chain session", zap.Error(err))
	}
	if !sess.HasSigner {
		logger.WarnCtx(ctx, "No signing key configured, running read-only")
	}

	resolver := metadata.NewGatewayResolver(
		adapter.NewHTTPClient(cfg.Metadata.HTTPTimeout),
		cfg.Metadata.IPFSGateways,
		cfg.Metadata.CacheTTL,
	)

	client := ledger.New(sess, resolver, ledger.Options{
		CacheTTL:      cfg.Metadata.CacheTTL,
		PoolSize:      cfg.Worker.PoolSize,
		QueueSize:     cfg.Worker.QueueSize,
		MaxBlockRange: cfg.Ethereum.MaxBlockRange,
	})
	defer client.Close()

	serverConfig := server.Config{
		Debug:        cfg.Debug,
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
		Auth: middleware.AuthConfig{
			JWTPublicKey: cfg.Auth.JWTPublicKey,
			APIKeys:      cfg.Auth.APIKeys,
		},
	}

	srv := server.New(serverConfig, client)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			errCh <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "server"))
		cancel()
	}

	// Create shutdown context with timeout (don't use canceled ctx)
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	logger.InfoCtx(shutdownCtx, "Shutting down server...")

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.FatalCtx(shutdownCtx, "Server forced to shutdown", zap.Error(err))
	}

	logger.Info("marketd stopped")
}
