package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/nats-io/nats.go"
	"go.uber.org/zap"

	"github.com/openmarket/ledger/internal/adapter"
	"github.com/openmarket/ledger/internal/config"
	"github.com/openmarket/ledger/internal/emitter"
	"github.com/openmarket/ledger/internal/logger"
	"github.com/openmarket/ledger/internal/messaging"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
	fromBlock  = flag.Uint64("from-block", 0, "Block to start watching from (0 = chain head)")
)

func main() {
	flag.Parse()

	// Load configuration
	cfg, err := config.LoadEventdConfig(*configFile, *envPath)
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
			"service": "eventd",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting eventd")

	// Subscriptions need the websocket endpoint.
	nodeURL := cfg.Ethereum.WebSocketURL
	if nodeURL == "" {
		logger.FatalCtx(ctx, "ethereum.websocket_url is required")
	}

	client, err := adapter.NewEthClientDialer().Dial(ctx, nodeURL)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to dial ethereum node", zap.Error(err))
	}
	defer client.Close()
	logger.InfoCtx(ctx, "Connected to ethereum node", zap.String("url", nodeURL))

	// Connect to NATS JetStream
	nc, js, err := adapter.NewNatsJetStream().Connect(cfg.NATS.URL,
		nats.Name(cfg.NATS.ConnectionName),
		nats.MaxReconnects(cfg.NATS.MaxReconnects),
		nats.ReconnectWait(cfg.NATS.ReconnectWait),
	)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to NATS", zap.Error(err))
	}
	defer nc.Close()
	logger.InfoCtx(ctx, "Connected to NATS", zap.String("url", nc.ConnectedUrl()))

	publisher := messaging.NewJetStreamPublisher(js, adapter.NewJSON(), cfg.NATS.SubjectPrefix)

	em := emitter.New(emitter.Config{
		MarketAddress: common.HexToAddress(cfg.Ethereum.MarketAddress),
		TokenAddress:  common.HexToAddress(cfg.Ethereum.TokenAddress),
	}, client, publisher, adapter.NewClock())

	startBlock := *fromBlock
	if startBlock == 0 {
		startBlock, err = em.GetLatestBlock(ctx)
		if err != nil {
			logger.FatalCtx(ctx, "Failed to get latest block", zap.Error(err))
		}
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- em.Run(ctx, startBlock)
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
		<-errCh
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logger.ErrorCtx(ctx, err, zap.String("component", "emitter"))
		}
		cancel()
	}

	logger.Info("eventd stopped")
}
