package emitter

import (
	"context"
	"fmt"
	"math/big"
	"math/rand"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/openmarket/ledger/internal/adapter"
	"github.com/openmarket/ledger/internal/contracts"
	"github.com/openmarket/ledger/internal/domain"
	"github.com/openmarket/ledger/internal/logger"
	"github.com/openmarket/ledger/internal/messaging"
)

// Config holds the marketplace subscription parameters.
type Config struct {
	MarketAddress common.Address
	TokenAddress  common.Address
}

// Emitter watches the marketplace for ItemSold events and publishes a
// normalized sale event for each one.
type Emitter struct {
	cfg       Config
	client    adapter.EthClient
	publisher messaging.Publisher
	clock     adapter.Clock
	entropy   *ulid.MonotonicEntropy
}

func New(cfg Config, client adapter.EthClient, publisher messaging.Publisher, clock adapter.Clock) *Emitter {
	return &Emitter{
		cfg:       cfg,
		client:    client,
		publisher: publisher,
		clock:     clock,
		entropy:   ulid.Monotonic(rand.New(rand.NewSource(clock.Now().UnixNano())), 0),
	}
}

// Run subscribes to ItemSold logs from fromBlock and publishes until the
// context is canceled or the subscription fails.
func (e *Emitter) Run(ctx context.Context, fromBlock uint64) error {
	query := ethereum.FilterQuery{
		FromBlock: new(big.Int).SetUint64(fromBlock),
		Addresses: []common.Address{e.cfg.MarketAddress},
		Topics: [][]common.Hash{
			{contracts.ItemSoldEventSignature()},
			{common.BytesToHash(e.cfg.TokenAddress.Bytes())},
		},
	}

	logs := make(chan types.Log)
	sub, err := e.client.SubscribeFilterLogs(ctx, query, logs)
	if err != nil {
		return fmt.Errorf("failed to subscribe to ItemSold logs: %w", err)
	}
	defer func() {
		logger.InfoCtx(ctx, "Unsubscribing from ItemSold logs")
		sub.Unsubscribe()
	}()

	logger.InfoCtx(ctx, "watching marketplace sales",
		zap.String("market", e.cfg.MarketAddress.Hex()),
		zap.Uint64("fromBlock", fromBlock))

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err := <-sub.Err():
			return fmt.Errorf("subscription error: %w", err)
		case vLog := <-logs:
			if vLog.Removed {
				continue
			}

			if err := e.handleLog(ctx, &vLog); err != nil {
				logger.ErrorCtx(ctx, err, zap.String("txHash", vLog.TxHash.Hex()))
			}
		}
	}
}

// GetLatestBlock returns the current chain head number.
func (e *Emitter) GetLatestBlock(ctx context.Context) (uint64, error) {
	header, err := e.client.HeaderByNumber(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to get latest block: %w", err)
	}
	return header.Number.Uint64(), nil
}

func (e *Emitter) handleLog(ctx context.Context, vLog *types.Log) error {
	sale, blockNumber, err := contracts.ParseItemSoldLog(vLog)
	if err != nil {
		return fmt.Errorf("failed to parse ItemSold log: %w", err)
	}

	event := domain.SaleEvent{
		Id:          e.newEventId(),
		TokenId:     sale.TokenId,
		Seller:      sale.Seller,
		Buyer:       sale.Buyer,
		Price:       sale.Price,
		TxHash:      sale.TxHash,
		BlockNumber: blockNumber,
		SoldAt:      sale.SoldAt,
	}

	return e.publisher.PublishSaleEvent(ctx, event)
}

// newEventId mints a ULID so events sort by observation time. Only the
// Run loop calls this, so the entropy source needs no locking.
func (e *Emitter) newEventId() string {
	return ulid.MustNew(ulid.Timestamp(e.clock.Now()), e.entropy).String()
}
