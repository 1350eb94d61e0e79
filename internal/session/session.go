package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/openmarket/ledger/internal/adapter"
	"github.com/openmarket/ledger/internal/config"
	"github.com/openmarket/ledger/internal/contracts"
	"github.com/openmarket/ledger/internal/domain"
	"github.com/openmarket/ledger/internal/logger"
)

// Session bundles the memoized contract handles for one connection. The
// same handles are reused until the session is invalidated.
type Session struct {
	Token   contracts.TokenRegistry
	Market  contracts.Marketplace
	Account string
	// HasSigner reports whether state-changing operations are available.
	// Read-only sessions fail fast with domain.ErrSigningUnavailable.
	HasSigner bool
}

// Manager establishes sessions against the configured node and caches
// the contract handles across calls.
type Manager struct {
	cfg    config.EthereumConfig
	dialer adapter.EthClientDialer

	mu      sync.Mutex
	client  adapter.EthClient
	current *Session
}

func NewManager(cfg config.EthereumConfig, dialer adapter.EthClientDialer) *Manager {
	return &Manager{
		cfg:    cfg,
		dialer: dialer,
	}
}

// Current returns the active session, establishing one on first use.
// Repeat calls return the same memoized handles.
func (m *Manager) Current(ctx context.Context) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current != nil {
		return m.current, nil
	}

	client, err := m.dialer.Dial(ctx, m.cfg.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to dial %s: %s",
			domain.ErrNetworkFailure, m.cfg.RPCURL, err.Error())
	}

	chainID, err := client.ChainID(ctx)
	if err != nil {
		client.Close()
		return nil, contracts.NormalizeRPCError(err)
	}

	var signer *contracts.Signer
	if m.cfg.PrivateKey != "" {
		signer, err = contracts.NewSigner(m.cfg.PrivateKey, chainID)
		if err != nil {
			client.Close()
			return nil, err
		}
	}

	tx := contracts.NewTransactor(client, signer,
		m.cfg.ConfirmTimeout, m.cfg.ReceiptPollInterval)

	tokenAddress := common.HexToAddress(m.cfg.TokenAddress)
	marketAddress := common.HexToAddress(m.cfg.MarketAddress)

	session := &Session{
		Token:     contracts.NewTokenRegistry(tokenAddress, client, tx),
		Market:    contracts.NewMarketplace(marketAddress, tokenAddress, client, tx),
		HasSigner: signer != nil,
	}
	if signer != nil {
		session.Account = signer.Address().Hex()
	}

	logger.InfoCtx(ctx, "session established",
		zap.String("chainId", chainID.String()),
		zap.String("account", session.Account),
		zap.Bool("hasSigner", session.HasSigner))

	m.client = client
	m.current = session
	return session, nil
}

// Invalidate drops the memoized session so the next call re-establishes
// the connection.
func (m *Manager) Invalidate() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.client != nil {
		m.client.Close()
		m.client = nil
	}
	m.current = nil
}

// Close releases the underlying connection.
func (m *Manager) Close() {
	m.Invalidate()
}
