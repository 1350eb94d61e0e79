package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEthereumEnv(t *testing.T) {
	t.Helper()
	t.Setenv("MARKET_LEDGER_ETHEREUM_RPC_URL", "https://rpc.example.test")
	t.Setenv("MARKET_LEDGER_ETHEREUM_TOKEN_ADDRESS", "0x1111111111111111111111111111111111111111")
	t.Setenv("MARKET_LEDGER_ETHEREUM_MARKET_ADDRESS", "0x4444444444444444444444444444444444444444")
}

func TestLoadMarketdConfig_Defaults(t *testing.T) {
	setRequiredEthereumEnv(t)

	cfg, err := LoadMarketdConfig("", t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 30, cfg.Server.ReadTimeout)
	assert.Equal(t, 120, cfg.Server.IdleTimeout)
	assert.Equal(t, []string{"https://ipfs.io/ipfs/"}, cfg.Metadata.IPFSGateways)
	assert.Equal(t, 15*time.Second, cfg.Metadata.HTTPTimeout)
	assert.Equal(t, 10*time.Minute, cfg.Metadata.CacheTTL)
	assert.Equal(t, 20, cfg.Worker.PoolSize)
	assert.Equal(t, 2048, cfg.Worker.QueueSize)
	assert.Equal(t, uint64(5000), cfg.Ethereum.MaxBlockRange)
	assert.Equal(t, 2*time.Minute, cfg.Ethereum.ConfirmTimeout)
	assert.Equal(t, 2*time.Second, cfg.Ethereum.ReceiptPollInterval)
	// No key configured means a read-only session.
	assert.Equal(t, "", cfg.Ethereum.PrivateKey)
}

func TestLoadMarketdConfig_EnvOverrides(t *testing.T) {
	setRequiredEthereumEnv(t)
	t.Setenv("MARKET_LEDGER_SERVER_PORT", "9090")
	t.Setenv("MARKET_LEDGER_ETHEREUM_PRIVATE_KEY", "abc123")
	t.Setenv("MARKET_LEDGER_ETHEREUM_MAX_BLOCK_RANGE", "250")
	t.Setenv("MARKET_LEDGER_DEBUG", "true")

	cfg, err := LoadMarketdConfig("", t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "abc123", cfg.Ethereum.PrivateKey)
	assert.Equal(t, uint64(250), cfg.Ethereum.MaxBlockRange)
	assert.True(t, cfg.Debug)
}

func TestLoadMarketdConfig_MissingRequired(t *testing.T) {
	testCases := []struct {
		name string
		omit string
	}{
		{name: "rpc url", omit: "MARKET_LEDGER_ETHEREUM_RPC_URL"},
		{name: "token address", omit: "MARKET_LEDGER_ETHEREUM_TOKEN_ADDRESS"},
		{name: "market address", omit: "MARKET_LEDGER_ETHEREUM_MARKET_ADDRESS"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			setRequiredEthereumEnv(t)
			t.Setenv(tc.omit, "")

			_, err := LoadMarketdConfig("", t.TempDir())
			assert.Error(t, err)
		})
	}
}

func TestLoadMarketdConfig_File(t *testing.T) {
	setRequiredEthereumEnv(t)

	dir := t.TempDir()
	configFile := filepath.Join(dir, "config.yaml")
	content := `
server:
  port: 7070
metadata:
  ipfs_gateways:
    - https://gw1.example.test/ipfs/
    - https://gw2.example.test/ipfs/
`
	require.NoError(t, os.WriteFile(configFile, []byte(content), 0o600))

	cfg, err := LoadMarketdConfig(configFile, dir)
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, []string{
		"https://gw1.example.test/ipfs/",
		"https://gw2.example.test/ipfs/",
	}, cfg.Metadata.IPFSGateways)
	// Defaults still apply to everything the file omits.
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
}

func TestLoadMarketdConfig_EnvFile(t *testing.T) {
	setRequiredEthereumEnv(t)

	// godotenv mutates the process environment; registering the key
	// here makes the test framework restore it afterwards.
	t.Setenv("MARKET_LEDGER_SERVER_PORT", "8080")

	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile,
		[]byte("MARKET_LEDGER_SERVER_PORT=6060\n"), 0o600))

	cfg, err := LoadMarketdConfig("", dir)
	require.NoError(t, err)
	assert.Equal(t, 6060, cfg.Server.Port)
}

func TestLoadEventdConfig_Defaults(t *testing.T) {
	setRequiredEthereumEnv(t)
	t.Setenv("MARKET_LEDGER_NATS_URL", "nats://localhost:4222")

	cfg, err := LoadEventdConfig("", t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "nats://localhost:4222", cfg.NATS.URL)
	assert.Equal(t, "market", cfg.NATS.SubjectPrefix)
	assert.Equal(t, 10, cfg.NATS.MaxReconnects)
	assert.Equal(t, 2*time.Second, cfg.NATS.ReconnectWait)
	assert.Equal(t, "eventd", cfg.NATS.ConnectionName)
	assert.Equal(t, uint64(5000), cfg.Ethereum.MaxBlockRange)
}
