package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// BaseConfig holds base configuration
type BaseConfig struct {
	Debug     bool   `mapstructure:"debug"`
	SentryDSN string `mapstructure:"sentry_dsn"`
}

// EthereumConfig holds node and contract configuration shared by every
// binary that talks to the chain.
type EthereumConfig struct {
	RPCURL              string        `mapstructure:"rpc_url"`
	WebSocketURL        string        `mapstructure:"websocket_url"`
	PrivateKey          string        `mapstructure:"private_key"` // empty = read-only session
	TokenAddress        string        `mapstructure:"token_address"`
	MarketAddress       string        `mapstructure:"market_address"`
	MaxBlockRange       uint64        `mapstructure:"max_block_range"`
	ConfirmTimeout      time.Duration `mapstructure:"confirm_timeout"`
	ReceiptPollInterval time.Duration `mapstructure:"receipt_poll_interval"`
}

// MetadataConfig holds token metadata resolver configuration
type MetadataConfig struct {
	IPFSGateways []string      `mapstructure:"ipfs_gateways"`
	HTTPTimeout  time.Duration `mapstructure:"http_timeout"`
	CacheTTL     time.Duration `mapstructure:"cache_ttl"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`  // in seconds
	WriteTimeout int    `mapstructure:"write_timeout"` // in seconds
	IdleTimeout  int    `mapstructure:"idle_timeout"`  // in seconds
}

// AuthConfig holds authentication configuration
type AuthConfig struct {
	JWTPublicKey string   `mapstructure:"jwt_public_key"`
	APIKeys      []string `mapstructure:"api_keys"`
}

// NATSConfig holds NATS JetStream configuration
type NATSConfig struct {
	URL            string        `mapstructure:"url"`
	SubjectPrefix  string        `mapstructure:"subject_prefix"`
	MaxReconnects  int           `mapstructure:"max_reconnects"`
	ReconnectWait  time.Duration `mapstructure:"reconnect_wait"`
	ConnectionName string        `mapstructure:"connection_name"`
}

// WorkerConfig holds worker pool configuration
type WorkerConfig struct {
	PoolSize  int `mapstructure:"pool_size"`
	QueueSize int `mapstructure:"queue_size"`
}

// MarketdConfig holds configuration for the marketd API server
type MarketdConfig struct {
	BaseConfig `mapstructure:",squash"`
	Server     ServerConfig   `mapstructure:"server"`
	Auth       AuthConfig     `mapstructure:"auth"`
	Ethereum   EthereumConfig `mapstructure:"ethereum"`
	Metadata   MetadataConfig `mapstructure:"metadata"`
	Worker     WorkerConfig   `mapstructure:"worker"`
}

// EventdConfig holds configuration for the eventd sale-event emitter
type EventdConfig struct {
	BaseConfig `mapstructure:",squash"`
	Ethereum   EthereumConfig `mapstructure:"ethereum"`
	NATS       NATSConfig     `mapstructure:"nats"`
}

// LoadMarketdConfig loads configuration for marketd
func LoadMarketdConfig(configFile string, envPath string) (*MarketdConfig, error) {
	v := configureViper("marketd", configFile, envPath)

	// Set defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 30)
	v.SetDefault("server.write_timeout", 30)
	v.SetDefault("server.idle_timeout", 120)
	v.SetDefault("metadata.ipfs_gateways", []string{"https://ipfs.io/ipfs/"})
	v.SetDefault("metadata.http_timeout", "15s")
	v.SetDefault("metadata.cache_ttl", "10m")
	v.SetDefault("worker.pool_size", 20)
	v.SetDefault("worker.queue_size", 2048)
	setEthereumDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config MarketdConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateEthereum(&config.Ethereum); err != nil {
		return nil, err
	}

	return &config, nil
}

// LoadEventdConfig loads configuration for eventd
func LoadEventdConfig(configFile string, envPath string) (*EventdConfig, error) {
	v := configureViper("eventd", configFile, envPath)

	// Set defaults
	v.SetDefault("nats.subject_prefix", "market")
	v.SetDefault("nats.max_reconnects", 10)
	v.SetDefault("nats.reconnect_wait", "2s")
	v.SetDefault("nats.connection_name", "eventd")
	setEthereumDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config EventdConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateEthereum(&config.Ethereum); err != nil {
		return nil, err
	}

	return &config, nil
}

func setEthereumDefaults(v *viper.Viper) {
	v.SetDefault("ethereum.max_block_range", 5000)
	v.SetDefault("ethereum.confirm_timeout", "2m")
	v.SetDefault("ethereum.receipt_poll_interval", "2s")
}

func validateEthereum(c *EthereumConfig) error {
	if c.RPCURL == "" {
		return errors.New("ethereum.rpc_url is required")
	}
	if c.TokenAddress == "" {
		return errors.New("ethereum.token_address is required")
	}
	if c.MarketAddress == "" {
		return errors.New("ethereum.market_address is required")
	}
	if c.MaxBlockRange == 0 {
		return errors.New("ethereum.max_block_range must be positive")
	}
	return nil
}

// configureViper sets up viper to read config.yaml and MARKET_LEDGER_*
// environment variables.
func configureViper(service string, configFile string, envPath string) *viper.Viper {
	v := viper.New()

	// Load environment variables
	loadEnv(envPath, service)

	// Set config file
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath(fmt.Sprintf("cmd/%s/", service))
		v.AddConfigPath("config/")
	}

	// Set environment variables
	v.SetEnvPrefix("MARKET_LEDGER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Explicitly bind all environment variables
	bindAllEnvVars(v)
	return v
}

// bindAllEnvVars explicitly binds all possible environment variables.
// This is required for viper to map env vars to config struct fields when
// no config file exists.
func bindAllEnvVars(v *viper.Viper) {
	keys := []string{
		"debug",
		"sentry_dsn",
		// Ethereum
		"ethereum.rpc_url",
		"ethereum.websocket_url",
		"ethereum.private_key",
		"ethereum.token_address",
		"ethereum.market_address",
		"ethereum.max_block_range",
		"ethereum.confirm_timeout",
		"ethereum.receipt_poll_interval",
		// Server
		"server.host",
		"server.port",
		"server.read_timeout",
		"server.write_timeout",
		"server.idle_timeout",
		// Auth
		"auth.jwt_public_key",
		"auth.api_keys",
		// Metadata
		"metadata.ipfs_gateways",
		"metadata.http_timeout",
		"metadata.cache_ttl",
		// NATS
		"nats.url",
		"nats.subject_prefix",
		"nats.max_reconnects",
		"nats.reconnect_wait",
		"nats.connection_name",
		// Worker
		"worker.pool_size",
		"worker.queue_size",
	}

	for _, key := range keys {
		_ = v.BindEnv(key)
	}
}

func loadEnv(envPath string, service string) {
	// Shared base first, then local, then optional per-service local.
	envFiles := []string{".env", ".env.local"}
	if service != "" {
		envFiles = append(envFiles, ".env."+service+".local")
	}

	if envPath == "" {
		envPath = "config/"
	}

	for _, envFile := range envFiles {
		candidate := filepath.Join(envPath, envFile)
		_ = godotenv.Overload(candidate) // Overload lets later files override earlier ones
	}
}
