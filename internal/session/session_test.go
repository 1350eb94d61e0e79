package session

import (
	"context"
	"errors"
	"math/big"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openmarket/ledger/internal/config"
	"github.com/openmarket/ledger/internal/domain"
	"github.com/openmarket/ledger/internal/logger"
	"github.com/openmarket/ledger/internal/mocks"
)

// Well-known throwaway development key.
const testPrivateKey = "59c6995e998f97a5a0044966f0945389dc9e86dae88c7a8412f4603b6b78690d"

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: true}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func testEthereumConfig(privateKey string) config.EthereumConfig {
	return config.EthereumConfig{
		RPCURL:              "https://rpc.example.test",
		PrivateKey:          privateKey,
		TokenAddress:        "0x1111111111111111111111111111111111111111",
		MarketAddress:       "0x4444444444444444444444444444444444444444",
		MaxBlockRange:       5000,
		ConfirmTimeout:      time.Minute,
		ReceiptPollInterval: time.Second,
	}
}

func TestCurrent_ReadOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockEthClient(ctrl)
	dialer := mocks.NewMockEthClientDialer(ctrl)

	dialer.EXPECT().
		Dial(gomock.Any(), "https://rpc.example.test").
		Return(client, nil)
	client.EXPECT().
		ChainID(gomock.Any()).
		Return(big.NewInt(1337), nil)

	m := NewManager(testEthereumConfig(""), dialer)

	sess, err := m.Current(context.Background())
	require.NoError(t, err)

	assert.False(t, sess.HasSigner)
	assert.Equal(t, "", sess.Account)
	assert.NotNil(t, sess.Token)
	assert.NotNil(t, sess.Market)
}

func TestCurrent_WithSigner(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockEthClient(ctrl)
	dialer := mocks.NewMockEthClientDialer(ctrl)

	dialer.EXPECT().
		Dial(gomock.Any(), gomock.Any()).
		Return(client, nil)
	client.EXPECT().
		ChainID(gomock.Any()).
		Return(big.NewInt(1337), nil)

	m := NewManager(testEthereumConfig(testPrivateKey), dialer)

	sess, err := m.Current(context.Background())
	require.NoError(t, err)

	assert.True(t, sess.HasSigner)
	assert.NotEmpty(t, sess.Account)
}

func TestCurrent_Memoized(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockEthClient(ctrl)
	dialer := mocks.NewMockEthClientDialer(ctrl)

	// One dial serves every call until invalidation.
	dialer.EXPECT().
		Dial(gomock.Any(), gomock.Any()).
		Return(client, nil).
		Times(1)
	client.EXPECT().
		ChainID(gomock.Any()).
		Return(big.NewInt(1337), nil).
		Times(1)

	m := NewManager(testEthereumConfig(""), dialer)

	first, err := m.Current(context.Background())
	require.NoError(t, err)
	second, err := m.Current(context.Background())
	require.NoError(t, err)

	assert.Same(t, first, second)
}

func TestCurrent_RedialsAfterInvalidate(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockEthClient(ctrl)
	dialer := mocks.NewMockEthClientDialer(ctrl)

	dialer.EXPECT().
		Dial(gomock.Any(), gomock.Any()).
		Return(client, nil).
		Times(2)
	client.EXPECT().
		ChainID(gomock.Any()).
		Return(big.NewInt(1337), nil).
		Times(2)
	client.EXPECT().Close().Times(1)

	m := NewManager(testEthereumConfig(""), dialer)

	first, err := m.Current(context.Background())
	require.NoError(t, err)

	m.Invalidate()

	second, err := m.Current(context.Background())
	require.NoError(t, err)

	assert.NotSame(t, first, second)
}

func TestCurrent_DialFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	dialer := mocks.NewMockEthClientDialer(ctrl)

	dialer.EXPECT().
		Dial(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("connection refused"))

	m := NewManager(testEthereumConfig(""), dialer)

	_, err := m.Current(context.Background())
	assert.ErrorIs(t, err, domain.ErrNetworkFailure)
}

func TestCurrent_ChainIDFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockEthClient(ctrl)
	dialer := mocks.NewMockEthClientDialer(ctrl)

	dialer.EXPECT().
		Dial(gomock.Any(), gomock.Any()).
		Return(client, nil)
	client.EXPECT().
		ChainID(gomock.Any()).
		Return(nil, errors.New("connection reset"))
	client.EXPECT().Close()

	m := NewManager(testEthereumConfig(""), dialer)

	_, err := m.Current(context.Background())
	assert.ErrorIs(t, err, domain.ErrNetworkFailure)
}

func TestCurrent_InvalidPrivateKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockEthClient(ctrl)
	dialer := mocks.NewMockEthClientDialer(ctrl)

	dialer.EXPECT().
		Dial(gomock.Any(), gomock.Any()).
		Return(client, nil)
	client.EXPECT().
		ChainID(gomock.Any()).
		Return(big.NewInt(1337), nil)
	client.EXPECT().Close()

	m := NewManager(testEthereumConfig("not-a-key"), dialer)

	_, err := m.Current(context.Background())
	assert.Error(t, err)
}
