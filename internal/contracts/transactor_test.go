package contracts

import (
	"context"
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openmarket/ledger/internal/domain"
)

// Well-known throwaway development key.
const testPrivateKey = "59c6995e998f97a5a0044966f0945389dc9e86dae88c7a8412f4603b6b78690d"

func newTestSigner(t *testing.T) *Signer {
	t.Helper()
	signer, err := NewSigner(testPrivateKey, big.NewInt(1337))
	require.NoError(t, err)
	return signer
}

func TestNewSigner_InvalidKey(t *testing.T) {
	_, err := NewSigner("not-a-key", big.NewInt(1))
	assert.Error(t, err)
}

func TestTransactor_Transact(t *testing.T) {
	var sent *types.Transaction

	client := &stubEthClient{
		pendingNonceAt: func(ctx context.Context, account common.Address) (uint64, error) {
			return 7, nil
		},
		suggestGasPrice: func(ctx context.Context) (*big.Int, error) {
			return big.NewInt(1_000_000_000), nil
		},
		estimateGas: func(ctx context.Context, msg ethereum.CallMsg) (uint64, error) {
			return 60_000, nil
		},
		sendTransaction: func(ctx context.Context, tx *types.Transaction) error {
			sent = tx
			return nil
		},
		transactionReceipt: func(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
			return &types.Receipt{
				Status:      types.ReceiptStatusSuccessful,
				TxHash:      txHash,
				BlockNumber: big.NewInt(123),
			}, nil
		},
	}

	tx := NewTransactor(client, newTestSigner(t), time.Second, time.Millisecond)

	receipt, err := tx.Transact(context.Background(), testMarketAddress, []byte{0x01}, big.NewInt(5))
	require.NoError(t, err)

	assert.Equal(t, uint64(123), receipt.BlockNumber.Uint64())
	require.NotNil(t, sent)
	assert.Equal(t, uint64(7), sent.Nonce())
	assert.Equal(t, uint64(60_000), sent.Gas())
	assert.Equal(t, testMarketAddress, *sent.To())
	assert.Equal(t, int64(5), sent.Value().Int64())
}

func TestTransactor_Transact_ReadOnly(t *testing.T) {
	tx := NewTransactor(&stubEthClient{}, nil, time.Second, time.Millisecond)

	_, err := tx.Transact(context.Background(), testMarketAddress, nil, nil)
	assert.ErrorIs(t, err, domain.ErrSigningUnavailable)
	assert.False(t, tx.CanSign())
}

func TestTransactor_Transact_RevertAtEstimation(t *testing.T) {
	client := &stubEthClient{
		pendingNonceAt: func(ctx context.Context, account common.Address) (uint64, error) {
			return 0, nil
		},
		suggestGasPrice: func(ctx context.Context) (*big.Int, error) {
			return big.NewInt(1), nil
		},
		estimateGas: func(ctx context.Context, msg ethereum.CallMsg) (uint64, error) {
			return 0, errors.New("execution reverted: not the seller")
		},
	}

	tx := NewTransactor(client, newTestSigner(t), time.Second, time.Millisecond)

	_, err := tx.Transact(context.Background(), testMarketAddress, nil, nil)
	require.ErrorIs(t, err, domain.ErrContractRevert)
	assert.Contains(t, err.Error(), "not the seller")
}

func TestTransactor_Transact_RevertedReceipt(t *testing.T) {
	client := &stubEthClient{
		pendingNonceAt: func(ctx context.Context, account common.Address) (uint64, error) {
			return 0, nil
		},
		suggestGasPrice: func(ctx context.Context) (*big.Int, error) {
			return big.NewInt(1), nil
		},
		estimateGas: func(ctx context.Context, msg ethereum.CallMsg) (uint64, error) {
			return 21_000, nil
		},
		sendTransaction: func(ctx context.Context, tx *types.Transaction) error {
			return nil
		},
		transactionReceipt: func(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
			return &types.Receipt{
				Status:      types.ReceiptStatusFailed,
				TxHash:      txHash,
				BlockNumber: big.NewInt(55),
			}, nil
		},
		callContract: func(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error) {
			// Replay at the failing block surfaces the reason.
			assert.Equal(t, int64(55), blockNumber.Int64())
			return nil, errors.New("execution reverted: item already sold")
		},
	}

	tx := NewTransactor(client, newTestSigner(t), time.Second, time.Millisecond)

	_, err := tx.Transact(context.Background(), testMarketAddress, nil, nil)
	require.ErrorIs(t, err, domain.ErrContractRevert)
	assert.Contains(t, err.Error(), "item already sold")
}

func TestTransactor_Transact_PendingConflict(t *testing.T) {
	client := &stubEthClient{
		pendingNonceAt: func(ctx context.Context, account common.Address) (uint64, error) {
			return 0, nil
		},
		suggestGasPrice: func(ctx context.Context) (*big.Int, error) {
			return big.NewInt(1), nil
		},
		estimateGas: func(ctx context.Context, msg ethereum.CallMsg) (uint64, error) {
			return 21_000, nil
		},
		sendTransaction: func(ctx context.Context, tx *types.Transaction) error {
			return errors.New("already known")
		},
	}

	tx := NewTransactor(client, newTestSigner(t), time.Second, time.Millisecond)

	_, err := tx.Transact(context.Background(), testMarketAddress, nil, nil)
	assert.ErrorIs(t, err, domain.ErrPendingRequestConflict)
}
