package contracts

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"go.uber.org/zap"

	"github.com/openmarket/ledger/internal/adapter"
	"github.com/openmarket/ledger/internal/domain"
	"github.com/openmarket/ledger/internal/logger"
)

// Signer holds the account key used for state-changing calls.
type Signer struct {
	key     *ecdsa.PrivateKey
	from    common.Address
	chainID *big.Int
}

// NewSigner parses a hex-encoded private key and binds it to a chain.
func NewSigner(hexKey string, chainID *big.Int) (*Signer, error) {
	key, err := crypto.HexToECDSA(hexKey)
	if err != nil {
		return nil, fmt.Errorf("failed to parse private key: %w", err)
	}

	return &Signer{
		key:     key,
		from:    crypto.PubkeyToAddress(key.PublicKey),
		chainID: chainID,
	}, nil
}

// Address returns the account the signer transacts from.
func (s *Signer) Address() common.Address {
	return s.from
}

// Transactor signs, submits and confirms state-changing contract calls.
// A nil signer makes every Transact call fail fast with
// domain.ErrSigningUnavailable.
type Transactor struct {
	client         adapter.EthClient
	signer         *Signer
	confirmTimeout time.Duration
	pollInterval   time.Duration
}

func NewTransactor(
	client adapter.EthClient,
	signer *Signer,
	confirmTimeout time.Duration,
	pollInterval time.Duration,
) *Transactor {
	return &Transactor{
		client:         client,
		signer:         signer,
		confirmTimeout: confirmTimeout,
		pollInterval:   pollInterval,
	}
}

// CanSign reports whether a signing key is configured.
func (t *Transactor) CanSign() bool {
	return t.signer != nil
}

// From returns the transacting account, or the zero address in read-only
// sessions.
func (t *Transactor) From() common.Address {
	if t.signer == nil {
		return common.Address{}
	}
	return t.signer.from
}

// Transact submits a contract call and waits for its receipt. The receipt
// is only returned for successful transactions; a reverted receipt is
// replayed as a call to surface the revert reason.
func (t *Transactor) Transact(ctx context.Context, to common.Address, data []byte, value *big.Int) (*types.Receipt, error) {
	if t.signer == nil {
		return nil, domain.ErrSigningUnavailable
	}

	nonce, err := t.client.PendingNonceAt(ctx, t.signer.from)
	if err != nil {
		return nil, NormalizeRPCError(err)
	}

	gasPrice, err := t.client.SuggestGasPrice(ctx)
	if err != nil {
		return nil, NormalizeRPCError(err)
	}

	msg := ethereum.CallMsg{
		From:  t.signer.from,
		To:    &to,
		Value: value,
		Data:  data,
	}

	gasLimit, err := t.client.EstimateGas(ctx, msg)
	if err != nil {
		// Reverts surface at estimation before anything is broadcast.
		return nil, NormalizeRPCError(err)
	}

	tx := types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		GasPrice: gasPrice,
		Gas:      gasLimit,
		To:       &to,
		Value:    value,
		Data:     data,
	})

	signedTx, err := types.SignTx(tx, types.LatestSignerForChainID(t.signer.chainID), t.signer.key)
	if err != nil {
		return nil, fmt.Errorf("failed to sign transaction: %w", err)
	}

	if err := t.client.SendTransaction(ctx, signedTx); err != nil {
		return nil, NormalizeRPCError(err)
	}

	logger.InfoCtx(ctx, "transaction submitted",
		zap.String("txHash", signedTx.Hash().Hex()),
		zap.String("to", to.Hex()),
		zap.Uint64("nonce", nonce))

	return t.waitMined(ctx, signedTx.Hash(), msg)
}

func (t *Transactor) waitMined(ctx context.Context, txHash common.Hash, msg ethereum.CallMsg) (*types.Receipt, error) {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = t.pollInterval
	b.MaxInterval = t.pollInterval * 4
	b.MaxElapsedTime = t.confirmTimeout

	var receipt *types.Receipt

	err := backoff.Retry(func() error {
		r, err := t.client.TransactionReceipt(ctx, txHash)
		if err != nil {
			if err == ethereum.NotFound {
				return fmt.Errorf("transaction %s not mined yet", txHash.Hex())
			}
			return err
		}

		receipt = r
		return nil
	}, backoff.WithContext(b, ctx))
	if err != nil {
		return nil, fmt.Errorf("%w: waiting for receipt of %s: %s",
			domain.ErrNetworkFailure, txHash.Hex(), err.Error())
	}

	if receipt.Status == types.ReceiptStatusFailed {
		// Replay the call at the failing block to recover the reason.
		if _, callErr := t.client.CallContract(ctx, msg, receipt.BlockNumber); callErr != nil {
			return nil, NormalizeRPCError(callErr)
		}
		return nil, fmt.Errorf("%w: transaction %s reverted", domain.ErrContractRevert, txHash.Hex())
	}

	logger.InfoCtx(ctx, "transaction confirmed",
		zap.String("txHash", txHash.Hex()),
		zap.Uint64("blockNumber", receipt.BlockNumber.Uint64()))

	return receipt, nil
}
