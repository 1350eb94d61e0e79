package contracts

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"

	"github.com/openmarket/ledger/internal/adapter"
	"github.com/openmarket/ledger/internal/domain"
)

//go:generate mockgen -source=token.go -destination=../mocks/token.go -package=mocks -mock_names TokenRegistry=MockTokenRegistry

// TokenRegistry is the Go binding of the token registry contract.
type TokenRegistry interface {
	// Mint creates a new token for the signing account and returns the
	// minted token id parsed from the NFTMinted receipt log.
	Mint(ctx context.Context, cid string, royaltyFee int64) (string, error)

	GetTokenInfoById(ctx context.Context, tokenId string) (*TokenInfo, error)
	GetTokenInfoByOwner(ctx context.Context, owner string) ([]TokenInfo, error)
	GetTokenInfoByCreator(ctx context.Context, creator string) ([]TokenInfo, error)

	Transfer(ctx context.Context, from, to, tokenId string) error
	Approve(ctx context.Context, operator, tokenId string) error
	SetApprovalForAll(ctx context.Context, operator string, approved bool) error
	IsApprovedForAll(ctx context.Context, owner, operator string) (bool, error)
	GetApproved(ctx context.Context, tokenId string) (string, error)

	Address() common.Address
}

type tokenRegistry struct {
	address common.Address
	client  adapter.EthClient
	tx      *Transactor
}

func NewTokenRegistry(address common.Address, client adapter.EthClient, tx *Transactor) TokenRegistry {
	return &tokenRegistry{
		address: address,
		client:  client,
		tx:      tx,
	}
}

func (r *tokenRegistry) Address() common.Address {
	return r.address
}

func (r *tokenRegistry) call(ctx context.Context, method string, args ...interface{}) ([]interface{}, error) {
	data, err := tokenRegistryABI.Pack(method, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to pack %s call: %w", method, err)
	}

	res, err := r.client.CallContract(ctx, ethereum.CallMsg{To: &r.address, Data: data}, nil)
	if err != nil {
		return nil, NormalizeRPCError(err)
	}

	out, err := tokenRegistryABI.Unpack(method, res)
	if err != nil {
		return nil, fmt.Errorf("failed to unpack %s result: %w", method, err)
	}

	return out, nil
}

func (r *tokenRegistry) Mint(ctx context.Context, cid string, royaltyFee int64) (string, error) {
	if royaltyFee < domain.MinRoyaltyFee || royaltyFee > domain.MaxRoyaltyFee {
		return "", fmt.Errorf("%w: royalty fee %d out of range [%d, %d]",
			domain.ErrInvalidRoyalty, royaltyFee, domain.MinRoyaltyFee, domain.MaxRoyaltyFee)
	}

	data, err := tokenRegistryABI.Pack("mint", cid, big.NewInt(royaltyFee))
	if err != nil {
		return "", fmt.Errorf("failed to pack mint call: %w", err)
	}

	receipt, err := r.tx.Transact(ctx, r.address, data, nil)
	if err != nil {
		return "", err
	}

	for _, log := range receipt.Logs {
		if log.Address != r.address || len(log.Topics) < 2 {
			continue
		}
		if log.Topics[0] == nftMintedEventSignature {
			return new(big.Int).SetBytes(log.Topics[1].Bytes()).String(), nil
		}
	}

	return "", fmt.Errorf("%w: mint receipt %s carries no NFTMinted log",
		domain.ErrNotFound, receipt.TxHash.Hex())
}

func (r *tokenRegistry) GetTokenInfoById(ctx context.Context, tokenId string) (*TokenInfo, error) {
	id, err := parseTokenId(tokenId)
	if err != nil {
		return nil, err
	}

	out, err := r.call(ctx, "getTokenInfoById", id)
	if err != nil {
		// The registry reverts on unknown ids; surface that as a lookup miss.
		if errors.Is(err, domain.ErrContractRevert) {
			return nil, fmt.Errorf("%w: token %s", domain.ErrNotFound, tokenId)
		}
		return nil, err
	}

	info := abi.ConvertType(out[0], new(TokenInfo)).(*TokenInfo)
	if info.Owner == (common.Address{}) {
		return nil, fmt.Errorf("%w: token %s", domain.ErrNotFound, tokenId)
	}

	return info, nil
}

func (r *tokenRegistry) GetTokenInfoByOwner(ctx context.Context, owner string) ([]TokenInfo, error) {
	out, err := r.call(ctx, "getTokenInfoByOwner", common.HexToAddress(owner))
	if err != nil {
		return nil, err
	}

	return *abi.ConvertType(out[0], new([]TokenInfo)).(*[]TokenInfo), nil
}

func (r *tokenRegistry) GetTokenInfoByCreator(ctx context.Context, creator string) ([]TokenInfo, error) {
	out, err := r.call(ctx, "getTokenInfoByCreator", common.HexToAddress(creator))
	if err != nil {
		return nil, err
	}

	return *abi.ConvertType(out[0], new([]TokenInfo)).(*[]TokenInfo), nil
}

func (r *tokenRegistry) Transfer(ctx context.Context, from, to, tokenId string) error {
	id, err := parseTokenId(tokenId)
	if err != nil {
		return err
	}

	data, err := tokenRegistryABI.Pack("transfer",
		common.HexToAddress(from), common.HexToAddress(to), id)
	if err != nil {
		return fmt.Errorf("failed to pack transfer call: %w", err)
	}

	_, err = r.tx.Transact(ctx, r.address, data, nil)
	return err
}

func (r *tokenRegistry) Approve(ctx context.Context, operator, tokenId string) error {
	id, err := parseTokenId(tokenId)
	if err != nil {
		return err
	}

	data, err := tokenRegistryABI.Pack("approve", common.HexToAddress(operator), id)
	if err != nil {
		return fmt.Errorf("failed to pack approve call: %w", err)
	}

	_, err = r.tx.Transact(ctx, r.address, data, nil)
	return err
}

func (r *tokenRegistry) SetApprovalForAll(ctx context.Context, operator string, approved bool) error {
	data, err := tokenRegistryABI.Pack("setApprovalForAll", common.HexToAddress(operator), approved)
	if err != nil {
		return fmt.Errorf("failed to pack setApprovalForAll call: %w", err)
	}

	_, err = r.tx.Transact(ctx, r.address, data, nil)
	return err
}

func (r *tokenRegistry) IsApprovedForAll(ctx context.Context, owner, operator string) (bool, error) {
	out, err := r.call(ctx, "isApprovedForAll",
		common.HexToAddress(owner), common.HexToAddress(operator))
	if err != nil {
		return false, err
	}

	return *abi.ConvertType(out[0], new(bool)).(*bool), nil
}

func (r *tokenRegistry) GetApproved(ctx context.Context, tokenId string) (string, error) {
	id, err := parseTokenId(tokenId)
	if err != nil {
		return "", err
	}

	out, err := r.call(ctx, "getApproved", id)
	if err != nil {
		return "", err
	}

	return abi.ConvertType(out[0], new(common.Address)).(*common.Address).Hex(), nil
}

func parseTokenId(tokenId string) (*big.Int, error) {
	id, ok := new(big.Int).SetString(tokenId, 10)
	if !ok || id.Sign() < 0 {
		return nil, fmt.Errorf("%w: invalid token id %q", domain.ErrNotFound, tokenId)
	}
	return id, nil
}
