package contracts

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/openmarket/ledger/internal/adapter"
	"github.com/openmarket/ledger/internal/domain"
)

//go:generate mockgen -source=market.go -destination=../mocks/market.go -package=mocks -mock_names Marketplace=MockMarketplace

// Marketplace is the Go binding of the marketplace contract. The paired
// token registry address is bound at construction and passed on every
// call that takes an nftContract argument.
type Marketplace interface {
	ListItem(ctx context.Context, tokenId string, priceWei, listingFeeWei *big.Int) error
	CancelListing(ctx context.Context, tokenId string) error
	UpdateListingPrice(ctx context.Context, tokenId string, newPriceWei *big.Int) error
	BuyItem(ctx context.Context, tokenId string, priceWei *big.Int) error

	GetListingFee(ctx context.Context) (*big.Int, error)
	GetListingById(ctx context.Context, tokenId string) (*ListingInfo, error)
	GetAllListings(ctx context.Context) ([]ListingInfo, error)
	GetHistoricalTransaction(ctx context.Context, tokenId string) (*HistoryStats, error)

	// FilterItemSold scans the inclusive block range for ItemSold events
	// of the given token and returns them in log order.
	FilterItemSold(ctx context.Context, tokenId string, fromBlock, toBlock uint64) ([]domain.SaleTransaction, error)

	Address() common.Address
}

type marketplace struct {
	address      common.Address
	tokenAddress common.Address
	client       adapter.EthClient
	tx           *Transactor
}

func NewMarketplace(address, tokenAddress common.Address, client adapter.EthClient, tx *Transactor) Marketplace {
	return &marketplace{
		address:      address,
		tokenAddress: tokenAddress,
		client:       client,
		tx:           tx,
	}
}

func (m *marketplace) Address() common.Address {
	return m.address
}

func (m *marketplace) call(ctx context.Context, method string, args ...interface{}) ([]interface{}, error) {
	data, err := marketplaceABI.Pack(method, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to pack %s call: %w", method, err)
	}

	res, err := m.client.CallContract(ctx, ethereum.CallMsg{To: &m.address, Data: data}, nil)
	if err != nil {
		return nil, NormalizeRPCError(err)
	}

	out, err := marketplaceABI.Unpack(method, res)
	if err != nil {
		return nil, fmt.Errorf("failed to unpack %s result: %w", method, err)
	}

	return out, nil
}

func (m *marketplace) ListItem(ctx context.Context, tokenId string, priceWei, listingFeeWei *big.Int) error {
	id, err := parseTokenId(tokenId)
	if err != nil {
		return err
	}

	if priceWei == nil || priceWei.Sign() <= 0 {
		return fmt.Errorf("%w: listing price must be positive", domain.ErrInvalidPrice)
	}

	data, err := marketplaceABI.Pack("listItem", m.tokenAddress, id, priceWei)
	if err != nil {
		return fmt.Errorf("failed to pack listItem call: %w", err)
	}

	_, err = m.tx.Transact(ctx, m.address, data, listingFeeWei)
	return err
}

func (m *marketplace) CancelListing(ctx context.Context, tokenId string) error {
	id, err := parseTokenId(tokenId)
	if err != nil {
		return err
	}

	data, err := marketplaceABI.Pack("cancelListing", m.tokenAddress, id)
	if err != nil {
		return fmt.Errorf("failed to pack cancelListing call: %w", err)
	}

	_, err = m.tx.Transact(ctx, m.address, data, nil)
	return err
}

func (m *marketplace) UpdateListingPrice(ctx context.Context, tokenId string, newPriceWei *big.Int) error {
	id, err := parseTokenId(tokenId)
	if err != nil {
		return err
	}

	if newPriceWei == nil || newPriceWei.Sign() <= 0 {
		return fmt.Errorf("%w: listing price must be positive", domain.ErrInvalidPrice)
	}

	data, err := marketplaceABI.Pack("updateListingPrice", m.tokenAddress, id, newPriceWei)
	if err != nil {
		return fmt.Errorf("failed to pack updateListingPrice call: %w", err)
	}

	_, err = m.tx.Transact(ctx, m.address, data, nil)
	return err
}

func (m *marketplace) BuyItem(ctx context.Context, tokenId string, priceWei *big.Int) error {
	id, err := parseTokenId(tokenId)
	if err != nil {
		return err
	}

	data, err := marketplaceABI.Pack("buyItem", m.tokenAddress, id)
	if err != nil {
		return fmt.Errorf("failed to pack buyItem call: %w", err)
	}

	_, err = m.tx.Transact(ctx, m.address, data, priceWei)
	return err
}

func (m *marketplace) GetListingFee(ctx context.Context) (*big.Int, error) {
	out, err := m.call(ctx, "getListingFee")
	if err != nil {
		return nil, err
	}

	return abi.ConvertType(out[0], new(big.Int)).(*big.Int), nil
}

func (m *marketplace) GetListingById(ctx context.Context, tokenId string) (*ListingInfo, error) {
	id, err := parseTokenId(tokenId)
	if err != nil {
		return nil, err
	}

	out, err := m.call(ctx, "getListingById", m.tokenAddress, id)
	if err != nil {
		if errors.Is(err, domain.ErrContractRevert) {
			return nil, fmt.Errorf("%w: listing for token %s", domain.ErrNotFound, tokenId)
		}
		return nil, err
	}

	return abi.ConvertType(out[0], new(ListingInfo)).(*ListingInfo), nil
}

func (m *marketplace) GetAllListings(ctx context.Context) ([]ListingInfo, error) {
	out, err := m.call(ctx, "getAllListings")
	if err != nil {
		return nil, err
	}

	return *abi.ConvertType(out[0], new([]ListingInfo)).(*[]ListingInfo), nil
}

func (m *marketplace) GetHistoricalTransaction(ctx context.Context, tokenId string) (*HistoryStats, error) {
	id, err := parseTokenId(tokenId)
	if err != nil {
		return nil, err
	}

	out, err := m.call(ctx, "getHistoricalTransaction", m.tokenAddress, id)
	if err != nil {
		return nil, err
	}

	startBlock := abi.ConvertType(out[0], new(big.Int)).(*big.Int)
	latestBlock := abi.ConvertType(out[1], new(big.Int)).(*big.Int)
	startTs := abi.ConvertType(out[2], new(big.Int)).(*big.Int)
	latestTs := abi.ConvertType(out[3], new(big.Int)).(*big.Int)
	totalCount := abi.ConvertType(out[4], new(big.Int)).(*big.Int)

	return &HistoryStats{
		StartBlock:      startBlock.Uint64(),
		LatestBlock:     latestBlock.Uint64(),
		StartTimestamp:  unixOrZero(startTs),
		LatestTimestamp: unixOrZero(latestTs),
		TotalCount:      totalCount.Int64(),
	}, nil
}

func (m *marketplace) FilterItemSold(ctx context.Context, tokenId string, fromBlock, toBlock uint64) ([]domain.SaleTransaction, error) {
	id, err := parseTokenId(tokenId)
	if err != nil {
		return nil, err
	}

	query := ethereum.FilterQuery{
		FromBlock: new(big.Int).SetUint64(fromBlock),
		ToBlock:   new(big.Int).SetUint64(toBlock),
		Addresses: []common.Address{m.address},
		Topics: [][]common.Hash{
			{itemSoldEventSignature},
			{common.BytesToHash(m.tokenAddress.Bytes())},
			{common.BigToHash(id)},
		},
	}

	logs, err := m.client.FilterLogs(ctx, query)
	if err != nil {
		return nil, NormalizeRPCError(err)
	}

	sales := make([]domain.SaleTransaction, 0, len(logs))
	for i := range logs {
		record, err := parseItemSoldLog(&logs[i])
		if err != nil {
			return nil, err
		}
		sales = append(sales, saleEventFromLog(record))
	}

	return sales, nil
}

// ParseItemSoldLog decodes a raw ItemSold log into a domain sale record.
// It is shared with the live event emitter.
func ParseItemSoldLog(log *types.Log) (domain.SaleTransaction, uint64, error) {
	record, err := parseItemSoldLog(log)
	if err != nil {
		return domain.SaleTransaction{}, 0, err
	}
	return saleEventFromLog(record), record.blockNumber, nil
}

func parseItemSoldLog(log *types.Log) (*logRecord, error) {
	if len(log.Topics) < 3 || log.Topics[0] != itemSoldEventSignature {
		return nil, fmt.Errorf("log %s is not an ItemSold event", log.TxHash.Hex())
	}
	if len(log.Data) < 128 {
		return nil, fmt.Errorf("ItemSold log %s has truncated data", log.TxHash.Hex())
	}

	return &logRecord{
		txHash:      log.TxHash,
		blockNumber: log.BlockNumber,
		tokenId:     new(big.Int).SetBytes(log.Topics[2].Bytes()),
		seller:      common.BytesToAddress(log.Data[0:32]),
		buyer:       common.BytesToAddress(log.Data[32:64]),
		price:       new(big.Int).SetBytes(log.Data[64:96]),
		timestamp:   new(big.Int).SetBytes(log.Data[96:128]),
	}, nil
}
