package contracts

import (
	"context"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openmarket/ledger/internal/domain"
)

var (
	testMarketAddress = common.HexToAddress("0x4444444444444444444444444444444444444444")
	testSeller        = common.HexToAddress("0x5555555555555555555555555555555555555555")
	testBuyer         = common.HexToAddress("0x6666666666666666666666666666666666666666")
)

func packListingInfo(t *testing.T, info ListingInfo) []byte {
	t.Helper()
	data, err := marketplaceABI.Methods["getListingById"].Outputs.Pack(info)
	require.NoError(t, err)
	return data
}

// itemSoldLog builds a raw ItemSold log the way the node would encode it.
func itemSoldLog(tokenId int64, priceWei *big.Int, soldAt int64, blockNumber uint64) types.Log {
	data := make([]byte, 0, 128)
	data = append(data, common.BytesToHash(testSeller.Bytes()).Bytes()...)
	data = append(data, common.BytesToHash(testBuyer.Bytes()).Bytes()...)
	data = append(data, common.BigToHash(priceWei).Bytes()...)
	data = append(data, common.BigToHash(big.NewInt(soldAt)).Bytes()...)

	return types.Log{
		Address: testMarketAddress,
		Topics: []common.Hash{
			itemSoldEventSignature,
			common.BytesToHash(testTokenAddress.Bytes()),
			common.BigToHash(big.NewInt(tokenId)),
		},
		Data:        data,
		BlockNumber: blockNumber,
		TxHash:      common.BigToHash(big.NewInt(int64(blockNumber))),
	}
}

func newTestMarketplace(client *stubEthClient) Marketplace {
	return NewMarketplace(testMarketAddress, testTokenAddress, client,
		NewTransactor(client, nil, time.Minute, time.Second))
}

func TestMarketplace_GetListingById(t *testing.T) {
	client := &stubEthClient{
		callContract: func(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error) {
			assert.Equal(t, testMarketAddress, *msg.To)
			return packListingInfo(t, ListingInfo{
				TokenId:    big.NewInt(3),
				Seller:     testSeller,
				Price:      domain.EthToWei(decimal.RequireFromString("1.5")),
				CanceledAt: big.NewInt(0),
				SoldAt:     big.NewInt(0),
			}), nil
		},
	}

	info, err := newTestMarketplace(client).GetListingById(context.Background(), "3")
	require.NoError(t, err)

	listing := info.Listing()
	assert.True(t, listing.Active())
	assert.Equal(t, "3", listing.TokenId)
	assert.Equal(t, testSeller.Hex(), listing.Seller)
	assert.True(t, listing.Price.Equal(decimal.RequireFromString("1.5")))
	assert.Nil(t, listing.CanceledAt)
	assert.Nil(t, listing.SoldAt)
}

func TestMarketplace_GetListingById_TerminalStates(t *testing.T) {
	testCases := []struct {
		name      string
		info      ListingInfo
		active    bool
		canceled  bool
		soldAtSet bool
	}{
		{
			name: "zero seller degrades to not listed",
			info: ListingInfo{
				TokenId: big.NewInt(4),
				Seller:  common.Address{},
				Price:   big.NewInt(0), CanceledAt: big.NewInt(0), SoldAt: big.NewInt(0),
			},
		},
		{
			name: "canceled listing",
			info: ListingInfo{
				TokenId: big.NewInt(4),
				Seller:  testSeller,
				Price:   big.NewInt(1), CanceledAt: big.NewInt(1_700_000_100), SoldAt: big.NewInt(0),
			},
			canceled: true,
		},
		{
			name: "sold listing",
			info: ListingInfo{
				TokenId: big.NewInt(4),
				Seller:  testSeller,
				Price:   big.NewInt(1), CanceledAt: big.NewInt(0), SoldAt: big.NewInt(1_700_000_200),
			},
			soldAtSet: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			listing := tc.info.Listing()

			assert.Equal(t, tc.active, listing.Active())
			assert.Equal(t, tc.canceled, listing.CanceledAt != nil)
			assert.Equal(t, tc.soldAtSet, listing.SoldAt != nil)
		})
	}
}

func TestMarketplace_GetHistoricalTransaction(t *testing.T) {
	client := &stubEthClient{
		callContract: func(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error) {
			data, err := marketplaceABI.Methods["getHistoricalTransaction"].Outputs.Pack(
				big.NewInt(100),           // startBlock
				big.NewInt(900),           // latestBlock
				big.NewInt(1_700_000_000), // startTimestamp
				big.NewInt(1_700_009_000), // latestTimestamp
				big.NewInt(12),            // totalCount
			)
			require.NoError(t, err)
			return data, nil
		},
	}

	stats, err := newTestMarketplace(client).GetHistoricalTransaction(context.Background(), "3")
	require.NoError(t, err)

	assert.Equal(t, uint64(100), stats.StartBlock)
	assert.Equal(t, uint64(900), stats.LatestBlock)
	assert.Equal(t, int64(12), stats.TotalCount)
	assert.Equal(t, time.Unix(1_700_000_000, 0).UTC(), stats.StartTimestamp)
	assert.Equal(t, time.Unix(1_700_009_000, 0).UTC(), stats.LatestTimestamp)
}

func TestMarketplace_FilterItemSold(t *testing.T) {
	price := domain.EthToWei(decimal.RequireFromString("2"))

	client := &stubEthClient{
		filterLogs: func(ctx context.Context, query ethereum.FilterQuery) ([]types.Log, error) {
			assert.Equal(t, uint64(100), query.FromBlock.Uint64())
			assert.Equal(t, uint64(200), query.ToBlock.Uint64())
			assert.Equal(t, []common.Address{testMarketAddress}, query.Addresses)
			require.Len(t, query.Topics, 3)
			assert.Equal(t, itemSoldEventSignature, query.Topics[0][0])
			assert.Equal(t, common.BytesToHash(testTokenAddress.Bytes()), query.Topics[1][0])
			assert.Equal(t, common.BigToHash(big.NewInt(3)), query.Topics[2][0])

			return []types.Log{
				itemSoldLog(3, price, 1_700_000_000, 150),
				itemSoldLog(3, price, 1_700_000_500, 180),
			}, nil
		},
	}

	sales, err := newTestMarketplace(client).FilterItemSold(context.Background(), "3", 100, 200)
	require.NoError(t, err)
	require.Len(t, sales, 2)

	assert.Equal(t, "3", sales[0].TokenId)
	assert.Equal(t, testSeller.Hex(), sales[0].Seller)
	assert.Equal(t, testBuyer.Hex(), sales[0].Buyer)
	assert.True(t, sales[0].Price.Equal(decimal.RequireFromString("2")))
	assert.Equal(t, time.Unix(1_700_000_000, 0).UTC(), sales[0].SoldAt)
	assert.Equal(t, time.Unix(1_700_000_500, 0).UTC(), sales[1].SoldAt)
}

func TestParseItemSoldLog(t *testing.T) {
	price := domain.EthToWei(decimal.RequireFromString("0.25"))
	log := itemSoldLog(8, price, 1_700_000_000, 420)

	sale, blockNumber, err := ParseItemSoldLog(&log)
	require.NoError(t, err)

	assert.Equal(t, uint64(420), blockNumber)
	assert.Equal(t, "8", sale.TokenId)
	assert.True(t, sale.Price.Equal(decimal.RequireFromString("0.25")))
}

func TestParseItemSoldLog_Malformed(t *testing.T) {
	// Wrong event signature.
	bad := itemSoldLog(8, big.NewInt(1), 0, 1)
	bad.Topics[0] = common.BigToHash(big.NewInt(99))
	_, _, err := ParseItemSoldLog(&bad)
	assert.Error(t, err)

	// Truncated data.
	bad = itemSoldLog(8, big.NewInt(1), 0, 1)
	bad.Data = bad.Data[:64]
	_, _, err = ParseItemSoldLog(&bad)
	assert.Error(t, err)
}

func TestMarketplace_ListItem_InvalidPrice(t *testing.T) {
	market := newTestMarketplace(&stubEthClient{})

	err := market.ListItem(context.Background(), "3", big.NewInt(0), big.NewInt(0))
	assert.ErrorIs(t, err, domain.ErrInvalidPrice)

	err = market.UpdateListingPrice(context.Background(), "3", nil)
	assert.ErrorIs(t, err, domain.ErrInvalidPrice)
}
