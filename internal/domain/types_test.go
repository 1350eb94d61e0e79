package domain

import (
	"math/big"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListing_Active(t *testing.T) {
	now := time.Now()

	testCases := []struct {
		name    string
		listing *Listing
		active  bool
	}{
		{
			name: "open listing",
			listing: &Listing{
				TokenId: "1",
				Seller:  "0x457ee5f723C7606c12a7264b52e285906F91eEA6",
				Price:   decimal.NewFromFloat(1.5),
			},
			active: true,
		},
		{
			name:    "zero seller",
			listing: NotListed("1"),
			active:  false,
		},
		{
			name: "canceled",
			listing: &Listing{
				TokenId:    "1",
				Seller:     "0x457ee5f723C7606c12a7264b52e285906F91eEA6",
				Price:      decimal.NewFromFloat(1.5),
				CanceledAt: &now,
			},
			active: false,
		},
		{
			name: "sold",
			listing: &Listing{
				TokenId: "1",
				Seller:  "0x457ee5f723C7606c12a7264b52e285906F91eEA6",
				Price:   decimal.NewFromFloat(1.5),
				SoldAt:  &now,
			},
			active: false,
		},
		{
			name:    "nil listing",
			listing: nil,
			active:  false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.active, tc.listing.Active())
		})
	}
}

func TestNewPage_Envelope(t *testing.T) {
	testCases := []struct {
		name              string
		items             int
		total             int
		page              int
		pageSize          int
		expectedPageCount int
	}{
		{name: "empty", items: 0, total: 0, page: 1, pageSize: 10, expectedPageCount: 0},
		{name: "exact fit", items: 10, total: 10, page: 1, pageSize: 10, expectedPageCount: 1},
		{name: "short last page", items: 2, total: 12, page: 3, pageSize: 5, expectedPageCount: 3},
		{name: "one extra", items: 1, total: 11, page: 2, pageSize: 10, expectedPageCount: 2},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			items := make([]int, tc.items)
			p := NewPage(items, tc.total, tc.page, tc.pageSize)

			assert.Equal(t, tc.expectedPageCount, p.PageCount)
			assert.Equal(t, tc.total, p.Total)
			assert.Equal(t, tc.page, p.Page)
			assert.Equal(t, tc.pageSize, p.PageSize)
			assert.Len(t, p.Items, tc.items)
		})
	}
}

func TestNewPage_NilItems(t *testing.T) {
	p := NewPage[string](nil, 0, 1, 10)
	require.NotNil(t, p.Items)
	assert.Empty(t, p.Items)
}

func TestWeiEthConversion(t *testing.T) {
	oneEth := new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil)

	assert.True(t, WeiToEth(oneEth).Equal(decimal.NewFromInt(1)))
	assert.True(t, WeiToEth(nil).IsZero())
	assert.Equal(t, oneEth, EthToWei(decimal.NewFromInt(1)))

	// Round trip within one-wei tolerance.
	price := decimal.NewFromFloat(0.001234)
	assert.True(t, WeiToEth(EthToWei(price)).Equal(price))
}
