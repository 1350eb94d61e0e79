package domain

import (
	"math/big"
	"time"

	"github.com/shopspring/decimal"
)

// weiPerEth is the wei/ETH scale factor (10^18).
var weiPerEth = decimal.New(1, 18)

// Token is the authoritative record of a minted asset as reported by the
// token registry contract. Owner changes only through a transfer or a
// completed sale; every other field is immutable after mint.
type Token struct {
	Id            string          `json:"id"`
	CID           string          `json:"cid"`
	Owner         string          `json:"owner"`
	Creator       string          `json:"creator"`
	MintedAt      time.Time       `json:"minted_at"`
	RoyaltyFee    int64           `json:"royalty_fee"`
	LastSoldPrice decimal.Decimal `json:"last_sold_price"`
}

// MarketToken is a Token joined with its current marketplace listing state.
// Price is zero unless Listed is true.
type MarketToken struct {
	Token
	Listed bool            `json:"listed"`
	Price  decimal.Decimal `json:"price"`
}

// Listing is a marketplace sale offer. CanceledAt and SoldAt are mutually
// exclusive terminal timestamps; nil means unset.
type Listing struct {
	TokenId    string          `json:"token_id"`
	Seller     string          `json:"seller"`
	Price      decimal.Decimal `json:"price"`
	CanceledAt *time.Time      `json:"canceled_at,omitempty"`
	SoldAt     *time.Time      `json:"sold_at,omitempty"`
}

// Active reports whether the listing is currently open for purchase:
// a real seller and neither terminal timestamp set.
func (l *Listing) Active() bool {
	return l != nil &&
		l.Seller != "" &&
		l.Seller != EthereumZeroAddress &&
		l.CanceledAt == nil &&
		l.SoldAt == nil
}

// NotListed returns the default listing record for a token with no active
// listing. Queries degrade to this instead of failing.
func NotListed(tokenId string) *Listing {
	return &Listing{
		TokenId: tokenId,
		Seller:  EthereumZeroAddress,
		Price:   decimal.Zero,
	}
}

// ApprovalState captures the marketplace permissions granted by one owner:
// the operator-wide flag plus per-token grants.
type ApprovalState struct {
	Owner       string          `json:"owner"`
	Marketplace bool            `json:"marketplace"`
	Tokens      map[string]bool `json:"tokens,omitempty"`
}

// SaleTransaction is one completed sale observed on the marketplace event
// log. Immutable once observed.
type SaleTransaction struct {
	TxHash  string          `json:"transaction_hash"`
	TokenId string          `json:"token_id"`
	Seller  string          `json:"seller"`
	Buyer   string          `json:"buyer"`
	Price   decimal.Decimal `json:"price"`
	SoldAt  time.Time       `json:"sold_at"`
}

// SaleEvent is the normalized message published for every observed sale.
type SaleEvent struct {
	Id          string          `json:"id"`
	TokenId     string          `json:"token_id"`
	Seller      string          `json:"seller"`
	Buyer       string          `json:"buyer"`
	Price       decimal.Decimal `json:"price"`
	TxHash      string          `json:"tx_hash"`
	BlockNumber uint64          `json:"block_number"`
	SoldAt      time.Time       `json:"sold_at"`
}

// TokenMetadata is the off-chain descriptive record resolved from a CID.
type TokenMetadata struct {
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Image       string              `json:"image"`
	Category    string              `json:"category"`
	Attributes  []MetadataAttribute `json:"attributes,omitempty"`
}

// MetadataAttribute is a single trait entry in token metadata.
type MetadataAttribute struct {
	TraitType string `json:"trait_type"`
	Value     any    `json:"value"`
}

// Page is the pagination envelope returned by every paginated query.
type Page[T any] struct {
	Items     []T `json:"items"`
	Total     int `json:"total"`
	Page      int `json:"page"`
	PageSize  int `json:"pageSize"`
	PageCount int `json:"pageCount"`
}

// NewPage wraps items into a pagination envelope. PageCount is always
// derived from the authoritative total, never from len(items).
func NewPage[T any](items []T, total, page, pageSize int) *Page[T] {
	if items == nil {
		items = []T{}
	}
	pageCount := 0
	if pageSize > 0 {
		pageCount = (total + pageSize - 1) / pageSize
	}
	return &Page[T]{
		Items:     items,
		Total:     total,
		Page:      page,
		PageSize:  pageSize,
		PageCount: pageCount,
	}
}

// WeiToEth converts an on-chain wei amount into a decimal ETH amount.
// A nil amount converts to zero.
func WeiToEth(wei *big.Int) decimal.Decimal {
	if wei == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(wei, 0).Div(weiPerEth)
}

// EthToWei converts a decimal ETH amount into wei, truncating anything
// below one wei.
func EthToWei(eth decimal.Decimal) *big.Int {
	return eth.Mul(weiPerEth).BigInt()
}
