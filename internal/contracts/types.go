package contracts

import (
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/openmarket/ledger/internal/domain"
)

// TokenInfo mirrors the registry contract's token record tuple.
type TokenInfo struct {
	TokenId       *big.Int       `abi:"tokenId"`
	Owner         common.Address `abi:"owner"`
	Creator       common.Address `abi:"creator"`
	CID           string         `abi:"cid"`
	RoyaltyFee    *big.Int       `abi:"royaltyFee"`
	MintedAt      *big.Int       `abi:"mintedAt"`
	LastSoldPrice *big.Int       `abi:"lastSoldPrice"`
}

// ListingInfo mirrors the marketplace contract's listing tuple.
type ListingInfo struct {
	TokenId    *big.Int       `abi:"tokenId"`
	Seller     common.Address `abi:"seller"`
	Price      *big.Int       `abi:"price"`
	CanceledAt *big.Int       `abi:"canceledAt"`
	SoldAt     *big.Int       `abi:"soldAt"`
}

// HistoryStats carries the marketplace's aggregate sale-history counters
// for a token. TotalCount is authoritative; the event log is only scanned
// for page contents.
type HistoryStats struct {
	StartBlock      uint64
	LatestBlock     uint64
	StartTimestamp  time.Time
	LatestTimestamp time.Time
	TotalCount      int64
}

// Token converts the on-chain record into the domain representation.
func (i TokenInfo) Token() domain.Token {
	return domain.Token{
		Id:            i.TokenId.String(),
		CID:           i.CID,
		Owner:         i.Owner.Hex(),
		Creator:       i.Creator.Hex(),
		MintedAt:      time.Unix(i.MintedAt.Int64(), 0).UTC(),
		RoyaltyFee:    i.RoyaltyFee.Int64(),
		LastSoldPrice: domain.WeiToEth(i.LastSoldPrice),
	}
}

// Listing converts the on-chain tuple into the domain representation. A
// zero seller address maps to the not-listed default.
func (l ListingInfo) Listing() domain.Listing {
	listing := domain.Listing{
		TokenId: l.TokenId.String(),
		Seller:  l.Seller.Hex(),
		Price:   domain.WeiToEth(l.Price),
	}

	if l.Seller == (common.Address{}) {
		return *domain.NotListed(l.TokenId.String())
	}

	if l.CanceledAt != nil && l.CanceledAt.Sign() > 0 {
		t := time.Unix(l.CanceledAt.Int64(), 0).UTC()
		listing.CanceledAt = &t
	}

	if l.SoldAt != nil && l.SoldAt.Sign() > 0 {
		t := time.Unix(l.SoldAt.Int64(), 0).UTC()
		listing.SoldAt = &t
	}

	return listing
}

// saleEventFromLog decodes an ItemSold log into a domain sale record.
func saleEventFromLog(log *logRecord) domain.SaleTransaction {
	return domain.SaleTransaction{
		TxHash:  log.txHash.Hex(),
		TokenId: log.tokenId.String(),
		Seller:  log.seller.Hex(),
		Buyer:   log.buyer.Hex(),
		Price:   domain.WeiToEth(log.price),
		SoldAt:  time.Unix(log.timestamp.Int64(), 0).UTC(),
	}
}

func unixOrZero(ts *big.Int) time.Time {
	if ts == nil || ts.Sign() == 0 {
		return time.Time{}
	}
	return time.Unix(ts.Int64(), 0).UTC()
}

type logRecord struct {
	txHash      common.Hash
	blockNumber uint64
	tokenId     *big.Int
	seller      common.Address
	buyer       common.Address
	price       *big.Int
	timestamp   *big.Int
}
