package dto

import "github.com/shopspring/decimal"

// MintRequest creates a new token from an uploaded metadata document.
type MintRequest struct {
	CID        string `json:"cid" binding:"required"`
	RoyaltyFee int64  `json:"royalty_fee"`
}

// ListRequest puts a token up for sale.
type ListRequest struct {
	Price decimal.Decimal `json:"price" binding:"required"`
}

// UpdatePriceRequest changes the asking price of an active listing.
type UpdatePriceRequest struct {
	Price decimal.Decimal `json:"price" binding:"required"`
}

// TransferRequest moves a token to another account.
type TransferRequest struct {
	To string `json:"to" binding:"required"`
}

// ApproveAllRequest grants or revokes marketplace rights over every
// token of the session account.
type ApproveAllRequest struct {
	Approved *bool `json:"approved" binding:"required"`
}
