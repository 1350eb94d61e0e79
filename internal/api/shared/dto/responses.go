package dto

import "github.com/shopspring/decimal"

// HealthResponse is the health check payload.
type HealthResponse struct {
	Status  string `json:"status"`
	Account string `json:"account,omitempty"`
	Signing bool   `json:"signing"`
}

// FeeResponse carries the marketplace's flat listing fee.
type FeeResponse struct {
	ListingFee decimal.Decimal `json:"listing_fee"`
}

// TxResponse acknowledges a confirmed state change that returns no
// record of its own.
type TxResponse struct {
	Ok bool `json:"ok"`
}
