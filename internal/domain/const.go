package domain

// EthereumZeroAddress is the canonical zero address used by the contracts
// to mark "no seller" / "no approval".
const EthereumZeroAddress = "0x0000000000000000000000000000000000000000"

// Royalty fee bounds enforced before any mint call reaches the network.
const (
	MinRoyaltyFee = 0
	MaxRoyaltyFee = 100
)
