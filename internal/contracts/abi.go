package contracts

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// Event signatures emitted by the two contracts.
var (
	// NFTMinted(uint256 indexed tokenId, address indexed creator, string cid)
	nftMintedEventSignature = crypto.Keccak256Hash([]byte("NFTMinted(uint256,address,string)"))

	// ItemSold(address indexed nftContract, uint256 indexed tokenId, address seller, address buyer, uint256 price, uint256 timestamp)
	itemSoldEventSignature = crypto.Keccak256Hash([]byte("ItemSold(address,uint256,address,address,uint256,uint256)"))
)

const tokenRegistryABIJSON = `[
{"type":"function","name":"mint","stateMutability":"nonpayable","inputs":[{"name":"cid","type":"string"},{"name":"royaltyFee","type":"uint256"}],"outputs":[{"name":"tokenId","type":"uint256"}]},
{"type":"function","name":"getTokenInfoById","stateMutability":"view","inputs":[{"name":"tokenId","type":"uint256"}],"outputs":[{"name":"info","type":"tuple","components":[{"name":"tokenId","type":"uint256"},{"name":"owner","type":"address"},{"name":"creator","type":"address"},{"name":"cid","type":"string"},{"name":"royaltyFee","type":"uint256"},{"name":"mintedAt","type":"uint256"},{"name":"lastSoldPrice","type":"uint256"}]}]},
{"type":"function","name":"getTokenInfoByOwner","stateMutability":"view","inputs":[{"name":"owner","type":"address"}],"outputs":[{"name":"infos","type":"tuple[]","components":[{"name":"tokenId","type":"uint256"},{"name":"owner","type":"address"},{"name":"creator","type":"address"},{"name":"cid","type":"string"},{"name":"royaltyFee","type":"uint256"},{"name":"mintedAt","type":"uint256"},{"name":"lastSoldPrice","type":"uint256"}]}]},
{"type":"function","name":"getTokenInfoByCreator","stateMutability":"view","inputs":[{"name":"creator","type":"address"}],"outputs":[{"name":"infos","type":"tuple[]","components":[{"name":"tokenId","type":"uint256"},{"name":"owner","type":"address"},{"name":"creator","type":"address"},{"name":"cid","type":"string"},{"name":"royaltyFee","type":"uint256"},{"name":"mintedAt","type":"uint256"},{"name":"lastSoldPrice","type":"uint256"}]}]},
{"type":"function","name":"transfer","stateMutability":"nonpayable","inputs":[{"name":"from","type":"address"},{"name":"to","type":"address"},{"name":"tokenId","type":"uint256"}],"outputs":[]},
{"type":"function","name":"approve","stateMutability":"nonpayable","inputs":[{"name":"operator","type":"address"},{"name":"tokenId","type":"uint256"}],"outputs":[]},
{"type":"function","name":"setApprovalForAll","stateMutability":"nonpayable","inputs":[{"name":"operator","type":"address"},{"name":"approved","type":"bool"}],"outputs":[]},
{"type":"function","name":"isApprovedForAll","stateMutability":"view","inputs":[{"name":"owner","type":"address"},{"name":"operator","type":"address"}],"outputs":[{"name":"","type":"bool"}]},
{"type":"function","name":"getApproved","stateMutability":"view","inputs":[{"name":"tokenId","type":"uint256"}],"outputs":[{"name":"","type":"address"}]},
{"type":"event","name":"NFTMinted","inputs":[{"name":"tokenId","type":"uint256","indexed":true},{"name":"creator","type":"address","indexed":true},{"name":"cid","type":"string","indexed":false}],"anonymous":false}
]`

const marketplaceABIJSON = `[
{"type":"function","name":"listItem","stateMutability":"payable","inputs":[{"name":"nftContract","type":"address"},{"name":"tokenId","type":"uint256"},{"name":"price","type":"uint256"}],"outputs":[]},
{"type":"function","name":"cancelListing","stateMutability":"nonpayable","inputs":[{"name":"nftContract","type":"address"},{"name":"tokenId","type":"uint256"}],"outputs":[]},
{"type":"function","name":"updateListingPrice","stateMutability":"nonpayable","inputs":[{"name":"nftContract","type":"address"},{"name":"tokenId","type":"uint256"},{"name":"newPrice","type":"uint256"}],"outputs":[]},
{"type":"function","name":"buyItem","stateMutability":"payable","inputs":[{"name":"nftContract","type":"address"},{"name":"tokenId","type":"uint256"}],"outputs":[]},
{"type":"function","name":"getListingFee","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint256"}]},
{"type":"function","name":"getListingById","stateMutability":"view","inputs":[{"name":"nftContract","type":"address"},{"name":"tokenId","type":"uint256"}],"outputs":[{"name":"listing","type":"tuple","components":[{"name":"tokenId","type":"uint256"},{"name":"seller","type":"address"},{"name":"price","type":"uint256"},{"name":"canceledAt","type":"uint256"},{"name":"soldAt","type":"uint256"}]}]},
{"type":"function","name":"getAllListings","stateMutability":"view","inputs":[],"outputs":[{"name":"listings","type":"tuple[]","components":[{"name":"tokenId","type":"uint256"},{"name":"seller","type":"address"},{"name":"price","type":"uint256"},{"name":"canceledAt","type":"uint256"},{"name":"soldAt","type":"uint256"}]}]},
{"type":"function","name":"getHistoricalTransaction","stateMutability":"view","inputs":[{"name":"nftContract","type":"address"},{"name":"tokenId","type":"uint256"}],"outputs":[{"name":"startBlock","type":"uint256"},{"name":"latestBlock","type":"uint256"},{"name":"startTimestamp","type":"uint256"},{"name":"latestTimestamp","type":"uint256"},{"name":"totalCount","type":"uint256"}]},
{"type":"event","name":"ItemSold","inputs":[{"name":"nftContract","type":"address","indexed":true},{"name":"tokenId","type":"uint256","indexed":true},{"name":"seller","type":"address","indexed":false},{"name":"buyer","type":"address","indexed":false},{"name":"price","type":"uint256","indexed":false},{"name":"timestamp","type":"uint256","indexed":false}],"anonymous":false}
]`

var (
	tokenRegistryABI = mustParseABI(tokenRegistryABIJSON)
	marketplaceABI   = mustParseABI(marketplaceABIJSON)
)

func mustParseABI(raw string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(raw))
	if err != nil {
		panic(err)
	}
	return parsed
}

// ItemSoldEventSignature returns the topic hash of the ItemSold event.
func ItemSoldEventSignature() common.Hash {
	return itemSoldEventSignature
}
