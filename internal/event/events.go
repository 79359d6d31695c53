package event

import "math/big"

type Type string

const (
	TokenMintedEvent    Type = "TokenMintedEvent"
	ListingOfferedEvent Type = "ListingOfferedEvent"
	ListingBoughtEvent  Type = "ListingBoughtEvent"
)

type TokenMinted struct {
	Contract string
	TokenId  uint64
	Owner    string
	Uri      string
}

// ListingOffered carries the fields of an "Offered" notification in payload
// order: listing id, token contract, token id, price, seller.
type ListingOffered struct {
	ListingId uint64
	Contract  string
	TokenId   uint64
	Price     *big.Int
	Seller    string
}

// ListingBought carries the fields of a "Bought" notification in payload
// order: listing id, token contract, token id, price, seller, buyer.
type ListingBought struct {
	ListingId uint64
	Contract  string
	TokenId   uint64
	Price     *big.Int
	Seller    string
	Buyer     string
}
