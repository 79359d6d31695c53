package entity

import (
	"fmt"
	"math/big"

	"github.com/gosimple/slug"
)

// Listing is a single marketplace offer. The token it references is held in
// custody by the marketplace from creation until the listing is sold.
type Listing struct {
	ListingId uint64   `json:"listingId"`
	Contract  string   `json:"contract"`
	TokenId   uint64   `json:"tokenId"`
	Seller    string   `json:"seller"`
	Price     *big.Int `json:"price"`
	IsSold    bool     `json:"isSold"`
}

func (l Listing) Slug() string {
	return CreateListingSlug(l.ListingId, l.Contract)
}

func CreateListingSlug(listingId uint64, contract string) string {
	return slug.Make(fmt.Sprintf("listing-%d-%s", listingId, contract))
}
