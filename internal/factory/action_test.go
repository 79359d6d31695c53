package factory

import (
	"math/big"
	"testing"

	"github.com/mintbay/nft-marketplace/internal/entity"
	"github.com/mintbay/nft-marketplace/internal/event"
	"github.com/stretchr/testify/assert"
)

func TestCreateMintAction(t *testing.T) {
	action := CreateMintAction(event.TokenMinted{
		Contract: "0xnft",
		TokenId:  1,
		Owner:    "0xowner",
		Uri:      "uri",
	})

	assert.Equal(t, entity.MarketAction{
		Contract: "0xnft",
		TokenId:  1,
		Action:   entity.MintAction,
		To:       "0xowner",
	}, action)
}

func TestCreateListingAction(t *testing.T) {
	action := CreateListingAction(event.ListingOffered{
		ListingId: 3,
		Contract:  "0xnft",
		TokenId:   1,
		Price:     big.NewInt(2000000000000000000),
		Seller:    "0xseller",
	})

	assert.Equal(t, entity.MarketAction{
		Contract:  "0xnft",
		TokenId:   1,
		ListingId: 3,
		Action:    entity.ListingAction,
		From:      "0xseller",
		Cost:      "2000000000000000000",
	}, action)
}

func TestCreateTransferAction(t *testing.T) {
	action := CreateTransferAction(event.ListingBought{
		ListingId: 3,
		Contract:  "0xnft",
		TokenId:   1,
		Price:     big.NewInt(100),
		Seller:    "0xseller",
		Buyer:     "0xbuyer",
	})

	assert.Equal(t, entity.MarketAction{
		Contract:  "0xnft",
		TokenId:   1,
		ListingId: 3,
		Action:    entity.TransferAction,
		From:      "0xseller",
		To:        "0xbuyer",
	}, action)
}

func TestCreateSaleAction(t *testing.T) {
	action := CreateSaleAction(event.ListingBought{
		ListingId: 3,
		Contract:  "0xnft",
		TokenId:   1,
		Price:     big.NewInt(200),
		Seller:    "0xseller",
		Buyer:     "0xbuyer",
	}, "2")

	assert.Equal(t, entity.MarketAction{
		Contract:  "0xnft",
		TokenId:   1,
		ListingId: 3,
		Action:    entity.SaleAction,
		From:      "0xseller",
		To:        "0xbuyer",
		Cost:      "200",
		Fee:       "2",
	}, action)
}

func TestCreatePendingMetadata(t *testing.T) {
	metadata := CreatePendingMetadata(event.TokenMinted{
		Contract: "0xnft",
		TokenId:  1,
		Owner:    "0xowner",
		Uri:      "ipfs://hash",
	})

	assert.Equal(t, entity.TokenMetadata{
		Contract: "0xnft",
		TokenId:  1,
		Uri:      "ipfs://hash",
	}, metadata)
}
