package factory

import (
	"github.com/mintbay/nft-marketplace/internal/entity"
	"github.com/mintbay/nft-marketplace/internal/event"
)

func CreateMintAction(minted event.TokenMinted) entity.MarketAction {
	return entity.MarketAction{
		Contract: minted.Contract,
		TokenId:  minted.TokenId,
		Action:   entity.MintAction,
		From:     "",
		To:       minted.Owner,
	}
}

func CreateListingAction(offered event.ListingOffered) entity.MarketAction {
	return entity.MarketAction{
		Contract:  offered.Contract,
		TokenId:   offered.TokenId,
		ListingId: offered.ListingId,
		Action:    entity.ListingAction,
		From:      offered.Seller,
		Cost:      offered.Price.String(),
	}
}

func CreateTransferAction(bought event.ListingBought) entity.MarketAction {
	return entity.MarketAction{
		Contract:  bought.Contract,
		TokenId:   bought.TokenId,
		ListingId: bought.ListingId,
		Action:    entity.TransferAction,
		From:      bought.Seller,
		To:        bought.Buyer,
	}
}

func CreateSaleAction(bought event.ListingBought, fee string) entity.MarketAction {
	return entity.MarketAction{
		Contract:  bought.Contract,
		TokenId:   bought.TokenId,
		ListingId: bought.ListingId,
		Action:    entity.SaleAction,
		From:      bought.Seller,
		To:        bought.Buyer,
		Cost:      bought.Price.String(),
		Fee:       fee,
	}
}

func CreatePendingMetadata(minted event.TokenMinted) entity.TokenMetadata {
	return entity.TokenMetadata{
		Contract: minted.Contract,
		TokenId:  minted.TokenId,
		Uri:      minted.Uri,
	}
}
