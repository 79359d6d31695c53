package indexer

import (
	"math/big"

	"github.com/mintbay/nft-marketplace/internal/elastic_search"
	"github.com/mintbay/nft-marketplace/internal/event"
	"github.com/mintbay/nft-marketplace/internal/factory"
	"go.uber.org/zap"
)

// HistoryIndexer translates marketplace events into indexed action records,
// the queryable trade history of every token.
type HistoryIndexer interface {
	IndexMint(el interface{})
	IndexListing(el interface{})
	IndexSale(el interface{})
}

type historyIndexer struct {
	elastic    elastic_search.Index
	feePercent uint64
}

func NewHistoryIndexer(elastic elastic_search.Index, feePercent uint64) HistoryIndexer {
	return historyIndexer{elastic, feePercent}
}

func (i historyIndexer) IndexMint(el interface{}) {
	minted := el.(event.TokenMinted)

	zap.L().With(
		zap.String("contract", minted.Contract),
		zap.Uint64("tokenId", minted.TokenId),
		zap.String("owner", minted.Owner),
	).Info("Token mint")

	i.elastic.AddIndexRequest(elastic_search.ActionIndex.Get(), factory.CreateMintAction(minted), elastic_search.ActionCreate)
}

func (i historyIndexer) IndexListing(el interface{}) {
	offered := el.(event.ListingOffered)

	zap.L().With(
		zap.Uint64("listingId", offered.ListingId),
		zap.String("contract", offered.Contract),
		zap.Uint64("tokenId", offered.TokenId),
		zap.String("cost", offered.Price.String()),
	).Info("Marketplace listing")

	i.elastic.AddIndexRequest(elastic_search.ActionIndex.Get(), factory.CreateListingAction(offered), elastic_search.ActionCreate)
}

func (i historyIndexer) IndexSale(el interface{}) {
	bought := el.(event.ListingBought)

	fee := new(big.Int).Mul(bought.Price, new(big.Int).SetUint64(i.feePercent))
	fee.Div(fee, big.NewInt(100))

	zap.L().With(
		zap.Uint64("listingId", bought.ListingId),
		zap.String("contract", bought.Contract),
		zap.Uint64("tokenId", bought.TokenId),
		zap.String("from", bought.Seller),
		zap.String("to", bought.Buyer),
		zap.String("cost", bought.Price.String()),
		zap.String("fee", fee.String()),
	).Info("Marketplace trade")

	i.elastic.AddIndexRequest(elastic_search.ActionIndex.Get(), factory.CreateTransferAction(bought), elastic_search.ActionCreate)
	i.elastic.AddIndexRequest(elastic_search.ActionIndex.Get(), factory.CreateSaleAction(bought, fee.String()), elastic_search.ActionCreate)
}
