package indexer

import (
	"math/big"
	"testing"

	"github.com/mintbay/nft-marketplace/internal/elastic_search"
	"github.com/mintbay/nft-marketplace/internal/entity"
	"github.com/mintbay/nft-marketplace/internal/event"
	"github.com/olivere/elastic/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeElastic struct {
	requests []elastic_search.Request
}

func (f *fakeElastic) GetClient() *elastic.Client { return nil }
func (f *fakeElastic) InstallMappings()           {}

func (f *fakeElastic) AddIndexRequest(index string, e entity.Entity, reqAction elastic_search.RequestAction) {
	f.AddRequest(index, e, elastic_search.IndexRequest, reqAction)
}

func (f *fakeElastic) AddUpdateRequest(index string, e entity.Entity, reqAction elastic_search.RequestAction) {
	f.AddRequest(index, e, elastic_search.UpdateRequest, reqAction)
}

func (f *fakeElastic) HasRequest(e entity.Entity) bool {
	return f.GetRequest(e.Slug()) != nil
}

func (f *fakeElastic) AddRequest(index string, e entity.Entity, reqType elastic_search.RequestType, reqAction elastic_search.RequestAction) {
	f.requests = append(f.requests, elastic_search.Request{Index: index, Entity: e, Type: reqType, Action: reqAction})
}

func (f *fakeElastic) GetRequests() []elastic_search.Request { return f.requests }

func (f *fakeElastic) GetRequest(id string) *elastic_search.Request {
	for idx := range f.requests {
		if f.requests[idx].Entity.Slug() == id {
			return &f.requests[idx]
		}
	}
	return nil
}

func (f *fakeElastic) ClearRequests()                        { f.requests = nil }
func (f *fakeElastic) Save(index string, e entity.Entity)    {}
func (f *fakeElastic) BatchPersist() bool                    { return false }
func (f *fakeElastic) Persist() int                          { return len(f.requests) }

func TestHistoryIndexer_IndexMint(t *testing.T) {
	elasticFake := &fakeElastic{}
	indexer := NewHistoryIndexer(elasticFake, 1)

	indexer.IndexMint(event.TokenMinted{Contract: "0xnft", TokenId: 1, Owner: "0xaddr1", Uri: "uri"})

	require.Len(t, elasticFake.requests, 1)
	action := elasticFake.requests[0].Entity.(entity.MarketAction)
	assert.Equal(t, entity.MintAction, action.Action)
	assert.Equal(t, "0xaddr1", action.To)
	assert.Equal(t, elastic_search.ActionCreate, elasticFake.requests[0].Action)
}

func TestHistoryIndexer_IndexListing(t *testing.T) {
	elasticFake := &fakeElastic{}
	indexer := NewHistoryIndexer(elasticFake, 1)

	indexer.IndexListing(event.ListingOffered{
		ListingId: 1,
		Contract:  "0xnft",
		TokenId:   1,
		Price:     big.NewInt(100),
		Seller:    "0xaddr1",
	})

	require.Len(t, elasticFake.requests, 1)
	action := elasticFake.requests[0].Entity.(entity.MarketAction)
	assert.Equal(t, entity.ListingAction, action.Action)
	assert.Equal(t, "0xaddr1", action.From)
	assert.Equal(t, "100", action.Cost)
}

func TestHistoryIndexer_IndexSale(t *testing.T) {
	elasticFake := &fakeElastic{}
	indexer := NewHistoryIndexer(elasticFake, 1)

	indexer.IndexSale(event.ListingBought{
		ListingId: 1,
		Contract:  "0xnft",
		TokenId:   1,
		Price:     big.NewInt(200),
		Seller:    "0xaddr1",
		Buyer:     "0xaddr2",
	})

	// A sale indexes both the ownership transfer and the sale record
	require.Len(t, elasticFake.requests, 2)

	transfer := elasticFake.requests[0].Entity.(entity.MarketAction)
	assert.Equal(t, entity.TransferAction, transfer.Action)
	assert.Equal(t, "0xaddr1", transfer.From)
	assert.Equal(t, "0xaddr2", transfer.To)

	sale := elasticFake.requests[1].Entity.(entity.MarketAction)
	assert.Equal(t, entity.SaleAction, sale.Action)
	assert.Equal(t, "200", sale.Cost)
	assert.Equal(t, "2", sale.Fee)
}
