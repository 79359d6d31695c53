package repository

import (
	"encoding/json"
	"errors"

	"github.com/mintbay/nft-marketplace/internal/elastic_search"
	"github.com/mintbay/nft-marketplace/internal/entity"
	"github.com/olivere/elastic/v7"
)

var (
	ErrActionNotFound = errors.New("market action not found")
)

type ActionRepository interface {
	GetActions(contract string, tokenId uint64) ([]entity.MarketAction, error)
	GetSales(contract string) ([]entity.MarketAction, error)
}

type actionRepository struct {
	elastic elastic_search.Index
}

func NewActionRepository(elastic elastic_search.Index) ActionRepository {
	return actionRepository{elastic}
}

func (r actionRepository) GetActions(contract string, tokenId uint64) ([]entity.MarketAction, error) {
	query := elastic.NewBoolQuery().Must(
		elastic.NewTermQuery("contract.keyword", contract),
		elastic.NewTermQuery("tokenId", tokenId),
	)

	results, err := search(r.elastic.GetClient().
		Search(elastic_search.ActionIndex.Get()).
		Query(query).
		Sort("listingId", true).
		Size(100))

	return r.findMany(results, err)
}

func (r actionRepository) GetSales(contract string) ([]entity.MarketAction, error) {
	query := elastic.NewBoolQuery().Must(
		elastic.NewTermQuery("contract.keyword", contract),
		elastic.NewTermQuery("action.keyword", string(entity.SaleAction)),
	)

	results, err := search(r.elastic.GetClient().
		Search(elastic_search.ActionIndex.Get()).
		Query(query).
		Sort("listingId", true).
		Size(100))

	return r.findMany(results, err)
}

func (r actionRepository) findMany(results *elastic.SearchResult, err error) ([]entity.MarketAction, error) {
	if err != nil {
		return nil, err
	}

	if len(results.Hits.Hits) == 0 {
		return nil, ErrActionNotFound
	}

	actions := make([]entity.MarketAction, 0)
	for _, hit := range results.Hits.Hits {
		var action entity.MarketAction
		if err := json.Unmarshal(hit.Source, &action); err != nil {
			return nil, err
		}
		actions = append(actions, action)
	}

	return actions, nil
}
