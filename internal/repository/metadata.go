package repository

import (
	"encoding/json"
	"errors"

	"github.com/mintbay/nft-marketplace/internal/elastic_search"
	"github.com/mintbay/nft-marketplace/internal/entity"
	"github.com/olivere/elastic/v7"
)

var (
	ErrMetadataNotFound = errors.New("metadata not found")
)

type MetadataRepository interface {
	GetMetadata(contract string, tokenId uint64) (*entity.TokenMetadata, error)
}

type metadataRepository struct {
	elastic elastic_search.Index
}

func NewMetadataRepository(elastic elastic_search.Index) MetadataRepository {
	return metadataRepository{elastic}
}

func (r metadataRepository) GetMetadata(contract string, tokenId uint64) (*entity.TokenMetadata, error) {
	query := elastic.NewBoolQuery().Must(
		elastic.NewTermQuery("contract.keyword", contract),
		elastic.NewTermQuery("tokenId", tokenId),
	)

	results, err := search(r.elastic.GetClient().
		Search(elastic_search.MetadataIndex.Get()).
		Query(query).
		Size(1))

	return r.findOne(results, err)
}

func (r metadataRepository) findOne(results *elastic.SearchResult, err error) (*entity.TokenMetadata, error) {
	if err != nil {
		return nil, err
	}

	if len(results.Hits.Hits) == 0 {
		return nil, ErrMetadataNotFound
	}

	var md entity.TokenMetadata
	hit := results.Hits.Hits[0]
	if err := json.Unmarshal(hit.Source, &md); err != nil {
		return nil, err
	}

	return &md, nil
}
