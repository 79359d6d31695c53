package indexer

import (
	"encoding/json"

	"github.com/mintbay/nft-marketplace/internal/elastic_search"
	"github.com/mintbay/nft-marketplace/internal/entity"
	"github.com/mintbay/nft-marketplace/internal/event"
	"github.com/mintbay/nft-marketplace/internal/factory"
	"github.com/mintbay/nft-marketplace/internal/messenger"
	"github.com/mintbay/nft-marketplace/internal/metadata"
	"github.com/mintbay/nft-marketplace/internal/repository"
	"go.uber.org/zap"
)

type MetadataIndexer interface {
	TriggerMetadataRefresh(el interface{})
	RefreshMetadata(contract string, tokenId uint64) (*entity.TokenMetadata, error)
}

type metadataIndexer struct {
	elastic         elastic_search.Index
	metadataRepo    repository.MetadataRepository
	messageService  messenger.MessageService
	metadataService metadata.Service
}

func NewMetadataIndexer(
	elastic elastic_search.Index,
	metadataRepo repository.MetadataRepository,
	messageService messenger.MessageService,
	metadataService metadata.Service,
) MetadataIndexer {
	return metadataIndexer{elastic, metadataRepo, messageService, metadataService}
}

// TriggerMetadataRefresh indexes a pending metadata record for a freshly
// minted token and queues it for fetching.
func (i metadataIndexer) TriggerMetadataRefresh(el interface{}) {
	minted := el.(event.TokenMinted)

	pending := factory.CreatePendingMetadata(minted)
	if pending.UriEmpty() {
		return
	}

	i.elastic.AddIndexRequest(elastic_search.MetadataIndex.Get(), pending, elastic_search.MetadataPending)

	msgJson, _ := json.Marshal(messenger.Token{Contract: minted.Contract, TokenId: minted.TokenId})
	if err := i.messageService.SendMessage(messenger.MetadataRefresh, msgJson); err != nil {
		zap.L().Error("Failed to queue metadata refresh")
	}
	zap.L().With(zap.String("contract", minted.Contract), zap.Uint64("tokenId", minted.TokenId)).Info("Trigger MetaData Refresh")
}

func (i metadataIndexer) RefreshMetadata(contract string, tokenId uint64) (*entity.TokenMetadata, error) {
	zap.L().With(zap.String("contract", contract), zap.Uint64("tokenId", tokenId)).Info("Refresh Metadata")

	md, err := i.metadataRepo.GetMetadata(contract, tokenId)
	if err != nil {
		return nil, err
	}

	data, err := i.metadataService.FetchMetadata(*md)
	if err != nil {
		zap.L().With(
			zap.Error(err),
			zap.String("contract", md.Contract),
			zap.Uint64("tokenId", md.TokenId),
			zap.String("uri", md.Uri),
		).Warn("Failed to get token metadata")

		md.Error = err.Error()
		md.Attempted++
	} else {
		md.Error = ""
		md.Attempted++
		md.Data = data
	}

	i.elastic.AddUpdateRequest(elastic_search.MetadataIndex.Get(), *md, elastic_search.MetadataRefresh)

	return md, nil
}
