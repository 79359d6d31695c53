package di

import (
	"github.com/mintbay/nft-marketplace/internal/api"
	"github.com/mintbay/nft-marketplace/internal/elastic_search"
	"github.com/mintbay/nft-marketplace/internal/event"
	"github.com/mintbay/nft-marketplace/internal/funds"
	"github.com/mintbay/nft-marketplace/internal/indexer"
	"github.com/mintbay/nft-marketplace/internal/market"
	"github.com/mintbay/nft-marketplace/internal/messenger"
	"github.com/mintbay/nft-marketplace/internal/metadata"
	"github.com/mintbay/nft-marketplace/internal/registry"
	"github.com/mintbay/nft-marketplace/internal/repository"
	"github.com/sarulabs/di/v2"
)

type Container struct {
	ctn di.Container
}

func NewContainer() (*Container, error) {
	builder, err := di.NewBuilder()
	if err != nil {
		return nil, err
	}

	if err := builder.Add(Definitions...); err != nil {
		return nil, err
	}

	return &Container{ctn: builder.Build()}, nil
}

func (c *Container) GetEvents() *event.Manager {
	return c.ctn.Get("events").(*event.Manager)
}

func (c *Container) GetFunds() *funds.Ledger {
	return c.ctn.Get("funds").(*funds.Ledger)
}

func (c *Container) GetRegistry() *registry.Registry {
	return c.ctn.Get("registry").(*registry.Registry)
}

func (c *Container) GetMarket() *market.Market {
	return c.ctn.Get("market").(*market.Market)
}

func (c *Container) GetElastic() elastic_search.Index {
	return c.ctn.Get("elastic").(elastic_search.Index)
}

func (c *Container) GetMessenger() messenger.MessageService {
	return c.ctn.Get("messenger").(messenger.MessageService)
}

func (c *Container) GetMetadataService() metadata.Service {
	return c.ctn.Get("metadata.service").(metadata.Service)
}

func (c *Container) GetHistoryIndexer() indexer.HistoryIndexer {
	return c.ctn.Get("history.indexer").(indexer.HistoryIndexer)
}

func (c *Container) GetMetadataIndexer() indexer.MetadataIndexer {
	return c.ctn.Get("metadata.indexer").(indexer.MetadataIndexer)
}

func (c *Container) GetActionRepo() repository.ActionRepository {
	return c.ctn.Get("action.repo").(repository.ActionRepository)
}

func (c *Container) GetMetadataRepo() repository.MetadataRepository {
	return c.ctn.Get("metadata.repo").(repository.MetadataRepository)
}

func (c *Container) GetApiServer() api.Server {
	return c.ctn.Get("api.server").(api.Server)
}
