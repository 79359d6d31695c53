package di

import (
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/mintbay/nft-marketplace/internal/api"
	"github.com/mintbay/nft-marketplace/internal/config"
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
	"go.uber.org/zap"
)

var Definitions = []di.Def{
	{
		Name: "events",
		Build: func(ctn di.Container) (interface{}, error) {
			return event.NewManager(), nil
		},
	},
	{
		Name: "funds",
		Build: func(ctn di.Container) (interface{}, error) {
			return funds.NewLedger(), nil
		},
	},
	{
		Name: "registry",
		Build: func(ctn di.Container) (interface{}, error) {
			cfg := config.Get().Market
			return registry.New(
				cfg.CollectionAddress,
				cfg.CollectionName,
				cfg.CollectionSymbol,
				ctn.Get("events").(*event.Manager),
			), nil
		},
	},
	{
		Name: "market",
		Build: func(ctn di.Container) (interface{}, error) {
			cfg := config.Get().Market
			return market.New(
				cfg.Address,
				cfg.FeeAccount,
				cfg.FeePercent,
				ctn.Get("funds").(*funds.Ledger),
				ctn.Get("events").(*event.Manager),
			), nil
		},
	},
	{
		Name: "elastic",
		Build: func(ctn di.Container) (interface{}, error) {
			elastic, err := elastic_search.New()
			if err != nil {
				zap.L().With(zap.Error(err)).Fatal("Failed to start ES")
			}

			return elastic, nil
		},
	},
	{
		Name: "messenger",
		Build: func(ctn di.Container) (interface{}, error) {
			return messenger.NewMessenger(), nil
		},
	},
	{
		Name: "metadata.service",
		Build: func(ctn di.Container) (interface{}, error) {
			client := retryablehttp.NewClient()
			client.RetryMax = config.Get().MetadataRetries
			client.HTTPClient.Timeout = time.Duration(config.Get().IpfsTimeout) * time.Second
			client.Logger = nil

			return metadata.NewMetadataService(client), nil
		},
	},
	{
		Name: "history.indexer",
		Build: func(ctn di.Container) (interface{}, error) {
			return indexer.NewHistoryIndexer(
				ctn.Get("elastic").(elastic_search.Index),
				config.Get().Market.FeePercent,
			), nil
		},
	},
	{
		Name: "metadata.indexer",
		Build: func(ctn di.Container) (interface{}, error) {
			return indexer.NewMetadataIndexer(
				ctn.Get("elastic").(elastic_search.Index),
				ctn.Get("metadata.repo").(repository.MetadataRepository),
				ctn.Get("messenger").(messenger.MessageService),
				ctn.Get("metadata.service").(metadata.Service),
			), nil
		},
	},
	{
		Name: "action.repo",
		Build: func(ctn di.Container) (interface{}, error) {
			return repository.NewActionRepository(ctn.Get("elastic").(elastic_search.Index)), nil
		},
	},
	{
		Name: "metadata.repo",
		Build: func(ctn di.Container) (interface{}, error) {
			return repository.NewMetadataRepository(ctn.Get("elastic").(elastic_search.Index)), nil
		},
	},
	{
		Name: "api.server",
		Build: func(ctn di.Container) (interface{}, error) {
			return api.NewServer(
				ctn.Get("registry").(*registry.Registry),
				ctn.Get("market").(*market.Market),
				ctn.Get("action.repo").(repository.ActionRepository),
				ctn.Get("metadata.repo").(repository.MetadataRepository),
			), nil
		},
	},
}
