package main

import (
	"encoding/json"

	"github.com/aws/aws-sdk-go/service/sqs"
	"github.com/mintbay/nft-marketplace/internal/config"
	"github.com/mintbay/nft-marketplace/internal/config/di"
	"github.com/mintbay/nft-marketplace/internal/dev"
	"github.com/mintbay/nft-marketplace/internal/elastic_search"
	"github.com/mintbay/nft-marketplace/internal/messenger"
	"go.uber.org/zap"
)

func main() {
	config.Init("queueSubscriber")

	container, _ := di.NewContainer()
	messageService := container.GetMessenger()
	metadataIndexer := container.GetMetadataIndexer()
	elastic := container.GetElastic()

	zap.L().Info("Subscribing to metadata refresh")

	chnMessages := make(chan *sqs.Message, 10)
	go messageService.PollMessages(messenger.MetadataRefresh, chnMessages)

	for message := range chnMessages {
		var data messenger.Token
		if err := json.Unmarshal([]byte(*message.Body), &data); err != nil {
			zap.L().With(zap.Error(err)).Error("Failed to read message")
			continue
		}

		if _, err := metadataIndexer.RefreshMetadata(data.Contract, data.TokenId); err == nil {
			if err := messageService.DeleteMessage(messenger.MetadataRefresh, message); err != nil {
				zap.L().With(zap.Error(err)).Error("Failed to delete message")
			}
		} else {
			elastic.AddIndexRequest(
				elastic_search.ErrorIndex.Get(),
				dev.NewError("queueSubscriber", "RefreshMetadata", err, map[string]interface{}{
					"contract": data.Contract,
					"tokenId":  data.TokenId,
				}),
				elastic_search.ErrorCreate,
			)
		}
		elastic.Persist()
	}
}
