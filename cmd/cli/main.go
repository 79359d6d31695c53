package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mintbay/nft-marketplace/internal/config"
	"github.com/mintbay/nft-marketplace/internal/config/di"
	"github.com/mintbay/nft-marketplace/internal/dev"
	"github.com/mintbay/nft-marketplace/internal/messenger"
	"github.com/mintbay/nft-marketplace/internal/repository"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

var (
	container      *di.Container
	actionRepo     repository.ActionRepository
	messageService messenger.MessageService
)

func main() {
	config.Init("cli")

	container, _ = di.NewContainer()
	actionRepo = container.GetActionRepo()
	messageService = container.GetMessenger()

	app := &cli.App{
		Commands: []*cli.Command{
			{
				Name:   "metadata",
				Usage:  "queue a token for metadata refresh",
				Action: queueMetadataRefresh,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "contract", Required: true, Usage: "token contract address"},
					&cli.Uint64Flag{Name: "tokenId", Required: true, Usage: "token id"},
				},
			},
			{
				Name:   "actions",
				Usage:  "dump the indexed trade history of a token",
				Action: dumpActions,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "contract", Required: true, Usage: "token contract address"},
					&cli.Uint64Flag{Name: "tokenId", Required: true, Usage: "token id"},
				},
			},
			{
				Name:   "sales",
				Usage:  "dump the indexed sales of a collection",
				Action: dumpSales,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "contract", Required: true, Usage: "token contract address"},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		zap.L().With(zap.Error(err)).Fatal("CLI command failed")
	}
}

func queueMetadataRefresh(c *cli.Context) error {
	msg := messenger.Token{
		Contract: c.String("contract"),
		TokenId:  c.Uint64("tokenId"),
	}
	dev.Dump(msg)

	msgJson, _ := json.Marshal(msg)

	return messageService.SendMessage(messenger.MetadataRefresh, msgJson)
}

func dumpActions(c *cli.Context) error {
	actions, err := actionRepo.GetActions(c.String("contract"), c.Uint64("tokenId"))
	if err != nil {
		return err
	}

	for _, action := range actions {
		actionJson, _ := json.Marshal(action)
		fmt.Println(string(actionJson))
	}

	return nil
}

func dumpSales(c *cli.Context) error {
	sales, err := actionRepo.GetSales(c.String("contract"))
	if err != nil {
		return err
	}

	for _, sale := range sales {
		saleJson, _ := json.Marshal(sale)
		fmt.Println(string(saleJson))
	}

	return nil
}
