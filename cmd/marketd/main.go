package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/mintbay/nft-marketplace/internal/config"
	"github.com/mintbay/nft-marketplace/internal/config/di"
	"github.com/mintbay/nft-marketplace/internal/event"
	"go.uber.org/zap"
)

var container *di.Container

func main() {
	config.Init("marketd")
	container, _ = di.NewContainer()

	container.GetElastic().InstallMappings()

	events := container.GetEvents()
	events.AddEventListener(event.TokenMintedEvent, container.GetHistoryIndexer().IndexMint)
	events.AddEventListener(event.TokenMintedEvent, container.GetMetadataIndexer().TriggerMetadataRefresh)
	events.AddEventListener(event.ListingOfferedEvent, container.GetHistoryIndexer().IndexListing)
	events.AddEventListener(event.ListingBoughtEvent, container.GetHistoryIndexer().IndexSale)

	go health()
	go persist()

	zap.L().With(zap.String("port", config.Get().ApiPort)).Info("Marketplace started")

	server := container.GetApiServer()
	if err := http.ListenAndServe(":"+config.Get().ApiPort, server.Router()); err != nil {
		zap.L().With(zap.Error(err)).Fatal("Failed to start api server")
	}
}

func persist() {
	for range time.Tick(5 * time.Second) {
		container.GetElastic().Persist()
	}
}

func health() {
	if err := http.ListenAndServe(":"+config.Get().HealthPort, router()); err != nil {
		zap.L().With(zap.Error(err)).Error("Failed to start health server")
	}
}

func router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = fmt.Fprintf(w, "OK")
	}).Methods("GET")

	return r
}
