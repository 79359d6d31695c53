package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/mintbay/nft-marketplace/internal/market"
	"github.com/mintbay/nft-marketplace/internal/registry"
	"github.com/mintbay/nft-marketplace/internal/repository"
	"go.uber.org/zap"
)

// Server exposes the read surface of the marketplace: collection metadata,
// token ownership, listings, prices and indexed trade history.
type Server struct {
	tokens       *registry.Registry
	market       *market.Market
	actionRepo   repository.ActionRepository
	metadataRepo repository.MetadataRepository
}

func NewServer(
	tokens *registry.Registry,
	mkt *market.Market,
	actionRepo repository.ActionRepository,
	metadataRepo repository.MetadataRepository,
) Server {
	return Server{tokens, mkt, actionRepo, metadataRepo}
}

func (s Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/", s.handleHomepage).Methods("GET")
	r.HandleFunc("/collection", s.handleGetCollection).Methods("GET")
	r.HandleFunc("/tokens/{tokenId}", s.handleGetToken).Methods("GET")
	r.HandleFunc("/tokens/{tokenId}/actions", s.handleGetTokenActions).Methods("GET")
	r.HandleFunc("/tokens/{tokenId}/metadata", s.handleGetTokenMetadata).Methods("GET")
	r.HandleFunc("/addresses/{addr}/tokens", s.handleGetBalance).Methods("GET")
	r.HandleFunc("/listings", s.handleGetListings).Methods("GET")
	r.HandleFunc("/listings/{listingId}", s.handleGetListing).Methods("GET")
	r.HandleFunc("/listings/{listingId}/total-price", s.handleGetTotalPrice).Methods("GET")
	r.NotFoundHandler = notFoundHandler()

	return r
}

func (s Server) handleHomepage(w http.ResponseWriter, r *http.Request) {
	_, _ = fmt.Fprintf(w, "NFT Marketplace API")
}

func (s Server) handleGetCollection(w http.ResponseWriter, r *http.Request) {
	writeJson(w, map[string]interface{}{
		"contract":   s.tokens.Address(),
		"name":       s.tokens.Name(),
		"symbol":     s.tokens.Symbol(),
		"tokenCount": s.tokens.TokenCount(),
	})
}

func (s Server) handleGetToken(w http.ResponseWriter, r *http.Request) {
	tokenId, err := pathId(r, "tokenId")
	if err != nil {
		http.Error(w, "Invalid token id", http.StatusBadRequest)
		return
	}

	owner, err := s.tokens.OwnerOf(tokenId)
	if err != nil {
		http.Error(w, "Token not available", http.StatusNotFound)
		return
	}
	uri, _ := s.tokens.TokenURI(tokenId)

	writeJson(w, map[string]interface{}{
		"tokenId": tokenId,
		"owner":   owner,
		"uri":     uri,
	})
}

func (s Server) handleGetTokenActions(w http.ResponseWriter, r *http.Request) {
	tokenId, err := pathId(r, "tokenId")
	if err != nil {
		http.Error(w, "Invalid token id", http.StatusBadRequest)
		return
	}

	actions, err := s.actionRepo.GetActions(s.tokens.Address(), tokenId)
	if err != nil {
		zap.L().With(zap.Error(err)).Warn("Token actions not available")
		http.Error(w, "Token actions not available", http.StatusNotFound)
		return
	}

	writeJson(w, actions)
}

func (s Server) handleGetTokenMetadata(w http.ResponseWriter, r *http.Request) {
	tokenId, err := pathId(r, "tokenId")
	if err != nil {
		http.Error(w, "Invalid token id", http.StatusBadRequest)
		return
	}

	md, err := s.metadataRepo.GetMetadata(s.tokens.Address(), tokenId)
	if err != nil {
		zap.L().With(zap.Error(err)).Warn("Token metadata not available")
		http.Error(w, "Token metadata not available", http.StatusNotFound)
		return
	}

	writeJson(w, md)
}

func (s Server) handleGetBalance(w http.ResponseWriter, r *http.Request) {
	addr := mux.Vars(r)["addr"]

	writeJson(w, map[string]interface{}{
		"address": addr,
		"balance": s.tokens.BalanceOf(addr),
	})
}

func (s Server) handleGetListings(w http.ResponseWriter, r *http.Request) {
	writeJson(w, map[string]interface{}{
		"count":      s.market.ListingCount(),
		"feeAccount": s.market.FeeAccount(),
		"feePercent": s.market.FeePercent(),
	})
}

func (s Server) handleGetListing(w http.ResponseWriter, r *http.Request) {
	listingId, err := pathId(r, "listingId")
	if err != nil {
		http.Error(w, "Invalid listing id", http.StatusBadRequest)
		return
	}

	listing, err := s.market.Listing(listingId)
	if errors.Is(err, market.ErrListingNotFound) {
		http.Error(w, "Listing not available", http.StatusNotFound)
		return
	}

	writeJson(w, listing)
}

func (s Server) handleGetTotalPrice(w http.ResponseWriter, r *http.Request) {
	listingId, err := pathId(r, "listingId")
	if err != nil {
		http.Error(w, "Invalid listing id", http.StatusBadRequest)
		return
	}

	total, err := s.market.GetTotalPrice(listingId)
	if errors.Is(err, market.ErrListingNotFound) {
		http.Error(w, "Listing not available", http.StatusNotFound)
		return
	}

	writeJson(w, map[string]interface{}{
		"listingId":  listingId,
		"totalPrice": total.String(),
	})
}

func pathId(r *http.Request, name string) (uint64, error) {
	id, ok := mux.Vars(r)[name]
	if !ok {
		return 0, errors.New("invalid parameters")
	}

	return strconv.ParseUint(id, 10, 64)
}

func writeJson(w http.ResponseWriter, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		zap.L().With(zap.Error(err)).Error("Failed to write response")
	}
}

func notFoundHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(404)
		_, _ = fmt.Fprintf(w, "Page not found")
	})
}
