package entity

import (
	"crypto/md5"
	"fmt"
)

// MarketAction is the indexed history record of a token changing hands or
// sale state on the marketplace.
type MarketAction struct {
	Contract  string     `json:"contract"`
	TokenId   uint64     `json:"tokenId"`
	ListingId uint64     `json:"listingId"`
	Action    ActionType `json:"action"`
	From      string     `json:"from"`
	To        string     `json:"to"`
	Cost      string     `json:"cost"`
	Fee       string     `json:"fee"`
}

type ActionType string

const (
	MintAction     ActionType = "mint"
	TransferAction ActionType = "transfer"
	ListingAction  ActionType = "listing"
	SaleAction     ActionType = "sale"
)

func (a MarketAction) Slug() string {
	return CreateMarketActionSlug(a.TokenId, a.Contract, a.ListingId, string(a.Action))
}

func CreateMarketActionSlug(tokenId uint64, contract string, listingId uint64, action string) string {
	data := []byte(fmt.Sprintf("marketaction-%d-%s-%d-%s", tokenId, contract, listingId, action))
	return fmt.Sprintf("%x", md5.Sum(data))
}
