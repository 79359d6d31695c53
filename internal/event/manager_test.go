package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestManager_Emit_InRegistrationOrder(t *testing.T) {
	manager := NewManager()

	var order []string
	manager.AddEventListener(TokenMintedEvent, func(msg interface{}) {
		order = append(order, "first")
	})
	manager.AddEventListener(TokenMintedEvent, func(msg interface{}) {
		order = append(order, "second")
	})
	manager.AddEventListener(TokenMintedEvent, func(msg interface{}) {
		order = append(order, "third")
	})

	manager.Emit(TokenMintedEvent, TokenMinted{TokenId: 1})

	assert.Equal(t, []string{"first", "second", "third"}, order)
}

func TestManager_Emit_PayloadDelivered(t *testing.T) {
	manager := NewManager()

	var received []TokenMinted
	manager.AddEventListener(TokenMintedEvent, func(msg interface{}) {
		received = append(received, msg.(TokenMinted))
	})

	manager.Emit(TokenMintedEvent, TokenMinted{Contract: "0xnft", TokenId: 1, Owner: "0xowner", Uri: "uri"})
	manager.Emit(TokenMintedEvent, TokenMinted{Contract: "0xnft", TokenId: 2, Owner: "0xowner", Uri: "uri2"})

	assert.Equal(t, []TokenMinted{
		{Contract: "0xnft", TokenId: 1, Owner: "0xowner", Uri: "uri"},
		{Contract: "0xnft", TokenId: 2, Owner: "0xowner", Uri: "uri2"},
	}, received)
}

func TestManager_Emit_OnlyMatchingType(t *testing.T) {
	manager := NewManager()

	minted := 0
	offered := 0
	manager.AddEventListener(TokenMintedEvent, func(msg interface{}) { minted++ })
	manager.AddEventListener(ListingOfferedEvent, func(msg interface{}) { offered++ })

	manager.Emit(ListingOfferedEvent, ListingOffered{ListingId: 1})

	assert.Equal(t, 0, minted)
	assert.Equal(t, 1, offered)
}

func TestManager_Emit_NoListeners(t *testing.T) {
	manager := NewManager()

	assert.NotPanics(t, func() {
		manager.Emit(ListingBoughtEvent, ListingBought{ListingId: 1})
	})
}
