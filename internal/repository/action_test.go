package repository

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/mintbay/nft-marketplace/internal/entity"
	"github.com/olivere/elastic/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActionRepository_FindMany(t *testing.T) {
	repo := actionRepository{}

	results := &elastic.SearchResult{Hits: &elastic.SearchHits{Hits: []*elastic.SearchHit{
		{Source: json.RawMessage(`{"contract":"0xnft","tokenId":1,"action":"mint","to":"0xaddr1"}`)},
		{Source: json.RawMessage(`{"contract":"0xnft","tokenId":1,"listingId":1,"action":"listing","from":"0xaddr1","cost":"100"}`)},
	}}}

	actions, err := repo.findMany(results, nil)
	require.NoError(t, err)
	require.Len(t, actions, 2)
	assert.Equal(t, entity.MintAction, actions[0].Action)
	assert.Equal(t, entity.ListingAction, actions[1].Action)
}

func TestActionRepository_FindMany_Empty(t *testing.T) {
	repo := actionRepository{}

	_, err := repo.findMany(&elastic.SearchResult{Hits: &elastic.SearchHits{}}, nil)
	assert.ErrorIs(t, err, ErrActionNotFound)
}

func TestActionRepository_FindMany_Error(t *testing.T) {
	repo := actionRepository{}

	_, err := repo.findMany(nil, errors.New("search failed"))
	assert.EqualError(t, err, "search failed")
}
