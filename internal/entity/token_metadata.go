package entity

import (
	"errors"
	"fmt"

	"github.com/gosimple/slug"
)

// TokenMetadata tracks the off-chain metadata document behind a token uri.
type TokenMetadata struct {
	Contract  string                 `json:"contract"`
	TokenId   uint64                 `json:"tokenId"`
	Uri       string                 `json:"uri"`
	Attempted int                    `json:"attempted"`
	Error     string                 `json:"error"`
	Data      map[string]interface{} `json:"data"`
}

func (m TokenMetadata) Slug() string {
	return CreateTokenMetadataSlug(m.TokenId, m.Contract)
}

func CreateTokenMetadataSlug(tokenId uint64, contract string) string {
	return slug.Make(fmt.Sprintf("metadata-%d-%s", tokenId, contract))
}

func (m TokenMetadata) UriEmpty() bool {
	return m.Uri == ""
}

// MetadataUri resolves the stored uri to something fetchable. ipfs:// uris
// and bare Qm hashes are rewritten against the given gateway.
func (m TokenMetadata) MetadataUri(ipfsHost string) (string, error) {
	if m.UriEmpty() {
		return "", errors.New("metadata uri is empty")
	}

	return ResolveUri(m.Uri, ipfsHost)
}
