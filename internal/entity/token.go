package entity

import (
	"fmt"

	"github.com/gosimple/slug"
)

type Token struct {
	Contract string `json:"contract"`
	TokenId  uint64 `json:"tokenId"`
	Owner    string `json:"owner"`
	Uri      string `json:"uri"`
}

func (t Token) Slug() string {
	return CreateTokenSlug(t.TokenId, t.Contract)
}

func CreateTokenSlug(tokenId uint64, contract string) string {
	return slug.Make(fmt.Sprintf("token-%d-%s", tokenId, contract))
}
