package entity

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mintbay/nft-marketplace/internal/helper"
)

// ResolveUri rewrites ipfs uris against the gateway and rejects anything
// that does not end up addressable over http.
func ResolveUri(uri string, ipfsHost string) (string, error) {
	if ipfs := helper.GetIpfs(uri); ipfs != nil && !strings.HasPrefix(uri, "http") {
		uri = fmt.Sprintf("%s/ipfs/%s", ipfsHost, (*ipfs)[7:])
	}

	if !helper.IsUrl(uri) || !strings.HasPrefix(uri, "http") {
		return "", errors.New("invalid metadata uri")
	}

	return uri, nil
}
