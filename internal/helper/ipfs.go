package helper

import (
	"net/url"
	"regexp"
	"strings"
)

var ipfsHashRe = regexp.MustCompile("(Qm[1-9A-HJ-NP-Za-km-z]{44}.*$)")

func IsUrl(uri string) bool {
	u, err := url.Parse(uri)
	return err == nil && u.Scheme != "" && u.Host != ""
}

func IsIpfs(uri string) bool {
	parts := ipfsHashRe.FindStringSubmatch(uri)
	if len(parts) == 2 {
		return true
	}

	if !IsUrl(uri) {
		return false
	}

	u, _ := url.Parse(uri)

	return u.Scheme == "ipfs"
}

// GetIpfs normalizes an ipfs reference to ipfs://<hash> form. Bare Qm hashes
// gain the scheme; non-ipfs uris return nil.
func GetIpfs(uri string) *string {
	parts := ipfsHashRe.FindStringSubmatch(uri)
	if len(parts) == 2 {
		ipfsUri := "ipfs://" + parts[1]
		return &ipfsUri
	}

	if strings.HasPrefix(uri, "ipfs://") {
		return &uri
	}

	return nil
}
