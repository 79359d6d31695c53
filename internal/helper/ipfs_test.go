package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsUrl(t *testing.T) {
	assert.True(t, IsUrl("https://example.com/meta.json"))
	assert.True(t, IsUrl("ipfs://QmPbxeGcXhYQQNgsC6a36dDyYUcHgMLnGKnF8pVFmGsvqi"))
	assert.False(t, IsUrl("not a url"))
	assert.False(t, IsUrl(""))
}

func TestGetIpfs(t *testing.T) {
	ipfs := GetIpfs("QmPbxeGcXhYQQNgsC6a36dDyYUcHgMLnGKnF8pVFmGsvqi")
	if assert.NotNil(t, ipfs) {
		assert.Equal(t, "ipfs://QmPbxeGcXhYQQNgsC6a36dDyYUcHgMLnGKnF8pVFmGsvqi", *ipfs)
	}

	ipfs = GetIpfs("ipfs://bafybeigdyrzt5sfp7udm7hu76uh7y26nf3efuylqabf3oclgtqy55fbzdi")
	if assert.NotNil(t, ipfs) {
		assert.Equal(t, "ipfs://bafybeigdyrzt5sfp7udm7hu76uh7y26nf3efuylqabf3oclgtqy55fbzdi", *ipfs)
	}

	assert.Nil(t, GetIpfs("https://example.com/meta.json"))
	assert.Nil(t, GetIpfs("not a uri"))
}

func TestIsIpfs(t *testing.T) {
	assert.True(t, IsIpfs("ipfs://QmPbxeGcXhYQQNgsC6a36dDyYUcHgMLnGKnF8pVFmGsvqi"))
	assert.True(t, IsIpfs("QmPbxeGcXhYQQNgsC6a36dDyYUcHgMLnGKnF8pVFmGsvqi"))
	assert.True(t, IsIpfs("https://ipfs.io/ipfs/QmPbxeGcXhYQQNgsC6a36dDyYUcHgMLnGKnF8pVFmGsvqi"))
	assert.False(t, IsIpfs("https://example.com/meta.json"))
	assert.False(t, IsIpfs("not a url"))
}
