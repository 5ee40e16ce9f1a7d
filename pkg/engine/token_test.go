package engine

import (
	"context"
	"encoding/binary"
	"testing"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeAccessToken(t *testing.T) {
	got := EncodeAccessToken("ab")

	// 4-byte little-endian length prefix counts the UTF-16 bytes
	require.Len(t, got, 4+4)
	assert.Equal(t, uint32(4), binary.LittleEndian.Uint32(got[:4]))

	// "ab" in UTF-16-LE
	assert.Equal(t, []byte{'a', 0, 'b', 0}, got[4:])
}

func TestEncodeAccessToken_Empty(t *testing.T) {
	got := EncodeAccessToken("")
	require.Len(t, got, 4)
	assert.Equal(t, uint32(0), binary.LittleEndian.Uint32(got))
}

func TestEncodeAccessToken_NonBMP(t *testing.T) {
	// a non-BMP rune encodes as a surrogate pair, four bytes
	got := EncodeAccessToken("\U0001F600")
	require.Len(t, got, 4+4)
	assert.Equal(t, uint32(4), binary.LittleEndian.Uint32(got[:4]))
}

func TestPreConnectAttrs(t *testing.T) {
	attrs := PreConnectAttrs("tok")
	require.Contains(t, attrs, SQLCoptSSAccessToken)
	assert.Equal(t, 1256, SQLCoptSSAccessToken)
	assert.Equal(t, EncodeAccessToken("tok"), attrs[SQLCoptSSAccessToken])
}

// staticCredential returns a fixed token for provider tests.
type staticCredential struct {
	token  string
	scopes []string
}

func (c *staticCredential) GetToken(_ context.Context, opts policy.TokenRequestOptions) (azcore.AccessToken, error) {
	c.scopes = opts.Scopes
	return azcore.AccessToken{Token: c.token, ExpiresOn: time.Now().Add(time.Hour)}, nil
}

func TestTokenProvider(t *testing.T) {
	cred := &staticCredential{token: "secret"}
	provider := NewTokenProvider(cred)

	tok, err := provider.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "secret", tok)
	assert.Equal(t, []string{TokenScope}, cred.scopes)
}
