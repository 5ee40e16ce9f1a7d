package engine

import (
	"context"
	"encoding/binary"
	"unicode/utf16"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/pkg/errors"
)

// TokenScope is the AAD resource scope for Kusto clusters.
const TokenScope = "https://kusto.kusto.windows.net/.default"

// SQLCoptSSAccessToken is the ODBC pre-connect attribute key under which the
// SQL Server driver expects an encoded access token.
const SQLCoptSSAccessToken = 1256

// TokenProvider acquires bearer tokens for the Kusto scope from an Azure
// credential. The credential caches and refreshes underneath, so Token can
// be called per connection.
type TokenProvider struct {
	cred azcore.TokenCredential
}

// NewTokenProvider wraps a credential for the Kusto scope.
func NewTokenProvider(cred azcore.TokenCredential) *TokenProvider {
	return &TokenProvider{cred: cred}
}

// Token returns a bearer token for the Kusto scope.
func (p *TokenProvider) Token(ctx context.Context) (string, error) {
	tok, err := p.cred.GetToken(ctx, policy.TokenRequestOptions{
		Scopes: []string{TokenScope},
	})
	if err != nil {
		return "", errors.Wrap(err, "acquiring kusto access token")
	}
	return tok.Token, nil
}

// EncodeAccessToken packs a bearer token into the byte layout the ODBC
// driver expects for SQL_COPT_SS_ACCESS_TOKEN: a little-endian uint32 byte
// length followed by the token in UTF-16-LE.
func EncodeAccessToken(token string) []byte {
	units := utf16.Encode([]rune(token))
	buf := make([]byte, 4+2*len(units))
	binary.LittleEndian.PutUint32(buf, uint32(2*len(units)))
	for i, u := range units {
		binary.LittleEndian.PutUint16(buf[4+2*i:], u)
	}
	return buf
}

// PreConnectAttrs returns the pre-connect attribute map to hand an ODBC
// bridge so the handshake authenticates with the token.
func PreConnectAttrs(token string) map[int][]byte {
	return map[int][]byte{
		SQLCoptSSAccessToken: EncodeAccessToken(token),
	}
}
