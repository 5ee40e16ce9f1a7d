package engine

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/pkg/errors"
)

// kustoDomain is the public cluster DNS suffix.
const kustoDomain = ".kusto.windows.net"

// BuildDSN returns the go-mssqldb connection URL for a cluster's TDS
// endpoint. The cluster name is the bare cluster, not a full host name.
func BuildDSN(cluster, database string) string {
	query := url.Values{}
	query.Set("database", database)
	query.Set("encrypt", "true")
	u := url.URL{
		Scheme:   "sqlserver",
		Host:     cluster + kustoDomain,
		RawQuery: query.Encode(),
	}
	return u.String()
}

// BuildODBCConnString returns the legacy ODBC connection string for the same
// endpoint, kept for interop with host toolkits that hand us one.
func BuildODBCConnString(cluster, database string) string {
	return fmt.Sprintf(
		"Driver={ODBC Driver 17 for SQL Server};Server=%s%s;Database=%s",
		cluster, kustoDomain, database,
	)
}

// ParseODBCConnString recovers the cluster URL and database from an ODBC
// connection string, URL-unescaping it first since host toolkits pass the
// string percent-encoded inside a URL query parameter. Attributes are
// semicolon-separated key=value pairs in any order; keys compare
// case-insensitively.
func ParseODBCConnString(connStr string) (server, database string, err error) {
	unquoted, err := url.QueryUnescape(connStr)
	if err != nil {
		return "", "", errors.Wrap(err, "unescaping connection string")
	}
	for _, attr := range strings.Split(unquoted, ";") {
		key, value, ok := strings.Cut(attr, "=")
		if !ok {
			continue
		}
		switch strings.ToLower(strings.TrimSpace(key)) {
		case "server":
			server = value
		case "database":
			database = value
		}
	}
	if server == "" {
		return "", "", errors.Errorf("connection string has no Server attribute: %q", connStr)
	}
	if database == "" {
		return "", "", errors.Errorf("connection string has no Database attribute: %q", connStr)
	}
	return "https://" + server, database, nil
}

// StripTrustedConnection removes the Trusted_Connection attribute that host
// toolkits append for SQL Server; it conflicts with token authentication.
func StripTrustedConnection(connStr string) string {
	return strings.ReplaceAll(connStr, ";Trusted_Connection=Yes", "")
}
