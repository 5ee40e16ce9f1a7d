// Package kusto wraps the Azure Data Explorer SDK's management-command
// surface with the few calls the dialect's reflection hooks need.
package kusto

import (
	"context"
	"strings"
	"unicode"

	"github.com/Azure/azure-kusto-go/azkustodata"
	"github.com/Azure/azure-kusto-go/azkustodata/kql"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/pkg/errors"
)

// TableSchemaRow is one attribute row of a `.show table` response.
type TableSchemaRow struct {
	AttributeName string `kusto:"AttributeName"`
	AttributeType string `kusto:"AttributeType"`
}

// Client issues management commands against a cluster.
type Client struct {
	inner *azkustodata.Client
}

// New connects a management client to a cluster endpoint using the same
// Azure credential the bridge connection authenticates with.
func New(endpoint string, cred azcore.TokenCredential) (*Client, error) {
	kcsb := azkustodata.NewConnectionStringBuilder(endpoint).WithTokenCredential(cred)
	inner, err := azkustodata.New(kcsb)
	if err != nil {
		return nil, errors.Wrapf(err, "connecting kusto client to %s", endpoint)
	}
	return &Client{inner: inner}, nil
}

// Close releases the underlying SDK client.
func (c *Client) Close() error {
	return c.inner.Close()
}

// ShowTable returns the attribute rows of `.show table <name>`.
func (c *Client) ShowTable(ctx context.Context, db, table string) ([]TableSchemaRow, error) {
	if err := validateEntityName(table); err != nil {
		return nil, err
	}
	stmt := kql.New(".show table ").AddTable(table)
	ds, err := c.inner.Mgmt(ctx, db, stmt)
	if err != nil {
		return nil, errors.Wrapf(err, "show table %s", table)
	}
	return primaryRows[TableSchemaRow](ds)
}

// ShowTables lists the table names in a database.
func (c *Client) ShowTables(ctx context.Context, db string) ([]string, error) {
	stmt := kql.New(".show tables | project TableName")
	ds, err := c.inner.Mgmt(ctx, db, stmt)
	if err != nil {
		return nil, errors.Wrap(err, "show tables")
	}
	rows, err := primaryRows[tableNameRow](ds)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(rows))
	for _, r := range rows {
		names = append(names, r.TableName)
	}
	return names, nil
}

// TableExists reports whether a table is present in a database.
func (c *Client) TableExists(ctx context.Context, db, table string) (bool, error) {
	stmt := kql.New(".show tables | where TableName == ").AddString(table)
	ds, err := c.inner.Mgmt(ctx, db, stmt)
	if err != nil {
		return false, errors.Wrapf(err, "checking table %s", table)
	}
	rows, err := primaryRows[tableNameRow](ds)
	if err != nil {
		return false, err
	}
	return len(rows) > 0, nil
}

type tableNameRow struct {
	TableName string `kusto:"TableName"`
}

// validateEntityName rejects table names the kql builder cannot safely
// splice into a management command.
func validateEntityName(name string) error {
	if name == "" {
		return errors.New("empty table name")
	}
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '.' {
			continue
		}
		return errors.Errorf("invalid character %q in table name %q", r, name)
	}
	if strings.HasPrefix(name, ".") || strings.HasSuffix(name, ".") {
		return errors.Errorf("invalid table name %q", name)
	}
	return nil
}
