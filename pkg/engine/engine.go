// Package engine builds authenticated connections to a Kusto cluster: a
// database/sql bridge over the cluster's TDS endpoint and a native
// management-command client, both sharing one Azure AD credential.
package engine

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	mssql "github.com/microsoft/go-mssqldb"
	"github.com/microsoft/go-mssqldb/msdsn"
	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"github.com/alexkyllo/kqlalchemy/pkg/dialect"
	"github.com/alexkyllo/kqlalchemy/pkg/kusto"
)

// Engine holds the two connections the dialect adapter translates between.
type Engine struct {
	cfg     Config
	db      *sql.DB
	mgmt    *kusto.Client
	dialect *dialect.Dialect
}

// Open connects both halves of the engine. The credential is wired into the
// bridge handshake through a security-token connector, so every pooled
// connection authenticates with a fresh bearer token.
func Open(ctx context.Context, cfg Config, cred azcore.TokenCredential) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	provider := NewTokenProvider(cred)
	dsnConfig, err := msdsn.Parse(cfg.DSN())
	if err != nil {
		return nil, errors.Wrap(err, "parsing bridge DSN")
	}
	connector, err := mssql.NewSecurityTokenConnector(dsnConfig, provider.Token)
	if err != nil {
		return nil, errors.Wrap(err, "building bridge connector")
	}
	db := sql.OpenDB(connector)

	mgmt, err := kusto.New(cfg.ClusterURL(), cred)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	slog.Debug("engine opened", "cluster", cfg.Cluster, "database", cfg.Database)
	return &Engine{
		cfg:  cfg,
		db:   db,
		mgmt: mgmt,
		dialect: dialect.New(cfg.Database,
			dialect.WithBridge(db),
			dialect.WithManagementClient(mgmt),
		),
	}, nil
}

// DB returns the bridge connection pool.
func (e *Engine) DB() *sql.DB {
	return e.db
}

// Mgmt returns the management-command client.
func (e *Engine) Mgmt() *kusto.Client {
	return e.mgmt
}

// Dialect returns the reflection dialect bound to this engine.
func (e *Engine) Dialect() *dialect.Dialect {
	return e.dialect
}

// Ping verifies the bridge connection.
func (e *Engine) Ping(ctx context.Context) error {
	return errors.Wrap(e.db.PingContext(ctx), "pinging bridge")
}

// Close tears down both connections.
func (e *Engine) Close() error {
	return multierr.Combine(e.db.Close(), e.mgmt.Close())
}
