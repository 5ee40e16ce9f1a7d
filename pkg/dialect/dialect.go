// Package dialect implements the host-toolkit dialect surface for Kusto:
// the behavior flags and metadata-reflection hooks a SQL toolkit consults
// when it treats a cluster as a relational database.
package dialect

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/pkg/errors"

	"github.com/alexkyllo/kqlalchemy/pkg/kusto"
	"github.com/alexkyllo/kqlalchemy/pkg/types"
)

// Name is the dialect identifier registered with host toolkits.
const Name = "mskql"

// MgmtClient is the management-command surface the reflection hooks need.
// *kusto.Client satisfies it; tests substitute a fake.
type MgmtClient interface {
	ShowTable(ctx context.Context, db, table string) ([]kusto.TableSchemaRow, error)
	ShowTables(ctx context.Context, db string) ([]string, error)
	TableExists(ctx context.Context, db, table string) (bool, error)
}

// Capabilities are the behavior flags the host toolkit reads off the
// dialect. Kusto's TDS endpoint emulates SQL Server, so most flags follow
// the SQL Server dialect with the engine's gaps switched off.
type Capabilities struct {
	Name                   string
	MaxIdentifierLength    int
	DefaultSchema          string
	SupportsStatementCache bool
	SupportsDefaultValues  bool
	SupportsEmptyInsert    bool
	SupportsSequences      bool
	SequencesOptional      bool
	DefaultSequenceBase    int
	SupportsNativeBoolean  bool
	SupportsUnicodeBinds   bool
	SupportsOffsetFetch    bool
	SupportsNVarcharMax    bool
	UseScopeIdentity       bool
	PostfetchLastRowID     bool
	ImplicitReturning      bool
	FullReturning          bool
}

// DefaultCapabilities returns the flag set for the Kusto dialect.
func DefaultCapabilities() Capabilities {
	return Capabilities{
		Name:                   Name,
		MaxIdentifierLength:    128,
		DefaultSchema:          "dbo",
		SupportsStatementCache: true,
		SupportsDefaultValues:  true,
		SupportsEmptyInsert:    false,
		SupportsSequences:      true,
		SequencesOptional:      true,
		DefaultSequenceBase:    1,
		SupportsNativeBoolean:  false,
		SupportsUnicodeBinds:   true,
		SupportsOffsetFetch:    false,
		SupportsNVarcharMax:    false,
		UseScopeIdentity:       true,
		PostfetchLastRowID:     true,
		ImplicitReturning:      true,
		FullReturning:          true,
	}
}

// Dialect answers the host toolkit's reflection calls for one database,
// using the management client where the engine has a native command and the
// information-schema bridge otherwise. Either backend may be absent; hooks
// fall back to the other where the original offered both paths.
type Dialect struct {
	db       *sql.DB
	mgmt     MgmtClient
	database string
	caps     Capabilities
	cache    *reflectionCache
	log      *slog.Logger
}

// Option configures a Dialect.
type Option func(*Dialect)

// WithBridge attaches the information-schema bridge connection.
func WithBridge(db *sql.DB) Option {
	return func(d *Dialect) { d.db = db }
}

// WithManagementClient attaches the native management-command client.
func WithManagementClient(c MgmtClient) Option {
	return func(d *Dialect) { d.mgmt = c }
}

// WithLogger overrides the default logger.
func WithLogger(log *slog.Logger) Option {
	return func(d *Dialect) { d.log = log }
}

// New creates a dialect for a database. At least one of WithBridge or
// WithManagementClient must be supplied before the reflection hooks are
// called.
func New(database string, opts ...Option) *Dialect {
	d := &Dialect{
		database: database,
		caps:     DefaultCapabilities(),
		cache:    newReflectionCache(),
		log:      slog.Default(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Capabilities returns the dialect's behavior flags.
func (d *Dialect) Capabilities() Capabilities {
	return d.caps
}

// IsolationLevel reports the fixed isolation level the engine presents.
func (d *Dialect) IsolationLevel() string {
	return "READ COMMITTED"
}

// Database returns the default database reflection runs against.
func (d *Dialect) Database() string {
	return d.database
}

// InvalidateCache drops all memoized reflection results.
func (d *Dialect) InvalidateCache() {
	d.cache.invalidate()
}

// PrimaryKey reflects a table's primary key constraint. Kusto tables have
// none, so the constraint is always empty.
func (d *Dialect) PrimaryKey(_ context.Context, _ string) (types.PrimaryKeyConstraint, error) {
	return types.PrimaryKeyConstraint{Columns: []string{}}, nil
}

// ForeignKeys reflects referential constraints; always empty.
func (d *Dialect) ForeignKeys(_ context.Context, _ string) ([]types.ForeignKeyConstraint, error) {
	return []types.ForeignKeyConstraint{}, nil
}

// Indexes reflects secondary indexes; always empty.
func (d *Dialect) Indexes(_ context.Context, _ string) ([]types.Index, error) {
	return []types.Index{}, nil
}

// TableNames lists the tables in the dialect's database via the management
// client.
func (d *Dialect) TableNames(ctx context.Context) ([]string, error) {
	if cached, ok := cacheGet[[]string](d.cache, "tables", ""); ok {
		return cached, nil
	}
	if d.mgmt == nil {
		return nil, errors.New("no management client configured")
	}
	names, err := d.mgmt.ShowTables(ctx, d.database)
	if err != nil {
		return nil, err
	}
	d.cache.put("tables", "", names)
	return names, nil
}

// HasTable reports whether a table exists, preferring the native command
// and falling back to the information-schema bridge.
func (d *Dialect) HasTable(ctx context.Context, table string) (bool, error) {
	obj := d.splitTable(table)
	if d.mgmt != nil {
		return d.mgmt.TableExists(ctx, obj.Database, obj.Name)
	}
	if d.db == nil {
		return false, errors.New("dialect has neither management client nor bridge")
	}
	return d.hasTableBridge(ctx, obj)
}

func (d *Dialect) splitTable(table string) ObjectName {
	obj := ParseObjectName(table)
	if obj.Database == "" {
		obj.Database = d.database
	}
	return obj
}
