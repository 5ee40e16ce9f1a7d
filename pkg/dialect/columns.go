package dialect

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"

	"github.com/alexkyllo/kqlalchemy/pkg/types"
)

// columnsQuery is the information-schema projection the bridge path runs.
// ordinal_position is selected only for its ORDER BY.
const columnsQuery = `SELECT column_name, data_type, numeric_precision, numeric_scale
FROM information_schema.columns
WHERE table_name = @p1
ORDER BY ordinal_position`

// hasTableQuery checks table presence over the bridge when no management
// client is available.
const hasTableQuery = `SELECT table_name
FROM information_schema.tables
WHERE (table_type = 'BASE TABLE' OR table_type = 'VIEW')
AND table_name = @p1`

// Columns reflects a table's column descriptors, preferring the
// information-schema bridge and falling back to the management client.
func (d *Dialect) Columns(ctx context.Context, table string) ([]types.ColumnDescriptor, error) {
	if cached, ok := cacheGet[[]types.ColumnDescriptor](d.cache, "columns", table); ok {
		return cached, nil
	}
	obj := d.splitTable(table)

	var cols []types.ColumnDescriptor
	var err error
	switch {
	case d.db != nil:
		cols, err = d.columnsBridge(ctx, obj)
	case d.mgmt != nil:
		cols, err = d.columnsManagement(ctx, obj)
	default:
		return nil, errors.New("dialect has neither management client nor bridge")
	}
	if err != nil {
		return nil, err
	}
	d.log.Debug("reflected columns", "table", obj.String(), "count", len(cols))
	d.cache.put("columns", table, cols)
	return cols, nil
}

// ColumnsViaManagement reflects columns through `.show table` regardless of
// whether a bridge connection is attached.
func (d *Dialect) ColumnsViaManagement(ctx context.Context, table string) ([]types.ColumnDescriptor, error) {
	if d.mgmt == nil {
		return nil, errors.New("no management client configured")
	}
	return d.columnsManagement(ctx, d.splitTable(table))
}

func (d *Dialect) columnsBridge(ctx context.Context, obj ObjectName) ([]types.ColumnDescriptor, error) {
	rows, err := d.db.QueryContext(ctx, columnsQuery, sql.Named("p1", obj.Name))
	if err != nil {
		return nil, errors.Wrapf(err, "querying columns of %s", obj)
	}
	defer rows.Close()

	cols := []types.ColumnDescriptor{}
	for rows.Next() {
		var (
			name, dataType   string
			precision, scale sql.NullInt64
		)
		if err := rows.Scan(&name, &dataType, &precision, &scale); err != nil {
			return nil, errors.Wrapf(err, "scanning column row of %s", obj)
		}
		typ := types.ResolveColumnType(name, dataType, precision, scale)
		cols = append(cols, types.NewColumnDescriptor(name, typ))
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrapf(err, "reading columns of %s", obj)
	}
	return cols, nil
}

func (d *Dialect) columnsManagement(ctx context.Context, obj ObjectName) ([]types.ColumnDescriptor, error) {
	attrs, err := d.mgmt.ShowTable(ctx, obj.Database, obj.Name)
	if err != nil {
		return nil, err
	}
	cols := make([]types.ColumnDescriptor, 0, len(attrs))
	for _, attr := range attrs {
		typ := types.ResolveKustoType(attr.AttributeName, attr.AttributeType)
		cols = append(cols, types.NewColumnDescriptor(attr.AttributeName, typ))
	}
	return cols, nil
}

func (d *Dialect) hasTableBridge(ctx context.Context, obj ObjectName) (bool, error) {
	q := hasTableQuery
	args := []any{sql.Named("p1", obj.Name)}
	if obj.Owner != "" {
		q += " AND table_schema = @p2"
		args = append(args, sql.Named("p2", obj.Owner))
	}
	row := d.db.QueryRowContext(ctx, q, args...)
	var name string
	switch err := row.Scan(&name); err {
	case nil:
		return true, nil
	case sql.ErrNoRows:
		return false, nil
	default:
		return false, errors.Wrapf(err, "checking table %s", obj)
	}
}
