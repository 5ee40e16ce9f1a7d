package inspect

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexkyllo/kqlalchemy/pkg/dialect"
	"github.com/alexkyllo/kqlalchemy/pkg/kusto"
)

type fakeMgmt struct {
	tables map[string][]kusto.TableSchemaRow
}

func (f *fakeMgmt) ShowTable(_ context.Context, _, table string) ([]kusto.TableSchemaRow, error) {
	return f.tables[table], nil
}

func (f *fakeMgmt) ShowTables(_ context.Context, _ string) ([]string, error) {
	names := make([]string, 0, len(f.tables))
	for name := range f.tables {
		names = append(names, name)
	}
	return names, nil
}

func (f *fakeMgmt) TableExists(_ context.Context, _, table string) (bool, error) {
	_, ok := f.tables[table]
	return ok, nil
}

func TestTable(t *testing.T) {
	fake := &fakeMgmt{tables: map[string][]kusto.TableSchemaRow{
		"StormEvents": {
			{AttributeName: "StartTime", AttributeType: "DateTime"},
			{AttributeName: "State", AttributeType: "StringBuffer"},
		},
	}}
	d := dialect.New("Samples", dialect.WithManagementClient(fake))

	meta, err := Table(context.Background(), d, "StormEvents")
	require.NoError(t, err)

	assert.Equal(t, "StormEvents", meta.Name)
	require.Len(t, meta.Columns, 2)
	assert.Equal(t, "StartTime", meta.Columns[0].Name)
	assert.Equal(t, "datetime2", meta.Columns[0].Type.Name)

	// constraint reflection is always empty on this engine
	assert.Empty(t, meta.PrimaryKey.Columns)
	assert.Empty(t, meta.ForeignKeys)
	assert.Empty(t, meta.Indexes)
}

func TestTable_NotFound(t *testing.T) {
	fake := &fakeMgmt{tables: map[string][]kusto.TableSchemaRow{}}
	d := dialect.New("Samples", dialect.WithManagementClient(fake))

	_, err := Table(context.Background(), d, "NoSuchTable")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
