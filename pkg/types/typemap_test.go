package types

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveKustoType(t *testing.T) {
	tests := []struct {
		attributeType string
		wantName      string
	}{
		{"DateTime", "datetime2"},
		{"I32", "int"},
		{"I64", "bigint"},
		{"StringBuffer", "nvarchar"},
		{"R64", "real"},
		{"I8", "bit"},
		{"I16", "smallint"},
		{"TimeSpan", "time"},
		{"Decimal", "decimal"},
		{"Dynamic", "nvarchar"},
		{"UniqueId", "uniqueidentifier"},
	}

	for _, tt := range tests {
		t.Run(tt.attributeType, func(t *testing.T) {
			got := ResolveKustoType("c", tt.attributeType)
			require.False(t, got.IsNull())
			assert.Equal(t, tt.wantName, got.Name)
		})
	}
}

func TestResolveKustoType_Unknown(t *testing.T) {
	got := ResolveKustoType("c", "Unknown64")
	assert.True(t, got.IsNull())
	assert.Equal(t, NullType, got)
}

func TestResolveKustoType_RealPrecision(t *testing.T) {
	got := ResolveKustoType("ratio", "R64")
	require.NotNil(t, got.Precision)
	assert.Equal(t, int64(53), *got.Precision)
	// floats never carry scale
	assert.Nil(t, got.Scale)
}

func TestResolveKustoType_StringCollation(t *testing.T) {
	got := ResolveKustoType("name", "StringBuffer")
	assert.Equal(t, "SQL_Latin1_General_CP1_CS_AS", got.Collation)
	assert.Nil(t, got.Length)
}

func TestResolveColumnType_NumericPrecisionScale(t *testing.T) {
	got := ResolveColumnType("amount", "decimal",
		sql.NullInt64{Int64: 38, Valid: true},
		sql.NullInt64{Int64: 9, Valid: true})
	require.NotNil(t, got.Precision)
	require.NotNil(t, got.Scale)
	assert.Equal(t, int64(38), *got.Precision)
	assert.Equal(t, int64(9), *got.Scale)
}

func TestResolveColumnType_FloatDropsScale(t *testing.T) {
	got := ResolveColumnType("value", "float",
		sql.NullInt64{Int64: 53, Valid: true},
		sql.NullInt64{Int64: 0, Valid: true})
	require.NotNil(t, got.Precision)
	assert.Nil(t, got.Scale)
}

func TestResolveColumnType_NullPrecision(t *testing.T) {
	got := ResolveColumnType("n", "int", sql.NullInt64{}, sql.NullInt64{})
	assert.Equal(t, KindInt, got.Kind)
	assert.Nil(t, got.Precision)
	assert.Nil(t, got.Scale)
}

func TestResolveColumnType_CaseInsensitive(t *testing.T) {
	got := ResolveColumnType("n", "NVARCHAR", sql.NullInt64{}, sql.NullInt64{})
	assert.Equal(t, KindNVarchar, got.Kind)
}

func TestResolveColumnType_Unknown(t *testing.T) {
	got := ResolveColumnType("n", "geography", sql.NullInt64{}, sql.NullInt64{})
	assert.True(t, got.IsNull())
}

func TestKindFamilies(t *testing.T) {
	assert.True(t, KindNVarchar.IsString())
	assert.True(t, KindVarBinary.IsString())
	assert.False(t, KindInt.IsString())

	assert.True(t, KindDecimal.IsNumeric())
	assert.True(t, KindBigInt.IsNumeric())
	assert.False(t, KindDateTime2.IsNumeric())

	assert.True(t, KindReal.IsFloat())
	assert.True(t, KindFloat.IsFloat())
	assert.False(t, KindDecimal.IsFloat())
}

func TestNewColumnDescriptor(t *testing.T) {
	col := NewColumnDescriptor("id", ResolveKustoType("id", "I64"))
	assert.Equal(t, "id", col.Name)
	assert.True(t, col.Nullable)
	assert.Nil(t, col.Default)
	assert.False(t, col.AutoIncrement)
}
