package types

import (
	"database/sql"
	"log/slog"
	"strings"
)

// Kind classifies a relational type family the way the host toolkit does.
type Kind int

const (
	KindNull Kind = iota
	KindBit
	KindTinyInt
	KindSmallInt
	KindInt
	KindBigInt
	KindReal
	KindFloat
	KindDecimal
	KindNumeric
	KindMoney
	KindSmallMoney
	KindChar
	KindNChar
	KindVarchar
	KindNVarchar
	KindText
	KindNText
	KindBinary
	KindVarBinary
	KindImage
	KindDate
	KindTime
	KindDateTime
	KindDateTime2
	KindSmallDateTime
	KindDateTimeOffset
	KindUniqueIdentifier
)

// defaultCollation is applied to reflected string columns; Kusto string
// comparison is case sensitive, unlike the SQL Server default.
const defaultCollation = "SQL_Latin1_General_CP1_CS_AS"

// realPrecision is the binary precision of a Kusto real (IEEE 754 double).
const realPrecision = 53

// IsString reports whether the kind is a character or binary string family
// member, which carries length and collation instead of precision.
func (k Kind) IsString() bool {
	switch k {
	case KindChar, KindNChar, KindVarchar, KindNVarchar, KindText, KindNText,
		KindBinary, KindVarBinary, KindImage:
		return true
	}
	return false
}

// IsNumeric reports whether the kind carries precision.
func (k Kind) IsNumeric() bool {
	switch k {
	case KindTinyInt, KindSmallInt, KindInt, KindBigInt, KindReal, KindFloat,
		KindDecimal, KindNumeric, KindMoney, KindSmallMoney:
		return true
	}
	return false
}

// IsFloat reports whether the kind is an inexact numeric, which carries
// precision but never scale.
func (k Kind) IsFloat() bool {
	return k == KindReal || k == KindFloat
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "NULL"
}

var kindNames = map[Kind]string{
	KindNull:             "NULL",
	KindBit:              "bit",
	KindTinyInt:          "tinyint",
	KindSmallInt:         "smallint",
	KindInt:              "int",
	KindBigInt:           "bigint",
	KindReal:             "real",
	KindFloat:            "float",
	KindDecimal:          "decimal",
	KindNumeric:          "numeric",
	KindMoney:            "money",
	KindSmallMoney:       "smallmoney",
	KindChar:             "char",
	KindNChar:            "nchar",
	KindVarchar:          "varchar",
	KindNVarchar:         "nvarchar",
	KindText:             "text",
	KindNText:            "ntext",
	KindBinary:           "binary",
	KindVarBinary:        "varbinary",
	KindImage:            "image",
	KindDate:             "date",
	KindTime:             "time",
	KindDateTime:         "datetime",
	KindDateTime2:        "datetime2",
	KindSmallDateTime:    "smalldatetime",
	KindDateTimeOffset:   "datetimeoffset",
	KindUniqueIdentifier: "uniqueidentifier",
}

// ischemaNames maps the data_type strings reported by information_schema
// to type kinds, mirroring the SQL Server name set the bridge exposes.
var ischemaNames = map[string]Kind{
	"bit":              KindBit,
	"tinyint":          KindTinyInt,
	"smallint":         KindSmallInt,
	"int":              KindInt,
	"bigint":           KindBigInt,
	"real":             KindReal,
	"float":            KindFloat,
	"decimal":          KindDecimal,
	"numeric":          KindNumeric,
	"money":            KindMoney,
	"smallmoney":       KindSmallMoney,
	"char":             KindChar,
	"nchar":            KindNChar,
	"varchar":          KindVarchar,
	"nvarchar":         KindNVarchar,
	"text":             KindText,
	"ntext":            KindNText,
	"binary":           KindBinary,
	"varbinary":        KindVarBinary,
	"image":            KindImage,
	"date":             KindDate,
	"time":             KindTime,
	"datetime":         KindDateTime,
	"datetime2":        KindDateTime2,
	"smalldatetime":    KindSmallDateTime,
	"datetimeoffset":   KindDateTimeOffset,
	"uniqueidentifier": KindUniqueIdentifier,
}

// kustoAttributeNames maps the internal column type tags returned by
// `.show table` (the AttributeType field) to the relational type names the
// bridge would report for the same column.
var kustoAttributeNames = map[string]string{
	"I8":           "bit",
	"I16":          "smallint",
	"I32":          "int",
	"I64":          "bigint",
	"R64":          "real",
	"Decimal":      "decimal",
	"StringBuffer": "nvarchar",
	"Dynamic":      "nvarchar",
	"DateTime":     "datetime2",
	"TimeSpan":     "time",
	"UniqueId":     "uniqueidentifier",
}

// TypeDescriptor is the reflected column type: a relational type family tag
// plus the attributes the host toolkit reads off it. A zero-Kind descriptor
// is the null type substituted for unrecognized source types.
type TypeDescriptor struct {
	Kind      Kind   `json:"-" yaml:"-"`
	Name      string `json:"name" yaml:"name"`
	Precision *int64 `json:"precision,omitempty" yaml:"precision,omitempty"`
	Scale     *int64 `json:"scale,omitempty" yaml:"scale,omitempty"`
	Length    *int64 `json:"length,omitempty" yaml:"length,omitempty"`
	Collation string `json:"collation,omitempty" yaml:"collation,omitempty"`
}

// NullType is substituted when a source type name is not recognized.
var NullType = TypeDescriptor{Kind: KindNull, Name: "NULL"}

// IsNull reports whether the descriptor is the null type.
func (t TypeDescriptor) IsNull() bool {
	return t.Kind == KindNull
}

// ResolveColumnType builds a descriptor for a column reported by the
// information-schema bridge. Unrecognized type names log a warning and
// resolve to NullType rather than failing the reflection call.
func ResolveColumnType(column, dataType string, precision, scale sql.NullInt64) TypeDescriptor {
	kind, ok := ischemaNames[strings.ToLower(dataType)]
	if !ok {
		slog.Warn("did not recognize column type", "type", dataType, "column", column)
		return NullType
	}
	t := TypeDescriptor{Kind: kind, Name: kind.String()}
	switch {
	case kind.IsString():
		// length is unbounded on the engine side; only collation applies
		if kind == KindNVarchar {
			t.Collation = defaultCollation
		}
	case kind.IsNumeric():
		if precision.Valid {
			p := precision.Int64
			t.Precision = &p
		}
		if !kind.IsFloat() && scale.Valid {
			s := scale.Int64
			t.Scale = &s
		}
	}
	return t
}

// ResolveKustoType builds a descriptor for a column reported by a
// `.show table` management command, translating the engine's internal
// attribute type tag first. Unknown tags warn and resolve to NullType.
func ResolveKustoType(column, attributeType string) TypeDescriptor {
	name, ok := kustoAttributeNames[attributeType]
	if !ok {
		slog.Warn("did not recognize column type", "type", attributeType, "column", column)
		return NullType
	}
	var precision sql.NullInt64
	if name == "real" {
		precision = sql.NullInt64{Int64: realPrecision, Valid: true}
	}
	// TODO: surface decimal precision/scale once .show table reports them
	return ResolveColumnType(column, name, precision, sql.NullInt64{})
}
