package types

// ColumnDescriptor is the column shape handed back to the host toolkit's
// reflection layer. Kusto tables have no defaults, identity columns, or
// NOT NULL constraints, so Nullable is always true and AutoIncrement is
// always false on reflected columns.
type ColumnDescriptor struct {
	Name          string         `json:"name" yaml:"name"`
	Type          TypeDescriptor `json:"type" yaml:"type"`
	Nullable      bool           `json:"nullable" yaml:"nullable"`
	Default       *string        `json:"default,omitempty" yaml:"default,omitempty"`
	AutoIncrement bool           `json:"autoIncrement" yaml:"autoIncrement"`
}

// PrimaryKeyConstraint describes a table's primary key. Kusto has no key
// constraints, so reflection always produces the empty constraint.
type PrimaryKeyConstraint struct {
	Name    string   `json:"name,omitempty" yaml:"name,omitempty"`
	Columns []string `json:"columns" yaml:"columns"`
}

// ForeignKeyConstraint describes a referential constraint.
type ForeignKeyConstraint struct {
	Name              string   `json:"name,omitempty" yaml:"name,omitempty"`
	Columns           []string `json:"columns" yaml:"columns"`
	ReferredTable     string   `json:"referredTable" yaml:"referredTable"`
	ReferredColumns   []string `json:"referredColumns" yaml:"referredColumns"`
	ReferredSchema    string   `json:"referredSchema,omitempty" yaml:"referredSchema,omitempty"`
	OnUpdate, OnDelete string  `json:"-" yaml:"-"`
}

// Index describes a secondary index.
type Index struct {
	Name    string   `json:"name" yaml:"name"`
	Columns []string `json:"columns" yaml:"columns"`
	Unique  bool     `json:"unique" yaml:"unique"`
}

// TableMetadata is the assembled result of reflecting a single table.
type TableMetadata struct {
	Name        string                 `json:"name" yaml:"name"`
	Columns     []ColumnDescriptor     `json:"columns" yaml:"columns"`
	PrimaryKey  PrimaryKeyConstraint   `json:"primaryKey" yaml:"primaryKey"`
	ForeignKeys []ForeignKeyConstraint `json:"foreignKeys" yaml:"foreignKeys"`
	Indexes     []Index                `json:"indexes" yaml:"indexes"`
}

// NewColumnDescriptor builds a descriptor with the fixed Kusto column
// properties applied.
func NewColumnDescriptor(name string, typ TypeDescriptor) ColumnDescriptor {
	return ColumnDescriptor{
		Name:          name,
		Type:          typ,
		Nullable:      true,
		Default:       nil,
		AutoIncrement: false,
	}
}
