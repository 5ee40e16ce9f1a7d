package query

import "time"

// Frame is a column-named result set, the reshaped output of a pass-through
// query. Rows are row-major; every row has one value per column.
type Frame struct {
	Columns []string `json:"columns" yaml:"columns"`
	Rows    [][]any  `json:"rows" yaml:"rows"`
}

// NumRows returns the row count.
func (f *Frame) NumRows() int {
	return len(f.Rows)
}

// NumCols returns the column count.
func (f *Frame) NumCols() int {
	return len(f.Columns)
}

// Column returns the values of one column by name, or nil if absent.
func (f *Frame) Column(name string) []any {
	idx := -1
	for i, c := range f.Columns {
		if c == name {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}
	vals := make([]any, len(f.Rows))
	for i, row := range f.Rows {
		vals[i] = row[idx]
	}
	return vals
}

// convertValue normalizes driver scan values for output: byte slices become
// strings and timestamps are rendered RFC 3339, so the frame marshals
// cleanly to JSON and YAML.
func convertValue(v any) any {
	switch x := v.(type) {
	case []byte:
		return string(x)
	case time.Time:
		return x.Format(time.RFC3339Nano)
	default:
		return v
	}
}
