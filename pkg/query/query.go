// Package query runs pass-through SQL over the bridge connection and
// reshapes the rows into a column-named frame.
package query

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"
)

// Run executes sqlText over the bridge and collects the full result set.
func Run(ctx context.Context, db *sql.DB, sqlText string, args ...any) (*Frame, error) {
	rows, err := db.QueryContext(ctx, sqlText, args...)
	if err != nil {
		return nil, errors.Wrap(err, "executing query")
	}
	defer rows.Close()
	return collect(rows)
}

func collect(rows *sql.Rows) (*Frame, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, errors.Wrap(err, "reading result columns")
	}

	frame := &Frame{Columns: cols, Rows: [][]any{}}
	for rows.Next() {
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, errors.Wrap(err, "scanning result row")
		}
		for i, v := range values {
			values[i] = convertValue(v)
		}
		frame.Rows = append(frame.Rows, values)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "reading result rows")
	}
	return frame, nil
}
