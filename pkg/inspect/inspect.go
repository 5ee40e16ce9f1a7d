// Package inspect assembles full table metadata from the dialect's
// individual reflection hooks.
package inspect

import (
	"context"

	"github.com/pkg/errors"

	"github.com/alexkyllo/kqlalchemy/pkg/dialect"
	"github.com/alexkyllo/kqlalchemy/pkg/types"
)

// Table reflects one table: columns plus the (empty) key and index
// constraints, in the shape the host toolkit binds to a table object.
func Table(ctx context.Context, d *dialect.Dialect, name string) (*types.TableMetadata, error) {
	ok, err := d.HasTable(ctx, name)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.Errorf("table %q not found in database %q", name, d.Database())
	}

	cols, err := d.Columns(ctx, name)
	if err != nil {
		return nil, err
	}
	pk, err := d.PrimaryKey(ctx, name)
	if err != nil {
		return nil, err
	}
	fks, err := d.ForeignKeys(ctx, name)
	if err != nil {
		return nil, err
	}
	idxs, err := d.Indexes(ctx, name)
	if err != nil {
		return nil, err
	}

	return &types.TableMetadata{
		Name:        name,
		Columns:     cols,
		PrimaryKey:  pk,
		ForeignKeys: fks,
		Indexes:     idxs,
	}, nil
}
