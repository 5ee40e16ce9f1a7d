package kusto

import (
	"github.com/Azure/azure-kusto-go/azkustodata/query"
	v1 "github.com/Azure/azure-kusto-go/azkustodata/query/v1"
	"github.com/pkg/errors"
)

// primaryRows decodes the primary result table of a management-command
// response into a slice of row structs.
func primaryRows[T any](ds v1.Dataset) ([]T, error) {
	tables := ds.Tables()
	if len(tables) == 0 {
		return nil, errors.New("management command returned no tables")
	}
	rows, err := query.ToStructs[T](tables[0])
	if err != nil {
		return nil, errors.Wrap(err, "decoding management command rows")
	}
	return rows, nil
}
