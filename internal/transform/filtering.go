package transform

import (
	"fmt"
	"strings"

	"gocsvlab/domain/core"
	"gocsvlab/domain/dataset"
	"gocsvlab/domain/profiling"
)

// FilterRows keeps rows whose value in Column contains Contains,
// compared case-insensitively. Missing values compare as "".
type FilterRows struct {
	Column   string
	Contains string
}

func (FilterRows) Name() string { return "filter_rows" }

func (op FilterRows) Apply(ds *dataset.Dataset, _ profiling.TypeMap) (Result, error) {
	if err := requireColumn(ds, op.Column); err != nil {
		return Result{}, err
	}
	if op.Contains == "" {
		return Result{}, core.NewInvalidParamsError("contains", "is required")
	}

	needle := strings.ToLower(op.Contains)
	j, _ := ds.ColumnIndex(op.Column)
	next := ds.Filter(func(_ int, row dataset.Row) bool {
		return strings.Contains(strings.ToLower(row[j].String()), needle)
	})
	return Result{
		Data:     next,
		Label:    fmt.Sprintf(`Filtered rows where %s contains "%s"`, op.Column, op.Contains),
		Affected: ds.NumRows() - next.NumRows(),
	}, nil
}

// CreateIndexColumn appends a column holding the 1-based row position
type CreateIndexColumn struct {
	Column string
}

func (CreateIndexColumn) Name() string { return "create_index_column" }

func (op CreateIndexColumn) Apply(ds *dataset.Dataset, _ profiling.TypeMap) (Result, error) {
	if op.Column == "" {
		return Result{}, core.NewInvalidParamsError("name", "is required")
	}
	if ds.HasColumn(op.Column) {
		return Result{}, core.NewInvalidParamsError("name", fmt.Sprintf("%q already exists", op.Column))
	}

	positions := make([]dataset.Value, ds.NumRows())
	for i := range positions {
		positions[i] = dataset.NewNumericValue(float64(i + 1))
	}
	next, err := ds.WithColumns([]string{op.Column}, [][]dataset.Value{positions})
	if err != nil {
		return Result{}, err
	}
	return Result{Data: next, Label: fmt.Sprintf("Created new column %s", op.Column), Affected: 1}, nil
}
