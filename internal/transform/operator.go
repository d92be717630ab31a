// Package transform implements the dataset transformation operators.
// Every operator is a pure function of its input dataset: it computes the
// complete result before returning and never modifies the source.
package transform

import (
	"gocsvlab/domain/core"
	"gocsvlab/domain/dataset"
	"gocsvlab/domain/profiling"
)

// Operator is one parameterized transformation
type Operator interface {
	// Name is the registry name, e.g. "fill_missing"
	Name() string
	Apply(ds *dataset.Dataset, types profiling.TypeMap) (Result, error)
}

// Result carries the transformed dataset and a human-readable action label
type Result struct {
	Data     *dataset.Dataset
	Label    string
	Affected int // rows or cells the operator changed, removed or added
}

func requireColumn(ds *dataset.Dataset, column string) error {
	if column == "" {
		return core.NewInvalidParamsError("column", "is required")
	}
	if !ds.HasColumn(column) {
		return core.NewColumnNotFoundError(column)
	}
	return nil
}

func requireType(ds *dataset.Dataset, types profiling.TypeMap, column string, want profiling.ColumnType) error {
	if err := requireColumn(ds, column); err != nil {
		return err
	}
	if got := types.Of(column); got != want {
		return core.NewColumnTypeError(column, string(want), string(got))
	}
	return nil
}

// coercible returns the finite numeric values of a column, in row order
func coercible(ds *dataset.Dataset, column string) []float64 {
	values, _ := ds.Column(column)
	out := make([]float64, 0, len(values))
	for _, v := range values {
		if f, ok := v.AsFloat64(); ok {
			out = append(out, f)
		}
	}
	return out
}
