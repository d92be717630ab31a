package transform

import (
	"fmt"
	"math"
	"sort"

	"gocsvlab/domain/core"
	"gocsvlab/domain/dataset"
	"gocsvlab/domain/profiling"
)

// FillMissing replaces missing values in Column with the literal Value
type FillMissing struct {
	Column string
	Value  string
}

func (FillMissing) Name() string { return "fill_missing" }

func (op FillMissing) Apply(ds *dataset.Dataset, _ profiling.TypeMap) (Result, error) {
	if err := requireColumn(ds, op.Column); err != nil {
		return Result{}, err
	}
	if op.Value == "" {
		return Result{}, core.NewInvalidParamsError("value", "is required")
	}

	filled := 0
	fill := dataset.NewTextValue(op.Value)
	next, err := ds.ReplaceColumn(op.Column, func(_ int, v dataset.Value) dataset.Value {
		if v.IsMissing() {
			filled++
			return fill
		}
		return v
	})
	if err != nil {
		return Result{}, err
	}
	return Result{Data: next, Label: fmt.Sprintf("Filled missing values in %s", op.Column), Affected: filled}, nil
}

// RemoveDuplicates keeps the first occurrence of every distinct row
type RemoveDuplicates struct{}

func (RemoveDuplicates) Name() string { return "remove_duplicates" }

func (RemoveDuplicates) Apply(ds *dataset.Dataset, _ profiling.TypeMap) (Result, error) {
	seen := make(map[string]struct{}, ds.NumRows())
	next := ds.Filter(func(_ int, row dataset.Row) bool {
		key := row.Key()
		if _, dup := seen[key]; dup {
			return false
		}
		seen[key] = struct{}{}
		return true
	})
	removed := ds.NumRows() - next.NumRows()
	return Result{Data: next, Label: fmt.Sprintf("Removed %d duplicate rows", removed), Affected: removed}, nil
}

// RemoveOutliers drops rows outside the 1.5×IQR whiskers of a numeric
// column. Q1 and Q3 are the sorted values at floor(0.25n) and floor(0.75n).
// Rows whose value does not coerce are dropped as well.
type RemoveOutliers struct {
	Column string
}

func (RemoveOutliers) Name() string { return "remove_outliers" }

func (op RemoveOutliers) Apply(ds *dataset.Dataset, types profiling.TypeMap) (Result, error) {
	if err := requireType(ds, types, op.Column, profiling.TypeNumeric); err != nil {
		return Result{}, err
	}

	lower, upper := iqrBounds(coercible(ds, op.Column))
	j, _ := ds.ColumnIndex(op.Column)
	next := ds.Filter(func(_ int, row dataset.Row) bool {
		f, ok := row[j].AsFloat64()
		return ok && f >= lower && f <= upper
	})
	removed := ds.NumRows() - next.NumRows()
	return Result{Data: next, Label: fmt.Sprintf("Removed %d outliers from %s", removed, op.Column), Affected: removed}, nil
}

// iqrBounds returns NaN bounds when there are no values, which rejects every row
func iqrBounds(values []float64) (float64, float64) {
	n := len(values)
	if n == 0 {
		return math.NaN(), math.NaN()
	}
	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	q1 := sorted[int(math.Floor(float64(n)*0.25))]
	q3 := sorted[int(math.Floor(float64(n)*0.75))]
	iqr := q3 - q1
	return q1 - 1.5*iqr, q3 + 1.5*iqr
}

// DropColumn removes a column from the dataset
type DropColumn struct {
	Column string
}

func (DropColumn) Name() string { return "drop_column" }

func (op DropColumn) Apply(ds *dataset.Dataset, _ profiling.TypeMap) (Result, error) {
	if err := requireColumn(ds, op.Column); err != nil {
		return Result{}, err
	}
	next, err := ds.WithoutColumn(op.Column)
	if err != nil {
		return Result{}, err
	}
	return Result{Data: next, Label: fmt.Sprintf("Dropped column %s", op.Column), Affected: 1}, nil
}
