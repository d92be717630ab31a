package transform

import (
	"fmt"

	"github.com/montanaflynn/stats"

	"gocsvlab/domain/dataset"
	"gocsvlab/domain/profiling"
)

// Normalize rescales a numeric column to [0, 1] with (v-min)/(max-min).
// A constant column divides by zero and yields NaN, which is kept.
type Normalize struct {
	Column string
}

func (Normalize) Name() string { return "normalize" }

func (op Normalize) Apply(ds *dataset.Dataset, types profiling.TypeMap) (Result, error) {
	if err := requireType(ds, types, op.Column, profiling.TypeNumeric); err != nil {
		return Result{}, err
	}

	values := coercible(ds, op.Column)
	minVal, _ := stats.Min(values)
	maxVal, _ := stats.Max(values)
	span := maxVal - minVal

	next, changed, err := rescale(ds, op.Column, func(f float64) float64 {
		return (f - minVal) / span
	})
	if err != nil {
		return Result{}, err
	}
	return Result{Data: next, Label: fmt.Sprintf("Normalized column %s", op.Column), Affected: changed}, nil
}

// Standardize rewrites a numeric column as z-scores (v-mean)/std using the
// population standard deviation. A constant column yields NaN.
type Standardize struct {
	Column string
}

func (Standardize) Name() string { return "standardize" }

func (op Standardize) Apply(ds *dataset.Dataset, types profiling.TypeMap) (Result, error) {
	if err := requireType(ds, types, op.Column, profiling.TypeNumeric); err != nil {
		return Result{}, err
	}

	values := coercible(ds, op.Column)
	mean, _ := stats.Mean(values)
	std, _ := stats.StandardDeviationPopulation(values)

	next, changed, err := rescale(ds, op.Column, func(f float64) float64 {
		return (f - mean) / std
	})
	if err != nil {
		return Result{}, err
	}
	return Result{Data: next, Label: fmt.Sprintf("Standardized column %s", op.Column), Affected: changed}, nil
}

// rescale maps every coercible value through fn; other values are left as they are
func rescale(ds *dataset.Dataset, column string, fn func(float64) float64) (*dataset.Dataset, int, error) {
	changed := 0
	next, err := ds.ReplaceColumn(column, func(_ int, v dataset.Value) dataset.Value {
		f, ok := v.AsFloat64()
		if !ok {
			return v
		}
		changed++
		return dataset.NewNumericValue(fn(f))
	})
	return next, changed, err
}
