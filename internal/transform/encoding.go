package transform

import (
	"fmt"

	"gocsvlab/domain/dataset"
	"gocsvlab/domain/profiling"
)

// OneHotEncode adds a 0/1 indicator column "<column>_<value>" for every
// distinct non-missing value of a categorical column, in first-seen
// order. The source column is kept. An indicator whose name is already a
// column overwrites that column's values.
type OneHotEncode struct {
	Column string
}

func (OneHotEncode) Name() string { return "one_hot_encode" }

func (op OneHotEncode) Apply(ds *dataset.Dataset, types profiling.TypeMap) (Result, error) {
	if err := requireType(ds, types, op.Column, profiling.TypeCategorical); err != nil {
		return Result{}, err
	}

	values, _ := ds.Column(op.Column)
	index := make(map[string]int)
	var distinct []string
	for _, v := range values {
		if v.IsMissing() {
			continue
		}
		key := v.String()
		if _, ok := index[key]; !ok {
			index[key] = len(distinct)
			distinct = append(distinct, key)
		}
	}

	names := make([]string, len(distinct))
	indicators := make([][]dataset.Value, len(distinct))
	zero, one := dataset.NewNumericValue(0), dataset.NewNumericValue(1)
	for k, d := range distinct {
		names[k] = fmt.Sprintf("%s_%s", op.Column, d)
		col := make([]dataset.Value, len(values))
		for i := range col {
			col[i] = zero
		}
		indicators[k] = col
	}
	for i, v := range values {
		if v.IsMissing() {
			continue
		}
		indicators[index[v.String()]][i] = one
	}

	next, err := ds.WithColumns(names, indicators)
	if err != nil {
		return Result{}, err
	}
	return Result{Data: next, Label: fmt.Sprintf("One-hot encoded column %s", op.Column), Affected: len(names)}, nil
}
