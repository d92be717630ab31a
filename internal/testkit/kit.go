package testkit

import (
	"fmt"

	"gocsvlab/domain/dataset"
)

// Records builds loader-shaped records from literal rows. Cells may be
// string (""→missing), int, float64, nil (missing) or a dataset.Value.
func Records(columns []string, rows ...[]any) []dataset.Record {
	out := make([]dataset.Record, len(rows))
	for i, row := range rows {
		rec := make(dataset.Record, 0, len(columns))
		for j, col := range columns {
			var cell any
			if j < len(row) {
				cell = row[j]
			}
			rec = append(rec, dataset.Field{Name: col, Value: ToValue(cell)})
		}
		out[i] = rec
	}
	return out
}

// Dataset builds a dataset directly from literal rows
func Dataset(columns []string, rows ...[]any) *dataset.Dataset {
	return dataset.FromRecords(Records(columns, rows...))
}

// Column builds a single-column dataset
func Column(name string, cells ...any) *dataset.Dataset {
	rows := make([][]any, len(cells))
	for i, c := range cells {
		rows[i] = []any{c}
	}
	return Dataset([]string{name}, rows...)
}

// ToValue converts a Go literal into a cell value
func ToValue(cell any) dataset.Value {
	switch c := cell.(type) {
	case nil:
		return dataset.NewMissingValue()
	case dataset.Value:
		return c
	case string:
		return dataset.NewTextValue(c)
	case int:
		return dataset.NewNumericValue(float64(c))
	case float64:
		return dataset.NewNumericValue(c)
	case bool:
		return dataset.NewTextValue(fmt.Sprintf("%t", c))
	default:
		return dataset.NewTextValue(fmt.Sprint(c))
	}
}

// Strings returns the display form of one column, for compact assertions
func Strings(ds *dataset.Dataset, column string) []string {
	values, ok := ds.Column(column)
	if !ok {
		return nil
	}
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = v.String()
	}
	return out
}
