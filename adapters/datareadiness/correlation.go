package datareadiness

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"gocsvlab/domain/dataset"
	"gocsvlab/domain/profiling"
)

// Correlations computes the Pearson coefficient for every pair of numeric
// columns over the rows where both values coerce. Pairs with fewer than
// two such rows get NaN.
func (p *ProfilerAdapter) Correlations(ds *dataset.Dataset, types profiling.TypeMap) []profiling.Correlation {
	var numeric []string
	for _, col := range ds.Columns() {
		if types.Of(col) == profiling.TypeNumeric {
			numeric = append(numeric, col)
		}
	}

	out := make([]profiling.Correlation, 0, len(numeric)*(len(numeric)-1)/2)
	for a := 0; a < len(numeric); a++ {
		for b := a + 1; b < len(numeric); b++ {
			out = append(out, pearson(ds, numeric[a], numeric[b]))
		}
	}
	return out
}

func pearson(ds *dataset.Dataset, colA, colB string) profiling.Correlation {
	ia, _ := ds.ColumnIndex(colA)
	ib, _ := ds.ColumnIndex(colB)

	xs := make([]float64, 0, ds.NumRows())
	ys := make([]float64, 0, ds.NumRows())
	for i := 0; i < ds.NumRows(); i++ {
		row := ds.Row(i)
		x, okX := row[ia].AsFloat64()
		y, okY := row[ib].AsFloat64()
		if okX && okY {
			xs = append(xs, x)
			ys = append(ys, y)
		}
	}

	c := profiling.Correlation{ColumnA: colA, ColumnB: colB, Pairs: len(xs), Coefficient: math.NaN()}
	if len(xs) >= 2 {
		c.Coefficient = stat.Correlation(xs, ys, nil)
	}
	return c
}
