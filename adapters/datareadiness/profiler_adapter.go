package datareadiness

import (
	"sort"

	"github.com/montanaflynn/stats"

	"gocsvlab/adapters/datareadiness/coercer"
	"gocsvlab/domain/dataset"
	"gocsvlab/domain/profiling"
)

// ProfilerAdapter implements ProfilerPort: type inference and statistics
type ProfilerAdapter struct {
	coercer *coercer.TypeCoercer
}

// NewProfilerAdapter creates a profiler using the default coercion rules
func NewProfilerAdapter() *ProfilerAdapter {
	return NewProfilerAdapterWithCoercer(coercer.NewTypeCoercer(coercer.DefaultCoercionConfig()))
}

// NewProfilerAdapterWithCoercer creates a profiler with custom coercion rules
func NewProfilerAdapterWithCoercer(c *coercer.TypeCoercer) *ProfilerAdapter {
	return &ProfilerAdapter{coercer: c}
}

// InferTypes classifies every column from its non-missing values:
// numeric if all coerce to finite numbers, else date if all parse as
// dates, else categorical. Columns with no values are unknown.
func (p *ProfilerAdapter) InferTypes(ds *dataset.Dataset) profiling.TypeMap {
	types := make(profiling.TypeMap, ds.NumColumns())
	for j, col := range ds.Columns() {
		types[col] = p.inferColumn(ds, j)
	}
	return types
}

func (p *ProfilerAdapter) inferColumn(ds *dataset.Dataset, j int) profiling.ColumnType {
	present := 0
	numeric := true
	for i := 0; i < ds.NumRows(); i++ {
		v := ds.Row(i)[j]
		if v.IsMissing() {
			continue
		}
		present++
		if numeric && !p.coercer.IsNumeric(v) {
			numeric = false
		}
	}

	switch {
	case present == 0:
		return profiling.TypeUnknown
	case numeric:
		return profiling.TypeNumeric
	}

	for i := 0; i < ds.NumRows(); i++ {
		v := ds.Row(i)[j]
		if !v.IsMissing() && !p.coercer.IsDate(v) {
			return profiling.TypeCategorical
		}
	}
	return profiling.TypeDate
}

// ComputeStatistics profiles every column against its declared type.
// It never fails: empty datasets yield zero counts and values that do not
// coerce are dropped, leaving the extended block nil when none remain.
func (p *ProfilerAdapter) ComputeStatistics(ds *dataset.Dataset, types profiling.TypeMap) profiling.StatisticsMap {
	out := make(profiling.StatisticsMap, ds.NumColumns())
	for j, col := range ds.Columns() {
		out[col] = p.columnStatistics(ds, j, types.Of(col))
	}
	return out
}

func (p *ProfilerAdapter) columnStatistics(ds *dataset.Dataset, j int, colType profiling.ColumnType) profiling.ColumnStatistics {
	total := ds.NumRows()
	s := profiling.ColumnStatistics{Type: colType}

	present := make([]dataset.Value, 0, total)
	for i := 0; i < total; i++ {
		v := ds.Row(i)[j]
		if v.IsMissing() {
			s.NullCount++
			continue
		}
		present = append(present, v)
	}
	s.Count = len(present)
	if total > 0 {
		s.NullPercentage = float64(s.NullCount) / float64(total) * 100
	}

	switch colType {
	case profiling.TypeNumeric:
		s.Numeric = computeNumericStats(present)
	case profiling.TypeCategorical:
		s.Categorical = computeCategoricalStats(present, s.Count)
	}
	return s
}

// computeNumericStats returns nil when no value coerces. The median is
// the element at index n/2 of the sorted values, for odd and even n alike.
func computeNumericStats(values []dataset.Value) *profiling.NumericStats {
	nums := make(stats.Float64Data, 0, len(values))
	for _, v := range values {
		if f, ok := v.AsFloat64(); ok {
			nums = append(nums, f)
		}
	}
	if len(nums) == 0 {
		return nil
	}

	mean, err := stats.Mean(nums)
	if err != nil {
		return nil
	}
	minVal, _ := stats.Min(nums)
	maxVal, _ := stats.Max(nums)
	std, _ := stats.StandardDeviationPopulation(nums)

	sorted := make([]float64, len(nums))
	copy(sorted, nums)
	sort.Float64s(sorted)

	// summation rounding can land the mean a ulp outside the range
	if mean < minVal {
		mean = minVal
	} else if mean > maxVal {
		mean = maxVal
	}

	return &profiling.NumericStats{
		Mean:   mean,
		Median: sorted[len(sorted)/2],
		Min:    minVal,
		Max:    maxVal,
		Std:    std,
	}
}

// computeCategoricalStats counts values in first-seen order. The mode is
// the first value reaching the highest count.
func computeCategoricalStats(values []dataset.Value, count int) *profiling.CategoricalStats {
	if len(values) == 0 {
		return nil
	}

	index := make(map[string]int)
	counts := make([]profiling.ValueCount, 0)
	for _, v := range values {
		key := v.String()
		if i, ok := index[key]; ok {
			counts[i].Count++
			continue
		}
		index[key] = len(counts)
		counts = append(counts, profiling.ValueCount{Value: key, Count: 1})
	}

	mode := counts[0]
	for _, vc := range counts[1:] {
		if vc.Count > mode.Count {
			mode = vc
		}
	}

	return &profiling.CategoricalStats{
		Unique:           len(counts),
		UniquePercentage: float64(len(counts)) / float64(count) * 100,
		Mode:             mode.Value,
		ValueCounts:      counts,
	}
}
