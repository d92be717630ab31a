package ports

import (
	"gocsvlab/domain/dataset"
	"gocsvlab/domain/profiling"
)

// ProfilerPort infers column types and computes descriptive statistics.
// Implementations are pure and never fail.
type ProfilerPort interface {
	InferTypes(ds *dataset.Dataset) profiling.TypeMap
	ComputeStatistics(ds *dataset.Dataset, types profiling.TypeMap) profiling.StatisticsMap
	Correlations(ds *dataset.Dataset, types profiling.TypeMap) []profiling.Correlation
}
