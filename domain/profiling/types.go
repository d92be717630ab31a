package profiling

import (
	"encoding/json"
	"math"
	"sort"
)

// ColumnType represents the inferred kind of a column
type ColumnType string

const (
	TypeNumeric     ColumnType = "numeric"
	TypeDate        ColumnType = "date"
	TypeCategorical ColumnType = "categorical"
	TypeUnknown     ColumnType = "unknown"
)

// TypeMap maps column name to inferred type
type TypeMap map[string]ColumnType

// Of returns the type of column, TypeUnknown if absent
func (m TypeMap) Of(column string) ColumnType {
	if t, ok := m[column]; ok {
		return t
	}
	return TypeUnknown
}

// ColumnStatistics holds the descriptive statistics of one column.
// Numeric and Categorical are nil when the column type has no extended
// block or when no value coerced; consumers must check before use.
type ColumnStatistics struct {
	Type           ColumnType        `json:"type"`
	Count          int               `json:"count"`
	NullCount      int               `json:"null_count"`
	NullPercentage float64           `json:"null_percentage"`
	Numeric        *NumericStats     `json:"numeric,omitempty"`
	Categorical    *CategoricalStats `json:"categorical,omitempty"`
}

// NumericStats contains statistics for numeric columns
type NumericStats struct {
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"` // element at floor(n/2) of the sorted values
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Std    float64 `json:"std"` // population standard deviation
}

// CategoricalStats contains statistics for categorical columns
type CategoricalStats struct {
	Unique           int          `json:"unique"`
	UniquePercentage float64      `json:"unique_percentage"`
	Mode             string       `json:"mode"`
	ValueCounts      []ValueCount `json:"value_counts"` // every distinct value, first-seen order
}

// ValueCount represents a value and its frequency
type ValueCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// TopValues returns the n most frequent values, ties in first-seen order
func (c *CategoricalStats) TopValues(n int) []ValueCount {
	if c == nil || n <= 0 {
		return nil
	}
	sorted := make([]ValueCount, len(c.ValueCounts))
	copy(sorted, c.ValueCounts)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Count > sorted[j].Count
	})
	if n < len(sorted) {
		sorted = sorted[:n]
	}
	return sorted
}

// Frequency returns how often value occurs
func (c *CategoricalStats) Frequency(value string) int {
	if c == nil {
		return 0
	}
	for _, vc := range c.ValueCounts {
		if vc.Value == value {
			return vc.Count
		}
	}
	return 0
}

// StatisticsMap maps column name to its statistics
type StatisticsMap map[string]ColumnStatistics

// Correlation is the Pearson coefficient between two numeric columns
type Correlation struct {
	ColumnA     string  `json:"column_a"`
	ColumnB     string  `json:"column_b"`
	Coefficient float64 `json:"-"`
	Pairs       int     `json:"pairs"`
}

// MarshalJSON encodes an undefined coefficient as null
func (c Correlation) MarshalJSON() ([]byte, error) {
	type alias Correlation
	var coef *float64
	if !math.IsNaN(c.Coefficient) && !math.IsInf(c.Coefficient, 0) {
		v := c.Coefficient
		coef = &v
	}
	return json.Marshal(struct {
		alias
		Coefficient *float64 `json:"coefficient"`
	}{alias(c), coef})
}
