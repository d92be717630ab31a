package profiling

// Overview summarizes a dataset's shape and completeness
type Overview struct {
	TotalRows          int      `json:"total_rows"`
	TotalColumns       int      `json:"total_columns"`
	NumericColumns     int      `json:"numeric_columns"`
	CategoricalColumns int      `json:"categorical_columns"`
	DateColumns        int      `json:"date_columns"`
	UnknownColumns     int      `json:"unknown_columns"`
	TotalMissing       int      `json:"total_missing"`
	TotalCells         int      `json:"total_cells"`
	Completeness       float64  `json:"completeness"`  // percent of non-missing cells
	QualityScore       float64  `json:"quality_score"` // 100 * (1 - missing/cells)
	ColumnsWithMissing []string `json:"columns_with_missing"`
}

// NewOverview aggregates per-column types and statistics. A dataset with
// no cells scores 100.
func NewOverview(rows int, columns []string, types TypeMap, stats StatisticsMap) Overview {
	o := Overview{
		TotalRows:          rows,
		TotalColumns:       len(columns),
		TotalCells:         rows * len(columns),
		ColumnsWithMissing: []string{},
	}

	for _, col := range columns {
		switch types.Of(col) {
		case TypeNumeric:
			o.NumericColumns++
		case TypeCategorical:
			o.CategoricalColumns++
		case TypeDate:
			o.DateColumns++
		default:
			o.UnknownColumns++
		}
		if s, ok := stats[col]; ok && s.NullCount > 0 {
			o.TotalMissing += s.NullCount
			o.ColumnsWithMissing = append(o.ColumnsWithMissing, col)
		}
	}

	o.QualityScore = QualityScore(o.TotalMissing, o.TotalCells)
	o.Completeness = o.QualityScore
	return o
}

// QualityScore returns 100 * (1 - missing/cells), or 100 for an empty table
func QualityScore(missing, cells int) float64 {
	if cells == 0 {
		return 100
	}
	return 100 * (1 - float64(missing)/float64(cells))
}
