package export

import (
	"fmt"
	"io"
	"math"

	"github.com/xuri/excelize/v2"

	"gocsvlab/domain/dataset"
	"gocsvlab/domain/profiling"
	"gocsvlab/domain/snapshot"
)

// Sheet names of the exported workbook
const (
	DataSheet       = "Data"
	StatisticsSheet = "Statistics"
)

var statisticsHeader = []interface{}{
	"Column", "Type", "Count", "Missing", "Missing %",
	"Mean", "Median", "Min", "Max", "Std", "Unique", "Mode",
}

// WriteXLSX writes a workbook with the rows on the Data sheet (numeric
// cells typed as numbers) and one row per column on the Statistics sheet
func WriteXLSX(w io.Writer, state *snapshot.DatasetState) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), DataSheet); err != nil {
		return fmt.Errorf("failed to name data sheet: %w", err)
	}
	if err := writeDataSheet(f, state); err != nil {
		return err
	}
	if _, err := f.NewSheet(StatisticsSheet); err != nil {
		return fmt.Errorf("failed to create statistics sheet: %w", err)
	}
	if err := writeStatisticsSheet(f, state); err != nil {
		return err
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func writeDataSheet(f *excelize.File, state *snapshot.DatasetState) error {
	ds := state.Data
	columns := ds.Columns()
	numeric := make([]bool, len(columns))
	header := make([]interface{}, len(columns))
	for j, c := range columns {
		header[j] = c
		numeric[j] = state.Types.Of(c) == profiling.TypeNumeric
	}
	if err := setRow(f, DataSheet, 1, header); err != nil {
		return err
	}

	for i := 0; i < ds.NumRows(); i++ {
		row := ds.Row(i)
		cells := make([]interface{}, len(row))
		for j, v := range row {
			cells[j] = cellValue(v, numeric[j])
		}
		if err := setRow(f, DataSheet, i+2, cells); err != nil {
			return err
		}
	}
	return nil
}

func writeStatisticsSheet(f *excelize.File, state *snapshot.DatasetState) error {
	if err := setRow(f, StatisticsSheet, 1, statisticsHeader); err != nil {
		return err
	}

	for i, col := range state.Columns() {
		s := state.Statistics[col]
		cells := []interface{}{col, string(state.Types.Of(col)), s.Count, s.NullCount, number(s.NullPercentage)}
		if n := s.Numeric; n != nil {
			cells = append(cells, number(n.Mean), number(n.Median), number(n.Min), number(n.Max), number(n.Std))
		} else {
			cells = append(cells, nil, nil, nil, nil, nil)
		}
		if c := s.Categorical; c != nil {
			cells = append(cells, c.Unique, c.Mode)
		}
		if err := setRow(f, StatisticsSheet, i+2, cells); err != nil {
			return err
		}
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, cells []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
		return fmt.Errorf("failed to write %s row %d: %w", sheet, row, err)
	}
	return nil
}

// cellValue writes numeric values and coercible cells of numeric columns
// as numbers. NaN and infinities stay text since xlsx cannot hold them.
func cellValue(v dataset.Value, numericColumn bool) interface{} {
	if v.IsMissing() {
		return nil
	}
	if v.IsNumeric() || numericColumn {
		if f, ok := v.AsFloat64(); ok {
			return f
		}
	}
	return v.String()
}

func number(f float64) interface{} {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return dataset.FormatNumber(f)
	}
	return f
}
