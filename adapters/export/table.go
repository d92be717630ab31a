package export

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"gocsvlab/domain/snapshot"
)

// RenderStatisticsTable renders one row per column with its type, counts
// and the numeric or categorical summary, for terminal output
func RenderStatisticsTable(state *snapshot.DatasetState) string {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"Column", "Type", "Count", "Missing", "Mean", "Median", "Min", "Max", "Std", "Unique", "Mode"})

	for _, col := range state.Columns() {
		s := state.Statistics[col]
		row := table.Row{col, string(state.Types.Of(col)), s.Count, fmt.Sprintf("%d (%.1f%%)", s.NullCount, s.NullPercentage)}
		if n := s.Numeric; n != nil {
			row = append(row, decimal(n.Mean), decimal(n.Median), decimal(n.Min), decimal(n.Max), decimal(n.Std))
		} else {
			row = append(row, "", "", "", "", "")
		}
		if c := s.Categorical; c != nil {
			row = append(row, c.Unique, c.Mode)
		} else {
			row = append(row, "", "")
		}
		t.AppendRow(row)
	}

	ov := state.Overview()
	t.AppendFooter(table.Row{"", "", ov.TotalRows, ov.TotalMissing, "", "", "", "", "",
		"quality", fmt.Sprintf("%.1f%%", ov.QualityScore)})

	t.SetStyle(table.StyleLight)
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
		{Number: 6, Align: text.AlignRight},
		{Number: 7, Align: text.AlignRight},
		{Number: 8, Align: text.AlignRight},
		{Number: 9, Align: text.AlignRight},
	})
	return t.Render()
}

func decimal(f float64) string {
	return fmt.Sprintf("%.2f", f)
}
