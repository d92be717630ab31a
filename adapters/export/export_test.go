package export

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"gocsvlab/adapters/datareadiness"
	"gocsvlab/domain/core"
	"gocsvlab/domain/dataset"
	"gocsvlab/domain/snapshot"
	"gocsvlab/internal"
	"gocsvlab/internal/testkit"
)

var fixedClock = func() time.Time {
	return time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
}

func newState(ds *dataset.Dataset, fileName string) *snapshot.DatasetState {
	p := datareadiness.NewProfilerAdapter()
	types := p.InferTypes(ds)
	return snapshot.NewDatasetState(ds, fileName, types, p.ComputeStatistics(ds, types))
}

func salesState() *snapshot.DatasetState {
	ds := testkit.Dataset([]string{"region", "amount"},
		[]any{"north", 10},
		[]any{"south", 20},
		[]any{"north", 30},
		[]any{nil, 40},
	)
	return newState(ds, "sales.csv")
}

func TestFormatCSV(t *testing.T) {
	ds := testkit.Dataset([]string{"name", "note", "n"},
		[]any{"ann", "a,b", 1.5},
		[]any{"bob", `say "x"`, nil},
		[]any{nil, "plain", 1e21},
	)
	want := "name,note,n\n" +
		"ann,\"a,b\",1.5\n" +
		"bob,\"say \"\"x\"\"\",\n" +
		",plain,1e+21"
	assert.Equal(t, want, FormatCSV(ds))
}

func TestFormatCSVHeaderOnly(t *testing.T) {
	ds, err := dataset.New([]string{"a", "b"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "a,b", FormatCSV(ds))
}

func TestFormatJSON(t *testing.T) {
	ds := testkit.Dataset([]string{"z", "a"},
		[]any{"x", 2},
		[]any{nil, 3.5},
	)
	data, err := FormatJSON(ds)
	require.NoError(t, err)

	want := "[\n" +
		"  {\n    \"z\": \"x\",\n    \"a\": 2\n  },\n" +
		"  {\n    \"z\": null,\n    \"a\": 3.5\n  }\n" +
		"]"
	assert.Equal(t, want, string(data))

	empty, err := FormatJSON(dataset.Empty())
	require.NoError(t, err)
	assert.Equal(t, "[]", string(empty))
}

func TestFormatReport(t *testing.T) {
	got := FormatReport(salesState(), ReportOptions{Clock: fixedClock})

	want := `DATA ANALYSIS REPORT
===================

File: sales.csv
Generated: 2026-03-01 09:30:00

DATASET OVERVIEW
----------------
Total Rows: 4
Total Columns: 2
Numeric Columns: 1
Categorical Columns: 1
Date Columns: 0

DATA QUALITY
------------
Data Quality Score: 87.5%
Total Missing Values: 1
Missing Value Rate: 12.50%

NUMERIC COLUMNS ANALYSIS
------------------------

amount:
  Mean: 25.00
  Median: 30.00
  Min: 10.00
  Max: 40.00
  Standard Deviation: 11.18
  Missing Values: 0 (0.0%)

CATEGORICAL COLUMNS ANALYSIS
----------------------------

region:
  Unique Values: 2
  Most Common: north
  Uniqueness: 66.7%
  Missing Values: 1 (25.0%)
  Top 5 Values:
    north: 2 (66.7%)
    south: 1 (33.3%)

COLUMN DETAILS
--------------
region: categorical
amount: numeric
`
	assert.Equal(t, want, got)
}

func TestFormatReportTopValuesAndGrouping(t *testing.T) {
	rows := make([][]any, 0, 1200)
	for i := 0; i < 1200; i++ {
		rows = append(rows, []any{string(rune('a' + i%7))})
	}
	state := newState(testkit.Dataset([]string{"letter"}, rows...), "letters.csv")

	got := FormatReport(state, ReportOptions{TopValues: 2, Clock: fixedClock})
	assert.Contains(t, got, "Total Rows: 1,200\n")
	assert.Contains(t, got, "  Top 2 Values:\n    a: 172 (14.3%)\n    b: 172 (14.3%)\n\n")
	assert.NotContains(t, got, "    c: ")
}

func TestFormatReportEmptyDataset(t *testing.T) {
	ds, err := dataset.New([]string{"a"}, nil)
	require.NoError(t, err)

	got := FormatReport(newState(ds, "empty.csv"), ReportOptions{Clock: fixedClock})
	assert.Contains(t, got, "Data Quality Score: 100.0%\n")
	assert.Contains(t, got, "Missing Value Rate: 0.00%\n")
	assert.NotContains(t, got, "NUMERIC COLUMNS ANALYSIS")
	assert.True(t, strings.HasSuffix(got, "COLUMN DETAILS\n--------------\na: unknown\n"))
}

func TestMarkdownAndHTMLReports(t *testing.T) {
	state := salesState()
	md := FormatMarkdownReport(state, ReportOptions{Clock: fixedClock})
	assert.True(t, strings.HasPrefix(md, "# Data Analysis Report\n"))
	assert.Contains(t, md, "| Total Rows | 4 |\n")
	assert.Contains(t, md, "| amount | 25.00 | 30.00 | 10.00 | 40.00 | 11.18 | 0 (0.0%) |\n")
	assert.Contains(t, md, "| north | 2 | 66.7% |\n")

	page := string(FormatHTMLReport(state, ReportOptions{Clock: fixedClock}))
	assert.Contains(t, page, "<title>Data Analysis Report - sales.csv</title>")
	assert.Contains(t, page, "<h1")
	assert.Contains(t, page, "<table>")
	assert.Contains(t, page, "<td>north</td>")
}

func TestMarkdownEscapesCells(t *testing.T) {
	assert.Equal(t, `a\|b \_x\_ &lt;i&gt;`, mdEscape("a|b _x_ <i>"))
}

func TestWriteXLSX(t *testing.T) {
	ds := testkit.Dataset([]string{"item", "qty"},
		[]any{"pen", "3"},
		[]any{"ink", nil},
	)
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, newState(ds, "stock.csv")))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{DataSheet, StatisticsSheet}, f.GetSheetList())

	rows, err := f.GetRows(DataSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"item", "qty"}, rows[0])
	assert.Equal(t, []string{"pen", "3"}, rows[1])

	cellType, err := f.GetCellType(DataSheet, "B2")
	require.NoError(t, err)
	assert.NotEqual(t, excelize.CellTypeSharedString, cellType, "numeric column cells are numbers")

	stats, err := f.GetRows(StatisticsSheet)
	require.NoError(t, err)
	require.Len(t, stats, 3)
	assert.Equal(t, "Column", stats[0][0])
	assert.Equal(t, []string{"item", "categorical", "2", "0", "0"}, stats[1][:5])
	assert.Equal(t, "qty", stats[2][0])
	assert.Equal(t, "numeric", stats[2][1])
}

func TestExportFileNames(t *testing.T) {
	reg := NewRegistry(ReportOptions{})
	tests := []struct {
		format string
		source string
		want   string
	}{
		{NameCSV, "sales.csv", "processed_sales.csv"},
		{NameJSON, "sales.csv", "processed_sales.json"},
		{NameReport, "sales.csv", "analysis_report_sales.txt"},
		{NameMarkdown, "sales.csv", "analysis_report_sales.md"},
		{NameHTML, "sales.csv", "analysis_report_sales.html"},
		{NameXLSX, "sales.csv", "processed_sales.xlsx"},
		{NameJSON, "", "processed_data.json"},
		{NameReport, "sheet.xlsx", "analysis_report_sheet.xlsx"},
	}
	for _, tt := range tests {
		t.Run(tt.format+"/"+tt.source, func(t *testing.T) {
			exp, err := reg.Get(tt.format)
			require.NoError(t, err)
			assert.Equal(t, tt.want, exp.FileName(tt.source))
		})
	}
}

func TestRegistry(t *testing.T) {
	reg := NewRegistry(ReportOptions{Clock: fixedClock})
	assert.Equal(t, []string{"csv", "html", "json", "markdown", "report", "xlsx"}, reg.Formats())

	_, err := reg.Get("parquet")
	assert.True(t, core.IsInvalidParamsError(err))

	exp, err := reg.Get(NameJSON)
	require.NoError(t, err)
	assert.Equal(t, "application/json; charset=utf-8", exp.ContentType())

	var buf bytes.Buffer
	require.NoError(t, exp.Export(context.Background(), &buf, salesState()))
	var rows []map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rows))
	assert.Len(t, rows, 4)
}

func TestRegistryExportMatchesFormatters(t *testing.T) {
	reg := NewRegistry(ReportOptions{Clock: fixedClock})
	state := salesState()
	jsonData, err := FormatJSON(state.Data)
	require.NoError(t, err)

	tests := []struct {
		format string
		want   string
	}{
		{NameCSV, FormatCSV(state.Data)},
		{NameJSON, string(jsonData)},
		{NameReport, FormatReport(state, ReportOptions{Clock: fixedClock})},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			exp, err := reg.Get(tt.format)
			require.NoError(t, err)
			assert.Equal(t, tt.format, exp.Format())

			var buf bytes.Buffer
			require.NoError(t, exp.Export(context.Background(), &buf, state))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestExportHonorsCancelledContext(t *testing.T) {
	exp, err := NewRegistry(ReportOptions{}).Get(NameCSV)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var buf bytes.Buffer
	assert.ErrorIs(t, exp.Export(ctx, &buf, salesState()), context.Canceled)
	assert.Zero(t, buf.Len())
}

func TestWriteBundle(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	reg := NewRegistry(ReportOptions{Clock: fixedClock})
	exporters, err := reg.Exporters(NameCSV, NameJSON, NameReport, NameXLSX)
	require.NoError(t, err)

	paths, err := WriteBundle(context.Background(), dir, salesState(), exporters, internal.NewNopLogger())
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(dir, "analysis_report_sales.txt"),
		filepath.Join(dir, "processed_sales.csv"),
		filepath.Join(dir, "processed_sales.json"),
		filepath.Join(dir, "processed_sales.xlsx"),
	}, paths)

	data, err := os.ReadFile(filepath.Join(dir, "processed_sales.csv"))
	require.NoError(t, err)
	assert.Equal(t, "region,amount\nnorth,10\nsouth,20\nnorth,30\n,40", string(data))

	_, err = reg.Exporters(NameCSV, "nope")
	assert.Error(t, err)
}

func TestRenderStatisticsTable(t *testing.T) {
	out := RenderStatisticsTable(salesState())
	assert.Contains(t, out, "COLUMN")
	assert.Contains(t, out, "region")
	assert.Contains(t, out, "categorical")
	assert.Contains(t, out, "25.00")
	assert.Contains(t, out, "87.5%")
}
