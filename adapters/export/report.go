package export

import (
	"io"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"gocsvlab/domain/core"
	"gocsvlab/domain/profiling"
	"gocsvlab/domain/snapshot"
)

// DefaultTopValues is how many frequent values a report lists per categorical column
const DefaultTopValues = 5

const generatedLayout = "2006-01-02 15:04:05"

// ReportOptions controls report generation
type ReportOptions struct {
	TopValues int
	Clock     core.Clock
}

func (o ReportOptions) withDefaults() ReportOptions {
	if o.TopValues <= 0 {
		o.TopValues = DefaultTopValues
	}
	if o.Clock == nil {
		o.Clock = core.SystemClock
	}
	return o
}

// report is the format-independent content shared by the text, markdown
// and html renderings
type report struct {
	FileName    string
	Generated   time.Time
	Overview    profiling.Overview
	TopValues   int
	Numeric     []numericSection
	Categorical []categoricalSection
	Columns     []columnType
}

type numericSection struct {
	Column string
	Stats  profiling.ColumnStatistics
}

type categoricalSection struct {
	Column string
	Stats  profiling.ColumnStatistics
	Top    []profiling.ValueCount
}

type columnType struct {
	Column string
	Type   profiling.ColumnType
}

func buildReport(state *snapshot.DatasetState, opts ReportOptions) report {
	opts = opts.withDefaults()
	r := report{
		FileName:  state.FileName,
		Generated: opts.Clock(),
		Overview:  state.Overview(),
		TopValues: opts.TopValues,
	}

	for _, col := range state.Columns() {
		colType := state.Types.Of(col)
		r.Columns = append(r.Columns, columnType{Column: col, Type: colType})

		stats, ok := state.Statistics[col]
		if !ok {
			continue
		}
		switch {
		case colType == profiling.TypeNumeric && stats.Numeric != nil:
			r.Numeric = append(r.Numeric, numericSection{Column: col, Stats: stats})
		case colType == profiling.TypeCategorical && stats.Categorical != nil:
			r.Categorical = append(r.Categorical, categoricalSection{
				Column: col,
				Stats:  stats,
				Top:    stats.Categorical.TopValues(opts.TopValues),
			})
		}
	}
	return r
}

// missingRate is the percentage of missing cells, 0 for an empty table
func (r report) missingRate() float64 {
	if r.Overview.TotalCells == 0 {
		return 0
	}
	return float64(r.Overview.TotalMissing) / float64(r.Overview.TotalCells) * 100
}

func share(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(count) / float64(total) * 100
}

// FormatReport renders the plain text analysis report
func FormatReport(state *snapshot.DatasetState, opts ReportOptions) string {
	r := buildReport(state, opts)
	p := message.NewPrinter(language.English)
	var b strings.Builder

	b.WriteString("DATA ANALYSIS REPORT\n")
	b.WriteString("===================\n\n")
	p.Fprintf(&b, "File: %s\n", r.FileName)
	p.Fprintf(&b, "Generated: %s\n\n", r.Generated.Format(generatedLayout))

	b.WriteString(heading("DATASET OVERVIEW"))
	p.Fprintf(&b, "Total Rows: %d\n", r.Overview.TotalRows)
	p.Fprintf(&b, "Total Columns: %d\n", r.Overview.TotalColumns)
	p.Fprintf(&b, "Numeric Columns: %d\n", r.Overview.NumericColumns)
	p.Fprintf(&b, "Categorical Columns: %d\n", r.Overview.CategoricalColumns)
	p.Fprintf(&b, "Date Columns: %d\n\n", r.Overview.DateColumns)

	b.WriteString(heading("DATA QUALITY"))
	p.Fprintf(&b, "Data Quality Score: %.1f%%\n", r.Overview.QualityScore)
	p.Fprintf(&b, "Total Missing Values: %d\n", r.Overview.TotalMissing)
	p.Fprintf(&b, "Missing Value Rate: %.2f%%\n\n", r.missingRate())

	if len(r.Numeric) > 0 {
		b.WriteString(heading("NUMERIC COLUMNS ANALYSIS"))
		for _, s := range r.Numeric {
			n := s.Stats.Numeric
			p.Fprintf(&b, "\n%s:\n", s.Column)
			p.Fprintf(&b, "  Mean: %.2f\n", n.Mean)
			p.Fprintf(&b, "  Median: %.2f\n", n.Median)
			p.Fprintf(&b, "  Min: %.2f\n", n.Min)
			p.Fprintf(&b, "  Max: %.2f\n", n.Max)
			p.Fprintf(&b, "  Standard Deviation: %.2f\n", n.Std)
			p.Fprintf(&b, "  Missing Values: %d (%.1f%%)\n", s.Stats.NullCount, s.Stats.NullPercentage)
		}
		b.WriteString("\n")
	}

	if len(r.Categorical) > 0 {
		b.WriteString(heading("CATEGORICAL COLUMNS ANALYSIS"))
		for _, s := range r.Categorical {
			c := s.Stats.Categorical
			p.Fprintf(&b, "\n%s:\n", s.Column)
			p.Fprintf(&b, "  Unique Values: %d\n", c.Unique)
			p.Fprintf(&b, "  Most Common: %s\n", c.Mode)
			p.Fprintf(&b, "  Uniqueness: %.1f%%\n", c.UniquePercentage)
			p.Fprintf(&b, "  Missing Values: %d (%.1f%%)\n", s.Stats.NullCount, s.Stats.NullPercentage)
			p.Fprintf(&b, "  Top %d Values:\n", r.TopValues)
			for _, vc := range s.Top {
				p.Fprintf(&b, "    %s: %d (%.1f%%)\n", vc.Value, vc.Count, share(vc.Count, s.Stats.Count))
			}
		}
		b.WriteString("\n")
	}

	b.WriteString(heading("COLUMN DETAILS"))
	for _, c := range r.Columns {
		b.WriteString(c.Column + ": " + string(c.Type) + "\n")
	}
	return b.String()
}

// WriteReport writes FormatReport(state, opts) to w
func WriteReport(w io.Writer, state *snapshot.DatasetState, opts ReportOptions) error {
	_, err := io.WriteString(w, FormatReport(state, opts))
	return err
}

func heading(title string) string {
	return title + "\n" + strings.Repeat("-", len(title)) + "\n"
}
