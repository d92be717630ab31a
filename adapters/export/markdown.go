package export

import (
	"io"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"gocsvlab/domain/snapshot"
)

// FormatMarkdownReport renders the analysis report as markdown with the
// same sections as the text report
func FormatMarkdownReport(state *snapshot.DatasetState, opts ReportOptions) string {
	r := buildReport(state, opts)
	p := message.NewPrinter(language.English)
	var b strings.Builder

	b.WriteString("# Data Analysis Report\n\n")
	p.Fprintf(&b, "- **File:** %s\n", mdEscape(r.FileName))
	p.Fprintf(&b, "- **Generated:** %s\n\n", r.Generated.Format(generatedLayout))

	b.WriteString("## Dataset Overview\n\n")
	b.WriteString("| Metric | Value |\n|---|---|\n")
	p.Fprintf(&b, "| Total Rows | %d |\n", r.Overview.TotalRows)
	p.Fprintf(&b, "| Total Columns | %d |\n", r.Overview.TotalColumns)
	p.Fprintf(&b, "| Numeric Columns | %d |\n", r.Overview.NumericColumns)
	p.Fprintf(&b, "| Categorical Columns | %d |\n", r.Overview.CategoricalColumns)
	p.Fprintf(&b, "| Date Columns | %d |\n\n", r.Overview.DateColumns)

	b.WriteString("## Data Quality\n\n")
	p.Fprintf(&b, "- **Data Quality Score:** %.1f%%\n", r.Overview.QualityScore)
	p.Fprintf(&b, "- **Total Missing Values:** %d\n", r.Overview.TotalMissing)
	p.Fprintf(&b, "- **Missing Value Rate:** %.2f%%\n\n", r.missingRate())

	if len(r.Numeric) > 0 {
		b.WriteString("## Numeric Columns\n\n")
		b.WriteString("| Column | Mean | Median | Min | Max | Std | Missing |\n")
		b.WriteString("|---|---:|---:|---:|---:|---:|---:|\n")
		for _, s := range r.Numeric {
			n := s.Stats.Numeric
			p.Fprintf(&b, "| %s | %.2f | %.2f | %.2f | %.2f | %.2f | %d (%.1f%%) |\n",
				mdEscape(s.Column), n.Mean, n.Median, n.Min, n.Max, n.Std,
				s.Stats.NullCount, s.Stats.NullPercentage)
		}
		b.WriteString("\n")
	}

	if len(r.Categorical) > 0 {
		b.WriteString("## Categorical Columns\n")
		for _, s := range r.Categorical {
			c := s.Stats.Categorical
			p.Fprintf(&b, "\n### %s\n\n", mdEscape(s.Column))
			p.Fprintf(&b, "- Unique Values: %d (%.1f%%)\n", c.Unique, c.UniquePercentage)
			p.Fprintf(&b, "- Most Common: %s\n", mdEscape(c.Mode))
			p.Fprintf(&b, "- Missing Values: %d (%.1f%%)\n\n", s.Stats.NullCount, s.Stats.NullPercentage)
			b.WriteString("| Value | Count | Share |\n|---|---:|---:|\n")
			for _, vc := range s.Top {
				p.Fprintf(&b, "| %s | %d | %.1f%% |\n", mdEscape(vc.Value), vc.Count, share(vc.Count, s.Stats.Count))
			}
		}
		b.WriteString("\n")
	}

	b.WriteString("## Column Details\n\n")
	b.WriteString("| Column | Type |\n|---|---|\n")
	for _, c := range r.Columns {
		b.WriteString("| " + mdEscape(c.Column) + " | " + string(c.Type) + " |\n")
	}
	return b.String()
}

// WriteMarkdownReport writes FormatMarkdownReport(state, opts) to w
func WriteMarkdownReport(w io.Writer, state *snapshot.DatasetState, opts ReportOptions) error {
	_, err := io.WriteString(w, FormatMarkdownReport(state, opts))
	return err
}

// FormatHTMLReport renders the markdown report as a complete HTML page
func FormatHTMLReport(state *snapshot.DatasetState, opts ReportOptions) []byte {
	md := []byte(FormatMarkdownReport(state, opts))

	p := parser.NewWithExtensions(parser.CommonExtensions)
	renderer := html.NewRenderer(html.RendererOptions{
		Title: "Data Analysis Report - " + sourceName(state.FileName),
		Flags: html.CommonFlags | html.CompletePage,
	})
	return markdown.ToHTML(md, p, renderer)
}

// WriteHTMLReport writes FormatHTMLReport(state, opts) to w
func WriteHTMLReport(w io.Writer, state *snapshot.DatasetState, opts ReportOptions) error {
	_, err := w.Write(FormatHTMLReport(state, opts))
	return err
}

var mdReplacer = strings.NewReplacer(`\`, `\\`, `|`, `\|`, `*`, `\*`, `_`, `\_`, "<", "&lt;", ">", "&gt;", "\n", " ")

func mdEscape(s string) string {
	return mdReplacer.Replace(s)
}
