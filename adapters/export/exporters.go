// Package export serializes dataset states to files, reports and databases.
package export

import (
	"bytes"
	"context"
	"io"
	"sort"
	"strings"

	"gocsvlab/domain/core"
	"gocsvlab/domain/snapshot"
	"gocsvlab/ports"
)

// Export format names accepted by the API and CLI
const (
	NameCSV      = "csv"
	NameJSON     = "json"
	NameReport   = "report"
	NameMarkdown = "markdown"
	NameHTML     = "html"
	NameXLSX     = "xlsx"
)

type writeFunc func(w io.Writer, state *snapshot.DatasetState) error

// Exporter adapts one serializer to ports.ExporterPort
type Exporter struct {
	format      string
	contentType string
	name        func(source string) string
	write       writeFunc
}

var _ ports.ExporterPort = (*Exporter)(nil)

func (e *Exporter) Format() string      { return e.format }
func (e *Exporter) ContentType() string { return e.contentType }

// FileName derives the download name from the source file name
func (e *Exporter) FileName(source string) string {
	return e.name(source)
}

// Export renders into memory first so a failed export writes nothing to w
func (e *Exporter) Export(ctx context.Context, w io.Writer, state *snapshot.DatasetState) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := e.write(&buf, state); err != nil {
		return err
	}
	_, err := buf.WriteTo(w)
	return err
}

// Registry holds the exporters by format name
type Registry struct {
	exporters map[string]*Exporter
}

// NewRegistry builds every exporter; report formats use opts
func NewRegistry(opts ReportOptions) *Registry {
	r := &Registry{exporters: make(map[string]*Exporter)}
	r.add(NameCSV, "text/csv; charset=utf-8", ProcessedName,
		func(w io.Writer, s *snapshot.DatasetState) error { return WriteCSV(w, s.Data) })
	r.add(NameJSON, "application/json; charset=utf-8", ProcessedJSONName,
		func(w io.Writer, s *snapshot.DatasetState) error { return WriteJSON(w, s.Data) })
	r.add(NameReport, "text/plain; charset=utf-8",
		func(src string) string { return ReportName(src, ".txt") },
		func(w io.Writer, s *snapshot.DatasetState) error { return WriteReport(w, s, opts) })
	r.add(NameMarkdown, "text/markdown; charset=utf-8",
		func(src string) string { return ReportName(src, ".md") },
		func(w io.Writer, s *snapshot.DatasetState) error { return WriteMarkdownReport(w, s, opts) })
	r.add(NameHTML, "text/html; charset=utf-8",
		func(src string) string { return ReportName(src, ".html") },
		func(w io.Writer, s *snapshot.DatasetState) error { return WriteHTMLReport(w, s, opts) })
	r.add(NameXLSX, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", WorkbookName,
		WriteXLSX)
	return r
}

func (r *Registry) add(format, contentType string, name func(string) string, write writeFunc) {
	r.exporters[format] = &Exporter{format: format, contentType: contentType, name: name, write: write}
}

// Get returns the exporter for format
func (r *Registry) Get(format string) (ports.ExporterPort, error) {
	e, ok := r.exporters[format]
	if !ok {
		return nil, core.NewInvalidParamsError("format", "must be one of "+strings.Join(r.Formats(), ", "))
	}
	return e, nil
}

// Formats lists the registered format names, sorted
func (r *Registry) Formats() []string {
	out := make([]string, 0, len(r.exporters))
	for f := range r.exporters {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}
