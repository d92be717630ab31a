// Package loader reads csv, tsv, xlsx and json sources into records.
package loader

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gocsvlab/domain/core"
	"gocsvlab/domain/dataset"
	"gocsvlab/internal"
	"gocsvlab/ports"
)

// Supported source formats
const (
	FormatCSV  = "csv"
	FormatTSV  = "tsv"
	FormatXLSX = "xlsx"
	FormatJSON = "json"
)

// DataReader implements ports.LoaderPort
type DataReader struct {
	logger *internal.Logger
}

var _ ports.LoaderPort = (*DataReader)(nil)

// NewDataReader creates a reader that logs through logger
func NewDataReader(logger *internal.Logger) *DataReader {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &DataReader{logger: logger}
}

// LoadFile opens path and loads it
func (r *DataReader) LoadFile(ctx context.Context, path string) (*ports.LoadResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, core.NewParseError(path, err)
	}
	defer f.Close()
	return r.Load(ctx, filepath.Base(path), f)
}

// Load reads a whole source into memory and parses it by file extension.
// Compressed sources (.gz, .lz4, .zip) are unpacked first.
func (r *DataReader) Load(ctx context.Context, name string, src io.Reader) (*ports.LoadResult, error) {
	start := time.Now()
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	raw, err := io.ReadAll(src)
	if err != nil {
		return nil, core.NewParseError(name, err)
	}

	inner, data, err := decompress(name, raw)
	if err != nil {
		r.logger.Error("[Loader] failed to unpack %s: %v", name, err)
		return nil, core.NewParseError(name, err)
	}

	format := DetectFormat(inner)
	var rows [][]string
	var records []dataset.Record
	switch format {
	case FormatCSV:
		rows, err = readDelimited(bytes.NewReader(data), ',')
	case FormatTSV:
		rows, err = readDelimited(bytes.NewReader(data), '\t')
	case FormatXLSX:
		rows, err = readWorkbook(bytes.NewReader(data))
	case FormatJSON:
		records, err = readJSON(data)
	default:
		err = core.NewParseError(name, errUnsupported(inner))
	}
	if err == nil && format != FormatJSON {
		records, err = rowsToRecords(rows)
	}
	if err != nil {
		r.logger.Error("[Loader] failed to parse %s: %v", name, err)
		if core.IsParseError(err) {
			return nil, err
		}
		return nil, core.NewParseError(name, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.logger.Info("[Loader] %s parsed as %s in %.2fms (%d records)",
		name, format, float64(time.Since(start).Nanoseconds())/1e6, len(records))
	return &ports.LoadResult{FileName: inner, Format: format, Records: records}, nil
}

// DetectFormat maps a file name to a source format, "" if unsupported
func DetectFormat(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".csv", ".txt":
		return FormatCSV
	case ".tsv", ".tab":
		return FormatTSV
	case ".xlsx", ".xlsm":
		return FormatXLSX
	case ".json":
		return FormatJSON
	default:
		return ""
	}
}

// rowsToRecords treats the first row as the header. Short rows are padded
// with missing values and cells past the header are ignored.
func rowsToRecords(rows [][]string) ([]dataset.Record, error) {
	if len(rows) == 0 {
		return nil, errEmpty
	}
	headers := NormalizeHeaders(rows[0])
	if len(rows) < 2 {
		return nil, errNoData
	}

	records := make([]dataset.Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rec := make(dataset.Record, len(headers))
		for j, h := range headers {
			cell := ""
			if j < len(row) {
				cell = row[j]
			}
			rec[j] = dataset.Field{Name: h, Value: dataset.NewTextValue(cell)}
		}
		records = append(records, rec)
	}
	return records, nil
}
