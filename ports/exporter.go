package ports

import (
	"context"
	"io"

	"gocsvlab/domain/snapshot"
)

// ExporterPort serializes a dataset state into one output format
type ExporterPort interface {
	// Format is the short name used by the API and CLI, e.g. "csv"
	Format() string
	ContentType() string
	// FileName derives the download name from the source file name
	FileName(source string) string
	Export(ctx context.Context, w io.Writer, state *snapshot.DatasetState) error
}

// DatasetSink writes a dataset state to an external store and reports rows written
type DatasetSink interface {
	Export(ctx context.Context, table string, state *snapshot.DatasetState) (int, error)
}
