package ports

import (
	"context"
	"io"

	"gocsvlab/domain/dataset"
)

// LoadResult is a fully materialized record sequence read from one source
type LoadResult struct {
	FileName string
	Format   string
	Records  []dataset.Record
}

// LoaderPort turns an uploaded or local file into records. Every failure
// wraps core.ErrParseFailure.
type LoaderPort interface {
	Load(ctx context.Context, name string, r io.Reader) (*LoadResult, error)
}
