package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"golang.org/x/sync/errgroup"

	"gocsvlab/domain/snapshot"
	"gocsvlab/internal"
	"gocsvlab/ports"
)

// WriteBundle writes state through every exporter into dir concurrently
// and returns the written paths, sorted. Any failure cancels the rest.
func WriteBundle(ctx context.Context, dir string, state *snapshot.DatasetState, exporters []ports.ExporterPort, logger *internal.Logger) ([]string, error) {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create export directory: %w", err)
	}

	paths := make([]string, len(exporters))
	g, gctx := errgroup.WithContext(ctx)
	for i, exp := range exporters {
		g.Go(func() error {
			path := filepath.Join(dir, exp.FileName(state.FileName))
			if err := writeFile(gctx, path, exp, state); err != nil {
				return fmt.Errorf("%s export failed: %w", exp.Format(), err)
			}
			logger.Debug("[Export] wrote %s", path)
			paths[i] = path
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		logger.Error("[Export] bundle for %s failed: %v", state.FileName, err)
		return nil, err
	}

	sort.Strings(paths)
	logger.Info("[Export] wrote %d files to %s", len(paths), dir)
	return paths, nil
}

func writeFile(ctx context.Context, path string, exp ports.ExporterPort, state *snapshot.DatasetState) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := exp.Export(ctx, f, state); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	return f.Close()
}

// Exporters returns the exporters for formats in order
func (r *Registry) Exporters(formats ...string) ([]ports.ExporterPort, error) {
	out := make([]ports.ExporterPort, 0, len(formats))
	for _, f := range formats {
		e, err := r.Get(f)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}
