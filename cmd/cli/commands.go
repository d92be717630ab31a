package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gocsvlab/adapters/datareadiness"
	"gocsvlab/adapters/export"
	"gocsvlab/adapters/loader"
	"gocsvlab/domain/snapshot"
	"gocsvlab/internal"
	"gocsvlab/internal/session"
	"gocsvlab/internal/testkit"

	"github.com/spf13/cobra"
)

func newProfileCmd() *cobra.Command {
	var correlations bool

	cmd := &cobra.Command{
		Use:   "profile <file>",
		Short: "Print inferred types and column statistics",
		Long: `Load a csv, tsv, xlsx or json file (optionally .gz, .lz4 or .zip) and
print one statistics row per column.

Example: gocsvlab profile sales.csv --correlations`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, logger, err := loadConfig()
			if err != nil {
				return err
			}
			sess, err := openSession(cmd.Context(), args[0], logger)
			if err != nil {
				return err
			}
			return runProfile(cmd.OutOrStdout(), sess.Current(), correlations)
		},
	}

	cmd.Flags().BoolVar(&correlations, "correlations", false, "Also print pairwise correlations of numeric columns")
	return cmd
}

func newTransformCmd() *cobra.Command {
	var steps []string
	var out string
	var format string

	cmd := &cobra.Command{
		Use:   "transform <file>",
		Short: "Apply transformation steps in order and write the result",
		Long: `Apply one or more steps to a dataset. Each step is an operator name
followed by its parameters:

  fill_missing:column=region,value=unknown
  remove_duplicates
  remove_outliers:column=revenue
  normalize:column=quantity

Example: gocsvlab transform orders.csv --step remove_duplicates --step drop_column:column=notes --out clean.csv`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadConfig()
			if err != nil {
				return err
			}
			sess, err := openSession(cmd.Context(), args[0], logger)
			if err != nil {
				return err
			}
			if err := applySteps(cmd.ErrOrStderr(), sess, steps); err != nil {
				return err
			}
			registry := export.NewRegistry(export.ReportOptions{TopValues: cfg.Export.TopValues})
			return writeExport(cmd.Context(), cmd.OutOrStdout(), registry, format, out, sess.Current())
		},
	}

	cmd.Flags().StringArrayVar(&steps, "step", nil, "Transformation step, repeatable (operator:key=value,...)")
	cmd.Flags().StringVar(&out, "out", "", "Output file (default stdout)")
	cmd.Flags().StringVar(&format, "format", export.NameCSV, "Output format: csv, json, report, markdown, html, xlsx")
	return cmd
}

func newReportCmd() *cobra.Command {
	var format string
	var out string

	cmd := &cobra.Command{
		Use:   "report <file>",
		Short: "Write the analysis report of a dataset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadConfig()
			if err != nil {
				return err
			}
			sess, err := openSession(cmd.Context(), args[0], logger)
			if err != nil {
				return err
			}
			if format == "text" {
				format = export.NameReport
			}
			registry := export.NewRegistry(export.ReportOptions{TopValues: cfg.Export.TopValues})
			return writeExport(cmd.Context(), cmd.OutOrStdout(), registry, format, out, sess.Current())
		},
	}

	cmd.Flags().StringVar(&format, "format", "text", "Report format: text, markdown, html")
	cmd.Flags().StringVar(&out, "out", "", "Output file (default stdout)")
	return cmd
}

func newExportDBCmd() *cobra.Command {
	var table string
	var databaseURL string

	cmd := &cobra.Command{
		Use:   "export-db <file>",
		Short: "Load a dataset and write it into a PostgreSQL table",
		Long: `Create the table if needed and insert every row in one transaction.
Numeric columns become DOUBLE PRECISION, all others TEXT.

Uses DATABASE_URL and EXPORT_TABLE unless overridden by flags.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadConfig()
			if err != nil {
				return err
			}
			if databaseURL == "" {
				databaseURL = cfg.Database.URL
			}
			if table == "" {
				table = cfg.Database.Table
			}
			if databaseURL == "" {
				return fmt.Errorf("DATABASE_URL or --database-url is required")
			}

			sess, err := openSession(cmd.Context(), args[0], logger)
			if err != nil {
				return err
			}

			db, err := export.OpenPostgres(cmd.Context(), databaseURL)
			if err != nil {
				return err
			}
			defer db.Close()

			n, err := export.NewPostgresSink(db, logger).Export(cmd.Context(), table, sess.Current())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d rows to %s\n", n, table)
			return nil
		},
	}

	cmd.Flags().StringVar(&table, "table", "", "Target table (default EXPORT_TABLE)")
	cmd.Flags().StringVar(&databaseURL, "database-url", "", "PostgreSQL connection URL (default DATABASE_URL)")
	return cmd
}

func newDemoCmd() *cobra.Command {
	var orders int
	var seed int64
	var outDir string

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Clean a synthetic retail dataset and write every export format",
		Long: `Generate a seeded retail orders dataset with missing values and outliers,
apply a cleaning pipeline, undo and redo the last step, then write the
csv, json, report, markdown, html and xlsx exports.

Example: gocsvlab demo --orders 500 --seed 7 --out-dir exports`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadConfig()
			if err != nil {
				return err
			}
			if outDir == "" {
				outDir = cfg.Export.Dir
			}
			return runDemo(cmd.Context(), cmd.OutOrStdout(), cfg.Export.TopValues, orders, seed, outDir, logger)
		},
	}

	defaults := testkit.DefaultRetailConfig()
	cmd.Flags().IntVar(&orders, "orders", defaults.Orders, "Number of generated orders")
	cmd.Flags().Int64Var(&seed, "seed", defaults.Seed, "Random seed for deterministic generation")
	cmd.Flags().StringVar(&outDir, "out-dir", "", "Output directory (default EXPORT_DIR)")
	return cmd
}

func openSession(ctx context.Context, path string, logger *internal.Logger) (*session.Session, error) {
	result, err := loader.NewDataReader(logger).LoadFile(ctx, path)
	if err != nil {
		return nil, err
	}
	sess := session.New(datareadiness.NewProfilerAdapter(), session.WithLogger(logger))
	sess.Load(result)
	return sess, nil
}

// applySteps stops at the first failing step; earlier steps stay applied
func applySteps(w io.Writer, sess *session.Session, steps []string) error {
	for _, s := range steps {
		op, err := parseStep(s)
		if err != nil {
			return err
		}
		entry, err := sess.Apply(op)
		if err != nil {
			return fmt.Errorf("%s: %w", op.Name(), err)
		}
		fmt.Fprintf(w, "%s (%d rows)\n", entry.Action, entry.State.NumRows())
	}
	return nil
}

func runProfile(w io.Writer, state *snapshot.DatasetState, correlations bool) error {
	ov := state.Overview()
	fmt.Fprintf(w, "%s: %d rows, %d columns, quality %.1f%%\n", state.FileName, ov.TotalRows, ov.TotalColumns, ov.QualityScore)
	fmt.Fprintln(w, export.RenderStatisticsTable(state))

	if correlations {
		for _, c := range datareadiness.NewProfilerAdapter().Correlations(state.Data, state.Types) {
			fmt.Fprintf(w, "%s ~ %s: %.3f (%d pairs)\n", c.ColumnA, c.ColumnB, c.Coefficient, c.Pairs)
		}
	}
	return nil
}

func writeExport(ctx context.Context, stdout io.Writer, registry *export.Registry, format, out string, state *snapshot.DatasetState) error {
	exp, err := registry.Get(format)
	if err != nil {
		return err
	}
	if out == "" {
		return exp.Export(ctx, stdout, state)
	}

	f, err := os.Create(out)
	if err != nil {
		return err
	}
	if err := exp.Export(ctx, f, state); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

var demoSteps = []string{
	"remove_duplicates",
	"fill_missing:column=region,value=Unknown",
	"fill_missing:column=unit_price,value=0",
	"remove_outliers:column=revenue",
	"normalize:column=quantity",
	"one_hot_encode:column=segment",
	"create_index_column:name=row_id",
}

func runDemo(ctx context.Context, w io.Writer, topValues, orders int, seed int64, outDir string, logger *internal.Logger) error {
	cfg := testkit.DefaultRetailConfig()
	cfg.Orders = orders
	cfg.Seed = seed

	sess := session.New(datareadiness.NewProfilerAdapter(), session.WithLogger(logger))
	state := sess.Initialize(testkit.NewRetailGenerator(cfg).Generate(), "retail_orders.csv")
	fmt.Fprintf(w, "generated %d orders, quality %.1f%%\n", state.NumRows(), state.Overview().QualityScore)

	if err := applySteps(w, sess, demoSteps); err != nil {
		return err
	}

	_, undone, err := sess.Undo()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "undid: %s\n", undone)
	entry, err := sess.Redo()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "redid: %s\n", entry.Action)

	registry := export.NewRegistry(export.ReportOptions{TopValues: topValues})
	exporters, err := registry.Exporters(registry.Formats()...)
	if err != nil {
		return err
	}
	paths, err := export.WriteBundle(ctx, outDir, sess.Current(), exporters, logger)
	if err != nil {
		return err
	}
	for _, p := range paths {
		fmt.Fprintln(w, "wrote", filepath.ToSlash(p))
	}
	return nil
}
