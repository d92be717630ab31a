package export

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"gocsvlab/domain/dataset"
	"gocsvlab/domain/profiling"
	"gocsvlab/domain/snapshot"
	"gocsvlab/internal"
	"gocsvlab/ports"
)

// DefaultBatchSize is the number of rows per INSERT statement
const DefaultBatchSize = 500

// maxParams is PostgreSQL's bind parameter limit per statement
const maxParams = 65535

// PostgresSink writes dataset states into a PostgreSQL table
type PostgresSink struct {
	db        *sqlx.DB
	batchSize int
	logger    *internal.Logger
}

var _ ports.DatasetSink = (*PostgresSink)(nil)

// OpenPostgres connects to url with the lib/pq driver
func OpenPostgres(ctx context.Context, url string) (*sqlx.DB, error) {
	db, err := sqlx.ConnectContext(ctx, "postgres", url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

// NewPostgresSink creates a sink over db
func NewPostgresSink(db *sqlx.DB, logger *internal.Logger) *PostgresSink {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &PostgresSink{db: db, batchSize: DefaultBatchSize, logger: logger}
}

// Export creates table if needed and inserts every row in one transaction.
// Numeric columns are DOUBLE PRECISION; values that do not coerce are NULL.
func (s *PostgresSink) Export(ctx context.Context, table string, state *snapshot.DatasetState) (int, error) {
	columns := state.Columns()
	if len(columns) == 0 {
		return 0, fmt.Errorf("dataset %s has no columns", state.FileName)
	}
	numeric := numericColumns(columns, state.Types)

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, BuildCreateTable(table, columns, state.Types)); err != nil {
		return 0, fmt.Errorf("failed to create table %s: %w", table, err)
	}

	batch := s.batchSize
	if limit := maxParams / len(columns); batch > limit {
		batch = limit
	}

	written := 0
	ds := state.Data
	for start := 0; start < ds.NumRows(); start += batch {
		end := start + batch
		if end > ds.NumRows() {
			end = ds.NumRows()
		}
		args := make([]interface{}, 0, (end-start)*len(columns))
		for i := start; i < end; i++ {
			args = append(args, RowArgs(ds.Row(i), numeric)...)
		}
		if _, err := tx.ExecContext(ctx, BuildInsert(table, columns, end-start), args...); err != nil {
			return 0, fmt.Errorf("failed to insert rows %d-%d: %w", start, end-1, err)
		}
		written += end - start
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit export: %w", err)
	}
	s.logger.Info("[Export] wrote %d rows of %s to table %s", written, state.FileName, table)
	return written, nil
}

// BuildCreateTable returns the CREATE TABLE IF NOT EXISTS statement for columns
func BuildCreateTable(table string, columns []string, types profiling.TypeMap) string {
	defs := make([]string, len(columns))
	for i, c := range columns {
		sqlType := "TEXT"
		if types.Of(c) == profiling.TypeNumeric {
			sqlType = "DOUBLE PRECISION"
		}
		defs[i] = pq.QuoteIdentifier(c) + " " + sqlType
	}
	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s)", pq.QuoteIdentifier(table), strings.Join(defs, ", "))
}

// BuildInsert returns a multi-row INSERT with numbered placeholders
func BuildInsert(table string, columns []string, rows int) string {
	quoted := make([]string, len(columns))
	for i, c := range columns {
		quoted[i] = pq.QuoteIdentifier(c)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "INSERT INTO %s (%s) VALUES ", pq.QuoteIdentifier(table), strings.Join(quoted, ", "))
	n := 1
	for r := 0; r < rows; r++ {
		if r > 0 {
			b.WriteString(", ")
		}
		b.WriteByte('(')
		for c := range columns {
			if c > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "$%d", n)
			n++
		}
		b.WriteByte(')')
	}
	return b.String()
}

// RowArgs converts a row into bind arguments. Missing values and
// non-coercible cells of numeric columns are nil.
func RowArgs(row dataset.Row, numeric []bool) []interface{} {
	args := make([]interface{}, len(row))
	for j, v := range row {
		switch {
		case v.IsMissing():
			args[j] = nil
		case numeric[j]:
			if f, ok := v.AsFloat64(); ok {
				args[j] = f
			}
		default:
			args[j] = v.String()
		}
	}
	return args
}

func numericColumns(columns []string, types profiling.TypeMap) []bool {
	out := make([]bool, len(columns))
	for i, c := range columns {
		out[i] = types.Of(c) == profiling.TypeNumeric
	}
	return out
}
