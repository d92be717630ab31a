package dataset

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"gocsvlab/domain/core"
)

// Field is one named value of a Record
type Field struct {
	Name  string
	Value Value
}

// Record is an ordered mapping from column name to value, as produced by loaders
type Record []Field

// Get returns the value stored under name
func (r Record) Get(name string) (Value, bool) {
	for _, f := range r {
		if f.Name == name {
			return f.Value, true
		}
	}
	return Value{}, false
}

// Keys returns the field names in order
func (r Record) Keys() []string {
	keys := make([]string, len(r))
	for i, f := range r {
		keys[i] = f.Name
	}
	return keys
}

// MarshalJSON writes the record as an object with fields in order
func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range r {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(f.Name)
		if err != nil {
			return nil, err
		}
		val, err := f.Value.MarshalJSON()
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Row holds one value per dataset column, positionally
type Row []Value

// Key encodes the row with kind tags so that numeric 1 and text "1" differ
func (r Row) Key() string {
	var b strings.Builder
	for i, v := range r {
		if i > 0 {
			b.WriteByte('\x1f')
		}
		b.WriteString(v.key())
	}
	return b.String()
}

// Dataset is an immutable table with a fixed column list. Every derived
// dataset shares the rows it did not change with its source, so rows
// returned by accessors must be treated as read-only.
type Dataset struct {
	columns []string
	index   map[string]int
	rows    []Row
}

// New validates and builds a dataset
func New(columns []string, rows []Row) (*Dataset, error) {
	index, err := buildIndex(columns)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != len(columns) {
			return nil, core.NewInvalidParamsError(fmt.Sprintf("row %d", i),
				fmt.Sprintf("has %d values for %d columns", len(row), len(columns)))
		}
	}
	return &Dataset{columns: columns, index: index, rows: rows}, nil
}

// Empty returns a dataset with no columns and no rows
func Empty() *Dataset {
	return &Dataset{index: map[string]int{}}
}

// FromRecords builds a dataset whose columns are the keys of the first
// record. Keys missing from later records become missing values; keys
// the first record does not have are ignored.
func FromRecords(records []Record) *Dataset {
	if len(records) == 0 {
		return Empty()
	}

	columns := make([]string, 0, len(records[0]))
	index := make(map[string]int, len(records[0]))
	for _, f := range records[0] {
		if _, dup := index[f.Name]; dup {
			continue
		}
		index[f.Name] = len(columns)
		columns = append(columns, f.Name)
	}

	rows := make([]Row, len(records))
	for i, rec := range records {
		row := make(Row, len(columns))
		for _, f := range rec {
			if j, ok := index[f.Name]; ok {
				row[j] = f.Value
			}
		}
		rows[i] = row
	}
	return &Dataset{columns: columns, index: index, rows: rows}
}

func buildIndex(columns []string) (map[string]int, error) {
	index := make(map[string]int, len(columns))
	for i, c := range columns {
		if _, dup := index[c]; dup {
			return nil, core.NewInvalidParamsError("columns", fmt.Sprintf("contain duplicate name %q", c))
		}
		index[c] = i
	}
	return index, nil
}

// Columns returns a copy of the column list in display order
func (d *Dataset) Columns() []string {
	out := make([]string, len(d.columns))
	copy(out, d.columns)
	return out
}

// NumRows returns the row count
func (d *Dataset) NumRows() int {
	return len(d.rows)
}

// NumColumns returns the column count
func (d *Dataset) NumColumns() int {
	return len(d.columns)
}

// HasColumn reports whether name is a column
func (d *Dataset) HasColumn(name string) bool {
	_, ok := d.index[name]
	return ok
}

// ColumnIndex returns the position of name
func (d *Dataset) ColumnIndex(name string) (int, bool) {
	i, ok := d.index[name]
	return i, ok
}

// Row returns row i. The row is shared and must not be modified.
func (d *Dataset) Row(i int) Row {
	return d.rows[i]
}

// Value returns the cell at row i, column name; unknown columns are missing
func (d *Dataset) Value(i int, column string) Value {
	j, ok := d.index[column]
	if !ok {
		return NewMissingValue()
	}
	return d.rows[i][j]
}

// Column returns a copy of one column's values
func (d *Dataset) Column(name string) ([]Value, bool) {
	j, ok := d.index[name]
	if !ok {
		return nil, false
	}
	out := make([]Value, len(d.rows))
	for i, row := range d.rows {
		out[i] = row[j]
	}
	return out, true
}

// Record returns row i as an ordered record
func (d *Dataset) Record(i int) Record {
	rec := make(Record, len(d.columns))
	for j, c := range d.columns {
		rec[j] = Field{Name: c, Value: d.rows[i][j]}
	}
	return rec
}

// Records returns every row as an ordered record
func (d *Dataset) Records() []Record {
	out := make([]Record, len(d.rows))
	for i := range d.rows {
		out[i] = d.Record(i)
	}
	return out
}

// Filter returns a dataset holding the rows keep accepts, in order
func (d *Dataset) Filter(keep func(i int, row Row) bool) *Dataset {
	rows := make([]Row, 0, len(d.rows))
	for i, row := range d.rows {
		if keep(i, row) {
			rows = append(rows, row)
		}
	}
	return &Dataset{columns: d.columns, index: d.index, rows: rows}
}

// ReplaceColumn rewrites one column through fn. Rows whose value fn leaves
// equal are shared with d.
func (d *Dataset) ReplaceColumn(name string, fn func(i int, v Value) Value) (*Dataset, error) {
	j, ok := d.index[name]
	if !ok {
		return nil, core.NewColumnNotFoundError(name)
	}
	rows := make([]Row, len(d.rows))
	for i, row := range d.rows {
		next := fn(i, row[j])
		if next.Equal(row[j]) {
			rows[i] = row
			continue
		}
		copied := make(Row, len(row))
		copy(copied, row)
		copied[j] = next
		rows[i] = copied
	}
	return &Dataset{columns: d.columns, index: d.index, rows: rows}, nil
}

// WithoutColumn removes a column from the column list and every row
func (d *Dataset) WithoutColumn(name string) (*Dataset, error) {
	j, ok := d.index[name]
	if !ok {
		return nil, core.NewColumnNotFoundError(name)
	}
	columns := make([]string, 0, len(d.columns)-1)
	columns = append(columns, d.columns[:j]...)
	columns = append(columns, d.columns[j+1:]...)

	rows := make([]Row, len(d.rows))
	for i, row := range d.rows {
		next := make(Row, 0, len(columns))
		next = append(next, row[:j]...)
		next = append(next, row[j+1:]...)
		rows[i] = next
	}
	index, _ := buildIndex(columns)
	return &Dataset{columns: columns, index: index, rows: rows}, nil
}

// WithColumns sets each named column to the given values. Existing columns
// are overwritten in place, new ones are appended in the order given.
// values[k] must hold one value per row.
func (d *Dataset) WithColumns(names []string, values [][]Value) (*Dataset, error) {
	if len(names) != len(values) {
		return nil, core.NewInvalidParamsError("columns", fmt.Sprintf("got %d names for %d value sets", len(names), len(values)))
	}
	columns := d.Columns()
	index := make(map[string]int, len(d.index)+len(names))
	for k, v := range d.index {
		index[k] = v
	}
	targets := make([]int, len(names))
	for k, name := range names {
		if len(values[k]) != len(d.rows) {
			return nil, core.NewInvalidParamsError(fmt.Sprintf("column %q", name),
				fmt.Sprintf("has %d values for %d rows", len(values[k]), len(d.rows)))
		}
		if j, ok := index[name]; ok {
			targets[k] = j
			continue
		}
		index[name] = len(columns)
		targets[k] = len(columns)
		columns = append(columns, name)
	}

	rows := make([]Row, len(d.rows))
	for i, row := range d.rows {
		next := make(Row, len(columns))
		copy(next, row)
		for k, j := range targets {
			next[j] = values[k][i]
		}
		rows[i] = next
	}
	return &Dataset{columns: columns, index: index, rows: rows}, nil
}
