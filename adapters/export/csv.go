package export

import (
	"io"
	"strings"

	"gocsvlab/domain/dataset"
)

// FormatCSV serializes ds with a comma-joined header line. A value is
// quoted only when it contains a comma or a double quote; missing values
// are empty. Lines are joined by \n without a trailing newline.
func FormatCSV(ds *dataset.Dataset) string {
	columns := ds.Columns()
	var b strings.Builder
	b.WriteString(strings.Join(columns, ","))

	cells := make([]string, len(columns))
	for i := 0; i < ds.NumRows(); i++ {
		for j, v := range ds.Row(i) {
			cells[j] = csvCell(v.String())
		}
		b.WriteByte('\n')
		b.WriteString(strings.Join(cells, ","))
	}
	return b.String()
}

// WriteCSV writes FormatCSV(ds) to w
func WriteCSV(w io.Writer, ds *dataset.Dataset) error {
	_, err := io.WriteString(w, FormatCSV(ds))
	return err
}

func csvCell(s string) string {
	if !strings.ContainsAny(s, `,"`) {
		return s
	}
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
