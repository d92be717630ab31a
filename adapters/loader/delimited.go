package loader

import (
	"encoding/csv"
	"io"
)

// readDelimited reads every record; blank lines are skipped and rows may
// have any number of fields
func readDelimited(r io.Reader, comma rune) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.Comma = comma
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	return reader.ReadAll()
}
