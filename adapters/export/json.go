package export

import (
	"encoding/json"
	"io"

	"gocsvlab/domain/dataset"
)

// FormatJSON serializes the rows as an array of objects in column order,
// indented by two spaces. Missing values and NaN become null.
func FormatJSON(ds *dataset.Dataset) ([]byte, error) {
	return json.MarshalIndent(ds.Records(), "", "  ")
}

// WriteJSON writes FormatJSON(ds) to w
func WriteJSON(w io.Writer, ds *dataset.Dataset) error {
	data, err := FormatJSON(ds)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
