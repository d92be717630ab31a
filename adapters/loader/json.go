package loader

import (
	"errors"
	"fmt"

	"github.com/tidwall/gjson"

	"gocsvlab/domain/dataset"
)

// readJSON parses an array of objects, keeping each object's key order.
// Strings stay text, numbers become numeric values, null becomes missing,
// booleans and nested values keep their JSON text.
func readJSON(data []byte) ([]dataset.Record, error) {
	if !gjson.ValidBytes(data) {
		return nil, errors.New("invalid JSON")
	}
	root := gjson.ParseBytes(data)
	if !root.IsArray() {
		return nil, errors.New("JSON source must be an array of objects")
	}

	var records []dataset.Record
	var failure error
	root.ForEach(func(i, item gjson.Result) bool {
		if !item.IsObject() {
			failure = fmt.Errorf("element %d is not an object", i.Int())
			return false
		}
		rec := dataset.Record{}
		item.ForEach(func(key, value gjson.Result) bool {
			rec = append(rec, dataset.Field{Name: key.String(), Value: jsonValue(value)})
			return true
		})
		records = append(records, rec)
		return true
	})
	if failure != nil {
		return nil, failure
	}
	if len(records) == 0 {
		return nil, errNoData
	}
	return records, nil
}

func jsonValue(v gjson.Result) dataset.Value {
	switch v.Type {
	case gjson.Null:
		return dataset.NewMissingValue()
	case gjson.Number:
		return dataset.NewNumericValue(v.Num)
	case gjson.String:
		return dataset.NewTextValue(v.Str)
	default:
		return dataset.NewTextValue(v.Raw)
	}
}
