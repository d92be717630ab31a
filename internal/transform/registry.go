package transform

import (
	"fmt"
	"sort"

	"gocsvlab/domain/core"
)

// Params are the string parameters an operator is built from
type Params map[string]string

type constructor func(p Params) Operator

var registry = map[string]constructor{
	"fill_missing": func(p Params) Operator {
		return FillMissing{Column: p["column"], Value: p["value"]}
	},
	"remove_duplicates": func(Params) Operator {
		return RemoveDuplicates{}
	},
	"remove_outliers": func(p Params) Operator {
		return RemoveOutliers{Column: p["column"]}
	},
	"drop_column": func(p Params) Operator {
		return DropColumn{Column: p["column"]}
	},
	"normalize": func(p Params) Operator {
		return Normalize{Column: p["column"]}
	},
	"standardize": func(p Params) Operator {
		return Standardize{Column: p["column"]}
	},
	"one_hot_encode": func(p Params) Operator {
		return OneHotEncode{Column: p["column"]}
	},
	"filter_rows": func(p Params) Operator {
		return FilterRows{Column: p["column"], Contains: p["contains"]}
	},
	"create_index_column": func(p Params) Operator {
		return CreateIndexColumn{Column: p["name"]}
	},
}

// Parse builds the operator registered under name. Parameter validation
// happens in Apply, against the dataset.
func Parse(name string, params Params) (Operator, error) {
	build, ok := registry[name]
	if !ok {
		return nil, core.NewInvalidParamsError("operator", fmt.Sprintf("%q is not supported", name))
	}
	if params == nil {
		params = Params{}
	}
	return build(params), nil
}

// Names lists the registered operator names in sorted order
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
