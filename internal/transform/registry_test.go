package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gocsvlab/domain/core"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name   string
		params Params
		want   Operator
	}{
		{"fill_missing", Params{"column": "a", "value": "0"}, FillMissing{Column: "a", Value: "0"}},
		{"remove_duplicates", nil, RemoveDuplicates{}},
		{"remove_outliers", Params{"column": "a"}, RemoveOutliers{Column: "a"}},
		{"drop_column", Params{"column": "a"}, DropColumn{Column: "a"}},
		{"normalize", Params{"column": "a"}, Normalize{Column: "a"}},
		{"standardize", Params{"column": "a"}, Standardize{Column: "a"}},
		{"one_hot_encode", Params{"column": "a"}, OneHotEncode{Column: "a"}},
		{"filter_rows", Params{"column": "a", "contains": "x"}, FilterRows{Column: "a", Contains: "x"}},
		{"create_index_column", Params{"name": "idx"}, CreateIndexColumn{Column: "idx"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op, err := Parse(tt.name, tt.params)
			require.NoError(t, err)
			assert.Equal(t, tt.want, op)
			assert.Equal(t, tt.name, op.Name())
		})
	}
}

func TestParseUnknown(t *testing.T) {
	_, err := Parse("pivot", nil)
	assert.True(t, core.IsInvalidParamsError(err))
}

func TestNames(t *testing.T) {
	names := Names()
	assert.Len(t, names, 9)
	assert.IsIncreasing(t, names)
}
