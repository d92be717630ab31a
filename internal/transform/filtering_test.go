package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gocsvlab/domain/core"
	"gocsvlab/internal/testkit"
)

func TestFilterRows(t *testing.T) {
	ds := testkit.Dataset([]string{"city", "n"},
		[]any{"Oslo", 1},
		[]any{"Bergen", 2},
		[]any{"OSLO east", 3},
		[]any{nil, 4},
	)
	res, err := FilterRows{Column: "city", Contains: "oSl"}.Apply(ds, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"1", "3"}, testkit.Strings(res.Data, "n"))
	assert.Equal(t, `Filtered rows where city contains "oSl"`, res.Label)
	assert.Equal(t, 2, res.Affected)
}

func TestFilterRowsMatchesNumbers(t *testing.T) {
	ds := testkit.Column("n", 10, 21, 3)
	res, err := FilterRows{Column: "n", Contains: "1"}.Apply(ds, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"10", "21"}, testkit.Strings(res.Data, "n"))
}

func TestFilterRowsKeepsColumnsWhenEmpty(t *testing.T) {
	ds := testkit.Dataset([]string{"a", "b"}, []any{"x", "y"})
	res, err := FilterRows{Column: "a", Contains: "zzz"}.Apply(ds, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Data.NumRows())
	assert.Equal(t, []string{"a", "b"}, res.Data.Columns())
}

func TestFilterRowsErrors(t *testing.T) {
	ds := testkit.Column("a", "x")
	_, err := FilterRows{Column: "a"}.Apply(ds, nil)
	assert.True(t, core.IsInvalidParamsError(err))
	_, err = FilterRows{Column: "b", Contains: "x"}.Apply(ds, nil)
	assert.True(t, core.IsInvalidParamsError(err))
}

func TestCreateIndexColumn(t *testing.T) {
	ds := testkit.Column("a", "x", "y", "z")
	res, err := CreateIndexColumn{Column: "row"}.Apply(ds, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "row"}, res.Data.Columns())
	assert.Equal(t, []string{"1", "2", "3"}, testkit.Strings(res.Data, "row"))
	assert.Equal(t, "Created new column row", res.Label)

	_, err = CreateIndexColumn{Column: "a"}.Apply(ds, nil)
	assert.True(t, core.IsInvalidParamsError(err))
	_, err = CreateIndexColumn{}.Apply(ds, nil)
	assert.True(t, core.IsInvalidParamsError(err))
}
