package testkit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRetailGeneratorDeterministic(t *testing.T) {
	config := DefaultRetailConfig()
	config.Orders = 50

	a := NewRetailGenerator(config).Generate()
	b := NewRetailGenerator(config).Generate()

	require.Len(t, a, 50)
	for i := range a {
		for j := range a[i] {
			assert.True(t, a[i][j].Value.Equal(b[i][j].Value), "record %d field %s differs", i, a[i][j].Name)
		}
	}
	assert.Equal(t, RetailColumns, a[0].Keys())
}

func TestRetailGeneratorNoMissingWhenRateZero(t *testing.T) {
	config := DefaultRetailConfig()
	config.MissingRate = 0
	config.Orders = 100

	for _, rec := range NewRetailGenerator(config).Generate() {
		for _, f := range rec {
			assert.False(t, f.Value.IsMissing(), "field %s is missing", f.Name)
		}
	}
}

func TestRecordsBuilder(t *testing.T) {
	ds := Dataset([]string{"a", "b"}, []any{"x", 1}, []any{nil, 2.5}, []any{""})

	assert.Equal(t, []string{"x", "", ""}, Strings(ds, "a"))
	assert.Equal(t, []string{"1", "2.5", ""}, Strings(ds, "b"))
	assert.True(t, ds.Value(2, "b").IsMissing())
	assert.Nil(t, Strings(ds, "zzz"))
}
