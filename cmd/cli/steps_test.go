package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gocsvlab/domain/core"
	"gocsvlab/internal"
	"gocsvlab/internal/transform"
)

func TestParseStep(t *testing.T) {
	tests := []struct {
		in   string
		want transform.Operator
	}{
		{"remove_duplicates", transform.RemoveDuplicates{}},
		{"fill_missing:column=region,value=n/a", transform.FillMissing{Column: "region", Value: "n/a"}},
		{"fill_missing:column=note,value=", transform.FillMissing{Column: "note", Value: ""}},
		{" filter_rows:column=city,contains=a=b ", transform.FilterRows{Column: "city", Contains: "a=b"}},
		{"create_index_column:name=id", transform.CreateIndexColumn{Column: "id"}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseStep(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseStepErrors(t *testing.T) {
	_, err := parseStep("shuffle")
	assert.True(t, core.IsInvalidParamsError(err))

	_, err = parseStep("drop_column:column")
	assert.Error(t, err)
}

func TestTransformWritesResult(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "weather.csv")
	require.NoError(t, os.WriteFile(src, []byte("city,temp\nOslo,5\nOslo,5\nRome,\n"), 0o644))

	var stdout, stderr bytes.Buffer
	cmd := newTransformCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{src, "--step", "remove_duplicates", "--step", "fill_missing:column=temp,value=0"})
	require.NoError(t, cmd.ExecuteContext(context.Background()))

	assert.Equal(t, "city,temp\nOslo,5\nRome,0", stdout.String())
	assert.Equal(t, "Removed 1 duplicate rows (2 rows)\nFilled missing values in temp (2 rows)\n", stderr.String())
}

func TestTransformStopsAtFailingStep(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "weather.csv")
	require.NoError(t, os.WriteFile(src, []byte("city,temp\nOslo,5\n"), 0o644))

	cmd := newTransformCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{src, "--step", "normalize:column=city"})
	err := cmd.ExecuteContext(context.Background())
	require.Error(t, err)
	assert.True(t, core.IsColumnTypeError(err))
}

func TestDemoWritesEveryFormat(t *testing.T) {
	dir := t.TempDir()
	var out bytes.Buffer
	require.NoError(t, runDemo(context.Background(), &out, 5, 120, 7, dir, internal.NewNopLogger()))

	for _, name := range []string{
		"processed_retail_orders.csv",
		"processed_retail_orders.json",
		"processed_retail_orders.xlsx",
		"analysis_report_retail_orders.txt",
		"analysis_report_retail_orders.md",
		"analysis_report_retail_orders.html",
	} {
		assert.FileExists(t, filepath.Join(dir, name))
	}
	assert.True(t, strings.HasPrefix(out.String(), "generated 120 orders"))
	assert.Contains(t, out.String(), "undid: Created new column row_id\n")
	assert.Contains(t, out.String(), "redid: Created new column row_id\n")
}
