package loader

import (
	"archive/zip"
	"bytes"
	"compress/gzip"
	"context"
	"strings"
	"testing"

	"github.com/pierrec/lz4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"gocsvlab/domain/core"
	"gocsvlab/domain/dataset"
	"gocsvlab/internal"
)

func newReader() *DataReader {
	return NewDataReader(internal.NewNopLogger())
}

func cells(records []dataset.Record, column string) []string {
	out := make([]string, len(records))
	for i, r := range records {
		v, _ := r.Get(column)
		out[i] = v.String()
	}
	return out
}

func TestLoadCSV(t *testing.T) {
	src := "name, score ,city\n" +
		"ann,10,\"Oslo, NO\"\n" +
		"\n" +
		"bob,,\"say \"\"hi\"\"\"\n" +
		"cy,7\n"

	res, err := newReader().Load(context.Background(), "people.csv", strings.NewReader(src))
	require.NoError(t, err)

	assert.Equal(t, "people.csv", res.FileName)
	assert.Equal(t, FormatCSV, res.Format)
	require.Len(t, res.Records, 3)
	assert.Equal(t, []string{"name", "score", "city"}, res.Records[0].Keys())
	assert.Equal(t, []string{"Oslo, NO", `say "hi"`, ""}, cells(res.Records, "city"))

	score, _ := res.Records[1].Get("score")
	assert.True(t, score.IsMissing())
	city, _ := res.Records[2].Get("city")
	assert.True(t, city.IsMissing(), "short rows are padded with missing values")
}

func TestLoadCSVIgnoresExtraFields(t *testing.T) {
	res, err := newReader().Load(context.Background(), "a.csv", strings.NewReader("a,b\n1,2,3\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, res.Records[0].Keys())
}

func TestLoadTSV(t *testing.T) {
	res, err := newReader().Load(context.Background(), "a.tsv", strings.NewReader("a\tb\nx,y\t2\n"))
	require.NoError(t, err)
	assert.Equal(t, FormatTSV, res.Format)
	assert.Equal(t, []string{"x,y"}, cells(res.Records, "a"))
}

func TestLoadJSON(t *testing.T) {
	src := `[{"z": "north", "n": 1.5, "ok": true, "none": null, "nested": {"k": 1}},
	         {"n": 2, "z": ""}]`
	res, err := newReader().Load(context.Background(), "rows.json", strings.NewReader(src))
	require.NoError(t, err)

	require.Len(t, res.Records, 2)
	assert.Equal(t, []string{"z", "n", "ok", "none", "nested"}, res.Records[0].Keys())

	n, _ := res.Records[0].Get("n")
	assert.True(t, n.IsNumeric())
	ok, _ := res.Records[0].Get("ok")
	assert.Equal(t, "true", ok.String())
	none, _ := res.Records[0].Get("none")
	assert.True(t, none.IsMissing())
	nested, _ := res.Records[0].Get("nested")
	assert.Equal(t, `{"k": 1}`, nested.String())
	z, _ := res.Records[1].Get("z")
	assert.True(t, z.IsMissing())
}

func TestLoadXLSX(t *testing.T) {
	f := excelize.NewFile()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]interface{}{"item", "qty"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]interface{}{"pen", 3}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A3", &[]interface{}{"ink"}))
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))

	res, err := newReader().Load(context.Background(), "stock.xlsx", &buf)
	require.NoError(t, err)
	assert.Equal(t, FormatXLSX, res.Format)
	assert.Equal(t, []string{"pen", "ink"}, cells(res.Records, "item"))
	assert.Equal(t, []string{"3", ""}, cells(res.Records, "qty"))
}

func TestLoadCompressed(t *testing.T) {
	src := []byte("a,b\n1,2\n")

	var gz bytes.Buffer
	zw := gzip.NewWriter(&gz)
	_, err := zw.Write(src)
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	var lz bytes.Buffer
	lw := lz4.NewWriter(&lz)
	_, err = lw.Write(src)
	require.NoError(t, err)
	require.NoError(t, lw.Close())

	var zp bytes.Buffer
	archive := zip.NewWriter(&zp)
	w, err := archive.Create("inner/data.csv")
	require.NoError(t, err)
	_, err = w.Write(src)
	require.NoError(t, err)
	require.NoError(t, archive.Close())

	tests := []struct {
		name string
		data []byte
	}{
		{"data.csv.gz", gz.Bytes()},
		{"data.csv.lz4", lz.Bytes()},
		{"bundle.zip", zp.Bytes()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := newReader().Load(context.Background(), tt.name, bytes.NewReader(tt.data))
			require.NoError(t, err)
			assert.Equal(t, "data.csv", res.FileName)
			assert.Equal(t, []string{"1"}, cells(res.Records, "a"))
		})
	}
}

func TestLoadFailures(t *testing.T) {
	tests := []struct {
		name string
		file string
		src  string
	}{
		{"unsupported", "a.parquet", "x"},
		{"empty csv", "a.csv", ""},
		{"header only", "a.csv", "a,b\n"},
		{"invalid json", "a.json", "{"},
		{"json object", "a.json", `{"a": 1}`},
		{"json scalars", "a.json", `[1, 2]`},
		{"empty json array", "a.json", `[]`},
		{"bad xlsx", "a.xlsx", "not a workbook"},
		{"bad gzip", "a.csv.gz", "plain"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newReader().Load(context.Background(), tt.file, strings.NewReader(tt.src))
			require.Error(t, err)
			assert.True(t, core.IsParseError(err), "got %v", err)
		})
	}
}

func TestLoadHonorsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := newReader().Load(ctx, "a.csv", strings.NewReader("a\n1\n"))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDetectFormat(t *testing.T) {
	assert.Equal(t, FormatCSV, DetectFormat("A.CSV"))
	assert.Equal(t, FormatTSV, DetectFormat("a.tsv"))
	assert.Equal(t, FormatXLSX, DetectFormat("a.xlsx"))
	assert.Equal(t, FormatJSON, DetectFormat("a.json"))
	assert.Equal(t, "", DetectFormat("a.pdf"))
}
