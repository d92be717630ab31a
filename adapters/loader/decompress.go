package loader

import (
	"archive/zip"
	"bytes"
	"compress/gzip"
	"errors"
	"io"
	"path"
	"path/filepath"
	"strings"

	"github.com/pierrec/lz4"
)

// decompress unwraps .gz, .lz4 and .zip payloads. It returns the inner
// file name (the name with the archive extension removed, or the largest
// zip member) and the unpacked bytes.
func decompress(name string, raw []byte) (string, []byte, error) {
	ext := strings.ToLower(filepath.Ext(name))
	switch ext {
	case ".gz":
		zr, err := gzip.NewReader(bytes.NewReader(raw))
		if err != nil {
			return "", nil, err
		}
		defer zr.Close()
		data, err := io.ReadAll(zr)
		return strings.TrimSuffix(name, filepath.Ext(name)), data, err
	case ".lz4":
		data, err := io.ReadAll(lz4.NewReader(bytes.NewReader(raw)))
		return strings.TrimSuffix(name, filepath.Ext(name)), data, err
	case ".zip":
		return unzipLargest(raw)
	default:
		return name, raw, nil
	}
}

func unzipLargest(raw []byte) (string, []byte, error) {
	zr, err := zip.NewReader(bytes.NewReader(raw), int64(len(raw)))
	if err != nil {
		return "", nil, err
	}

	var largest *zip.File
	for _, f := range zr.File {
		if f.FileInfo().IsDir() {
			continue
		}
		if largest == nil || f.UncompressedSize64 > largest.UncompressedSize64 {
			largest = f
		}
	}
	if largest == nil {
		return "", nil, errors.New("zip archive has no files")
	}

	rc, err := largest.Open()
	if err != nil {
		return "", nil, err
	}
	defer rc.Close()
	data, err := io.ReadAll(rc)
	return path.Base(largest.Name), data, err
}
