package smat

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"

	"github.com/katalvlaran/sweepcut/csr"
)

// Open opens path for reading, decompressing by extension: ".gz" (gzip) and
// ".zst"/".zstd" (zstd). Any other name is returned as is.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("smat: open %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		zr, err := gzip.NewReader(f)
		if err != nil {
			f.Close()

			return nil, fmt.Errorf("smat: gzip %s: %w", path, err)
		}

		return &stackedReader{Reader: zr, closers: []io.Closer{zr, f}}, nil
	case ".zst", ".zstd":
		dec, err := zstd.NewReader(f)
		if err != nil {
			f.Close()

			return nil, fmt.Errorf("smat: zstd %s: %w", path, err)
		}
		rc := dec.IOReadCloser()

		return &stackedReader{Reader: rc, closers: []io.Closer{rc, f}}, nil
	default:
		return f, nil
	}
}

// stackedReader closes a decompressor and its underlying file together.
type stackedReader struct {
	io.Reader
	closers []io.Closer
}

func (s *stackedReader) Close() error {
	var errs []error
	for _, c := range s.closers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// ReadFile opens and parses a .smat graph file.
func ReadFile(path string) (*csr.Graph[int64, int64], error) {
	return load(path, Read)
}

// ReadIDsFile opens and parses a candidate id file.
func ReadIDsFile(path string) ([]int64, error) {
	return load(path, ReadIDs)
}

// ReadFloatsFile opens and parses a vector file.
func ReadFloatsFile(path string) ([]float64, error) {
	return load(path, ReadFloats)
}

func load[T any](path string, parse func(io.Reader) (T, error)) (T, error) {
	var zero T
	rc, err := Open(path)
	if err != nil {
		return zero, err
	}
	defer rc.Close()

	out, err := parse(rc)
	if err != nil {
		return zero, fmt.Errorf("smat: %s: %w", path, err)
	}

	return out, nil
}
