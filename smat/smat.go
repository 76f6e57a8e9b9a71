// SPDX-License-Identifier: MIT
// Package: sweepcut/smat
//
// smat.go - text readers.
//
// Contract:
//   - Read never trusts the header: every entry is range-checked and the
//     number of entries must equal nnz. Header counts only bound the
//     preallocation; rows above MaxInt32 are rejected.
//   - Entries are stored in order of appearance within each row, so a file
//     listing both directions of every edge yields a symmetric graph.
//   - Errors are sentinels wrapped with the 1-based line (or token) number.

package smat

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/sweepcut/csr"
)

// Sentinel errors for parsing.
var (
	// ErrBadHeader indicates a missing or malformed "rows cols nnz" line.
	ErrBadHeader = errors.New("smat: malformed header")

	// ErrNonSquare indicates rows != cols; adjacency must be square.
	ErrNonSquare = errors.New("smat: matrix is not square")

	// ErrBadEntry indicates a malformed or out-of-range entry or token.
	ErrBadEntry = errors.New("smat: malformed entry")

	// ErrEntryCount indicates the number of entries disagrees with nnz.
	ErrEntryCount = errors.New("smat: entry count does not match header")
)

const (
	maxLine = 1 << 20

	// maxRows bounds the vertex count a header may declare.
	maxRows = math.MaxInt32

	// maxPrealloc caps capacity reserved from header counts; longer inputs
	// grow by append.
	maxPrealloc = 1 << 16
)

// Read parses a .smat stream into a zero-based graph.
func Read(r io.Reader) (*csr.Graph[int64, int64], error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxLine)

	var (
		line       int
		headerSeen bool
		rows, cols int64
		nnz        int64
		edges      []csr.Edge[int64]
	)
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}

		if !headerSeen {
			if len(fields) != 3 {
				return nil, fmt.Errorf("line %d: %w", line, ErrBadHeader)
			}
			var err error
			if rows, err = strconv.ParseInt(fields[0], 10, 64); err != nil || rows < 0 {
				return nil, fmt.Errorf("line %d: rows %q: %w", line, fields[0], ErrBadHeader)
			}
			if cols, err = strconv.ParseInt(fields[1], 10, 64); err != nil || cols < 0 {
				return nil, fmt.Errorf("line %d: cols %q: %w", line, fields[1], ErrBadHeader)
			}
			if nnz, err = strconv.ParseInt(fields[2], 10, 64); err != nil || nnz < 0 {
				return nil, fmt.Errorf("line %d: nnz %q: %w", line, fields[2], ErrBadHeader)
			}
			if rows != cols {
				return nil, fmt.Errorf("line %d: %dx%d: %w", line, rows, cols, ErrNonSquare)
			}
			if rows > maxRows {
				return nil, fmt.Errorf("line %d: rows %d exceeds %d: %w", line, rows, maxRows, ErrBadHeader)
			}
			edges = make([]csr.Edge[int64], 0, min(nnz, maxPrealloc))
			headerSeen = true

			continue
		}

		e, err := parseEntry(fields, rows)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if int64(len(edges)) == nnz {
			return nil, fmt.Errorf("line %d: more than %d entries: %w", line, nnz, ErrEntryCount)
		}
		edges = append(edges, e)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("smat: scan: %w", err)
	}
	if !headerSeen {
		return nil, fmt.Errorf("empty input: %w", ErrBadHeader)
	}
	if int64(len(edges)) != nnz {
		return nil, fmt.Errorf("got %d entries, header says %d: %w", len(edges), nnz, ErrEntryCount)
	}

	return csr.FromEdges[int64, int64](rows, 0, edges, false)
}

// parseEntry reads "i j [w]"; a missing weight is 1.
func parseEntry(fields []string, n int64) (csr.Edge[int64], error) {
	if len(fields) != 2 && len(fields) != 3 {
		return csr.Edge[int64]{}, fmt.Errorf("%d fields: %w", len(fields), ErrBadEntry)
	}
	i, err := strconv.ParseInt(fields[0], 10, 64)
	if err != nil || i < 0 || i >= n {
		return csr.Edge[int64]{}, fmt.Errorf("row %q: %w", fields[0], ErrBadEntry)
	}
	j, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil || j < 0 || j >= n {
		return csr.Edge[int64]{}, fmt.Errorf("col %q: %w", fields[1], ErrBadEntry)
	}
	w := 1.0
	if len(fields) == 3 {
		if w, err = strconv.ParseFloat(fields[2], 64); err != nil {
			return csr.Edge[int64]{}, fmt.Errorf("weight %q: %w", fields[2], ErrBadEntry)
		}
	}

	return csr.Edge[int64]{From: i, To: j, Weight: w}, nil
}

// ReadIDs parses "count id id ...". Ids are returned as written; the base
// convention is the caller's.
func ReadIDs(r io.Reader) ([]int64, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxLine)
	sc.Split(bufio.ScanWords)

	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("smat: scan: %w", err)
		}

		return nil, fmt.Errorf("missing count: %w", ErrBadHeader)
	}
	count, err := strconv.Atoi(sc.Text())
	if err != nil || count < 0 {
		return nil, fmt.Errorf("count %q: %w", sc.Text(), ErrBadHeader)
	}

	ids := make([]int64, 0, min(count, maxPrealloc))
	for len(ids) < count && sc.Scan() {
		id, err := strconv.ParseInt(sc.Text(), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("token %d: %q: %w", len(ids)+2, sc.Text(), ErrBadEntry)
		}
		ids = append(ids, id)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("smat: scan: %w", err)
	}
	if len(ids) != count {
		return nil, fmt.Errorf("got %d ids, header says %d: %w", len(ids), count, ErrEntryCount)
	}

	return ids, nil
}

// ReadFloats parses whitespace-separated floats until EOF.
func ReadFloats(r io.Reader) ([]float64, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxLine)
	sc.Split(bufio.ScanWords)

	var out []float64
	for sc.Scan() {
		v, err := strconv.ParseFloat(sc.Text(), 64)
		if err != nil {
			return nil, fmt.Errorf("token %d: %q: %w", len(out)+1, sc.Text(), ErrBadEntry)
		}
		out = append(out, v)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("smat: scan: %w", err)
	}

	return out, nil
}
