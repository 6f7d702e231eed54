// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package flatten reshapes many short, equal-length sequences into a
// single tidy table suitable for a line renderer.
//
// A line renderer connects successive points. Concatenating several
// sequences naively would draw a spurious segment from the last point
// of one sequence to the first point of the next, so Flatten inserts a
// separator row with a missing y value between adjacent sequences.
// Renderers such as gg.LayerPaths break the path at that row.
package flatten

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrEmptyInput is returned when there are no sequences or
	// the sequences have no samples.
	ErrEmptyInput = errors.New("empty input")

	// ErrShapeMismatch is returned when the length of a sequence
	// differs from the length of the index.
	ErrShapeMismatch = errors.New("shape mismatch")
)

// Index gives the x position of each sample. It is shared by every
// sequence in a Matrix.
type Index []float64

// Matrix is a set of sequences, one per row. Every row must have
// the same length as the Index it is flattened with.
type Matrix [][]float64

// Row is a single (x, y) observation in a flattened table.
type Row struct {
	X, Y float64

	// Seq is the row of the Matrix this observation came from.
	// For a separator row, it is the sequence the separator
	// follows.
	Seq int

	// Missing is set on separator rows. Y is NaN on these rows,
	// but data values may also be NaN, so Missing is the only
	// reliable way to identify a separator.
	Missing bool
}

// Len returns the number of rows Flatten produces for n sequences of
// p samples each.
func Len(n, p int) int {
	if n <= 0 || p <= 0 {
		return 0
	}
	return n*p + n - 1
}

// Flatten returns the sequences of m as one table. Row i·(P+1)+j is
// (x[j], m[i][j]), and a separator row follows every sequence except
// the last. The separator repeats x[P-1].
func Flatten(x Index, m Matrix) ([]Row, error) {
	if err := check(x, m); err != nil {
		return nil, err
	}
	return appendRows(make([]Row, 0, Len(len(m), len(x))), x, m), nil
}

// AppendFlatten is like Flatten, but appends the rows to dst and
// returns the extended slice. If there is an error, dst is returned
// unchanged.
func AppendFlatten(dst []Row, x Index, m Matrix) ([]Row, error) {
	if err := check(x, m); err != nil {
		return dst, err
	}
	if need := len(dst) + Len(len(m), len(x)); need > cap(dst) {
		ndst := make([]Row, len(dst), need)
		copy(ndst, dst)
		dst = ndst
	}
	return appendRows(dst, x, m), nil
}

func check(x Index, m Matrix) error {
	if len(m) == 0 {
		return fmt.Errorf("flatten: no sequences: %w", ErrEmptyInput)
	}
	if len(x) == 0 {
		return fmt.Errorf("flatten: empty index: %w", ErrEmptyInput)
	}
	for i, seq := range m {
		if len(seq) == 0 {
			return fmt.Errorf("flatten: sequence %d is empty: %w", i, ErrEmptyInput)
		}
	}
	for i, seq := range m {
		if len(seq) != len(x) {
			return fmt.Errorf("flatten: sequence %d has %d samples, index has %d: %w", i, len(seq), len(x), ErrShapeMismatch)
		}
	}
	return nil
}

func appendRows(dst []Row, x Index, m Matrix) []Row {
	nan := math.NaN()
	last := x[len(x)-1]
	for i, seq := range m {
		if i > 0 {
			dst = append(dst, Row{X: last, Y: nan, Seq: i - 1, Missing: true})
		}
		for j, y := range seq {
			dst = append(dst, Row{X: x[j], Y: y, Seq: i})
		}
	}
	return dst
}
