// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flatten

import (
	"math"

	"github.com/aclements/go-gg/table"
)

// Columns splits rows into x and y columns. The y value of a
// separator row is NaN.
func Columns(rows []Row) (xs, ys []float64) {
	xs, ys = make([]float64, len(rows)), make([]float64, len(rows))
	nan := math.NaN()
	for i, r := range rows {
		xs[i] = r.X
		if r.Missing {
			ys[i] = nan
		} else {
			ys[i] = r.Y
		}
	}
	return
}

// Table returns rows as a table with columns "x", "y", and "seq".
// Separator rows have a NaN "y", which gg breaks paths at.
func Table(rows []Row) *table.Table {
	xs, ys := Columns(rows)
	seqs := make([]int, len(rows))
	for i, r := range rows {
		seqs[i] = r.Seq
	}
	return new(table.Builder).
		Add("x", xs).
		Add("y", ys).
		Add("seq", seqs).
		Done()
}
