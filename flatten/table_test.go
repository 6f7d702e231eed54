// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flatten

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable(t *testing.T) {
	rows, err := Flatten(Index{0, 1, 2}, Matrix{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
	require.NoError(t, err)

	tab := Table(rows)
	require.Equal(t, []string{"x", "y", "seq"}, tab.Columns())
	require.Equal(t, len(rows), tab.Len())

	xs := tab.MustColumn("x").([]float64)
	ys := tab.MustColumn("y").([]float64)
	seqs := tab.MustColumn("seq").([]int)
	assert.Equal(t, []float64{0, 1, 2, 2, 0, 1, 2, 2, 0, 1, 2}, xs)
	assert.Equal(t, []int{0, 0, 0, 0, 1, 1, 1, 1, 2, 2, 2}, seqs)

	wantY := []float64{1, 2, 3, -1, 4, 5, 6, -1, 7, 8, 9}
	for i, y := range ys {
		if wantY[i] == -1 {
			assert.True(t, math.IsNaN(y), "y[%d] = %v, want NaN", i, y)
		} else {
			assert.Equal(t, wantY[i], y, "y[%d]", i)
		}
	}
}

func TestColumnsMissing(t *testing.T) {
	// Missing wins even if Y was overwritten with a real value.
	rows := []Row{{X: 1, Y: 1}, {X: 1, Y: 5, Missing: true}, {X: 2, Y: 2}}
	xs, ys := Columns(rows)
	assert.Equal(t, []float64{1, 1, 2}, xs)
	assert.Equal(t, 1.0, ys[0])
	assert.True(t, math.IsNaN(ys[1]))
	assert.Equal(t, 2.0, ys[2])
}

func TestColumnsEmpty(t *testing.T) {
	xs, ys := Columns(nil)
	assert.Empty(t, xs)
	assert.Empty(t, ys)
}
