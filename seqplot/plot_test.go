// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/aclements/go-seqplot/flatten"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRows(t *testing.T) []flatten.Row {
	t.Helper()
	rows, err := flatten.Flatten(flatten.Index{0, 1, 2, 3}, flatten.Matrix{
		{1, 2, 1, 2},
		{3, 4, 3, 4},
		{5, 6, 5, 6},
	})
	require.NoError(t, err)
	return rows
}

func TestWritePlot(t *testing.T) {
	tab := flatten.Table(testRows(t))

	var buf bytes.Buffer
	err := writePlot(&buf, tab, plotConfig{Title: "three", Width: 400, Height: 300})
	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "<svg")
	assert.Contains(t, out, "</svg>")

	// One path, broken into one subpath per sequence.
	assert.GreaterOrEqual(t, strings.Count(out, "M "), 3)
}

func TestWritePlotColor(t *testing.T) {
	tab := flatten.Table(testRows(t))

	var buf bytes.Buffer
	err := writePlot(&buf, tab, plotConfig{Color: true, Width: 400, Height: 300})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, strings.Count(buf.String(), "<path"), 3)
}

func TestSeqLabel(t *testing.T) {
	tab := flatten.Table(testRows(t))
	g := seqLabel{}.F(tab)
	labels := g.Table(g.Tables()[0]).MustColumn("sequence").([]string)
	require.Len(t, labels, flatten.Len(3, 4))
	assert.Equal(t, "seq 0", labels[0])
	assert.Equal(t, "seq 0", labels[4])
	assert.Equal(t, "seq 1", labels[5])
	assert.Equal(t, "seq 2", labels[len(labels)-1])
}
