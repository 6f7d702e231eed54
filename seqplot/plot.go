// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-gg/table"
)

type plotConfig struct {
	Title string

	// Color draws each sequence in its own color. Otherwise all
	// sequences are one path broken at the separator rows.
	Color bool

	Width, Height int
}

// plot returns a plot of a flattened table with columns "x", "y", and
// "seq".
func plot(t table.Grouping, cfg plotConfig) *gg.Plot {
	plot := gg.NewPlot(t)

	layer := gg.LayerPaths{X: "x", Y: "y"}
	if cfg.Color {
		plot.Stat(seqLabel{})
		layer.Color = "sequence"
	}
	// Paths, not lines: the rows are already in drawing order and
	// sorting by x would interleave the sequences.
	plot.Add(layer)

	if cfg.Title != "" {
		plot.Add(gg.Title(cfg.Title))
	}
	return plot
}

func writePlot(w io.Writer, t table.Grouping, cfg plotConfig) error {
	return plot(t, cfg).WriteSVG(w, cfg.Width, cfg.Height)
}

// seqLabel adds a discrete "sequence" column naming the sequence of
// each row, so color is chosen from a palette rather than a gradient.
type seqLabel struct{}

func (seqLabel) F(g table.Grouping) table.Grouping {
	return table.MapCols(g,
		func(seq []int, label []string) {
			for i, s := range seq {
				label[i] = fmt.Sprintf("seq %d", s)
			}
		}, "seq")("sequence")
}
