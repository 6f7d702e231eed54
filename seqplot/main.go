// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command seqplot plots many short sequences as separate lines.
//
// seqplot either synthesizes N sequences of P samples (-kind) or reads
// them from an input file with one sequence per line of
// whitespace-separated numbers. It flattens the sequences into a
// single x/y table with a missing y between adjacent sequences, so the
// renderer draws one polyline per sequence, and writes the result as
// an SVG plot or, with -table, as a text table.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"runtime"
	"runtime/pprof"
	"strings"

	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-seqplot/flatten"
	"github.com/aclements/go-seqplot/seqgen"
)

func main() {
	log.SetPrefix("seqplot: ")
	log.SetFlags(0)

	var (
		flagCPUProfile = flag.String("cpuprofile", "", "write CPU profile to `file`")
		flagMemProfile = flag.String("memprofile", "", "write heap profile to `file`")
		flagOut        = flag.String("o", "", "write output to `file` (default: stdout)")
		flagTable      = flag.Bool("table", false, "output a table instead of a plot")
		flagKind       = flag.String("kind", "", "synthesize sequences of `kind` ("+strings.Join(seqgen.Kinds(), ", ")+") instead of reading input")
		flagN          = flag.Int("n", 100, "synthesize `n` sequences")
		flagP          = flag.Int("p", 50, "synthesize `p` samples per sequence")
		flagXMax       = flag.Float64("xmax", 10, "synthesized index runs from 0 to `xmax`")
		flagNoise      = flag.Float64("noise", 0.1, "standard deviation of synthesized noise")
		flagSeed       = flag.Int64("seed", 1, "random `seed` for synthesized sequences")
		flagColor      = flag.Bool("color", false, "color each sequence differently")
		flagWidth      = flag.Int("w", 800, "plot width in pixels")
		flagHeight     = flag.Int("h", 500, "plot height in pixels")
		flagVerbose    = flag.Bool("v", false, "log input dimensions and bounds")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] [input]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() > 1 || (*flagKind != "" && flag.NArg() > 0) {
		flag.Usage()
		os.Exit(2)
	}

	if *flagCPUProfile != "" {
		f, err := os.Create(*flagCPUProfile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	if *flagMemProfile != "" {
		defer func() {
			runtime.GC()
			f, err := os.Create(*flagMemProfile)
			if err != nil {
				log.Fatal(err)
			}
			pprof.WriteHeapProfile(f)
			f.Close()
		}()
	}

	// Get sequences.
	var (
		x     flatten.Index
		m     flatten.Matrix
		title string
	)
	if *flagKind != "" {
		gen, err := seqgen.ByName(*flagKind)
		if err != nil {
			log.Fatal(err)
		}
		x, m = gen(rand.New(rand.NewSource(*flagSeed)), *flagN, *flagP, *flagXMax, *flagNoise)
		title = fmt.Sprintf("%d %s sequences", *flagN, *flagKind)
	} else {
		path := "-"
		if flag.NArg() == 1 {
			path = flag.Arg(0)
		}
		func() {
			f := os.Stdin
			if path != "-" {
				var err error
				f, err = os.Open(path)
				if err != nil {
					log.Fatal(err)
				}
				defer f.Close()
				title = path
			}

			var err error
			m, err = readMatrix(f)
			if err != nil {
				log.Fatalf("%s: %v", path, err)
			}
		}()
		if len(m) > 0 {
			x = seqgen.Linspace(0, float64(len(m[0])-1), len(m[0]))
		}
	}
	if *flagVerbose {
		lo, hi := seqgen.Bounds(m)
		log.Printf("%d sequences of %d samples, y in [%g, %g]", len(m), len(x), lo, hi)
	}

	// Flatten into one table.
	rows, err := flatten.Flatten(x, m)
	if err != nil {
		log.Fatal(err)
	}
	tab := flatten.Table(rows)

	// Prepare for output.
	f := os.Stdout
	if *flagOut != "" {
		var err error
		f, err = os.Create(*flagOut)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
	}

	// Output table.
	if *flagTable {
		table.Fprint(f, tab)
		return
	}

	// Plot.
	if err := writePlot(f, tab, plotConfig{
		Title:  title,
		Color:  *flagColor,
		Width:  *flagWidth,
		Height: *flagHeight,
	}); err != nil {
		log.Fatal(err)
	}
}
