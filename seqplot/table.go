// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/aclements/go-seqplot/flatten"
)

// readMatrix reads one sequence per line of whitespace-separated
// numbers. Blank lines and lines starting with "#" are skipped. "NaN"
// is accepted as a sample.
//
// readMatrix does not check that the sequences have the same length;
// flatten.Flatten reports that.
func readMatrix(r io.Reader) (flatten.Matrix, error) {
	var m flatten.Matrix
	scanner := bufio.NewScanner(r)
	scanner.Buffer(nil, 16<<20)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		seq := make([]float64, len(fields))
		for i, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: bad sample %q", lineNo, f)
			}
			seq[i] = v
		}
		m = append(m, seq)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return m, nil
}
