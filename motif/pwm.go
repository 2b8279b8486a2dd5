// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package motif

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Bases is the column order of a Matrix.
const Bases = "ACGT"

// Matrix is a position frequency matrix with one row per motif position
// and one column per base in Bases order.
type Matrix struct {
	ID   string
	freq *mat.Dense // nil for a matrix with no positions.
}

// sumTolerance is the rounding error allowed in the sum of a matrix row.
const sumTolerance = 1e-3

// NewMatrix returns a Matrix holding the provided rows. Each row must
// hold exactly four frequencies in [0, 1] summing to at most one, so
// that no more than one base of a row can exceed one half.
func NewMatrix(id string, rows [][]float64) (*Matrix, error) {
	m := &Matrix{ID: id}
	if len(rows) == 0 {
		return m, nil
	}
	data := make([]float64, 0, len(rows)*len(Bases))
	for i, r := range rows {
		if len(r) != len(Bases) {
			return nil, fmt.Errorf("motif: %s row %d has %d columns, want %d", id, i+1, len(r), len(Bases))
		}
		var sum float64
		for j, f := range r {
			if f < 0 || f > 1 {
				return nil, fmt.Errorf("motif: %s row %d column %c frequency %v out of range", id, i+1, Bases[j], f)
			}
			sum += f
		}
		if sum > 1+sumTolerance {
			return nil, fmt.Errorf("motif: %s row %d frequencies sum to %v", id, i+1, sum)
		}
		data = append(data, r...)
	}
	m.freq = mat.NewDense(len(rows), len(Bases), data)
	return m, nil
}

// Len returns the number of positions in the matrix.
func (m *Matrix) Len() int {
	if m.freq == nil {
		return 0
	}
	r, _ := m.freq.Dims()
	return r
}

// Row returns the base frequencies at position i.
func (m *Matrix) Row(i int) []float64 {
	return mat.Row(nil, i, m.freq)
}

// ReadMatrix reads a CIS-BP position weight matrix. The first line is a
// header and each following line holds a position number followed by the
// A, C, G and T frequencies, separated by tabs. A file holding only the
// header describes an empty matrix.
func ReadMatrix(id string, r io.Reader) (*Matrix, error) {
	sc := bufio.NewScanner(r)
	var (
		rows   [][]float64
		line   int
		header bool
	)
	for sc.Scan() {
		line++
		text := strings.TrimRight(sc.Text(), "\r")
		if !header {
			header = true
			continue
		}
		if strings.TrimSpace(text) == "" {
			continue
		}
		fields := strings.Split(text, "\t")
		if len(fields) < 1+len(Bases) {
			return nil, fmt.Errorf("motif: %s line %d: too few fields", id, line)
		}
		row := make([]float64, len(Bases))
		for j := range row {
			f, err := strconv.ParseFloat(strings.TrimSpace(fields[j+1]), 64)
			if err != nil {
				return nil, fmt.Errorf("motif: %s line %d: %w", id, line, err)
			}
			row[j] = f
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if !header {
		return nil, errors.New("motif: " + id + ": empty matrix file")
	}
	return NewMatrix(id, rows)
}
