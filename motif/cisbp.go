// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package motif

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/multierr"
)

// CIS-BP TF information column names.
const (
	motifIDColumn = "Motif_ID"
	tfNameColumn  = "TF_Name"
	familyColumn  = "Family_Name"
)

// pwmSuffix is the file name suffix of CIS-BP PWM files.
const pwmSuffix = ".txt"

// ReadTFInfo reads a tab-separated CIS-BP TF information table and returns
// the TF annotation keyed by motif ID. Columns are located by the names in
// the header row. Rows without a motif have a Motif_ID of "." and are
// ignored. Later rows replace earlier rows for the same motif.
func ReadTFInfo(r io.Reader) (map[string]Metadata, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(nil, 1<<20)
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("motif: empty TF information table")
	}
	col := make(map[string]int)
	for i, name := range strings.Split(strings.TrimRight(sc.Text(), "\r"), "\t") {
		if _, dup := col[name]; !dup {
			col[name] = i
		}
	}
	var idx [3]int
	for i, name := range []string{motifIDColumn, tfNameColumn, familyColumn} {
		c, ok := col[name]
		if !ok {
			return nil, fmt.Errorf("motif: TF information table missing %s column", name)
		}
		idx[i] = c
	}
	width := idx[0]
	for _, c := range idx[1:] {
		if c > width {
			width = c
		}
	}

	info := make(map[string]Metadata)
	line := 1
	for sc.Scan() {
		line++
		text := strings.TrimRight(sc.Text(), "\r")
		if text == "" {
			continue
		}
		fields := strings.Split(text, "\t")
		if len(fields) <= width {
			return nil, fmt.Errorf("motif: TF information line %d: too few fields", line)
		}
		id := fields[idx[0]]
		if id == "." || id == "" {
			continue
		}
		info[id] = Metadata{Name: fields[idx[1]], Family: fields[idx[2]]}
	}
	return info, sc.Err()
}

// ReadPWMDir reads every CIS-BP PWM file in dir. The motif ID of each
// matrix is its file name without the ".txt" suffix. Failures for
// individual files are combined into the returned error; matrices that
// were read successfully are still returned.
func ReadPWMDir(dir string) (map[string]*Matrix, error) {
	ents, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	m := make(map[string]*Matrix)
	var errs error
	for _, e := range ents {
		if e.IsDir() || !strings.HasSuffix(e.Name(), pwmSuffix) {
			continue
		}
		id := strings.TrimSuffix(e.Name(), pwmSuffix)
		mat, err := readMatrixFile(id, filepath.Join(dir, e.Name()))
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		m[id] = mat
	}
	return m, errs
}

func readMatrixFile(id, path string) (*Matrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadMatrix(id, f)
}

// Rejection is a matrix that did not yield a usable consensus pattern.
type Rejection struct {
	ID        string
	Positions int
}

// Build derives consensus patterns for the provided matrices, annotates
// them with info and returns the resulting library. Matrices rejected by
// Consensus are returned in ID order. Motifs without an entry in info are
// kept with empty annotation.
func Build(matrices map[string]*Matrix, info map[string]Metadata) (*Library, []Rejection, error) {
	ids := make([]string, 0, len(matrices))
	for id := range matrices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var (
		motifs   []Motif
		rejected []Rejection
	)
	for _, id := range ids {
		m := matrices[id]
		p, ok := Consensus(m)
		if !ok {
			rejected = append(rejected, Rejection{ID: id, Positions: m.Len()})
			continue
		}
		motifs = append(motifs, Motif{ID: id, Pattern: p, Metadata: info[id]})
	}
	lib, err := NewLibrary(motifs)
	return lib, rejected, err
}

// LoadCISBP builds a library from a CIS-BP TF information file and a
// directory of PWM files.
//
// PWM files that cannot be read do not prevent the library from being
// built. In that case the library of the remaining matrices is returned
// together with the combined per-file errors, which may be split with
// multierr.Errors. A nil library is returned only when the TF information
// or the PWM directory cannot be read.
func LoadCISBP(infoPath, pwmDir string) (*Library, []Rejection, error) {
	f, err := os.Open(infoPath)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()
	info, err := ReadTFInfo(f)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", infoPath, err)
	}
	mats, errs := ReadPWMDir(pwmDir)
	if mats == nil {
		return nil, nil, errs
	}
	lib, rejected, err := Build(mats, info)
	if err != nil {
		return nil, nil, multierr.Append(errs, err)
	}
	return lib, rejected, errs
}
