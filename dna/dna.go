// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dna provides the small set of sequence operations needed for
// oligonucleotide design: normalisation, validation and reverse
// complementation of DNA held as plain strings.
package dna

import (
	"fmt"
	"strings"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/seq/linear"
)

// InvalidBaseError is returned when a sequence contains a letter outside
// the unambiguous DNA alphabet.
type InvalidBaseError struct {
	Pos    int
	Letter byte
}

func (e *InvalidBaseError) Error() string {
	return fmt.Sprintf("dna: invalid base %q at position %d", e.Letter, e.Pos)
}

// Valid returns an error if s contains anything other than A, C, G or T
// in either case.
func Valid(s string) error {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case 'A', 'C', 'G', 'T', 'a', 'c', 'g', 't':
		default:
			return &InvalidBaseError{Pos: i, Letter: s[i]}
		}
	}
	return nil
}

// Normalize returns s upper-cased after checking it is valid DNA.
func Normalize(s string) (string, error) {
	if err := Valid(s); err != nil {
		return "", err
	}
	return strings.ToUpper(s), nil
}

// RevComp returns the reverse complement of s. Letters are complemented
// using the redundant DNA alphabet, so N and the IUPAC ambiguity codes
// survive the round trip.
func RevComp(s string) string {
	if s == "" {
		return ""
	}
	ls := linear.NewSeq("", alphabet.BytesToLetters([]byte(s)), alphabet.DNAredundant)
	ls.RevComp()
	return string(alphabet.LettersToBytes(ls.Seq))
}

// IndexFrom returns the index of the first instance of sub in s at or
// after from, or -1 if sub is not present.
func IndexFrom(s, sub string, from int) int {
	if from < 0 {
		from = 0
	}
	if from > len(s) {
		return -1
	}
	i := strings.Index(s[from:], sub)
	if i < 0 {
		return -1
	}
	return from + i
}
