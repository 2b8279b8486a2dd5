// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cloning selects restriction sites for cloning a whole gene locus
// into a vector and designs the primers that amplify it.
package cloning

import (
	"errors"
	"strconv"
	"strings"

	"github.com/biogo/promoter/dna"
)

const (
	// Clamp is the 5' buffer added to each primer so the restriction
	// enzyme can cut close to the amplicon end.
	Clamp = "ATAT"

	// Anneal is the number of locus bases at the 3' end of each primer.
	Anneal = 18
)

var (
	// ErrNoCloningSite is returned when fewer than two sites in the table
	// are absent from the locus.
	ErrNoCloningSite = errors.New("cloning: no viable cloning strategy")

	// ErrLocusTooShort is returned when the locus is shorter than the
	// annealing region of a primer.
	ErrLocusTooShort = errors.New("cloning: locus too short for primer design")
)

// Strategy is a whole-locus cloning design.
type Strategy struct {
	// Enzymes are the enzyme names for Sites, in selection order, as
	// resolved by Table.Lookup. A name is empty when the table holds no
	// name for the site.
	Enzymes [2]string
	Sites   [2]string

	Forward string
	Reverse string

	// Amplicon is the length of the amplified locus.
	Amplicon int

	// Defects lists table defects affecting the selected sites.
	Defects []Defect
}

// AmpliconLength returns the amplicon length with its unit.
func (s Strategy) AmpliconLength() string {
	return strconv.Itoa(s.Amplicon) + "bp"
}

// Select picks the first two distinct recognition sequences of t, in
// table order, that do not occur in the locus formed by left, promoter and
// right, and designs primers carrying them. The forward primer anneals to
// the start of the locus and the reverse primer to the start of its
// reverse complement.
func Select(t Table, left, promoter, right string) (Strategy, error) {
	locus := left + promoter + right
	if len(locus) < Anneal {
		return Strategy{}, ErrLocusTooShort
	}

	var (
		sites [2]string
		n     int
	)
	for _, s := range t {
		if n == len(sites) {
			break
		}
		if n == 1 && s.Recognition == sites[0] {
			continue
		}
		if !strings.Contains(locus, s.Recognition) {
			sites[n] = s.Recognition
			n++
		}
	}
	if n < len(sites) {
		return Strategy{}, ErrNoCloningSite
	}

	st := Strategy{
		Sites:    sites,
		Forward:  Clamp + sites[0] + locus[:Anneal],
		Reverse:  Clamp + sites[1] + dna.RevComp(locus[len(locus)-Anneal:]),
		Amplicon: len(locus),
	}
	for i, site := range sites {
		st.Enzymes[i], _ = t.Lookup(site)
	}
	for _, d := range t.Defects() {
		if d.Site.Recognition == sites[0] || d.Site.Recognition == sites[1] {
			st.Defects = append(st.Defects, d)
		}
	}
	return st, nil
}
