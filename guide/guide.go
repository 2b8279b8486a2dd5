// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package guide designs SpCas9 single guide RNA cloning oligos targeting
// motif occurrences. Oligos carry BbsI-compatible overhangs for cloning
// into a U6 promoter vector such as pX330.
package guide

import (
	"github.com/biogo/promoter/dna"
	"github.com/biogo/promoter/oligo"
	"github.com/biogo/promoter/scan"
)

const (
	// PAM is the two base core of the NGG protospacer adjacent motif.
	PAM = "GG"

	// SpacerLength is the length of the guide spacer.
	SpacerLength = 20

	// MinStart is the largest occurrence start that cannot be targeted.
	MinStart = 22

	// UpOverhang and DownOverhang are the 5' extensions of the top and
	// bottom strand oligos. DownTail is appended to the bottom oligo.
	UpOverhang   = "CACCG"
	DownOverhang = "AAAC"
	DownTail     = "C"
)

// Spacer returns the 20 base spacer whose PAM is the first "GG" at or
// after start in seq, and the index of that PAM core. Spacer returns false
// if start is too close to the 5' end, if no PAM follows start, or if the
// spacer would begin before the start of seq.
func Spacer(seq string, start int) (spacer string, pam int, ok bool) {
	if start <= MinStart {
		return "", -1, false
	}
	pam = dna.IndexFrom(seq, PAM, start)
	if pam < 0 {
		return "", -1, false
	}
	// The spacer ends one base before the PAM core, leaving room for
	// the N of NGG.
	from := pam - SpacerLength - 1
	if from < 0 {
		return "", pam, false
	}
	return seq[from : from+SpacerLength], pam, true
}

// Design returns the guide oligo pair for the occurrence o in seq. The
// forward oligo is the top strand and the reverse oligo is the bottom
// strand of the annealed duplex.
func Design(seq string, o scan.Occurrence) (oligo.Pair, bool) {
	sp, _, ok := Spacer(seq, o.Start)
	if !ok {
		return oligo.Pair{}, false
	}
	return oligo.Pair{
		Key:     oligo.Key(o.MotifID, o.Start),
		Forward: UpOverhang + sp,
		Reverse: DownOverhang + dna.RevComp(sp) + DownTail,
	}, true
}

// DesignAll designs guides for every occurrence in hits, skipping
// occurrences that cannot be targeted. Pairs are returned in hit order.
func DesignAll(seq string, hits []scan.Hits) []oligo.Pair {
	var pairs []oligo.Pair
	for _, h := range hits {
		for _, o := range h.Occurrences() {
			if p, ok := Design(seq, o); ok {
				pairs = append(pairs, p)
			}
		}
	}
	return pairs
}
