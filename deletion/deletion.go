// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package deletion designs overlap-extension PCR junction primers that
// excise a motif occurrence from its surrounding sequence.
package deletion

import (
	"github.com/biogo/promoter/dna"
	"github.com/biogo/promoter/oligo"
	"github.com/biogo/promoter/scan"
)

// Flank is the number of bases taken from each side of the motif.
const Flank = 15

// margin is the number of bases that must remain after the right flank.
const margin = 1

// InBounds returns whether an occurrence of length n at start in a
// sequence of length size leaves room for both flanks.
func InBounds(size, start, n int) bool {
	return start >= Flank && start <= size-n-Flank-margin
}

// Design returns the junction primer pair deleting the occurrence o from
// seq. The forward primer joins the 15 bases 5' of the motif to the 15
// bases 3' of it; the reverse primer is its reverse complement.
func Design(seq string, o scan.Occurrence) (oligo.Pair, bool) {
	if !InBounds(len(seq), o.Start, o.Length) {
		return oligo.Pair{}, false
	}
	left := seq[o.Start-Flank : o.Start]
	right := seq[o.End() : o.End()+Flank]
	fwd := left + right
	return oligo.Pair{
		Key:     oligo.Key(o.MotifID, o.Start),
		Forward: fwd,
		Reverse: dna.RevComp(fwd),
	}, true
}

// DesignAll designs junction primers for every occurrence in hits,
// skipping occurrences too close to either end of seq.
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
