// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package report assembles and formats the per-motif perturbation designs
// for a gene.
package report

import (
	"github.com/biogo/promoter/cloning"
	"github.com/biogo/promoter/locus"
	"github.com/biogo/promoter/oligo"
	"github.com/biogo/promoter/scan"
)

// Record is the complete perturbation design for one motif occurrence.
type Record struct {
	Count   int // 1-based position in the report.
	MotifID string

	GuideUp   string
	GuideDown string

	DeletionForward string
	DeletionReverse string

	Start    int // Offset in the promoter+UTR.
	Length   int
	Location int // Position relative to the transcription start site.

	Pattern  string
	TFName   string
	TFFamily string

	// CoDisrupted lists the other motifs overlapping the occurrence,
	// which the deletion also removes.
	CoDisrupted []string
}

// Report is the design for a single gene.
type Report struct {
	Gene     string
	Records  []Record
	Strategy cloning.Strategy

	// Hits are the motif matches the records were designed from.
	Hits []scan.Hits

	PromoterLength int
	Covered        int // Promoter bases covered by at least one motif.
}

// Assemble builds the records for hits. An occurrence yields a record
// only when both a guide and a deletion primer pair were designed for it.
// Records are in hit order and numbered from one. idx may be nil.
func Assemble(hits []scan.Hits, guides, deletions []oligo.Pair, idx *scan.Index) []Record {
	g := byKey(guides)
	d := byKey(deletions)

	var recs []Record
	for _, h := range hits {
		for _, o := range h.Occurrences() {
			key := oligo.Key(o.MotifID, o.Start)
			gp, ok := g[key]
			if !ok {
				continue
			}
			dp, ok := d[key]
			if !ok {
				continue
			}
			r := Record{
				Count:           len(recs) + 1,
				MotifID:         o.MotifID,
				GuideUp:         gp.Forward,
				GuideDown:       gp.Reverse,
				DeletionForward: dp.Forward,
				DeletionReverse: dp.Reverse,
				Start:           o.Start,
				Length:          o.Length,
				Location:        locus.RelativeToTSS(o.Start),
				Pattern:         h.Motif.Pattern,
				TFName:          h.Motif.Name,
				TFFamily:        h.Motif.Family,
			}
			if idx != nil {
				r.CoDisrupted = idx.CoDisrupted(o)
			}
			recs = append(recs, r)
		}
	}
	return recs
}

func byKey(pairs []oligo.Pair) map[string]oligo.Pair {
	m := make(map[string]oligo.Pair, len(pairs))
	for _, p := range pairs {
		m[p.Key] = p
	}
	return m
}
