// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scan locates consensus motif occurrences in a DNA sequence.
package scan

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/biogo/promoter/motif"
)

// Occurrence is a single match of a motif in a sequence.
type Occurrence struct {
	MotifID string
	Start   int // 0-based, inclusive.
	Length  int
}

// End returns the end of the occurrence, exclusive.
func (o Occurrence) End() int { return o.Start + o.Length }

// Hits holds the matches of one motif. The pattern length and the match
// offsets are held separately; every occurrence spans Length bases.
type Hits struct {
	Motif   motif.Motif
	Length  int
	Offsets []int // Ascending.
}

// Occurrences returns the hits as a slice of Occurrence.
func (h Hits) Occurrences() []Occurrence {
	o := make([]Occurrence, len(h.Offsets))
	for i, off := range h.Offsets {
		o[i] = Occurrence{MotifID: h.Motif.ID, Start: off, Length: h.Length}
	}
	return o
}

// matchAt returns whether pattern matches seq at position i. The caller
// must ensure i+len(pattern) <= len(seq).
func matchAt(seq, pattern string, i int) bool {
	for j := 0; j < len(pattern); j++ {
		if p := pattern[j]; p != motif.Wildcard && p != seq[i+j] {
			return false
		}
	}
	return true
}

// Scan finds the non-overlapping occurrences of m in seq, searching left to
// right and resuming each search at the end of the previous match.
func Scan(seq string, m motif.Motif) Hits {
	h := Hits{Motif: m, Length: len(m.Pattern)}
	if h.Length == 0 {
		return h
	}
	for i := 0; i+h.Length <= len(seq); {
		if matchAt(seq, m.Pattern, i) {
			h.Offsets = append(h.Offsets, i)
			i += h.Length
			continue
		}
		i++
	}
	return h
}

// Library scans seq with every motif in lib, returning the motifs with at
// least one match in motif ID order.
func Library(seq string, lib *motif.Library) []Hits {
	var hits []Hits
	lib.Do(func(m motif.Motif) bool {
		if h := Scan(seq, m); len(h.Offsets) != 0 {
			hits = append(hits, h)
		}
		return false
	})
	return hits
}

// LibraryConcurrent is Library with the per-motif scans run concurrently
// on up to limit goroutines. A limit less than one places no limit. The
// result is identical to Library's.
func LibraryConcurrent(ctx context.Context, seq string, lib *motif.Library, limit int) ([]Hits, error) {
	motifs := lib.Motifs()
	all := make([]Hits, len(motifs))

	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, m := range motifs {
		i, m := i, m
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			all[i] = Scan(seq, m)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	hits := all[:0]
	for _, h := range all {
		if len(h.Offsets) != 0 {
			hits = append(hits, h)
		}
	}
	return hits, nil
}

// Occurrences flattens hits into a single slice, in motif then offset order.
func Occurrences(hits []Hits) []Occurrence {
	var o []Occurrence
	for _, h := range hits {
		o = append(o, h.Occurrences()...)
	}
	return o
}
