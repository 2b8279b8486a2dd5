// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scan

import (
	"sort"

	"github.com/biogo/store/interval"
)

// record is an occurrence held in an interval tree.
type record struct {
	id uintptr
	Occurrence
}

func (r *record) Overlap(b interval.IntRange) bool {
	return r.End() > b.Start && r.Start < b.End
}
func (r *record) ID() uintptr { return r.id }
func (r *record) Range() interval.IntRange {
	return interval.IntRange{Start: r.Start, End: r.End()}
}

// query is a half-open interval used to search an Index.
type query struct {
	start, end int
}

func (q query) Overlap(b interval.IntRange) bool {
	return q.end > b.Start && q.start < b.End
}

// Index answers overlap queries over a set of occurrences.
type Index struct {
	t interval.IntTree
}

// NewIndex returns an Index holding the provided occurrences.
func NewIndex(occ []Occurrence) (*Index, error) {
	var idx Index
	for i, o := range occ {
		err := idx.t.Insert(&record{id: uintptr(i), Occurrence: o}, true)
		if err != nil {
			return nil, err
		}
	}
	idx.t.AdjustRanges()
	return &idx, nil
}

// Overlapping returns the occurrences overlapping [start, end), ordered by
// start and then motif ID.
func (idx *Index) Overlapping(start, end int) []Occurrence {
	if end <= start {
		return nil
	}
	var o []Occurrence
	for _, hit := range idx.t.Get(query{start: start, end: end}) {
		o = append(o, hit.(*record).Occurrence)
	}
	sort.Slice(o, func(i, j int) bool {
		if o[i].Start != o[j].Start {
			return o[i].Start < o[j].Start
		}
		return o[i].MotifID < o[j].MotifID
	})
	return o
}

// CoDisrupted returns the IDs of the motifs, other than o's own motif,
// that have an occurrence overlapping o. Each ID is reported once.
func (idx *Index) CoDisrupted(o Occurrence) []string {
	seen := map[string]bool{o.MotifID: true}
	var ids []string
	for _, hit := range idx.Overlapping(o.Start, o.End()) {
		if seen[hit.MotifID] {
			continue
		}
		seen[hit.MotifID] = true
		ids = append(ids, hit.MotifID)
	}
	return ids
}
