// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scan

import (
	"context"
	"testing"

	"gopkg.in/check.v1"

	"github.com/biogo/promoter/motif"
)

func Test(t *testing.T) { check.TestingT(t) }

type S struct{}

var _ = check.Suite(&S{})

func (s *S) TestScan(c *check.C) {
	for i, t := range []struct {
		seq     string
		pattern string
		offsets []int
	}{
		{"ACGTACGT", "ACG", []int{0, 4}},
		{"AAAAAA", "AA", []int{0, 2, 4}},
		{"AAAAA", "AAA", []int{0}},
		{"ACGTTT", "A.G", []int{0}},
		{"CATGCACG", "CA.G", []int{0, 4}},
		{"CCCC", "G", nil},
		{"AC", "ACG", nil},
		{"", "A", nil},
		{"ACGT", "....", []int{0}},
	} {
		h := Scan(t.seq, motif.Motif{ID: "m", Pattern: t.pattern})
		c.Check(h.Length, check.Equals, len(t.pattern), check.Commentf("Test %d", i))
		c.Check(h.Offsets, check.DeepEquals, t.offsets, check.Commentf("Test %d", i))
		for _, o := range h.Occurrences() {
			c.Check(o.End() <= len(t.seq), check.Equals, true, check.Commentf("Test %d", i))
		}
	}
}

func (s *S) TestScanLibrary(c *check.C) {
	lib, err := motif.NewLibrary([]motif.Motif{
		{ID: "M3", Pattern: "TTTT"},
		{ID: "M1", Pattern: "GG"},
		{ID: "M2", Pattern: "C.C"},
	})
	c.Assert(err, check.Equals, nil)
	const seq = "GGCACGGCTC"

	hits := Library(seq, lib)
	c.Assert(hits, check.HasLen, 2)
	c.Check(hits[0].Motif.ID, check.Equals, "M1")
	c.Check(hits[0].Offsets, check.DeepEquals, []int{0, 5})
	c.Check(hits[1].Motif.ID, check.Equals, "M2")
	c.Check(hits[1].Offsets, check.DeepEquals, []int{2, 7})

	conc, err := LibraryConcurrent(context.Background(), seq, lib, 2)
	c.Assert(err, check.Equals, nil)
	c.Check(conc, check.DeepEquals, hits)

	c.Check(Occurrences(hits), check.DeepEquals, []Occurrence{
		{MotifID: "M1", Start: 0, Length: 2},
		{MotifID: "M1", Start: 5, Length: 2},
		{MotifID: "M2", Start: 2, Length: 3},
		{MotifID: "M2", Start: 7, Length: 3},
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = LibraryConcurrent(ctx, seq, lib, 0)
	c.Check(err, check.Equals, context.Canceled)
}

func (s *S) TestIndex(c *check.C) {
	occ := []Occurrence{
		{MotifID: "M1", Start: 10, Length: 6},
		{MotifID: "M2", Start: 12, Length: 4},
		{MotifID: "M1", Start: 30, Length: 6},
		{MotifID: "M3", Start: 15, Length: 10},
		{MotifID: "M4", Start: 16, Length: 2},
	}
	idx, err := NewIndex(occ)
	c.Assert(err, check.Equals, nil)

	c.Check(idx.Overlapping(0, 10), check.HasLen, 0)
	c.Check(idx.Overlapping(20, 20), check.HasLen, 0)
	c.Check(idx.Overlapping(24, 31), check.DeepEquals, []Occurrence{
		{MotifID: "M3", Start: 15, Length: 10},
		{MotifID: "M1", Start: 30, Length: 6},
	})
	c.Check(idx.CoDisrupted(occ[0]), check.DeepEquals, []string{"M2", "M3"})
	c.Check(idx.CoDisrupted(occ[2]), check.HasLen, 0)
	c.Check(idx.CoDisrupted(occ[3]), check.DeepEquals, []string{"M1", "M2", "M4"})
}

func (s *S) TestOccupancy(c *check.C) {
	occ := []Occurrence{
		{MotifID: "M1", Start: 2, Length: 4},
		{MotifID: "M2", Start: 4, Length: 4},
		{MotifID: "M3", Start: 12, Length: 3},
	}
	o, err := NewOccupancy(20, occ)
	c.Assert(err, check.Equals, nil)
	c.Check(o.Covered(), check.Equals, 9)
	c.Check(o.Max(), check.Equals, 2)
	for i, want := range []int{0, 0, 1, 1, 2, 2, 1, 1, 0} {
		c.Check(o.At(i), check.Equals, want, check.Commentf("position %d", i))
	}

	empty, err := NewOccupancy(0, nil)
	c.Assert(err, check.Equals, nil)
	c.Check(empty.Covered(), check.Equals, 0)
}
