// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dna

import (
	"testing"

	"gopkg.in/check.v1"
)

func Test(t *testing.T) { check.TestingT(t) }

type S struct{}

var _ = check.Suite(&S{})

func (s *S) TestRevComp(c *check.C) {
	for i, t := range []struct {
		in, rc string
	}{
		{"", ""},
		{"A", "T"},
		{"AGTC", "GACT"},
		{"CCAGGACCGCGCTTCCCACG", "CGTGGGAAGCGCGGTCCTGG"},
		{"acgtn", "nacgt"},
	} {
		c.Check(RevComp(t.in), check.Equals, t.rc, check.Commentf("Test %d", i))
	}
}

func (s *S) TestRevCompInvolution(c *check.C) {
	for i, in := range []string{
		"",
		"G",
		"GATTACA",
		"TAAAATTGTGTTTTCTATGTTGGCTTCTCTGCAGAGAACCAGTGTAAGC",
		"CGCGCGAATTCGCGCG",
	} {
		c.Check(RevComp(RevComp(in)), check.Equals, in, check.Commentf("Test %d", i))
	}
}

func (s *S) TestNormalize(c *check.C) {
	got, err := Normalize("acgtACGT")
	c.Check(err, check.Equals, nil)
	c.Check(got, check.Equals, "ACGTACGT")

	_, err = Normalize("ACGNT")
	c.Assert(err, check.NotNil)
	ib, ok := err.(*InvalidBaseError)
	c.Assert(ok, check.Equals, true)
	c.Check(ib.Pos, check.Equals, 3)
	c.Check(ib.Letter, check.Equals, byte('N'))

	_, err = Normalize("Sequence unavailable")
	c.Check(err, check.NotNil)
}

func (s *S) TestIndexFrom(c *check.C) {
	for i, t := range []struct {
		s, sub string
		from   int
		want   int
	}{
		{"AAGGAAGG", "GG", 0, 2},
		{"AAGGAAGG", "GG", 2, 2},
		{"AAGGAAGG", "GG", 3, 6},
		{"AAGGAAGG", "GG", 7, -1},
		{"AAGGAAGG", "GG", 8, -1},
		{"AAGGAAGG", "GG", 9, -1},
		{"AAGGAAGG", "GG", -4, 2},
	} {
		c.Check(IndexFrom(t.s, t.sub, t.from), check.Equals, t.want, check.Commentf("Test %d", i))
	}
}
