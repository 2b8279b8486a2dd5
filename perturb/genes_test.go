// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"path/filepath"
	"strings"

	"gopkg.in/check.v1"

	"github.com/biogo/promoter/internal/tert"
	"github.com/biogo/promoter/locus"
)

func loadTERT(c *check.C) *locus.Table {
	tab, err := locus.LoadTable(
		filepath.Join("..", "testdata", "TERT_upstream.fa"),
		filepath.Join("..", "testdata", "TERT_downstream.fa"),
	)
	c.Assert(err, check.Equals, nil)
	return tab
}

func (s *S) TestListLoci(c *check.C) {
	var buf bytes.Buffer
	c.Assert(listLoci(&buf, loadTERT(c), []string{"TERT"}), check.Equals, nil)
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	c.Assert(lines, check.HasLen, 2)
	c.Check(strings.Fields(lines[1]), check.DeepEquals, []string{"TERT", "500", "1058", "500", "2058"})

	err := listLoci(&buf, loadTERT(c), []string{"NOSEQ"})
	c.Check(err, check.ErrorMatches, `locus: gene "NOSEQ" has no usable sequence: .*`)
}

func (s *S) TestWriteLoci(c *check.C) {
	var buf bytes.Buffer
	c.Assert(writeLoci(&buf, loadTERT(c), []string{"TERT"}), check.Equals, nil)
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	c.Check(lines[0], check.Equals, ">TERT promoter+utr=501-1558 tss=1501")
	c.Check(strings.Join(lines[1:], ""), check.Equals, tert.LeftArm+tert.Promoter+tert.RightArm)
	for _, l := range lines[1 : len(lines)-1] {
		c.Check(l, check.HasLen, 60)
	}
}
