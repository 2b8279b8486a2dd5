// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"testing"

	"github.com/biogo/ncbi/entrez"
	"gopkg.in/check.v1"
)

func Test(t *testing.T) { check.TestingT(t) }

type S struct{}

var _ = check.Suite(&S{})

var discard = log.New(io.Discard, "", 0)

// failingReader fails after returning its content.
type failingReader struct{ io.Reader }

func (failingReader) Close() error { return nil }

func (r failingReader) Read(b []byte) (int, error) {
	n, err := r.Reader.Read(b)
	if err == io.EOF {
		err = errors.New("connection reset")
	}
	return n, err
}

func (s *S) TestRetrieve(c *check.C) {
	var starts []int
	attempts := 0
	fetch := func(p *entrez.Parameters) (io.ReadCloser, error) {
		attempts++
		switch attempts {
		case 2:
			return nil, errors.New("timeout")
		case 3:
			return failingReader{strings.NewReader(">partial\n")}, nil
		}
		starts = append(starts, p.RetStart)
		return io.NopCloser(strings.NewReader(fmt.Sprintf(">batch%d\nACGT\n", p.RetStart))), nil
	}

	var buf bytes.Buffer
	n, err := retrieve(&buf, 5, 2, 3, discard, fetch)
	c.Assert(err, check.Equals, nil)
	c.Check(starts, check.DeepEquals, []int{0, 2, 4})
	c.Check(attempts, check.Equals, 5)
	c.Check(buf.String(), check.Equals, ">batch0\nACGT\n>batch2\nACGT\n>batch4\nACGT\n")
	c.Check(n, check.Equals, int64(buf.Len()))
}

func (s *S) TestRetrieveExceeded(c *check.C) {
	fetch := func(p *entrez.Parameters) (io.ReadCloser, error) {
		return nil, errors.New("timeout")
	}
	var buf bytes.Buffer
	_, err := retrieve(&buf, 1, 10, 3, discard, fetch)
	c.Check(err, check.ErrorMatches, "fetch: exceeded retries: last error: timeout")
	c.Check(buf.Len(), check.Equals, 0)

	_, err = retrieve(&buf, 1, 0, 3, discard, fetch)
	c.Check(err, check.ErrorMatches, "fetch: invalid batch size 0")
}

func (s *S) TestGeneQuery(c *check.C) {
	c.Check(geneQuery("TERT"), check.Equals, `TERT[Gene Name] AND "Homo sapiens"[Organism] AND refseqgene[Filter]`)
}
