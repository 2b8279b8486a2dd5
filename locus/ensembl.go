// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package locus

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"

	"github.com/biogo/promoter/dna"
)

const (
	// ArmLength is the length of each homology arm.
	ArmLength = 500

	// UpstreamLength is the number of bases upstream of the
	// transcription start site held in an upstream export record.
	UpstreamLength = 1500

	// TSSOffset is the offset of the transcription start site in the
	// promoter+UTR region.
	TSSOffset = UpstreamLength - ArmLength

	// DownstreamLength is the number of genomic bases following the
	// 5' UTR held in a downstream export record.
	DownstreamLength = 1000
)

// Table is a Provider backed by Ensembl BioMart FASTA exports of human
// genes. A Table must not be modified once it is in use.
type Table struct {
	left     map[string]string
	promoter map[string]string
	right    map[string]string

	// Reasons for skipping the first unusable
	// record of genes in each export.
	badUpstream   map[string]error
	badDownstream map[string]error
}

// NewTable returns an empty Table.
func NewTable() *Table {
	return &Table{
		left:     make(map[string]string),
		promoter: make(map[string]string),
		right:    make(map[string]string),

		badUpstream:   make(map[string]error),
		badDownstream: make(map[string]error),
	}
}

// LoadTable returns a Table filled from the upstream and downstream
// export files.
func LoadTable(upstream, downstream string) (*Table, error) {
	t := NewTable()
	for _, f := range []struct {
		path string
		read func(io.Reader) error
	}{
		{upstream, t.ReadUpstream},
		{downstream, t.ReadDownstream},
	} {
		r, err := os.Open(f.path)
		if err != nil {
			return nil, err
		}
		err = f.read(r)
		r.Close()
		if err != nil {
			return nil, err
		}
	}
	return t, nil
}

// geneName returns the gene name field of an Ensembl header,
// GeneStableID|GeneName[|TranscriptStableID].
func geneName(id string) string {
	f := strings.Split(id, "|")
	if len(f) < 2 {
		return ""
	}
	return f[1]
}

// records calls fn with the gene name and upper-cased sequence of each
// record in r that has a gene name. If the sequence is not DNA, for
// example "Sequence unavailable" or a run of N, fn is called with the
// validation error instead.
func records(r io.Reader, fn func(gene, seq string, err error)) error {
	sc := seqio.NewScanner(fasta.NewReader(r, linear.NewSeq("", nil, alphabet.DNA)))
	for sc.Next() {
		s := sc.Seq().(*linear.Seq)
		gene := geneName(s.Name())
		if gene == "" {
			continue
		}
		seq, err := dna.Normalize(string(alphabet.LettersToBytes(s.Seq)))
		fn(gene, seq, err)
	}
	return sc.Error()
}

// skip records why a record for gene was not used unless an
// earlier reason is held.
func skip(bad map[string]error, gene string, err error) {
	if _, ok := bad[gene]; !ok {
		bad[gene] = err
	}
}

// ReadUpstream reads an export of 1500 bases upstream of the transcription
// start site plus the 5' UTR. The first 500 bases of each record are the
// left homology arm and the remainder is the promoter+UTR. Records shorter
// than 1500 bases or holding letters other than A, C, G and T are skipped
// and the first usable record for a gene is kept. A gene with only skipped
// records is reported with an *UnavailableError.
func (t *Table) ReadUpstream(r io.Reader) error {
	return records(r, func(gene, seq string, err error) {
		if _, ok := t.left[gene]; ok {
			return
		}
		if err == nil && len(seq) < UpstreamLength {
			err = fmt.Errorf("upstream record has %d bases, want at least %d", len(seq), UpstreamLength)
		}
		if err != nil {
			skip(t.badUpstream, gene, err)
			return
		}
		t.left[gene] = seq[:ArmLength]
		t.promoter[gene] = seq[ArmLength:]
	})
}

// ReadDownstream reads an export of the 5' UTR plus 1000 genomic bases
// downstream of it. The right homology arm is the 500 bases following the
// UTR. Records shorter than 1000 bases or holding letters other than A, C,
// G and T are skipped and the first usable record for a gene is kept.
func (t *Table) ReadDownstream(r io.Reader) error {
	return records(r, func(gene, seq string, err error) {
		if _, ok := t.right[gene]; ok {
			return
		}
		if err == nil && len(seq) < DownstreamLength {
			err = fmt.Errorf("downstream record has %d bases, want at least %d", len(seq), DownstreamLength)
		}
		if err != nil {
			skip(t.badDownstream, gene, err)
			return
		}
		utr := len(seq) - DownstreamLength
		t.right[gene] = seq[utr : utr+ArmLength]
	})
}

func lookup(m map[string]string, bad map[string]error, gene string) (string, error) {
	s, ok := m[gene]
	if ok {
		return s, nil
	}
	if err, ok := bad[gene]; ok {
		return "", &UnavailableError{Gene: gene, Err: err}
	}
	return "", &NotFoundError{Gene: gene}
}

// LeftHomologyArm returns the 500 bases upstream of gene's promoter.
func (t *Table) LeftHomologyArm(gene string) (string, error) {
	return lookup(t.left, t.badUpstream, gene)
}

// PromoterAndUTR returns the 1000 bases upstream of gene's transcription
// start site followed by its 5' UTR.
func (t *Table) PromoterAndUTR(gene string) (string, error) {
	return lookup(t.promoter, t.badUpstream, gene)
}

// RightHomologyArm returns the 500 bases following gene's 5' UTR.
func (t *Table) RightHomologyArm(gene string) (string, error) {
	return lookup(t.right, t.badDownstream, gene)
}

// Genes returns the sorted names of genes with all three regions.
func (t *Table) Genes() []string {
	var g []string
	for gene := range t.left {
		if _, ok := t.right[gene]; ok {
			g = append(g, gene)
		}
	}
	sort.Strings(g)
	return g
}
