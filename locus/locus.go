// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package locus provides the genomic regions flanking a gene's
// transcription start site: the left homology arm, the promoter and 5' UTR,
// and the right homology arm.
package locus

import (
	"errors"
	"fmt"

	"github.com/biogo/store/step"

	"github.com/biogo/promoter/dna"
)

// Provider supplies the regions of a gene locus. Each method returns a
// *NotFoundError when the gene is unknown. A Provider may return an
// *UnavailableError for a gene it knows but cannot supply.
type Provider interface {
	LeftHomologyArm(gene string) (string, error)
	PromoterAndUTR(gene string) (string, error)
	RightHomologyArm(gene string) (string, error)
}

// NotFoundError is returned by a Provider for an unknown gene.
type NotFoundError struct {
	Gene string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("locus: gene %q not found", e.Gene)
}

// UnavailableError is returned by a Provider for a gene whose records
// are present but hold no usable sequence.
type UnavailableError struct {
	Gene string
	Err  error // Reason the first record for the gene was skipped.
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("locus: gene %q has no usable sequence: %v", e.Gene, e.Err)
}

func (e *UnavailableError) Unwrap() error { return e.Err }

// Segment identifies a region of an assembled locus.
type Segment int

const (
	Gap Segment = iota
	LeftArm
	PromoterUTR
	RightArm
)

func (s Segment) String() string {
	switch s {
	case LeftArm:
		return "left arm"
	case PromoterUTR:
		return "promoter+UTR"
	case RightArm:
		return "right arm"
	}
	return "gap"
}

// Equal satisfies the step.Equaler interface.
func (s Segment) Equal(e step.Equaler) bool { return s == e.(Segment) }

// Locus is a gene locus assembled from its three regions.
type Locus struct {
	Gene     string
	Left     string
	Promoter string
	Right    string

	segments *step.Vector
}

// Assemble returns the locus formed by left, promoter and right. The
// regions are normalised to upper case and must be valid DNA.
func Assemble(gene, left, promoter, right string) (*Locus, error) {
	l := &Locus{Gene: gene}
	for _, r := range []struct {
		dst  *string
		src  string
		name Segment
	}{
		{&l.Left, left, LeftArm},
		{&l.Promoter, promoter, PromoterUTR},
		{&l.Right, right, RightArm},
	} {
		s, err := dna.Normalize(r.src)
		if err != nil {
			return nil, fmt.Errorf("locus: %s %s: %w", gene, r.name, err)
		}
		*r.dst = s
	}
	if l.Promoter == "" {
		return nil, fmt.Errorf("locus: %s: empty promoter", gene)
	}

	v, err := step.New(0, l.Len(), Gap)
	if err != nil {
		return nil, err
	}
	off := 0
	for _, r := range []struct {
		n   int
		seg Segment
	}{
		{len(l.Left), LeftArm},
		{len(l.Promoter), PromoterUTR},
		{len(l.Right), RightArm},
	} {
		if r.n != 0 {
			v.SetRange(off, off+r.n, r.seg)
		}
		off += r.n
	}
	l.segments = v
	return l, nil
}

// Fetch retrieves the regions of gene from p and assembles them.
func Fetch(p Provider, gene string) (*Locus, error) {
	left, err := p.LeftHomologyArm(gene)
	if err != nil {
		return nil, err
	}
	promoter, err := p.PromoterAndUTR(gene)
	if err != nil {
		return nil, err
	}
	right, err := p.RightHomologyArm(gene)
	if err != nil {
		return nil, err
	}
	return Assemble(gene, left, promoter, right)
}

// Seq returns the full locus sequence.
func (l *Locus) Seq() string { return l.Left + l.Promoter + l.Right }

// Len returns the length of the full locus.
func (l *Locus) Len() int { return len(l.Left) + len(l.Promoter) + len(l.Right) }

// SegmentAt returns the region containing position i of the full locus.
func (l *Locus) SegmentAt(i int) (Segment, error) {
	if i < 0 || i >= l.Len() {
		return Gap, errors.New("locus: position out of range")
	}
	e, err := l.segments.At(i)
	if err != nil {
		return Gap, err
	}
	return e.(Segment), nil
}

// Span returns the half-open range of seg in the full locus.
func (l *Locus) Span(seg Segment) (start, end int) {
	start, end = -1, -1
	l.segments.Do(func(s, e int, v step.Equaler) {
		if v.(Segment) == seg && start < 0 {
			start, end = s, e
		}
	})
	if start < 0 {
		return 0, 0
	}
	return start, end
}

// FromPromoter converts a promoter+UTR offset to a full locus offset.
func (l *Locus) FromPromoter(i int) int { return len(l.Left) + i }

// TSS returns the offset of the transcription start site in the full locus.
func (l *Locus) TSS() int { return l.FromPromoter(TSSOffset) }

// RelativeToTSS returns the position of promoter+UTR offset i relative to
// the transcription start site. Upstream positions are negative.
func RelativeToTSS(i int) int { return i - TSSOffset }
