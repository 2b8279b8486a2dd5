// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"io"

	"github.com/biogo/biogo/feat"
	"github.com/biogo/biogo/io/featio/gff"
	"github.com/biogo/biogo/seq"

	"github.com/biogo/promoter/scan"
)

// Source is the GFF source field of written features.
const Source = "promoter"

// GFF writes motif occurrences as GFF features.
type GFF struct {
	w *gff.Writer
}

// NewGFF returns a GFF writing to w, preceded by a GFF header.
func NewGFF(w io.Writer) *GFF {
	return &GFF{w: gff.NewWriter(w, 60, true)}
}

// Write writes the motif occurrences in hits as features on the sequence
// named name. Nothing is written when hits is empty.
func (g *GFF) Write(name string, hits []scan.Hits) error {
	if len(hits) == 0 {
		return nil
	}
	_, err := g.w.WriteMetaData(gff.Sequence{SeqName: name, Type: feat.DNA})
	if err != nil {
		return err
	}
	for _, h := range hits {
		for _, o := range h.Occurrences() {
			attrs := gff.Attributes{
				{Tag: "Motif", Value: h.Motif.ID},
				{Tag: "Consensus", Value: h.Motif.Pattern},
			}
			if h.Motif.Name != "" {
				attrs = append(attrs, gff.Attribute{Tag: "TF", Value: h.Motif.Name})
			}
			if h.Motif.Family != "" {
				attrs = append(attrs, gff.Attribute{Tag: "Family", Value: h.Motif.Family})
			}
			_, err = g.w.Write(&gff.Feature{
				SeqName:        name,
				Source:         Source,
				Feature:        "TF_binding_site",
				FeatStart:      o.Start,
				FeatEnd:        o.End(),
				FeatStrand:     seq.Plus,
				FeatFrame:      gff.NoFrame,
				FeatAttributes: attrs,
			})
			if err != nil {
				return err
			}
		}
	}
	return nil
}

// WriteGFF writes a GFF header followed by the motif occurrences in hits
// as features on the sequence named name.
func WriteGFF(w io.Writer, name string, hits []scan.Hits) error {
	return NewGFF(w).Write(name, hits)
}
