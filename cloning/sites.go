// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cloning

import "fmt"

// Site is a restriction enzyme recognition sequence available in a vector
// multiple cloning site.
type Site struct {
	// Recognition is the sequence searched for in the locus.
	Recognition string

	// NameKey is the sequence Enzyme is registered under for name
	// lookup. An empty NameKey means Recognition.
	NameKey string

	Enzyme string
}

func (s Site) key() string {
	if s.NameKey == "" {
		return s.Recognition
	}
	return s.NameKey
}

// Table is an ordered list of restriction sites. Selection is first match
// in table order.
type Table []Site

// TOPOMCS is the sticky-end 6+ and 8+ cutter sites of the pCR2.1-TOPO
// multiple cloning site in canonical order.
//
// The table carries two upstream data defects which are kept so that
// selections match existing reference designs: the SpeI name is keyed by
// ACTAGC rather than its ACTAGT site, and CTCGAG is listed for both XhoI
// and NsiI, so the XhoI name is unreachable. See Table.Defects.
var TOPOMCS = Table{
	{Recognition: "AAGCTT", Enzyme: "HindIII"},
	{Recognition: "GGATCC", Enzyme: "BamHI"},
	{Recognition: "GGTACC", Enzyme: "KpnI"},
	{Recognition: "GAGCTC", Enzyme: "SacI"},
	{Recognition: "ACTAGT", NameKey: "ACTAGC", Enzyme: "SpeI"},
	{Recognition: "CTTAAG", Enzyme: "AflII"},
	{Recognition: "GCGGCCGC", Enzyme: "NotI"},
	{Recognition: "CTCGAG", Enzyme: "XhoI"},
	{Recognition: "CTCGAG", Enzyme: "NsiI"},
	{Recognition: "TCTAGA", Enzyme: "XbaI"},
	{Recognition: "GGGCCC", Enzyme: "ApaI"},
}

// names returns the enzyme name registry for t. Later entries replace
// earlier entries registered under the same key.
func (t Table) names() map[string]string {
	n := make(map[string]string, len(t))
	for _, s := range t {
		n[s.key()] = s.Enzyme
	}
	return n
}

// Lookup returns the enzyme name registered for the recognition sequence.
func (t Table) Lookup(recognition string) (name string, ok bool) {
	name, ok = t.names()[recognition]
	return name, ok
}

// Defect describes an entry of a Table whose enzyme name cannot be
// recovered from its recognition sequence.
type Defect struct {
	Index  int
	Site   Site
	Reason string
}

func (d Defect) String() string {
	return fmt.Sprintf("entry %d (%s %s): %s", d.Index, d.Site.Enzyme, d.Site.Recognition, d.Reason)
}

// Defects returns the entries of t whose enzyme name is not what a lookup
// of their recognition sequence returns, in table order.
func (t Table) Defects() []Defect {
	names := t.names()
	var d []Defect
	for i, s := range t {
		switch name, ok := names[s.Recognition]; {
		case s.key() != s.Recognition && !ok:
			d = append(d, Defect{Index: i, Site: s, Reason: fmt.Sprintf("name registered under %s; %s has no name", s.key(), s.Recognition)})
		case s.key() != s.Recognition:
			d = append(d, Defect{Index: i, Site: s, Reason: fmt.Sprintf("name registered under %s; %s resolves to %s", s.key(), s.Recognition, name)})
		case name != s.Enzyme:
			d = append(d, Defect{Index: i, Site: s, Reason: fmt.Sprintf("duplicate recognition sequence; %s resolves to %s", s.Recognition, name)})
		}
	}
	return d
}
