// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package motif provides transcription factor consensus motifs: derivation
// of consensus patterns from position weight matrices and an immutable,
// ordered library of motifs with their TF annotation.
package motif

import (
	"errors"
	"fmt"
	"strings"

	"github.com/biogo/store/llrb"
)

// Metadata is the TF annotation for a motif.
type Metadata struct {
	Name   string
	Family string
}

// Motif is a consensus pattern and the TF it is associated with.
type Motif struct {
	ID      string
	Pattern string
	Metadata
}

// Len returns the length of the motif's pattern.
func (m Motif) Len() int { return len(m.Pattern) }

func (m Motif) valid() error {
	if m.ID == "" {
		return errors.New("motif: missing motif ID")
	}
	if m.Pattern == "" {
		return fmt.Errorf("motif: %s: empty pattern", m.ID)
	}
	for i := 0; i < len(m.Pattern); i++ {
		switch m.Pattern[i] {
		case 'A', 'C', 'G', 'T', Wildcard:
		default:
			return fmt.Errorf("motif: %s: invalid pattern letter %q at %d", m.ID, m.Pattern[i], i)
		}
	}
	return nil
}

// node orders motifs by ID in the library tree.
type node struct{ Motif }

func (n node) Compare(c llrb.Comparable) int {
	return strings.Compare(n.ID, c.(node).ID)
}

// Library is a read-only collection of motifs ordered by motif ID.
// A Library is safe for concurrent use.
type Library struct {
	t llrb.Tree
}

// NewLibrary returns a library holding the provided motifs. Patterns are
// upper-cased. When more than one motif has the same ID the last one wins.
func NewLibrary(motifs []Motif) (*Library, error) {
	lib := &Library{}
	for _, m := range motifs {
		m.Pattern = strings.ToUpper(m.Pattern)
		if err := m.valid(); err != nil {
			return nil, err
		}
		lib.t.Insert(node{m})
	}
	return lib, nil
}

// Len returns the number of motifs in the library.
func (l *Library) Len() int { return l.t.Len() }

// Get returns the motif with the given ID.
func (l *Library) Get(id string) (Motif, bool) {
	n := l.t.Get(node{Motif{ID: id}})
	if n == nil {
		return Motif{}, false
	}
	return n.(node).Motif, true
}

// Do calls fn on each motif in ID order until fn returns true.
func (l *Library) Do(fn func(Motif) (done bool)) {
	l.t.Do(func(c llrb.Comparable) bool {
		return fn(c.(node).Motif)
	})
}

// Motifs returns the library's motifs in ID order.
func (l *Library) Motifs() []Motif {
	m := make([]Motif, 0, l.Len())
	l.Do(func(e Motif) bool {
		m = append(m, e)
		return false
	})
	return m
}
