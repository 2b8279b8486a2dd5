// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package oligo holds the oligonucleotide pair type shared by the guide
// and deletion designers.
package oligo

import "strconv"

// Pair is a forward and reverse oligonucleotide designed for a single
// motif occurrence.
type Pair struct {
	Key     string // Motif_ID + "_" + start offset.
	Forward string
	Reverse string
}

// Key returns the identifier used for the oligos designed against the
// occurrence of motif id starting at start.
func Key(id string, start int) string {
	return id + "_" + strconv.Itoa(start)
}
