// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// perturb designs CRISPR guide and deletion oligos for the transcription
// factor motifs of a gene promoter.
package main

import "log"

func main() {
	log.SetFlags(0)
	log.SetPrefix("perturb: ")
	Execute()
}
