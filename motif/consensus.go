// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package motif

const (
	// Wildcard marks a consensus position matching any base.
	Wildcard = '.'

	// callFrequency is the frequency a base must exceed to be called.
	callFrequency = 0.5

	// minCalledPercent is the smallest percentage of called positions
	// a consensus may have.
	minCalledPercent = 50
)

// Consensus returns the consensus pattern for m. Each position is the
// base whose frequency exceeds 0.5, or Wildcard when no base does.
// Consensus returns false if m has no positions or fewer than half of its
// positions were called.
func Consensus(m *Matrix) (pattern string, ok bool) {
	n := m.Len()
	if n == 0 {
		return "", false
	}
	var called int
	p := make([]byte, n)
	for i := 0; i < n; i++ {
		p[i] = Wildcard
		best := callFrequency
		for j, f := range m.Row(i) {
			if f > best {
				best = f
				p[i] = Bases[j]
			}
		}
		if p[i] != Wildcard {
			called++
		}
	}
	if 100*called/n < minCalledPercent {
		return "", false
	}
	return string(p), true
}
