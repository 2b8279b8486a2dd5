// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scan

import "github.com/biogo/store/step"

// depth is an int satisfying the step.Equaler interface.
type depth int

func (d depth) Equal(e step.Equaler) bool { return d == e.(depth) }

// Occupancy is the per-base motif coverage of a sequence.
type Occupancy struct {
	v *step.Vector
}

// NewOccupancy returns the motif coverage of a sequence of length n by
// the provided occurrences.
func NewOccupancy(n int, occ []Occurrence) (*Occupancy, error) {
	if n <= 0 {
		return &Occupancy{}, nil
	}
	v, err := step.New(0, n, depth(0))
	if err != nil {
		return nil, err
	}
	for _, o := range occ {
		err = v.ApplyRange(o.Start, o.End(), func(e step.Equaler) step.Equaler {
			return e.(depth) + 1
		})
		if err != nil {
			return nil, err
		}
	}
	return &Occupancy{v: v}, nil
}

// Covered returns the number of bases covered by at least one occurrence.
func (c *Occupancy) Covered() int {
	if c.v == nil {
		return 0
	}
	var n int
	c.v.Do(func(start, end int, e step.Equaler) {
		if e.(depth) > 0 {
			n += end - start
		}
	})
	return n
}

// Max returns the greatest number of occurrences covering any one base.
func (c *Occupancy) Max() int {
	if c.v == nil {
		return 0
	}
	var max depth
	c.v.Do(func(_, _ int, e step.Equaler) {
		if d := e.(depth); d > max {
			max = d
		}
	})
	return int(max)
}

// At returns the number of occurrences covering position i.
func (c *Occupancy) At(i int) int {
	if c.v == nil {
		return 0
	}
	e, err := c.v.At(i)
	if err != nil {
		return 0
	}
	return int(e.(depth))
}
