// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package motif

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/multierr"
	"gopkg.in/check.v1"
)

func Test(t *testing.T) { check.TestingT(t) }

type S struct{}

var _ = check.Suite(&S{})

func (s *S) TestConsensus(c *check.C) {
	for i, t := range []struct {
		rows    [][]float64
		pattern string
		ok      bool
	}{
		{rows: nil, ok: false},
		{
			rows: [][]float64{
				{0.9, 0.05, 0.03, 0.02},
				{0.1, 0.1, 0.1, 0.7},
			},
			pattern: "AT",
			ok:      true,
		},
		{
			// Exactly one half is not enough to call a base.
			rows: [][]float64{
				{0.5, 0.5, 0, 0},
				{0, 0, 0.51, 0.49},
			},
			pattern: ".G",
			ok:      true,
		},
		{
			rows: [][]float64{
				{0.25, 0.25, 0.25, 0.25},
				{0.25, 0.25, 0.25, 0.25},
				{0.05, 0.85, 0.05, 0.05},
			},
			ok: false,
		},
		{
			rows: [][]float64{
				{0.25, 0.25, 0.25, 0.25},
				{0.3, 0.3, 0.2, 0.2},
				{0.05, 0.85, 0.05, 0.05},
				{0.9, 0.04, 0.03, 0.03},
				{0.02, 0.94, 0.02, 0.02},
				{0.02, 0.02, 0.94, 0.02},
				{0.05, 0.05, 0.05, 0.85},
				{0.03, 0.03, 0.9, 0.04},
				{0.2, 0.2, 0.3, 0.3},
				{0.25, 0.25, 0.25, 0.25},
			},
			pattern: "..CACGTG..",
			ok:      true,
		},
	} {
		m, err := NewMatrix("test", t.rows)
		c.Assert(err, check.Equals, nil)
		p, ok := Consensus(m)
		c.Check(ok, check.Equals, t.ok, check.Commentf("Test %d", i))
		c.Check(p, check.Equals, t.pattern, check.Commentf("Test %d", i))
	}
}

func (s *S) TestNewMatrixErrors(c *check.C) {
	_, err := NewMatrix("short", [][]float64{{0.5, 0.5, 0}})
	c.Check(err, check.ErrorMatches, ".*short row 1 has 3 columns.*")
	_, err = NewMatrix("range", [][]float64{{1.5, 0, 0, 0}})
	c.Check(err, check.ErrorMatches, ".*range row 1 column A.*")

	// Two bases over one half cannot both be called.
	_, err = NewMatrix("sum", [][]float64{{0.25, 0.25, 0.25, 0.25}, {0.6, 0.6, 0, 0}})
	c.Check(err, check.ErrorMatches, "motif: sum row 2 frequencies sum to 1.2")

	// Rounding in published matrices is tolerated.
	m, err := NewMatrix("rounded", [][]float64{{0.3334, 0.3333, 0.3334, 0}})
	c.Assert(err, check.Equals, nil)
	c.Check(m.Len(), check.Equals, 1)
}

func (s *S) TestReadMatrix(c *check.C) {
	const pwm = "Pos\tA\tC\tG\tT\r\n" +
		"1\t0.9\t0.05\t0.03\t0.02\r\n" +
		"2\t0.1\t0.1\t0.1\t0.7\r\n" +
		"\n"
	m, err := ReadMatrix("M0001_1.02", strings.NewReader(pwm))
	c.Assert(err, check.Equals, nil)
	c.Check(m.ID, check.Equals, "M0001_1.02")
	c.Check(m.Len(), check.Equals, 2)
	c.Check(m.Row(1), check.DeepEquals, []float64{0.1, 0.1, 0.1, 0.7})

	m, err = ReadMatrix("M0002_1.02", strings.NewReader("Pos\tA\tC\tG\tT\n"))
	c.Assert(err, check.Equals, nil)
	c.Check(m.Len(), check.Equals, 0)

	_, err = ReadMatrix("bad", strings.NewReader("Pos\tA\tC\tG\tT\n1\t0.1\tx\t0.2\t0.3\n"))
	c.Check(err, check.ErrorMatches, "motif: bad line 2: .*")
	_, err = ReadMatrix("bad", strings.NewReader("Pos\tA\tC\tG\tT\n1\t0.1\n"))
	c.Check(err, check.ErrorMatches, "motif: bad line 2: too few fields")
	_, err = ReadMatrix("empty", strings.NewReader(""))
	c.Check(err, check.NotNil)
}

func (s *S) TestLibrary(c *check.C) {
	lib, err := NewLibrary([]Motif{
		{ID: "M2", Pattern: "ggg", Metadata: Metadata{Name: "SP1"}},
		{ID: "M1", Pattern: "CA.G"},
		{ID: "M2", Pattern: "GGGCGG", Metadata: Metadata{Name: "SP1", Family: "C2H2 ZF"}},
	})
	c.Assert(err, check.Equals, nil)
	c.Check(lib.Len(), check.Equals, 2)

	m, ok := lib.Get("M2")
	c.Check(ok, check.Equals, true)
	c.Check(m.Pattern, check.Equals, "GGGCGG")
	c.Check(m.Family, check.Equals, "C2H2 ZF")
	_, ok = lib.Get("M3")
	c.Check(ok, check.Equals, false)

	var ids []string
	for _, m := range lib.Motifs() {
		ids = append(ids, m.ID)
	}
	c.Check(ids, check.DeepEquals, []string{"M1", "M2"})

	_, err = NewLibrary([]Motif{{ID: "M1", Pattern: ""}})
	c.Check(err, check.NotNil)
	_, err = NewLibrary([]Motif{{ID: "M1", Pattern: "ACNT"}})
	c.Check(err, check.NotNil)
}

func (s *S) TestReadTFInfo(c *check.C) {
	f, err := os.Open(filepath.Join("..", "testdata", "TF_Information.txt"))
	c.Assert(err, check.Equals, nil)
	defer f.Close()
	info, err := ReadTFInfo(f)
	c.Assert(err, check.Equals, nil)
	c.Check(info, check.HasLen, 3)
	c.Check(info["M4610_1.02"], check.Equals, Metadata{Name: "MYC", Family: "bHLH"})
	_, ok := info["."]
	c.Check(ok, check.Equals, false)

	_, err = ReadTFInfo(strings.NewReader("TF_ID\tMotif_ID\n"))
	c.Check(err, check.ErrorMatches, ".*missing TF_Name column")
}

func (s *S) TestLoadCISBP(c *check.C) {
	lib, rejected, err := LoadCISBP(
		filepath.Join("..", "testdata", "TF_Information.txt"),
		filepath.Join("..", "testdata", "pwms"),
	)
	c.Assert(err, check.Equals, nil)
	c.Check(lib.Len(), check.Equals, 2)
	c.Check(rejected, check.DeepEquals, []Rejection{
		{ID: "M0100_1.02", Positions: 4},
		{ID: "M9999_1.02", Positions: 0},
	})

	myc, ok := lib.Get("M4610_1.02")
	c.Assert(ok, check.Equals, true)
	c.Check(myc, check.Equals, Motif{
		ID:       "M4610_1.02",
		Pattern:  "..CACGTG..",
		Metadata: Metadata{Name: "MYC", Family: "bHLH"},
	})
	sp1, ok := lib.Get("M5953_1.02")
	c.Assert(ok, check.Equals, true)
	c.Check(sp1.Pattern, check.Equals, "GGGCGG")
}

func (s *S) TestReadPWMDirErrors(c *check.C) {
	dir := c.MkDir()
	for name, content := range map[string]string{
		"M1.txt":    "Pos\tA\tC\tG\tT\n1\t1\t0\t0\t0\n",
		"M2.txt":    "Pos\tA\tC\tG\tT\n1\tx\t0\t0\t0\n",
		"M3.txt":    "Pos\tA\tC\tG\tT\n1\t0\t0\n",
		"README.md": "not a matrix",
	} {
		err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644)
		c.Assert(err, check.Equals, nil)
	}
	mats, err := ReadPWMDir(dir)
	c.Check(mats, check.HasLen, 1)
	c.Check(multierr.Errors(err), check.HasLen, 2)
}

func (s *S) TestLoadCISBPPartial(c *check.C) {
	dir := c.MkDir()
	pwms := filepath.Join(dir, "pwms")
	c.Assert(os.Mkdir(pwms, 0o755), check.Equals, nil)
	for name, content := range map[string]string{
		filepath.Join(dir, "TF_Information.txt"): "TF_ID\tMotif_ID\tTF_Name\tFamily_Name\n" +
			"T1\tM1\tONE\tbZIP\n" +
			"T2\tM2\tTWO\tC2H2 ZF\n",
		filepath.Join(pwms, "M1.txt"): "Pos\tA\tC\tG\tT\n1\t1\t0\t0\t0\n2\t0\t0.9\t0.1\t0\n",
		filepath.Join(pwms, "M2.txt"): "Pos\tA\tC\tG\tT\n1\tx\t0\t0\t0\n",
	} {
		err := os.WriteFile(name, []byte(content), 0o644)
		c.Assert(err, check.Equals, nil)
	}

	lib, rejected, err := LoadCISBP(filepath.Join(dir, "TF_Information.txt"), pwms)
	c.Assert(lib, check.NotNil)
	c.Check(lib.Len(), check.Equals, 1)
	c.Check(rejected, check.HasLen, 0)
	c.Check(multierr.Errors(err), check.HasLen, 1)
	c.Check(err, check.ErrorMatches, ".*M2 line 2.*")
	m, ok := lib.Get("M1")
	c.Assert(ok, check.Equals, true)
	c.Check(m, check.Equals, Motif{ID: "M1", Pattern: "AC", Metadata: Metadata{Name: "ONE", Family: "bZIP"}})

	_, _, err = LoadCISBP(filepath.Join(dir, "TF_Information.txt"), filepath.Join(dir, "missing"))
	c.Check(err, check.NotNil)
}
