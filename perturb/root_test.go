// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"log"
	"os"
	"path/filepath"

	"gopkg.in/check.v1"

	"github.com/biogo/promoter/config"
)

func (s *S) TestLibrarySkipsUnreadableMatrices(c *check.C) {
	dir := c.MkDir()
	for name, content := range map[string]string{
		"M4610_1.02.txt": "Pos\tA\tC\tG\tT\n1\t0.05\t0.85\t0.05\t0.05\n2\t0.9\t0.04\t0.03\t0.03\n",
		"M0000_1.02.txt": "Pos\tA\tC\tG\tT\n1\t0.9\n",
	} {
		err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644)
		c.Assert(err, check.Equals, nil)
	}

	var buf bytes.Buffer
	cfg := config.Config{Library: config.LibraryConfig{
		TFInfo: filepath.Join("..", "testdata", "TF_Information.txt"),
		PWMDir: dir,
	}}
	lib, err := library(cfg, log.New(&buf, "", 0))
	c.Assert(err, check.Equals, nil)
	c.Check(lib.Len(), check.Equals, 1)
	c.Check(buf.String(), check.Matches, "(?s)skipped matrix: motif: M0000_1.02 line 2: too few fields\n.*loaded 1 motifs\n")

	cfg.Library.PWMDir = filepath.Join(dir, "missing")
	_, err = library(cfg, log.New(&buf, "", 0))
	c.Check(err, check.NotNil)
}
