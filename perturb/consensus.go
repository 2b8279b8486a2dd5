// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/biogo/promoter/motif"
)

// consensusCmd represents the consensus command
var consensusCmd = &cobra.Command{
	Use:   "consensus <pwm.txt>...",
	Short: "Derive consensus patterns from position weight matrices",
	Long: `Derive consensus patterns from CIS-BP position weight matrix files.

A position is called as the base with a frequency greater than 0.5, and as
the wildcard "." otherwise. Matrices with fewer than half their positions
called have no consensus and are reported as rejected. The motif ID is the
file name without its extension.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		for _, path := range args {
			id := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
			f, err := os.Open(path)
			if err != nil {
				return err
			}
			m, err := motif.ReadMatrix(id, f)
			f.Close()
			if err != nil {
				return err
			}
			pattern, ok := motif.Consensus(m)
			if !ok {
				pattern = "rejected"
			}
			fmt.Fprintf(tw, "%s\t%d\t%s\n", id, m.Len(), pattern)
		}
		return tw.Flush()
	},
}

func init() {
	rootCmd.AddCommand(consensusCmd)
}
