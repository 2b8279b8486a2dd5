// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/biogo/promoter/cloning"
)

// sitesCmd represents the sites command
var sitesCmd = &cobra.Command{
	Use:   "sites",
	Short: "List the restriction sites available for locus cloning",
	Long: `List the restriction sites of the pCR2.1-TOPO multiple cloning site in
the order they are tried for locus cloning, with the enzyme name each site
resolves to. Known defects of the table are listed after it.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "#\tSITE\tENZYME\tRESOLVES TO")
		for i, s := range cloning.TOPOMCS {
			name, ok := cloning.TOPOMCS.Lookup(s.Recognition)
			if !ok {
				name = "-"
			}
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", i, s.Recognition, s.Enzyme, name)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
		for _, d := range cloning.TOPOMCS.Defects() {
			fmt.Printf("warning: %v\n", d)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sitesCmd)
}
