// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"strings"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
	"github.com/spf13/cobra"

	"github.com/biogo/promoter/config"
	"github.com/biogo/promoter/report"
	"github.com/biogo/promoter/scan"
)

var scanIn, scanOut string

// scanCmd represents the scan command
var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Search sequences for consensus motif occurrences",
	Long: `Search the sequences of a FASTA file for occurrences of the consensus
motifs of the CIS-BP library, writing the occurrences as GFF features.

Each motif is searched for independently, left to right, and matches of a
motif do not overlap one another.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.NewConfig()
		l := progress(cfg)

		lib, err := library(cfg, l)
		if err != nil {
			return err
		}

		r, err := input(scanIn)
		if err != nil {
			return err
		}
		defer r.Close()
		w, err := output(scanOut)
		if err != nil {
			return err
		}
		buf := bufio.NewWriter(w)
		out := report.NewGFF(buf)

		sc := seqio.NewScanner(fasta.NewReader(r, linear.NewSeq("", nil, alphabet.DNA)))
		for sc.Next() {
			s := sc.Seq().(*linear.Seq)
			l.Printf("scanning %s (%d bp)", s.Name(), s.Len())
			seq := strings.ToUpper(string(alphabet.LettersToBytes(s.Seq)))
			hits, err := scan.LibraryConcurrent(cmd.Context(), seq, lib, cfg.Workers)
			if err != nil {
				return err
			}
			n := len(scan.Occurrences(hits))
			if n == 1 {
				l.Printf("... found %d match.", n)
			} else {
				l.Printf("... found %d matches.", n)
			}
			if err = out.Write(s.Name(), hits); err != nil {
				return err
			}
		}
		if err = sc.Error(); err != nil {
			return err
		}
		if err = buf.Flush(); err != nil {
			return err
		}
		return w.Close()
	},
}

func init() {
	rootCmd.AddCommand(scanCmd)

	scanCmd.Flags().StringVarP(&scanIn, "in", "i", "", "path to a FASTA file of sequences to scan (default stdin)")
	scanCmd.Flags().StringVarP(&scanOut, "out", "o", "", "path for the GFF output (default stdout)")
}
