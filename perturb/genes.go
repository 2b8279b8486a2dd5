// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
	"github.com/spf13/cobra"

	"github.com/biogo/promoter/config"
	"github.com/biogo/promoter/locus"
)

var (
	genesFasta bool
	genesOut   string
)

// genesCmd represents the genes command
var genesCmd = &cobra.Command{
	Use:   "genes [gene]...",
	Short: "List the gene loci available in the Ensembl exports",
	Long: `List the gene loci available in the Ensembl upstream and downstream
exports with the length of each locus segment. With no arguments every gene
with a complete locus is listed.

With --fasta the assembled loci are written as FASTA instead, the
description giving the span of the promoter and 5' UTR.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.NewConfig()
		tab, err := locus.LoadTable(cfg.Locus.Upstream, cfg.Locus.Downstream)
		if err != nil {
			return err
		}
		genes := args
		if len(genes) == 0 {
			genes = tab.Genes()
		}

		w, err := output(genesOut)
		if err != nil {
			return err
		}
		if genesFasta {
			err = writeLoci(w, tab, genes)
		} else {
			err = listLoci(w, tab, genes)
		}
		if cerr := w.Close(); err == nil {
			err = cerr
		}
		return err
	},
}

func init() {
	rootCmd.AddCommand(genesCmd)

	genesCmd.Flags().BoolVar(&genesFasta, "fasta", false, "write the assembled loci as FASTA")
	genesCmd.Flags().StringVarP(&genesOut, "out", "o", "", "output file name (default stdout)")
}

func listLoci(w io.Writer, p locus.Provider, genes []string) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "GENE\tLEFT ARM\tPROMOTER+UTR\tRIGHT ARM\tLOCUS\t")
	for _, g := range genes {
		l, err := locus.Fetch(p, g)
		if err != nil {
			return err
		}
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\t\n", l.Gene, len(l.Left), len(l.Promoter), len(l.Right), l.Len())
	}
	return tw.Flush()
}

func writeLoci(w io.Writer, p locus.Provider, genes []string) error {
	fw := fasta.NewWriter(w, 60)
	for _, g := range genes {
		l, err := locus.Fetch(p, g)
		if err != nil {
			return err
		}
		s := linear.NewSeq(l.Gene, alphabet.BytesToLetters([]byte(l.Seq())), alphabet.DNA)
		start, end := l.Span(locus.PromoterUTR)
		s.Desc = fmt.Sprintf("promoter+utr=%d-%d tss=%d", start+1, end, l.TSS()+1)
		_, err = fw.Write(s)
		if err != nil {
			return fmt.Errorf("failed to write sequence %q: %w", g, err)
		}
	}
	return nil
}
