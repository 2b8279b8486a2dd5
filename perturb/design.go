// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/biogo/promoter/config"
	"github.com/biogo/promoter/investigate"
	"github.com/biogo/promoter/locus"
	"github.com/biogo/promoter/report"
)

var designOut string

// designCmd represents the design command
var designCmd = &cobra.Command{
	Use:   "design <gene>",
	Short: "Design motif perturbation oligos for a gene",
	Long: `Design motif perturbation oligos for a gene.

The gene locus is read from the Ensembl upstream ("Promoter + 5' UTR") and
downstream ("Exons + Introns") FASTA exports. Every consensus motif of the
CIS-BP library is searched for in the promoter and 5' UTR, and a guide RNA
oligo pair and a deletion primer pair are designed for each occurrence.
Occurrences for which either design is not possible are not reported.

The report begins with the whole-locus cloning strategy as comment lines,
followed by one row per motif occurrence, numbered from 1. Locations are
given relative to the transcription start site.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.NewConfig()
		l := progress(cfg)

		lib, err := library(cfg, l)
		if err != nil {
			return err
		}
		tab, err := locus.LoadTable(cfg.Locus.Upstream, cfg.Locus.Downstream)
		if err != nil {
			return err
		}
		l.Printf("loaded loci for %d genes", len(tab.Genes()))

		gene := args[0]
		rep, err := investigate.Gene(cmd.Context(), tab, gene, lib, &investigate.Options{
			Workers: cfg.Workers,
			Log:     l,
		})
		if err != nil {
			return err
		}

		w, err := output(designOut)
		if err != nil {
			return err
		}
		switch cfg.Output.Format {
		case config.Table:
			err = report.WriteTable(w, rep)
		default:
			err = report.WriteTSV(w, rep)
		}
		if cerr := w.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return err
		}

		if cfg.Output.GFF != "" {
			err = writeFile(cfg.Output.GFF, func(w io.Writer) error {
				return report.WriteGFF(w, gene+"_promoter", rep.Hits)
			})
			if err != nil {
				return err
			}
		}
		if cfg.Output.Plot != "" {
			format := strings.TrimPrefix(filepath.Ext(cfg.Output.Plot), ".")
			if format == "" {
				return fmt.Errorf("no image format for plot file %q", cfg.Output.Plot)
			}
			err = writeFile(cfg.Output.Plot, func(w io.Writer) error {
				return report.Plot(w, rep, format)
			})
			if err != nil {
				return err
			}
		}
		l.Printf("wrote %d records for %s", len(rep.Records), gene)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(designCmd)

	designCmd.Flags().StringP("format", "f", "", `report format, "tsv" or "table"`)
	designCmd.Flags().String("gff", "", "path for a GFF track of the motif occurrences")
	designCmd.Flags().String("plot", "", "path for a motif map image (.png, .svg or .pdf)")
	designCmd.Flags().StringVarP(&designOut, "out", "o", "", "path for the report (default stdout)")

	// Bind the parameters to viper
	viper.BindPFlag("output.format", designCmd.Flags().Lookup("format"))
	viper.BindPFlag("output.gff", designCmd.Flags().Lookup("gff"))
	viper.BindPFlag("output.plot", designCmd.Flags().Lookup("plot"))
}
