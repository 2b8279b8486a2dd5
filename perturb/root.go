// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/multierr"

	"github.com/biogo/promoter/config"
	"github.com/biogo/promoter/motif"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "perturb",
	Short: "Design oligos perturbing transcription factor motifs in a gene promoter",
	Long: `Design oligos perturbing transcription factor motifs in a gene promoter.

For every occurrence of a CIS-BP consensus motif in the promoter and 5' UTR
of a gene, perturb designs a CRISPR guide RNA cloning oligo pair and a pair
of junction primers deleting the motif. It also chooses two restriction sites
of the pCR2.1-TOPO multiple cloning site that are absent from the gene locus
and designs primers amplifying the locus with them.

Settings are read from settings.yaml in $HOME/.promoter or the working
directory, from PROMOTER_ prefixed environment variables and from flags.`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "settings file (default $HOME/.promoter/settings.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log progress to stderr")
	rootCmd.PersistentFlags().Int("workers", 0, "maximum number of concurrent motif scans (0 for no limit)")
	rootCmd.PersistentFlags().String("tf-info", "", "path to the CIS-BP TF information table")
	rootCmd.PersistentFlags().String("pwm-dir", "", "path to the CIS-BP directory of position weight matrices")
	rootCmd.PersistentFlags().String("upstream", "", "path to the Ensembl upstream export")
	rootCmd.PersistentFlags().String("downstream", "", "path to the Ensembl downstream export")

	// Bind the parameters to viper
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("workers", rootCmd.PersistentFlags().Lookup("workers"))
	viper.BindPFlag("library.tf-info", rootCmd.PersistentFlags().Lookup("tf-info"))
	viper.BindPFlag("library.pwm-dir", rootCmd.PersistentFlags().Lookup("pwm-dir"))
	viper.BindPFlag("locus.upstream", rootCmd.PersistentFlags().Lookup("upstream"))
	viper.BindPFlag("locus.downstream", rootCmd.PersistentFlags().Lookup("downstream"))
}

func initConfig() {
	v := viper.GetViper()
	config.Setup(v, cfgFile)
	if err := config.Read(v); err != nil {
		log.Fatalf("failed to read settings: %v", err)
	}
}

// progress returns a logger for progress messages, discarding them unless
// verbose output was requested.
func progress(cfg config.Config) *log.Logger {
	if !cfg.Verbose {
		return log.New(io.Discard, "", 0)
	}
	return log.New(os.Stderr, "", log.LstdFlags)
}

// library loads the motif library named by cfg, logging unreadable and
// rejected matrices to l.
func library(cfg config.Config, l *log.Logger) (*motif.Library, error) {
	lib, rejected, err := motif.LoadCISBP(cfg.Library.TFInfo, cfg.Library.PWMDir)
	if lib == nil {
		return nil, err
	}
	for _, ferr := range multierr.Errors(err) {
		l.Printf("skipped matrix: %v", ferr)
	}
	for _, r := range rejected {
		l.Printf("rejected %s: no consensus over %d positions", r.ID, r.Positions)
	}
	l.Printf("loaded %d motifs", lib.Len())
	return lib, nil
}

// output returns the named file for writing, or stdout if name is empty.
func output(name string) (io.WriteCloser, error) {
	if name == "" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(name)
}

// writeFile creates the named file and writes to it with fn through a
// buffer.
func writeFile(name string, fn func(io.Writer) error) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	b := bufio.NewWriter(f)
	err = fn(b)
	if err == nil {
		err = b.Flush()
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// input returns the named file for reading, or stdin if name is empty.
func input(name string) (io.ReadCloser, error) {
	if name == "" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(name)
}
