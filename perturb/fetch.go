// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/biogo/ncbi/entrez"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/biogo/promoter/config"
)

var (
	fetchGene   string
	fetchRetMax int
	fetchOut    string
)

// fetchCmd represents the fetch command
var fetchCmd = &cobra.Command{
	Use:   "fetch [query]",
	Short: "Retrieve nucleotide records from NCBI as FASTA",
	Long: `Retrieve nucleotide records from NCBI Entrez as FASTA.

Records matching the Entrez query are retrieved in batches, each batch
being attempted up to the configured number of retries. With --gene the
query selects the human RefSeqGene record of the gene. An email address
must be provided in the settings or with --email.`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.NewConfig()
		l := progress(cfg)
		if cfg.NCBI.Email == "" {
			return errors.New("fetch: no email address for NCBI requests")
		}

		query := strings.Join(args, " ")
		if fetchGene != "" {
			query = geneQuery(fetchGene)
		}
		if query == "" {
			return errors.New("fetch: no query")
		}

		h := entrez.History{}
		s, err := entrez.DoSearch(cfg.NCBI.Database, query, nil, &h, cfg.NCBI.Tool, cfg.NCBI.Email)
		if err != nil {
			return err
		}
		l.Printf("will retrieve %d records", s.Count)

		w, err := output(fetchOut)
		if err != nil {
			return err
		}
		_, err = retrieve(w, s.Count, fetchRetMax, cfg.NCBI.Retries, l, func(p *entrez.Parameters) (io.ReadCloser, error) {
			return entrez.Fetch(cfg.NCBI.Database, p, cfg.NCBI.Tool, cfg.NCBI.Email, &h)
		})
		if cerr := w.Close(); err == nil {
			err = cerr
		}
		return err
	},
}

func init() {
	rootCmd.AddCommand(fetchCmd)

	fetchCmd.Flags().StringVarP(&fetchGene, "gene", "g", "", "retrieve the human RefSeqGene record of the named gene")
	fetchCmd.Flags().IntVar(&fetchRetMax, "retmax", 500, "number of records to retrieve per request")
	fetchCmd.Flags().StringVarP(&fetchOut, "out", "o", "", "path for the retrieved records (default stdout)")
	fetchCmd.Flags().String("email", "", "email address sent with NCBI requests")
	fetchCmd.Flags().Int("retry", 0, "number of attempts made for each request")

	// Bind the parameters to viper
	viper.BindPFlag("ncbi.email", fetchCmd.Flags().Lookup("email"))
	viper.BindPFlag("ncbi.retries", fetchCmd.Flags().Lookup("retry"))
}

// geneQuery returns an Entrez nucleotide query for the human RefSeqGene
// record of gene.
func geneQuery(gene string) string {
	return fmt.Sprintf("%s[Gene Name] AND \"Homo sapiens\"[Organism] AND refseqgene[Filter]", gene)
}

// fetcher retrieves the records selected by p.
type fetcher func(p *entrez.Parameters) (io.ReadCloser, error)

// retrieve writes count records to w, fetching them in batches of retMax
// with up to retries attempts for each batch. A batch is only written once
// it has been completely buffered.
func retrieve(w io.Writer, count, retMax, retries int, l *log.Logger, fetch fetcher) (n int64, err error) {
	if retMax < 1 {
		return 0, fmt.Errorf("fetch: invalid batch size %d", retMax)
	}
	var (
		buf bytes.Buffer
		p   = &entrez.Parameters{RetMax: retMax, RetType: "fasta", RetMode: "text"}
	)
	for p.RetStart = 0; p.RetStart < count; p.RetStart += p.RetMax {
		l.Printf("attempting to retrieve %d records starting from %d with %d retries", p.RetMax, p.RetStart, retries)
		for t := 0; t < retries; t++ {
			buf.Reset()
			var r io.ReadCloser
			r, err = fetch(p)
			if err != nil {
				l.Printf("failed to retrieve on attempt %d... retrying", t)
				continue
			}
			_, err = io.Copy(&buf, r)
			r.Close()
			if err == nil {
				break
			}
			l.Printf("failed to buffer on attempt %d... retrying", t)
		}
		if err != nil {
			return n, fmt.Errorf("fetch: exceeded retries: last error: %w", err)
		}

		l.Print("retrieved records... writing out")
		var _n int64
		_n, err = io.Copy(w, &buf)
		n += _n
		if err != nil {
			return n, err
		}
	}
	return n, nil
}
