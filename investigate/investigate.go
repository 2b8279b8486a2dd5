// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package investigate runs the motif perturbation design for a gene.
package investigate

import (
	"context"
	"fmt"
	"log"

	"golang.org/x/sync/errgroup"

	"github.com/biogo/promoter/cloning"
	"github.com/biogo/promoter/deletion"
	"github.com/biogo/promoter/guide"
	"github.com/biogo/promoter/locus"
	"github.com/biogo/promoter/motif"
	"github.com/biogo/promoter/report"
	"github.com/biogo/promoter/scan"
)

// Options holds the parameters of a run.
type Options struct {
	// Sites is the restriction table used for cloning strategy
	// selection. If nil, cloning.TOPOMCS is used.
	Sites cloning.Table

	// Workers is the maximum number of concurrent motif scans.
	// Less than one places no limit.
	Workers int

	// Log receives progress lines when not nil.
	Log *log.Logger
}

func (o *Options) logf(format string, args ...interface{}) {
	if o == nil || o.Log == nil {
		return
	}
	o.Log.Printf(format, args...)
}

// Gene retrieves gene's locus from p and designs the perturbations of
// every occurrence of the motifs in lib within its promoter+UTR.
//
// Gene returns an error wrapping *locus.NotFoundError if p has no locus
// for gene, one wrapping *locus.UnavailableError if p holds no usable
// sequence for it and one wrapping cloning.ErrNoCloningSite if no cloning
// strategy exists for the locus.
func Gene(ctx context.Context, p locus.Provider, gene string, lib *motif.Library, opts *Options) (*report.Report, error) {
	l, err := locus.Fetch(p, gene)
	if err != nil {
		return nil, err
	}
	return Locus(ctx, l, lib, opts)
}

// Locus designs the perturbations of every occurrence of the motifs in
// lib within the promoter+UTR of l.
func Locus(ctx context.Context, l *locus.Locus, lib *motif.Library, opts *Options) (*report.Report, error) {
	sites := cloning.TOPOMCS
	workers := 0
	if opts != nil {
		if opts.Sites != nil {
			sites = opts.Sites
		}
		workers = opts.Workers
	}
	opts.logf("investigating %s: %d bp locus, %d motifs", l.Gene, l.Len(), lib.Len())

	var (
		strategy cloning.Strategy
		hits     []scan.Hits
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		strategy, err = cloning.Select(sites, l.Left, l.Promoter, l.Right)
		if err != nil {
			return fmt.Errorf("investigate: %s: %w", l.Gene, err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		hits, err = scan.LibraryConcurrent(gctx, l.Promoter, lib, workers)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	for _, d := range strategy.Defects {
		opts.logf("warning: restriction table %v", d)
	}

	occ := scan.Occurrences(hits)
	opts.logf("found %d occurrences of %d motifs", len(occ), len(hits))
	idx, err := scan.NewIndex(occ)
	if err != nil {
		return nil, err
	}
	cov, err := scan.NewOccupancy(len(l.Promoter), occ)
	if err != nil {
		return nil, err
	}

	guides := guide.DesignAll(l.Promoter, hits)
	deletions := deletion.DesignAll(l.Promoter, hits)
	recs := report.Assemble(hits, guides, deletions, idx)
	opts.logf("designed %d guide pairs and %d deletion pairs, %d complete records",
		len(guides), len(deletions), len(recs))

	return &report.Report{
		Gene:           l.Gene,
		Records:        recs,
		Strategy:       strategy,
		Hits:           hits,
		PromoterLength: len(l.Promoter),
		Covered:        cov.Covered(),
	}, nil
}
