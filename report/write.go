// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// Header is the column header of a design table.
var Header = []string{
	"count",
	"motif_id",
	"sgrna_up",
	"sgrna_down",
	"deletion_fwd",
	"deletion_rev",
	"location",
	"consensus",
	"tf_name",
	"tf_family",
	"co_disrupted",
}

func (r Record) fields() []string {
	co := "-"
	if len(r.CoDisrupted) != 0 {
		co = strings.Join(r.CoDisrupted, ",")
	}
	return []string{
		fmt.Sprint(r.Count),
		r.MotifID,
		r.GuideUp,
		r.GuideDown,
		r.DeletionForward,
		r.DeletionReverse,
		fmt.Sprint(r.Location),
		r.Pattern,
		r.TFName,
		r.TFFamily,
		co,
	}
}

// writeStrategy writes the cloning strategy as comment lines.
func writeStrategy(w io.Writer, rep *Report) error {
	st := rep.Strategy
	_, err := fmt.Fprintf(w, "# gene\t%s\n# enzymes\t%s\t%s\n# forward\t%s\n# reverse\t%s\n# amplicon\t%s\n",
		rep.Gene, name(st.Enzymes[0], st.Sites[0]), name(st.Enzymes[1], st.Sites[1]),
		st.Forward, st.Reverse, st.AmpliconLength())
	if err != nil {
		return err
	}
	for _, d := range st.Defects {
		if _, err = fmt.Fprintf(w, "# warning\t%v\n", d); err != nil {
			return err
		}
	}
	if rep.PromoterLength > 0 {
		_, err = fmt.Fprintf(w, "# motif coverage\t%d/%d\n", rep.Covered, rep.PromoterLength)
	}
	return err
}

// name returns the enzyme name, falling back to the recognition site
// when the restriction table holds no name for it.
func name(enzyme, site string) string {
	if enzyme == "" {
		return "?(" + site + ")"
	}
	return enzyme
}

// WriteTSV writes rep as tab-separated values preceded by the cloning
// strategy as comment lines.
func WriteTSV(w io.Writer, rep *Report) error {
	bw := bufio.NewWriter(w)
	if err := writeStrategy(bw, rep); err != nil {
		return err
	}
	fmt.Fprintln(bw, strings.Join(Header, "\t"))
	for _, r := range rep.Records {
		fmt.Fprintln(bw, strings.Join(r.fields(), "\t"))
	}
	return bw.Flush()
}

// WriteTable writes rep as an aligned text table for reading at a
// terminal.
func WriteTable(w io.Writer, rep *Report) error {
	if err := writeStrategy(w, rep); err != nil {
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.ToUpper(strings.Join(Header, "\t")))
	for _, r := range rep.Records {
		fmt.Fprintln(tw, strings.Join(r.fields(), "\t"))
	}
	return tw.Flush()
}
