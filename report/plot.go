// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"fmt"
	"image/color"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/biogo/promoter/locus"
)

// Plot dimensions.
var (
	PlotWidth  = 10 * vg.Inch
	PlotHeight = 4 * vg.Inch
)

// Plot writes a map of the designed records to w in the given image
// format, "png", "svg" or "pdf". Each record is placed at its location
// relative to the transcription start site, labelled with its factor.
func Plot(w io.Writer, rep *Report, format string) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s promoter motifs", rep.Gene)
	p.X.Label.Text = "position relative to TSS"
	p.Y.Label.Text = "record"
	p.X.Min = -locus.TSSOffset
	p.X.Max = 0
	if rep.PromoterLength > locus.TSSOffset {
		p.X.Max = float64(locus.RelativeToTSS(rep.PromoterLength))
	}
	p.Add(plotter.NewGrid())

	if len(rep.Records) != 0 {
		xys := make(plotter.XYs, len(rep.Records))
		labels := make([]string, len(rep.Records))
		for i, r := range rep.Records {
			xys[i].X = float64(r.Location)
			xys[i].Y = float64(r.Count)
			labels[i] = label(r)
		}
		s, err := plotter.NewScatter(xys)
		if err != nil {
			return err
		}
		s.GlyphStyle.Color = color.RGBA{R: 196, B: 128, A: 255}
		s.GlyphStyle.Radius = vg.Points(3)
		l, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: labels})
		if err != nil {
			return err
		}
		p.Add(s, l)
	}

	tss, err := plotter.NewLine(plotter.XYs{{X: 0, Y: 0}, {X: 0, Y: float64(len(rep.Records) + 1)}})
	if err != nil {
		return err
	}
	tss.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
	p.Add(tss)

	wt, err := p.WriterTo(PlotWidth, PlotHeight, format)
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}

func label(r Record) string {
	if r.TFName != "" {
		return r.TFName
	}
	return r.MotifID
}
