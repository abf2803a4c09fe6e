// Package chart rasterizes sample series into chart images for embedding
// in a presentation.
package chart

import (
	"bytes"
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"deckgen.dev/deck"
)

const (
	width  = 6 * vg.Inch
	height = 4.5 * vg.Inch
)

// Line renders a line chart connecting the series points in input order
// and returns it as PNG bytes.
func Line(s deck.Series, xLabel, yLabel string) ([]byte, error) {
	if len(s.X) != len(s.Y) {
		return nil, fmt.Errorf("series length mismatch: %d x values, %d y values", len(s.X), len(s.Y))
	}

	p := plot.New()
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel

	xys := make(plotter.XYs, len(s.X))
	for i := range s.X {
		xys[i].X = s.X[i]
		xys[i].Y = s.Y[i]
	}
	line, err := plotter.NewLine(xys)
	if err != nil {
		return nil, err
	}
	p.Add(line)

	w, err := p.WriterTo(width, height, "png")
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if _, err := w.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
