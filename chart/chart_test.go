package chart

import (
	"bytes"
	"image"
	_ "image/png"
	"testing"

	"deckgen.dev/deck"
)

func TestLine(t *testing.T) {
	s := deck.Series{
		X: []float64{0, 1, 2, 3},
		Y: []float64{0, 1, 4, 9},
	}

	bs, err := Line(s, "time (s)", "speed")
	if err != nil {
		t.Fatal(err)
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(bs))
	if err != nil {
		t.Fatal(err)
	}
	if format != "png" {
		t.Errorf("expected png output, got %q", format)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		t.Errorf("degenerate image size %dx%d", cfg.Width, cfg.Height)
	}
}

func TestLineDeterministic(t *testing.T) {
	s := deck.Series{X: []float64{0, 1}, Y: []float64{1, 0}}

	first, err := Line(s, "x", "y")
	if err != nil {
		t.Fatal(err)
	}
	second, err := Line(s, "x", "y")
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(first, second) {
		t.Error("rendering the same series twice gave different bytes")
	}
}

func TestLineLengthMismatch(t *testing.T) {
	s := deck.Series{X: []float64{0, 1}, Y: []float64{0}}
	if _, err := Line(s, "x", "y"); err == nil {
		t.Error("expected an error for mismatched series lengths")
	}
}
