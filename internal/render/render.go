// Package render draws solved catenaries with gonum/plot.
package render

import (
	"fmt"
	"image/color"
	"io"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"honnef.co/go/catenary"
)

type Options struct {
	Samples int
	Width   vg.Length
	Height  vg.Length
	Title   string
}

// DefaultOptions draws 300 samples on a 10×6 inch canvas.
func DefaultOptions() Options {
	return Options{
		Samples: catenary.DefaultSamples,
		Width:   10 * vg.Inch,
		Height:  6 * vg.Inch,
		Title:   "Catenary Curve",
	}
}

const bboxMargin = 0.05

var (
	colorLeft   = color.RGBA{R: 0xd6, G: 0x27, B: 0x28, A: 0xff}
	colorRight  = color.RGBA{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff}
	colorVertex = color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}
)

// New plots the shape together with its endpoints and its vertex.
func New(s catenary.Shape, opts Options) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y(x)"
	p.Add(plotter.NewGrid())

	pts := make(plotter.XYs, 0, max(opts.Samples, 2))
	for pt := range s.Points(opts.Samples) {
		if pt.IsNaN() || pt.IsInf() {
			return nil, fmt.Errorf("render: curve isn't finite at %v", pt)
		}
		x, y := pt.Splat()
		pts = append(pts, plotter.XY{X: x, Y: y})
	}
	if err := plotutil.AddLines(p, "Catenary", pts); err != nil {
		return nil, fmt.Errorf("render: curve: %w", err)
	}

	m := s.Markers()
	for _, mk := range []struct {
		label string
		pt    catenary.Point
		c     color.Color
	}{
		{"Point (0, yL)", m.Left, colorLeft},
		{"Point (d, yR)", m.Right, colorRight},
		{"Lowest point", m.Vertex, colorVertex},
	} {
		sc, err := plotter.NewScatter(plotter.XYs{{X: mk.pt.X, Y: mk.pt.Y}})
		if err != nil {
			return nil, fmt.Errorf("render: %s: %w", strings.ToLower(mk.label), err)
		}
		sc.GlyphStyle = draw.GlyphStyle{
			Color:  mk.c,
			Radius: vg.Points(4),
			Shape:  draw.CircleGlyph{},
		}
		p.Add(sc)
		p.Legend.Add(mk.label, sc)
	}
	p.Legend.Top = true

	// Leave a margin around the curve so that markers aren't cut off at the
	// edges. Only ever widen the ranges computed from the data.
	bbox := s.BoundingBox()
	bbox = bbox.Inflate(bboxMargin*bbox.Width(), bboxMargin*bbox.Height())
	p.X.Min, p.X.Max = min(p.X.Min, bbox.X0), max(p.X.Max, bbox.X1)
	p.Y.Min, p.Y.Max = min(p.Y.Min, bbox.Y0), max(p.Y.Max, bbox.Y1)

	return p, nil
}

// Save renders the shape to a file. The format is derived from the file's
// extension; gonum/plot supports png, svg, pdf, eps, jpg and tif among others.
func Save(s catenary.Shape, path string, opts Options) error {
	p, err := New(s, opts)
	if err != nil {
		return err
	}
	if err := p.Save(opts.Width, opts.Height, path); err != nil {
		return fmt.Errorf("render: saving %s: %w", filepath.Base(path), err)
	}
	return nil
}

// Write renders the shape in the given format ("png", "svg", ...) to w.
func Write(w io.Writer, s catenary.Shape, format string, opts Options) error {
	p, err := New(s, opts)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(opts.Width, opts.Height, format)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	_, err = wt.WriteTo(w)
	return err
}
