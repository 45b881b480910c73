// Command zcurve renders the Morton traversal order of a square matrix as a
// plot: walking the buffer from Begin to End and connecting the visited
// (x, y) cells draws the Z-order space-filling curve.
//
// Usage:
//
//	zcurve -rank 16 -o zcurve.png
package main

import (
	"flag"
	"fmt"
	"log"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/zcurve/zmatrix/matrix"
)

func main() {
	rank := flag.Int("rank", 16, "matrix side length; zero or a power of two")
	out := flag.String("o", "zcurve.png", "output image path")
	flag.Parse()

	m, err := matrix.New[struct{}](*rank)
	if err != nil {
		log.Fatalf("zcurve: %v", err)
	}

	// One point per buffer offset, in traversal order.
	pts := make(plotter.XYs, 0, m.Size())
	for it := m.Begin(); !it.Equal(m.End()); it.Next() {
		pts = append(pts, plotter.XY{X: float64(it.X()), Y: float64(it.Y())})
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Morton traversal order, rank %d", *rank)
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	// Screen convention: y grows downward, matching the ASCII diagrams.
	p.Y.Scale = plot.InvertedScale{Normalizer: plot.LinearScale{}}

	line, err := plotter.NewLine(pts)
	if err != nil {
		log.Fatalf("zcurve: building polyline: %v", err)
	}
	p.Add(plotter.NewGrid(), line)

	if err := p.Save(6*vg.Inch, 6*vg.Inch, *out); err != nil {
		log.Fatalf("zcurve: saving plot: %v", err)
	}
	fmt.Printf("wrote %s (%d cells)\n", *out, m.Size())
}
