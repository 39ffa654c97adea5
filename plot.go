package calc

import (
	"math"
	"strings"
)

// Plot is a sampled character grid of an expression over an x interval.
// Rows run top to bottom; row 0 holds the largest y values.
type Plot struct {
	Width, Height int
	Xmin, Xmax    float64
	Ymin, Ymax    float64
	// Skipped counts the columns where evaluation failed or produced a
	// non-finite value, so no marker was placed.
	Skipped int

	cells []byte
}

const (
	plotDefaultWidth  = 60
	plotMaxWidth      = 120
	plotDefaultHeight = 20
	plotMaxHeight     = 40
)

// Plot samples the expression at w evenly spaced points across
// [xmin, xmax] and places the curve in a w×h grid, with axis lines where
// x=0 or y=0 falls inside the ranges. Failed samples are skipped and
// counted, never propagated: a partial plot is still useful. Out-of-range
// dimensions fall back to 60×20, capped at 120×40.
func (ctx *Context) Plot(expr, name string, xmin, xmax float64, w, h int) *Plot {
	if w <= 1 {
		w = plotDefaultWidth
	}
	if w > plotMaxWidth {
		w = plotMaxWidth
	}
	if h <= 0 {
		h = plotDefaultHeight
	}
	if h > plotMaxHeight {
		h = plotMaxHeight
	}
	p := &Plot{Width: w, Height: h, Xmin: xmin, Xmax: xmax}

	// First pass: find the observed y range, ignoring bad samples.
	ymin, ymax := math.Inf(1), math.Inf(-1)
	for i := 0; i < w; i++ {
		y, err := ctx.evalAt(expr, name, p.x(i))
		if err != nil || math.IsNaN(y) || math.IsInf(y, 0) {
			continue
		}
		ymin = math.Min(ymin, y)
		ymax = math.Max(ymax, y)
	}
	if ymin > ymax {
		// No finite samples at all.
		ymin, ymax = 0, 0
	}
	if ymin == ymax {
		ymin--
		ymax++
	}
	p.Ymin, p.Ymax = ymin, ymax

	p.cells = make([]byte, w*h)
	for i := range p.cells {
		p.cells[i] = ' '
	}
	if xmin <= 0 && xmax >= 0 && xmax > xmin {
		col := clampInt(int((0-xmin)/(xmax-xmin)*float64(w-1)), 0, w-1)
		for i := 0; i < h; i++ {
			p.cells[i*w+col] = '|'
		}
	}
	if ymin <= 0 && ymax >= 0 {
		row := clampInt(int(ymax/(ymax-ymin)*float64(h-1)), 0, h-1)
		for j := 0; j < w; j++ {
			p.cells[row*w+j] = '-'
		}
	}

	// Second pass: the curve, drawn over the axes.
	for j := 0; j < w; j++ {
		y, err := ctx.evalAt(expr, name, p.x(j))
		if err != nil || math.IsNaN(y) || math.IsInf(y, 0) {
			p.Skipped++
			continue
		}
		row := int((ymax - y) / (ymax - ymin) * float64(h-1))
		if row >= 0 && row < h {
			p.cells[row*w+j] = '*'
		}
	}
	return p
}

// x returns the sample abscissa for column i.
func (p *Plot) x(i int) float64 {
	return p.Xmin + (p.Xmax-p.Xmin)*float64(i)/float64(p.Width-1)
}

// At returns the character at a column and row of the grid.
func (p *Plot) At(col, row int) byte {
	return p.cells[row*p.Width+col]
}

// Row returns one row of the grid as a string.
func (p *Plot) Row(i int) string {
	return string(p.cells[i*p.Width : (i+1)*p.Width])
}

// String renders the grid, one line per row.
func (p *Plot) String() string {
	var b strings.Builder
	b.Grow((p.Width + 1) * p.Height)
	for i := 0; i < p.Height; i++ {
		b.WriteString(p.Row(i))
		b.WriteByte('\n')
	}
	return b.String()
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
