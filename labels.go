package niceplots

import (
	"fmt"
	"image/color"
	"math"
	"math/rand"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// labelStyle is the centered text style of direct labels.
func labelStyle(c color.Color) text.Style {
	if c == nil {
		c = color.Black
	}
	return text.Style{
		Color:   c,
		Font:    font.From(DefaultTheme.Font, DefaultTheme.LegendSize),
		XAlign:  draw.XCenter,
		YAlign:  draw.YCenter,
		Handler: plot.DefaultTextHandler,
	}
}

func seriesColor(s Series, colorOn bool) color.Color {
	if colorOn {
		return s.Color
	}
	return color.Black
}

// -------------------------------------------------------------------------
// Grid labels

// fractionLabels draws texts at positions given as fractions of the data
// area, independent of the data range.
type fractionLabels struct {
	XYs    plotter.XYs
	Labels []string
	Styles []text.Style
}

// Plot implements plot.Plotter.
func (l *fractionLabels) Plot(c draw.Canvas, _ *plot.Plot) {
	for i, s := range l.Labels {
		pt := vg.Point{X: c.X(l.XYs[i].X), Y: c.Y(l.XYs[i].Y)}
		c.FillText(l.Styles[i], pt, s)
	}
}

// labelLayer holds the direct labels of an axes. It is added to the plot
// once so that labeling again replaces the labels.
type labelLayer struct {
	p plot.Plotter
}

// Plot implements plot.Plotter.
func (l *labelLayer) Plot(c draw.Canvas, plt *plot.Plot) {
	if l.p != nil {
		l.p.Plot(c, plt)
	}
}

// GlyphBoxes implements plot.GlyphBoxer.
func (l *labelLayer) GlyphBoxes(plt *plot.Plot) []plot.GlyphBox {
	if gb, ok := l.p.(plot.GlyphBoxer); ok {
		return gb.GlyphBoxes(plt)
	}
	return nil
}

// setLabels makes p the direct labels of a, widening the axis ranges to
// the data range of p the way plot.Add does.
func (a *Axes) setLabels(p plot.Plotter) {
	if a.labelLayer == nil {
		a.labelLayer = &labelLayer{}
		a.Add(a.labelLayer)
	}
	if d, ok := p.(plot.DataRanger); ok {
		xmin, xmax, ymin, ymax := d.DataRange()
		a.X.Min = math.Min(a.X.Min, xmin)
		a.X.Max = math.Max(a.X.Max, xmax)
		a.Y.Min = math.Min(a.Y.Min, ymin)
		a.Y.Max = math.Max(a.Y.Max, ymax)
	}
	a.labelLayer.p = p
	a.labels = p
}

// GridLabels replaces a boxed legend by one label per series. With n
// series the labels sit on a ceil(sqrt(n)) square grid spanning 10% to
// 90% of the data area, row by row from the bottom left. With colorOn
// each label takes the color of its series, otherwise black.
func GridLabels(a *Axes, colorOn bool) error {
	if a == nil {
		return ErrNoAxes
	}
	n := len(a.series)
	if n == 0 {
		return nil
	}
	side := int(math.Ceil(math.Sqrt(float64(n))))
	lins := linspace(0.1, 0.9, side)

	fl := &fractionLabels{
		XYs:    make(plotter.XYs, n),
		Labels: make([]string, n),
		Styles: make([]text.Style, n),
	}
	for i, s := range a.series {
		fl.XYs[i] = plotter.XY{X: lins[i%side], Y: lins[i/side]}
		fl.Labels[i] = s.Label
		fl.Styles[i] = labelStyle(seriesColor(s, colorOn))
	}
	a.setLabels(fl)
	return nil
}

func linspace(from, to float64, n int) []float64 {
	if n == 1 {
		return []float64{from}
	}
	v := make([]float64, n)
	for i := range v {
		v[i] = from + float64(i)*(to-from)/float64(n-1)
	}
	return v
}

// -------------------------------------------------------------------------
// Automatic labels

// AutoLabelOptions controls AutoLabels.
type AutoLabelOptions struct {
	// RelX is the relative position along each series (0 first point,
	// 1 last point) where its label starts. A single value is used for
	// all series. Empty means random positions.
	RelX []float64

	// Monochrome draws all labels black instead of in series colors.
	Monochrome bool

	// Rand drives the random positions; nil uses a fixed seed.
	Rand *rand.Rand

	// Iterations bounds the overlap removal; 0 means 100.
	Iterations int
}

type autoLabel struct {
	x, y float64 // normalized position
	w, h float64 // normalized size
}

// AutoLabels places the label of each series on the series itself and
// then moves labels apart until they do not overlap, or the iteration
// limit is reached. Series without points are skipped with a warning.
func AutoLabels(a *Axes, opts AutoLabelOptions) error {
	if a == nil {
		return ErrNoAxes
	}
	n := len(a.series)
	if n == 0 {
		return nil
	}
	relX := opts.RelX
	switch len(relX) {
	case 0:
	case 1:
		relX = make([]float64, n)
		for i := range relX {
			relX[i] = opts.RelX[0]
		}
	case n:
	default:
		return fmt.Errorf("%w: %d relative positions for %d series", ErrLength, len(relX), n)
	}
	rnd := opts.Rand
	if rnd == nil {
		rnd = rand.New(rand.NewSource(1))
	}
	iterations := opts.Iterations
	if iterations <= 0 {
		iterations = 100
	}

	var (
		xmin, xmax = math.Inf(1), math.Inf(-1)
		ymin, ymax = math.Inf(1), math.Inf(-1)
	)
	for _, s := range a.series {
		if len(s.XYs) == 0 {
			continue
		}
		x0, x1, y0, y1 := plotter.XYRange(s.XYs)
		xmin, xmax = math.Min(xmin, x0), math.Max(xmax, x1)
		ymin, ymax = math.Min(ymin, y0), math.Max(ymax, y1)
	}
	norm := func(v, lo, hi float64) float64 {
		if hi <= lo {
			return 0.5
		}
		return (v - lo) / (hi - lo)
	}
	denorm := func(u, lo, hi float64) float64 {
		if hi <= lo {
			return lo
		}
		return lo + u*(hi-lo)
	}

	areaW, areaH := a.dataAreaEstimate()
	var (
		placed []autoLabel
		labels []string
		styles []text.Style
	)
	for i, s := range a.series {
		m := len(s.XYs)
		if m == 0 {
			a.figure.Warnf("series %q has no points, not labeled", s.Label)
			continue
		}
		var idx int
		if len(relX) > 0 {
			idx = int(relX[i] * float64(m))
			if idx >= m {
				idx = m - 1
			}
			if idx < 0 {
				idx = 0
			}
		} else {
			idx = rnd.Intn(m)
		}
		sty := labelStyle(seriesColor(s, !opts.Monochrome))
		placed = append(placed, autoLabel{
			x: norm(s.XYs[idx].X, xmin, xmax),
			y: norm(s.XYs[idx].Y, ymin, ymax),
			w: float64(sty.Width(s.Label) / areaW),
			h: float64(sty.Height(s.Label) / areaH),
		})
		labels = append(labels, s.Label)
		styles = append(styles, sty)
	}
	if len(placed) == 0 {
		return nil
	}

	separate(placed, iterations)

	xys := make(plotter.XYs, len(placed))
	for i, p := range placed {
		xys[i] = plotter.XY{X: denorm(p.x, xmin, xmax), Y: denorm(p.y, ymin, ymax)}
	}
	l, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: labels})
	if err != nil {
		return err
	}
	l.TextStyle = styles
	a.setLabels(l)
	return nil
}

// dataAreaEstimate guesses the size of the data area of a from the
// figure size and grid.
func (a *Axes) dataAreaEstimate() (w, h vg.Length) {
	w, h = DefaultWidth, DefaultHeight
	rows, cols := 1, 1
	if f := a.figure; f != nil {
		w, h = f.Width, f.Height
		rows, cols = f.Rows(), f.Cols()
	}
	w = 0.8 * w / vg.Length(cols)
	h = 0.8 * h / vg.Length(rows)
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return w, h
}

// separate pushes overlapping labels apart, vertically if their overlap
// in y is smaller than in x, else horizontally. Labels stay inside the
// unit square.
func separate(ls []autoLabel, iterations int) {
	for it := 0; it < iterations; it++ {
		moved := false
		for i := range ls {
			for j := i + 1; j < len(ls); j++ {
				a, b := &ls[i], &ls[j]
				dx, dy := b.x-a.x, b.y-a.y
				ox := (a.w+b.w)/2 - math.Abs(dx)
				oy := (a.h+b.h)/2 - math.Abs(dy)
				if ox <= 0 || oy <= 0 {
					continue
				}
				moved = true
				if oy <= ox {
					shift := oy/2 + 1e-6
					if dy < 0 || (dy == 0 && i%2 == 1) {
						shift = -shift
					}
					a.y -= shift
					b.y += shift
				} else {
					shift := ox/2 + 1e-6
					if dx < 0 {
						shift = -shift
					}
					a.x -= shift
					b.x += shift
				}
				clampLabel(a)
				clampLabel(b)
			}
		}
		if !moved {
			return
		}
	}
}

func clampLabel(l *autoLabel) {
	l.x = math.Max(l.w/2, math.Min(1-l.w/2, l.x))
	l.y = math.Max(l.h/2, math.Min(1-l.h/2, l.y))
	if l.w >= 1 {
		l.x = 0.5
	}
	if l.h >= 1 {
		l.y = 0.5
	}
}
