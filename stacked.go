package niceplots

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// YSeries is one quantity over the shared x values of StackedPlots.
type YSeries struct {
	Name string
	Y    []float64

	// Limits fixes the y range of the row. It takes precedence over Ticks.
	Limits *[2]float64

	// Ticks fixes the y ticks of the row; the range then spans the first
	// to the last tick widened by StackOptions.Cushion on both ends.
	Ticks []float64
}

// A Dataset holds one value per row of a stacked plot. Several datasets
// are overlaid, the first one determines names, limits and ticks.
type Dataset []YSeries

// StackOptions controls StackedPlots. Zero fields take the defaults noted.
type StackOptions struct {
	// Figure size; default 12in x 10in.
	Width, Height vg.Length

	// Pad is the room left of each row for its horizontal name; default
	// 200pt.
	Pad vg.Length

	// XTicks fixes the ticks of the shared x axis.
	XTicks []float64

	// Cushion widens tick derived limits by this fraction of the tick
	// span; default 0.1.
	Cushion float64
}

func (o *StackOptions) defaults() {
	if o.Width <= 0 {
		o.Width = 12 * vg.Inch
	}
	if o.Height <= 0 {
		o.Height = 10 * vg.Inch
	}
	if o.Pad <= 0 {
		o.Pad = vg.Points(200)
	}
	if o.Cushion <= 0 {
		o.Cushion = 0.1
	}
}

// StackedPlots draws each series of the datasets in its own row, all
// rows sharing the x values. Rows show only the left and bottom spines,
// and only the last row has x ticks and the x label. The figure becomes
// current once it is complete.
func StackedPlots(xlabel string, x []float64, datasets []Dataset, opts StackOptions) (*Figure, error) {
	if len(datasets) == 0 || len(datasets[0]) == 0 {
		return nil, errors.New("niceplots: no data for stacked plots")
	}
	n := len(datasets[0])
	for d, ds := range datasets {
		if len(ds) != n {
			return nil, fmt.Errorf("%w: dataset %d has %d series, want %d", ErrLength, d, len(ds), n)
		}
		for _, s := range ds {
			if len(s.Y) != len(x) {
				return nil, fmt.Errorf("%w: series %q has %d values for %d x values", ErrLength, s.Name, len(s.Y), len(x))
			}
		}
	}
	opts.defaults()

	fig := newFigure(n, 1)
	fig.Width, fig.Height = opts.Width, opts.Height

	for d, ds := range datasets {
		c := plotutil.Color(d)
		for i, s := range ds {
			if err := addStackedSeries(fig.At(i, 0), s, x, c); err != nil {
				return nil, err
			}
		}
	}

	// Limits are set after adding the data which would widen them.
	for i, s := range datasets[0] {
		a := fig.At(i, 0)
		switch {
		case s.Limits != nil:
			a.Y.Min, a.Y.Max = s.Limits[0], s.Limits[1]
		case len(s.Ticks) > 0:
			lo, hi := s.Ticks[0], s.Ticks[len(s.Ticks)-1]
			height := hi - lo
			a.Y.Min, a.Y.Max = lo-opts.Cushion*height, hi+opts.Cushion*height
			a.Y.Tick.Marker = constantTicks(s.Ticks)
		}
		a.Y.Label.Text = s.Name
		a.Y.Label.TextStyle.Rotation = -math.Pi / 2
		a.Y.Label.TextStyle.XAlign = draw.XLeft
		a.Y.Label.TextStyle.YAlign = draw.YCenter
		a.Y.Label.Padding = opts.Pad
	}

	for i, a := range fig.Axes() {
		if err := AdjustSpines(a, SpineOptions{}); err != nil {
			return nil, err
		}
		if i < n-1 {
			a.X.Tick.Marker = plot.ConstantTicks{}
			continue
		}
		if opts.XTicks != nil {
			a.X.Tick.Marker = constantTicks(opts.XTicks)
		}
		a.X.Label.Text = xlabel
	}
	figures.Add(fig)
	return fig, nil
}

// addStackedSeries draws s as a thick line with white edged markers on
// top.
func addStackedSeries(a *Axes, s YSeries, x []float64, c color.Color) error {
	xys := make(plotter.XYs, len(x))
	for k := range x {
		xys[k] = plotter.XY{X: x[k], Y: s.Y[k]}
	}

	l, err := plotter.NewLine(xys)
	if err != nil {
		return err
	}
	l.Color = c
	l.Width = vg.Points(6)

	edge, err := plotter.NewScatter(xys)
	if err != nil {
		return err
	}
	edge.GlyphStyle = draw.GlyphStyle{Color: color.White, Radius: vg.Points(6.5), Shape: draw.CircleGlyph{}}

	dot, err := plotter.NewScatter(xys)
	if err != nil {
		return err
	}
	dot.GlyphStyle = draw.GlyphStyle{Color: c, Radius: vg.Points(5), Shape: draw.CircleGlyph{}}

	a.Add(l, edge, dot)
	a.series = append(a.series, Series{Label: s.Name, Color: c, XYs: xys})
	return nil
}

func constantTicks(values []float64) plot.ConstantTicks {
	ticks := make(plot.ConstantTicks, len(values))
	for i, v := range values {
		ticks[i] = plot.Tick{Value: v, Label: strconv.FormatFloat(v, 'g', -1, 64)}
	}
	return ticks
}
