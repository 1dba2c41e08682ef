package niceplots

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// BarOptions controls HorizBar. Zero fields take the defaults noted.
type BarOptions struct {
	// TextScale widens the label column for labels with many wide
	// characters; default 1.
	TextScale float64

	// Digits after the decimal point of the printed values; default 1,
	// negative means 0.
	Digits int

	// Width of the figure and height of each row; default 5in and 0.5in.
	Width, RowHeight vg.Length

	// Color of the dots; default #FFCC00.
	Color color.Color
}

var (
	barTrackColor = MustParseColor("#c0c0c0")
	barDotColor   = MustParseColor("#ffcc00")
)

func (o *BarOptions) defaults() {
	if o.TextScale <= 0 {
		o.TextScale = 1
	}
	if o.Digits == 0 {
		o.Digits = 1
	} else if o.Digits < 0 {
		o.Digits = 0
	}
	if o.Width <= 0 {
		o.Width = 5 * vg.Inch
	}
	if o.RowHeight <= 0 {
		o.RowHeight = vg.Inch / 2
	}
	if o.Color == nil {
		o.Color = barDotColor
	}
}

// HorizBar draws one row per value comparing positive numbers: a gray
// track from zero, a dot at the value, the label at the left and the
// printed value at the right. header holds the titles of the label and
// value columns. The figure becomes current only if it was built
// completely; it is neither styled nor saved.
func HorizBar(labels []string, values []float64, header [2]string, opts BarOptions) (*Figure, error) {
	if len(values) == 0 {
		return nil, errors.New("niceplots: no values for bar chart")
	}
	if len(labels) != len(values) {
		return nil, fmt.Errorf("%w: %d labels for %d values", ErrLength, len(labels), len(values))
	}
	opts.defaults()

	tmax, lmax := 0.0, 0
	for i, v := range values {
		if v < 0 {
			return nil, fmt.Errorf("niceplots: negative bar value %g for %q", v, labels[i])
		}
		if v > tmax {
			tmax = v
		}
		if len(labels[i]) > lmax {
			lmax = len(labels[i])
		}
	}
	if tmax == 0 {
		tmax = 1
	}

	// Column layout in data units, tuned for the default font.
	leftLim := -opts.TextScale * float64(lmax) * 0.038 * tmax
	rightLim := tmax * 1.11
	valueX := rightLim * 1.15
	leftHeaderX := -float64(len(header[0]))*0.018*tmax + leftLim/2
	rightHeaderX := -float64(len(header[1]))*0.018*tmax + rightLim + tmax*(0.09+float64(opts.Digits)*0.02)
	ruleEnd := rightLim + tmax*(0.15+float64(opts.Digits)*0.03)

	num := len(values)
	fig := newFigure(num, 1)
	fig.Width = opts.Width
	fig.Height = opts.RowHeight * vg.Length(num)
	fig.Tiles.PadY = 0

	for j, v := range values {
		a := fig.At(j, 0)

		track, err := plotter.NewLine(plotter.XYs{{X: 0, Y: 1}, {X: tmax * 1.05, Y: 1}})
		if err != nil {
			return nil, err
		}
		track.Color = barTrackColor
		track.Width = vg.Points(3)
		a.Add(track)

		dot, err := plotter.NewScatter(plotter.XYs{{X: v, Y: 1}})
		if err != nil {
			return nil, err
		}
		dot.GlyphStyle = draw.GlyphStyle{Color: opts.Color, Radius: vg.Points(5), Shape: draw.CircleGlyph{}}
		a.Add(dot)
		a.series = append(a.series, Series{Label: labels[j], Color: opts.Color, XYs: dot.XYs})

		texts := []barText{
			{x: leftLim, y: 1, s: labels[j], xalign: draw.XLeft},
			{x: valueX, y: 1, s: strconv.FormatFloat(v, 'f', opts.Digits, 64), xalign: draw.XRight},
		}
		ymax := 1.01
		if j == 0 {
			texts = append(texts,
				barText{x: leftHeaderX, y: 1.02, s: header[0], xalign: draw.XLeft, size: 13},
				barText{x: rightHeaderX, y: 1.02, s: header[1], xalign: draw.XLeft, size: 13},
			)
			rule, err := plotter.NewLine(plotter.XYs{{X: leftLim, Y: 1.014}, {X: ruleEnd, Y: 1.014}})
			if err != nil {
				return nil, err
			}
			rule.Color = color.Black
			rule.Width = vg.Points(1.2)
			a.Add(rule)
			ymax = 1.025
		}
		if err := addBarTexts(a, texts); err != nil {
			return nil, err
		}

		a.X.Min = minf(leftLim, leftHeaderX)
		a.X.Max = maxf(valueX, ruleEnd, rightHeaderX+tmax*0.2)
		a.Y.Min, a.Y.Max = 0.99, ymax
		a.X.Padding, a.Y.Padding = 0, 0
		a.HideAxes()
		for _, s := range AllSides {
			a.Spines[s].Visible = false
		}
	}
	figures.Add(fig)
	return fig, nil
}

type barText struct {
	x, y   float64
	s      string
	xalign draw.XAlignment
	size   float64
}

func addBarTexts(a *Axes, texts []barText) error {
	xyl := plotter.XYLabels{XYs: make(plotter.XYs, len(texts)), Labels: make([]string, len(texts))}
	styles := make([]text.Style, len(texts))
	for i, t := range texts {
		xyl.XYs[i] = plotter.XY{X: t.x, Y: t.y}
		xyl.Labels[i] = t.s
		size := DefaultTheme.TickLabelSize
		if t.size > 0 {
			size = vg.Points(t.size)
		}
		styles[i] = text.Style{
			Color:   color.Black,
			Font:    font.From(DefaultTheme.Font, size),
			XAlign:  t.xalign,
			YAlign:  draw.YCenter,
			Handler: plot.DefaultTextHandler,
		}
	}
	l, err := plotter.NewLabels(xyl)
	if err != nil {
		return err
	}
	l.TextStyle = styles
	a.Add(l)
	return nil
}

func minf(v ...float64) float64 {
	m := v[0]
	for _, x := range v[1:] {
		if x < m {
			m = x
		}
	}
	return m
}

func maxf(v ...float64) float64 {
	m := v[0]
	for _, x := range v[1:] {
		if x > m {
			m = x
		}
	}
	return m
}
