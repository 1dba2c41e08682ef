package niceplots

import (
	"fmt"
	"image/color"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// -------------------------------------------------------------------------
// Ticks

// TickDirection tells on which side of the spine tick marks are drawn.
type TickDirection int

const (
	TickOut TickDirection = iota
	TickIn
)

func (d TickDirection) String() string {
	if d == TickIn {
		return "in"
	}
	return "out"
}

// ParseTickDirection accepts "in" and "out".
func ParseTickDirection(s string) (TickDirection, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "out":
		return TickOut, nil
	case "in":
		return TickIn, nil
	}
	return TickOut, fmt.Errorf("niceplots: unknown tick direction %q", s)
}

// -------------------------------------------------------------------------
// Spines

// Spine is the border line on one side of an Axes.
type Spine struct {
	Visible bool
	draw.LineStyle
}

// lineStyle is the style to stroke the spine with; hidden spines get
// zero width the way plot.HideAxes hides axis lines.
func (s Spine) lineStyle() draw.LineStyle {
	ls := s.LineStyle
	if !s.Visible {
		ls.Width = 0
	}
	return ls
}

// -------------------------------------------------------------------------
// Axes

// Series is one data set drawn into an Axes with its legend text.
type Series struct {
	Label string
	Color color.Color
	XYs   plotter.XYs
}

// Axes is a single plot inside a Figure. The left and bottom spines are
// the axis lines of the embedded plot, the top and right spines are
// drawn around the data area.
type Axes struct {
	*plot.Plot

	// Spines are indexed by Side.
	Spines [4]Spine

	TickDirection TickDirection

	grid          *plotter.Grid
	gridOn        bool
	series        []Series
	legendEntries int
	labels        plot.Plotter // current direct labels
	labelLayer    *labelLayer
	figure        *Figure
}

func newAxes(f *Figure) *Axes {
	p := plot.New()
	a := &Axes{Plot: p, figure: f}
	for i := range a.Spines {
		a.Spines[i] = Spine{Visible: true, LineStyle: p.X.LineStyle}
	}
	return a
}

// Figure returns the figure a belongs to.
func (a *Axes) Figure() *Figure {
	return a.figure
}

// Spine returns the spine on side s.
func (a *Axes) Spine(s Side) *Spine {
	return &a.Spines[s]
}

// Line adds a line through xys using the next color of the color cycle.
func (a *Axes) Line(label string, xys plotter.XYer) (*plotter.Line, error) {
	l, err := plotter.NewLine(xys)
	if err != nil {
		return nil, err
	}
	l.Color = plotutil.Color(len(a.series))
	a.Add(l)
	a.series = append(a.series, Series{Label: label, Color: l.Color, XYs: l.XYs})
	return l, nil
}

// Scatter adds a marker at each of xys using the next color of the
// color cycle.
func (a *Axes) Scatter(label string, xys plotter.XYer) (*plotter.Scatter, error) {
	s, err := plotter.NewScatter(xys)
	if err != nil {
		return nil, err
	}
	s.GlyphStyle.Color = plotutil.Color(len(a.series))
	s.GlyphStyle.Shape = draw.CircleGlyph{}
	a.Add(s)
	a.series = append(a.series, Series{Label: label, Color: s.GlyphStyle.Color, XYs: s.XYs})
	return s, nil
}

// Series returns the data sets added with Line and Scatter in the order
// they were added.
func (a *Axes) Series() []Series {
	s := make([]Series, len(a.series))
	copy(s, a.series)
	return s
}

// AddLegend adds an entry to the legend of a.
func (a *Axes) AddLegend(label string, thumbs ...plot.Thumbnailer) {
	a.Legend.Add(label, thumbs...)
	a.legendEntries++
}

// HasLegend reports whether a legend entry was added.
func (a *Axes) HasLegend() bool {
	return a.legendEntries > 0
}

// ShowGrid switches the grid lines at the major ticks on or off. The
// grid is drawn in the position it had when it was first switched on.
func (a *Axes) ShowGrid(on bool) {
	if on && a.grid == nil {
		a.grid = plotter.NewGrid()
		a.Add(a.grid)
	}
	a.gridOn = on
	if a.grid == nil {
		return
	}
	if on {
		if a.grid.Vertical.Color == nil {
			a.grid.Vertical = plotter.DefaultGridLineStyle
			a.grid.Horizontal = plotter.DefaultGridLineStyle
		}
		return
	}
	a.grid.Vertical.Color = nil
	a.grid.Horizontal.Color = nil
}

// GridOn reports whether grid lines are drawn.
func (a *Axes) GridOn() bool {
	return a.gridOn
}

// Grid returns the grid plotter or nil if the grid was never shown.
func (a *Axes) Grid() *plotter.Grid {
	return a.grid
}

// drawable returns a shallow copy of the plot with the spine and tick
// settings of a folded into its axes.
func (a *Axes) drawable() *plot.Plot {
	p := *a.Plot
	p.X.LineStyle = a.Spines[Bottom].lineStyle()
	p.Y.LineStyle = a.Spines[Left].lineStyle()
	if a.TickDirection == TickIn {
		p.X.Tick.Length = 0
		p.Y.Tick.Length = 0
	}
	return &p
}

// Draw draws a to c.
func (a *Axes) Draw(c draw.Canvas) {
	a.draw(a.drawable(), c)
}

func (a *Axes) draw(p *plot.Plot, c draw.Canvas) {
	p.Draw(c)

	dc := p.DataCanvas(c)
	bottom := dc.Min.Y - p.X.Padding
	left := dc.Min.X - p.Y.Padding
	top := dc.Max.Y + p.X.Padding
	right := dc.Max.X + p.Y.Padding

	if s := a.Spines[Top]; s.Visible {
		c.StrokeLine2(s.LineStyle, dc.Min.X, top, dc.Max.X, top)
	}
	if s := a.Spines[Right]; s.Visible {
		c.StrokeLine2(s.LineStyle, right, dc.Min.Y, right, dc.Max.Y)
	}

	if a.TickDirection != TickIn {
		return
	}
	if l, sty := a.Plot.X.Tick.Length, p.X.Tick.LineStyle; l > 0 && sty.Width > 0 {
		for _, t := range p.X.Tick.Marker.Ticks(p.X.Min, p.X.Max) {
			x := dc.X(p.X.Norm(t.Value))
			if !dc.ContainsX(x) {
				continue
			}
			c.StrokeLine2(sty, x, bottom, x, bottom+tickLength(t, l))
		}
	}
	if l, sty := a.Plot.Y.Tick.Length, p.Y.Tick.LineStyle; l > 0 && sty.Width > 0 {
		for _, t := range p.Y.Tick.Marker.Ticks(p.Y.Min, p.Y.Max) {
			y := dc.Y(p.Y.Norm(t.Value))
			if !dc.ContainsY(y) {
				continue
			}
			c.StrokeLine2(sty, left, y, left+tickLength(t, l), y)
		}
	}
}

// tickLength halves minor ticks like plot does.
func tickLength(t plot.Tick, l vg.Length) vg.Length {
	if t.IsMinor() {
		return l / 2
	}
	return l
}
