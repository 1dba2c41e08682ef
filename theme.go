package niceplots

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Theme is a fixed set of cosmetic settings. Applying a theme assigns
// each setting absolutely, never relative to the current state.
type Theme struct {
	// Font is the typeface of all text; its size is ignored.
	Font      font.Font
	TextColor color.Color

	TitleSize, LabelSize, TickLabelSize, LegendSize vg.Length

	TickDirection TickDirection
	TickLength    vg.Length
	TickWidth     vg.Length
	TickColor     color.Color

	// HiddenSpines are switched off, all other spines on.
	HiddenSpines SideSet
	SpineWidth   vg.Length
	SpineColor   color.Color

	// Legend placement, applied only to axes with a legend.
	LegendTop, LegendLeft    bool
	LegendXOffs, LegendYOffs vg.Length
	LegendThumbnailWidth     vg.Length

	// Grid is the line style of grid lines, applied only to axes with
	// the grid switched on.
	Grid draw.LineStyle
}

var DefaultTheme = Theme{
	Font: font.Font{
		Typeface: "Liberation",
		Variant:  "Sans",
	},
	TextColor: color.Black,

	TitleSize:     vg.Points(14),
	LabelSize:     vg.Points(12),
	TickLabelSize: vg.Points(10),
	LegendSize:    vg.Points(10),

	TickDirection: TickOut,
	TickLength:    vg.Points(4),
	TickWidth:     vg.Points(0.8),
	TickColor:     color.Black,

	HiddenSpines: NewSideSet(Top, Right),
	SpineWidth:   vg.Points(0.8),
	SpineColor:   color.Black,

	LegendTop:            true,
	LegendLeft:           false,
	LegendXOffs:          vg.Points(-4),
	LegendYOffs:          vg.Points(-4),
	LegendThumbnailWidth: vg.Points(16),

	Grid: draw.LineStyle{
		Color:  color.Gray{0xcc},
		Width:  vg.Points(0.5),
		Dashes: []vg.Length{vg.Points(2), vg.Points(2)},
	},
}

// Apply styles all axes of figs with DefaultTheme. Without arguments the
// current figure is styled; with no current figure ErrNoActiveFigure is
// returned.
func Apply(figs ...*Figure) error {
	return DefaultTheme.Apply(figs...)
}

// ApplyAxes styles the given axes with DefaultTheme.
func ApplyAxes(axes ...*Axes) error {
	return DefaultTheme.ApplyAxes(axes...)
}

// Apply styles all axes of figs with t, or those of the current figure
// if figs is empty. A nil figure is treated like a missing current
// figure. Figures before a failing one stay styled.
func (t Theme) Apply(figs ...*Figure) error {
	if len(figs) == 0 {
		f, err := CurrentFigure()
		if err != nil {
			return err
		}
		figs = []*Figure{f}
	}
	for _, f := range figs {
		if f == nil {
			return ErrNoActiveFigure
		}
		if err := t.ApplyAxes(f.Axes()...); err != nil {
			return err
		}
	}
	return nil
}

// ApplyAxes styles each of axes with t.
func (t Theme) ApplyAxes(axes ...*Axes) error {
	for _, a := range axes {
		if a == nil {
			return ErrNoAxes
		}
		t.applySpines(a)
		t.applyTicks(&a.X)
		t.applyTicks(&a.Y)
		a.TickDirection = t.TickDirection

		t.applyText(&a.Title.TextStyle, t.TitleSize)
		t.applyText(&a.X.Label.TextStyle, t.LabelSize)
		t.applyText(&a.Y.Label.TextStyle, t.LabelSize)
		t.applyText(&a.X.Tick.Label, t.TickLabelSize)
		t.applyText(&a.Y.Tick.Label, t.TickLabelSize)
		t.applyText(&a.Legend.TextStyle, t.LegendSize)

		if a.HasLegend() {
			a.Legend.Top = t.LegendTop
			a.Legend.Left = t.LegendLeft
			a.Legend.XOffs = t.LegendXOffs
			a.Legend.YOffs = t.LegendYOffs
			a.Legend.ThumbnailWidth = t.LegendThumbnailWidth
		}

		if a.GridOn() {
			a.grid.Vertical = t.gridStyle()
			a.grid.Horizontal = t.gridStyle()
		}
	}
	return nil
}

func (t Theme) applySpines(a *Axes) {
	for _, s := range AllSides {
		a.Spines[s] = Spine{
			Visible: !t.HiddenSpines.Contains(s),
			LineStyle: draw.LineStyle{
				Color: t.SpineColor,
				Width: t.SpineWidth,
			},
		}
	}
}

func (t Theme) applyTicks(ax *plot.Axis) {
	ax.Tick.Length = t.TickLength
	ax.Tick.LineStyle = draw.LineStyle{
		Color: t.TickColor,
		Width: t.TickWidth,
	}
}

// applyText keeps alignment and rotation, which carry layout and not
// looks.
func (t Theme) applyText(sty *draw.TextStyle, size vg.Length) {
	sty.Font = font.From(t.Font, size)
	sty.Color = t.TextColor
	if sty.Handler == nil {
		sty.Handler = plot.DefaultTextHandler
	}
}

// gridStyle returns a copy so axes never share a dash slice.
func (t Theme) gridStyle() draw.LineStyle {
	g := t.Grid
	g.Dashes = append([]vg.Length(nil), t.Grid.Dashes...)
	return g
}
