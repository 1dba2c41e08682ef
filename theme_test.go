package niceplots

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// axesLook collects the themed settings of a for comparison.
type axesLook struct {
	Spines        [4]Spine
	TickDirection TickDirection
	XTick, YTick  draw.LineStyle
	XLen, YLen    vg.Length
	Texts         []draw.TextStyle
	Legend        [5]interface{}
	Grid          [2]draw.LineStyle
}

func lookOf(a *Axes) axesLook {
	l := axesLook{
		Spines:        a.Spines,
		TickDirection: a.TickDirection,
		XTick:         a.X.Tick.LineStyle,
		YTick:         a.Y.Tick.LineStyle,
		XLen:          a.X.Tick.Length,
		YLen:          a.Y.Tick.Length,
		Texts: []draw.TextStyle{
			a.Title.TextStyle,
			a.X.Label.TextStyle, a.Y.Label.TextStyle,
			a.X.Tick.Label, a.Y.Tick.Label,
			a.Legend.TextStyle,
		},
		Legend: [5]interface{}{a.Legend.Top, a.Legend.Left, a.Legend.XOffs, a.Legend.YOffs, a.Legend.ThumbnailWidth},
	}
	if g := a.Grid(); g != nil {
		l.Grid = [2]draw.LineStyle{g.Vertical, g.Horizontal}
	}
	return l
}

func TestApplyStylesEveryAxes(t *testing.T) {
	defer resetFigures(t)()

	f := NewFigure(2, 3)
	for i, a := range f.Axes() {
		_, err := a.Line("l", xys(float64(i), 1, 2))
		require.NoError(t, err)
	}
	require.NoError(t, Apply())

	want := lookOf(f.At(0, 0))
	for i, a := range f.Axes() {
		assert.Equal(t, want, lookOf(a), "axes %d", i)
	}
}

func TestApplySingleLine(t *testing.T) {
	defer resetFigures(t)()

	f := NewFigure(1, 1)
	a := f.At(0, 0)
	_, err := a.Line("y", xys(0, 1, 4, 9))
	require.NoError(t, err)
	require.NoError(t, Apply())

	assert.False(t, a.Spines[Top].Visible)
	assert.False(t, a.Spines[Right].Visible)
	assert.True(t, a.Spines[Left].Visible)
	assert.True(t, a.Spines[Bottom].Visible)
	assert.Equal(t, TickOut, a.TickDirection)
	assert.Equal(t, DefaultTheme.TickLength, a.X.Tick.Length)
	assert.Equal(t, DefaultTheme.SpineWidth, a.Spines[Left].Width)
	assert.Equal(t, DefaultTheme.TitleSize, a.Title.TextStyle.Font.Size)
	assert.Equal(t, DefaultTheme.TickLabelSize, a.Y.Tick.Label.Font.Size)
	assert.Equal(t, DefaultTheme.Font.Typeface, a.X.Label.TextStyle.Font.Typeface)

	// No legend and no grid: those settings are left alone.
	assert.Equal(t, plot.New().Legend.ThumbnailWidth, a.Legend.ThumbnailWidth)
	assert.Nil(t, a.Grid())

	_, err = f.WriterTo("png")
	assert.NoError(t, err)
}

func TestApplyIdempotent(t *testing.T) {
	defer resetFigures(t)()

	f := NewFigure(1, 2)
	a := f.At(0, 1)
	l, err := a.Line("y", xys(1, 2))
	require.NoError(t, err)
	a.AddLegend("y", l)
	a.ShowGrid(true)

	require.NoError(t, Apply(f))
	once := [2]axesLook{lookOf(f.At(0, 0)), lookOf(a)}
	require.NoError(t, Apply(f))
	twice := [2]axesLook{lookOf(f.At(0, 0)), lookOf(a)}
	assert.Equal(t, once, twice)
}

func TestApplyLegendAndGrid(t *testing.T) {
	a := newAxes(nil)
	l, err := a.Line("y", xys(1, 2))
	require.NoError(t, err)
	a.AddLegend("y", l)
	a.ShowGrid(true)

	th := DefaultTheme.Copy()
	th.LegendLeft = true
	th.LegendThumbnailWidth = vg.Points(30)
	require.NoError(t, th.ApplyAxes(a))

	assert.True(t, a.Legend.Left)
	assert.Equal(t, vg.Points(30), a.Legend.ThumbnailWidth)
	assert.Equal(t, DefaultTheme.Grid.Color, a.Grid().Vertical.Color)
	assert.Equal(t, DefaultTheme.Grid.Dashes, a.Grid().Horizontal.Dashes)

	// Dashes are not shared with the theme.
	a.Grid().Vertical.Dashes[0] = 99
	assert.NotEqual(t, vg.Length(99), th.Grid.Dashes[0])
}

func TestApplyWithoutFigure(t *testing.T) {
	defer resetFigures(t)()

	assert.ErrorIs(t, Apply(), ErrNoActiveFigure)

	f := NewFigure(1, 1)
	require.NoError(t, Apply())
	require.NoError(t, f.Close())
	assert.ErrorIs(t, Apply(), ErrNoActiveFigure)

	assert.ErrorIs(t, Apply(nil), ErrNoActiveFigure)
	assert.ErrorIs(t, ApplyAxes(nil), ErrNoAxes)
}

func TestApplyKeepsTextLayout(t *testing.T) {
	a := newAxes(nil)
	a.Y.Label.TextStyle.Rotation = 1
	a.Y.Label.TextStyle.XAlign = draw.XLeft
	require.NoError(t, ApplyAxes(a))
	assert.Equal(t, 1.0, a.Y.Label.TextStyle.Rotation)
	assert.Equal(t, draw.XLeft, a.Y.Label.TextStyle.XAlign)
}
