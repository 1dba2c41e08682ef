package niceplots

import (
	"image/color"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

func axesWithLines(t *testing.T, n int) *Axes {
	t.Helper()
	a := newAxes(nil)
	for i := 0; i < n; i++ {
		_, err := a.Line(string(rune('a'+i)), xys(float64(i), float64(i+1), float64(i)))
		require.NoError(t, err)
	}
	return a
}

func findFractionLabels(a *Axes) *fractionLabels {
	fl, _ := a.labels.(*fractionLabels)
	return fl
}

func findLabels(a *Axes) *plotter.Labels {
	l, _ := a.labels.(*plotter.Labels)
	return l
}

func TestLinspace(t *testing.T) {
	assert.Equal(t, []float64{0.1}, linspace(0.1, 0.9, 1))
	got := linspace(0.1, 0.9, 3)
	require.Len(t, got, 3)
	assert.InDelta(t, 0.1, got[0], 1e-12)
	assert.InDelta(t, 0.5, got[1], 1e-12)
	assert.InDelta(t, 0.9, got[2], 1e-12)
}

func TestGridLabelPositions(t *testing.T) {
	a := axesWithLines(t, 5)
	require.NoError(t, GridLabels(a, true))

	fl := findFractionLabels(a)
	require.NotNil(t, fl)
	require.Len(t, fl.Labels, 5)
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, fl.Labels)

	// 5 series need a 3x3 grid.
	want := []plotter.XY{{X: 0.1, Y: 0.1}, {X: 0.5, Y: 0.1}, {X: 0.9, Y: 0.1}, {X: 0.1, Y: 0.5}, {X: 0.5, Y: 0.5}}
	for i, w := range want {
		assert.InDelta(t, w.X, fl.XYs[i].X, 1e-12, "label %d", i)
		assert.InDelta(t, w.Y, fl.XYs[i].Y, 1e-12, "label %d", i)
	}
	for i, s := range a.Series() {
		assert.Equal(t, s.Color, fl.Styles[i].Color)
	}

	c := vgimg.New(3*vg.Inch, 3*vg.Inch)
	assert.NotPanics(t, func() { a.Draw(draw.New(c)) })
}

func TestGridLabelsMonochrome(t *testing.T) {
	a := axesWithLines(t, 2)
	require.NoError(t, GridLabels(a, false))
	fl := findFractionLabels(a)
	require.NotNil(t, fl)
	for _, s := range fl.Styles {
		assert.Equal(t, color.Black, s.Color)
	}
	assert.ErrorIs(t, GridLabels(nil, true), ErrNoAxes)
}

func TestAutoLabels(t *testing.T) {
	a := axesWithLines(t, 3)
	opts := AutoLabelOptions{RelX: []float64{0.5}, Rand: rand.New(rand.NewSource(7))}
	require.NoError(t, AutoLabels(a, opts))

	l := findLabels(a)
	require.NotNil(t, l)
	assert.Equal(t, []string{"a", "b", "c"}, l.Labels)
	for i, xy := range l.XYs {
		assert.GreaterOrEqual(t, xy.X, 0.0, "label %d", i)
		assert.LessOrEqual(t, xy.X, 2.0, "label %d", i)
		assert.GreaterOrEqual(t, xy.Y, 0.0, "label %d", i)
		assert.LessOrEqual(t, xy.Y, 3.0, "label %d", i)
	}

	c := vgimg.New(3*vg.Inch, 3*vg.Inch)
	assert.NotPanics(t, func() { a.Draw(draw.New(c)) })
}

func TestLabelsReplacedOnRepeat(t *testing.T) {
	opts := AutoLabelOptions{RelX: []float64{0.5}}

	bare := axesWithLines(t, 3)
	lineBoxes := len(bare.GlyphBoxes(bare.Plot))

	once := axesWithLines(t, 3)
	require.NoError(t, AutoLabels(once, opts))
	want := len(once.GlyphBoxes(once.Plot))
	assert.Equal(t, lineBoxes+3, want)

	a := axesWithLines(t, 3)
	require.NoError(t, AutoLabels(a, opts))
	layer := a.labelLayer
	require.NotNil(t, layer)
	require.NoError(t, AutoLabels(a, opts))
	assert.Same(t, layer, a.labelLayer)
	assert.Len(t, a.GlyphBoxes(a.Plot), want)

	require.NoError(t, GridLabels(a, true))
	require.NoError(t, GridLabels(a, true))
	assert.Same(t, layer, a.labelLayer)
	assert.Same(t, findFractionLabels(a), layer.p)
	assert.Len(t, a.GlyphBoxes(a.Plot), lineBoxes)
}

func TestAutoLabelsRelXLength(t *testing.T) {
	a := axesWithLines(t, 3)
	err := AutoLabels(a, AutoLabelOptions{RelX: []float64{0.1, 0.2}})
	assert.ErrorIs(t, err, ErrLength)
	assert.Nil(t, findLabels(a))

	assert.NoError(t, AutoLabels(a, AutoLabelOptions{RelX: []float64{0, 0.5, 1}}))
	assert.ErrorIs(t, AutoLabels(nil, AutoLabelOptions{}), ErrNoAxes)
}

func TestSeparate(t *testing.T) {
	ls := []autoLabel{
		{x: 0.5, y: 0.5, w: 0.2, h: 0.1},
		{x: 0.5, y: 0.5, w: 0.2, h: 0.1},
		{x: 0.55, y: 0.52, w: 0.2, h: 0.1},
	}
	separate(ls, 100)
	for i := range ls {
		for j := i + 1; j < len(ls); j++ {
			ox := (ls[i].w+ls[j].w)/2 - abs(ls[i].x-ls[j].x)
			oy := (ls[i].h+ls[j].h)/2 - abs(ls[i].y-ls[j].y)
			assert.False(t, ox > 0 && oy > 0, "labels %d and %d overlap", i, j)
		}
		assert.GreaterOrEqual(t, ls[i].y, ls[i].h/2)
		assert.LessOrEqual(t, ls[i].y, 1-ls[i].h/2)
	}
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
